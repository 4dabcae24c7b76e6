package testutil

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/assert"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisableCapacities:       true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

// Dump renders a value for use in test diffs.
func Dump(val interface{}) string {
	return spewConfig.Sdump(val)
}

// AssertEqual is like assert.Equal, but renders the difference between the
// two values as a unified diff, which stays readable when the values are
// long lists.
func AssertEqual(t *testing.T, expected, actual interface{}, msgAndArgs ...interface{}) bool {
	t.Helper()
	expStr := Dump(expected)
	actStr := Dump(actual)
	if expStr == actStr {
		return true
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expStr),
		B:        difflib.SplitLines(actStr),
		FromFile: "Expected",
		ToFile:   "Actual",
		Context:  3,
	})
	if err != nil {
		return assert.Equal(t, expected, actual, msgAndArgs...)
	}
	return assert.Fail(t, "Not equal:\n"+diff, msgAndArgs...)
}
