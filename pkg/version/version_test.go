package version_test

import (
	"math/rand"
	"reflect"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GunniBusch/brew-version-check/pkg/testutil"
	"github.com/GunniBusch/brew-version-check/pkg/version"
)

func mustNew(t *testing.T, s string) version.Version {
	t.Helper()
	ver, err := version.New(s)
	require.NoError(t, err)
	return ver
}

func TestSort(t *testing.T) {
	t.Parallel()
	testcases := map[string][]string{
		"family-precedence": {
			"1.0.0-alpha1",
			"1.0.0-beta1",
			"1.0.0-rc1",
			"1.0.0",
		},
		"numeric-components": {
			"0.9",
			"0.9.1",
			"0.9.2",
			"0.9.10",
			"1.0",
			"1.0.1",
			"1.1",
			"2.0",
		},
		"dates": {
			"2022-12-31",
			"2023-01-01",
			"2023-09-28",
		},
		"trailing-letters": {
			"1.0.1",
			"1.0.1a",
			"1.0.1b",
			"1.0.2",
		},
		"prerelease-revisions": {
			"1.0a1",
			"1.0a2",
			"1.0b1",
			"1.0rc1",
			"1.0",
			"1.1a1",
		},
		"patchlevels": {
			"1.9.1",
			"1.9.1-p243",
			"1.9.2",
		},
		"post-releases": {
			"4.3rc2",
			"4.3",
			"4.3.post1",
			"4.3.1",
		},
		"otp-style": {
			"R15B01",
			"R15B02",
			"R16B",
		},
		"head-on-top": {
			"1.2.3",
			"20230101",
			"HEAD",
		},
		"mixed-depth": {
			"1.0a1",
			"1.0.0a2",
			"1.0.1",
		},
	}
	for tcName, tcData := range testcases {
		strs := tcData
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			rand := rand.New(rand.NewSource(time.Now().UnixNano()))

			vers := make([]version.Version, 0, len(strs))
			exps := make([]string, 0, len(strs))
			for _, str := range strs {
				ver := mustNew(t, str)
				vers = append(vers, ver)
				exps = append(exps, ver.String())
			}

			// shuffle the list so that `sort` has something to do.
			rand.Shuffle(len(vers), func(i, j int) {
				vers[i], vers[j] = vers[j], vers[i]
			})

			sort.Slice(vers, func(i, j int) bool {
				return vers[i].Compare(vers[j]) < 0
			})
			acts := make([]string, 0, len(strs))
			for _, ver := range vers {
				acts = append(acts, ver.String())
			}
			testutil.AssertEqual(t, exps, acts)
		})
	}
}

func TestCompare(t *testing.T) {
	t.Parallel()
	type testcase struct {
		A, B string
		Exp  int
	}
	testcases := map[string]testcase{
		"equal":                  {"1.2.3", "1.2.3", 0},
		"zero-padding":           {"1.0", "1.0.0", 0},
		"separators-ignored":     {"1.2.3", "1-2-3", 0},
		"simple-less":            {"1.0", "1.0.1", -1},
		"carry":                  {"2.0.9", "2.1.0", -1},
		"ten-after-nine":         {"0.9.9", "0.9.10", -1},
		"alpha-below-release":    {"1.0a1", "1.0", -1},
		"alpha-below-next-minor": {"1.0a1", "1.1", -1},
		"deeper-alpha-wins":      {"1.0a1", "1.0.0a2", -1},
		"patchlevel-above":       {"1.0.0", "1.0.0-p1", -1},
		"post-above":             {"1.0.0", "1.0.0.post1", -1},
		"head-above-everything":  {"99.99.99", "HEAD", -1},
		"head-commits-equal":     {"HEAD-f00dcafe", "HEAD-deadbeef", 0},
		"head-bare-equal":        {"HEAD", "HEAD-f00dcafe", 0},
	}
	for tcName, tcData := range testcases {
		tcData := tcData
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			a := mustNew(t, tcData.A)
			b := mustNew(t, tcData.B)
			assert.Equal(t, tcData.Exp, a.Compare(b))
			assert.Equal(t, -tcData.Exp, b.Compare(a))
		})
	}
}

func TestCompareStrings(t *testing.T) {
	t.Parallel()
	type testcase struct {
		A, B   string
		Exp    int
		ExpErr error
	}
	testcases := map[string]testcase{
		"both-empty":    {"", "", 0, version.ErrIncomparable},
		"left-empty":    {"", "1.0", -1, nil},
		"right-empty":   {"1.0", "", 1, nil},
		"ordinary":      {"1.0.0-alpha1", "1.0.0-beta1", -1, nil},
		"equal-padding": {"1.0", "1.0.0", 0, nil},
	}
	for tcName, tcData := range testcases {
		tcData := tcData
		t.Run(tcName, func(t *testing.T) {
			t.Parallel()
			cmp, err := version.Compare(tcData.A, tcData.B)
			if tcData.ExpErr != nil {
				assert.ErrorIs(t, err, tcData.ExpErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tcData.Exp, cmp)
		})
	}
}

func TestNull(t *testing.T) {
	t.Parallel()

	assert.True(t, version.Null.IsNull())
	assert.Equal(t, 0, version.Null.Compare(version.Null))
	assert.Equal(t, 0, version.Null.Compare(version.Version{}))

	// The null sentinel sits below even an explicit zero.
	zero := mustNew(t, "0")
	assert.Equal(t, -1, version.Null.Compare(zero))
	assert.Equal(t, 1, zero.Compare(version.Null))

	_, err := version.New("")
	assert.ErrorIs(t, err, version.ErrInvalidVersion)
}

func TestHead(t *testing.T) {
	t.Parallel()

	head := mustNew(t, "HEAD")
	assert.True(t, head.IsHead())
	assert.Equal(t, "", head.Commit())

	pinned, err := head.WithCommit("f00dcafe")
	require.NoError(t, err)
	assert.Equal(t, "HEAD-f00dcafe", pinned.String())
	assert.True(t, pinned.IsHead())
	assert.Equal(t, "f00dcafe", pinned.Commit())
	assert.Equal(t, 0, head.Compare(pinned))

	unpinned, err := pinned.WithCommit("")
	require.NoError(t, err)
	assert.Equal(t, "HEAD", unpinned.String())

	_, err = mustNew(t, "1.2.3").WithCommit("f00dcafe")
	assert.ErrorIs(t, err, version.ErrNotHead)

	// Only "HEAD" and "HEAD-<commit>" are development snapshots.
	assert.False(t, mustNew(t, "HEADLESS").IsHead())
	assert.False(t, mustNew(t, "1.2.3").IsHead())
}

func TestComponents(t *testing.T) {
	t.Parallel()

	ver := mustNew(t, "1.2.3-beta1")
	assert.Equal(t, "1", ver.Major().String())
	assert.Equal(t, "2", ver.Minor().String())
	assert.Equal(t, "3", ver.Patch().String())
	assert.Equal(t, "1.2", ver.MajorMinor().String())
	assert.Equal(t, "1.2.3", ver.MajorMinorPatch().String())
	assert.Equal(t, 0, ver.MajorMinorPatch().Compare(mustNew(t, "1.2.3")))

	short := mustNew(t, "1.2")
	assert.True(t, short.Patch().IsNull())
	assert.Equal(t, "1.2", short.MajorMinorPatch().String())

	assert.True(t, version.Null.Major().IsNull())
	assert.True(t, version.Null.MajorMinor().IsNull())
}

// versionish generates plausible version-bearing strings for the quick
// checks, assembled from the naming conventions the extraction rules target.
type versionish string

func (versionish) Generate(rand *rand.Rand, _ int) reflect.Value {
	fragments := []string{
		"0", "1", "2", "7", "10", "15", "04", "2023",
		"alpha", "beta", "rc", "pre", "p1", "post1",
		"v", "foo", "bar", "R16B", "x86_64", "linux", "src",
	}
	seps := []string{"", ".", "-", "_"}
	exts := []string{"", ".tar.gz", ".tar.xz", ".zip", ".tgz"}

	var ret strings.Builder
	n := 1 + rand.Intn(4)
	for i := 0; i < n; i++ {
		if i > 0 {
			ret.WriteString(seps[rand.Intn(len(seps))])
		}
		ret.WriteString(fragments[rand.Intn(len(fragments))])
	}
	ret.WriteString(exts[rand.Intn(len(exts))])
	return reflect.ValueOf(versionish(ret.String()))
}

func TestParseIdempotence(t *testing.T) {
	t.Parallel()

	testutil.QuickCheck(t,
		// test function
		func(in versionish) bool {
			first := version.Parse(string(in))
			if first.IsNull() {
				return true
			}
			second := version.Parse(first.String())
			return second.String() == first.String()
		},
		// dynamic inputs
		testutil.QuickConfig{},
		// static inputs
		[]interface{}{versionish("1.2.3")},
		[]interface{}{versionish("5.0.0-alpha10")},
		[]interface{}{versionish("premake-5.0.0-alpha10-src.zip")},
		[]interface{}{versionish("2023-09-28")},
		[]interface{}{versionish("R15B01")},
		[]interface{}{versionish("0.2.5-1")},
		[]interface{}{versionish("1.9.1-p243")},
		[]interface{}{versionish("1.93_02")},
		[]interface{}{versionish("boost_1_39_0")},
		[]interface{}{versionish("398-1")},
		[]interface{}{versionish("jpegsrc.v8d")},
		[]interface{}{versionish("fontforge_full-20230101")},
	)
}
