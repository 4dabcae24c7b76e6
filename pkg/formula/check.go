package formula

import (
	"github.com/GunniBusch/brew-version-check/pkg/version"
)

type Verdict string

const (
	// VerdictOK means the version detected in the stable URL agrees with
	// the declared stable version.
	VerdictOK Verdict = "ok"
	// VerdictMismatch means both versions are known but disagree.
	VerdictMismatch Verdict = "mismatch"
	// VerdictUndetected means one side is missing: either no stable
	// version is declared, or the heuristics see nothing in the URL.
	VerdictUndetected Verdict = "undetected"
)

type Result struct {
	Name     string
	Declared version.Version
	Detected version.Version
	Verdict  Verdict
}

// Check compares a formula's declared stable version against what the
// detection heuristics see in its stable URL.  A git-tag download carries
// the version in the tag rather than the URL, so the tag is consulted
// first when present.
func Check(f *Formula) Result {
	ret := Result{Name: f.Name}
	if f.Versions.Stable != "" {
		if ver, err := version.New(f.Versions.Stable); err == nil {
			ret.Declared = ver
		}
	}
	if f.URLs.Stable.Tag != "" {
		ret.Detected = version.Parse(f.URLs.Stable.Tag)
	}
	if ret.Detected.IsNull() {
		ret.Detected = version.Detect(f.URLs.Stable.URL, true)
	}
	switch {
	case ret.Declared.IsNull() || ret.Detected.IsNull():
		ret.Verdict = VerdictUndetected
	case ret.Detected.Compare(ret.Declared) == 0:
		ret.Verdict = VerdictOK
	default:
		ret.Verdict = VerdictMismatch
	}
	return ret
}
