package version

import (
	"strings"
)

// TokenKind tags the variant of a Token.
type TokenKind int

const (
	// KindNull is the synthetic padding token used when one version runs out
	// of components before the other; the tokenizer never produces it.
	KindNull TokenKind = iota
	// KindNumeric is a run of digits.
	KindNumeric
	// KindString is a run of letters that is not a recognized marker.
	KindString
	// KindAlpha .. KindPost are the marker families, each carrying an
	// optional numeric revision.
	KindAlpha
	KindBeta
	KindPre
	KindRC
	KindPatch
	KindPost
)

// Token is one classified unit of a version string.
type Token struct {
	Kind TokenKind
	// Text is the raw matched text ("" for the null token).
	Text string
	// Num is the marker revision for the composite kinds (0 when the
	// revision is absent).  Numeric tokens compare on Text, not Num, so
	// that absurdly long digit runs don't overflow.
	Num int
}

var nullToken = Token{Kind: KindNull}

func (t Token) String() string { return t.Text }

// IsNull reports whether t is the synthetic padding token.
func (t Token) IsNull() bool { return t.Kind == KindNull }

// IsNumeric reports whether t is a run of digits.
func (t Token) IsNumeric() bool { return t.Kind == KindNumeric }

// isZero reports whether a numeric token has the value 0.
func (t Token) isZero() bool {
	return t.Kind == KindNumeric && strings.TrimLeft(t.Text, "0") == ""
}

// markerRank orders the marker families relative to each other; every family
// ranks below an implied final release, so all ranks are negative.
var markerRank = map[TokenKind]int{
	KindAlpha: -6,
	KindBeta:  -5,
	KindPre:   -4,
	KindRC:    -3,
	KindPatch: -2,
	KindPost:  -1,
}

// Compare returns -1, 0, or 1 depending on whether t orders before, equal
// to, or after other.
func (t Token) Compare(other Token) int {
	switch {
	case t.Kind == KindNull && other.Kind == KindNull:
		return 0
	case t.Kind == KindNull:
		return nullCompare(other)
	case other.Kind == KindNull:
		return -nullCompare(t)
	case t.Kind == KindNumeric && other.Kind == KindNumeric:
		return compareDigits(t.Text, other.Text)
	case t.Kind == KindNumeric:
		// A numeric continuation outranks any trailing letter suffix.
		return 1
	case other.Kind == KindNumeric:
		return -1
	}
	tRank, tMarker := markerRank[t.Kind]
	oRank, oMarker := markerRank[other.Kind]
	switch {
	case tMarker && oMarker && t.Kind == other.Kind:
		return compareInts(t.Num, other.Num)
	case tMarker && oMarker:
		return compareInts(tRank, oRank)
	default:
		return strings.Compare(t.Text, other.Text)
	}
}

// nullCompare orders the null token against a concrete token.
func nullCompare(other Token) int {
	switch other.Kind {
	case KindNumeric:
		if other.isZero() {
			return 0
		}
		return -1
	case KindAlpha, KindBeta, KindPre, KindRC:
		// An explicit early-prerelease marker ranks below a release that
		// simply has no further component.
		return 1
	default:
		return -1
	}
}

// compareDigits compares two digit runs by numeric value without converting
// them to machine integers.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
