// Package version infers software release versions from download URLs and
// file names, and defines a total ordering over the detected versions,
// including prerelease markers (alpha/beta/pre/rc/patch/post) and the
// HEAD development-snapshot marker.
package version

import (
	"errors"
	"strings"
	"sync"
)

var (
	// ErrInvalidVersion is returned when constructing a Version from an
	// empty string.
	ErrInvalidVersion = errors.New("invalid version")
	// ErrIncomparable is returned when two operands have no defined
	// ordering relative to each other.
	ErrIncomparable = errors.New("versions are not comparable")
	// ErrNotHead is returned when updating the commit of a Version that is
	// not a HEAD form.
	ErrNotHead = errors.New("cannot update the commit of a non-HEAD version")
)

// Version is a detected release version.  The zero value is the null
// sentinel, meaning no version could be determined; it compares equal only
// to itself and orders below every concrete version.
type Version struct {
	value string
	cache *tokenCache
}

// tokenCache memoizes the token sequence of a Version.  It is shared by all
// copies of the Version it was allocated for; tokenization is a pure
// function of the immutable value string, so a single Once is all the
// synchronization it needs.
type tokenCache struct {
	once   sync.Once
	tokens []Token
}

// Null is the no-version sentinel.
var Null = Version{}

// New constructs a Version from a literal version string.  The string is
// taken as-is; use Detect or Parse to run the extraction heuristics.
func New(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrInvalidVersion
	}
	return Version{value: s, cache: new(tokenCache)}, nil
}

func (v Version) String() string { return v.value }

// IsNull reports whether v is the null sentinel.
func (v Version) IsNull() bool { return v.value == "" }

const headPrefix = "HEAD"

// IsHead reports whether v is a development-snapshot marker, i.e. "HEAD" or
// "HEAD-<commit>".
func (v Version) IsHead() bool {
	return v.value == headPrefix || strings.HasPrefix(v.value, headPrefix+"-")
}

// Commit returns the commit suffix of a HEAD version, or "" if there is
// none (or if v is not a HEAD version).
func (v Version) Commit() string {
	if strings.HasPrefix(v.value, headPrefix+"-") {
		return v.value[len(headPrefix)+1:]
	}
	return ""
}

// WithCommit returns a copy of a HEAD version carrying the given commit
// suffix.  It fails with ErrNotHead when v is not a HEAD form.
func (v Version) WithCommit(commit string) (Version, error) {
	if !v.IsHead() {
		return Version{}, ErrNotHead
	}
	if commit == "" {
		return New(headPrefix)
	}
	return New(headPrefix + "-" + commit)
}

func (v Version) tokens() []Token {
	if v.cache == nil {
		return nil
	}
	v.cache.once.Do(func() {
		v.cache.tokens = tokenize(v.value)
	})
	return v.cache.tokens
}

// Compare returns -1, 0, or 1 depending on whether v orders before, equal
// to, or after other.
//
// The null sentinel compares equal to itself and below everything else.  A
// HEAD version orders above every concrete version, and two HEAD versions
// are equal regardless of their commit suffixes.  Concrete versions are
// tokenized and merged left to right, padding the shorter sequence with
// null tokens.
func (v Version) Compare(other Version) int {
	switch {
	case v.IsNull() && other.IsNull():
		return 0
	case v.IsNull():
		return -1
	case other.IsNull():
		return 1
	}
	if v.value == other.value {
		return 0
	}
	switch {
	case v.IsHead() && other.IsHead():
		return 0
	case v.IsHead():
		return 1
	case other.IsHead():
		return -1
	}

	ltokens := v.tokens()
	rtokens := other.tokens()
	max := len(ltokens)
	if len(rtokens) > max {
		max = len(rtokens)
	}
	l, r := 0, 0
	for l < max {
		a, b := nullToken, nullToken
		if l < len(ltokens) {
			a = ltokens[l]
		}
		if r < len(rtokens) {
			b = rtokens[r]
		}
		switch {
		case a.Compare(b) == 0:
			l++
			r++
		case a.IsNumeric() && !b.IsNumeric():
			if !a.isZero() {
				return 1
			}
			// A zero component is invisible against a non-numeric token:
			// skip it and compare the non-numeric token against this
			// side's next component.
			l++
		case !a.IsNumeric() && b.IsNumeric():
			if !b.isZero() {
				return -1
			}
			r++
		default:
			return a.Compare(b)
		}
	}
	return 0
}

// Compare orders two version strings, returning -1, 0, or 1.  An empty
// operand is not a version: against a non-empty operand the non-empty side
// is greater, and two empty operands are unordered (ErrIncomparable).
func Compare(a, b string) (int, error) {
	switch {
	case a == "" && b == "":
		return 0, ErrIncomparable
	case a == "":
		return -1, nil
	case b == "":
		return 1, nil
	}
	av, err := New(a)
	if err != nil {
		return 0, err
	}
	bv, err := New(b)
	if err != nil {
		return 0, err
	}
	return av.Compare(bv), nil
}

// tokenAt returns the token at position i, or the null token when the
// sequence is shorter than that.
func (v Version) tokenAt(i int) Token {
	tokens := v.tokens()
	if i < len(tokens) {
		return tokens[i]
	}
	return nullToken
}

// Major returns the first token of the version.
func (v Version) Major() Token { return v.tokenAt(0) }

// Minor returns the second token of the version.
func (v Version) Minor() Token { return v.tokenAt(1) }

// Patch returns the third token of the version.
func (v Version) Patch() Token { return v.tokenAt(2) }

// MajorMinor returns a Version built from the first two tokens, e.g.
// "1.2" for "1.2.3-beta1".
func (v Version) MajorMinor() Version { return v.truncate(2) }

// MajorMinorPatch returns a Version built from the first three tokens,
// e.g. "1.2.3" for "1.2.3-beta1".
func (v Version) MajorMinorPatch() Version { return v.truncate(3) }

func (v Version) truncate(n int) Version {
	tokens := v.tokens()
	if len(tokens) == 0 {
		return v
	}
	if len(tokens) > n {
		tokens = tokens[:n]
	}
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	ver, err := New(strings.Join(parts, "."))
	if err != nil {
		return v
	}
	return ver
}
