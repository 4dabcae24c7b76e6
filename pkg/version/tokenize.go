package version

import (
	"regexp"
	"strconv"
	"strings"
)

// The sub-patterns below are tried in a fixed priority order, both while
// scanning and while classifying, so that e.g. "beta2" becomes one Beta
// token and is never split into a String "beta" plus a Numeric "2".
const (
	alphaPattern = `alpha[0-9]*|a[0-9]+`
	betaPattern  = `beta[0-9]*|b[0-9]+`
	prePattern   = `pre[0-9]*`
	rcPattern    = `rc[0-9]*`
	patchPattern = `p[0-9]*`
	// The leading `.` is deliberately a wildcard: ".post1", "-post1", and
	// "_post1" are all one Post token.
	postPattern    = `.post[0-9]+`
	numericPattern = `[0-9]+`
	stringPattern  = `[a-z]+`
)

// scanPattern matches the next token at any position; anything it skips
// (separators like "." / "-" / "_") carries no ordering information.
var scanPattern = regexp.MustCompile(`(?i)` + strings.Join([]string{
	alphaPattern,
	betaPattern,
	prePattern,
	rcPattern,
	patchPattern,
	postPattern,
	numericPattern,
	stringPattern,
}, `|`))

// tokenClasses maps matched text back to a token kind; first full match
// wins, in the same priority order as scanPattern.
var tokenClasses = []struct {
	kind TokenKind
	re   *regexp.Regexp
}{
	{KindAlpha, regexp.MustCompile(`(?i)^(?:` + alphaPattern + `)$`)},
	{KindBeta, regexp.MustCompile(`(?i)^(?:` + betaPattern + `)$`)},
	{KindPre, regexp.MustCompile(`(?i)^(?:` + prePattern + `)$`)},
	{KindRC, regexp.MustCompile(`(?i)^(?:` + rcPattern + `)$`)},
	{KindPatch, regexp.MustCompile(`(?i)^(?:` + patchPattern + `)$`)},
	{KindPost, regexp.MustCompile(`(?i)^(?:` + postPattern + `)$`)},
	{KindNumeric, regexp.MustCompile(`^(?:` + numericPattern + `)$`)},
	{KindString, regexp.MustCompile(`(?i)^(?:` + stringPattern + `)$`)},
}

var trailingDigits = regexp.MustCompile(`[0-9]+$`)

// newToken classifies a scanned substring.
func newToken(text string) Token {
	for _, class := range tokenClasses {
		if !class.re.MatchString(text) {
			continue
		}
		tok := Token{Kind: class.kind, Text: text}
		if _, marker := markerRank[class.kind]; marker {
			if digits := trailingDigits.FindString(text); digits != "" {
				// A marker revision is always short enough for an int.
				tok.Num, _ = strconv.Atoi(digits)
			}
		}
		return tok
	}
	return Token{Kind: KindString, Text: text}
}

// tokenize splits a version string into an ordered sequence of tokens.  It
// is total for any input: in the worst case the whole string is discarded
// as unmatched separators and the sequence is empty.
func tokenize(s string) []Token {
	matches := scanPattern.FindAllString(s, -1)
	tokens := make([]Token, 0, len(matches))
	for _, match := range matches {
		tokens = append(tokens, newToken(match))
	}
	return tokens
}
