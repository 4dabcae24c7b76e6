package cliutil

import (
	"strings"
)

// Wrap the string `s` to a maximum width `w`.  Pass `w` == 0 to do no wrapping.
//
// In order to have some room for slop to avoid things like a short word being on a line by itself,
// most lines are actually wrapped to `w - 5`.
func Wrap(w int, s string) string {
	return wrap(0, w, s)
}

// Wrap the string `s` to a maximum width `w` with leading indent `i`.  The first line is not
// indented (this is assumed to be done by caller).  Pass `w` == 0 to do no wrapping
//
// In order to have some room for slop to avoid things like a short word being on a line by itself,
// most lines are actually wrapped to `w - 5`.
func WrapIndent(i, w int, s string) string {
	return wrap(i, w, s)
}

// wrap greedily re-flows s, preserving the spacing between words that stay on the same line
// (so "sentence.  Two spaces" survives) and discarding it at line breaks.  Hard newlines in
// the input are kept.
func wrap(indent, width int, s string) string {
	if width == 0 {
		return s
	}
	max := width - 5
	if max <= indent {
		return s
	}
	prefix := strings.Repeat(" ", indent)
	var out strings.Builder
	for li, line := range strings.Split(s, "\n") {
		if li > 0 {
			out.WriteString("\n")
			out.WriteString(prefix)
		}
		lineLen := indent
		i := 0
		for i < len(line) {
			spaceEnd := i
			for spaceEnd < len(line) && line[spaceEnd] == ' ' {
				spaceEnd++
			}
			wordEnd := spaceEnd
			for wordEnd < len(line) && line[wordEnd] != ' ' {
				wordEnd++
			}
			spaces := line[i:spaceEnd]
			word := line[spaceEnd:wordEnd]
			i = wordEnd
			if word == "" {
				continue
			}
			switch {
			case lineLen == indent:
				out.WriteString(word)
				lineLen += len(word)
			case lineLen+len(spaces)+len(word) >= max:
				out.WriteString("\n")
				out.WriteString(prefix)
				out.WriteString(word)
				lineLen = indent + len(word)
			default:
				out.WriteString(spaces)
				out.WriteString(word)
				lineLen += len(spaces) + len(word)
			}
		}
	}
	return out.String()
}
