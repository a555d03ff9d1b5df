// Package naming normalises names taken from diagrams.
package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented letters and drops the combining marks,
// so "Účet" becomes "Ucet".
func stripMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func keep(s string, allowBackslash bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range stripMarks(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '\\' && allowBackslash:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Sanitize turns a diagram label into a type or package name: diacritics
// are stripped and only ASCII letters, digits and backslashes survive.
func Sanitize(name string) string {
	return keep(name, true)
}

// Webalize returns the lowercase ASCII form of name, used for table names.
func Webalize(name string) string {
	return strings.ToLower(keep(name, false))
}
