// Package textutil provides case and accent folding shared by the parsers and mergers.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold returns a case-folded, whitespace-trimmed key suitable for
// case-insensitive comparison. A Caser holds state, so one is built per call.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// StripAccents removes combining marks, so "Expérience" becomes "Experience"
func StripAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// FoldAccents folds case and strips accents
func FoldAccents(s string) string {
	return Fold(StripAccents(s))
}
