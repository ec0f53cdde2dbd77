package classify

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// zero width space, non-joiner, joiner and the byte order mark
func isZeroWidth(r rune) bool {
	switch r {
	case '\u200B', '\u200C', '\u200D', '\uFEFF':
		return true
	}
	return false
}

func separatorFor(r rune) rune {
	if unicode.IsPunct(r) || unicode.IsSymbol(r) || unicode.IsControl(r) {
		return ' '
	}
	return r
}

// Normalize prepares free text for keyword matching. Zero-width characters
// are dropped, punctuation and symbols become spaces, the result is composed
// to NFC, lowercased and whitespace runs are collapsed to one space.
// Letters, digits and combining marks of every script are preserved.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	t := transform.Chain(
		runes.Remove(runes.Predicate(isZeroWidth)),
		norm.NFC,
		runes.Map(separatorFor),
	)
	out, _, err := transform.String(t, text)
	if err != nil {
		// transformers above never reject input, keep the function total anyway
		out = strings.Map(func(r rune) rune {
			if isZeroWidth(r) {
				return -1
			}
			return separatorFor(r)
		}, text)
	}

	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}
