package domain

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// maxNormalizeRounds bounds the trim/lower/compose loop. Real input settles
// after one or two rounds.
const maxNormalizeRounds = 8

// Normalize trims surrounding whitespace, lower-cases w and composes it to
// NFC. Two words are the same word iff their normalized forms are equal.
// An empty result means w carried no word at all.
//
// Invalid UTF-8 is replaced with U+FFFD, which is how encoding/json writes
// it, so the normalized form is exactly what gets persisted. The steps repeat
// until the result stops changing: composition can produce an upper-case
// letter that the next lower-casing maps again, and Normalize(Normalize(w))
// must equal Normalize(w). Input that never settles has no word in it.
func Normalize(w string) string {
	if !utf8.ValidString(w) {
		w = strings.ToValidUTF8(w, string(utf8.RuneError))
	}
	for range maxNormalizeRounds {
		next := normalizeOnce(w)
		if next == w {
			return next
		}
		w = next
	}
	return ""
}

func normalizeOnce(w string) string {
	w = strings.TrimSpace(w)
	if w == "" {
		return ""
	}
	// A Caser keeps state between calls and must not be shared.
	return norm.NFC.String(cases.Lower(language.Und).String(w))
}
