// Package fold canonicalizes free-form text from the submission form so that
// member names and vocabulary flags can be matched by plain substring checks.
// Submissions are mostly Arabic, where the same word arrives with or without
// diacritics, tatweel stretching, or presentation-form ligatures
package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const tatweel = 'ـ'

// folder is a reusable transform chain: NFKC compatibility fold, then drop
// combining marks (covers Arabic harakat), then recompose
var folder = transform.Chain(
	norm.NFKD,
	runes.Remove(runes.In(unicode.Mn)),
	runes.Remove(runes.Predicate(func(r rune) bool { return r == tatweel })),
	norm.NFKC,
)

// Fold returns the canonical matching form of s: compatibility-normalized,
// mark-stripped, alef-unified, lowercased, with whitespace collapsed
func Fold(s string) string {
	out, _, err := transform.String(folder, s)
	if err != nil {
		// transform only fails on broken UTF-8; fall back to the raw input
		out = s
	}
	out = unifyAlef(out)
	out = strings.ToLower(out)
	return strings.Join(strings.Fields(out), " ")
}

// unifyAlef maps hamza/madda alef variants onto bare alef so that the common
// spelling drift in names ("احمد" vs "أحمد") still matches
func unifyAlef(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case 'آ', 'أ', 'إ': // آ أ إ
			return 'ا' // ا
		case 'ة': // ة
			return 'ه' // ه
		default:
			return r
		}
	}, s)
}
