package spellcheck

import (
	"strings"
	"unicode"
)

// Arabic diacritics (harakat, tanween, shadda, sukun and friends) occupy
// U+064B..U+065F. They mark vowel sounds and are not part of a letter's
// identity for spelling, so normalization deletes them outright.
const (
	diacriticLo = 'ً'
	diacriticHi = 'ٟ'
)

// canonical collapses interchangeable letter variants to one form.
// Kept as data rather than branches so the table can grow without
// touching Normalize.
var canonical = map[rune]rune{
	'ى': 'ي', // ى alif maksura -> ي ya
	'ة': 'ه', // ة ta marbuta -> ه ha
	'أ': 'ا', // أ hamza above alif -> ا alif
	'إ': 'ا', // إ hamza below alif -> ا alif
	'آ': 'ا', // آ madda alif -> ا alif
}

// Normalize strips diacritics and collapses orthographic variants so that
// equivalent spellings compare equal. Characters outside the tables pass
// through unchanged, which makes the function total and idempotent.
// Whitespace and punctuation are left alone; tokenization handles splitting.
func Normalize(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if r >= diacriticLo && r <= diacriticHi {
			continue
		}
		if c, ok := canonical[r]; ok {
			r = c
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isArabicLetter reports whether r is a letter from the Arabic block.
// Arabic punctuation (؟ ، ؛) lives in the same block and must not count.
func isArabicLetter(r rune) bool {
	return r >= '؀' && r <= 'ۿ' && unicode.IsLetter(r)
}

// stripNonArabic drops everything but Arabic letters, detaching the
// punctuation and digits that whitespace tokenization left glued to a
// word. Returns "" for tokens with no Arabic letters at all.
func stripNonArabic(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isArabicLetter(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
