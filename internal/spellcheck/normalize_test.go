package spellcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeVariants(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"alif maksura to ya", "قرى", "قري"},
		{"ta marbuta to ha", "مدرسة", "مدرسه"},
		{"hamza above alif", "أحمد", "احمد"},
		{"hamza below alif", "إسلام", "اسلام"},
		{"madda alif", "آمن", "امن"},
		{"mixed variants", "قرىة", "قريه"},
		{"empty", "", ""},
		{"non-arabic passthrough", "hello, 42!", "hello, 42!"},
		{"whitespace untouched", "كتاب مدرسة", "كتاب مدرسه"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeRemovesDiacritics(t *testing.T) {
	// كَتَبَ with fatha marks reduces to the bare letters.
	assert.Equal(t, "كتب", Normalize("كَتَبَ"))
	// A fully vocalized word equals its unvocalized spelling.
	assert.Equal(t, Normalize("مدرسه"), Normalize("مَدْرَسَة"))
}

func TestNormalizeIdempotent(t *testing.T) {
	words := []string{"قرىة", "مَدْرَسَة", "أإآ", "كتاب", "hello", "", "ىىى"}
	for _, w := range words {
		once := Normalize(w)
		assert.Equal(t, once, Normalize(once), "normalize(normalize(%q))", w)
	}
}

func TestStripNonArabic(t *testing.T) {
	assert.Equal(t, "كتاب", stripNonArabic("كتاب."))
	assert.Equal(t, "كتاب", stripNonArabic("(كتاب)"))
	assert.Equal(t, "فلم", stripNonArabic("فلم،"), "arabic comma is punctuation, not a letter")
	assert.Equal(t, "", stripNonArabic("؟!"))
	assert.Equal(t, "", stripNonArabic("hello42"))
	assert.Equal(t, "", stripNonArabic(""))
}
