package spellcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arspell/pkg/options"
)

func TestScoreEmptyBoundary(t *testing.T) {
	s := NewScorer()
	assert.InDelta(t, 3.0, s.Score("", "كتب"), 1e-9)
	assert.InDelta(t, 3.0, s.Score("كتب", ""), 1e-9)
	assert.InDelta(t, 0.0, s.Score("", ""), 1e-9)
}

func TestScoreIdenticalIsMinimal(t *testing.T) {
	s := NewScorer()
	// base 0, prefix bonus 4*0.3, suffix bonus 3*0.1, no length penalty.
	assert.InDelta(t, -1.5, s.Score("كتاب", "كتاب"), 1e-9)

	exact := s.Score("كتاب", "كتاب")
	for _, cand := range []string{"كتب", "كاتب", "مكتبه", "باب", "ا"} {
		assert.Less(t, exact, s.Score("كتاب", cand),
			"exact match must beat %q", cand)
	}
}

func TestPhoneticGroups(t *testing.T) {
	assert.True(t, samePhoneticGroup('س', 'ص'))
	assert.True(t, samePhoneticGroup('ه', 'خ'))
	assert.True(t, samePhoneticGroup('ز', 'ظ'))
	assert.False(t, samePhoneticGroup('س', 'ت'), "cross-group")
	assert.False(t, samePhoneticGroup('ف', 'ق'), "ungrouped letters")
	assert.False(t, samePhoneticGroup('س', 'س'), "identity is not a substitution")
}

func TestDistancePhoneticSubstitution(t *testing.T) {
	s := NewScorer()
	// ت and ط share a group: half-cost substitution.
	assert.InDelta(t, 0.5, s.distance([]rune("تمر"), []rune("طمر")), 1e-9)
	// ق is ungrouped: full unit.
	assert.InDelta(t, 1.0, s.distance([]rune("تمر"), []rune("قمر")), 1e-9)
	// Insertions and deletions always cost a full unit.
	assert.InDelta(t, 1.0, s.distance([]rune("تمر"), []rune("تمرا")), 1e-9)
	assert.InDelta(t, 1.0, s.distance([]rune("تمر"), []rune("مر")), 1e-9)
}

func TestScorePrefixAgreementFavored(t *testing.T) {
	s := NewScorer()
	// Same edit distance (1), but the candidate sharing the leading root
	// letters must score lower than the one sharing only the tail.
	withPrefix := s.Score("كتب", "كتبت")
	withoutPrefix := s.Score("كتب", "تكتب")
	assert.Less(t, withPrefix, withoutPrefix)
}

func TestScoreLengthPenalty(t *testing.T) {
	s := NewScorer(
		options.WithPrefixBonusWeight(0),
		options.WithSuffixBonusWeight(0),
	)
	// Pure insertions plus 0.1 per character of length difference.
	assert.InDelta(t, 1.1, s.Score("اب", "ابج"), 1e-9)
	assert.InDelta(t, 2.2, s.Score("اب", "ابجد"), 1e-9)
}

func TestScorePlainLevenshteinPreset(t *testing.T) {
	s := NewScorer(options.WithPlainLevenshtein())
	assert.InDelta(t, 1.0, s.Score("تمر", "طمر"), 1e-9)
	assert.InDelta(t, 0.0, s.Score("كتاب", "كتاب"), 1e-9)
}
