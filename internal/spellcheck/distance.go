package spellcheck

import (
	"arspell/pkg/options"
)

// Scorer computes a weighted distance between two normalized words.
// Lower means more similar; the suggestion engine sorts ascending.
// A Scorer is stateless after construction and safe for concurrent use.
type Scorer struct {
	opts options.ScorerOptions
}

func NewScorer(opts ...options.Option) *Scorer {
	o := options.DefaultOptions
	for _, op := range opts {
		op.Apply(&o)
	}
	return &Scorer{opts: o}
}

// Score combines the phonetic-weighted edit distance with a shared-prefix
// bonus, a smaller shared-suffix bonus and a length mismatch penalty:
//
//	score = base − prefixWeight·min(prefix, prefixCap)
//	             − suffixWeight·min(suffix, suffixCap)
//	             + lengthWeight·|len(a) − len(b)|
//
// Both inputs must already be normalized. An empty input scores exactly the
// length of the other string (classic Levenshtein boundary). Identical
// strings always score the minimum over any candidate set: base distance is
// zero and their adjustments are maximal for their length. Scores can go
// negative; only the ordering matters.
func (s *Scorer) Score(misspelled, candidate string) float64 {
	ra := []rune(misspelled)
	rb := []rune(candidate)
	if len(ra) == 0 {
		return float64(len(rb))
	}
	if len(rb) == 0 {
		return float64(len(ra))
	}

	base := s.distance(ra, rb)

	prefix := commonPrefixLen(ra, rb)
	if prefix > s.opts.PrefixBonusCap {
		prefix = s.opts.PrefixBonusCap
	}
	suffix := commonSuffixLen(ra, rb)
	if suffix > s.opts.SuffixBonusCap {
		suffix = s.opts.SuffixBonusCap
	}
	diff := len(ra) - len(rb)
	if diff < 0 {
		diff = -diff
	}

	return base -
		s.opts.PrefixBonusWeight*float64(prefix) -
		s.opts.SuffixBonusWeight*float64(suffix) +
		s.opts.LengthPenaltyWeight*float64(diff)
}

// distance is the weighted Levenshtein core. Insertions and deletions cost
// one unit; a substitution costs PhoneticSubCost when both letters share a
// phonetic group and a full unit otherwise. Two sliding DP rows keep memory
// at O(len(b)).
func (s *Scorer) distance(ra, rb []rune) float64 {
	la, lb := len(ra), len(rb)
	prev := make([]float64, lb+1)
	curr := make([]float64, lb+1)
	for j := 1; j <= lb; j++ {
		prev[j] = float64(j)
	}
	for i := 1; i <= la; i++ {
		curr[0] = float64(i)
		for j := 1; j <= lb; j++ {
			var sub float64
			if ra[i-1] != rb[j-1] {
				sub = s.substitutionCost(ra[i-1], rb[j-1])
			}
			curr[j] = minf(prev[j]+1, minf(curr[j-1]+1, prev[j-1]+sub))
		}
		copy(prev, curr)
	}
	return prev[lb]
}

func (s *Scorer) substitutionCost(a, b rune) float64 {
	if samePhoneticGroup(a, b) {
		return s.opts.PhoneticSubCost
	}
	return 1
}

func commonPrefixLen(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func commonSuffixLen(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
