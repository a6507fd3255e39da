// Package spellcheck flags Arabic words absent from a reference dictionary
// and proposes likely corrections using a similarity metric tuned with
// Arabic-specific heuristics.
//
// The pipeline is: raw text -> whitespace tokens -> Normalize -> dictionary
// lookup -> (on miss) score every dictionary word -> ranked suggestions.
// All types are read-only after construction and safe for concurrent use.
package spellcheck

import (
	"sort"
	"strings"
	"unicode/utf8"

	"arspell/pkg/options"
)

// Checker classifies tokens against the dictionary and proposes
// corrections for the ones it does not know.
type Checker struct {
	dict   *Dictionary
	scorer *Scorer
	opts   options.ScorerOptions
}

// NewChecker builds a checker over the given dictionary. Scoring weights
// default to options.DefaultOptions unless overridden.
func NewChecker(dict *Dictionary, opts ...options.Option) *Checker {
	o := options.DefaultOptions
	for _, op := range opts {
		op.Apply(&o)
	}
	return &Checker{
		dict:   dict,
		scorer: &Scorer{opts: o},
		opts:   o,
	}
}

// Dictionary returns the dictionary the checker was built over.
func (c *Checker) Dictionary() *Dictionary {
	return c.dict
}

// Suggest scores every dictionary word against the normalized input and
// returns at most limit candidates, best first. Ordering is deterministic:
// ascending score, ties broken by shorter candidate, then lexicographic.
// A limit <= 0 or an empty dictionary yields no suggestions.
func (c *Checker) Suggest(word string, limit int) []Suggestion {
	return c.suggest(Normalize(word), limit)
}

// suggest is Suggest over an already-normalized word.
func (c *Checker) suggest(normalized string, limit int) []Suggestion {
	if limit <= 0 || c.dict.Len() == 0 {
		return nil
	}
	wlen := utf8.RuneCountInString(normalized)

	scored := make([]Suggestion, 0, c.dict.Len())
	for _, cand := range c.dict.Words() {
		if w := c.opts.LengthWindow; w > 0 {
			d := utf8.RuneCountInString(cand) - wlen
			if d < 0 {
				d = -d
			}
			if d > w {
				continue
			}
		}
		scored = append(scored, Suggestion{Word: cand, Score: c.scorer.Score(normalized, cand)})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score < scored[j].Score
		}
		li := utf8.RuneCountInString(scored[i].Word)
		lj := utf8.RuneCountInString(scored[j].Word)
		if li != lj {
			return li < lj
		}
		return scored[i].Word < scored[j].Word
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// Check tokenizes text on whitespace, normalizes each token and looks it
// up in the dictionary. Tokens the dictionary does not contain come back
// with ranked suggestions, keyed by the original surface form and in
// first-appearance order. Tokens without any Arabic letters are skipped;
// non-Arabic characters (glued punctuation, digits) are stripped before
// lookup. Repeated tokens are resolved once per call.
func (c *Checker) Check(text string) Result {
	var res Result
	seen := make(map[string]struct{})

	for _, tok := range strings.Fields(text) {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}

		norm := stripNonArabic(Normalize(tok))
		if norm == "" {
			continue
		}
		if c.dict.Contains(norm) {
			continue
		}
		res.Misspellings = append(res.Misspellings, Misspelling{
			Token:       tok,
			Suggestions: c.suggest(norm, c.opts.MaxSuggestions),
		})
	}
	return res
}
