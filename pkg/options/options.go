package options

// DefaultOptions are the weights the checker ships with. Shared prefixes
// get more weight than shared suffixes because Arabic roots concentrate
// meaning toward the start of a word.
var DefaultOptions = ScorerOptions{
	PhoneticSubCost:     0.5,
	PrefixBonusWeight:   0.3,
	PrefixBonusCap:      4,
	SuffixBonusWeight:   0.1,
	SuffixBonusCap:      3,
	LengthPenaltyWeight: 0.1,
	LengthWindow:        0,
	MaxSuggestions:      5,
}

type ScorerOptions struct {
	PhoneticSubCost     float64 // substitution cost inside one phonetic group
	PrefixBonusWeight   float64 // distance reduction per shared leading character
	PrefixBonusCap      int     // shared leading characters counted at most
	SuffixBonusWeight   float64 // distance reduction per shared trailing character
	SuffixBonusCap      int     // shared trailing characters counted at most
	LengthPenaltyWeight float64 // distance added per character of length difference
	LengthWindow        int     // skip candidates whose length differs by more; 0 disables
	MaxSuggestions      int     // default suggestion limit per misspelled token
}

type Option interface {
	Apply(opts *ScorerOptions)
}

type FuncConfig struct {
	ops func(opts *ScorerOptions)
}

func (w FuncConfig) Apply(opts *ScorerOptions) {
	w.ops(opts)
}

func NewFuncOption(f func(opts *ScorerOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

func WithPhoneticSubCost(cost float64) Option {
	return NewFuncOption(func(opts *ScorerOptions) {
		opts.PhoneticSubCost = cost
	})
}

func WithPrefixBonusWeight(weight float64) Option {
	return NewFuncOption(func(opts *ScorerOptions) {
		opts.PrefixBonusWeight = weight
	})
}

func WithPrefixBonusCap(n int) Option {
	return NewFuncOption(func(opts *ScorerOptions) {
		opts.PrefixBonusCap = n
	})
}

func WithSuffixBonusWeight(weight float64) Option {
	return NewFuncOption(func(opts *ScorerOptions) {
		opts.SuffixBonusWeight = weight
	})
}

func WithSuffixBonusCap(n int) Option {
	return NewFuncOption(func(opts *ScorerOptions) {
		opts.SuffixBonusCap = n
	})
}

func WithLengthPenaltyWeight(weight float64) Option {
	return NewFuncOption(func(opts *ScorerOptions) {
		opts.LengthPenaltyWeight = weight
	})
}

// WithLengthWindow skips candidates whose character count differs from the
// misspelled word by more than n. 0 scores the full dictionary.
func WithLengthWindow(n int) Option {
	return NewFuncOption(func(opts *ScorerOptions) {
		opts.LengthWindow = n
	})
}

func WithMaxSuggestions(n int) Option {
	return NewFuncOption(func(opts *ScorerOptions) {
		opts.MaxSuggestions = n
	})
}

// Preset configurations

// WithPlainLevenshtein turns off every Arabic heuristic: substitutions
// always cost a full unit and no prefix/suffix/length adjustment is applied.
func WithPlainLevenshtein() Option {
	return NewFuncOption(func(opts *ScorerOptions) {
		opts.PhoneticSubCost = 1.0
		opts.PrefixBonusWeight = 0
		opts.SuffixBonusWeight = 0
		opts.LengthPenaltyWeight = 0
	})
}

// WithRootMatching strengthens the shared-prefix bonus for dictionaries of
// mostly derived forms, where the root letters dominate.
func WithRootMatching() Option {
	return NewFuncOption(func(opts *ScorerOptions) {
		opts.PrefixBonusWeight = 0.4
		opts.PrefixBonusCap = 5
		opts.SuffixBonusWeight = 0.2
	})
}
