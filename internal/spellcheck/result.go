package spellcheck

// Suggestion pairs a candidate word with its distance score.
// Lower scores rank first.
type Suggestion struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// Misspelling ties a token, in its original surface form, to its ranked
// correction candidates, best first. Suggestions is empty when the
// dictionary produced no candidates.
type Misspelling struct {
	Token       string       `json:"token"`
	Suggestions []Suggestion `json:"suggestions"`
}

// Result is the outcome of one Check call. Misspellings preserves the
// order in which tokens first appeared in the input; correctly spelled
// tokens are omitted. The caller owns the value after return.
type Result struct {
	Misspellings []Misspelling `json:"misspellings"`
}

// Clean reports whether the checked text had no misspellings.
func (r Result) Clean() bool {
	return len(r.Misspellings) == 0
}
