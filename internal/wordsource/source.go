// Package wordsource loads the reference word list the dictionary is
// built from. Sources return raw records; trimming, normalization and
// deduplication happen in the dictionary itself.
package wordsource

// A Source yields the raw records of a word list, one word per record.
// A failed read is non-fatal for the checker: the caller builds an empty
// dictionary and reports the error as a warning.
type Source interface {
	Records() ([]string, error)
}
