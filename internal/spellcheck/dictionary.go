package spellcheck

import "strings"

// Dictionary is an immutable set of normalized reference words. It is
// built once and read-only afterwards, so concurrent Check calls need no
// synchronization.
type Dictionary struct {
	set   map[string]struct{}
	words []string
}

// NewDictionary builds a dictionary from raw word-list records, one word
// per record. Records are trimmed, blank records skipped, the rest
// normalized; duplicate normalized forms collapse to one entry. The order
// of first appearance is kept so candidate iteration is deterministic.
func NewDictionary(records []string) *Dictionary {
	d := &Dictionary{
		set:   make(map[string]struct{}, len(records)),
		words: make([]string, 0, len(records)),
	}
	for _, rec := range records {
		w := Normalize(strings.TrimSpace(rec))
		if w == "" {
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.words = append(d.words, w)
	}
	return d
}

// Contains reports whether the normalized word is in the dictionary.
// Callers pass already-normalized input; the dictionary never stores
// diacritics or letter variants.
func (d *Dictionary) Contains(normalized string) bool {
	_, ok := d.set[normalized]
	return ok
}

// Words returns the distinct normalized words in insertion order, used as
// the candidate pool for suggestions. The slice is shared; callers must
// treat it as read-only.
func (d *Dictionary) Words() []string {
	return d.words
}

func (d *Dictionary) Len() int {
	return len(d.words)
}
