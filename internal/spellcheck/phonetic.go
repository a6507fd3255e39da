package spellcheck

// phoneticGroups lists letters commonly confused by sound. Letter variants
// the normalizer already collapses (hamza/alif forms, alif maksura,
// ta marbuta) are deliberately absent: scoring always runs on normalized
// input, so those confusions never reach the scorer.
var phoneticGroups = [][]rune{
	{'و', 'ؤ'}, // waw and hamza-waw
	{'ك', 'گ'}, // kaf and gaf
	{'ت', 'ط'}, // ta-like sounds
	{'س', 'ص'}, // seen-like sounds
	{'د', 'ض'}, // dal-like sounds
	{'ح', 'ه', 'خ'}, // throaty sounds
	{'ز', 'ذ', 'ظ'}, // z-like sounds
}

// phoneticGroupOf maps each grouped letter to its group index. A letter
// belongs to at most one group; ungrouped letters only match themselves.
var phoneticGroupOf = func() map[rune]int {
	m := make(map[rune]int)
	for i, g := range phoneticGroups {
		for _, r := range g {
			m[r] = i
		}
	}
	return m
}()

func samePhoneticGroup(a, b rune) bool {
	ga, ok := phoneticGroupOf[a]
	if !ok {
		return false
	}
	gb, ok := phoneticGroupOf[b]
	return ok && ga == gb
}
