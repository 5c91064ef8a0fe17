package skills

import "strings"

// Similarity scores how alike two skill phrases are, from 0 (disjoint) to 1
// (identical). The matcher only calls it after the exact tiers have failed,
// so implementations may assume the inputs differ.
type Similarity func(a, b string) float64

// TokenJaccard is the default Similarity: intersection-over-union of
// lower-cased whitespace tokens.
func TokenJaccard(a, b string) float64 {
	tokensA := tokenSet(a)
	tokensB := tokenSet(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	intersection := 0
	for token := range tokensA {
		if tokensB[token] {
			intersection++
		}
	}

	union := len(tokensA) + len(tokensB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, token := range strings.Fields(strings.ToLower(s)) {
		set[token] = true
	}
	return set
}
