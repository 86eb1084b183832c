package matcher

import "strings"

// overlapRatio scores how much of the user's token set appears in the
// candidate text: |user tokens ∩ candidate tokens| / |user tokens|.
// An empty user list is neutral (0.5), never an error and never zero; the
// empty-set branch short-circuits before any division can occur.
func overlapRatio(userTerms []string, candidateText string) float64 {
	if len(userTerms) == 0 {
		return 0.5
	}

	userWords := wordSet(strings.ToLower(strings.Join(userTerms, " ")))
	if len(userWords) == 0 {
		return 0
	}

	candidateWords := wordSet(strings.ToLower(candidateText))

	intersection := 0
	for w := range userWords {
		if candidateWords[w] {
			intersection++
		}
	}

	return float64(intersection) / float64(len(userWords))
}

func wordSet(text string) map[string]bool {
	set := map[string]bool{}
	for _, w := range strings.Fields(text) {
		set[w] = true
	}
	return set
}
