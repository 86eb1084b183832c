package riasec

import (
	"sort"
	"strings"
)

// Synthesize converts six raw trait scores into the user's 3-letter code.
// Letters are ranked by score descending; equal scores break ties
// alphabetically so identical score sets always yield identical codes.
// Absent letters count as zero.
func Synthesize(scores map[string]float64) string {
	type ranked struct {
		letter string
		score  float64
	}

	pairs := make([]ranked, 0, len(Letters))
	for _, letter := range Letters {
		pairs = append(pairs, ranked{letter: letter, score: scores[letter]})
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].score != pairs[j].score {
			return pairs[i].score > pairs[j].score
		}
		return pairs[i].letter < pairs[j].letter
	})

	var b strings.Builder
	for _, p := range pairs[:3] {
		b.WriteString(p.letter)
	}
	return b.String()
}
