package riasec

import (
	"sort"
	"strings"
)

// CascadeSimilarity scores a user code against a career code on the 0-100
// scale used by the advanced matcher. Rules are evaluated strictly in priority
// order and the first match wins; the thresholds are calibrated against the
// advanced matcher's weights and boost and must not be reused for the TF-IDF
// path. The cascade is order-sensitive and asymmetric: position in the user
// code matters more than raw character overlap.
func CascadeSimilarity(userCode, careerCode string) float64 {
	user := Clean(userCode)
	career := Clean(careerCode)

	if career == "" {
		return 0
	}
	if user == "" {
		return 30
	}

	// Exact full-code match in the same order.
	if user == career {
		return 100
	}

	// Exact first two characters in the same order.
	if len(user) >= 2 && len(career) >= 2 && user[:2] == career[:2] {
		return 95
	}

	// First character matches and the second appears anywhere.
	if user[0] == career[0] && len(user) >= 2 && strings.ContainsRune(career, rune(user[1])) {
		return 90
	}

	// First character matches and any remaining user character appears.
	if user[0] == career[0] {
		for _, ch := range user[1:] {
			if strings.ContainsRune(career, ch) {
				return 85
			}
		}
	}

	// Both of the user's first two characters appear somewhere, order-independent.
	if len(user) >= 2 &&
		strings.ContainsRune(career, rune(user[0])) &&
		strings.ContainsRune(career, rune(user[1])) {
		firstPos := strings.IndexByte(career, user[0])
		secondPos := strings.IndexByte(career, user[1])
		if firstPos >= 0 && secondPos >= 0 && secondPos > firstPos {
			// Relative order preserved.
			return 85
		}
		return 80
	}

	// First character appears anywhere.
	if strings.ContainsRune(career, rune(user[0])) {
		return 75
	}

	common := sharedLetterCount(user, career)

	// At least two of the user's letters appear as a set.
	if common >= 2 {
		positions := make([]int, 0, len(user))
		for i := 0; i < len(user); i++ {
			if pos := strings.IndexByte(career, user[i]); pos >= 0 {
				positions = append(positions, pos)
			}
		}
		if sort.IntsAreSorted(positions) {
			return 75
		}
		return 70
	}

	if common >= 1 {
		return 60
	}

	// Floor for completely different codes.
	return 30
}

// JaccardSimilarity is the two-character variant used by the TF-IDF matcher,
// scored in [0,1]. A career code shorter than two characters yields 0. The
// first two characters matching exactly yields 1.0; otherwise the Jaccard
// overlap between the user's full character set and the career's first two
// characters applies, floored at 0.7 when the leading characters agree.
func JaccardSimilarity(userCode, careerCode string) float64 {
	if len(careerCode) < 2 {
		return 0
	}

	user := strings.ToUpper(userCode)
	career := strings.ToUpper(careerCode)
	careerPrimary := career[:2]

	if len(user) >= 2 && user[:2] == careerPrimary {
		return 1.0
	}

	userChars := letterSet(user)
	careerChars := letterSet(careerPrimary)

	intersection := 0
	union := len(careerChars)
	for ch := range userChars {
		if careerChars[ch] {
			intersection++
		} else {
			union++
		}
	}

	if union == 0 {
		return 0
	}

	jaccard := float64(intersection) / float64(union)

	if len(user) > 0 && user[0] == careerPrimary[0] && jaccard < 0.7 {
		jaccard = 0.7
	}

	return jaccard
}

func sharedLetterCount(a, b string) int {
	count := 0
	for ch := range letterSet(a) {
		if strings.ContainsRune(b, rune(ch)) {
			count++
		}
	}
	return count
}

func letterSet(s string) map[byte]bool {
	set := make(map[byte]bool, len(s))
	for i := 0; i < len(s); i++ {
		set[s[i]] = true
	}
	return set
}
