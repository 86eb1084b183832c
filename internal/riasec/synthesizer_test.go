package riasec

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynthesizeOrdersByScoreDescending(t *testing.T) {
	code := Synthesize(map[string]float64{
		"R": 10, "I": 30, "A": 5, "S": 40, "E": 20, "C": 1,
	})
	assert.Equal(t, "SIE", code)
}

func TestSynthesizeBreaksTiesAlphabetically(t *testing.T) {
	code := Synthesize(map[string]float64{
		"R": 5, "I": 5, "A": 5, "S": 0, "E": 0, "C": 0,
	})
	assert.Equal(t, "AIR", code)
}

func TestSynthesizeTreatsMissingScoresAsZero(t *testing.T) {
	code := Synthesize(map[string]float64{"E": 2})
	assert.Equal(t, "E", code[:1])
	assert.Len(t, code, 3)
}

func TestSynthesizeAlwaysThreeValidLetters(t *testing.T) {
	cases := []map[string]float64{
		{},
		{"R": 0, "I": 0, "A": 0, "S": 0, "E": 0, "C": 0},
		{"R": 100, "I": 100, "A": 100, "S": 100, "E": 100, "C": 100},
		{"C": 7, "A": 7, "R": 3},
	}

	for _, scores := range cases {
		code := Synthesize(scores)
		assert.Len(t, code, 3)
		for _, ch := range code {
			assert.True(t, strings.ContainsRune("RIASEC", ch), "unexpected letter %q", ch)
		}
	}
}

func TestSynthesizeDeterministicForEqualScoreSets(t *testing.T) {
	scores := map[string]float64{"R": 2, "I": 2, "A": 2, "S": 2, "E": 2, "C": 2}
	first := Synthesize(scores)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Synthesize(scores))
	}
	assert.Equal(t, "ACE", first)
}
