package matcher

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeDropsStopWords(t *testing.T) {
	tokens := tokenize("The quick brown fox jumps over the lazy dog")
	assert.Equal(t, []string{"quick", "brown", "fox", "jumps", "lazy", "dog"}, tokens)
}

func TestTokenizeNormalizesCase(t *testing.T) {
	tokens := tokenize("Machine-Learning ENGINEER")
	assert.Equal(t, []string{"machine-learning", "engineer"}, tokens)
}

func TestFitTfidfIdenticalDocumentsMaxSimilarity(t *testing.T) {
	corpus := []string{
		"teaching mentoring communication",
		"teaching mentoring communication",
		"welding plumbing carpentry",
	}
	m := fitTfidf(corpus)

	assert.InDelta(t, 1.0, cosineSimilarity(m.docVectors[0], m.docVectors[1]), 1e-9)
	assert.Equal(t, 0.0, cosineSimilarity(m.docVectors[0], m.docVectors[2]))
}

func TestTransformUsesFittedVocabularyOnly(t *testing.T) {
	m := fitTfidf([]string{"teaching mentoring", "sales negotiation"})

	vec := m.transform("teaching quantum")
	nonZero := 0
	for _, v := range vec {
		if v != 0 {
			nonZero++
		}
	}
	// "quantum" is out of vocabulary and contributes nothing.
	assert.Equal(t, 1, nonZero)
}

func TestFitTfidfVocabularyCap(t *testing.T) {
	var corpus []string
	for i := 0; i < 60; i++ {
		doc := ""
		for j := 0; j < 30; j++ {
			doc += fmt.Sprintf("term%dx%d ", i, j)
		}
		corpus = append(corpus, doc)
	}

	m := fitTfidf(corpus)
	require.LessOrEqual(t, len(m.vocab), maxVocabularyTerms)
	assert.Equal(t, maxVocabularyTerms, len(m.idf))
}

func TestCosineSimilarityEdgeCases(t *testing.T) {
	assert.Equal(t, 0.0, cosineSimilarity(nil, nil))
	assert.Equal(t, 0.0, cosineSimilarity([]float64{1, 2}, []float64{1}))
	assert.Equal(t, 0.0, cosineSimilarity([]float64{0, 0}, []float64{1, 1}))
}
