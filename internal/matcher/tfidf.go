package matcher

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// maxVocabularyTerms caps the fitted vocabulary at the most frequent terms.
const maxVocabularyTerms = 1000

// reToken extracts word tokens (alphanumeric runs, hyphen-joined allowed).
var reToken = regexp.MustCompile(`[A-Za-z0-9]+(?:-[A-Za-z0-9]+)*`)

// stopWords are common English words excluded from the vocabulary to avoid
// noisy matches on articles and prepositions.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"of": true, "in": true, "on": true, "for": true, "with": true, "by": true,
	"to": true, "at": true, "from": true, "as": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true,
	"this": true, "that": true, "these": true, "those": true, "it": true,
	"its": true, "they": true, "their": true, "them": true, "he": true,
	"she": true, "his": true, "her": true, "we": true, "our": true, "you": true,
	"your": true, "i": true, "my": true, "me": true, "will": true, "would": true,
	"can": true, "could": true, "should": true, "shall": true, "may": true,
	"might": true, "must": true, "do": true, "does": true, "did": true,
	"have": true, "has": true, "had": true, "not": true, "no": true, "nor": true,
	"so": true, "than": true, "then": true, "there": true, "here": true,
	"when": true, "where": true, "which": true, "who": true, "whom": true,
	"what": true, "why": true, "how": true, "all": true, "each": true,
	"more": true, "most": true, "other": true, "some": true, "such": true,
	"only": true, "own": true, "same": true, "too": true, "very": true,
	"into": true, "through": true, "during": true, "before": true,
	"after": true, "above": true, "below": true, "up": true, "down": true,
	"out": true, "off": true, "over": true, "under": true, "again": true,
	"further": true, "once": true, "about": true, "against": true,
	"between": true, "both": true, "any": true, "few": true, "now": true,
	"also": true, "just": true, "because": true, "while": true, "if": true,
	"else": true, "until": true,
}

func tokenize(text string) []string {
	raw := reToken.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if !stopWords[tok] {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// tfidfModel is a TF-IDF vectorizer fitted once over the whole candidate
// corpus. Fitting is a distinct, exclusive phase; a fitted model is read-only
// and safe for concurrent transforms.
type tfidfModel struct {
	vocab      map[string]int
	idf        []float64
	docVectors [][]float64
}

// fitTfidf builds the vocabulary and per-document vectors for a corpus of
// flat text representations, one per candidate. The vocabulary keeps the
// most frequent terms up to the cap, ties broken alphabetically so fitting
// is deterministic.
func fitTfidf(corpus []string) *tfidfModel {
	docTokens := make([][]string, len(corpus))
	totalCounts := map[string]int{}
	docFreq := map[string]int{}

	for i, text := range corpus {
		tokens := tokenize(text)
		docTokens[i] = tokens

		seen := map[string]bool{}
		for _, tok := range tokens {
			totalCounts[tok]++
			if !seen[tok] {
				seen[tok] = true
				docFreq[tok]++
			}
		}
	}

	terms := make([]string, 0, len(totalCounts))
	for term := range totalCounts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if totalCounts[terms[i]] != totalCounts[terms[j]] {
			return totalCounts[terms[i]] > totalCounts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxVocabularyTerms {
		terms = terms[:maxVocabularyTerms]
	}

	m := &tfidfModel{
		vocab: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}
	for idx, term := range terms {
		m.vocab[term] = idx
		// Smoothed IDF keeps unseen-in-few-documents terms finite.
		m.idf[idx] = math.Log(float64(1+len(corpus))/float64(1+docFreq[term])) + 1
	}

	m.docVectors = make([][]float64, len(corpus))
	for i, tokens := range docTokens {
		m.docVectors[i] = m.vectorizeTokens(tokens)
	}

	return m
}

// transform converts free text into a TF-IDF vector in the fitted vocabulary.
func (m *tfidfModel) transform(text string) []float64 {
	return m.vectorizeTokens(tokenize(text))
}

func (m *tfidfModel) vectorizeTokens(tokens []string) []float64 {
	vec := make([]float64, len(m.idf))
	for _, tok := range tokens {
		if idx, ok := m.vocab[tok]; ok {
			vec[idx]++
		}
	}
	for idx := range vec {
		vec[idx] *= m.idf[idx]
	}
	return vec
}

// cosineSimilarity returns the cosine of the angle between two vectors,
// 0 when either vector is zero.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
