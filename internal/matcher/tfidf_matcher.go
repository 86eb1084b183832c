package matcher

import (
	"context"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/aradhyadengreee/ai-career-app/internal/common/config"
	apperrors "github.com/aradhyadengreee/ai-career-app/internal/common/errors"
	"github.com/aradhyadengreee/ai-career-app/internal/common/logger"
	"github.com/aradhyadengreee/ai-career-app/internal/common/metrics"
	"github.com/aradhyadengreee/ai-career-app/internal/models"
	"github.com/aradhyadengreee/ai-career-app/internal/riasec"
)

// TFIDFMatcher ranks a fixed candidate corpus with a four-factor weighted
// score: RIASEC similarity (two-character Jaccard variant), skills overlap,
// interests overlap and TF-IDF cosine similarity over a flat text
// representation of each candidate.
//
// SetCorpus refits the vocabulary and must never run concurrently with
// Recommend; after fitting, the model and corpus are read-only.
type TFIDFMatcher struct {
	cfg    config.MatcherConfig
	logger logger.Logger

	corpus []models.CareerRecord
	texts  []string
	model  *tfidfModel
}

func NewTFIDFMatcher(cfg config.MatcherConfig, log logger.Logger) *TFIDFMatcher {
	return &TFIDFMatcher{
		cfg:    cfg,
		logger: log.WithFields(map[string]interface{}{"matcher": "tfidf"}),
	}
}

// SetCorpus installs the candidate records and fits the TF-IDF vocabulary
// over their flat text representations.
func (m *TFIDFMatcher) SetCorpus(records []models.CareerRecord) {
	m.corpus = records
	m.texts = make([]string, len(records))
	for i := range records {
		m.texts[i] = candidateText(&records[i])
	}
	m.model = fitTfidf(m.texts)

	m.logger.Info("corpus fitted", map[string]interface{}{
		"candidates": len(records),
		"vocabulary": len(m.model.vocab),
	})
}

// Recommend returns the topN best matches for the given code, skills and
// interests. A malformed RIASEC code fails with INVALID_RIASEC_CODE before
// any candidate is scored.
func (m *TFIDFMatcher) Recommend(riasecCode string, skills, interests []string, topN int) ([]models.MatchResult, error) {
	if !riasec.Validate(riasecCode, m.cfg.MinRIASECLength, m.cfg.MaxRIASECLength) {
		return nil, apperrors.NewInvalidRIASECCodeError(riasecCode)
	}
	if m.model == nil {
		return nil, apperrors.NewMatcherNotReadyError()
	}

	start := time.Now()

	userText := strings.Join(skills, " ") + " " + strings.Join(interests, " ") + " " + riasecCode
	var userVector []float64
	if strings.TrimSpace(userText) != "" {
		userVector = m.model.transform(userText)
	}

	results := make([]models.MatchResult, 0, len(m.corpus))
	for i := range m.corpus {
		career := &m.corpus[i]

		riasecSim := riasec.JaccardSimilarity(riasecCode, career.RIASECCode)
		skillsSim := overlapRatio(skills, career.PrimarySkillsText)
		interestsSim := overlapRatio(interests, career.InterestCluster)

		textSim := 0.0
		if userVector != nil {
			textSim = cosineSimilarity(userVector, m.model.docVectors[i])
		}

		combined := riasecSim*m.cfg.RIASECWeight +
			skillsSim*m.cfg.SkillsWeight +
			interestsSim*m.cfg.InterestsWeight +
			textSim*m.cfg.TextWeight

		percentage := applyFloorBoost(int(math.Round(combined*100)), riasecSim)

		results = append(results, models.MatchResult{
			Career:     career,
			Percentage: percentage,
			Breakdown: map[string]int{
				"riasec":    int(math.Round(riasecSim * 100)),
				"skills":    int(math.Round(skillsSim * 100)),
				"interests": int(math.Round(interestsSim * 100)),
				"text":      int(math.Round(textSim * 100)),
			},
		})
	}

	metrics.CandidatesScored.WithLabelValues("tfidf").Add(float64(len(results)))

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Percentage > results[j].Percentage
	})
	if topN >= 0 && len(results) > topN {
		results = results[:topN]
	}

	metrics.ScoringDuration.WithLabelValues("tfidf").Observe(time.Since(start).Seconds())
	metrics.RecommendationsServed.WithLabelValues("tfidf").Add(float64(len(results)))

	m.logger.Debug("recommendations computed", map[string]interface{}{
		"riasecCode": riasecCode,
		"returned":   len(results),
	})

	return results, nil
}

// Search ranks the fitted corpus for a profile. It mirrors the semantic
// matcher's signature so either can serve recommendation requests; the
// context is accepted for symmetry only, scoring itself never blocks.
func (m *TFIDFMatcher) Search(_ context.Context, profile *models.UserProfile, riasecCode string, nResults int) ([]models.MatchResult, error) {
	return m.Recommend(riasecCode, profile.Skills, profile.Interests, nResults)
}

// Score implements ProfileMatcher for a single candidate outside the fitted
// corpus order; the candidate text is transformed on the fly.
func (m *TFIDFMatcher) Score(profile *models.UserProfile, career *models.CareerRecord) *models.MatchResult {
	riasecSim := riasec.JaccardSimilarity(profile.RIASECCode, career.RIASECCode)
	skillsSim := overlapRatio(profile.Skills, career.PrimarySkillsText)
	interestsSim := overlapRatio(profile.Interests, career.InterestCluster)

	textSim := 0.0
	if m.model != nil {
		userText := strings.Join(profile.Skills, " ") + " " + strings.Join(profile.Interests, " ") + " " + profile.RIASECCode
		if strings.TrimSpace(userText) != "" {
			textSim = cosineSimilarity(m.model.transform(userText), m.model.transform(candidateText(career)))
		}
	}

	combined := riasecSim*m.cfg.RIASECWeight +
		skillsSim*m.cfg.SkillsWeight +
		interestsSim*m.cfg.InterestsWeight +
		textSim*m.cfg.TextWeight

	return &models.MatchResult{
		Career:     career,
		Percentage: applyFloorBoost(int(math.Round(combined*100)), riasecSim),
		Breakdown: map[string]int{
			"riasec":    int(math.Round(riasecSim * 100)),
			"skills":    int(math.Round(skillsSim * 100)),
			"interests": int(math.Round(interestsSim * 100)),
			"text":      int(math.Round(textSim * 100)),
		},
	}
}

// candidateText builds the flat text representation used both for fitting the
// vocabulary and for per-candidate cosine similarity.
func candidateText(career *models.CareerRecord) string {
	return career.FamilyTitle + " " + career.Title + " " + career.PrimarySkillsText + " " + career.InterestCluster
}

// applyFloorBoost raises the percentage to a floor tied to the RIASEC
// sub-score. Floors are monotonic, so applying the boost twice equals
// applying it once. The final value never exceeds 100.
func applyFloorBoost(percentage int, riasecSim float64) int {
	boosted := percentage

	switch {
	case riasecSim == 1.0:
		boosted = maxInt(boosted, 100)
	case riasecSim >= 0.9:
		boosted = maxInt(boosted, 95)
	case riasecSim >= 0.8:
		boosted = maxInt(boosted, 90)
	case riasecSim >= 0.7:
		boosted = maxInt(boosted, 80)
	case riasecSim >= 0.6:
		boosted = maxInt(boosted, 70)
	}

	return minInt(100, boosted)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
