package matcher

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/aradhyadengreee/ai-career-app/internal/common/config"
	"github.com/aradhyadengreee/ai-career-app/internal/common/logger"
	"github.com/aradhyadengreee/ai-career-app/internal/common/metrics"
	"github.com/aradhyadengreee/ai-career-app/internal/models"
	"github.com/aradhyadengreee/ai-career-app/internal/riasec"
)

// Disclosure thresholds for matching parameters, per factor.
const (
	riasecExcellentThreshold  = 90
	riasecGoodThreshold       = 70
	riasecPartialThreshold    = 50
	educationGoodThreshold    = 80
	educationPartialThreshold = 50
	experienceGoodThreshold   = 80
	fieldGoodThreshold        = 80
	fieldRelatedThreshold     = 50
	demandHighThreshold       = 70
)

// riasecBoostThreshold is the cascade score at or above which the
// multiplicative boost applies.
const (
	riasecBoostThreshold = 80
	riasecBoostFactor    = 1.2
)

// SemanticMatcher re-ranks candidates produced by an external retriever with
// a five-factor weighted score: RIASEC cascade, education, experience, field
// and market demand. Its weight table sums to 100 and its boost is
// multiplicative, unlike the TF-IDF matcher's floor boost; the two are
// calibrated independently and must stay distinct.
type SemanticMatcher struct {
	cfg    config.MatcherConfig
	source CandidateSource
	logger logger.Logger
}

func NewSemanticMatcher(cfg config.MatcherConfig, source CandidateSource, log logger.Logger) *SemanticMatcher {
	return &SemanticMatcher{
		cfg:    cfg,
		source: source,
		logger: log.WithFields(map[string]interface{}{"matcher": "semantic"}),
	}
}

// ScoreCandidate scores one retrieved candidate against the user profile,
// returning the bounded percentage and the ordered matching parameters.
// Per-candidate data problems degrade the candidate's score through factor
// defaults; they never abort the batch.
func (m *SemanticMatcher) ScoreCandidate(career *models.CareerRecord, profile *models.UserProfile, riasecCode string) (int, []models.MatchParameter) {
	var params []models.MatchParameter

	careerRIASEC := riasec.Clean(career.RIASECCode)
	userRIASEC := riasec.Clean(riasecCode)

	riasecScore := riasec.CascadeSimilarity(userRIASEC, careerRIASEC)
	switch {
	case riasecScore >= riasecExcellentThreshold:
		params = append(params, models.MatchParameter{Factor: "RIASEC Code", Tier: "Excellent match", Detail: careerRIASEC})
	case riasecScore >= riasecGoodThreshold:
		params = append(params, models.MatchParameter{Factor: "RIASEC Code", Tier: "Good match", Detail: careerRIASEC})
	case riasecScore >= riasecPartialThreshold:
		params = append(params, models.MatchParameter{Factor: "RIASEC Code", Tier: "Partial match", Detail: careerRIASEC})
	}

	educationScore := scoreEducation(profile.EducationLevel, career.LearningPathway)
	switch {
	case educationScore >= educationGoodThreshold:
		params = append(params, models.MatchParameter{Factor: "Education Level", Tier: "Good match"})
	case educationScore >= educationPartialThreshold:
		params = append(params, models.MatchParameter{Factor: "Education Level", Tier: "Partial match"})
	}

	experienceScore := scoreExperience(profile.ExperienceYears, career)
	if experienceScore >= experienceGoodThreshold {
		params = append(params, models.MatchParameter{Factor: "Experience Level", Tier: "Good match"})
	}

	fieldScore := scoreField(profile.CurrentField, career)
	switch {
	case fieldScore >= fieldGoodThreshold:
		params = append(params, models.MatchParameter{Factor: "Field/Industry", Tier: "Good match"})
	case fieldScore >= fieldRelatedThreshold && strings.TrimSpace(profile.CurrentField) != "":
		params = append(params, models.MatchParameter{Factor: "Field/Industry", Tier: "Related field"})
	}

	demandScore := scoreDemand(career)
	if career.MarketDemandScore != nil && demandScore > demandHighThreshold {
		params = append(params, models.MatchParameter{Factor: "Market Demand", Tier: "High"})
	}

	totalScore := riasecScore*(m.cfg.AdvancedRIASECWeight/100) +
		educationScore*(m.cfg.AdvancedEducationWeight/100) +
		experienceScore*(m.cfg.AdvancedExperienceWeight/100) +
		fieldScore*(m.cfg.AdvancedFieldWeight/100) +
		demandScore*(m.cfg.AdvancedDemandWeight/100)

	maxPossible := m.cfg.AdvancedRIASECWeight + m.cfg.AdvancedEducationWeight +
		m.cfg.AdvancedExperienceWeight + m.cfg.AdvancedFieldWeight + m.cfg.AdvancedDemandWeight

	finalPercentage := 0.0
	if maxPossible > 0 {
		finalPercentage = totalScore / maxPossible * 100
	}

	if riasecScore >= riasecBoostThreshold {
		finalPercentage = math.Min(finalPercentage*riasecBoostFactor, 100)
	}

	// Truncation, not half-up rounding: a boosted 93.6 reports as 93. The
	// epsilon keeps float noise from pulling an exact integer down a point.
	percentage := int(finalPercentage + 1e-9)
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	return percentage, params
}

// Score implements ProfileMatcher.
func (m *SemanticMatcher) Score(profile *models.UserProfile, career *models.CareerRecord) *models.MatchResult {
	percentage, params := m.ScoreCandidate(career, profile, profile.RIASECCode)
	return &models.MatchResult{
		Career:     career,
		Percentage: percentage,
		Parameters: params,
		Breakdown:  m.breakdown(profile, career),
	}
}

func (m *SemanticMatcher) breakdown(profile *models.UserProfile, career *models.CareerRecord) map[string]int {
	return map[string]int{
		"riasec":     int(math.Round(riasec.CascadeSimilarity(riasec.Clean(profile.RIASECCode), riasec.Clean(career.RIASECCode)))),
		"education":  int(math.Round(scoreEducation(profile.EducationLevel, career.LearningPathway))),
		"experience": int(math.Round(scoreExperience(profile.ExperienceYears, career))),
		"field":      int(math.Round(scoreField(profile.CurrentField, career))),
		"demand":     int(math.Round(scoreDemand(career))),
	}
}

// Search retrieves candidates for the profile, scores each one, filters out
// anything below the configured threshold and returns the best nResults in
// descending percentage order. Zero retrieved candidates is a valid, cheap
// terminal case, never an error.
func (m *SemanticMatcher) Search(ctx context.Context, profile *models.UserProfile, riasecCode string, nResults int) ([]models.MatchResult, error) {
	start := time.Now()

	query := m.buildQuery(profile, riasecCode)

	candidates, err := m.source.Search(ctx, query, m.cfg.RetrievalResults)
	if err != nil {
		// Retrieval unavailability surfaces as an empty result, not a
		// scoring-layer error.
		m.logger.Warn("candidate retrieval failed", map[string]interface{}{"error": err.Error()})
		return []models.MatchResult{}, nil
	}
	if len(candidates) == 0 {
		m.logger.Warn("no semantic results found", nil)
		return []models.MatchResult{}, nil
	}

	scored := make([]models.MatchResult, 0, len(candidates))
	for i := range candidates {
		career := &candidates[i].CareerRecord
		percentage, params := m.ScoreCandidate(career, profile, riasecCode)

		if percentage < m.cfg.FilterThreshold {
			continue
		}

		scored = append(scored, models.MatchResult{
			Career:     career,
			Percentage: percentage,
			Parameters: params,
			Breakdown:  m.breakdown(profile, career),
		})
	}

	metrics.CandidatesScored.WithLabelValues("semantic").Add(float64(len(candidates)))

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Percentage > scored[j].Percentage
	})
	if nResults >= 0 && len(scored) > nResults {
		scored = scored[:nResults]
	}

	metrics.ScoringDuration.WithLabelValues("semantic").Observe(time.Since(start).Seconds())
	metrics.RecommendationsServed.WithLabelValues("semantic").Add(float64(len(scored)))

	m.logger.Info("recommendations computed", map[string]interface{}{
		"retrieved": len(candidates),
		"returned":  len(scored),
	})

	return scored, nil
}

// buildQuery composes the retrieval query from the profile, mirroring what
// the candidate index was built from.
func (m *SemanticMatcher) buildQuery(profile *models.UserProfile, riasecCode string) string {
	parts := []string{
		fmt.Sprintf("Career for %s", profile.Occupation),
		fmt.Sprintf("Education: %s", profile.EducationLevel),
		fmt.Sprintf("RIASEC personality: %s", riasecCode),
		"Skills and job preferences matching personality and background",
	}

	if profile.CurrentField != "" {
		parts = append(parts, fmt.Sprintf("Field: %s", profile.CurrentField))
	}

	return strings.Join(parts, ". ")
}
