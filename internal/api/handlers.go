// Package api exposes the recommendation service over HTTP: registration,
// recommendations, logout, debug introspection and health.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aradhyadengreee/ai-career-app/internal/common/config"
	apperrors "github.com/aradhyadengreee/ai-career-app/internal/common/errors"
	"github.com/aradhyadengreee/ai-career-app/internal/common/logger"
	"github.com/aradhyadengreee/ai-career-app/internal/models"
	"github.com/aradhyadengreee/ai-career-app/internal/riasec"
	"github.com/aradhyadengreee/ai-career-app/internal/session"
)

const maxRequestBody = 1 << 20

// Recommender produces ranked recommendations for a registered profile.
type Recommender interface {
	Search(ctx context.Context, profile *models.UserProfile, riasecCode string, nResults int) ([]models.MatchResult, error)
}

// Server holds the handler dependencies.
type Server struct {
	cfg         *config.Config
	logger      logger.Logger
	sessions    *session.Store
	recommender Recommender
}

func NewServer(cfg *config.Config, sessions *session.Store, recommender Recommender, log logger.Logger) *Server {
	return &Server{
		cfg:         cfg,
		logger:      log.WithFields(map[string]interface{}{"component": "api"}),
		sessions:    sessions,
		recommender: recommender,
	}
}

type registerRequest struct {
	Name            string             `json:"name"`
	Occupation      string             `json:"occupation"`
	RIASECScores    models.TraitScores `json:"riasec_scores"`
	Skills          []string           `json:"skills"`
	Interests       []string           `json:"interests"`
	EducationLevel  string             `json:"education_level"`
	ExperienceYears int                `json:"experience_years"`
	CurrentField    string             `json:"current_field"`
}

type registerResponse struct {
	UserID         string `json:"user_id"`
	RIASECCode     string `json:"riasec_code"`
	ActiveSessions int    `json:"active_sessions"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		s.writeError(w, apperrors.NewInvalidRequestError("unreadable request body"))
		return
	}

	if err := validateRegisterPayload(raw); err != nil {
		s.writeError(w, err)
		return
	}

	var req registerRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		s.writeError(w, apperrors.NewInvalidRequestError(err.Error()))
		return
	}

	profile := &models.UserProfile{
		Name:            req.Name,
		Occupation:      req.Occupation,
		RIASECCode:      riasec.Synthesize(req.RIASECScores),
		TraitScores:     req.RIASECScores,
		Skills:          req.Skills,
		Interests:       req.Interests,
		EducationLevel:  req.EducationLevel,
		ExperienceYears: req.ExperienceYears,
		CurrentField:    req.CurrentField,
	}

	sess, err := s.sessions.Create(r.Context(), profile)
	if err != nil {
		s.writeError(w, err)
		return
	}

	count, err := s.sessions.Count(r.Context())
	if err != nil {
		count = 1
	}

	s.writeJSON(w, http.StatusCreated, registerResponse{
		UserID:         sess.ID,
		RIASECCode:     profile.RIASECCode,
		ActiveSessions: count,
	})
}

// recommendationPayload is the wire form of one recommendation.
type recommendationPayload struct {
	FamilyTitle        string             `json:"family_title"`
	Title              string             `json:"nco_title"`
	Code               string             `json:"nco_code"`
	RIASECCode         string             `json:"riasec_code"`
	Description        string             `json:"job_description"`
	PrimarySkills      []string           `json:"primary_skills"`
	SecondarySkills    []string           `json:"secondary_skills"`
	EmergingSkills     []string           `json:"emerging_skills"`
	MarketDemandScore  *float64           `json:"market_demand_score"`
	SalaryRange        models.SalaryRange `json:"salary_range"`
	IndustryGrowth     string             `json:"industry_growth"`
	LearningPathway    string             `json:"learning_pathway"`
	MatchPercentage    int                `json:"match_percentage"`
	MatchingParameters []string           `json:"matching_parameters"`
	AutomationRisk     string             `json:"automation_risk"`
	GeographicDemand   string             `json:"geographic_demand"`
}

type recommendationsResponse struct {
	UserID          string                  `json:"user_id"`
	RIASECCode      string                  `json:"riasec_code"`
	Recommendations []recommendationPayload `json:"recommendations"`
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		s.writeError(w, apperrors.NewInvalidRequestError("user_id query parameter is required"))
		return
	}

	sess, err := s.sessions.Get(r.Context(), userID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	results, err := s.recommender.Search(r.Context(), sess.Profile, sess.Profile.RIASECCode, s.cfg.Matcher.ResultCount)
	if err != nil {
		s.writeError(w, err)
		return
	}

	payload := make([]recommendationPayload, 0, len(results))
	for _, res := range results {
		payload = append(payload, serializeRecommendation(res))
	}

	s.writeJSON(w, http.StatusOK, recommendationsResponse{
		UserID:          userID,
		RIASECCode:      sess.Profile.RIASECCode,
		Recommendations: payload,
	})
}

func serializeRecommendation(res models.MatchResult) recommendationPayload {
	c := res.Career
	return recommendationPayload{
		FamilyTitle:        c.FamilyTitle,
		Title:              c.Title,
		Code:               c.Code,
		RIASECCode:         c.RIASECCode,
		Description:        c.Description,
		PrimarySkills:      c.PrimarySkills(),
		SecondarySkills:    c.SecondarySkills(),
		EmergingSkills:     c.EmergingSkills(),
		MarketDemandScore:  c.MarketDemandScore,
		SalaryRange:        c.SalaryRange(),
		IndustryGrowth:     c.IndustryGrowth,
		LearningPathway:    c.LearningPathway,
		MatchPercentage:    res.Percentage,
		MatchingParameters: models.RenderParameters(res.Parameters),
		AutomationRisk:     c.AutomationRisk(),
		GeographicDemand:   c.GeographicDemand,
	}
}

type logoutRequest struct {
	UserID string `json:"user_id"`
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	var req logoutRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(&req); err != nil || req.UserID == "" {
		s.writeError(w, apperrors.NewInvalidRequestError("user_id is required"))
		return
	}

	if err := s.sessions.Delete(r.Context(), req.UserID); err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"status": "logged_out", "user_id": req.UserID})
}

func (s *Server) handleDebugSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.sessions.ListIDs(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"active_sessions": len(ids),
		"session_ids":     ids,
	})
}

func (s *Server) handleDebugSession(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/debug/session/")
	if id == "" {
		s.writeError(w, apperrors.NewInvalidRequestError("session id is required"))
		return
	}

	sess, err := s.sessions.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encoding failed", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var se *apperrors.StandardError
	if !errors.As(err, &se) {
		se = &apperrors.StandardError{
			Code:      "INTERNAL_ERROR",
			Message:   "Internal server error",
			Timestamp: time.Now().UTC(),
		}
	}

	s.logger.Warn("request failed", map[string]interface{}{
		"code":    string(se.Code),
		"details": se.Details,
	})

	s.writeJSON(w, statusForCode(se.Code), map[string]interface{}{"error": se})
}

func statusForCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeInvalidRequest, apperrors.ErrCodeInvalidRIASECCode:
		return http.StatusBadRequest
	case apperrors.ErrCodeSessionNotFound, apperrors.ErrCodeSessionExpired:
		return http.StatusNotFound
	case apperrors.ErrCodeSessionStore, apperrors.ErrCodeCatalogUnavailable:
		return http.StatusServiceUnavailable
	case apperrors.ErrCodeMatcherNotReady:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
