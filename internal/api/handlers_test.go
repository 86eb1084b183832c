package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aradhyadengreee/ai-career-app/internal/common/config"
	"github.com/aradhyadengreee/ai-career-app/internal/common/database"
	"github.com/aradhyadengreee/ai-career-app/internal/common/logger"
	"github.com/aradhyadengreee/ai-career-app/internal/models"
	"github.com/aradhyadengreee/ai-career-app/internal/session"
)

// fakeRecommender returns canned results and records the profile it saw.
type fakeRecommender struct {
	results     []models.MatchResult
	err         error
	lastProfile *models.UserProfile
	lastCode    string
}

func (f *fakeRecommender) Search(_ context.Context, profile *models.UserProfile, riasecCode string, _ int) ([]models.MatchResult, error) {
	f.lastProfile = profile
	f.lastCode = riasecCode
	return f.results, f.err
}

func setupServer(t *testing.T, rec Recommender) *Server {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { rdb.Close() })

	cfg := &config.Config{}
	cfg.Matcher.ResultCount = 5
	cfg.Session.TTLSeconds = 3600

	log := logger.NewTestLogger(t)
	sessions := session.NewStore(rdb, cfg.Session, log)

	return NewServer(cfg, sessions, rec, log)
}

func doRequest(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, s *Server, body string) registerResponse {
	t.Helper()

	w := doRequest(t, s, http.MethodPost, "/api/user/register", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp registerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

const validRegisterBody = `{
	"name": "Asha",
	"occupation": "student",
	"riasec_scores": {"R": 2, "I": 8, "A": 5, "S": 9, "E": 1, "C": 3},
	"skills": ["teaching", "communication"],
	"interests": ["helping"],
	"education_level": "bachelor",
	"experience_years": 1,
	"current_field": "education"
}`

func TestRegisterSynthesizesCode(t *testing.T) {
	s := setupServer(t, &fakeRecommender{})

	resp := registerUser(t, s, validRegisterBody)

	assert.NotEmpty(t, resp.UserID)
	// S=9, I=8, A=5 are the top three traits.
	assert.Equal(t, "SIA", resp.RIASECCode)
	assert.Equal(t, 1, resp.ActiveSessions)
}

func TestRegisterTiedScoresAreDeterministic(t *testing.T) {
	s := setupServer(t, &fakeRecommender{})

	resp := registerUser(t, s, `{"name": "x", "riasec_scores": {"R": 5, "I": 5, "A": 5}}`)
	assert.Equal(t, "AIR", resp.RIASECCode)
}

func TestRegisterRejectsInvalidPayload(t *testing.T) {
	s := setupServer(t, &fakeRecommender{})

	for name, body := range map[string]string{
		"missing scores":      `{"name": "x"}`,
		"missing name":        `{"riasec_scores": {"R": 1}}`,
		"empty scores":        `{"name": "x", "riasec_scores": {}}`,
		"negative experience": `{"name": "x", "riasec_scores": {"R": 1}, "experience_years": -1}`,
		"not json":            `not json`,
	} {
		w := doRequest(t, s, http.MethodPost, "/api/user/register", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "case %q", name)
	}
}

func TestRecommendationsRequireUserID(t *testing.T) {
	s := setupServer(t, &fakeRecommender{})

	w := doRequest(t, s, http.MethodGet, "/api/careers/recommendations", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendationsUnknownSession(t *testing.T) {
	s := setupServer(t, &fakeRecommender{})

	w := doRequest(t, s, http.MethodGet, "/api/careers/recommendations?user_id=nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRecommendationsHappyPath(t *testing.T) {
	demand := 7.5
	rec := &fakeRecommender{
		results: []models.MatchResult{
			{
				Career: &models.CareerRecord{
					FamilyTitle:        "Teachers",
					Title:              "Secondary School Teacher",
					Code:               "2330",
					RIASECCode:         "SAI",
					Description:        "Teaches classes",
					PrimarySkillsText:  `[{"skill_name": "Teaching"}]`,
					InterestCluster:    "helping",
					MarketDemandScore:  &demand,
					SalaryRangeText:    "Entry: 3 LPA, Mid: 6 LPA",
					LearningPathway:    "bachelor degree",
					AutomationRiskText: "low automation risk",
					GeographicDemand:   "urban centres",
				},
				Percentage: 93,
				Parameters: []models.MatchParameter{
					{Factor: "RIASEC Code", Tier: "Good match", Detail: "SAI"},
				},
			},
		},
	}
	s := setupServer(t, rec)

	user := registerUser(t, s, validRegisterBody)

	w := doRequest(t, s, http.MethodGet, "/api/careers/recommendations?user_id="+user.UserID, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp recommendationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, user.UserID, resp.UserID)
	assert.Equal(t, "SIA", resp.RIASECCode)
	require.Len(t, resp.Recommendations, 1)

	item := resp.Recommendations[0]
	assert.Equal(t, "Secondary School Teacher", item.Title)
	assert.Equal(t, 93, item.MatchPercentage)
	assert.Equal(t, []string{"Teaching"}, item.PrimarySkills)
	assert.Equal(t, "3 LPA", item.SalaryRange["entry"])
	assert.Equal(t, "Low", item.AutomationRisk)
	assert.Equal(t, []string{"RIASEC Code: Good match (SAI)"}, item.MatchingParameters)

	// The recommender is driven by the stored profile, not request input.
	require.NotNil(t, rec.lastProfile)
	assert.Equal(t, "SIA", rec.lastCode)
	assert.Equal(t, "Asha", rec.lastProfile.Name)
}

func TestRecommendationsEmptyIsValid(t *testing.T) {
	s := setupServer(t, &fakeRecommender{})

	user := registerUser(t, s, validRegisterBody)

	w := doRequest(t, s, http.MethodGet, "/api/careers/recommendations?user_id="+user.UserID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp recommendationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Recommendations)
}

func TestLogoutEndsSession(t *testing.T) {
	s := setupServer(t, &fakeRecommender{})

	user := registerUser(t, s, validRegisterBody)

	w := doRequest(t, s, http.MethodPost, "/api/user/logout", `{"user_id": "`+user.UserID+`"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// The session is gone afterwards.
	w = doRequest(t, s, http.MethodGet, "/api/careers/recommendations?user_id="+user.UserID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Logging out again is harmless.
	w = doRequest(t, s, http.MethodPost, "/api/user/logout", `{"user_id": "`+user.UserID+`"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDebugEndpoints(t *testing.T) {
	s := setupServer(t, &fakeRecommender{})

	first := registerUser(t, s, validRegisterBody)
	registerUser(t, s, validRegisterBody)

	w := doRequest(t, s, http.MethodGet, "/api/debug/sessions", "")
	require.Equal(t, http.StatusOK, w.Code)

	var listing struct {
		ActiveSessions int      `json:"active_sessions"`
		SessionIDs     []string `json:"session_ids"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Equal(t, 2, listing.ActiveSessions)
	assert.Contains(t, listing.SessionIDs, first.UserID)

	w = doRequest(t, s, http.MethodGet, "/api/debug/session/"+first.UserID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var sess models.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sess))
	assert.Equal(t, "Asha", sess.Profile.Name)

	w = doRequest(t, s, http.MethodGet, "/api/debug/session/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthz(t *testing.T) {
	s := setupServer(t, &fakeRecommender{})

	w := doRequest(t, s, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestMethodNotAllowed(t *testing.T) {
	s := setupServer(t, &fakeRecommender{})

	w := doRequest(t, s, http.MethodGet, "/api/user/register", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = doRequest(t, s, http.MethodPost, "/api/careers/recommendations", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
