// Package matcher implements the two profile-scoring paths: a TF-IDF based
// matcher over a fixed candidate corpus and a semantic matcher that re-ranks
// candidates produced by an external retriever. Both produce bounded integer
// percentages with a per-factor breakdown, but their RIASEC similarity
// variants and weight tables are calibrated independently.
package matcher

import (
	"context"

	"github.com/aradhyadengreee/ai-career-app/internal/models"
)

// ProfileMatcher scores one user profile against one candidate career.
type ProfileMatcher interface {
	Score(profile *models.UserProfile, career *models.CareerRecord) *models.MatchResult
}

// CandidateSource retrieves ranked candidate records for a free-text query.
// The semantic matcher treats the result as a superset to re-rank, not a
// final ranking. An unavailable source surfaces as an empty slice upstream.
type CandidateSource interface {
	Search(ctx context.Context, query string, nResults int) ([]models.Candidate, error)
}
