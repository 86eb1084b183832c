package models

import "fmt"

// MatchParameter is a tagged matching-justification record. The scoring core
// emits these; they are rendered to display text only at the API boundary.
type MatchParameter struct {
	Factor string `json:"factor"`
	Tier   string `json:"tier"`
	Detail string `json:"detail,omitempty"`
}

// Render formats the parameter for human display.
func (p MatchParameter) Render() string {
	if p.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", p.Factor, p.Tier, p.Detail)
	}
	return fmt.Sprintf("%s: %s", p.Factor, p.Tier)
}

// RenderParameters renders a parameter list preserving order.
func RenderParameters(params []MatchParameter) []string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = p.Render()
	}
	return out
}

// MatchResult holds the score of one (profile, career) pair. It exists only
// for the duration of a ranking request.
type MatchResult struct {
	Career     *CareerRecord    `json:"career"`
	Percentage int              `json:"match_percentage"`
	Breakdown  map[string]int   `json:"similarity_breakdown"`
	Parameters []MatchParameter `json:"matching_parameters,omitempty"`
}

// Candidate is a career record as returned by the external retriever,
// carrying the raw retrieval similarity in [0,1].
type Candidate struct {
	CareerRecord
	Similarity float64 `json:"similarity_score"`
}
