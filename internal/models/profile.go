package models

// TraitScores maps each RIASEC trait letter to a raw assessment score.
// Absent letters are treated as zero.
type TraitScores map[string]float64

// UserProfile describes one user being matched against the career corpus.
// RIASECCode is derived once, at profile creation, and never recomputed.
type UserProfile struct {
	Name            string      `json:"name"`
	Occupation      string      `json:"occupation"`
	RIASECCode      string      `json:"riasec_code"`
	TraitScores     TraitScores `json:"riasec_scores"`
	Skills          []string    `json:"skills"`
	Interests       []string    `json:"interests"`
	EducationLevel  string      `json:"education_level"`
	ExperienceYears int         `json:"experience_years"`
	CurrentField    string      `json:"current_field"`
}
