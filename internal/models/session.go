package models

import "time"

// Session is one registered user's recommendation session. The profile inside
// it carries the synthesized RIASEC code and is the sole input to scoring.
type Session struct {
	ID           string       `json:"id"`
	Profile      *UserProfile `json:"profile"`
	CreatedAt    time.Time    `json:"createdAt"`
	LastActivity time.Time    `json:"lastActivity"`
}

// UpdateActivity updates the last activity timestamp.
func (s *Session) UpdateActivity() {
	s.LastActivity = time.Now().UTC()
}
