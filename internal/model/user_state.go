package model

import "time"

// UserState is the minimal per-chat record the bot persists: the last
// year/branch selection and a donation acknowledgement. Created on first
// interaction, updated on each selection, never deleted.
type UserState struct {
	ChatID     int64     `json:"chat_id"`
	LastYear   Year      `json:"last_year,omitempty"`   // 0 = no selection yet
	LastBranch Branch    `json:"last_branch,omitempty"` // "" = no selection yet
	HasDonated bool      `json:"has_donated"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// HasSelection reports whether the user has picked a year and branch.
func (s *UserState) HasSelection() bool {
	return s.LastYear != 0 && s.LastBranch != ""
}
