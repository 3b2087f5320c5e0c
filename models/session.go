package models

import "time"

// Session is the per-visitor state kept in Redis: the authenticated-user
// marker, the CSRF token and the cart. It is created on first interaction
// and destroyed on logout or expiry.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id,omitempty"`
	IsAdmin   bool      `json:"is_admin,omitempty"`
	CSRFToken string    `json:"csrf_token"`
	Cart      *Cart     `json:"cart"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAuthenticated reports whether a user is logged in on this session.
func (s *Session) IsAuthenticated() bool {
	return s.UserID != ""
}
