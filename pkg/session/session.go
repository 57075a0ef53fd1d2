package session

import "time"

// Session associates an opaque, unguessable id with a user for a bounded
// lifetime. ExpiresAt is always strictly after CreatedAt.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session has reached its expiry. The expiry
// instant itself counts as expired.
func (s *Session) IsExpired() bool {
	return s != nil && !time.Now().Before(s.ExpiresAt)
}
