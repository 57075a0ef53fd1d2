package statestore

import (
	"context"
	"time"
)

// State is one pending authorization flow. It binds the opaque state token
// to the PKCE verifier and the provider that issued the flow.
type State struct {
	Token        string    `json:"token"`
	Verifier     string    `json:"verifier"`
	Provider     string    `json:"provider"`
	RedirectPath string    `json:"redirect_path"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// IsExpired reports whether the state has reached its expiry. The expiry
// instant itself counts as expired.
func (s *State) IsExpired() bool {
	return s != nil && !time.Now().Before(s.ExpiresAt)
}

// Store defines the interface for OAuth state persistence.
type Store interface {
	// Put stores a new state record until its expiry.
	Put(ctx context.Context, state *State) error

	// Consume retrieves and removes the state atomically. Unknown, expired
	// or already consumed tokens return ErrStateNotFound.
	Consume(ctx context.Context, token string) (*State, error)
}
