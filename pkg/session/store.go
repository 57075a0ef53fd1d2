package session

import "context"

// Store defines the interface for session persistence.
type Store interface {
	// Create stores a new session.
	Create(ctx context.Context, session *Session) error

	// Get retrieves a session by id. Expired sessions may still be
	// returned; the Manager decides how to treat them.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes a session by id. Deleting an absent session is a no-op.
	Delete(ctx context.Context, id string) error
}
