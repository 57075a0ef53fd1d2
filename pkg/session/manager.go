package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"
)

// DefaultTTL is the session lifetime applied when no option overrides it.
const DefaultTTL = 30 * 24 * time.Hour

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithStore sets a custom session store.
func WithStore(store Store) Option {
	return func(m *Manager) { m.store = store }
}

// WithTTL sets the session lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// Manager handles session issuance, lookup and revocation.
type Manager struct {
	store Store
	ttl   time.Duration
}

// New creates a session manager. Without WithStore it falls back to an
// in-memory store.
func New(opts ...Option) *Manager {
	m := &Manager{ttl: DefaultTTL}
	for _, opt := range opts {
		opt(m)
	}
	if m.store == nil {
		m.store = NewMemoryStore()
	}
	return m
}

// Issue creates and persists a new session for the given user.
func (m *Manager) Issue(ctx context.Context, userID string) (*Session, error) {
	if userID == "" {
		return nil, ErrInvalidSession
	}

	id, err := generateID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &Session{
		ID:        id,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.store.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Resolve returns the session for the given id. Expired sessions are
// destroyed and reported as not found, indistinguishable from unknown ids.
func (m *Manager) Resolve(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrSessionNotFound
	}

	session, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.IsExpired() {
		_ = m.store.Delete(ctx, id)
		return nil, ErrSessionNotFound
	}

	return session, nil
}

// Revoke deletes the session. Revoking an unknown id is a no-op.
func (m *Manager) Revoke(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return m.store.Delete(ctx, id)
}

// generateID creates a 256-bit cryptographically secure session id.
func generateID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
