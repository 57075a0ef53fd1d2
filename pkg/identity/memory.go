package identity

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/profiledeck/socialauth/pkg/slug"
)

// MemoryStore implements Store using in-memory storage. All uniqueness
// checks and the create-or-update decision happen under one mutex, giving
// the same atomicity the Postgres store gets from its unique indexes.
type MemoryStore struct {
	mu         sync.Mutex
	byExternal map[string]*User
	byID       map[string]string // user id -> external id
	byUsername map[string]string // username -> external id
	bySub      map[string]string // vanity subdomain -> external id
}

// NewMemoryStore creates an in-memory user store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byExternal: make(map[string]*User),
		byID:       make(map[string]string),
		byUsername: make(map[string]string),
		bySub:      make(map[string]string),
	}
}

// Upsert creates or updates the user for the given external id.
func (m *MemoryStore) Upsert(ctx context.Context, params UpsertParams) (*User, error) {
	if params.ExternalID == "" || params.Provider == "" || params.Username == "" {
		return nil, ErrInvalidUser
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()

	if existing, ok := m.byExternal[params.ExternalID]; ok {
		existing.DisplayName = params.DisplayName
		existing.AvatarURL = params.AvatarURL
		existing.Bio = params.Bio
		existing.Expertise = slices.Clone(params.Expertise)
		existing.AccessToken = params.AccessToken
		existing.RefreshToken = params.RefreshToken
		existing.TokenExpiresAt = params.TokenExpiresAt
		existing.LastActivityAt = now

		userCopy := *existing
		userCopy.Expertise = slices.Clone(existing.Expertise)
		return &userCopy, nil
	}

	if owner, taken := m.byUsername[params.Username]; taken && owner != params.ExternalID {
		return nil, ErrUsernameTaken
	}

	subdomain := slug.Make(params.Username)
	if owner, taken := m.bySub[subdomain]; taken && owner != params.ExternalID {
		return nil, ErrUsernameTaken
	}

	user := &User{
		ID:              uuid.New().String(),
		ExternalID:      params.ExternalID,
		Provider:        params.Provider,
		Username:        params.Username,
		DisplayName:     params.DisplayName,
		Email:           params.Email,
		AvatarURL:       params.AvatarURL,
		Bio:             params.Bio,
		Expertise:       slices.Clone(params.Expertise),
		VanitySubdomain: subdomain,
		AccessToken:     params.AccessToken,
		RefreshToken:    params.RefreshToken,
		TokenExpiresAt:  params.TokenExpiresAt,
		CreatedAt:       now,
		LastActivityAt:  now,
	}

	m.byExternal[params.ExternalID] = user
	m.byID[user.ID] = params.ExternalID
	m.byUsername[params.Username] = params.ExternalID
	if subdomain != "" {
		m.bySub[subdomain] = params.ExternalID
	}

	userCopy := *user
	userCopy.Expertise = slices.Clone(user.Expertise)
	return &userCopy, nil
}

// GetByID returns the user with the given opaque user id.
func (m *MemoryStore) GetByID(ctx context.Context, id string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	externalID, ok := m.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return m.copyOf(externalID)
}

// GetByExternalID returns the user with the given external identity.
func (m *MemoryStore) GetByExternalID(ctx context.Context, externalID string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.copyOf(externalID)
}

func (m *MemoryStore) copyOf(externalID string) (*User, error) {
	user, ok := m.byExternal[externalID]
	if !ok {
		return nil, ErrUserNotFound
	}
	userCopy := *user
	userCopy.Expertise = slices.Clone(user.Expertise)
	return &userCopy, nil
}
