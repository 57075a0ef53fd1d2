package identity

import (
	"context"
	"time"
)

// User is the canonical identity reconciled from provider logins.
// ID and ExternalID never change after creation; the remaining profile and
// token fields are overwritten on every successful login.
type User struct {
	ID              string    `json:"userId"`
	ExternalID      string    `json:"-"`
	Provider        string    `json:"provider"`
	Username        string    `json:"username"`
	DisplayName     string    `json:"displayName"`
	Email           string    `json:"email,omitempty"`
	AvatarURL       string    `json:"avatarUrl,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	Expertise       []string  `json:"expertise"`
	VanitySubdomain string    `json:"vanitySubdomain,omitempty"`
	AccessToken     string    `json:"-"`
	RefreshToken    string    `json:"-"`
	TokenExpiresAt  time.Time `json:"-"`
	CreatedAt       time.Time `json:"createdAt"`
	LastActivityAt  time.Time `json:"lastActivity"`
}

// UpsertParams carries the normalized profile and token data of one
// successful callback. ExternalID is the upsert key.
type UpsertParams struct {
	ExternalID     string
	Provider       string
	Username       string
	DisplayName    string
	Email          string
	AvatarURL      string
	Bio            string
	Expertise      []string
	AccessToken    string
	RefreshToken   string
	TokenExpiresAt time.Time
}

// Store defines the interface for canonical user persistence.
type Store interface {
	// Upsert creates the user for a never-before-seen external id or
	// updates the mutable fields of the existing one, atomically with
	// respect to concurrent callers. Identity fields are never modified
	// on update; the vanity subdomain is seeded from the username on
	// create and preserved afterwards.
	Upsert(ctx context.Context, params UpsertParams) (*User, error)

	// GetByID returns the user with the given opaque user id.
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByExternalID returns the user with the given external identity.
	GetByExternalID(ctx context.Context, externalID string) (*User, error)
}
