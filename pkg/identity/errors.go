package identity

import "errors"

var (
	// ErrUserNotFound indicates no user matches the lookup key
	ErrUserNotFound = errors.New("identity.user_not_found")

	// ErrUsernameTaken indicates the username or vanity subdomain is already
	// claimed by a different external identity
	ErrUsernameTaken = errors.New("identity.username_taken")

	// ErrInvalidUser indicates malformed upsert input
	ErrInvalidUser = errors.New("identity.invalid_user")
)
