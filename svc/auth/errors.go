package auth

import "errors"

// Configuration errors: fatal at the point of use, never retried.
var (
	// ErrUnknownProvider indicates the provider id is not registered
	ErrUnknownProvider = errors.New("auth.unknown_provider")

	// ErrMissingCredentials indicates no client credentials are configured
	// for the provider
	ErrMissingCredentials = errors.New("auth.missing_credentials")
)

// Validation errors: the caller must restart the flow.
var (
	// ErrInvalidState indicates the state token is unknown, expired or
	// already consumed
	ErrInvalidState = errors.New("auth.invalid_state")

	// ErrProviderMismatch indicates the callback provider differs from the
	// provider the state was issued for
	ErrProviderMismatch = errors.New("auth.provider_mismatch")
)

// Upstream errors: the provider call failed; the stale authorization code
// cannot be replayed, so the engine does not retry.
var (
	// ErrTokenExchangeFailed indicates the code-for-token exchange failed
	ErrTokenExchangeFailed = errors.New("auth.token_exchange_failed")

	// ErrProfileFetchFailed indicates the provider profile could not be
	// fetched or normalized
	ErrProfileFetchFailed = errors.New("auth.profile_fetch_failed")
)
