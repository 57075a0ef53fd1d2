package session

import "errors"

var (
	// ErrSessionNotFound indicates the session id is unknown or expired
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrInvalidSession indicates a malformed session record
	ErrInvalidSession = errors.New("session.invalid")

	// ErrTokenGeneration indicates session id generation failed
	ErrTokenGeneration = errors.New("session.token_generation_failed")
)
