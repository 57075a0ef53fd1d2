package statestore

import "errors"

var (
	// ErrStateNotFound indicates the state token is unknown, expired or already consumed
	ErrStateNotFound = errors.New("statestore.not_found")

	// ErrInvalidState indicates a malformed state record was passed to Put
	ErrInvalidState = errors.New("statestore.invalid")
)
