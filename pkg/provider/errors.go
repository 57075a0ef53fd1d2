package provider

import "errors"

var (
	// ErrUnknownProvider indicates the requested provider id is not registered
	ErrUnknownProvider = errors.New("provider.unknown")

	// ErrMalformedProfile indicates the raw payload could not be normalized
	ErrMalformedProfile = errors.New("provider.malformed_profile")
)
