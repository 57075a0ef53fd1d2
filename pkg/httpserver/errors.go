package httpserver

import "errors"

var (
	// ErrStart wraps listener and startup failures from Run.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown wraps failures to drain the server within the shutdown
	// timeout.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
)
