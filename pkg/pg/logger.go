package pg

import "context"

// logger is the subset of slog used by migrations, kept as an interface so
// goose output can be routed anywhere structured.
type logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}
