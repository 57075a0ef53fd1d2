package auth

import (
	"context"

	"github.com/profiledeck/socialauth/pkg/identity"
)

type userContextKey struct{}

// SetUserToContext stores the authenticated user in context for middleware
// chain access.
func SetUserToContext(ctx context.Context, user *identity.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// GetUserFromContext retrieves the authenticated user from context.
// Returns nil if no user was previously stored.
func GetUserFromContext(ctx context.Context) *identity.User {
	user, _ := ctx.Value(userContextKey{}).(*identity.User)
	return user
}
