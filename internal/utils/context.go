// Package utils provides general-purpose helpers used across the
// application: typed context keys, JSON response writing, JWT token
// generation and validation, and snake_case/camelCase string conversion.
package utils

import (
	"context"

	"github.com/ndanilov/shelf-viewer/models"
)

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents collisions with other packages.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// CurrentUserCtxKey is the key under which the authentication middleware
// stores the resolved [models.User] for the lifetime of a request.
var CurrentUserCtxKey = contextKey("currentUser")

// WithCurrentUser returns a child context carrying user.
func WithCurrentUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, CurrentUserCtxKey, user)
}

// CurrentUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true  — a user was attached by the auth middleware
//   - ok == false — the request was not authenticated
func CurrentUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(CurrentUserCtxKey).(models.User)
	return user, ok
}
