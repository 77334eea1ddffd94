// Package utils provides general-purpose helpers used across different
// parts of the application: type-safe context keys, session token
// generation and inspection, and HTTP response writing.
package utils

import (
	"context"
	"errors"

	"github.com/mkondrashov/go-post-board/models"
)

// ErrNoSessionInContext is returned by [SessionFromContext] when no
// session has been attached to the context. Hitting it means a handler
// behind the route guard was invoked without the guard having run, a
// programming error in the route wiring, not a user-facing condition.
var ErrNoSessionInContext = errors.New("no session in context")

// contextKey is a private type for context keys. Using a dedicated type
// instead of a plain string prevents collisions with other packages that
// may store string-keyed values in the same context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the route guard stores the
// authenticated session in the request context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SessionCtxKey, session)
var SessionCtxKey = contextKey("session")

// SessionFromContext retrieves the authenticated session stored in ctx by
// the route guard.
//
// Returns [ErrNoSessionInContext] if the value is missing or has an
// unexpected type. Callers inside the protected subtree must treat that
// error as fatal for the request: it cannot occur when the guard is wired
// correctly.
func SessionFromContext(ctx context.Context) (models.Session, error) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	if !ok {
		return models.Session{}, ErrNoSessionInContext
	}
	return session, nil
}
