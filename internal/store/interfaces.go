// Package store implements the session persistence layer: a small
// key-value contract with interchangeable backends (JSON file, SQLite,
// PostgreSQL, Redis, in-memory). The session service persists exactly two
// keys through it (the logged-in user identity and the session token)
// and reads them back on process start.
package store

import "context"

// SessionStore is the synchronous key-value persistence collaborator.
// Implementations must make a Set durable before returning: the session
// service relies on every mutation being persisted synchronously so a
// process restart observes the latest login state.
type SessionStore interface {
	// Get returns the value stored under key, or [ErrKeyNotFound] if the
	// key has never been set or has been deleted.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources. Safe to call once after use.
	Close() error
}
