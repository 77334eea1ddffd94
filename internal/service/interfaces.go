// Package service implements the application core: the session holder
// that owns the login state, and the query loader that resolves cache
// entries keyed by validated URL parameters.
package service

import (
	"context"
	"time"

	"github.com/mkondrashov/go-post-board/models"
)

// SessionService owns the process-wide login session. It is the only
// component allowed to mutate the session; everyone else reads snapshots
// through Current.
type SessionService interface {
	// Restore loads a previously persisted session at process start.
	// An empty store is the normal fresh-install state and leaves the
	// session unauthenticated without error.
	Restore(ctx context.Context) error

	// Login establishes a session for structurally valid credentials.
	// There is no account lookup: the demo identity backend accepts any
	// well-formed submission after a simulated round-trip delay. The new
	// identity and its token are persisted before the in-memory session
	// is updated.
	Login(ctx context.Context, creds models.Credentials) (models.Session, error)

	// Logout clears the session after the simulated delay. Both
	// persisted keys are removed together, so a restart can never
	// observe a token without its user.
	Logout(ctx context.Context) error

	// Current returns a snapshot of the session. It never fails.
	Current() models.Session
}

// LoaderService resolves cache entries for the protected views. One
// entry exists per canonical filter key; concurrent requests for the
// same key are coalesced into a single upstream fetch.
type LoaderService interface {
	// Ensure returns the cache entry for filter, fetching it if no
	// fresh entry exists. An empty filter yields a synthesized
	// placeholder entry without any network activity. A transport
	// failure is returned as an error and leaves the cache untouched,
	// so the next navigation retries; a payload failing shape
	// validation is downgraded to a cached placeholder entry instead.
	Ensure(ctx context.Context, filter models.SearchFilter) (models.CacheEntry, error)

	// EvictStale drops every cached entry that is no longer fresh at
	// the given instant. Called by the cache janitor.
	EvictStale(now time.Time) int
}
