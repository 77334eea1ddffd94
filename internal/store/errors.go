package store

import "errors"

// Sentinel errors returned by session store implementations. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by Get when no value exists under the
	// requested key. It is an expected condition, not a failure: a fresh
	// install has no persisted session.
	ErrKeyNotFound = errors.New("key not found in session store")

	// ErrStoreUnavailable is returned (or wrapped) when the backing
	// store cannot be reached: a lost database connection, an
	// unreachable Redis instance, an unreadable file.
	ErrStoreUnavailable = errors.New("session store unavailable")

	// ErrUnsupportedDriver is returned by [NewSessionStore] when the
	// configured driver name does not match any known backend.
	ErrUnsupportedDriver = errors.New("unsupported session store driver")
)

// Low-level SQL operation errors wrapped by the SQL-backed stores.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised
	// SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a
	// result row fails.
	ErrScanningRow = errors.New("failed to scan session store row")
)
