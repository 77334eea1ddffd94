package adapter

import "errors"

// Sentinel errors returned by the posts adapter. Callers match against
// them with [errors.Is].
var (
	// ErrUpstreamUnavailable is returned when the upstream posts API
	// cannot be reached or answers with a non-2xx status. The loader
	// treats it as a transient fetch failure: nothing is cached and the
	// next navigation retries.
	ErrUpstreamUnavailable = errors.New("upstream posts api unavailable")

	// ErrMalformedResponse is returned when the upstream answers 2xx but
	// the body is not a JSON array of posts at all. The loader downgrades
	// it to a placeholder entry, same as a shape validation failure.
	ErrMalformedResponse = errors.New("malformed upstream response")
)
