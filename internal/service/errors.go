package service

import "errors"

// Sentinel errors returned by the services. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidCredentials is returned by Login when the submitted
	// credentials fail the structural check (empty user or password).
	ErrInvalidCredentials = errors.New("invalid credentials provided")

	// ErrSessionPersist is returned (wrapped) when the session store
	// rejects a login or logout mutation. The in-memory session is left
	// unchanged in that case so memory and storage never diverge.
	ErrSessionPersist = errors.New("failed to persist session state")
)
