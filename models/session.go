package models

// Session represents the current login status of the application's user.
// It is owned exclusively by the session service; every other component
// observes it through read accessors only.
type Session struct {
	// User is the identity the session was established for.
	// An empty string means no user is logged in.
	User string `json:"user,omitempty"`

	// Token is the signed session token issued at login. It is only
	// meaningful while User is non-empty and is persisted alongside it.
	Token string `json:"token,omitempty"`
}

// IsAuthenticated reports whether a user is currently logged in.
// The result is derived from User so that the session can never claim
// to be authenticated without an identity attached.
func (s Session) IsAuthenticated() bool {
	return s.User != ""
}
