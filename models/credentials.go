package models

import "errors"

// Sentinel errors returned by [Credentials.Validate].
var (
	// ErrEmptyUser is returned when the user field of submitted
	// credentials is blank.
	ErrEmptyUser = errors.New("empty user in credentials")

	// ErrEmptyPassword is returned when the password field of submitted
	// credentials is blank.
	ErrEmptyPassword = errors.New("empty password in credentials")
)

// Credentials carries a login form submission. The demo backend performs
// no server-side account lookup: structurally valid credentials always
// produce a session.
type Credentials struct {
	// User is the identity to establish the session for.
	User string `json:"user"`

	// Password is checked for presence only and is never persisted.
	Password string `json:"password"`
}

// Validate performs the structural check required before a login attempt.
func (c Credentials) Validate() error {
	if c.User == "" {
		return ErrEmptyUser
	}
	if c.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}
