package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid session storage settings
	// (for example, an unknown driver, or a driver selected without its
	// required connection parameter).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidUpstreamConfigs indicates invalid upstream posts API
	// settings (for example, an empty base URL).
	ErrInvalidUpstreamConfigs = errors.New("invalid upstream configuration")

	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key or issuer).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
