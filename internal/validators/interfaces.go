// Package validators encodes the shape checks applied to upstream
// payloads before they are accepted into the query cache.
//
// The loader injects a [Validator] and downgrades any payload failing
// validation to the placeholder entry, so invalid upstream data never
// reaches a view.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input
// values. Implementations may perform structural validation, semantic
// checks, or cross-field rules.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
