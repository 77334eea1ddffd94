// Package adapter implements the outbound HTTP collaborator: a thin
// client for the demonstration posts API the query loader fetches from.
package adapter

import (
	"context"

	"github.com/mkondrashov/go-post-board/models"
)

// PostsAdapter fetches post collections from the upstream demo API,
// filtered by the identifying fields of a [models.SearchFilter].
type PostsAdapter interface {
	// FetchPosts performs one GET against the posts resource with the
	// filter serialized as query parameters. Transport and non-2xx
	// failures are reported as (or wrapped around)
	// [ErrUpstreamUnavailable]; a malformed JSON body is reported as
	// [ErrMalformedResponse]. Shape validation of a well-formed payload
	// is the caller's concern.
	FetchPosts(ctx context.Context, filter models.SearchFilter) ([]models.Post, error)
}
