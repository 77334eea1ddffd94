package http

import (
	"time"

	"github.com/mkondrashov/go-post-board/models"
)

// sessionResponse is the document served by GET /api/session and by a
// successful login.
type sessionResponse struct {
	User          string     `json:"user,omitempty"`
	Authenticated bool       `json:"authenticated"`
	TokenExpires  *time.Time `json:"token_expires,omitempty"`
}

// postsResponse is the document served by GET /app/posts. Status mirrors
// the resolved cache entry: "success" carries upstream records, "error"
// carries the placeholder collection.
type postsResponse struct {
	Key       string             `json:"key"`
	Status    models.EntryStatus `json:"status"`
	Posts     []models.Post      `json:"posts"`
	FetchedAt time.Time          `json:"fetched_at"`
}

// errorResponse is the generic error indicator payload. It deliberately
// carries no detail about the underlying failure.
type errorResponse struct {
	Error string `json:"error"`
}

func newSessionResponse(session models.Session) sessionResponse {
	return sessionResponse{
		User:          session.User,
		Authenticated: session.IsAuthenticated(),
	}
}

func newPostsResponse(entry models.CacheEntry) postsResponse {
	return postsResponse{
		Key:       entry.Key,
		Status:    entry.Status,
		Posts:     entry.Posts,
		FetchedAt: entry.FetchedAt,
	}
}
