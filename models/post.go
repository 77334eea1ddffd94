package models

// Post is one record of the upstream demonstration API. The shape mirrors
// the upstream JSON contract; anything that deviates from it is treated as
// a schema mismatch by the loader.
type Post struct {
	// ID is the unique post identifier assigned by the upstream service.
	ID int64 `json:"id"`

	// UserID identifies the author of the post.
	UserID int64 `json:"userId"`

	// Title is the post headline. The upstream contract guarantees it is
	// non-empty for every real record.
	Title string `json:"title"`

	// Body is the post content.
	Body string `json:"body"`
}

// PlaceholderPosts returns the fixed fallback payload used when no real
// data can be served: an empty filter, or an upstream response that failed
// shape validation. The payload is indistinguishable from "no data" on the
// rendering side, which is the intended behavior.
func PlaceholderPosts() []Post {
	return []Post{
		{
			ID:     0,
			UserID: 0,
			Title:  "No data",
			Body:   "No posts are available for the requested filter.",
		},
	}
}
