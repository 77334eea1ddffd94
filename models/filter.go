package models

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names recognized by [ParseSearchFilter]. They match the
// parameter names of the upstream posts API so a filter can be forwarded
// verbatim.
const (
	ParamUserID = "userId"
	ParamPostID = "postId"
)

// SearchFilter is the validated, typed form of the URL query parameters
// driving a posts view. Every field is optional; the zero value means
// "no filtering requested".
//
// The URL itself is the source of truth for a filter: a SearchFilter is
// rebuilt from the raw query on every navigation and is never persisted.
type SearchFilter struct {
	// UserID restricts the view to posts authored by one user.
	UserID *int64

	// PostID restricts the view to a single post.
	PostID *int64
}

// ParseSearchFilter builds a SearchFilter from raw query parameters.
//
// The parse is deliberately lenient: a missing, empty, or malformed value
// is coerced to an absent field instead of producing an error, so callers
// never have to handle a failed parse. This keeps arbitrary user-edited
// URLs navigable: a bad parameter degrades to "no filter", not to a
// rejected navigation.
func ParseSearchFilter(raw url.Values) SearchFilter {
	return SearchFilter{
		UserID: decodeOptionalID(raw.Get(ParamUserID)),
		PostID: decodeOptionalID(raw.Get(ParamPostID)),
	}
}

// decodeOptionalID parses one raw query value into an optional identifier.
// Anything that is not a non-negative base-10 integer maps to nil.
func decodeOptionalID(raw string) *int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return nil
	}

	return &id
}

// IsEmpty reports whether no identifying field is set. An empty filter
// short-circuits data loading entirely (see the loader's fetch policy).
func (f SearchFilter) IsEmpty() bool {
	return f.UserID == nil && f.PostID == nil
}

// Values serializes the filter back into URL query parameters. Absent
// fields are omitted. Round-tripping through [ParseSearchFilter] yields a
// filter equal to the original.
func (f SearchFilter) Values() url.Values {
	values := url.Values{}
	if f.UserID != nil {
		values.Set(ParamUserID, strconv.FormatInt(*f.UserID, 10))
	}
	if f.PostID != nil {
		values.Set(ParamPostID, strconv.FormatInt(*f.PostID, 10))
	}
	return values
}

// CacheKey derives the canonical cache key for the filter. Fields are
// emitted in a fixed order so that equivalent filters produced from
// differently ordered query strings collide on the same key.
func (f SearchFilter) CacheKey() string {
	var b strings.Builder
	b.WriteString("posts")

	if f.PostID != nil {
		b.WriteString("|postId=")
		b.WriteString(strconv.FormatInt(*f.PostID, 10))
	}
	if f.UserID != nil {
		b.WriteString("|userId=")
		b.WriteString(strconv.FormatInt(*f.UserID, 10))
	}

	return b.String()
}

// Equal reports whether two filters select the same data.
func (f SearchFilter) Equal(other SearchFilter) bool {
	return equalOptionalID(f.UserID, other.UserID) && equalOptionalID(f.PostID, other.PostID)
}

func equalOptionalID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
