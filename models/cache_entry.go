package models

import "time"

// EntryStatus tags a cache entry as a real fetch result or a fallback.
type EntryStatus string

const (
	// EntrySuccess marks an entry holding a validated upstream payload.
	EntrySuccess EntryStatus = "success"

	// EntryError marks an entry holding the placeholder payload, produced
	// when the filter selects nothing or the upstream payload failed shape
	// validation.
	EntryError EntryStatus = "error"
)

// CacheEntry is one resolved data result stored by the query loader,
// keyed by the canonical serialization of a [SearchFilter]. Views hold
// only a transient read copy; the loader owns the stored value.
type CacheEntry struct {
	// Key is the canonical cache key the entry was resolved under.
	Key string `json:"key"`

	// Status tags the payload as fetched data or the placeholder.
	Status EntryStatus `json:"status"`

	// Posts is the payload. For EntryError entries it is always the
	// placeholder payload, never partial upstream data.
	Posts []Post `json:"posts"`

	// FetchedAt records when the entry was last resolved and drives the
	// freshness check.
	FetchedAt time.Time `json:"fetched_at"`
}

// Fresh reports whether the entry is still usable without re-resolving.
// A non-positive ttl means entries are always stale, so every navigation
// re-resolves its data; in-flight coalescing still prevents duplicate
// fetches for concurrent navigations.
func (e CacheEntry) Fresh(ttl time.Duration, now time.Time) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(e.FetchedAt) < ttl
}
