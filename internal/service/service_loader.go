package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mkondrashov/go-post-board/internal/adapter"
	"github.com/mkondrashov/go-post-board/internal/logger"
	"github.com/mkondrashov/go-post-board/internal/validators"
	"github.com/mkondrashov/go-post-board/models"
)

// LoaderConfig holds the cache policy of the query loader.
type LoaderConfig struct {
	// TTL is the freshness window of a resolved entry. Zero (the
	// default) means every call re-resolves; concurrent calls for the
	// same key still share one fetch.
	TTL time.Duration
}

// inflightCall is one pending resolution. Callers arriving while the
// fetch is running block on done and then read entry/err; the fields are
// written exactly once, before done is closed.
type inflightCall struct {
	done  chan struct{}
	entry models.CacheEntry
	err   error
}

type loaderService struct {
	adapter   adapter.PostsAdapter
	validator validators.Validator
	cfg       LoaderConfig
	logger    *logger.Logger

	// now is swapped out by tests to control freshness.
	now func() time.Time

	mu       sync.Mutex
	entries  map[string]models.CacheEntry
	inflight map[string]*inflightCall
}

// NewLoaderService constructs the [LoaderService] over the given upstream
// adapter. Payloads are validated with validator before they are cached.
func NewLoaderService(postsAdapter adapter.PostsAdapter, validator validators.Validator, cfg LoaderConfig, log *logger.Logger) LoaderService {
	return &loaderService{
		adapter:   postsAdapter,
		validator: validator,
		cfg:       cfg,
		logger:    log,
		now:       time.Now,
		entries:   make(map[string]models.CacheEntry),
		inflight:  make(map[string]*inflightCall),
	}
}

func (l *loaderService) Ensure(ctx context.Context, filter models.SearchFilter) (models.CacheEntry, error) {
	key := filter.CacheKey()

	// No identifying fields: nothing to fetch. The placeholder entry is
	// synthesized fresh each time and never cached.
	if filter.IsEmpty() {
		return l.placeholderEntry(key), nil
	}

	l.mu.Lock()

	if entry, ok := l.entries[key]; ok && entry.Fresh(l.cfg.TTL, l.now()) {
		l.mu.Unlock()
		return entry, nil
	}

	// Join a pending resolution for the same key instead of fetching
	// again: at most one fetch is in flight per distinct key.
	if call, ok := l.inflight[key]; ok {
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return models.CacheEntry{}, ctx.Err()
		case <-call.done:
			return call.entry, call.err
		}
	}

	call := &inflightCall{done: make(chan struct{})}
	l.inflight[key] = call
	l.mu.Unlock()

	entry, err := l.resolve(ctx, key, filter)

	l.mu.Lock()
	if err == nil {
		l.entries[key] = entry
	}
	delete(l.inflight, key)
	l.mu.Unlock()

	call.entry = entry
	call.err = err
	close(call.done)

	return entry, err
}

// resolve performs the actual fetch-and-validate step for one key.
//
// A transport failure propagates as an error and is never cached. A
// payload that is structurally broken or fails shape validation is
// downgraded to a placeholder entry; the invalid data is discarded.
func (l *loaderService) resolve(ctx context.Context, key string, filter models.SearchFilter) (models.CacheEntry, error) {
	posts, err := l.adapter.FetchPosts(ctx, filter)
	if err != nil {
		if errors.Is(err, adapter.ErrMalformedResponse) {
			l.logger.Warn().Str("key", key).Err(err).Msg("upstream payload malformed, serving placeholder")
			return l.placeholderEntry(key), nil
		}
		l.logger.Err(err).Str("key", key).Msg("upstream fetch failed")
		return models.CacheEntry{}, err
	}

	if err = l.validator.Validate(ctx, posts); err != nil {
		l.logger.Warn().Str("key", key).Err(err).Msg("upstream payload failed shape validation, serving placeholder")
		return l.placeholderEntry(key), nil
	}

	l.logger.Debug().Str("key", key).Int("posts", len(posts)).Msg("cache entry resolved")

	return models.CacheEntry{
		Key:       key,
		Status:    models.EntrySuccess,
		Posts:     posts,
		FetchedAt: l.now(),
	}, nil
}

func (l *loaderService) placeholderEntry(key string) models.CacheEntry {
	return models.CacheEntry{
		Key:       key,
		Status:    models.EntryError,
		Posts:     models.PlaceholderPosts(),
		FetchedAt: l.now(),
	}
}

func (l *loaderService) EvictStale(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	evicted := 0
	for key, entry := range l.entries {
		if !entry.Fresh(l.cfg.TTL, now) {
			delete(l.entries, key)
			evicted++
		}
	}

	if evicted > 0 {
		l.logger.Debug().Int("evicted", evicted).Msg("stale cache entries evicted")
	}
	return evicted
}
