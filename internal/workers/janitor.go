package workers

import (
	"context"
	"sync"
	"time"

	"github.com/mkondrashov/go-post-board/internal/logger"
	"github.com/mkondrashov/go-post-board/internal/service"
)

// CacheJanitor periodically drops stale loader entries so that a cache
// running with a positive freshness window does not grow without bound.
// With a non-positive interval the janitor stays idle, which matches the
// default zero-TTL setup where entries are never served stale anyway.
type CacheJanitor struct {
	loader   service.LoaderService
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewCacheJanitor(loader service.LoaderService, interval time.Duration, logger *logger.Logger) *CacheJanitor {
	return &CacheJanitor{
		loader:   loader,
		interval: interval,
		logger:   logger,
	}
}

// Run implements [Worker]. The janitor runs against the background
// context until Stop is called.
func (j *CacheJanitor) Run() {
	j.Start(context.Background())
}

// Start stops any previously running sweep loop, then launches a
// background goroutine that evicts stale entries every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *CacheJanitor) Start(ctx context.Context) {
	if j.interval <= 0 {
		j.logger.Debug().Msg("cache janitor disabled, no eviction interval configured")
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if evicted := j.loader.EvictStale(time.Now()); evicted > 0 {
					j.logger.Debug().Int("evicted", evicted).Msg("cache janitor sweep finished")
				}
			}
		}
	}()
}

// Stop cancels the sweep goroutine's context and blocks until it has
// fully exited. Safe to call when the janitor is not running.
func (j *CacheJanitor) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
