package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkondrashov/go-post-board/internal/adapter"
	"github.com/mkondrashov/go-post-board/internal/logger"
	"github.com/mkondrashov/go-post-board/internal/mock"
	"github.com/mkondrashov/go-post-board/internal/validators"
	"github.com/mkondrashov/go-post-board/models"
)

func int64Ptr(v int64) *int64 { return &v }

func testPosts() []models.Post {
	return []models.Post{
		{ID: 1, UserID: 7, Title: "first", Body: "body one"},
		{ID: 2, UserID: 7, Title: "second", Body: "body two"},
	}
}

func newTestLoader(t *testing.T, postsAdapter adapter.PostsAdapter, cfg LoaderConfig) *loaderService {
	t.Helper()
	svc := NewLoaderService(postsAdapter, validators.NewPostsValidator(), cfg, logger.Nop())
	return svc.(*loaderService)
}

// ── Ensure: success path ─────────────────────────────────────────────────────

func TestLoaderService_Ensure_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	filter := models.SearchFilter{UserID: int64Ptr(7)}

	mockAdapter := mock.NewMockPostsAdapter(ctrl)
	mockAdapter.EXPECT().FetchPosts(gomock.Any(), filter).Return(testPosts(), nil)

	loader := newTestLoader(t, mockAdapter, LoaderConfig{})

	entry, err := loader.Ensure(context.Background(), filter)
	require.NoError(t, err)

	assert.Equal(t, filter.CacheKey(), entry.Key)
	assert.Equal(t, models.EntrySuccess, entry.Status)
	assert.Equal(t, testPosts(), entry.Posts)
	assert.False(t, entry.FetchedAt.IsZero())
}

func TestLoaderService_Ensure_FreshHitSkipsFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	filter := models.SearchFilter{PostID: int64Ptr(3)}

	mockAdapter := mock.NewMockPostsAdapter(ctrl)
	mockAdapter.EXPECT().FetchPosts(gomock.Any(), filter).Return(testPosts(), nil).Times(1)

	loader := newTestLoader(t, mockAdapter, LoaderConfig{TTL: time.Minute})

	first, err := loader.Ensure(context.Background(), filter)
	require.NoError(t, err)

	second, err := loader.Ensure(context.Background(), filter)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLoaderService_Ensure_ZeroTTLRefetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	filter := models.SearchFilter{UserID: int64Ptr(7)}

	mockAdapter := mock.NewMockPostsAdapter(ctrl)
	mockAdapter.EXPECT().FetchPosts(gomock.Any(), filter).Return(testPosts(), nil).Times(2)

	loader := newTestLoader(t, mockAdapter, LoaderConfig{})

	_, err := loader.Ensure(context.Background(), filter)
	require.NoError(t, err)

	_, err = loader.Ensure(context.Background(), filter)
	require.NoError(t, err)
}

// ── Ensure: empty filter ─────────────────────────────────────────────────────

func TestLoaderService_Ensure_EmptyFilterPlaceholder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No FetchPosts expectation: an empty filter must not reach the network.
	mockAdapter := mock.NewMockPostsAdapter(ctrl)

	loader := newTestLoader(t, mockAdapter, LoaderConfig{TTL: time.Minute})

	entry, err := loader.Ensure(context.Background(), models.SearchFilter{})
	require.NoError(t, err)

	assert.Equal(t, models.EntryError, entry.Status)
	assert.Equal(t, models.PlaceholderPosts(), entry.Posts)

	// The placeholder is synthesized, never cached.
	loader.mu.Lock()
	assert.Empty(t, loader.entries)
	loader.mu.Unlock()
}

// ── Ensure: failure modes ────────────────────────────────────────────────────

func TestLoaderService_Ensure_TransportFailureNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	filter := models.SearchFilter{UserID: int64Ptr(7)}

	mockAdapter := mock.NewMockPostsAdapter(ctrl)
	gomock.InOrder(
		mockAdapter.EXPECT().FetchPosts(gomock.Any(), filter).Return(nil, adapter.ErrUpstreamUnavailable),
		mockAdapter.EXPECT().FetchPosts(gomock.Any(), filter).Return(testPosts(), nil),
	)

	loader := newTestLoader(t, mockAdapter, LoaderConfig{TTL: time.Minute})

	_, err := loader.Ensure(context.Background(), filter)
	require.ErrorIs(t, err, adapter.ErrUpstreamUnavailable)

	// Nothing was cached, so the retry fetches again and succeeds.
	entry, err := loader.Ensure(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, models.EntrySuccess, entry.Status)
}

func TestLoaderService_Ensure_MalformedResponseDowngraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	filter := models.SearchFilter{PostID: int64Ptr(9)}

	mockAdapter := mock.NewMockPostsAdapter(ctrl)
	mockAdapter.EXPECT().FetchPosts(gomock.Any(), filter).Return(nil, adapter.ErrMalformedResponse)

	loader := newTestLoader(t, mockAdapter, LoaderConfig{TTL: time.Minute})

	entry, err := loader.Ensure(context.Background(), filter)
	require.NoError(t, err)

	assert.Equal(t, models.EntryError, entry.Status)
	assert.Equal(t, models.PlaceholderPosts(), entry.Posts)
}

func TestLoaderService_Ensure_ShapeValidationDowngraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	filter := models.SearchFilter{UserID: int64Ptr(7)}
	broken := []models.Post{{ID: -1, UserID: 7, Title: "bad id"}}

	mockAdapter := mock.NewMockPostsAdapter(ctrl)
	mockAdapter.EXPECT().FetchPosts(gomock.Any(), filter).Return(broken, nil)

	loader := newTestLoader(t, mockAdapter, LoaderConfig{TTL: time.Minute})

	entry, err := loader.Ensure(context.Background(), filter)
	require.NoError(t, err)

	assert.Equal(t, models.EntryError, entry.Status)
	assert.Equal(t, models.PlaceholderPosts(), entry.Posts)
}

// ── Ensure: concurrent deduplication ─────────────────────────────────────────

func TestLoaderService_Ensure_ConcurrentCallsShareOneFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	filter := models.SearchFilter{UserID: int64Ptr(7)}
	release := make(chan struct{})

	mockAdapter := mock.NewMockPostsAdapter(ctrl)
	mockAdapter.EXPECT().
		FetchPosts(gomock.Any(), filter).
		DoAndReturn(func(context.Context, models.SearchFilter) ([]models.Post, error) {
			<-release
			return testPosts(), nil
		}).
		Times(1)

	loader := newTestLoader(t, mockAdapter, LoaderConfig{TTL: time.Minute})

	const callers = 4
	results := make([]models.CacheEntry, callers)
	errs := make([]error, callers)

	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = loader.Ensure(context.Background(), filter)
		}(i)
	}

	// Let every caller either start the fetch or join the pending one.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0], results[i])
	}
	assert.Equal(t, models.EntrySuccess, results[0].Status)
}

func TestLoaderService_Ensure_JoinerCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	filter := models.SearchFilter{UserID: int64Ptr(7)}
	release := make(chan struct{})
	started := make(chan struct{})

	mockAdapter := mock.NewMockPostsAdapter(ctrl)
	mockAdapter.EXPECT().
		FetchPosts(gomock.Any(), filter).
		DoAndReturn(func(context.Context, models.SearchFilter) ([]models.Post, error) {
			close(started)
			<-release
			return testPosts(), nil
		}).
		Times(1)

	loader := newTestLoader(t, mockAdapter, LoaderConfig{TTL: time.Minute})

	go func() {
		_, _ = loader.Ensure(context.Background(), filter)
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.Ensure(ctx, filter)
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
}

// ── EvictStale ───────────────────────────────────────────────────────────────

func TestLoaderService_EvictStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockPostsAdapter(ctrl)
	mockAdapter.EXPECT().FetchPosts(gomock.Any(), gomock.Any()).Return(testPosts(), nil).Times(2)

	loader := newTestLoader(t, mockAdapter, LoaderConfig{TTL: time.Minute})

	_, err := loader.Ensure(context.Background(), models.SearchFilter{UserID: int64Ptr(1)})
	require.NoError(t, err)
	_, err = loader.Ensure(context.Background(), models.SearchFilter{UserID: int64Ptr(2)})
	require.NoError(t, err)

	// Still inside the freshness window: nothing to drop.
	assert.Equal(t, 0, loader.EvictStale(time.Now()))

	// Past the window both entries are stale.
	assert.Equal(t, 2, loader.EvictStale(time.Now().Add(2*time.Minute)))

	loader.mu.Lock()
	assert.Empty(t, loader.entries)
	loader.mu.Unlock()
}
