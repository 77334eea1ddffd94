package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mkondrashov/go-post-board/internal/adapter"
	"github.com/mkondrashov/go-post-board/internal/logger"
	"github.com/mkondrashov/go-post-board/internal/mock"
	"github.com/mkondrashov/go-post-board/internal/service"
	"github.com/mkondrashov/go-post-board/internal/validators"
	"github.com/mkondrashov/go-post-board/models"
)

func newAuthenticatedHandler(t *testing.T, postsAdapter adapter.PostsAdapter) *Handler {
	t.Helper()

	sessionSvc := newSessionServiceForTest(t)
	_, err := sessionSvc.Login(context.Background(), models.Credentials{User: "alice", Password: "secret"})
	require.NoError(t, err)

	loaderSvc := service.NewLoaderService(postsAdapter, validators.NewPostsValidator(), service.LoaderConfig{TTL: time.Minute}, logger.Nop())

	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			SessionService: sessionSvc,
			LoaderService:  loaderSvc,
		},
	}
}

func TestPosts_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := int64(7)
	want := []models.Post{{ID: 1, UserID: userID, Title: "first", Body: "hello"}}

	mockAdapter := mock.NewMockPostsAdapter(ctrl)
	mockAdapter.EXPECT().
		FetchPosts(gomock.Any(), models.SearchFilter{UserID: &userID}).
		Return(want, nil)

	h := newAuthenticatedHandler(t, mockAdapter)

	rr := executeRequest(h, http.MethodGet, "/app/posts?userId=7", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp postsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.EntrySuccess, resp.Status)
	assert.Equal(t, want, resp.Posts)
	assert.Equal(t, "posts|userId=7", resp.Key)
}

func TestPosts_MalformedParamsCoerced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// "abc" is dropped during coercion, so the upstream sees an empty
	// filter equivalent; an empty filter short-circuits to the
	// placeholder without any fetch.
	mockAdapter := mock.NewMockPostsAdapter(ctrl)

	h := newAuthenticatedHandler(t, mockAdapter)

	rr := executeRequest(h, http.MethodGet, "/app/posts?userId=abc", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp postsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.EntryError, resp.Status)
	assert.Equal(t, models.PlaceholderPosts(), resp.Posts)
}

func TestPosts_UpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockPostsAdapter(ctrl)
	mockAdapter.EXPECT().
		FetchPosts(gomock.Any(), gomock.Any()).
		Return(nil, adapter.ErrUpstreamUnavailable)

	h := newAuthenticatedHandler(t, mockAdapter)

	rr := executeRequest(h, http.MethodGet, "/app/posts?userId=7", "")
	require.Equal(t, http.StatusBadGateway, rr.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "upstream unavailable", resp.Error)
}

func TestPosts_UnauthenticatedGetsLoginSurface(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No fetch expectation: the guard answers before the handler runs.
	mockAdapter := mock.NewMockPostsAdapter(ctrl)

	sessionSvc := newSessionServiceForTest(t)
	loaderSvc := service.NewLoaderService(mockAdapter, validators.NewPostsValidator(), service.LoaderConfig{}, logger.Nop())
	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			SessionService: sessionSvc,
			LoaderService:  loaderSvc,
		},
	}

	rr := executeRequest(h, http.MethodGet, "/app/posts?userId=7", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "login-form")
}

func TestAppIndex_ShowsUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newAuthenticatedHandler(t, mock.NewMockPostsAdapter(ctrl))

	rr := executeRequest(h, http.MethodGet, "/app/", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "alice")
}
