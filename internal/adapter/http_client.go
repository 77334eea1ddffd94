package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mkondrashov/go-post-board/models"
)

// postsResource is the upstream collection path the loader reads from.
const postsResource = "/posts"

// HTTPClientConfig holds the settings of the upstream posts client.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpPostsAdapter struct {
	client *resty.Client
}

// NewHTTPPostsAdapter constructs a [PostsAdapter] speaking to the demo
// posts API over HTTP. Zero-value config fields fall back to the public
// demonstration endpoint and a 10 second timeout.
func NewHTTPPostsAdapter(cfg HTTPClientConfig) PostsAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://jsonplaceholder.typicode.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpPostsAdapter{client: cli}
}

func (h *httpPostsAdapter) FetchPosts(ctx context.Context, filter models.SearchFilter) ([]models.Post, error) {
	req := h.client.R().SetContext(ctx)

	// The upstream expects the same parameter names the inbound URL uses,
	// so the validated filter is forwarded verbatim.
	for name, values := range filter.Values() {
		for _, value := range values {
			req.SetQueryParam(name, value)
		}
	}

	// Single-post lookups use the same collection endpoint with an id
	// filter; the upstream answers with a one-element array.
	resp, err := req.Get(postsResource)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := resp.Body()
	if len(strings.TrimSpace(string(body))) == 0 {
		// 2xx with no body counts as an empty collection.
		return nil, nil
	}

	var posts []models.Post
	if err = json.Unmarshal(body, &posts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return posts, nil
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrUpstreamUnavailable, resp.StatusCode(), body)
}
