package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mkondrashov/go-post-board/internal/logger"
	"github.com/mkondrashov/go-post-board/internal/utils"
	"github.com/mkondrashov/go-post-board/models"
)

// appIndex serves the authenticated application shell.
func (h *Handler) appIndex(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	session, err := utils.SessionFromContext(r.Context())
	if err != nil {
		// The guard puts the session into the context; reaching this
		// branch means the route was wired outside the guard.
		log.Err(err).Msg("no session in context on a guarded route")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, appShell, session.User)
}

// posts resolves the board data for the raw query parameters. Unknown and
// malformed parameters are dropped by the filter parser, so the endpoint
// never rejects a query as invalid.
func (h *Handler) posts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, err := utils.SessionFromContext(ctx); err != nil {
		log.Err(err).Msg("no session in context on a guarded route")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	filter := models.ParseSearchFilter(r.URL.Query())

	entry, err := h.services.LoaderService.Ensure(ctx, filter)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			log.Err(err).Msg("posts request aborted by the caller")
			http.Error(w, http.StatusText(http.StatusRequestTimeout), http.StatusRequestTimeout)
			return
		default:
			// Transport failures surface as a generic indicator; the
			// broken attempt is not cached and the next navigation
			// retries the fetch.
			log.Err(err).Str("key", filter.CacheKey()).Msg("posts could not be resolved")
			utils.WriteJSON(w, errorResponse{Error: "upstream unavailable"}, http.StatusBadGateway)
			return
		}
	}

	utils.WriteJSON(w, newPostsResponse(entry), http.StatusOK)
}

const appShell = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Post board</title></head>
<body>
  <main>
    <h1>Post board</h1>
    <p>Signed in as %s. Browse <a href="/app/posts">all posts</a> or filter
    with <code>?userId=N</code> and <code>?postId=N</code>.</p>
  </main>
</body>
</html>
`
