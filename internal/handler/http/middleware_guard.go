package http

import (
	"context"
	"net/http"

	"github.com/mkondrashov/go-post-board/internal/logger"
	"github.com/mkondrashov/go-post-board/internal/utils"
)

// loginSurface is the inline login document served in place of any guarded
// page while no session is active. The requested URL stays in the address
// bar, so a successful login lands the user exactly where they were headed.
const loginSurface = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Sign in</title></head>
<body>
  <main>
    <h1>Sign in</h1>
    <form id="login-form">
      <label>User <input name="user" autocomplete="username"></label>
      <label>Password <input name="password" type="password" autocomplete="current-password"></label>
      <button type="submit">Sign in</button>
    </form>
    <script>
      document.getElementById("login-form").addEventListener("submit", async (e) => {
        e.preventDefault();
        const data = Object.fromEntries(new FormData(e.target));
        const resp = await fetch("/api/auth/login", {
          method: "POST",
          headers: {"Content-Type": "application/json"},
          body: JSON.stringify(data),
        });
        if (resp.ok) location.reload();
      });
    </script>
  </main>
</body>
</html>
`

// guard protects the application subtree. The session is re-checked on
// every request, not once per visit: a logout invalidates the next
// navigation immediately.
//
// An unauthenticated request is answered with the login document and HTTP
// 200, never a redirect. An authenticated request gets its session stored
// in the context under [utils.SessionCtxKey] before delegation.
func (h *Handler) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := h.services.SessionService.Current()

		if !session.IsAuthenticated() {
			log := logger.FromRequest(r)
			log.Debug().Str("uri", r.RequestURI).Msg("unauthenticated request, serving login surface")

			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(loginSurface))
			return
		}

		ctx := context.WithValue(r.Context(), utils.SessionCtxKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
