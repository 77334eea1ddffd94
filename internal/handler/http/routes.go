package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/session", h.session)
	})

	// the application subtree sits behind the session guard; every
	// request re-checks the current session
	router.Route("/app", func(r chi.Router) {
		r.Use(h.guard)
		r.Get("/", h.appIndex)
		r.Get("/posts", h.posts)
	})

	return router
}
