package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mkondrashov/go-post-board/internal/logger"
	"github.com/mkondrashov/go-post-board/internal/service"
	"github.com/mkondrashov/go-post-board/internal/utils"
	"github.com/mkondrashov/go-post-board/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	session, err := h.services.SessionService.Login(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid credentials provided")
			http.Error(w, "invalid credentials provided", http.StatusBadRequest)
			return
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			log.Err(err).Msg("login aborted by the caller")
			http.Error(w, http.StatusText(http.StatusRequestTimeout), http.StatusRequestTimeout)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Str("user", session.User).Msg("user successfully logged in")

	utils.WriteJSON(w, newSessionResponse(session), http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.SessionService.Logout(ctx); err != nil {
		log.Err(err).Msg("unexpected error occurred during logout")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// session reports the current session without mutating it. The token is
// never echoed back; only its expiry is surfaced, best effort.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	current := h.services.SessionService.Current()

	resp := newSessionResponse(current)
	if current.Token != "" {
		if _, expiresAt, err := utils.InspectSessionToken(current.Token); err == nil && !expiresAt.IsZero() {
			resp.TokenExpires = &expiresAt
		}
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}
