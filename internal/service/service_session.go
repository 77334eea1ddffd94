package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/mkondrashov/go-post-board/internal/logger"
	"github.com/mkondrashov/go-post-board/internal/store"
	"github.com/mkondrashov/go-post-board/internal/utils"
	"github.com/mkondrashov/go-post-board/models"
)

// Storage keys for the two persisted session fields.
const (
	storageKeyUser  = "auth.user"
	storageKeyToken = "auth.token"
)

// SessionConfig holds the tunables of the session service.
type SessionConfig struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration

	// LoginLatency imitates the round trip to a real identity backend.
	// Zero disables the delay.
	LoginLatency time.Duration
}

type sessionService struct {
	store  store.SessionStore
	cfg    SessionConfig
	logger *logger.Logger

	mu      sync.RWMutex
	session models.Session
}

// NewSessionService constructs the [SessionService] on top of the given
// persistence backend. The returned service starts with an empty session;
// call Restore before serving traffic.
func NewSessionService(sessionStore store.SessionStore, cfg SessionConfig, log *logger.Logger) SessionService {
	return &sessionService{
		store:  sessionStore,
		cfg:    cfg,
		logger: log,
	}
}

func (s *sessionService) Restore(ctx context.Context) error {
	user, err := s.store.Get(ctx, storageKeyUser)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			s.logger.Debug().Msg("no persisted session, starting unauthenticated")
			return nil
		}
		return fmt.Errorf("restore session user: %w", err)
	}

	token, err := s.store.Get(ctx, storageKeyToken)
	if err != nil && !errors.Is(err, store.ErrKeyNotFound) {
		return fmt.Errorf("restore session token: %w", err)
	}

	// A restored token may be stale; authentication is driven by the
	// persisted user, so expiry is only worth a log line.
	if token != "" {
		if _, expiresAt, inspectErr := utils.InspectSessionToken(token); inspectErr == nil && time.Now().After(expiresAt) {
			s.logger.Warn().Str("user", user).Msg("restored session token is expired")
		}
	}

	s.mu.Lock()
	s.session = models.Session{User: user, Token: token}
	s.mu.Unlock()

	s.logger.Info().Str("user", user).Msg("session restored from storage")
	return nil
}

func (s *sessionService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	if err := creds.Validate(); err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}

	if err := s.simulateLatency(ctx); err != nil {
		return models.Session{}, err
	}

	token, err := utils.GenerateSessionToken(s.cfg.TokenIssuer, creds.User, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("generate session token: %w", err)
	}

	// Persist before mutating memory so a post-crash restart observes
	// exactly the state the caller saw acknowledged.
	if err = s.store.Set(ctx, storageKeyUser, creds.User); err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrSessionPersist, err)
	}
	if err = s.store.Set(ctx, storageKeyToken, token); err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrSessionPersist, err)
	}

	session := models.Session{User: creds.User, Token: token}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	s.logger.Info().Str("user", creds.User).Msg("user logged in")
	return session, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.simulateLatency(ctx); err != nil {
		return err
	}

	// Both keys go together: a persisted token without its user would be
	// meaningless state.
	if err := s.store.Delete(ctx, storageKeyUser); err != nil {
		return fmt.Errorf("%w: %v", ErrSessionPersist, err)
	}
	if err := s.store.Delete(ctx, storageKeyToken); err != nil {
		return fmt.Errorf("%w: %v", ErrSessionPersist, err)
	}

	s.mu.Lock()
	user := s.session.User
	s.session = models.Session{}
	s.mu.Unlock()

	s.logger.Info().Str("user", user).Msg("user logged out")
	return nil
}

func (s *sessionService) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// simulateLatency sleeps for the configured demo delay, respecting
// cancellation of the calling request.
func (s *sessionService) simulateLatency(ctx context.Context) error {
	if s.cfg.LoginLatency <= 0 {
		return nil
	}

	timer := time.NewTimer(s.cfg.LoginLatency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
