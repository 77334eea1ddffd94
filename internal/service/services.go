package service

import (
	"github.com/mkondrashov/go-post-board/internal/adapter"
	"github.com/mkondrashov/go-post-board/internal/logger"
	"github.com/mkondrashov/go-post-board/internal/store"
	"github.com/mkondrashov/go-post-board/internal/validators"
)

// Services aggregates the application services for injection into the
// transport layer.
type Services struct {
	SessionService SessionService
	LoaderService  LoaderService
}

// NewServices wires the services over their collaborators.
func NewServices(sessionStore store.SessionStore, postsAdapter adapter.PostsAdapter, sessionCfg SessionConfig, loaderCfg LoaderConfig, log *logger.Logger) *Services {
	return &Services{
		SessionService: NewSessionService(sessionStore, sessionCfg, log.GetChildLogger()),
		LoaderService:  NewLoaderService(postsAdapter, validators.NewPostsValidator(), loaderCfg, log.GetChildLogger()),
	}
}
