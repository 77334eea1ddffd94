package main

import (
	"context"
	"fmt"

	"github.com/mkondrashov/go-post-board/internal/adapter"
	"github.com/mkondrashov/go-post-board/internal/config"
	"github.com/mkondrashov/go-post-board/internal/handler/http"
	"github.com/mkondrashov/go-post-board/internal/logger"
	"github.com/mkondrashov/go-post-board/internal/server"
	"github.com/mkondrashov/go-post-board/internal/service"
	"github.com/mkondrashov/go-post-board/internal/store"
	"github.com/mkondrashov/go-post-board/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("post-board-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	sessionStore, err := store.NewSessionStore(ctx, cfg.Storage, log.GetChildLogger())
	if err != nil {
		log.Fatal().Err(err).Msg("error creating session store")
	}
	defer func() {
		if closeErr := sessionStore.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing session store")
		}
	}()

	postsAdapter := adapter.NewHTTPPostsAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.RequestTimeout,
	})

	services := service.NewServices(
		sessionStore,
		postsAdapter,
		service.SessionConfig{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			LoginLatency:  cfg.App.LoginLatency,
		},
		service.LoaderConfig{TTL: cfg.Cache.TTL},
		log,
	)

	// Pick up a session persisted by a previous run before the guard
	// starts answering requests.
	if err = services.SessionService.Restore(ctx); err != nil {
		log.Fatal().Err(err).Msg("error restoring persisted session")
	}

	handler := http.NewHandler(services, log.GetChildLogger())

	srv, err := server.NewServer(handler, cfg.Server, log.GetChildLogger())
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	janitor := workers.NewCacheJanitor(services.LoaderService, cfg.Cache.EvictInterval, log.GetChildLogger())
	janitor.Start(ctx)
	defer janitor.Stop()

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
