package store

import (
	"context"
	"fmt"

	"github.com/mkondrashov/go-post-board/internal/config"
	"github.com/mkondrashov/go-post-board/internal/logger"
)

// NewSessionStore constructs the [SessionStore] selected by the storage
// configuration. The driver name decides the backend; each constructor
// validates its own connectivity.
func NewSessionStore(ctx context.Context, cfg config.Storage, log *logger.Logger) (SessionStore, error) {
	switch cfg.Driver {
	case config.DriverFile:
		return NewFileStore(cfg.FilePath)
	case config.DriverSQLite:
		return NewSQLiteStore(cfg.DSN, log)
	case config.DriverPostgres:
		return NewPostgresStore(ctx, cfg.DSN, log)
	case config.DriverRedis:
		return NewRedisStore(ctx, cfg.RedisAddr, log)
	case config.DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}
