package store

import (
	"fmt"

	"database/sql"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/mkondrashov/go-post-board/internal/logger"
	"github.com/mkondrashov/go-post-board/migrations"
)

// NewSQLiteStore constructs a [SessionStore] backed by a local SQLite
// database at dsn (a file path, or ":memory:"). The session_store table
// is created through the embedded migrations on first use.
func NewSQLiteStore(dsn string, log *logger.Logger) (SessionStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite database: %v", ErrStoreUnavailable, err)
	}

	// SQLite handles a single writer; serialize access at the pool level.
	db.SetMaxOpenConns(1)

	if err = migrations.Migrate(db, migrations.DialectSQLite); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info().Str("dsn", dsn).Msg("sqlite session store ready")

	return &sqlStore{
		db:       db,
		builder:  sq.StatementBuilder.PlaceholderFormat(sq.Question),
		classify: sqliteError,
		logger:   log,
	}, nil
}

// sqliteError wraps any driver error as a store availability failure.
// SQLite has no transient network error class worth distinguishing.
func sqliteError(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
