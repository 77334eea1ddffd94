package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mkondrashov/go-post-board/internal/logger"
	"github.com/mkondrashov/go-post-board/migrations"
)

// NewPostgresStore constructs a [SessionStore] backed by PostgreSQL. The
// connection is verified with a ping and the session_store table is
// created through the embedded migrations.
func NewPostgresStore(ctx context.Context, dsn string, log *logger.Logger) (SessionStore, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open postgres database: %v", ErrStoreUnavailable, err)
	}

	db.SetMaxOpenConns(4)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping postgres database: %v", ErrStoreUnavailable, err)
	}

	if err = migrations.Migrate(db, migrations.DialectPostgres); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info().Msg("postgres session store ready")

	return &sqlStore{
		db:       db,
		builder:  sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		classify: postgresError,
		logger:   log,
	}, nil
}

// postgresError maps a pgx driver error onto the store's error taxonomy.
// Connection-class failures (PostgreSQL error class 08, plus "cannot
// connect now") become [ErrStoreUnavailable]; everything else is wrapped
// as a plain query failure.
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for
// the full list of PostgreSQL error codes.
func postgresError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ConnectionException,
			pgerrcode.ConnectionDoesNotExist,
			pgerrcode.ConnectionFailure,
			pgerrcode.CannotConnectNow:
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
}
