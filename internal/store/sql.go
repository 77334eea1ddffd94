package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mkondrashov/go-post-board/internal/logger"
)

const sessionTable = "session_store"

// sqlStore implements [SessionStore] on top of database/sql. The SQLite
// and PostgreSQL constructors share it, differing only in placeholder
// format and driver error classification.
type sqlStore struct {
	db       *sql.DB
	builder  sq.StatementBuilderType
	classify func(error) error
	logger   *logger.Logger
}

func (s *sqlStore) Get(ctx context.Context, key string) (string, error) {
	query, args, err := s.builder.
		Select("value").
		From(sessionTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		s.logger.Err(err).Str("key", key).Msg("session store get failed")
		return "", s.classify(err)
	}

	return value, nil
}

func (s *sqlStore) Set(ctx context.Context, key, value string) error {
	// The upsert form is accepted by both SQLite (3.24+) and PostgreSQL.
	query, args, err := s.builder.
		Insert(sessionTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("key", key).Msg("session store set failed")
		return s.classify(err)
	}

	return nil
}

func (s *sqlStore) Delete(ctx context.Context, key string) error {
	query, args, err := s.builder.
		Delete(sessionTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("key", key).Msg("session store delete failed")
		return s.classify(err)
	}

	return nil
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}
