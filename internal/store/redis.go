package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mkondrashov/go-post-board/internal/logger"
)

// redisKeyPrefix namespaces session keys so the demo can share a Redis
// instance with other applications.
const redisKeyPrefix = "post-board:session:"

// redisStore implements [SessionStore] on a Redis instance. Keys are
// stored without expiry: the persistence contract has no TTL, the session
// lives until an explicit logout.
type redisStore struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisStore constructs a Redis-backed [SessionStore] and verifies the
// connection with a ping.
func NewRedisStore(ctx context.Context, addr string, log *logger.Logger) (SessionStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping redis: %v", ErrStoreUnavailable, err)
	}

	log.Info().Str("addr", addr).Msg("redis session store ready")

	return &redisStore{client: client, logger: log}, nil
}

func (s *redisStore) key(key string) string {
	return redisKeyPrefix + key
}

func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		s.logger.Err(err).Str("key", key).Msg("redis get failed")
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return value, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		s.logger.Err(err).Str("key", key).Msg("redis set failed")
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		s.logger.Err(err).Str("key", key).Msg("redis delete failed")
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
