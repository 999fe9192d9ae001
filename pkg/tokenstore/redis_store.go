package tokenstore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists the session token in Redis, surviving process
// restarts. It implements apiclient.TokenProvider.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a Redis-backed token store reading and writing the
// given key.
func NewRedisStore(client *redis.Client, key string) (*RedisStore, error) {
	if client == nil {
		return nil, ErrNilRedisClient
	}
	if key == "" {
		return nil, ErrEmptyKey
	}
	return &RedisStore{client: client, key: key}, nil
}

// Token returns the stored token. A missing key is not an error: the caller
// proceeds unauthenticated.
func (s *RedisStore) Token(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", errors.Join(ErrStoreUnavailable, err)
	}
	return token, nil
}

// Set stores the token with an optional TTL (0 means no expiry).
func (s *RedisStore) Set(ctx context.Context, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key, token, ttl).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

// Delete removes the stored token.
func (s *RedisStore) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
