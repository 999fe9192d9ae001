package tokenstore

import "errors"

var (
	// ErrNilRedisClient is returned when constructing a RedisStore without a client.
	ErrNilRedisClient = errors.New("tokenstore: nil redis client")

	// ErrEmptyKey is returned when constructing a RedisStore with an empty key.
	ErrEmptyKey = errors.New("tokenstore: empty key")

	// ErrStoreUnavailable wraps backend failures when reading or writing tokens.
	ErrStoreUnavailable = errors.New("tokenstore: store unavailable")
)
