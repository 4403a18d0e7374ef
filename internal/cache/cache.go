package cache

import (
	"context"
	"errors"
	"time"
)

// Cache is a string key-value store with per-key expiry. Implementations must
// be safe for concurrent use.
type Cache interface {
	// Get returns ErrMiss when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key. A ttl of zero or less never expires.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

var ErrMiss = errors.New("cache: miss")
