// Package cache stores generated graphs, circuits and rendered artifacts.
//
// Back-ends implement [Cache]: [FileCache] for the CLI, [RedisCache] for
// shared deployments of the HTTP API, and [NullCache] to disable caching.
// Keys are produced by a [Keyer] so the same entry is addressed identically
// across back-ends.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
//
// Get reports a miss as (nil, false, nil); an error means the back-end
// failed, not that the key was absent. A ttl of zero stores without expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
