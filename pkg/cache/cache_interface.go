package cache

import (
	"context"
	"time"
)

// Cache is the contract for the caching layer. Implementations may be
// Redis or in-memory; callers must treat a miss and an error alike as
// "go to the source".
type Cache interface {
	// Get unmarshals a cached value into dest.
	// found = false means a miss; dest is untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the backing connection.
	Ping(ctx context.Context) error
}
