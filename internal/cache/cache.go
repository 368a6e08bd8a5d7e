// Package cache holds the optional read-through cache placed in front of the
// rate store.
package cache

import (
	"context"
	"time"
)

// RateCache stores encoded history responses by key.
type RateCache interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
