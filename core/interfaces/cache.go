// Package interfaces defines the core interfaces used throughout the engine.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
// The engine uses it to memoize image probe verdicts within a validation
// run; implementations can be in-memory or any other caching solution.
//
// Example usage:
//
//	// Store a value
//	err := cache.Set(ctx, "probe:https://cdn.example/a.png", verdict, 1*time.Hour)
//
//	// Retrieve a value
//	data, err := cache.Get(ctx, "probe:https://cdn.example/a.png")
//	if err != nil {
//		// handle error or cache miss
//	}
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
