// Package cache stores rendered scene output.
//
// Rendering through Graphviz or rsvg-convert takes far longer than a path
// query, and a browser asks for the same picture many times while the user
// clicks around one scene. The HTTP server therefore keeps rendered bytes in
// a [Cache] keyed by [RenderKey].
//
// Keys include a scene generation number, so replacing the scene makes every
// older entry unreachable without explicit invalidation. [MemoryCache] bounds
// its size by evicting the oldest entries; [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// Cache stores byte slices under string keys.
type Cache interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}
