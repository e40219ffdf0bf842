// Package cache provides a small byte cache for rendered artifacts.
//
// Rasterizing a diagram preview (SVG, PNG) through Graphviz is the only
// expensive step in the export pipeline, so those artifacts are cached
// keyed by a hash of the encoded diagram plus the output format. Text
// exports are cheap and never cached.
//
// Two implementations are provided: [FileCache] stores entries under a
// directory (CLI usage, XDG cache dir) and [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// Cache stores byte values with optional expiration.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
