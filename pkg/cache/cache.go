// Package cache provides pluggable byte caches for rendered cover
// artifacts.
//
// Three backends are available:
//   - FileCache: on-disk cache for CLI usage
//   - RedisCache: shared cache for the HTTP service
//   - NullCache: disables caching
//
// Keys are derived from the content hash of the input text plus the
// render options, so any change to either produces a fresh render.
package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// TTLArtifact bounds how long rendered images live in the cache.
// Renders are fully deterministic, so the TTL only limits disk and
// Redis usage; it never guards against staleness.
const TTLArtifact = 30 * 24 * time.Hour

// Cache is a byte-oriented cache with TTL support.
type Cache interface {
	// Get returns the cached data and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// DefaultDir returns the default on-disk cache location,
// $XDG_CACHE_HOME/coverforge or the platform equivalent.
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "coverforge"), nil
}
