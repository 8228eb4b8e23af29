// Package cache provides byte-level caching for computed overlay layouts.
//
// The placement engine is cheap, but a rendering host re-invokes it for
// every visible control on every layout pass, and the HTTP service answers
// the same plan requests repeatedly. Since placements are pure functions of
// their inputs, they memoize perfectly: the cache key is a hash of every
// input that feeds the computation.
//
// Backends:
//   - memory: process-local, for single-instance servers and tests
//   - file:   on-disk, for CLI usage across invocations
//   - redis:  shared, for multi-instance deployments
//   - null:   disables caching
//
// All backends implement the same Cache interface and store opaque bytes;
// callers marshal their own values.
package cache

import (
	"context"
	"time"
)

// Cache is the interface all backends implement.
type Cache interface {
	// Get retrieves a value. The second return reports a hit; a miss is
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
