// Package cache stores rendered artifacts between runs.
//
// The CLI caches Graphviz output: starting the WebAssembly Graphviz runtime
// dominates the cost of rendering the state diagram, and the diagram only
// changes when the transition table or render options change. Keys are
// derived from the rendered input with [Key], so a changed diagram misses
// the cache on its own.
//
// Two implementations are provided:
//
//   - [FileCache]: one JSON file per entry under a directory, with optional TTL
//   - [NullCache]: stores nothing, for --no-cache
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry is reported
	// as ok == false with a nil error.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Key builds a cache key for an artifact of the given kind rendered from
// input, e.g. Key("diagram.svg", dot).
func Key(kind string, input []byte) string {
	return kind + ":" + Hash(input)
}
