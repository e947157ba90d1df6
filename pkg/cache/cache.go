// Package cache provides pluggable storage for memoized fetch and render
// results.
//
// The [Cache] interface is byte-oriented: callers serialize whatever they
// cache (fetched keymap exports, rendered diagram text, graph artifacts)
// and build keys through a [Keyer]. Four backends are provided:
//
//   - [FileCache]: sharded JSON files, the CLI default
//   - [RedisCache]: shared cache for server deployments
//   - [MongoCache]: shared cache backed by a TTL collection
//   - [NullCache]: disables caching without branching at call sites
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte values under string keys with optional expiry.
// Implementations treat a missing or expired entry as a miss, never as an
// error; the bool result distinguishes a miss from an empty value.
type Cache interface {
	// Get retrieves the value stored under key.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the entry for key, if any.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// Keyer builds cache keys for the artifacts keymapviz caches. Routing all
// key construction through one Keyer keeps layouts consistent between the
// CLI and the server, so a shared Redis or Mongo backend can serve both.
type Keyer interface {
	// FetchKey returns the key for a remote document fetched from url.
	FetchKey(namespace, url string) string

	// RenderKey returns the key for rendered diagram text.
	RenderKey(keyboard string, opts RenderKeyOpts) string

	// GraphKey returns the key for a rendered layer graph.
	GraphKey(keyboard string, opts GraphKeyOpts) string
}

// RenderKeyOpts captures the parameters that change rendered diagram output.
type RenderKeyOpts struct {
	Layer   string `json:"layer,omitempty"`    // Single layer, empty for the full document
	SplitAt int    `json:"split_at,omitempty"` // Split column override, 0 for the keyboard default
}

// GraphKeyOpts captures the parameters that change layer graph output.
type GraphKeyOpts struct {
	Format   string `json:"format"`   // dot, svg or png
	Detailed bool   `json:"detailed"` // Node labels carry key and encoder counts
}

// DefaultKeyer generates hash-based cache keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() *DefaultKeyer { return &DefaultKeyer{} }

// FetchKey generates a key for remote document caching. The URL stays
// verbatim in the key; backends hash keys as needed for storage.
func (k *DefaultKeyer) FetchKey(namespace, url string) string {
	return "fetch:" + namespace + ":" + url
}

// RenderKey generates a key for rendered diagram text.
func (k *DefaultKeyer) RenderKey(keyboard string, opts RenderKeyOpts) string {
	return hashKey("render", keyboard, opts)
}

// GraphKey generates a key for a rendered layer graph.
func (k *DefaultKeyer) GraphKey(keyboard string, opts GraphKeyOpts) string {
	return hashKey("graph", keyboard, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
