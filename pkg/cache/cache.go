// Package cache stores computed layouts and rendered artifacts so repeated
// renders of the same manifest skip the expensive stages.
//
// # Backends
//
//   - [FileCache]: sharded JSON files under a directory, the CLI default
//   - [RedisCache]: shared cache for server deployments
//   - [MongoCache]: shared cache with server-side TTL expiry
//   - [NullCache]: disables caching without branching at call sites
//
// # Keys
//
// A [Keyer] derives keys from content hashes plus the options that affect
// the result, so any input or option change misses cleanly. [ScopedKeyer]
// prefixes keys for shared backends where several projects or users store
// side by side.
package cache

import (
	"context"
	"time"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// TTLs per artifact class. Layouts are pure functions of their inputs and
// could live forever; the finite TTL just bounds disk growth. Artifacts
// expire faster since they embed presentation options that churn more.
const (
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// =============================================================================
// Interfaces
// =============================================================================

// Cache is the storage interface shared by all backends. Get reports a miss
// with a false second return rather than an error, so callers only see
// errors for real backend failures.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl stores without expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// LayoutKey keys a computed layout by the graph content hash and the
	// placement options.
	LayoutKey(graphHash string, opts LayoutKeyOpts) string

	// ArtifactKey keys a rendered artifact by the graph content hash and
	// everything else that shapes the output bytes.
	ArtifactKey(graphHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the options that change a computed layout.
type LayoutKeyOpts struct {
	Engine string `json:"engine"`
	Seed   uint64 `json:"seed"`
}

// ArtifactKeyOpts are the options that change a rendered artifact.
// LayoutHash is set instead of Engine/Seed when the layout came from an
// external artifact file rather than an engine run.
type ArtifactKeyOpts struct {
	Format       string  `json:"format"`
	Engine       string  `json:"engine,omitempty"`
	Seed         uint64  `json:"seed,omitempty"`
	LayoutHash   string  `json:"layout_hash,omitempty"`
	Title        string  `json:"title,omitempty"`
	LayerSpacing float64 `json:"layer_spacing"`
	MarkerSize   float64 `json:"marker_size"`
	PlaneOpacity float64 `json:"plane_opacity"`
	EdgeLabels   bool    `json:"edge_labels,omitempty"`
}

// =============================================================================
// DefaultKeyer
// =============================================================================

// DefaultKeyer derives keys by hashing the content hash together with the
// JSON form of the options.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", graphHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", graphHash, opts)
}
