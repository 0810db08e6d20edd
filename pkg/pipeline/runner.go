package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/layerstack/pkg/cache"
	"github.com/matzehuels/layerstack/pkg/errors"
	"github.com/matzehuels/layerstack/pkg/layout"
	"github.com/matzehuels/layerstack/pkg/multiplex"
	"github.com/matzehuels/layerstack/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	g, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Graph = g
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.LayerCount = g.LayerCount()
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	// Compute graph hash for cache keys and server responses
	if graphData, err := multiplex.Marshal(g); err == nil {
		result.GraphHash = cache.Hash(graphData)
	}

	r.Logger.Info("loaded manifest",
		"layers", g.LayerCount(),
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.LoadTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	var l layout.Layout
	var layoutHit bool
	switch {
	case opts.Layout != "":
		l, err = r.LoadLayout(opts.Layout, g)
		if err != nil {
			return nil, fmt.Errorf("layout: %w", err)
		}
		r.Logger.Info("reusing layout artifact",
			"path", opts.Layout,
			"engine", l.Engine,
			"seed", l.Seed)
	case opts.NeedsLayout():
		l, layoutHit, err = r.GenerateLayoutWithCacheInfo(ctx, g, opts)
		if err != nil {
			return nil, fmt.Errorf("layout: %w", err)
		}
		r.Logger.Info("computed layout",
			"engine", l.Engine,
			"nodes", l.Nodes,
			"duration", time.Since(layoutStart))
	}
	result.Layout = l
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, g, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads and validates the stack manifest named by the options.
// Inline manifest data takes precedence over the manifest path; the path
// then only serves as a format hint and a label for diagnostics.
func (r *Runner) Load(ctx context.Context, opts Options) (*multiplex.Graph, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.Manifest)

	var g *multiplex.Graph
	var err error
	if len(opts.ManifestData) > 0 {
		g, err = multiplex.Read(bytes.NewReader(opts.ManifestData), multiplex.DetectFormat(opts.Manifest, opts.ManifestData))
	} else {
		g, err = multiplex.ReadFile(opts.Manifest)
	}

	layers, nodes := 0, 0
	if g != nil {
		layers, nodes = g.LayerCount(), g.NodeCount()
	}
	observability.Pipeline().OnLoadComplete(ctx, opts.Manifest, layers, nodes, time.Since(start), err)

	return g, err
}

// LoadLayout reads a precomputed layout artifact and checks it against the
// graph it is about to be rendered with.
func (r *Runner) LoadLayout(path string, g *multiplex.Graph) (layout.Layout, error) {
	l, err := layout.ReadFile(path)
	if err != nil {
		return layout.Layout{}, err
	}
	if l.Nodes != g.NodeCount() {
		return layout.Layout{}, errors.New(errors.ErrCodeInvalidInput,
			"layout artifact has %d nodes, manifest has %d", l.Nodes, g.NodeCount())
	}
	return l, nil
}

// GenerateLayoutWithCacheInfo computes a layout with caching and returns
// cache hit info.
func (r *Runner) GenerateLayoutWithCacheInfo(ctx context.Context, g *multiplex.Graph, opts Options) (layout.Layout, bool, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Layout{}, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key
	graphData, _ := multiplex.Marshal(g)
	graphHash := cache.Hash(graphData)
	cacheKey := r.Keyer.LayoutKey(graphHash, opts.LayoutKeyOpts())

	// Try cache first
	if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
		cached, err := layout.Unmarshal(data)
		if err == nil {
			observability.Cache().OnCacheHit(ctx, "layout")
			return cached, true, nil // Cache hit
		}
		// If deserialization fails, fall through to recompute
	}
	observability.Cache().OnCacheMiss(ctx, "layout")

	// Compute layout
	start := time.Now()
	observability.Pipeline().OnLayoutStart(ctx, opts.Engine, g.NodeCount())
	l, err := layout.Build(opts.Engine, g.NodeCount(), opts.Seed)
	observability.Pipeline().OnLayoutComplete(ctx, opts.Engine, time.Since(start), err)
	if err != nil {
		return layout.Layout{}, false, err
	}

	// Cache the result
	if data, err := layout.Marshal(l); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLLayout); err == nil {
			observability.Cache().OnCacheSet(ctx, "layout", len(data))
		}
	}

	return l, false, nil // Cache miss
}

// GenerateLayout is a convenience wrapper that calls GenerateLayoutWithCacheInfo
// and discards the cache hit info.
func (r *Runner) GenerateLayout(ctx context.Context, g *multiplex.Graph, opts Options) (layout.Layout, error) {
	l, _, err := r.GenerateLayoutWithCacheInfo(ctx, g, opts)
	return l, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *multiplex.Graph, l layout.Layout, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key parts
	graphData, _ := multiplex.Marshal(g)
	graphHash := cache.Hash(graphData)

	layoutData, err := layout.Marshal(l)
	if err != nil {
		return nil, false, fmt.Errorf("serialize layout for cache key: %w", err)
	}
	layoutHash := cache.Hash(layoutData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		cacheKey := r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts(format, layoutHash))
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}

	if allCached && len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil // All artifacts from cache
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	// Render all formats
	start := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	rendered, err := Render(g, l, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(graphHash, opts.ArtifactKeyOpts(format, layoutHash))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Render(ctx context.Context, g *multiplex.Graph, l layout.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, g, l, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
