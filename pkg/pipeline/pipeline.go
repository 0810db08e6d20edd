package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/layerstack/pkg/cache"
	"github.com/matzehuels/layerstack/pkg/errors"
	"github.com/matzehuels/layerstack/pkg/layout"
	"github.com/matzehuels/layerstack/pkg/multiplex"
	"github.com/matzehuels/layerstack/pkg/render/figure"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultEngine places nodes with the force-directed engine.
	DefaultEngine = layout.EngineForce

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = layout.DefaultSeed

	// DefaultLayerSpacing is the vertical gap between consecutive layer planes.
	DefaultLayerSpacing = figure.DefaultLayerSpacing

	// DefaultMarkerSize is the node marker size in the 3D figure.
	DefaultMarkerSize = figure.DefaultMarkerSize

	// DefaultPlaneOpacity is the translucency of the layer planes.
	DefaultPlaneOpacity = figure.DefaultPlaneOpacity
)

// Format constants for output formats.
const (
	FormatHTML = "html"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatHTML: true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the visualization pipeline.
// This struct supports JSON serialization for server requests. Zero values
// mean "use the default".
type Options struct {
	// Load options
	Manifest     string `json:"manifest,omitempty"`      // Path to a stack manifest file
	ManifestData []byte `json:"manifest_data,omitempty"` // Raw manifest bytes, used instead of Manifest when set

	// Layout options
	Engine string `json:"engine,omitempty"` // Layout engine name ("force" or "circle")
	Seed   uint64 `json:"seed,omitempty"`   // Engine seed; zero selects DefaultSeed
	Layout string `json:"layout,omitempty"` // Path to a precomputed layout artifact to reuse

	// Render options
	Formats      []string `json:"formats,omitempty"`
	Title        string   `json:"title,omitempty"` // Figure title override
	LayerSpacing float64  `json:"layer_spacing,omitempty"`
	MarkerSize   float64  `json:"marker_size,omitempty"`
	PlaneOpacity float64  `json:"plane_opacity,omitempty"`
	EdgeLabels   bool     `json:"edge_labels,omitempty"` // Weight labels on DOT/SVG edges

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the loaded multiplex graph.
	Graph *multiplex.Graph

	// GraphHash is the content hash of the graph.
	GraphHash string

	// Layout holds the node positions shared by every layer. It stays zero
	// when no requested format consumes positions.
	Layout layout.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	LayerCount int
	NodeCount  int
	EdgeCount  int
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: html, json, dot, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading the manifest.
func (o *Options) ValidateForLoad() error {
	if o.Manifest == "" && len(o.ManifestData) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "manifest path or inline manifest data is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Engine == "" {
		o.Engine = DefaultEngine
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	return layout.ValidateEngine(o.Engine)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatHTML}
	}
	if o.LayerSpacing == 0 {
		o.LayerSpacing = DefaultLayerSpacing
	}
	if o.MarkerSize == 0 {
		o.MarkerSize = DefaultMarkerSize
	}
	if o.PlaneOpacity == 0 {
		o.PlaneOpacity = DefaultPlaneOpacity
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := layout.ValidateEngine(o.Engine); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// NeedsLayout reports whether any requested format consumes node positions.
// DOT and SVG outputs are flat Graphviz projections derived from the graph
// alone, so a run limited to them skips the layout stage entirely.
func (o *Options) NeedsLayout() bool {
	for _, f := range o.Formats {
		if f == FormatHTML || f == FormatJSON {
			return true
		}
	}
	return false
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Engine: o.Engine,
		Seed:   o.Seed,
	}
}

// ArtifactKeyOpts returns cache key options for rendering one format.
// A layout reused from an artifact file is pinned by its content hash,
// since its positions need not match any engine run; an engine-computed
// layout is pinned by the engine and seed that produced it.
func (o *Options) ArtifactKeyOpts(format, layoutHash string) cache.ArtifactKeyOpts {
	keyOpts := cache.ArtifactKeyOpts{
		Format:       format,
		Title:        o.Title,
		LayerSpacing: o.LayerSpacing,
		MarkerSize:   o.MarkerSize,
		PlaneOpacity: o.PlaneOpacity,
		EdgeLabels:   o.EdgeLabels,
	}
	if o.Layout != "" {
		keyOpts.LayoutHash = layoutHash
	} else {
		keyOpts.Engine = o.Engine
		keyOpts.Seed = o.Seed
	}
	return keyOpts
}
