package figure

import (
	"github.com/matzehuels/layerstack/pkg/errors"
	"github.com/matzehuels/layerstack/pkg/layout"
	"github.com/matzehuels/layerstack/pkg/multiplex"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Rendering defaults.
const (
	DefaultTitle        = "Multiplex Graph with Transparent Layer Planes"
	DefaultLayerSpacing = 2.0
	DefaultMarkerSize   = 10.0
	DefaultPlaneOpacity = 0.15
)

// =============================================================================
// Figure - Plot Model
// =============================================================================

// Figure is a complete plotly figure: ordered traces plus page layout.
// Serializing a Figure yields the object passed to Plotly.newPlot.
type Figure struct {
	Data   []Trace    `json:"data"`
	Layout PlotLayout `json:"layout"`
}

// PlotLayout configures the frame around the traces. The legend is always
// disabled; with one trace per edge it would list hundreds of entries.
type PlotLayout struct {
	Title      Title `json:"title"`
	ShowLegend bool  `json:"showlegend"`
	Scene      Scene `json:"scene"`
}

// Title is the figure heading.
type Title struct {
	Text string `json:"text"`
}

// Scene configures the 3D axes. Axis backgrounds stay disabled so the layer
// planes are the only surfaces in the scene.
type Scene struct {
	XAxis Axis `json:"xaxis"`
	YAxis Axis `json:"yaxis"`
	ZAxis Axis `json:"zaxis"`
}

// Axis configures one scene axis.
type Axis struct {
	ShowBackground bool `json:"showbackground"`
}

// =============================================================================
// Build - Figure Assembly
// =============================================================================

// Option configures figure building via [Build].
type Option func(*builder)

type builder struct {
	title        string
	spacing      float64
	markerSize   float64
	planeOpacity float64
}

// WithTitle sets the figure heading, overriding the graph's own title.
func WithTitle(t string) Option { return func(b *builder) { b.title = t } }

// WithLayerSpacing sets the vertical distance between consecutive layers.
func WithLayerSpacing(s float64) Option { return func(b *builder) { b.spacing = s } }

// WithMarkerSize sets the node marker size.
func WithMarkerSize(s float64) Option { return func(b *builder) { b.markerSize = s } }

// WithPlaneOpacity sets the layer plane opacity.
func WithPlaneOpacity(o float64) Option { return func(b *builder) { b.planeOpacity = o } }

// Build assembles the figure for a graph with one shared set of node
// positions. Traces are emitted in a fixed order: per layer the node
// markers, then one trace per non-zero cell in row-major order, then the
// layer plane; after all layers the inter-layer connectors, by node then
// layer pair.
//
// The heading falls back from [WithTitle] to the graph's title to
// [DefaultTitle]. Build validates the graph and fails with INVALID_INPUT
// when the position count does not match the node count.
func Build(g *multiplex.Graph, pts []layout.Point, opts ...Option) (Figure, error) {
	b := newBuilder(opts...)
	if err := b.validate(); err != nil {
		return Figure{}, err
	}
	if err := g.Validate(); err != nil {
		return Figure{}, err
	}
	if len(pts) != g.NodeCount() {
		return Figure{}, errors.New(errors.ErrCodeInvalidInput,
			"layout has %d positions for %d nodes", len(pts), g.NodeCount())
	}

	title := b.title
	if title == "" {
		title = g.Title
	}
	if title == "" {
		title = DefaultTitle
	}

	traces := make([]Trace, 0, traceCount(g))
	for l := 0; l < g.LayerCount(); l++ {
		z := float64(l) * b.spacing
		traces = append(traces, buildNodeTrace(l, pts, z, b.markerSize))
		traces = append(traces, buildEdgeTraces(l, g.LayerCount(), g.Layers[l].Matrix, pts, z)...)
		traces = append(traces, buildPlaneTrace(l, pts, z, b.planeOpacity))
	}
	traces = append(traces, buildConnectorTraces(pts, g.LayerCount(), b.spacing)...)

	return Figure{
		Data: traces,
		Layout: PlotLayout{
			Title: Title{Text: title},
		},
	}, nil
}

func newBuilder(opts ...Option) builder {
	b := builder{
		spacing:      DefaultLayerSpacing,
		markerSize:   DefaultMarkerSize,
		planeOpacity: DefaultPlaneOpacity,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b builder) validate() error {
	if b.spacing <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "layer spacing must be positive, got %g", b.spacing)
	}
	if b.markerSize <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "marker size must be positive, got %g", b.markerSize)
	}
	if b.planeOpacity < 0 || b.planeOpacity > 1 {
		return errors.New(errors.ErrCodeInvalidInput, "plane opacity must be within [0, 1], got %g", b.planeOpacity)
	}
	return nil
}

func traceCount(g *multiplex.Graph) int {
	n := g.LayerCount()*2 + g.EdgeCount()
	if g.LayerCount() > 1 {
		n += g.NodeCount() * (g.LayerCount() - 1)
	}
	return n
}
