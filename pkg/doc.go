// Package pkg provides the core libraries for Layerstack multiplex graph
// visualization.
//
// # Overview
//
// Layerstack renders multiplex graphs: ordered stacks of same-dimension
// square adjacency matrices (layers) over one shared node set. Each layer
// becomes a horizontal plane in an interactive 3D scene, with the same node
// appearing at the same 2D position on every plane and vertical connectors
// tying its copies together. The pkg directory is organized into five main
// areas:
//
//  1. [multiplex] - Domain model (stack manifests, validation)
//  2. [layout] - Shared 2D node positioning (force-directed, circular)
//  3. [render] - Visualization rendering (3D figure, matrix tables, sinks)
//  4. [pipeline] - Orchestration (load → layout → render)
//  5. [cache] - Layout and artifact caching (file, Redis, MongoDB)
//
// # Architecture
//
// The typical data flow through Layerstack:
//
//	JSON/TOML manifest
//	         ↓
//	    [multiplex] package (parse + validate the stack)
//	         ↓
//	    [layout] package (one 2D position per node, shared by all layers)
//	         ↓
//	    [render] package (3D figure + color-synced matrix tables)
//	         ↓
//	    HTML/JSON/DOT/SVG output
//
// # Quick Start
//
// Read a manifest and render a self-contained HTML document:
//
//	import (
//	    "github.com/matzehuels/layerstack/pkg/layout"
//	    "github.com/matzehuels/layerstack/pkg/multiplex"
//	    "github.com/matzehuels/layerstack/pkg/render/figure"
//	    "github.com/matzehuels/layerstack/pkg/render/sink"
//	    "github.com/matzehuels/layerstack/pkg/render/table"
//	)
//
//	// 1. Load the stack
//	g, _ := multiplex.ReadFile("stack.json")
//
//	// 2. Compute the shared node positions
//	l, _ := layout.Build(layout.EngineForce, g.NodeCount(), layout.DefaultSeed)
//
//	// 3. Build the 3D figure and the matrix tables
//	fig, _ := figure.Build(g, l.Positions)
//	tables := table.Render(g)
//
//	// 4. Assemble the document
//	page, _ := sink.RenderHTML(fig, tables)
//
// Most callers should use [pipeline] instead, which runs the same stages
// with caching and consistent option validation.
//
// # Main Packages
//
// ## Domain Model
//
// [multiplex] - The stack model: layers, the shared node set, and the
// weighted-edge interpretation of matrix cells. Reads JSON and TOML
// manifests and validates that every layer is square with one dimension.
//
// [layout] - Placement engines that assign each node a single 2D position
// reused by every layer. Deterministic for a given engine and seed, so
// repeated runs (and cache hits) produce identical documents. Layouts
// serialize to JSON for reuse across invocations.
//
// ## Visualization
//
// [render/figure] - Geometry assembly. Produces the ordered trace list for
// the 3D scene: per-layer node markers, one trace per non-zero matrix cell,
// translucent layer planes, and inter-layer connectors.
//
// [render/table] - Per-layer HTML matrix tables whose non-zero cells carry
// the layer's edge color, keeping the tabular and 3D views in sync.
//
// [render/sink] - Output formats: a self-contained HTML document (plotly via
// CDN), a JSON figure export, and Graphviz DOT/SVG node-link projections.
//
// [render/styles] - The layer color palette. Allocates visually distinct
// edge colors per layer index, shared by the figure, the tables, and the
// terminal UI.
//
// ## Orchestration
//
// [pipeline] - The complete load → layout → render pipeline used by the CLI
// and the preview server. Caches layout and render results keyed on every
// option that affects output bytes.
//
// ## Infrastructure
//
// [cache] - Content-addressed caching with four backends: FileCache (CLI),
// RedisCache and MongoCache (shared deployments), NullCache (testing and
// --no-cache). Keys derive from input hashes, never timestamps.
//
// [io] - Export helpers for writing graphs and artifacts to files or
// writers.
//
// [observability] - Process-wide hook points for pipeline, cache, and
// server events. No-ops unless a caller registers hooks.
//
// [errors] - Coded errors with stable machine-readable codes and
// user-facing messages.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Common Workflows
//
// Run the full pipeline with caching:
//
//	store, _ := cache.NewFileCache(dir)
//	runner := pipeline.NewRunner(store, nil, logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    Manifest: "stack.json",
//	    Formats:  []string{"html", "svg"},
//	})
//
// Reuse a precomputed layout:
//
//	l, _ := layout.ReadFile("stack.layout.json")
//	fig, _ := figure.Build(g, l.Positions)
//
// Tune the figure:
//
//	fig, _ := figure.Build(g, l.Positions,
//	    figure.WithTitle("Transit vs. Trade"),
//	    figure.WithLayerSpacing(3.0),
//	    figure.WithPlaneOpacity(0.25),
//	)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/render/...   # Specific package
//	go test -run Example       # Examples only
//
// [multiplex]: https://pkg.go.dev/github.com/matzehuels/layerstack/pkg/multiplex
// [layout]: https://pkg.go.dev/github.com/matzehuels/layerstack/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/layerstack/pkg/render
// [render/figure]: https://pkg.go.dev/github.com/matzehuels/layerstack/pkg/render/figure
// [render/table]: https://pkg.go.dev/github.com/matzehuels/layerstack/pkg/render/table
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/layerstack/pkg/render/sink
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/layerstack/pkg/render/styles
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/layerstack/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/layerstack/pkg/cache
// [io]: https://pkg.go.dev/github.com/matzehuels/layerstack/pkg/io
// [observability]: https://pkg.go.dev/github.com/matzehuels/layerstack/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/layerstack/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/layerstack/pkg/buildinfo
package pkg
