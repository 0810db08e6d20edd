// Package render provides visualization rendering for multiplex graphs.
//
// # Overview
//
// This package contains the rendering pipeline that transforms a layered
// adjacency stack plus a shared 2D layout into visual outputs. It provides:
//
//   - 3D figure geometry (in [figure] subpackage)
//   - Color-synchronized matrix tables (in [table] subpackage)
//   - Output documents and formats (in [sink] subpackage)
//   - Layer color allocation (in [styles] subpackage)
//
// # Figure Geometry
//
// The [figure] subpackage turns matrices and node positions into an ordered
// list of plotly traces: node markers, intra-layer edges, translucent layer
// planes, and vertical inter-layer connectors. The trace order is fixed so
// identical inputs serialize to identical documents.
//
//	fig, err := figure.Build(g, pts, figure.WithLayerSpacing(2.0))
//
// # Matrix Tables
//
// The [table] subpackage renders each layer's matrix as an HTML table whose
// non-zero cells carry the layer's edge color, keeping the tabular view and
// the 3D view visually in sync.
//
// # Sinks
//
// The [sink] subpackage assembles final artifacts: a self-contained HTML
// document embedding the figure and tables, a JSON figure export, and
// Graphviz DOT/SVG node-link projections of the stack.
//
//	html, err := sink.RenderHTML(fig, tables)
//	dot := sink.ToDOT(g)
//	svg, err := sink.RenderSVG(dot)
//
// [figure]: github.com/matzehuels/layerstack/pkg/render/figure
// [table]: github.com/matzehuels/layerstack/pkg/render/table
// [sink]: github.com/matzehuels/layerstack/pkg/render/sink
// [styles]: github.com/matzehuels/layerstack/pkg/render/styles
package render
