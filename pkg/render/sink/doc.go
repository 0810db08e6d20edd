// Package sink assembles final output artifacts from rendered parts.
//
// # Overview
//
// Renderers upstream produce intermediate forms: a [figure.Figure] holding
// plotly traces and a matrix-table HTML fragment. This package turns those
// into the bytes written to disk or served over HTTP:
//
//   - [RenderHTML]: one self-contained document embedding the 3D figure
//     and the matrix tables
//   - [RenderJSON]: the bare figure as pretty-printed JSON for external
//     plotly consumers
//   - [ToDOT] and [RenderSVG]: a flattened node-link projection of the
//     stack via Graphviz
//
// # Determinism
//
// Documents are reproducible byte for byte: the plotly script URL is pinned
// to a fixed version, the graph div id is a SHA1-derived UUID of the figure
// content, and serialization preserves trace order.
//
// # Usage
//
//	doc, err := sink.RenderHTML(fig, tables,
//		sink.WithHTMLPageTitle("Transport stack"),
//	)
//
// [figure.Figure]: github.com/matzehuels/layerstack/pkg/render/figure
package sink
