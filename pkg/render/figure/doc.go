// Package figure builds the 3D plotly figure for a multiplex graph.
//
// # Overview
//
// A figure is an ordered list of traces plus a page-level layout. For each
// layer L at height L times the layer spacing, the builder emits:
//
//   - one marker trace for the layer's nodes, labeled "{node} (L{L+1})"
//   - one line trace per non-zero matrix cell, colored by layer
//   - one translucent mesh plane spanning the layer's bounding box
//
// After all layers, one dotted gray connector trace is emitted per node and
// consecutive layer pair, tying the copies of each node together vertically.
//
// # Determinism
//
// Trace order is fixed (layers in stack order, cells row-major, connectors
// by node then layer) and plane triangulation is explicit, so the same graph
// and layout always produce the same figure and the same serialized bytes.
//
// # Usage
//
//	pts, _ := layout.Build(layout.EngineForce, g.NodeCount(), layout.DefaultSeed)
//	fig, err := figure.Build(g, pts.Positions,
//		figure.WithTitle("Protein interaction stack"),
//		figure.WithLayerSpacing(2.0),
//	)
package figure
