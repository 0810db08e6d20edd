// Package multiplex defines the multiplex graph model: an ordered stack of
// same-dimension square adjacency matrices (layers) over one shared node set.
//
// Nodes are identified by index 0..n-1. The same index in different layers
// refers to the same entity; each layer is an independent relation among
// those entities. A zero matrix entry means "no edge", any non-zero entry is
// an edge carrying that value as its weight.
//
// # Invariants
//
// A valid graph has at least one layer, and every layer matrix is square
// with the identical dimension n. [Graph.Validate] enforces this before any
// layout or rendering work; downstream packages may assume it holds.
//
// # Manifests
//
// Graphs are read from JSON or TOML manifests:
//
//	{
//	  "title": "Example",
//	  "layers": [
//	    {"name": "Trust", "matrix": [[0, 1], [1, 0]]},
//	    {"name": "Trade", "matrix": [[0, 2], [0, 0]]}
//	  ]
//	}
//
// [ReadFile] detects the format by extension, falling back to content
// sniffing, so piped input works without a filename.
package multiplex
