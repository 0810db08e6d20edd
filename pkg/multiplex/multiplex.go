package multiplex

import (
	"fmt"

	"github.com/matzehuels/layerstack/pkg/errors"
)

// =============================================================================
// Model
// =============================================================================

// Layer is one relational layer of a multiplex graph: a square adjacency
// matrix plus an optional display name. Matrix[i][j] != 0 means an edge from
// node i to node j with that weight.
type Layer struct {
	Name   string      `json:"name,omitempty" toml:"name"`
	Matrix [][]float64 `json:"matrix" toml:"matrix"`
}

// Graph is an ordered sequence of layers over a shared node set.
// All layers have the same dimension; node identity is positional.
//
// The zero value is not usable - construct with New or a manifest reader and
// call Validate before handing the graph to layout or rendering code.
type Graph struct {
	Title  string  `json:"title,omitempty" toml:"title"`
	Layers []Layer `json:"layers" toml:"layers"`
}

// New creates a graph from explicit layers.
func New(title string, layers ...Layer) *Graph {
	return &Graph{Title: title, Layers: layers}
}

// FromMatrices creates an untitled graph with default layer names.
// Convenience for tests and library callers that already hold matrices.
func FromMatrices(matrices ...[][]float64) *Graph {
	g := &Graph{Layers: make([]Layer, len(matrices))}
	for i, m := range matrices {
		g.Layers[i] = Layer{Matrix: m}
	}
	return g
}

// =============================================================================
// Accessors
// =============================================================================

// NodeCount returns the shared node dimension n, or 0 for an empty graph.
func (g *Graph) NodeCount() int {
	if len(g.Layers) == 0 {
		return 0
	}
	return len(g.Layers[0].Matrix)
}

// LayerCount returns the number of layers.
func (g *Graph) LayerCount() int {
	return len(g.Layers)
}

// EdgeCount returns the total number of non-zero entries across all layers.
// Directed pairs count once each.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, l := range g.Layers {
		total += l.NonZeroCount()
	}
	return total
}

// LayerName returns the display name for layer i: the manifest name if set,
// otherwise "Layer N" with N 1-based.
func (g *Graph) LayerName(i int) string {
	if i >= 0 && i < len(g.Layers) && g.Layers[i].Name != "" {
		return g.Layers[i].Name
	}
	return fmt.Sprintf("Layer %d", i+1)
}

// NonZeroCount returns the number of non-zero entries in the layer's matrix.
func (l Layer) NonZeroCount() int {
	count := 0
	for _, row := range l.Matrix {
		for _, v := range row {
			if v != 0 {
				count++
			}
		}
	}
	return count
}

// Density returns the fraction of non-zero entries, in [0, 1].
func (l Layer) Density() float64 {
	n := len(l.Matrix)
	if n == 0 {
		return 0
	}
	return float64(l.NonZeroCount()) / float64(n*n)
}

// IsSymmetric reports whether the layer's matrix equals its transpose.
// Asymmetric layers render fine (each ordered pair draws its own line) but
// callers may want to surface the asymmetry to users.
func (l Layer) IsSymmetric() bool {
	n := len(l.Matrix)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if l.Matrix[i][j] != l.Matrix[j][i] {
				return false
			}
		}
	}
	return true
}

// =============================================================================
// Validation
// =============================================================================

// Validate checks the multiplex invariants: at least one layer, every matrix
// square, and all dimensions identical. Returns an INVALID_INPUT error on
// the first violation; a nil result means downstream code may rely on
// NodeCount() > 0 and uniform shapes.
func (g *Graph) Validate() error {
	if len(g.Layers) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "graph has no layers")
	}

	n := len(g.Layers[0].Matrix)
	if err := errors.ValidateDimension(n); err != nil {
		return err
	}

	for i, l := range g.Layers {
		if err := errors.ValidateLayerName(l.Name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "layer %d", i)
		}
		if err := errors.ValidateMatrixShape(l.Matrix, n); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "layer %d", i)
		}
	}

	return nil
}
