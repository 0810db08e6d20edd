package multiplex

import (
	"testing"

	"github.com/matzehuels/layerstack/pkg/errors"
)

// referenceGraph returns the 3-layer 3x3 example used across the test suite.
func referenceGraph() *Graph {
	return FromMatrices(
		[][]float64{
			{0, 1, 0},
			{0, 0, 2},
			{3, 0, 0},
		},
		[][]float64{
			{0, 4, 0},
			{5, 0, 0},
			{0, 0, 6},
		},
		[][]float64{
			{0, 0, 7},
			{0, 0, 8},
			{9, 0, 0},
		},
	)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		graph    *Graph
		wantCode errors.Code
	}{
		{
			name:  "reference graph",
			graph: referenceGraph(),
		},
		{
			name:  "single layer",
			graph: FromMatrices([][]float64{{0, 1}, {1, 0}}),
		},
		{
			name:  "all-zero layer is valid",
			graph: FromMatrices([][]float64{{0, 0}, {0, 0}}),
		},
		{
			name:     "no layers",
			graph:    New("empty"),
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "zero-dimension layer",
			graph:    FromMatrices([][]float64{}),
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name: "mismatched layer dimensions",
			graph: FromMatrices(
				[][]float64{{0, 1}, {1, 0}},
				[][]float64{{0, 1, 0}, {1, 0, 0}, {0, 0, 0}},
			),
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name:     "non-square matrix",
			graph:    FromMatrices([][]float64{{0, 1, 0}, {1, 0, 0}}),
			wantCode: errors.ErrCodeInvalidInput,
		},
		{
			name: "control character in layer name",
			graph: New("", Layer{
				Name:   "bad\x01",
				Matrix: [][]float64{{0}},
			}),
			wantCode: errors.ErrCodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.graph.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Validate() code = %q, want %q", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestCounts(t *testing.T) {
	g := referenceGraph()

	if got := g.NodeCount(); got != 3 {
		t.Errorf("NodeCount() = %d, want 3", got)
	}
	if got := g.LayerCount(); got != 3 {
		t.Errorf("LayerCount() = %d, want 3", got)
	}
	if got := g.EdgeCount(); got != 9 {
		t.Errorf("EdgeCount() = %d, want 9", got)
	}

	for i, l := range g.Layers {
		if got := l.NonZeroCount(); got != 3 {
			t.Errorf("layer %d NonZeroCount() = %d, want 3", i, got)
		}
	}
}

func TestLayerName(t *testing.T) {
	g := New("",
		Layer{Name: "Trust", Matrix: [][]float64{{0}}},
		Layer{Matrix: [][]float64{{0}}},
	)

	tests := []struct {
		index int
		want  string
	}{
		{0, "Trust"},
		{1, "Layer 2"},
	}

	for _, tt := range tests {
		if got := g.LayerName(tt.index); got != tt.want {
			t.Errorf("LayerName(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestDensity(t *testing.T) {
	tests := []struct {
		name  string
		layer Layer
		want  float64
	}{
		{"reference layer", Layer{Matrix: [][]float64{{0, 1, 0}, {0, 0, 2}, {3, 0, 0}}}, 3.0 / 9.0},
		{"all zero", Layer{Matrix: [][]float64{{0, 0}, {0, 0}}}, 0},
		{"full", Layer{Matrix: [][]float64{{1}}}, 1},
		{"empty", Layer{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layer.Density(); got != tt.want {
				t.Errorf("Density() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsSymmetric(t *testing.T) {
	tests := []struct {
		name  string
		layer Layer
		want  bool
	}{
		{"symmetric", Layer{Matrix: [][]float64{{0, 1}, {1, 0}}}, true},
		{"asymmetric", Layer{Matrix: [][]float64{{0, 1}, {0, 0}}}, false},
		{"diagonal only", Layer{Matrix: [][]float64{{5, 0}, {0, 5}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layer.IsSymmetric(); got != tt.want {
				t.Errorf("IsSymmetric() = %v, want %v", got, tt.want)
			}
		})
	}
}
