package sink

import (
	"strings"
	"testing"

	"github.com/matzehuels/layerstack/pkg/multiplex"
)

func dotGraph() *multiplex.Graph {
	return multiplex.FromMatrices(
		[][]float64{{0, 1, 0}, {0, 0, 2}, {3, 0, 0}},
		[][]float64{{0, 4, 0}, {5, 0, 0}, {0, 0, 6}},
	)
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(dotGraph())

	if !strings.HasPrefix(dot, "digraph multiplex {") {
		t.Errorf("missing digraph header, got %q", dot[:40])
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Error("missing closing brace")
	}

	for _, node := range []string{`"0";`, `"1";`, `"2";`} {
		if !strings.Contains(dot, node) {
			t.Errorf("missing node declaration %s", node)
		}
	}

	// A two-layer stack samples the palette ends: first and last entries.
	if !strings.Contains(dot, `"0" -> "1" [color="#1f77b4"];`) {
		t.Error("missing layer 1 edge 0->1")
	}
	if !strings.Contains(dot, `"2" -> "0" [color="#1f77b4"];`) {
		t.Error("missing layer 1 edge 2->0")
	}
	if !strings.Contains(dot, `"1" -> "0" [color="#17becf"];`) {
		t.Error("missing layer 2 edge 1->0")
	}

	if n := strings.Count(dot, "->"); n != 6 {
		t.Errorf("edge count = %d, want 6", n)
	}
}

func TestToDOTWeights(t *testing.T) {
	dot := ToDOT(dotGraph(), WithDOTWeights())

	if !strings.Contains(dot, `"0" -> "1" [color="#1f77b4", label="1"];`) {
		t.Error("missing weighted layer 1 edge")
	}
	if !strings.Contains(dot, `"2" -> "2" [color="#17becf", label="6"];`) {
		t.Error("missing weighted self-loop edge")
	}
}

func TestToDOTStable(t *testing.T) {
	if ToDOT(dotGraph()) != ToDOT(dotGraph()) {
		t.Error("identical graphs produced different DOT")
	}
}
