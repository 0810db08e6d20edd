package sink

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/matzehuels/layerstack/pkg/render/figure"
)

func TestRenderJSON(t *testing.T) {
	fig := testFigure(t)

	data, err := RenderJSON(fig)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(string(data), "{\n  \"data\":") {
		t.Errorf("output not indented as expected: %q", string(data[:20]))
	}

	var restored figure.Figure
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("output does not parse back: %v", err)
	}
	if len(restored.Data) != len(fig.Data) {
		t.Errorf("round trip trace count = %d, want %d", len(restored.Data), len(fig.Data))
	}
	if restored.Layout.Title.Text != fig.Layout.Title.Text {
		t.Errorf("round trip title = %q, want %q", restored.Layout.Title.Text, fig.Layout.Title.Text)
	}
}

func TestRenderJSONDeterministic(t *testing.T) {
	fig := testFigure(t)

	a, err := RenderJSON(fig)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	b, err := RenderJSON(fig)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if string(a) != string(b) {
		t.Error("identical figures produced different JSON")
	}
}
