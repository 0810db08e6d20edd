package sink

import (
	json "github.com/goccy/go-json"

	"github.com/matzehuels/layerstack/pkg/errors"
	"github.com/matzehuels/layerstack/pkg/render/figure"
)

// RenderJSON exports the bare figure as a pretty-printed JSON document.
// The output is the exact object a plotly client passes to Plotly.newPlot,
// enabling:
//
//   - Re-rendering in external plotly consumers (dashboards, notebooks)
//   - Diffing figure geometry across runs
//   - Caching the rendered figure independently of the HTML shell
func RenderJSON(fig figure.Figure) ([]byte, error) {
	data, err := json.MarshalIndent(fig, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal figure")
	}
	return data, nil
}
