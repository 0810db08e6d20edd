package sink

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/layerstack/pkg/errors"
	"github.com/matzehuels/layerstack/pkg/multiplex"
	"github.com/matzehuels/layerstack/pkg/render/styles"
)

// DOTOption configures DOT generation via [ToDOT].
type DOTOption func(*dotRenderer)

type dotRenderer struct {
	weights bool
}

// WithDOTWeights labels each edge with its matrix value.
func WithDOTWeights() DOTOption { return func(r *dotRenderer) { r.weights = true } }

// ToDOT flattens the stack into a Graphviz digraph: one node per index and
// one arrow per non-zero cell, stroked in the owning layer's color. Layers
// are visited in stack order and cells row-major, so output is stable.
//
// The resulting DOT string can be rendered with [RenderSVG] or saved for
// external Graphviz tooling.
func ToDOT(g *multiplex.Graph, opts ...DOTOption) string {
	r := dotRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	buf.WriteString("digraph multiplex {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fillcolor=%q, fontsize=12];\n", styles.NodeColor)
	buf.WriteString("\n")

	for i := 0; i < g.NodeCount(); i++ {
		fmt.Fprintf(&buf, "  %q;\n", strconv.Itoa(i))
	}

	for l, layer := range g.Layers {
		hex := styles.ColorFor(l, g.LayerCount()).Hex()
		fmt.Fprintf(&buf, "\n  // %s\n", g.LayerName(l))
		for i, row := range layer.Matrix {
			for j, v := range row {
				if v == 0 {
					continue
				}
				if r.weights {
					fmt.Fprintf(&buf, "  %q -> %q [color=%q, label=%q];\n",
						strconv.Itoa(i), strconv.Itoa(j), hex, strconv.FormatFloat(v, 'g', -1, 64))
				} else {
					fmt.Fprintf(&buf, "  %q -> %q [color=%q];\n",
						strconv.Itoa(i), strconv.Itoa(j), hex)
				}
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render SVG")
	}
	return buf.Bytes(), nil
}
