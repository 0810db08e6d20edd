// Package table renders each layer's matrix as an HTML table whose non-zero
// cells carry the layer's edge color, keeping the tabular view in sync with
// the 3D figure.
package table

import (
	"bytes"
	"fmt"
	"html"
	"strconv"

	"github.com/matzehuels/layerstack/pkg/multiplex"
	"github.com/matzehuels/layerstack/pkg/render/styles"
)

const sectionHeading = "<h2>Matrix Values (Layer Colors)</h2>"

// Render produces the matrix section as an HTML fragment: a section heading
// followed by one color-keyed table per layer in stack order. Headings reuse
// the layer's display name, so unnamed layers render as "Layer N".
func Render(g *multiplex.Graph) []byte {
	var buf bytes.Buffer
	buf.WriteString(sectionHeading)
	for i, l := range g.Layers {
		color := styles.ColorFor(i, g.LayerCount()).CSS()
		fmt.Fprintf(&buf, "<h3 style='color:%s;'>%s</h3>", color, html.EscapeString(g.LayerName(i)))
		renderMatrix(&buf, l.Matrix, color)
	}
	return buf.Bytes()
}

func renderMatrix(buf *bytes.Buffer, matrix [][]float64, color string) {
	buf.WriteString("<table border='1' style='border-collapse:collapse;'>")
	for _, row := range matrix {
		buf.WriteString("<tr>")
		for _, v := range row {
			cell := color
			if v == 0 {
				cell = styles.ZeroCellColor
			}
			fmt.Fprintf(buf, "<td style='background-color:%s; padding:5px; text-align:center;'>%s</td>",
				cell, formatValue(v))
		}
		buf.WriteString("</tr>")
	}
	buf.WriteString("</table><br>")
}

// formatValue renders weights compactly: integral floats drop the decimal
// point, everything else uses the shortest exact representation.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
