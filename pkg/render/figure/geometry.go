package figure

import (
	"fmt"
	"math"

	"github.com/matzehuels/layerstack/pkg/layout"
	"github.com/matzehuels/layerstack/pkg/render/styles"
)

// Stroke widths and dash styles.
const (
	edgeWidth      = 4.0
	connectorWidth = 2.0
	connectorDash  = "dot"
	labelPosition  = "top center"
)

func buildNodeTrace(layer int, pts []layout.Point, z, markerSize float64) Trace {
	n := len(pts)
	x := make([]float64, n)
	y := make([]float64, n)
	zs := make([]float64, n)
	text := make([]string, n)
	for k, p := range pts {
		x[k], y[k], zs[k] = p.X, p.Y, z
		text[k] = fmt.Sprintf("%d (L%d)", k, layer+1)
	}

	return Trace{
		Type:         TypeScatter3D,
		Name:         fmt.Sprintf("Layer %d Nodes", layer+1),
		Mode:         ModeMarkersText,
		X:            x,
		Y:            y,
		Z:            zs,
		Text:         text,
		TextPosition: labelPosition,
		Marker:       &Marker{Size: markerSize, Color: styles.NodeColor},
	}
}

// buildEdgeTraces emits one trace per non-zero cell, so an asymmetric pair
// (i, j) and (j, i) yields two overlapping strokes. Cells are visited in
// row-major order to keep trace order stable.
func buildEdgeTraces(layer, totalLayers int, matrix [][]float64, pts []layout.Point, z float64) []Trace {
	color := styles.ColorFor(layer, totalLayers).CSS()
	name := fmt.Sprintf("Layer %d Edge", layer+1)

	var traces []Trace
	for i := range matrix {
		for j := range matrix[i] {
			if matrix[i][j] == 0 {
				continue
			}
			traces = append(traces, Trace{
				Type: TypeScatter3D,
				Name: name,
				Mode: ModeLines,
				X:    []float64{pts[i].X, pts[j].X},
				Y:    []float64{pts[i].Y, pts[j].Y},
				Z:    []float64{z, z},
				Line: &Line{Color: color, Width: edgeWidth},
			})
		}
	}
	return traces
}

// buildPlaneTrace spans the layer's bounding box with a quad of two
// explicitly indexed triangles. A single-node layer degenerates to a point
// but is still emitted so trace counts stay uniform across layers.
func buildPlaneTrace(layer int, pts []layout.Point, z, opacity float64) Trace {
	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	op := opacity
	showScale := false
	return Trace{
		Type:      TypeMesh3D,
		Name:      fmt.Sprintf("Layer %d Plane", layer+1),
		X:         []float64{minX, maxX, maxX, minX},
		Y:         []float64{minY, minY, maxY, maxY},
		Z:         []float64{z, z, z, z},
		I:         []int{0, 0},
		J:         []int{1, 2},
		K:         []int{2, 3},
		Color:     styles.PlaneColor,
		Opacity:   &op,
		ShowScale: &showScale,
	}
}

// buildConnectorTraces ties the copies of each node together vertically,
// one trace per node and consecutive layer pair.
func buildConnectorTraces(pts []layout.Point, layers int, spacing float64) []Trace {
	if layers < 2 {
		return nil
	}

	traces := make([]Trace, 0, len(pts)*(layers-1))
	for node, p := range pts {
		name := fmt.Sprintf("Inter-layer Node %d", node)
		for l := 0; l < layers-1; l++ {
			traces = append(traces, Trace{
				Type: TypeScatter3D,
				Name: name,
				Mode: ModeLines,
				X:    []float64{p.X, p.X},
				Y:    []float64{p.Y, p.Y},
				Z:    []float64{float64(l) * spacing, float64(l+1) * spacing},
				Line: &Line{Color: styles.InterLayerColor, Width: connectorWidth, Dash: connectorDash},
			})
		}
	}
	return traces
}
