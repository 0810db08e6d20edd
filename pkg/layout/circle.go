package layout

import (
	"math"

	"github.com/matzehuels/layerstack/pkg/errors"
)

// CircleEngine places nodes evenly on the unit circle, node k at angle
// 2πk/n starting from the positive x axis. It involves no randomness, so
// the seed is ignored.
type CircleEngine struct{}

// Name implements Engine.
func (CircleEngine) Name() string { return EngineCircle }

// Positions implements Engine.
func (CircleEngine) Positions(nodeCount int, _ uint64) ([]Point, error) {
	if err := errors.ValidateDimension(nodeCount); err != nil {
		return nil, err
	}
	if nodeCount == 1 {
		return []Point{{}}, nil
	}

	pts := make([]Point, nodeCount)
	for k := 0; k < nodeCount; k++ {
		angle := 2 * math.Pi * float64(k) / float64(nodeCount)
		pts[k] = Point{X: math.Cos(angle), Y: math.Sin(angle)}
	}
	return pts, nil
}
