package layout

import (
	"math/rand/v2"

	glayout "gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/matzehuels/layerstack/pkg/errors"
)

// Force-directed tuning. Fixed values keep the iteration count (and thereby
// the output) identical across runs for a given seed.
const (
	forceUpdates   = 100
	forceRepulsion = 1.0
	forceRate      = 0.05
	forceTheta     = 0.1
)

// ForceEngine places nodes with the Eades spring embedder over the complete
// graph on n nodes. Using the complete graph rather than any one layer's
// edges keeps the placement independent of layer content, which is what
// makes one shared layout reusable across the whole stack.
type ForceEngine struct{}

// Name implements Engine.
func (ForceEngine) Name() string { return EngineForce }

// Positions implements Engine. Deterministic: the spring embedder runs a
// fixed number of updates from a PCG source seeded with the given seed.
func (ForceEngine) Positions(nodeCount int, seed uint64) ([]Point, error) {
	if err := errors.ValidateDimension(nodeCount); err != nil {
		return nil, err
	}

	// A single node needs no simulation.
	if nodeCount == 1 {
		return []Point{{}}, nil
	}

	g := simple.NewUndirectedGraph()
	for i := 0; i < nodeCount; i++ {
		g.AddNode(simple.Node(i))
	}
	for i := 0; i < nodeCount; i++ {
		for j := i + 1; j < nodeCount; j++ {
			g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
		}
	}

	eades := glayout.EadesR2{
		Updates:   forceUpdates,
		Repulsion: forceRepulsion,
		Rate:      forceRate,
		Theta:     forceTheta,
		Src:       rand.NewPCG(seed, seed),
	}
	optimizer := glayout.NewOptimizerR2(g, eades.Update)
	for optimizer.Update() {
	}

	pts := make([]Point, nodeCount)
	for i := 0; i < nodeCount; i++ {
		v := optimizer.Coord2(int64(i))
		pts[i] = Point{X: v.X, Y: v.Y}
	}
	normalize(pts)
	return pts, nil
}
