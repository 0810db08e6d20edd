package layout

import (
	"math"
	"os"

	json "github.com/goccy/go-json"

	"github.com/matzehuels/layerstack/pkg/errors"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Engine names.
const (
	EngineForce  = "force"
	EngineCircle = "circle"
)

// DefaultSeed is the layout seed used when none is configured.
const DefaultSeed = uint64(42)

// ValidEngines is the set of recognized engine names.
var ValidEngines = map[string]bool{
	EngineForce:  true,
	EngineCircle: true,
}

// ValidateEngine checks that the engine name is recognized.
func ValidateEngine(name string) error {
	if !ValidEngines[name] {
		return errors.New(errors.ErrCodeInvalidEngine, "unknown layout engine: %s (must be 'force' or 'circle')", name)
	}
	return nil
}

// =============================================================================
// Engine - Placement Delegate
// =============================================================================

// Point is a 2D node position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Engine produces one 2D position per node. Implementations must be
// deterministic: identical (nodeCount, seed) pairs yield identical output.
type Engine interface {
	// Name returns the engine identifier recorded in layout artifacts.
	Name() string

	// Positions places nodeCount nodes. Fails with INVALID_INPUT when
	// nodeCount is not positive.
	Positions(nodeCount int, seed uint64) ([]Point, error)
}

// NewEngine resolves an engine by name.
func NewEngine(name string) (Engine, error) {
	switch name {
	case EngineForce:
		return ForceEngine{}, nil
	case EngineCircle:
		return CircleEngine{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidEngine, "unknown layout engine: %s (must be 'force' or 'circle')", name)
	}
}

// Build resolves the named engine and computes a layout artifact.
func Build(engine string, nodeCount int, seed uint64) (Layout, error) {
	e, err := NewEngine(engine)
	if err != nil {
		return Layout{}, err
	}
	positions, err := e.Positions(nodeCount, seed)
	if err != nil {
		return Layout{}, err
	}
	return Layout{
		Engine:    e.Name(),
		Seed:      seed,
		Nodes:     nodeCount,
		Positions: positions,
	}, nil
}

// =============================================================================
// Layout - Serialization Artifact
// =============================================================================

// Layout is the serialized result of a placement run: one position per node
// plus the engine and seed that produced them, so a cached or file-based
// artifact can be traced back to its inputs.
type Layout struct {
	Engine    string  `json:"engine"`
	Seed      uint64  `json:"seed"`
	Nodes     int     `json:"nodes"`
	Positions []Point `json:"positions"`
}

// Marshal serializes a Layout to pretty-printed JSON bytes.
func Marshal(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// Unmarshal deserializes JSON bytes into a Layout and checks internal
// consistency (position count matches the recorded node count).
func Unmarshal(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidManifest, err, "unmarshal layout")
	}
	if l.Nodes <= 0 {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput, "layout has non-positive node count %d", l.Nodes)
	}
	if len(l.Positions) != l.Nodes {
		return Layout{}, errors.New(errors.ErrCodeInvalidInput, "layout has %d positions for %d nodes", len(l.Positions), l.Nodes)
	}
	if l.Engine == "" {
		l.Engine = EngineForce
	}
	return l, nil
}

// WriteFile writes a Layout artifact to a JSON file.
func WriteFile(l Layout, path string) error {
	data, err := Marshal(l)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "marshal layout")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIOFailure, err, "write layout %s", path)
	}
	return nil
}

// ReadFile reads a Layout artifact from a JSON file.
func ReadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Layout{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout %s", path)
		}
		return Layout{}, errors.Wrap(errors.ErrCodeIOFailure, err, "read layout %s", path)
	}
	return Unmarshal(data)
}

// =============================================================================
// Internal Helpers
// =============================================================================

// normalize centers positions on their centroid and scales them uniformly so
// the largest coordinate magnitude is 1. Keeps geometry scale-stable across
// engines; a degenerate (single-point) layout collapses to the origin.
func normalize(pts []Point) {
	if len(pts) == 0 {
		return
	}

	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))

	maxAbs := 0.0
	for i := range pts {
		pts[i].X -= cx
		pts[i].Y -= cy
		maxAbs = math.Max(maxAbs, math.Max(math.Abs(pts[i].X), math.Abs(pts[i].Y)))
	}
	if maxAbs == 0 {
		return
	}
	for i := range pts {
		pts[i].X /= maxAbs
		pts[i].Y /= maxAbs
	}
}
