package figure

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Trace types.
const (
	TypeScatter3D = "scatter3d"
	TypeMesh3D    = "mesh3d"
)

// Scatter modes.
const (
	ModeMarkersText = "markers+text"
	ModeLines       = "lines"
)

// =============================================================================
// Trace - Plot Primitives
// =============================================================================

// Marker styles node glyphs.
type Marker struct {
	Size  float64 `json:"size,omitempty"`
	Color string  `json:"color,omitempty"`
}

// Line styles edge strokes.
type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Dash  string  `json:"dash,omitempty"`
}

// Trace is one plotly trace. The struct is a union across the trace types
// the builders emit; unset fields are omitted from serialization so each
// trace carries exactly the attributes its type uses.
type Trace struct {
	Type         string    `json:"type"`
	Name         string    `json:"name,omitempty"`
	Mode         string    `json:"mode,omitempty"`
	X            []float64 `json:"x"`
	Y            []float64 `json:"y"`
	Z            []float64 `json:"z"`
	Text         []string  `json:"text,omitempty"`
	TextPosition string    `json:"textposition,omitempty"`
	Marker       *Marker   `json:"marker,omitempty"`
	Line         *Line     `json:"line,omitempty"`
	I            []int     `json:"i,omitempty"`
	J            []int     `json:"j,omitempty"`
	K            []int     `json:"k,omitempty"`
	Color        string    `json:"color,omitempty"`
	Opacity      *float64  `json:"opacity,omitempty"`
	ShowScale    *bool     `json:"showscale,omitempty"`
}
