// Package styles assigns colors to layers and fixed roles so the 3D figure,
// the matrix tables, and the graph exports all agree on what each layer
// looks like.
package styles

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// paletteHex lists the categorical layer colors in assignment order. These
// are the standard ten-color scheme shared by common plotting tools, so
// exported documents match what those tools draw for the same data.
var paletteHex = [...]string{
	"#1f77b4", // blue
	"#ff7f0e", // orange
	"#2ca02c", // green
	"#d62728", // red
	"#9467bd", // purple
	"#8c564b", // brown
	"#e377c2", // pink
	"#7f7f7f", // gray
	"#bcbd22", // olive
	"#17becf", // cyan
}

// PaletteSize is the number of distinct layer colors before assignment cycles.
const PaletteSize = len(paletteHex)

// Fixed colors for geometry that is not layer-keyed.
const (
	NodeColor       = "lightblue"
	InterLayerColor = "gray"
	PlaneColor      = "lightgray"
	ZeroCellColor   = "white"
)

// =============================================================================
// Color - Layer Color Allocation
// =============================================================================

// Color is an RGB color with accessors for the formats the renderers emit.
// All byte-channel output goes through RGB8 so every format agrees on
// channel values.
type Color struct {
	c colorful.Color
}

// ColorFor returns the color assigned to a layer. The palette is sampled
// evenly across the stack, the way plotting tools size a qualitative map to
// the series count: a three-layer stack gets the first, middle, and last
// entries. Stacks deeper than the palette cycle through it instead. Pure:
// identical arguments always yield the identical color.
func ColorFor(layer, totalLayers int) Color {
	return Color{c: palette[paletteIndex(layer, totalLayers)]}
}

func paletteIndex(layer, totalLayers int) int {
	if totalLayers > PaletteSize {
		i := layer % PaletteSize
		if i < 0 {
			i += PaletteSize
		}
		return i
	}
	if totalLayers <= 1 || layer <= 0 {
		return 0
	}
	i := int(float64(layer) / float64(totalLayers-1) * float64(PaletteSize))
	return min(i, PaletteSize-1)
}

// RGB8 returns the 8-bit channel values.
func (c Color) RGB8() (r, g, b uint8) {
	return c.c.RGB255()
}

// CSS returns the color as a CSS rgb() string, e.g. "rgb(31, 119, 180)".
func (c Color) CSS() string {
	r, g, b := c.RGB8()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// Hex returns the color as a lowercase hex string, e.g. "#1f77b4".
func (c Color) Hex() string {
	return c.c.Hex()
}

var palette = mustPalette()

func mustPalette() [PaletteSize]colorful.Color {
	var out [PaletteSize]colorful.Color
	for i, h := range paletteHex {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("styles: invalid palette constant %q: %v", h, err))
		}
		out[i] = c
	}
	return out
}
