package ascii

import "image/color"

// DefaultRamp is the density ramp used by the colorless strategy, ordered
// from darkest to brightest pixel.
const DefaultRamp = " .,:;irsXA253hMHGS#9B&@"

// Strategy maps one pixel to one two-column character cell.
type Strategy interface {
	Cell(c color.RGBA) string
}

// Luminance is the colorless [Strategy]: it averages the three color
// channels and indexes the result into a fixed density ramp.
type Luminance struct {
	cells []string
}

// NewLuminance creates a [Luminance] strategy over the given ramp.
// An empty ramp selects [DefaultRamp].
func NewLuminance(ramp string) *Luminance {
	if ramp == "" {
		ramp = DefaultRamp
	}

	// Pre-build the doubled cells so Cell is a single slice index.
	cells := make([]string, len(ramp))
	for i := range ramp {
		cells[i] = string([]byte{ramp[i], ramp[i]})
	}

	return &Luminance{cells: cells}
}

// Cell returns the ramp cell for the pixel's mean channel luminance.
func (l *Luminance) Cell(c color.RGBA) string {
	lum := (int(c.R) + int(c.G) + int(c.B)) / 3
	idx := lum * (len(l.cells) - 1) / 255

	return l.cells[idx]
}
