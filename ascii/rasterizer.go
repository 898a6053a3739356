package ascii

import (
	"image"
	"strings"

	"golang.org/x/image/draw"
)

// Resize scales frame so its height matches the terminal row budget,
// preserving aspect ratio by deriving the width from the same scale factor.
// The factor is an integer-truncated percentage, so very small sources on
// very small terminals round the same way regardless of float behavior.
func Resize(frame image.Image, rows int) *image.RGBA {
	bounds := frame.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()

	factor := rows * 100 / srcH
	dstW := srcW * factor / 100
	dstH := srcH * factor / 100

	if dstW < 1 {
		dstW = 1
	}

	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), frame, bounds, draw.Src, nil)

	return dst
}

// Fit resizes frame to exactly w x h pixels, ignoring aspect ratio. It is
// used to normalize the second operand of a transition when the two resized
// frames disagree on shape.
func Fit(frame *image.RGBA, w, h int) *image.RGBA {
	if frame.Bounds().Dx() == w && frame.Bounds().Dy() == h {
		return frame
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), frame, frame.Bounds(), draw.Src, nil)

	return dst
}

// Rasterizer converts frames to text using a pixel [Strategy].
type Rasterizer struct {
	strategy Strategy
}

// NewRasterizer creates a [Rasterizer]. A nil strategy selects the default
// colorless [Luminance] strategy.
func NewRasterizer(strategy Strategy) *Rasterizer {
	if strategy == nil {
		strategy = NewLuminance("")
	}

	return &Rasterizer{strategy: strategy}
}

// printingWidth returns the number of pixel cells that fit in cols terminal
// columns, given a frame that is w pixels wide. Each cell spans two columns.
func printingWidth(cols, w int) int {
	return min(cols, w*2) / 2
}

// Block renders frame as a single in-place redraw block. Rows run top to
// bottom up to the frame height minus one; every row is right-padded with
// spaces to exactly cols columns and no line breaks are emitted, so the
// terminal wraps each row itself without scrolling. The whole block is
// terminated with CRLF.
func (r *Rasterizer) Block(frame *image.RGBA, cols int) string {
	w := frame.Bounds().Dx()
	h := frame.Bounds().Dy()

	pw := printingWidth(cols, w)
	pad := max(cols-pw*2, 0)

	var sb strings.Builder

	sb.Grow((h - 1) * cols)

	for j := range h - 1 {
		for i := range pw {
			sb.WriteString(r.strategy.Cell(frame.RGBAAt(i, j)))
		}

		for range pad {
			sb.WriteByte(' ')
		}
	}

	sb.WriteString("\r\n")

	return sb.String()
}

// Lines renders frame as discrete rows without padding, one string per row,
// for capture sinks that serialize rows individually.
func (r *Rasterizer) Lines(frame *image.RGBA, cols int) []string {
	w := frame.Bounds().Dx()
	h := frame.Bounds().Dy()

	pw := printingWidth(cols, w)

	lines := make([]string, 0, h-1)

	var sb strings.Builder

	for j := range h - 1 {
		sb.Reset()

		for i := range pw {
			sb.WriteString(r.strategy.Cell(frame.RGBAAt(i, j)))
		}

		lines = append(lines, sb.String())
	}

	return lines
}
