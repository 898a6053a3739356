package transition

import (
	"image"
	"slices"
)

// scanBand is the thickness, in rows or columns, of the brightened blend
// band immediately ahead of the scan cursor.
const scanBand = 2

// scanBoost is the additive brightness applied inside the scan band.
const scanBoost = 50

// CrossfadeFrames blends an outgoing frame with an incoming frame at the
// given alpha (0.0 = all outgoing, 1.0 = all incoming) using per-pixel
// linear interpolation. Both frames must have the same dimensions.
func CrossfadeFrames(outgoing, incoming *image.RGBA, alpha float64) *image.RGBA {
	comp := &image.RGBA{
		Pix:    make([]uint8, len(outgoing.Pix)),
		Stride: outgoing.Stride,
		Rect:   outgoing.Rect,
	}

	for i := range outgoing.Pix {
		v := float64(outgoing.Pix[i])*(1-alpha) + float64(incoming.Pix[i])*alpha
		comp.Pix[i] = uint8(v + 0.5)
	}

	return comp
}

// WipeFrames composites a wipe at the given progress (0.0 = all outgoing,
// 1.0 = all incoming). Pixels on the already-swept side of the boundary
// come from the incoming frame. Both frames must have the same dimensions.
func WipeFrames(outgoing, incoming *image.RGBA, dir Direction, progress float64) *image.RGBA {
	comp := cloneFrame(outgoing)

	w := comp.Rect.Dx()
	h := comp.Rect.Dy()

	switch dir {
	case DirectionTop:
		copyRows(comp, incoming, 0, int(float64(h)*progress))
	case DirectionBottom:
		copyRows(comp, incoming, int(float64(h)*(1-progress)), h)
	case DirectionLeft:
		copyCols(comp, incoming, 0, int(float64(w)*progress))
	case DirectionRight:
		copyCols(comp, incoming, int(float64(w)*(1-progress)), w)
	}

	return comp
}

// ScanFrames composites a scan at the given cursor position. The region the
// cursor has passed shows the incoming frame; a band of scanBand rows (or
// columns) ahead of the cursor shows a 50/50 blend brightened by scanBoost.
// Both frames must have the same dimensions.
func ScanFrames(outgoing, incoming *image.RGBA, dir Direction, cursor int) *image.RGBA {
	comp := cloneFrame(outgoing)

	w := comp.Rect.Dx()
	h := comp.Rect.Dy()

	switch dir {
	case DirectionTop:
		copyRows(comp, incoming, 0, cursor)
		boostRows(comp, outgoing, incoming, cursor, cursor+scanBand)
	case DirectionBottom:
		copyRows(comp, incoming, h-cursor, h)
		boostRows(comp, outgoing, incoming, h-cursor-scanBand, h-cursor)
	case DirectionLeft:
		copyCols(comp, incoming, 0, cursor)
		boostCols(comp, outgoing, incoming, cursor, cursor+scanBand)
	case DirectionRight:
		copyCols(comp, incoming, w-cursor, w)
		boostCols(comp, outgoing, incoming, w-cursor-scanBand, w-cursor)
	}

	return comp
}

func cloneFrame(f *image.RGBA) *image.RGBA {
	return &image.RGBA{
		Pix:    slices.Clone(f.Pix),
		Stride: f.Stride,
		Rect:   f.Rect,
	}
}

// copyRows replaces dst rows [y0, y1) with the same rows of src.
func copyRows(dst, src *image.RGBA, y0, y1 int) {
	h := dst.Rect.Dy()
	y0 = max(y0, 0)
	y1 = min(y1, h)

	w4 := dst.Rect.Dx() * 4

	for y := y0; y < y1; y++ {
		off := y * dst.Stride
		copy(dst.Pix[off:off+w4], src.Pix[off:off+w4])
	}
}

// copyCols replaces dst columns [x0, x1) with the same columns of src.
func copyCols(dst, src *image.RGBA, x0, x1 int) {
	w := dst.Rect.Dx()
	h := dst.Rect.Dy()
	x0 = max(x0, 0)
	x1 = min(x1, w)

	if x0 >= x1 {
		return
	}

	for y := range h {
		off := y*dst.Stride + x0*4
		end := y*dst.Stride + x1*4
		copy(dst.Pix[off:end], src.Pix[off:end])
	}
}

// boostRows writes a brightened 50/50 blend of a and b into dst rows
// [y0, y1).
func boostRows(dst, a, b *image.RGBA, y0, y1 int) {
	h := dst.Rect.Dy()
	y0 = max(y0, 0)
	y1 = min(y1, h)

	w4 := dst.Rect.Dx() * 4

	for y := y0; y < y1; y++ {
		off := y * dst.Stride
		boostSpan(dst.Pix, a.Pix, b.Pix, off, off+w4)
	}
}

// boostCols writes a brightened 50/50 blend of a and b into dst columns
// [x0, x1).
func boostCols(dst, a, b *image.RGBA, x0, x1 int) {
	w := dst.Rect.Dx()
	h := dst.Rect.Dy()
	x0 = max(x0, 0)
	x1 = min(x1, w)

	if x0 >= x1 {
		return
	}

	for y := range h {
		off := y*dst.Stride + x0*4
		end := y*dst.Stride + x1*4
		boostSpan(dst.Pix, a.Pix, b.Pix, off, end)
	}
}

func boostSpan(dst, a, b []uint8, off, end int) {
	for i := off; i < end; i++ {
		v := int(a[i])/2 + int(b[i])/2 + scanBoost
		if v > 255 {
			v = 255
		}

		dst[i] = uint8(v)
	}
}
