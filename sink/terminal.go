package sink

import (
	"fmt"
	"image"
	"io"
	"os"

	"golang.org/x/term"

	"go.jacobcolvin.com/asciiplay/ascii"
)

const (
	cursorHome  = "\x1b[0;0H"
	clearScreen = "\x1b[2J"
)

// Terminal renders frames to a live terminal with in-place redraw.
type Terminal struct {
	w      io.Writer
	rast   *ascii.Rasterizer
	sizeFn func() (Dimensions, error)
}

// NewTerminal creates a [Terminal] sink over f, detecting dimensions from
// the file descriptor on every Size call.
func NewTerminal(f *os.File, rast *ascii.Rasterizer) *Terminal {
	fd := int(f.Fd())

	return &Terminal{
		w:    f,
		rast: rast,
		sizeFn: func() (Dimensions, error) {
			cols, rows, err := term.GetSize(fd)
			if err != nil {
				return Dimensions{}, fmt.Errorf("detecting terminal size: %w", err)
			}

			return Dimensions{Cols: cols, Rows: rows}, nil
		},
	}
}

// NewTerminalWriter creates a [Terminal] sink over an arbitrary writer with
// fixed dimensions. Useful when stdout is not a tty.
func NewTerminalWriter(w io.Writer, rast *ascii.Rasterizer, dims Dimensions) *Terminal {
	return &Terminal{
		w:      w,
		rast:   rast,
		sizeFn: func() (Dimensions, error) { return dims, nil },
	}
}

// Size returns the current terminal dimensions.
func (t *Terminal) Size() (Dimensions, error) {
	return t.sizeFn()
}

// WriteFrame homes the cursor and writes the frame as one padded block, so
// the redraw never scrolls.
func (t *Terminal) WriteFrame(frame *image.RGBA, dims Dimensions) error {
	block := t.rast.Block(frame, dims.Cols)

	_, err := io.WriteString(t.w, cursorHome+block)
	if err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}

	return nil
}

// Clear erases the screen and homes the cursor.
func (t *Terminal) Clear() error {
	_, err := io.WriteString(t.w, clearScreen+cursorHome)
	if err != nil {
		return fmt.Errorf("clearing terminal: %w", err)
	}

	return nil
}

// Live reports true: terminal output is paced to the source frame rate.
func (t *Terminal) Live() bool { return true }
