package sink

import (
	"encoding/json"
	"fmt"
	"image"
	"io"
	"strings"

	"go.jacobcolvin.com/asciiplay/ascii"
)

// Script captures frames as a self-contained shell replay script: one sleep
// plus one echo per frame, each followed by a cursor-home so the replay
// redraws in place.
type Script struct {
	w        io.Writer
	rast     *ascii.Rasterizer
	dims     Dimensions
	preamble bool
}

// NewScript creates a [Script] capture sink with fixed dimensions.
func NewScript(w io.Writer, rast *ascii.Rasterizer, dims Dimensions) *Script {
	return &Script{
		w:    w,
		rast: rast,
		dims: dims,
	}
}

// Size returns the configured capture dimensions.
func (s *Script) Size() (Dimensions, error) { return s.dims, nil }

// WriteFrame appends one sleep/echo pair to the script. The first frame
// also emits the shebang and an initial screen clear.
func (s *Script) WriteFrame(frame *image.RGBA, dims Dimensions) error {
	if !s.preamble {
		_, err := fmt.Fprintf(s.w, "#!/bin/bash\necho -en '\\033[2J'\necho -en '\\033[0;0H'\n")
		if err != nil {
			return fmt.Errorf("writing script preamble: %w", err)
		}

		s.preamble = true
	}

	block := strings.Join(s.rast.Lines(frame, dims.Cols), "\n")

	_, err := fmt.Fprintf(s.w, "sleep 0.033\necho -en '%s'\necho -en '\\033[0;0H'\n", escapeSingleQuotes(block))
	if err != nil {
		return fmt.Errorf("writing script frame: %w", err)
	}

	return nil
}

// Clear is a no-op for captures.
func (s *Script) Clear() error { return nil }

// Live reports false: captures are written as fast as frames arrive.
func (s *Script) Live() bool { return false }

// escapeSingleQuotes makes block safe inside a single-quoted shell string.
func escapeSingleQuotes(block string) string {
	return strings.ReplaceAll(block, "'", `'\''`)
}

// JSON captures frames as a JSON array with one entry per frame, each entry
// an array of row strings.
type JSON struct {
	w      io.Writer
	rast   *ascii.Rasterizer
	dims   Dimensions
	frames [][]string
}

// NewJSON creates a [JSON] capture sink with fixed dimensions.
func NewJSON(w io.Writer, rast *ascii.Rasterizer, dims Dimensions) *JSON {
	return &JSON{
		w:    w,
		rast: rast,
		dims: dims,
	}
}

// Size returns the configured capture dimensions.
func (j *JSON) Size() (Dimensions, error) { return j.dims, nil }

// WriteFrame buffers the frame's rows. The document is written on Close.
func (j *JSON) WriteFrame(frame *image.RGBA, dims Dimensions) error {
	j.frames = append(j.frames, j.rast.Lines(frame, dims.Cols))

	return nil
}

// Clear is a no-op for captures.
func (j *JSON) Clear() error { return nil }

// Live reports false: captures are written as fast as frames arrive.
func (j *JSON) Live() bool { return false }

// Close flushes the buffered frames as one JSON document.
func (j *JSON) Close() error {
	enc := json.NewEncoder(j.w)

	err := enc.Encode(j.frames)
	if err != nil {
		return fmt.Errorf("encoding JSON capture: %w", err)
	}

	return nil
}
