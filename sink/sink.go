package sink

import (
	"image"
)

// Dimensions is a terminal size snapshot in character cells. It is sampled
// fresh before each video segment and each transition, never cached across
// segments, since the terminal may be resized between plays.
type Dimensions struct {
	Cols int
	Rows int
}

// Sink accepts rasterized frames for display or capture.
//
// WriteFrame consumes a frame that has already been resized for dims.
// Live reports whether the sink is a real-time display; pacing is applied
// upstream only for live sinks.
type Sink interface {
	Size() (Dimensions, error)
	WriteFrame(frame *image.RGBA, dims Dimensions) error
	Clear() error
	Live() bool
}
