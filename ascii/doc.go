// Package ascii converts video frames into fixed-width text blocks for
// terminal display.
//
// A [Rasterizer] pairs the resize step with a pluggable pixel [Strategy].
// Each sampled pixel becomes a two-column character cell, which compensates
// for terminal character cells being roughly twice as tall as they are wide.
// [Rasterizer.Block] produces an in-place redraw block (rows padded to the
// terminal width, no line breaks) and [Rasterizer.Lines] produces discrete
// rows for capture sinks.
//
// All operations are pure functions of the frame and target dimensions.
package ascii
