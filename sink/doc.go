// Package sink provides render destinations for rasterized frames.
//
// A [Sink] accepts one frame at a time, already resized to the target
// dimensions, and serializes it through an [ascii.Rasterizer]. [Terminal]
// redraws in place with a cursor-home escape before each frame. [Script]
// and [JSON] are capture sinks: the former emits a self-contained shell
// replay script, the latter a JSON array of per-frame row arrays. Capture
// sinks report Live() == false, which disables frame pacing upstream.
package sink
