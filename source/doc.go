// Package source provides seekable frame sources for playback.
//
// A [Source] yields decoded frames one at a time, reports end-of-stream,
// and supports seeking to an arbitrary frame index. [Open] accepts either a
// video file, in which case frames are extracted to a temporary directory
// via ffmpeg and the frame rate is probed via ffprobe, or a directory of
// PNG frames. Frames are decoded lazily on each Read, so a seek is just an
// index move and never touches the decoder mid-read.
package source
