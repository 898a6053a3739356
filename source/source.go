package source

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
)

// FallbackFPS is used when the container does not report a frame rate.
const FallbackFPS = 30

var (
	// ErrNoFrames indicates a source contained no decodable frames.
	ErrNoFrames = errors.New("source contains no frames")
	// ErrFFmpegMissing indicates ffmpeg is not installed.
	ErrFFmpegMissing = errors.New("ffmpeg not found in PATH")
)

// Source yields decoded frames on demand.
//
// Read returns the next frame and false once the stream is exhausted. Seek
// repositions to an arbitrary frame index; Pos reports the index of the
// frame the next Read will return. A Source is owned by exactly one
// goroutine at a time.
type Source interface {
	Read() (*image.RGBA, bool)
	Seek(frame int)
	Pos() int
	Width() int
	Height() int
	FrameCount() int
	FPS() float64
	Close() error
}

// Open opens a frame source from path. A directory is treated as a set of
// PNG frames played at [FallbackFPS]; anything else is handed to ffmpeg for
// frame extraction with the frame rate probed via ffprobe.
func Open(path string) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("opening source: %w", err)
	}

	if info.IsDir() {
		return openDir(path, FallbackFPS, nil)
	}

	dir, cleanup, err := extractFrames(path)
	if err != nil {
		return nil, err
	}

	src, err := openDir(dir, probeFPS(path), cleanup)
	if err != nil {
		cleanup()

		return nil, err
	}

	return src, nil
}

// extractFrames shells out to ffmpeg to extract every frame of a video file
// as PNG images. It returns the temporary directory containing the frames
// and a cleanup function that removes the directory.
func extractFrames(videoPath string) (string, func(), error) {
	_, err := exec.LookPath("ffmpeg")
	if err != nil {
		return "", nil, ErrFFmpegMissing
	}

	tmpDir, err := os.MkdirTemp("", "asciiplay_frames_*")
	if err != nil {
		return "", nil, fmt.Errorf("creating temp dir: %w", err)
	}

	cleanup := func() { os.RemoveAll(tmpDir) }

	pattern := filepath.Join(tmpDir, "frame_%06d.png")

	//nolint:gosec // videoPath is a user-provided CLI argument, not untrusted input.
	cmd := exec.CommandContext(
		context.Background(),
		"ffmpeg",
		"-i", videoPath,
		pattern,
	)

	cmd.Stderr = nil

	err = cmd.Run()
	if err != nil {
		cleanup()

		return "", nil, fmt.Errorf("running ffmpeg: %w", err)
	}

	return tmpDir, cleanup, nil
}
