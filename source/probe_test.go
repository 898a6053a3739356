package source_test

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/asciiplay/source"
)

// fakeVideoTools installs stub ffmpeg and ffprobe executables ahead of the
// real ones on PATH. The ffmpeg stub copies a single prepared PNG into the
// extraction target, and the ffprobe stub reports the given frame rate.
func fakeVideoTools(t *testing.T, rate string) {
	t.Helper()

	bin := t.TempDir()

	frame := filepath.Join(bin, "frame.png")
	writeStubFrame(t, frame)

	ffmpeg := fmt.Sprintf("#!/bin/sh\nfor a in \"$@\"; do last=$a; done\ncp %q \"$last\"\n", frame)
	require.NoError(t, os.WriteFile(filepath.Join(bin, "ffmpeg"), []byte(ffmpeg), 0o755))

	ffprobe := fmt.Sprintf("#!/bin/sh\necho %q\n", rate)
	require.NoError(t, os.WriteFile(filepath.Join(bin, "ffprobe"), []byte(ffprobe), 0o755))

	t.Setenv("PATH", bin+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func writeStubFrame(t *testing.T, path string) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 8, 6))))
	require.NoError(t, f.Close())
}

// stubVideo creates a placeholder video file; the stub tools never decode
// it, so the content is irrelevant.
func stubVideo(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(path, []byte("stub"), 0o600))

	return path
}

func TestOpenVideoFile(t *testing.T) {
	fakeVideoTools(t, "30000/1001")

	src, err := source.Open(stubVideo(t))
	require.NoError(t, err)

	t.Cleanup(func() { _ = src.Close() })

	assert.Equal(t, 1, src.FrameCount())
	assert.Equal(t, 8, src.Width())
	assert.Equal(t, 6, src.Height())

	// NTSC rational rate from the container, not the directory fallback.
	assert.InDelta(t, 29.97, src.FPS(), 0.01)

	_, ok := src.Read()
	assert.True(t, ok)
}

func TestOpenVideoFileRates(t *testing.T) {
	tcs := map[string]struct {
		rate string
		want float64
	}{
		"integer":          {rate: "25", want: 25},
		"rational":         {rate: "24/1", want: 24},
		"zero denominator": {rate: "30/0", want: source.FallbackFPS},
		"unreported":       {rate: "N/A", want: source.FallbackFPS},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			fakeVideoTools(t, tc.rate)

			src, err := source.Open(stubVideo(t))
			require.NoError(t, err)

			t.Cleanup(func() { _ = src.Close() })

			assert.InDelta(t, tc.want, src.FPS(), 0.01)
		})
	}
}

func TestOpenVideoFileFFmpegMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := source.Open(stubVideo(t))
	require.ErrorIs(t, err, source.ErrFFmpegMissing)
}
