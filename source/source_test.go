package source_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/asciiplay/source"
)

// writeFrames writes n small PNG frames into a fresh temp directory, each
// filled with a distinct gray level so frame identity is checkable.
func writeFrames(t *testing.T, n int) string {
	t.Helper()

	dir := t.TempDir()

	for i := range n {
		img := image.NewRGBA(image.Rect(0, 0, 8, 6))
		v := uint8(i * 10)

		for y := range 6 {
			for x := range 8 {
				img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
			}
		}

		f, err := os.Create(filepath.Join(dir, frameName(i)))
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, img))
		require.NoError(t, f.Close())
	}

	return dir
}

func frameName(i int) string {
	return "frame_" + string(rune('a'+i)) + ".png"
}

func TestOpenDir(t *testing.T) {
	t.Parallel()

	dir := writeFrames(t, 5)

	src, err := source.Open(dir)
	require.NoError(t, err)

	t.Cleanup(func() { _ = src.Close() })

	assert.Equal(t, 8, src.Width())
	assert.Equal(t, 6, src.Height())
	assert.Equal(t, 5, src.FrameCount())
	assert.InDelta(t, float64(source.FallbackFPS), src.FPS(), 0.001)
}

func TestReadAdvancesAndExhausts(t *testing.T) {
	t.Parallel()

	dir := writeFrames(t, 3)

	src, err := source.Open(dir)
	require.NoError(t, err)

	t.Cleanup(func() { _ = src.Close() })

	for i := range 3 {
		assert.Equal(t, i, src.Pos())

		frame, ok := src.Read()
		require.True(t, ok)
		assert.Equal(t, uint8(i*10), frame.RGBAAt(0, 0).R)
	}

	_, ok := src.Read()
	assert.False(t, ok)
}

func TestSeek(t *testing.T) {
	t.Parallel()

	dir := writeFrames(t, 4)

	src, err := source.Open(dir)
	require.NoError(t, err)

	t.Cleanup(func() { _ = src.Close() })

	src.Seek(2)
	assert.Equal(t, 2, src.Pos())

	frame, ok := src.Read()
	require.True(t, ok)
	assert.Equal(t, uint8(20), frame.RGBAAt(0, 0).R)

	// Out-of-range seeks clamp instead of failing.
	src.Seek(-1)
	assert.Equal(t, 0, src.Pos())

	src.Seek(99)
	_, ok = src.Read()
	assert.False(t, ok)
}

func TestOpenErrors(t *testing.T) {
	t.Parallel()

	_, err := source.Open(filepath.Join(t.TempDir(), "missing.mp4"))
	require.Error(t, err)

	_, err = source.Open(t.TempDir())
	require.ErrorIs(t, err, source.ErrNoFrames)
}
