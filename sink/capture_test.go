package sink_test

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/asciiplay/ascii"
	"go.jacobcolvin.com/asciiplay/sink"
)

func whiteFrame(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	return img
}

func TestScriptCapture(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	s := sink.NewScript(&buf, ascii.NewRasterizer(nil), sink.Dimensions{Cols: 8, Rows: 4})
	assert.False(t, s.Live())

	dims, err := s.Size()
	require.NoError(t, err)
	assert.Equal(t, 8, dims.Cols)

	require.NoError(t, s.WriteFrame(whiteFrame(4, 3), dims))
	require.NoError(t, s.WriteFrame(whiteFrame(4, 3), dims))

	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "#!/bin/bash\n"))
	assert.Equal(t, 1, strings.Count(out, "#!/bin/bash"))
	assert.Equal(t, 2, strings.Count(out, "sleep 0.033"))
	assert.Contains(t, out, "echo -en '@@@@@@@@")
}

func TestJSONCapture(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	j := sink.NewJSON(&buf, ascii.NewRasterizer(nil), sink.Dimensions{Cols: 8, Rows: 4})
	assert.False(t, j.Live())

	dims, err := j.Size()
	require.NoError(t, err)

	require.NoError(t, j.WriteFrame(whiteFrame(4, 3), dims))
	require.NoError(t, j.WriteFrame(whiteFrame(4, 3), dims))
	require.NoError(t, j.Close())

	var frames [][]string

	require.NoError(t, json.Unmarshal(buf.Bytes(), &frames))
	require.Len(t, frames, 2)

	// Height 3 frame yields two rows, each four doubled white cells.
	require.Len(t, frames[0], 2)
	assert.Equal(t, "@@@@@@@@", frames[0][0])
}

func TestTerminalWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	term := sink.NewTerminalWriter(&buf, ascii.NewRasterizer(nil), sink.Dimensions{Cols: 10, Rows: 5})
	assert.True(t, term.Live())

	dims, err := term.Size()
	require.NoError(t, err)

	require.NoError(t, term.WriteFrame(whiteFrame(3, 3), dims))

	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "\x1b[0;0H"))
	assert.True(t, strings.HasSuffix(out, "\r\n"))

	require.NoError(t, term.Clear())
	assert.Contains(t, buf.String(), "\x1b[2J")
}
