package transition_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/asciiplay/sink"
	"go.jacobcolvin.com/asciiplay/source"
	"go.jacobcolvin.com/asciiplay/transition"
)

func solid(w, h int, v uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}

	return img
}

// stubSource is an in-memory frame source of solid frames.
type stubSource struct {
	frames []*image.RGBA
	pos    int
}

func newStubSource(n int, w, h int, v uint8) *stubSource {
	frames := make([]*image.RGBA, n)
	for i := range n {
		frames[i] = solid(w, h, v)
	}

	return &stubSource{frames: frames}
}

func (s *stubSource) Read() (*image.RGBA, bool) {
	if s.pos >= len(s.frames) {
		return nil, false
	}

	f := s.frames[s.pos]
	s.pos++

	return f, true
}

func (s *stubSource) Seek(frame int) {
	if frame < 0 {
		frame = 0
	}

	if frame > len(s.frames) {
		frame = len(s.frames)
	}

	s.pos = frame
}

func (s *stubSource) Pos() int        { return s.pos }
func (s *stubSource) Width() int      { return s.frames[0].Rect.Dx() }
func (s *stubSource) Height() int     { return s.frames[0].Rect.Dy() }
func (s *stubSource) FrameCount() int { return len(s.frames) }
func (s *stubSource) FPS() float64    { return source.FallbackFPS }
func (s *stubSource) Close() error    { return nil }

// recordSink records every composite it receives.
type recordSink struct {
	dims   sink.Dimensions
	frames []*image.RGBA
}

func (r *recordSink) Size() (sink.Dimensions, error) { return r.dims, nil }
func (r *recordSink) Clear() error                   { return nil }
func (r *recordSink) Live() bool                     { return false }

func (r *recordSink) WriteFrame(frame *image.RGBA, _ sink.Dimensions) error {
	r.frames = append(r.frames, frame)

	return nil
}

func TestCrossfadeFramesEndpoints(t *testing.T) {
	t.Parallel()

	outgoing := solid(8, 6, 100)
	incoming := solid(8, 6, 200)

	atZero := transition.CrossfadeFrames(outgoing, incoming, 0)
	assert.Equal(t, outgoing.Pix, atZero.Pix)

	atOne := transition.CrossfadeFrames(outgoing, incoming, 1)
	assert.Equal(t, incoming.Pix, atOne.Pix)

	mid := transition.CrossfadeFrames(outgoing, incoming, 0.5)
	assert.Equal(t, uint8(150), mid.RGBAAt(3, 3).R)
}

func TestWipeFramesEndpoints(t *testing.T) {
	t.Parallel()

	outgoing := solid(8, 6, 100)
	incoming := solid(8, 6, 200)

	for _, dir := range []transition.Direction{
		transition.DirectionTop,
		transition.DirectionBottom,
		transition.DirectionLeft,
		transition.DirectionRight,
	} {
		atZero := transition.WipeFrames(outgoing, incoming, dir, 0)
		assert.Equal(t, outgoing.Pix, atZero.Pix, "direction %s at progress 0", dir)

		atOne := transition.WipeFrames(outgoing, incoming, dir, 1)
		assert.Equal(t, incoming.Pix, atOne.Pix, "direction %s at progress 1", dir)
	}
}

func TestWipeFramesBoundary(t *testing.T) {
	t.Parallel()

	outgoing := solid(8, 10, 100)
	incoming := solid(8, 10, 200)

	comp := transition.WipeFrames(outgoing, incoming, transition.DirectionTop, 0.5)

	// Boundary at floor(10 * 0.5) = 5: rows above are swept.
	assert.Equal(t, uint8(200), comp.RGBAAt(0, 0).R)
	assert.Equal(t, uint8(200), comp.RGBAAt(7, 4).R)
	assert.Equal(t, uint8(100), comp.RGBAAt(0, 5).R)
	assert.Equal(t, uint8(100), comp.RGBAAt(7, 9).R)
}

func TestScanFramesBandConfinement(t *testing.T) {
	t.Parallel()

	outgoing := solid(8, 12, 100)
	incoming := solid(8, 12, 200)

	comp := transition.ScanFrames(outgoing, incoming, transition.DirectionTop, 4)

	// Passed region is pure incoming.
	for y := range 4 {
		assert.Equal(t, uint8(200), comp.RGBAAt(3, y).R, "row %d", y)
	}

	// The two band rows are a boosted 50/50 blend: 100/2 + 200/2 + 50.
	assert.Equal(t, uint8(200), comp.RGBAAt(3, 4).R)
	assert.Equal(t, uint8(200), comp.RGBAAt(3, 5).R)

	// Beyond the band the outgoing frame is untouched.
	for y := 6; y < 12; y++ {
		assert.Equal(t, uint8(100), comp.RGBAAt(3, y).R, "row %d", y)
	}
}

func TestScanFramesBottom(t *testing.T) {
	t.Parallel()

	outgoing := solid(8, 12, 10)
	incoming := solid(8, 12, 30)

	comp := transition.ScanFrames(outgoing, incoming, transition.DirectionBottom, 4)

	// Bottom four rows swept, band just above them.
	assert.Equal(t, uint8(30), comp.RGBAAt(0, 11).R)
	assert.Equal(t, uint8(30), comp.RGBAAt(0, 8).R)
	assert.Equal(t, uint8(70), comp.RGBAAt(0, 7).R) // 10/2 + 30/2 + 50
	assert.Equal(t, uint8(10), comp.RGBAAt(0, 5).R)
}

func TestEngineCrossfadeBudget(t *testing.T) {
	t.Parallel()

	rec := &recordSink{dims: sink.Dimensions{Cols: 16, Rows: 6}}
	eng := transition.NewEngine(rec)

	outgoing := newStubSource(10, 8, 6, 100)
	incoming := newStubSource(10, 8, 6, 200)

	final, err := eng.Run(outgoing, incoming, rec.dims, transition.Spec{
		Algorithm: transition.AlgorithmCrossfade,
		Budget:    4,
	})
	require.NoError(t, err)
	require.NotNil(t, final)

	require.Len(t, rec.frames, 4)

	// First composite is at alpha 0: the outgoing frame exactly.
	assert.Equal(t, uint8(100), rec.frames[0].RGBAAt(2, 2).R)
}

func TestEngineExhaustionFavorsIncoming(t *testing.T) {
	t.Parallel()

	rec := &recordSink{dims: sink.Dimensions{Cols: 16, Rows: 6}}
	eng := transition.NewEngine(rec)

	outgoing := newStubSource(2, 8, 6, 100)
	incoming := newStubSource(10, 8, 6, 200)

	final, err := eng.Run(outgoing, incoming, rec.dims, transition.Spec{
		Algorithm: transition.AlgorithmWipe,
		Direction: transition.DirectionTop,
		Budget:    5,
	})
	require.NoError(t, err)

	// Two composites, then the outgoing source ran dry.
	assert.Len(t, rec.frames, 2)
	require.NotNil(t, final)
	assert.Equal(t, uint8(200), final.RGBAAt(0, 0).R)
}

func TestEngineScanDurationIndependentOfBudget(t *testing.T) {
	t.Parallel()

	rec := &recordSink{dims: sink.Dimensions{Cols: 16, Rows: 6}}
	eng := transition.NewEngine(rec)

	outgoing := newStubSource(30, 8, 6, 100)
	incoming := newStubSource(30, 8, 6, 200)

	_, err := eng.Run(outgoing, incoming, rec.dims, transition.Spec{
		Algorithm: transition.AlgorithmScan,
		Direction: transition.DirectionTop,
		Budget:    99,
	})
	require.NoError(t, err)

	// Cursor sweeps 6 rows at 2 rows per frame regardless of budget.
	assert.Len(t, rec.frames, 3)
}

func TestSpecValidate(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		spec    transition.Spec
		wantErr error
	}{
		"valid crossfade without direction": {
			spec: transition.Spec{Algorithm: transition.AlgorithmCrossfade, Budget: 15},
		},
		"valid wipe": {
			spec: transition.Spec{
				Algorithm: transition.AlgorithmWipe,
				Direction: transition.DirectionLeft,
				Budget:    15,
			},
		},
		"unknown algorithm": {
			spec:    transition.Spec{Algorithm: "slide", Budget: 15},
			wantErr: transition.ErrUnknownAlgorithm,
		},
		"zero budget": {
			spec:    transition.Spec{Algorithm: transition.AlgorithmWipe, Direction: transition.DirectionTop},
			wantErr: transition.ErrInvalidBudget,
		},
		"wipe requires direction": {
			spec:    transition.Spec{Algorithm: transition.AlgorithmWipe, Budget: 15},
			wantErr: transition.ErrUnknownDirection,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			err := tc.spec.Validate()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	t.Parallel()

	assert.Equal(t, transition.DirectionBottom, transition.DirectionTop.Opposite())
	assert.Equal(t, transition.DirectionTop, transition.DirectionBottom.Opposite())
	assert.Equal(t, transition.DirectionRight, transition.DirectionLeft.Opposite())
	assert.Equal(t, transition.DirectionLeft, transition.DirectionRight.Opposite())
}

func TestParseAlgorithmAndDirection(t *testing.T) {
	t.Parallel()

	a, err := transition.ParseAlgorithm("Crossfade")
	require.NoError(t, err)
	assert.Equal(t, transition.AlgorithmCrossfade, a)

	_, err = transition.ParseAlgorithm("fade")
	require.ErrorIs(t, err, transition.ErrUnknownAlgorithm)

	d, err := transition.ParseDirection("TOP")
	require.NoError(t, err)
	assert.Equal(t, transition.DirectionTop, d)

	_, err = transition.ParseDirection("diagonal")
	require.ErrorIs(t, err, transition.ErrUnknownDirection)
}
