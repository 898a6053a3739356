package transition

import (
	"fmt"
	"image"
	"time"

	"go.jacobcolvin.com/asciiplay/ascii"
	"go.jacobcolvin.com/asciiplay/sink"
	"go.jacobcolvin.com/asciiplay/source"
)

// defaultFrameDelay paces transition output at roughly 30 fps on live
// sinks.
const defaultFrameDelay = 33 * time.Millisecond

// defaultScanSpeed is the scan cursor advance in rows (or columns) per
// emitted frame. Deliberately independent of the frame budget.
const defaultScanSpeed = 2

// Engine runs transitions between two frame sources, writing composites to
// a [sink.Sink].
type Engine struct {
	sink      sink.Sink
	delay     time.Duration
	scanSpeed int
}

// Option configures an [Engine].
type Option func(*Engine)

// WithFrameDelay overrides the per-composite delay applied on live sinks.
func WithFrameDelay(d time.Duration) Option {
	return func(e *Engine) { e.delay = d }
}

// WithScanSpeed overrides the scan cursor advance per emitted frame.
// Values less than 1 are clamped to 1.
func WithScanSpeed(n int) Option {
	return func(e *Engine) { e.scanSpeed = max(n, 1) }
}

// NewEngine creates a transition [Engine] writing to s.
func NewEngine(s sink.Sink, opts ...Option) *Engine {
	e := &Engine{
		sink:      s,
		delay:     defaultFrameDelay,
		scanSpeed: defaultScanSpeed,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run executes one transition between the outgoing and incoming sources at
// the shared terminal dimensions. It returns the final composite frame, or
// whichever raw frame was still available if a source was exhausted
// mid-sequence (favoring the incoming source), or nil if both ran dry.
func (e *Engine) Run(outgoing, incoming source.Source, dims sink.Dimensions, spec Spec) (*image.RGBA, error) {
	err := spec.Validate()
	if err != nil {
		return nil, fmt.Errorf("running transition: %w", err)
	}

	switch spec.Algorithm {
	case AlgorithmCrossfade:
		return e.crossfade(outgoing, incoming, dims, spec.Budget)
	case AlgorithmWipe:
		return e.wipe(outgoing, incoming, dims, spec)
	case AlgorithmScan:
		return e.scan(outgoing, incoming, dims, spec.Direction)
	}

	return nil, fmt.Errorf("running transition: %w: %q", ErrUnknownAlgorithm, spec.Algorithm)
}

func (e *Engine) crossfade(outgoing, incoming source.Source, dims sink.Dimensions, budget int) (*image.RGBA, error) {
	var last *image.RGBA

	for i := range budget {
		alpha := float64(i) / float64(budget)

		r1, r2, done := e.readPair(outgoing, incoming, dims)
		if done != nil {
			return done.frame, nil
		}

		last = CrossfadeFrames(r1, r2, alpha)

		err := e.emit(last, dims)
		if err != nil {
			return nil, err
		}
	}

	return last, nil
}

func (e *Engine) wipe(outgoing, incoming source.Source, dims sink.Dimensions, spec Spec) (*image.RGBA, error) {
	var last *image.RGBA

	for i := range spec.Budget {
		progress := float64(i) / float64(spec.Budget)

		r1, r2, done := e.readPair(outgoing, incoming, dims)
		if done != nil {
			return done.frame, nil
		}

		last = WipeFrames(r1, r2, spec.Direction, progress)

		err := e.emit(last, dims)
		if err != nil {
			return nil, err
		}
	}

	return last, nil
}

// scan sweeps the full frame at fixed cursor speed, re-reading both sources
// every emitted frame so motion stays live on both sides of the band.
func (e *Engine) scan(outgoing, incoming source.Source, dims sink.Dimensions, dir Direction) (*image.RGBA, error) {
	r1, r2, done := e.readPair(outgoing, incoming, dims)
	if done != nil {
		return done.frame, nil
	}

	w := r1.Rect.Dx()
	h := r1.Rect.Dy()

	total := h
	if dir == DirectionLeft || dir == DirectionRight {
		total = w
	}

	for cursor := 0; cursor < total; cursor += e.scanSpeed {
		// Keep both streams in motion; retain the previous frame when a
		// source runs dry mid-sweep.
		if f, ok := outgoing.Read(); ok {
			r1 = ascii.Fit(ascii.Resize(f, dims.Rows), w, h)
		}

		if f, ok := incoming.Read(); ok {
			r2 = ascii.Fit(ascii.Resize(f, dims.Rows), w, h)
		}

		comp := ScanFrames(r1, r2, dir, cursor)

		err := e.emit(comp, dims)
		if err != nil {
			return nil, err
		}
	}

	return r2, nil
}

// earlyResult carries the frame to surface when a source was exhausted
// before the sequence completed.
type earlyResult struct {
	frame *image.RGBA
}

// readPair reads one frame from each source and dimension-normalizes them.
// On exhaustion it returns a non-nil earlyResult holding the remaining
// frame resized to the terminal (favoring the incoming source), or nil if
// both are dry.
func (e *Engine) readPair(outgoing, incoming source.Source, dims sink.Dimensions) (r1, r2 *image.RGBA, done *earlyResult) {
	f1, ok1 := outgoing.Read()
	f2, ok2 := incoming.Read()

	if !ok1 {
		if ok2 {
			return nil, nil, &earlyResult{frame: ascii.Resize(f2, dims.Rows)}
		}

		return nil, nil, &earlyResult{}
	}

	if !ok2 {
		return nil, nil, &earlyResult{frame: ascii.Resize(f1, dims.Rows)}
	}

	r1 = ascii.Resize(f1, dims.Rows)
	r2 = ascii.Resize(f2, dims.Rows)
	// Odd source aspect ratios can still disagree after the row-based
	// resize; re-fit the incoming frame to the outgoing shape.
	r2 = ascii.Fit(r2, r1.Rect.Dx(), r1.Rect.Dy())

	return r1, r2, nil
}

func (e *Engine) emit(frame *image.RGBA, dims sink.Dimensions) error {
	err := e.sink.WriteFrame(frame, dims)
	if err != nil {
		return fmt.Errorf("emitting composite: %w", err)
	}

	if e.sink.Live() {
		time.Sleep(e.delay)
	}

	return nil
}
