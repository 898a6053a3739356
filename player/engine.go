package player

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.jacobcolvin.com/asciiplay/ascii"
	"go.jacobcolvin.com/asciiplay/distance"
	"go.jacobcolvin.com/asciiplay/sink"
	"go.jacobcolvin.com/asciiplay/source"
	"go.jacobcolvin.com/asciiplay/transition"
)

// ErrAlreadyRunning indicates Start was called on a running engine.
var ErrAlreadyRunning = errors.New("player already running")

// Opener opens a frame source by path. It exists so tests can substitute
// in-memory sources for ffmpeg-backed ones.
type Opener func(path string) (source.Source, error)

// Engine is the playback state machine. The render loop owns the current
// source; all cross-goroutine communication goes through the request queue
// and the running flag.
type Engine struct {
	idlePath string
	open     Opener
	sink     sink.Sink
	trans    *transition.Engine
	spec     transition.Spec
	logger   *slog.Logger
	signal   *distance.Signal
	bands    distance.Table

	queue   requestQueue
	running atomic.Bool

	mu      sync.Mutex
	state   State
	current string
}

// Option configures an [Engine].
type Option func(*Engine)

// WithOpener overrides how source paths are opened.
func WithOpener(open Opener) Option {
	return func(e *Engine) { e.open = open }
}

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithTransitionEngine overrides the transition engine. The default writes
// to the same sink as the render loop.
func WithTransitionEngine(t *transition.Engine) Option {
	return func(e *Engine) { e.trans = t }
}

// WithDistance attaches a sensor signal and the band table that maps its
// smoothed readings to clips. Each rendered frame re-checks the mapping; a
// band change enqueues an implicit request, and falling outside every band
// sends the engine back to idle.
func WithDistance(sig *distance.Signal, bands distance.Table) Option {
	return func(e *Engine) {
		e.signal = sig
		e.bands = bands
	}
}

// NewEngine creates a player [Engine] that idles on idlePath, writes to s,
// and bridges clip changes with spec.
func NewEngine(idlePath string, s sink.Sink, spec transition.Spec, opts ...Option) *Engine {
	e := &Engine{
		idlePath: idlePath,
		open:     source.Open,
		sink:     s,
		spec:     spec,
		logger:   slog.New(slog.DiscardHandler),
		state:    StateIdle,
		current:  idlePath,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.trans == nil {
		e.trans = transition.NewEngine(s)
	}

	return e
}

// Enqueue queues a playback request for path. Safe to call from any
// goroutine.
func (e *Engine) Enqueue(path string) {
	e.queue.push(Request{Path: path})
}

// EnqueueIdle queues a return to the idle loop.
func (e *Engine) EnqueueIdle() {
	e.queue.push(ReturnToIdle())
}

// Pending reports the number of queued requests.
func (e *Engine) Pending() int {
	return e.queue.len()
}

// State returns the current engine state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

// CurrentPath returns the path of the source currently on screen.
func (e *Engine) CurrentPath() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.current
}

func (e *Engine) setState(st State, path string) {
	e.mu.Lock()
	e.state = st
	e.current = path
	e.mu.Unlock()

	e.logger.Debug("player state", "state", st, "path", path)
}

// Stop asks the render loop to exit after the current frame. Safe to call
// from any goroutine; idempotent.
func (e *Engine) Stop() {
	e.running.Store(false)
}

// Start runs the render loop until [Engine.Stop] is called or the sink
// fails. It blocks the calling goroutine. Failure to open the idle source
// is the only open error that is returned rather than logged; every later
// open failure drops the offending request and playback continues.
func (e *Engine) Start() error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer e.running.Store(false)

	cur, err := e.open(e.idlePath)
	if err != nil {
		return fmt.Errorf("opening idle source: %w", err)
	}

	defer func() {
		closeSource(cur, e.logger)

		err := e.sink.Clear()
		if err != nil {
			e.logger.Warn("clearing sink on shutdown", "error", err)
		}
	}()

	e.setState(StateIdle, e.idlePath)

	for e.running.Load() {
		// Terminal size is sampled per segment, never cached across them.
		dims, err := e.sink.Size()
		if err != nil {
			return fmt.Errorf("sampling sink size: %w", err)
		}

		cur, err = e.playSegment(cur, dims)
		if err != nil {
			return err
		}
	}

	return nil
}

// playSegment renders frames from cur until a request changes the source,
// the source hits end of stream, or the engine is stopped. It returns the
// source that should continue playing.
func (e *Engine) playSegment(cur source.Source, dims sink.Dimensions) (source.Source, error) {
	interval := frameInterval(cur.FPS())

	for e.running.Load() {
		start := time.Now()

		req, ok := e.nextRequest()
		if ok {
			return e.handleRequest(cur, req, dims), nil
		}

		frame, ok := cur.Read()
		if !ok {
			if e.State() == StateIdle {
				// The idle clip loops forever without a transition.
				cur.Seek(0)

				continue
			}

			return e.selfLoop(cur, dims), nil
		}

		err := e.render(frame, dims)
		if err != nil {
			return cur, err
		}

		e.pace(start, interval)
	}

	return cur, nil
}

// nextRequest pops an explicit request, falling back to the distance
// mapping when the queue is empty.
func (e *Engine) nextRequest() (Request, bool) {
	r, ok := e.queue.tryPop()
	if ok {
		return r, true
	}

	if e.signal == nil || len(e.bands) == 0 {
		return Request{}, false
	}

	clip, ok := e.bands.Select(e.signal.Latest())
	if !ok {
		if e.CurrentPath() != e.idlePath {
			return ReturnToIdle(), true
		}

		return Request{}, false
	}

	if clip != e.CurrentPath() {
		return Request{Path: clip}, true
	}

	return Request{}, false
}

// handleRequest resolves a request into a (possibly unchanged) current
// source. Open failures drop the request; playback stays on cur.
func (e *Engine) handleRequest(cur source.Source, req Request, dims sink.Dimensions) source.Source {
	target := req.Path
	spec := e.spec

	if req.ToIdle {
		target = e.idlePath
		// Leaving a clip reverses the entry direction.
		spec.Direction = spec.Direction.Opposite()
	}

	if target == e.CurrentPath() {
		return cur
	}

	// Open the destination before touching the current source so a failed
	// open leaves playback undisturbed.
	next, err := e.open(target)
	if err != nil {
		e.logger.Error("opening requested source", "path", target, "error", err)

		return cur
	}

	e.transition(cur, next, dims, spec)
	closeSource(cur, e.logger)

	state := StatePlaying
	if target == e.idlePath {
		state = StateIdle
	}
	e.setState(state, target)

	return next
}

// selfLoop bridges a finished clip back to its own first frame with a wipe
// against a second, independently opened handle. On reopen failure it
// degrades to a plain seek-to-start loop.
func (e *Engine) selfLoop(cur source.Source, dims sink.Dimensions) source.Source {
	path := e.CurrentPath()

	fresh, err := e.open(path)
	if err != nil {
		e.logger.Error("reopening source for loop", "path", path, "error", err)
		cur.Seek(0)

		return cur
	}

	spec := transition.Spec{
		Algorithm: transition.AlgorithmWipe,
		Direction: e.spec.Direction,
		Budget:    e.spec.Budget,
	}
	if spec.Direction == "" {
		// Crossfade configs carry no direction; the loop wipe needs one.
		spec.Direction = transition.DirectionTop
	}

	// Rewind into the tail so the wipe has outgoing frames to consume.
	cur.Seek(max(cur.FrameCount()-spec.Budget, 0))

	e.transition(cur, fresh, dims, spec)
	closeSource(cur, e.logger)

	e.setState(StatePlaying, path)

	return fresh
}

// transition runs one transition invocation, entering and leaving
// StateTransitioning around it. When too few outgoing frames remain for
// the budget, the transition is skipped entirely and the change becomes a
// direct cut.
func (e *Engine) transition(outgoing, incoming source.Source, dims sink.Dimensions, spec transition.Spec) {
	e.setState(StateTransitioning, e.CurrentPath())

	remaining := outgoing.FrameCount() - outgoing.Pos()
	if remaining < spec.Budget {
		e.logger.Debug("cutting directly", "remaining", remaining, "budget", spec.Budget)

		return
	}

	// Transitions sample the terminal fresh; a resize mid-segment must not
	// distort the composite.
	if d, err := e.sink.Size(); err == nil {
		dims = d
	}

	_, err := e.trans.Run(outgoing, incoming, dims, spec)
	if err != nil {
		e.logger.Error("running transition", "algorithm", spec.Algorithm, "error", err)
	}
}

func (e *Engine) render(frame *image.RGBA, dims sink.Dimensions) error {
	err := e.sink.WriteFrame(ascii.Resize(frame, dims.Rows), dims)
	if err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}

	return nil
}

// pace sleeps out the remainder of the frame interval on live sinks.
// Overlong frames are never compensated for; the clip simply plays slower.
func (e *Engine) pace(start time.Time, interval time.Duration) {
	if !e.sink.Live() {
		return
	}

	if rem := interval - time.Since(start); rem > 0 {
		time.Sleep(rem)
	}
}

func frameInterval(fps float64) time.Duration {
	if fps <= 0 {
		fps = source.FallbackFPS
	}

	return time.Duration(float64(time.Second) / fps)
}

func closeSource(s source.Source, logger *slog.Logger) {
	err := s.Close()
	if err != nil {
		logger.Warn("closing source", "error", err)
	}
}
