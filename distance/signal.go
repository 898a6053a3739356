package distance

import (
	"encoding/binary"
	"io"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// DefaultWindowSize is the sliding-window capacity for smoothing.
	DefaultWindowSize = 10
	// DefaultCeiling is the validity ceiling; readings above it are noise
	// from the sensor's unbounded range and are discarded.
	DefaultCeiling = 700
	// defaultLatest is published before any valid sample arrives. It sits
	// in the idle band so a silent sensor keeps the player idling.
	defaultLatest = 100

	defaultRetryDelay = 100 * time.Millisecond
)

// Signal samples a distance transport in the background and publishes a
// smoothed value for non-blocking reads.
type Signal struct {
	r          io.Reader
	logger     *slog.Logger
	ceiling    float64
	windowSize int
	retryDelay time.Duration

	mu     sync.Mutex
	window []float64
	latest float64

	running atomic.Bool
	done    chan struct{}
}

// SignalOption configures a [Signal].
type SignalOption func(*Signal)

// WithCeiling overrides the validity ceiling.
func WithCeiling(c float64) SignalOption {
	return func(s *Signal) { s.ceiling = c }
}

// WithWindowSize overrides the sliding-window capacity.
// Values less than 1 are clamped to 1.
func WithWindowSize(n int) SignalOption {
	return func(s *Signal) { s.windowSize = max(n, 1) }
}

// WithLogger sets the logger for transport errors.
func WithLogger(logger *slog.Logger) SignalOption {
	return func(s *Signal) { s.logger = logger }
}

// WithRetryDelay overrides the backoff applied after a transport read
// error.
func WithRetryDelay(d time.Duration) SignalOption {
	return func(s *Signal) { s.retryDelay = d }
}

// NewSignal creates a [Signal] over the given transport. The transport is
// not closed by the Signal; closing it is also how a caller unblocks a
// pending read during shutdown.
//
// Start and Stop manage the sampling loop's lifecycle and must be called
// from a single owning goroutine; Latest is safe from anywhere.
func NewSignal(r io.Reader, opts ...SignalOption) *Signal {
	s := &Signal{
		r:          r,
		logger:     slog.Default(),
		ceiling:    DefaultCeiling,
		windowSize: DefaultWindowSize,
		retryDelay: defaultRetryDelay,
		latest:     defaultLatest,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start launches the background sampling loop. It returns immediately.
// A stopped Signal may be started again; each run owns a fresh completion
// channel, so Stop always joins the run it stopped.
func (s *Signal) Start() {
	if !s.running.CompareAndSwap(false, true) {
		return
	}

	s.done = make(chan struct{})

	go s.loop()
}

// Stop requests the sampling loop to exit and waits for it. The stop flag
// is observed at the next loop iteration; close the transport first if the
// loop may be blocked in a read.
func (s *Signal) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}

	<-s.done
}

// Latest returns the most recently published smoothed distance. It never
// blocks beyond the short publish lock and may be stale by up to one
// sampling period.
func (s *Signal) Latest() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.latest
}

func (s *Signal) loop() {
	defer close(s.done)

	for s.running.Load() {
		v, err := s.readSample()
		if err != nil {
			s.logger.Warn("distance read failed", "error", err)
			time.Sleep(s.retryDelay)

			continue
		}

		s.ingest(v)
	}
}

// readSample reads one 4-byte little-endian IEEE-754 float from the
// transport.
func (s *Signal) readSample() (float64, error) {
	var buf [4]byte

	_, err := io.ReadFull(s.r, buf[:])
	if err != nil {
		return 0, err
	}

	return float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[:]))), nil
}

// ingest admits a sample to the sliding window if it passes the validity
// filter and republishes the window mean. It reports whether the sample
// was admitted.
func (s *Signal) ingest(v float64) bool {
	if v <= 0 || v > s.ceiling {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.window = append(s.window, v)
	if len(s.window) > s.windowSize {
		s.window = s.window[1:]
	}

	var sum float64
	for _, w := range s.window {
		sum += w
	}

	s.latest = sum / float64(len(s.window))

	return true
}
