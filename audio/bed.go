package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// speakerBuffer sizes the speaker buffer; larger values survive scheduling
// hiccups at the cost of latency, which does not matter for a bed.
const speakerBuffer = 100 * time.Millisecond

// Bed is a WAV file looped forever through the system speaker.
type Bed struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
}

// OpenBed decodes the WAV file at path. The bed stays silent until
// [Bed.Start] is called.
func OpenBed(path string) (*Bed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening audio bed: %w", err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()

		return nil, fmt.Errorf("decoding audio bed: %w", err)
	}

	return &Bed{streamer: streamer, format: format}, nil
}

// Format returns the decoded stream format.
func (b *Bed) Format() beep.Format {
	return b.format
}

// Start initializes the speaker at the bed's native sample rate and begins
// the infinite loop. It must be called at most once per process; the
// speaker is a global resource.
func (b *Bed) Start() error {
	err := speaker.Init(b.format.SampleRate, b.format.SampleRate.N(speakerBuffer))
	if err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}

	b.ctrl = &beep.Ctrl{Streamer: beep.Loop(-1, b.streamer)}
	speaker.Play(b.ctrl)

	return nil
}

// SetPaused pauses or resumes the loop without losing position.
func (b *Bed) SetPaused(paused bool) {
	if b.ctrl == nil {
		return
	}

	speaker.Lock()
	b.ctrl.Paused = paused
	speaker.Unlock()
}

// Close stops playback and releases the decoder.
func (b *Bed) Close() error {
	if b.ctrl != nil {
		speaker.Clear()
	}

	err := b.streamer.Close()
	if err != nil {
		return fmt.Errorf("closing audio bed: %w", err)
	}

	return nil
}
