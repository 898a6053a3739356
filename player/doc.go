// Package player drives the playback state machine.
//
// An [Engine] idles on a looping clip, consumes queued playback requests in
// FIFO order, and bridges clip changes with transitions. It is in exactly
// one of three states: [StateIdle], [StatePlaying], or
// [StateTransitioning]. The render loop is strictly sequential and owns
// the currently open source; requests arrive from any goroutine via
// [Engine.Enqueue] and [Engine.EnqueueIdle], and an optional distance
// signal turns smoothed sensor readings into implicit requests through a
// [distance.Table].
//
// Frame pacing is best-effort: the loop sleeps only when a frame finished
// early, so a slow terminal degrades the frame rate but never blocks the
// machine.
package player
