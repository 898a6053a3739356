// Package distance maintains a smoothed reading from an external distance
// sensor and maps it onto playback selections.
//
// A [Signal] runs an independent sampling loop over a binary transport
// yielding 4-byte little-endian IEEE-754 floats. Invalid samples (zero,
// negative, or above the validity ceiling) never enter the smoothing
// window; the published value is the arithmetic mean of a fixed-capacity
// sliding window and is read without blocking via [Signal.Latest].
//
// A [Table] is an ordered list of (upper bound, clip) pairs translating the
// continuous smoothed value into discrete playback selections.
package distance
