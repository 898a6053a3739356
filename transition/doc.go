// Package transition bridges two frame sources with a bounded sequence of
// composite frames.
//
// Three algorithms are provided: [AlgorithmCrossfade] (per-pixel linear
// blend), [AlgorithmWipe] (a straight boundary sweeping in one of four
// directions), and [AlgorithmScan] (a cursor advancing at fixed speed with
// a brightened blend band at its edge, keeping both streams in motion).
// The compositing primitives [CrossfadeFrames], [WipeFrames], and
// [ScanFrames] operate on dimension-matched frames; an [Engine] drives them
// against live sources, normalizing both operands to the terminal size and
// pacing output at roughly 30 frames per second on live sinks.
package transition
