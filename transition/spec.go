package transition

import (
	"errors"
	"fmt"
	"strings"
)

// Algorithm selects a transition compositing algorithm.
type Algorithm string

const (
	// AlgorithmCrossfade blends the two sources per pixel.
	AlgorithmCrossfade Algorithm = "crossfade"
	// AlgorithmWipe sweeps a straight boundary across the frame.
	AlgorithmWipe Algorithm = "wipe"
	// AlgorithmScan advances a brightened scan band at fixed speed.
	AlgorithmScan Algorithm = "scan"
)

// Direction is the sweep direction for wipe and scan transitions.
type Direction string

const (
	// DirectionTop sweeps from the top edge downward.
	DirectionTop Direction = "top"
	// DirectionBottom sweeps from the bottom edge upward.
	DirectionBottom Direction = "bottom"
	// DirectionLeft sweeps from the left edge rightward.
	DirectionLeft Direction = "left"
	// DirectionRight sweeps from the right edge leftward.
	DirectionRight Direction = "right"
)

var (
	// ErrUnknownAlgorithm indicates an unrecognized algorithm string.
	ErrUnknownAlgorithm = errors.New("unknown transition algorithm")
	// ErrUnknownDirection indicates an unrecognized direction string.
	ErrUnknownDirection = errors.New("unknown transition direction")
	// ErrInvalidBudget indicates a non-positive frame budget.
	ErrInvalidBudget = errors.New("transition budget must be positive")
)

// ParseAlgorithm parses an algorithm string.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(s)); a {
	case AlgorithmCrossfade, AlgorithmWipe, AlgorithmScan:
		return a, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// ParseDirection parses a direction string.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(s)); d {
	case DirectionTop, DirectionBottom, DirectionLeft, DirectionRight:
		return d, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Opposite returns the reverse sweep direction. A return-to-idle transition
// uses the direction opposite to the one that entered playback.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionTop:
		return DirectionBottom
	case DirectionBottom:
		return DirectionTop
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}

	return d
}

// Spec describes one transition: the algorithm, the sweep direction
// (meaningful for wipe and scan), and the frame-count budget.
type Spec struct {
	Algorithm Algorithm
	Direction Direction
	Budget    int
}

// Validate checks the spec's invariants.
func (s Spec) Validate() error {
	switch s.Algorithm {
	case AlgorithmCrossfade, AlgorithmWipe, AlgorithmScan:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s.Algorithm)
	}

	if s.Budget <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBudget, s.Budget)
	}

	if s.Algorithm == AlgorithmCrossfade {
		return nil
	}

	switch s.Direction {
	case DirectionTop, DirectionBottom, DirectionLeft, DirectionRight:
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownDirection, s.Direction)
}
