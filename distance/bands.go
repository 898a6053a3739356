package distance

import (
	"errors"
	"fmt"
)

// Band maps distances below an upper bound to a clip.
type Band struct {
	Below float64 `yaml:"below" json:"below"`
	Play  string  `yaml:"play"  json:"play"`
}

// Table is an ordered list of bands with ascending upper bounds. A
// distance selects the first band whose bound exceeds it; a distance
// beyond every bound selects nothing, which callers treat as the idle
// state.
type Table []Band

var (
	// ErrEmptyTable indicates a band table with no entries.
	ErrEmptyTable = errors.New("band table is empty")
	// ErrUnorderedTable indicates bounds that are not strictly ascending.
	ErrUnorderedTable = errors.New("band table bounds must be strictly ascending")
	// ErrEmptyClip indicates a band without a clip path.
	ErrEmptyClip = errors.New("band table entry has no clip")
)

// Validate checks the table's invariants.
func (t Table) Validate() error {
	if len(t) == 0 {
		return ErrEmptyTable
	}

	prev := 0.0

	for i, b := range t {
		if b.Below <= prev {
			return fmt.Errorf("%w: entry %d", ErrUnorderedTable, i)
		}

		if b.Play == "" {
			return fmt.Errorf("%w: entry %d", ErrEmptyClip, i)
		}

		prev = b.Below
	}

	return nil
}

// Select returns the clip for the first band whose bound exceeds d, or
// false if d is beyond every band.
func (t Table) Select(d float64) (string, bool) {
	for _, b := range t {
		if d < b.Below {
			return b.Play, true
		}
	}

	return "", false
}
