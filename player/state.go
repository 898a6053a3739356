package player

// State is the authoritative phase of the engine. Exactly one state is
// active at a time.
type State int

const (
	// StateIdle loops the idle source while watching the request queue.
	StateIdle State = iota
	// StatePlaying loops a requested source.
	StatePlaying
	// StateTransitioning runs exactly one transition between two sources.
	StateTransitioning
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateTransitioning:
		return "transitioning"
	}

	return "unknown"
}
