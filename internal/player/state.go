// internal/player/state.go
package player

// State represents the playback state machine.
//
//	┌──────────┐    Play      ┌──────────┐
//	│  Stopped │ ────────────▶│  Playing │
//	└──────────┘              └──────────┘
//	     ▲                       │    ▲
//	     │ Load            Pause │    │ Play
//	     │                 / end ▼    │
//	     │                    ┌──────────┐
//	     └────────────────────│  Paused  │
//	                          └──────────┘
//
// Load moves any state to Stopped (source selected, nothing opened).
// Reaching the end of a track moves Playing to Paused; a later Play
// restarts the track from the beginning.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a source is open (Playing or Paused).
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
