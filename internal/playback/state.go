package playback

// State represents the playback state shown to the user.
type State int

const (
	StateStopped State = iota // nothing playable: still resolving or no tracks
	StatePlaying
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if playback is active (playing or paused).
func (s State) IsActive() bool {
	return s == StatePlaying || s == StatePaused
}

// Status is the lifecycle of the resolved playlist.
type Status int

const (
	StatusLoading  Status = iota // candidates are being probed
	StatusReady                  // at least one track, controls enabled
	StatusNoTracks               // resolution produced nothing, controls disabled
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "Loading"
	case StatusReady:
		return "Ready"
	case StatusNoTracks:
		return "NoTracks"
	default:
		return "Unknown"
	}
}
