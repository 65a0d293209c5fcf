package playback

import "time"

// StateChange is emitted when playback state changes.
type StateChange struct {
	Previous State
	Current  State
}

// TrackChange is emitted when the selected track changes or is re-rendered.
//
// Emitted by:
//   - playlist resolution (initial selection)
//   - Next/Previous
//   - the end of a track (auto-advance)
//   - SetPlaylist/SetSource
type TrackChange struct {
	PreviousIndex int
	Index         int
	Location      string
	Label         string
}

// PlaylistChange is emitted when the playlist is resolved or replaced.
type PlaylistChange struct {
	Tracks []string
	Index  int
	Status Status
}

// PositionChange is emitted on every time update from the player.
type PositionChange struct {
	Position time.Duration
}

// ErrorEvent is emitted when a play attempt is rejected. Rejections are
// expected (autoplay policy, unreachable source) and never fatal.
type ErrorEvent struct {
	Operation string // e.g., "resume", "toggle", "advance"
	Location  string
	Err       error
}
