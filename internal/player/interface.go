// internal/player/interface.go
package player

import "time"

// Interface is the playback capability the controller drives: a single
// media element with a source, a play/pause switch, a seekable position and
// a stream of signals.
type Interface interface {
	// Load stops current audio and selects a new source. Nothing is opened
	// until Play.
	Load(location string) error
	// LoadID identifies the current source; every Load changes it. Events
	// carry the LoadID they were emitted under.
	LoadID() uint64
	// Play starts or resumes audio. It may block while the source is opened
	// and may be rejected; a rejected Play leaves the player paused.
	Play() error
	Pause()
	Paused() bool
	State() State
	Source() string
	Position() time.Duration
	SetPosition(d time.Duration)
	Duration() time.Duration
	TrackInfo() *TrackInfo
	// NotifyInteraction records a user gesture, lifting the autoplay policy.
	NotifyInteraction()
	SetVolume(level float64)
	Volume() float64
	// Events delivers time updates, pause, play and ended signals. The
	// channel is never closed.
	Events() <-chan Event
	Close() error
}

// Verify Player implements Interface at compile time.
var _ Interface = (*Player)(nil)
