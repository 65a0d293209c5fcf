package playback

import (
	"context"
	"errors"
	"time"

	"github.com/llehouerou/backdrop/internal/player"
)

var (
	// ErrNotReady is returned by commands issued before the playlist is resolved.
	ErrNotReady = errors.New("playlist not resolved yet")
	// ErrNoTracks is returned by commands while the playlist is empty.
	ErrNoTracks = errors.New("no tracks")
	// ErrEmptyPlaylist rejects replacing the playlist with nothing.
	ErrEmptyPlaylist = errors.New("empty playlist")
	// ErrEmptyLocation rejects replacing the source with an empty location.
	ErrEmptyLocation = errors.New("empty location")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("playback service closed")
)

// Service is the control surface handed to the host: the terminal UI and
// the MPRIS adapter both drive playback exclusively through it.
type Service interface {
	// Playback control
	Play() error
	Pause() error
	Toggle() error
	Next() error
	Previous() error

	// Playlist replacement
	SetPlaylist(locations []string) error
	SetSource(location string) error

	// State queries
	Snapshot() Snapshot
	Player() player.Interface // Direct player access for advanced host use

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}

// Resolver narrows candidates down to the playable playlist.
type Resolver interface {
	Resolve(ctx context.Context, candidates []string) []string
}

// Snapshot is a copy of the controller state for rendering.
type Snapshot struct {
	Status   Status
	State    State
	Playlist []string
	Index    int
	Label    string
	// Enabled is the persisted resume-on-start flag.
	Enabled bool
	// Time is the persisted elapsed seconds.
	Time     float64
	Position time.Duration
	Duration time.Duration
}

// ControlsEnabled reports whether prev/play/next should accept input.
func (s Snapshot) ControlsEnabled() bool {
	return s.Status == StatusReady
}

// Playing reports whether audio is advancing.
func (s Snapshot) Playing() bool {
	return s.State == StatePlaying
}
