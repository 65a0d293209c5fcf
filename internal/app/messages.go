// Package app contains the bubbletea model for the widget.
package app

import "github.com/llehouerou/backdrop/internal/playback"

// PlaybackMessage is implemented by messages derived from playback service
// events. Every one of them refreshes the cached snapshot.
type PlaybackMessage interface {
	playbackMessage()
}

// ServiceStateChangedMsg is sent when the playback service state changes.
type ServiceStateChangedMsg struct {
	Previous, Current playback.State
}

func (ServiceStateChangedMsg) playbackMessage() {}

// ServiceTrackChangedMsg is sent when the current track changes.
type ServiceTrackChangedMsg struct {
	PreviousIndex int
	CurrentIndex  int
}

func (ServiceTrackChangedMsg) playbackMessage() {}

// ServicePlaylistChangedMsg is sent when the playlist is resolved or replaced.
type ServicePlaylistChangedMsg struct {
	Status playback.Status
}

func (ServicePlaylistChangedMsg) playbackMessage() {}

// ServicePositionChangedMsg is sent on every position update.
type ServicePositionChangedMsg struct{}

func (ServicePositionChangedMsg) playbackMessage() {}

// ServiceErrorMsg is sent when a play attempt is rejected.
type ServiceErrorMsg struct {
	Operation string
	Location  string
	Err       error
}

func (ServiceErrorMsg) playbackMessage() {}

// ServiceClosedMsg is sent when the playback service is closed.
type ServiceClosedMsg struct{}

// NoticeTimeoutMsg clears the notice it was scheduled for.
type NoticeTimeoutMsg struct {
	Version int
}
