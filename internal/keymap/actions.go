// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Playback actions
	ActionPlayPause Action = "play_pause"
	ActionNextTrack Action = "next_track"
	ActionPrevTrack Action = "prev_track"
)
