// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// State operations
	OpStateOpen Op = "open playback state"
	OpStateSave Op = "save playback state"

	// Playlist operations
	OpPlaylistResolve Op = "resolve playlist"
	OpPlaylistReplace Op = "replace playlist"

	// Playback operations
	OpPlaybackStart Op = "start playback"
	OpSourceLoad    Op = "load track"

	// Host surfaces
	OpMprisStart Op = "start MPRIS server"

	// Initialization
	OpConfigLoad Op = "load configuration"
	OpLogOpen    Op = "open log file"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
