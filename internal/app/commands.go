// internal/app/commands.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const noticeDuration = 3 * time.Second

// WatchServiceEvents returns a command that waits for playback service events.
// It listens on all subscription channels and converts events to tea.Msg.
// Update re-issues it after every service message.
func (m Model) WatchServiceEvents() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	sub := m.sub
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return ServiceStateChangedMsg{Previous: e.Previous, Current: e.Current}
		case e := <-sub.TrackChanged:
			return ServiceTrackChangedMsg{PreviousIndex: e.PreviousIndex, CurrentIndex: e.Index}
		case e := <-sub.PlaylistChanged:
			return ServicePlaylistChangedMsg{Status: e.Status}
		case <-sub.PositionChanged:
			return ServicePositionChangedMsg{}
		case e := <-sub.Error:
			return ServiceErrorMsg{Operation: e.Operation, Location: e.Location, Err: e.Err}
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

// NoticeTimeoutCmd returns a command that clears a notice after a few seconds.
func NoticeTimeoutCmd(version int) tea.Cmd {
	return tea.Tick(noticeDuration, func(_ time.Time) tea.Msg {
		return NoticeTimeoutMsg{Version: version}
	})
}
