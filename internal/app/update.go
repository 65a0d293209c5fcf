package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/backdrop/internal/keymap"
	"github.com/llehouerou/backdrop/internal/playback"
	"github.com/llehouerou/backdrop/internal/player"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ServiceErrorMsg:
		m.refresh()
		m.noticeVersion++
		m.Notice = formatNotice(msg.Err)
		return m, tea.Batch(m.WatchServiceEvents(), NoticeTimeoutCmd(m.noticeVersion))

	case PlaybackMessage:
		m.refresh()
		if sc, ok := msg.(ServiceStateChangedMsg); ok && sc.Current == playback.StatePlaying {
			m.sendNowPlayingNotification()
		}
		return m, m.WatchServiceEvents()

	case NoticeTimeoutMsg:
		if msg.Version == m.noticeVersion {
			m.Notice = ""
		}
		return m, nil

	case ServiceClosedMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.Keys.Resolve(msg)
	if action == "" {
		return m, nil
	}

	// Any key press counts as a user gesture for the autoplay policy.
	m.Service.Player().NotifyInteraction()

	// Commands fail only while the controls are disabled, which the bar
	// already shows.
	switch action {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case keymap.ActionPrevTrack:
		_ = m.Service.Previous()
	case keymap.ActionNextTrack:
		_ = m.Service.Next()
	case keymap.ActionPlayPause:
		_ = m.Service.Toggle()
	}

	m.refresh()
	return m, nil
}

func formatNotice(err error) string {
	switch {
	case errors.Is(err, player.ErrAutoplayBlocked):
		return "press space to start playback"
	case errors.Is(err, player.ErrUnsupportedFormat):
		return "unsupported format"
	default:
		return fmt.Sprintf("cannot play: %v", err)
	}
}
