package app

import (
	"github.com/llehouerou/backdrop/internal/config"
	"github.com/llehouerou/backdrop/internal/notify"
)

// WithNotifier enables now-playing desktop notifications.
func (m Model) WithNotifier(n notify.Notifier, cfg config.NotificationsConfig) Model {
	m.notifier = n
	m.notifyCfg = cfg
	return m
}

// currentLocation returns the location of the current track, or "".
func (m Model) currentLocation() string {
	if m.snap.Index < 0 || m.snap.Index >= len(m.snap.Playlist) {
		return ""
	}
	return m.snap.Playlist[m.snap.Index]
}

// sendNowPlayingNotification announces the current track once per track
// change. Resuming the same track after a pause stays quiet.
func (m *Model) sendNowPlayingNotification() {
	if m.notifier == nil || !m.notifyCfg.NotificationsEnabled() {
		return
	}
	loc := m.currentLocation()
	if loc == "" || loc == m.lastNotified {
		return
	}

	track := notify.Track{Location: loc, Label: m.snap.Label}
	if m.info != nil && m.info.Location == loc {
		if m.info.Title != "" {
			track.Label = m.info.Title
		}
		track.Artist = m.info.Artist
		track.Album = m.info.Album
	}

	n := notify.NowPlaying(track, m.notifyCfg.GetTimeout(), m.notifyCfg.AlbumArtEnabled())
	n.ReplacesID = m.notifyID
	id, err := m.notifier.Notify(n)
	if err != nil {
		return
	}
	m.notifyID = id
	m.lastNotified = loc
}
