//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"

	"github.com/charmbracelet/log"
	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/backdrop/internal/location"
	"github.com/llehouerou/backdrop/internal/logging"
	"github.com/llehouerou/backdrop/internal/playback"
)

// Adapter connects the playback service to MPRIS over D-Bus.
type Adapter struct {
	service playback.Service
	server  *server.Server
}

// New creates and starts a new MPRIS adapter.
func New(service playback.Service, logger *log.Logger) (*Adapter, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	logger = logger.With("component", "mpris")
	a := &Adapter{service: service}

	rootAdapter := &rootAdapter{}
	playerAdapter := &playerAdapter{service: service}

	a.server = server.NewServer("backdrop", rootAdapter, playerAdapter)

	// Start the server in background
	go func() {
		if err := a.server.Listen(); err != nil {
			logger.Warn("mpris server stopped", "err", err)
		}
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Backdrop", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file", "http", "https"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/mp3", "audio/flac", "audio/wav"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and optional interfaces.
type playerAdapter struct {
	service playback.Service
}

func (p *playerAdapter) Next() error {
	return p.service.Next()
}

func (p *playerAdapter) Previous() error {
	return p.service.Previous()
}

func (p *playerAdapter) Pause() error {
	return p.service.Pause()
}

func (p *playerAdapter) PlayPause() error {
	return p.service.Toggle()
}

// Stop pauses: the widget has no stopped state once tracks are loaded.
func (p *playerAdapter) Stop() error {
	return p.service.Pause()
}

func (p *playerAdapter) Play() error {
	return p.service.Play()
}

func (p *playerAdapter) Seek(_ types.Microseconds) error {
	return nil // Not supported
}

func (p *playerAdapter) SetPosition(_ string, _ types.Microseconds) error {
	return nil // Not supported
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(uri string) error {
	return p.service.SetSource(uri)
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.service.Snapshot().State {
	case playback.StatePlaying:
		return types.PlaybackStatusPlaying, nil
	case playback.StatePaused:
		return types.PlaybackStatusPaused, nil
	case playback.StateStopped:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	snap := p.service.Snapshot()
	if !snap.ControlsEnabled() {
		return types.Metadata{}, nil
	}
	loc := snap.Playlist[snap.Index]

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(loc)),
		Length:  types.Microseconds(snap.Duration.Microseconds()),
		Title:   snap.Label,
	}

	if info := p.service.Player().TrackInfo(); info != nil && info.Location == loc {
		if info.Title != "" {
			meta.Title = info.Title
		}
		if info.Artist != "" {
			meta.Artist = []string{info.Artist}
		}
		meta.Album = info.Album
		meta.TrackNumber = info.Track
		if meta.Length == 0 {
			meta.Length = types.Microseconds(info.Duration.Microseconds())
		}
	}

	if artPath := FindAlbumArt(loc); artPath != "" {
		meta.ArtUrl = "file://" + artPath
	}

	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.service.Player().Volume(), nil
}

func (p *playerAdapter) SetVolume(level float64) error {
	p.service.Player().SetVolume(level)
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.service.Snapshot().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	return p.service.Snapshot().ControlsEnabled(), nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.service.Snapshot().ControlsEnabled(), nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.service.Snapshot().ControlsEnabled(), nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.service.Snapshot().ControlsEnabled(), nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return false, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
// The playlist always wraps around.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	return types.LoopStatusPlaylist, nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) SetLoopStatus(_ types.LoopStatus) error {
	return nil // Not supported
}

func formatTrackID(loc string) string {
	h := fnv.New64a()
	h.Write([]byte(loc))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}

// localArtPath returns the track's filesystem path, or "" for remote tracks.
func localArtPath(loc string) string {
	if location.IsRemote(loc) {
		return ""
	}
	path, err := location.LocalPath(loc)
	if err != nil {
		return ""
	}
	return path
}
