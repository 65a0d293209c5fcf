// Package playerbar renders the one-line playback widget: previous,
// play/pause and next controls, the track label and the elapsed time.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/backdrop/internal/icons"
	"github.com/llehouerou/backdrop/internal/playback"
	"github.com/llehouerou/backdrop/internal/player"
	"github.com/llehouerou/backdrop/internal/ui/render"
	"github.com/llehouerou/backdrop/internal/ui/styles"
)

// LoadingLabel is shown until the playlist is resolved.
const LoadingLabel = "Loading…"

// Height is the rendered height: top border, content, bottom border.
const Height = 3

// State holds everything needed to render the player bar.
type State struct {
	Status   playback.Status
	Playing  bool
	Label    string
	Artist   string
	Position time.Duration
	Duration time.Duration
	// Notice is a transient message, e.g. a rejected play attempt.
	Notice string
}

// NewState builds a State from a controller snapshot and the tags of the
// loaded track, if any.
func NewState(snap playback.Snapshot, info *player.TrackInfo) State {
	s := State{
		Status:   snap.Status,
		Playing:  snap.Playing(),
		Label:    snap.Label,
		Position: snap.Position,
		Duration: snap.Duration,
	}
	switch snap.Status {
	case playback.StatusLoading:
		s.Label = LoadingLabel
	case playback.StatusNoTracks:
		s.Label = playback.NoTracksLabel
	case playback.StatusReady:
		loc := snap.Playlist[snap.Index]
		if info != nil && info.Location == loc {
			if info.Title != "" {
				s.Label = info.Title
			}
			s.Artist = info.Artist
			if s.Duration == 0 {
				s.Duration = info.Duration
			}
		}
	}
	return s
}

// Enabled reports whether the controls accept input.
func (s State) Enabled() bool {
	return s.Status == playback.StatusReady
}

// Render returns the player bar for the given total width.
func Render(s State, width int) string {
	innerWidth := max(width-4, 0) // border + padding

	controls := renderControls(s)
	right := ""
	if s.Enabled() {
		right = timeStyle().Render(formatTime(s.Position, s.Duration))
	}
	if s.Notice != "" {
		right = errorStyle().Render(s.Notice)
	}

	// Label gets whatever the controls and the right column leave.
	sep := "  "
	fixed := lipgloss.Width(controls) + lipgloss.Width(sep)
	if right != "" {
		fixed += lipgloss.Width(right) + lipgloss.Width(sep)
	}
	label := renderLabel(s, max(innerWidth-fixed, 0))

	line := render.Row(controls+sep+label, right, innerWidth)
	return barStyle().Width(max(width-2, 0)).Render(line)
}

func renderControls(s State) string {
	parts := []string{icons.Prev(), icons.PlayPause(s.Playing), icons.Next()}
	style := controlStyle()
	if !s.Enabled() {
		style = disabledStyle()
	}
	for i, p := range parts {
		parts[i] = style.Render(p)
	}
	return strings.Join(parts, " ")
}

func renderLabel(s State, width int) string {
	text := s.Label
	if s.Artist != "" {
		text += " · " + s.Artist
	}
	text = render.TruncateEllipsis(icons.FormatTrack(text), width)

	switch {
	case !s.Enabled():
		return disabledStyle().Render(text)
	case s.Playing:
		return styles.T().Playing(text, s.Progress())
	default:
		return labelStyle().Render(text)
	}
}

// Progress returns the played fraction of the track, or 0 when the duration
// is unknown.
func (s State) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return min(float64(s.Position)/float64(s.Duration), 1)
}

// formatTime renders "1:23 / 3:58", or just the position when the duration
// is unknown.
func formatTime(pos, dur time.Duration) string {
	if dur <= 0 {
		return formatDuration(pos)
	}
	return fmt.Sprintf("%s / %s", formatDuration(pos), formatDuration(dur))
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
