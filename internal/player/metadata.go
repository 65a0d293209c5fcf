package player

import (
	"io"
	"time"

	"github.com/dhowden/tag"

	"github.com/llehouerou/backdrop/internal/location"
)

// TrackInfo describes an opened source.
type TrackInfo struct {
	Location   string
	Title      string
	Artist     string
	Album      string
	Year       int
	Track      int
	Duration   time.Duration
	Format     string // "MP3", "FLAC" or "WAV"
	SampleRate int
}

// readTrackInfo reads tags from r. Sources without readable tags get the
// location's file name as title.
func readTrackInfo(r io.ReadSeeker, loc string) *TrackInfo {
	info := &TrackInfo{
		Location: loc,
		Title:    location.Label(loc),
	}

	m, err := tag.ReadFrom(r)
	if err != nil {
		return info
	}

	if title := m.Title(); title != "" {
		info.Title = title
	}
	info.Artist = m.Artist()
	if info.Artist == "" {
		info.Artist = m.AlbumArtist()
	}
	info.Album = m.Album()
	info.Year = m.Year()
	info.Track, _ = m.Track()
	return info
}
