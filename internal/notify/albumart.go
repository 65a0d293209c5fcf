//go:build linux

package notify

import "github.com/llehouerou/backdrop/internal/mpris"

// FindAlbumArtPath returns the path to album art for a local track, if found.
func FindAlbumArtPath(loc string) string {
	return mpris.FindAlbumArt(loc)
}
