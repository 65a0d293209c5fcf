//go:build !linux

package notify

// FindAlbumArtPath returns empty on non-Linux platforms.
func FindAlbumArtPath(_ string) string {
	return ""
}
