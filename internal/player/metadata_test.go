package player

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createMinimalMP3 creates a minimal valid MP3 file for testing.
// Returns MP3 frame header + padding (417 bytes total for 128kbps frame).
func createMinimalMP3(t *testing.T, path string) {
	t.Helper()
	// MP3 frame header (MPEG1 Layer3, 128kbps, 44100Hz, stereo) + padding
	mp3Frame := make([]byte, 417)
	mp3Frame[0] = 0xff
	mp3Frame[1] = 0xfb
	mp3Frame[2] = 0x90
	mp3Frame[3] = 0x00

	require.NoError(t, os.WriteFile(path, mp3Frame, 0o600))
}

func TestReadTrackInfo_Tags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tagged.mp3")
	createMinimalMP3(t, path)

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	tag.SetTitle("Night Drive")
	tag.SetArtist("Lofi Band")
	tag.SetAlbum("Loops")
	require.NoError(t, tag.Save())
	tag.Close()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	info := readTrackInfo(f, path)

	assert.Equal(t, path, info.Location)
	assert.Equal(t, "Night Drive", info.Title)
	assert.Equal(t, "Lofi Band", info.Artist)
	assert.Equal(t, "Loops", info.Album)
}

func TestReadTrackInfo_FallsBackToFileName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "untagged.mp3")
	createMinimalMP3(t, path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	info := readTrackInfo(f, path)

	assert.Equal(t, "untagged.mp3", info.Title)
	assert.Empty(t, info.Artist)
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"song.MP3", true},
		{"audio/song.mpeg", true},
		{"song.flac", true},
		{"song.wav", true},
		{"https://example.com/a.mp3?x=1", true},
		{"song.ogg", false},
		{"song.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSupported(tt.path))
		})
	}
}
