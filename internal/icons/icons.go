package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Prev  string
	Play  string
	Pause string
	Next  string
	Track string
}

var (
	nerdIcons = Icons{
		Prev:  "\U000F04AE", // nf-md-skip_previous
		Play:  "\U000F040A", // nf-md-play
		Pause: "\U000F03E4", // nf-md-pause
		Next:  "\U000F04AD", // nf-md-skip_next
		Track: "\uf001 ", // nf-fa-music
	}

	unicodeIcons = Icons{
		Prev:  "⏮",
		Play:  "▶",
		Pause: "⏸",
		Next:  "⏭",
		Track: "🎵 ",
	}

	noneIcons = Icons{
		Prev:  "|<",
		Play:  ">",
		Pause: "||",
		Next:  ">|",
		Track: "",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Prev returns the previous-track button icon.
func Prev() string {
	return current.Prev
}

// Next returns the next-track button icon.
func Next() string {
	return current.Next
}

// PlayPause returns the icon for the play/pause button: the pause icon while
// playing, the play icon otherwise.
func PlayPause(playing bool) string {
	if playing {
		return current.Pause
	}
	return current.Play
}

// FormatTrack formats a track label with the appropriate icon.
func FormatTrack(label string) string {
	if current == noneIcons || label == "" {
		return label
	}
	return current.Track + label
}
