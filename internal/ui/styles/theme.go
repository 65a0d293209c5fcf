package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the widget.
type Theme struct {
	// Accent gradient used for the playing track label
	Primary   lipgloss.Color
	Secondary lipgloss.Color

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	Border lipgloss.Color
	Error  lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles.
type Styles struct {
	Base     lipgloss.Style // enabled controls, paused label
	Muted    lipgloss.Style // time display, help
	Disabled lipgloss.Style // controls while loading or without tracks
	Error    lipgloss.Style
	Bar      lipgloss.Style // rounded frame around the widget
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#4a4a4a"),

	Border: lipgloss.Color("#585858"),
	Error:  lipgloss.Color("#ff5555"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	return &Styles{
		Base:     lipgloss.NewStyle().Foreground(t.FgBase),
		Muted:    lipgloss.NewStyle().Foreground(t.FgMuted),
		Disabled: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Bar: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
	}
}

// Playing renders the playing track label, lit up to progress (0..1)
// with the accent gradient.
func (t *Theme) Playing(text string, progress float64) string {
	return ProgressGradient(text, progress, t.Primary, t.Secondary, t.FgBase)
}
