package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ProgressGradient renders text as a progress indicator. The first
// progress fraction of the grapheme clusters is bold and blended from
// "from" to "to"; the remainder is drawn in rest.
func ProgressGradient(text string, progress float64, from, to, rest lipgloss.Color) string {
	clusters := graphemes(text)
	if len(clusters) == 0 {
		return ""
	}

	progress = min(max(progress, 0), 1)
	lit := int(progress * float64(len(clusters)))
	// A playing label always shows at least its first cluster lit.
	lit = max(lit, 1)

	colors := blendColors(len(clusters), from, to)
	restStyle := lipgloss.NewStyle().Foreground(rest)

	var b strings.Builder
	for i, cluster := range clusters {
		if i >= lit {
			b.WriteString(restStyle.Render(strings.Join(clusters[i:], "")))
			break
		}
		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorToHex(colors[i])))
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

// graphemes splits text into user-perceived characters.
func graphemes(text string) []string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	return clusters
}

// blendColors returns size colors blended between from and to in HCL
// space.
func blendColors(size int, from, to lipgloss.Color) []color.Color {
	c1, _ := colorful.MakeColor(lipglossToColor(from))
	if size < 2 {
		return []color.Color{c1}
	}
	c2, _ := colorful.MakeColor(lipglossToColor(to))

	colors := make([]color.Color, size)
	for i := range size {
		colors[i] = c1.BlendHcl(c2, float64(i)/float64(size-1)).Clamped()
	}
	return colors
}

// lipglossToColor converts a hex lipgloss.Color; ANSI indices become gray.
func lipglossToColor(c lipgloss.Color) color.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}

func colorToHex(c color.Color) string {
	if cf, ok := c.(colorful.Color); ok {
		return cf.Hex()
	}
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}
