package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "song.mp3", "song.mp3"},
		{"control chars", "so\x1bng\n.mp3", "song.mp3"},
		{"tab kept", "a\tb", "a\tb"},
		{"nbsp", "a\u00a0b", "a b"},
		{"invalid utf8", "a\xffb", "ab"},
		{"wide chars", "日本語", "日本語"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncateEllipsis(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact fit", "hello", 5, "hello"},
		{"truncated", "hello world", 6, "hello…"},
		{"zero width", "hello", 0, ""},
		{"wide chars", "日本語テキスト", 5, "日本…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateEllipsis(tt.input, tt.maxWidth)
			if got != tt.want {
				t.Errorf("TruncateEllipsis(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
			if lipgloss.Width(got) > tt.maxWidth {
				t.Errorf("TruncateEllipsis(%q, %d) width = %d, exceeds max", tt.input, tt.maxWidth, lipgloss.Width(got))
			}
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"ab", 4, "ab  "},
		{"abcd", 4, "abcd"},
		{"日", 4, "日  "},
	}
	for _, tt := range tests {
		if got := Pad(tt.input, tt.width); got != tt.want {
			t.Errorf("Pad(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestRow(t *testing.T) {
	got := Row("left", "right", 12)
	if got != "left   right" {
		t.Errorf("Row() = %q, want %q", got, "left   right")
	}
	if got := Row("left", "right", 3); got != "left right" {
		t.Errorf("Row() narrow = %q, want a single space gap", got)
	}
}
