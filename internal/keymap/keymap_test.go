package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestBindingsHaveRequiredFields(t *testing.T) {
	for _, b := range All {
		if b.Action == "" {
			t.Errorf("binding %v has no action", b.Keys)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Action)
		}
		if b.Help == "" || b.Description == "" {
			t.Errorf("binding %q has no help text", b.Action)
		}
	}
}

func TestAll_PlaybackKeys(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		key  string
		want Action
	}{
		{"h", ActionPrevTrack},
		{"left", ActionPrevTrack},
		{"pgup", ActionPrevTrack},
		{"l", ActionNextTrack},
		{"right", ActionNextTrack},
		{"pgdown", ActionNextTrack},
		{" ", ActionPlayPause},
		{"enter", ActionPlayPause},
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"?", ActionHelp},
		{"x", ""},
	}
	for _, tt := range tests {
		if got := r.Resolve(keyPress(tt.key)); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestHelpMap(t *testing.T) {
	m := NewHelpMap(All)

	short := m.ShortHelp()
	if len(short) != len(All)-1 {
		t.Fatalf("ShortHelp() has %d entries, want %d", len(short), len(All)-1)
	}
	for _, b := range short {
		if b.Help().Key == "?" {
			t.Error("ShortHelp() should not include the help toggle")
		}
	}

	full := m.FullHelp()
	if len(full) != len(All) {
		t.Fatalf("FullHelp() has %d columns, want %d", len(full), len(All))
	}
	if !key.Matches(keyMsg("pgdown"), full[2][0]) {
		t.Error("next binding should match pgdown")
	}
}

// keyMsg satisfies fmt.Stringer the way tea.KeyMsg does.
type keyMsg string

func (k keyMsg) String() string { return string(k) }
