package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string // as reported by tea.KeyMsg.String()
	Help        string   // key label shown in the help line
	Description string
}

// All contains all key bindings.
var All = []Binding{
	{ActionPrevTrack, []string{"h", "left", "pgup"}, "h/←", "previous"},
	{ActionPlayPause, []string{" ", "enter"}, "space", "play/pause"},
	{ActionNextTrack, []string{"l", "right", "pgdown"}, "l/→", "next"},
	{ActionHelp, []string{"?"}, "?", "more"},
	{ActionQuit, []string{"q", "ctrl+c"}, "q", "quit"},
}

// HelpMap adapts bindings to the bubbles help component.
type HelpMap struct {
	bindings []key.Binding
}

// NewHelpMap builds help entries for the given bindings, in order.
func NewHelpMap(bindings []Binding) HelpMap {
	m := HelpMap{bindings: make([]key.Binding, 0, len(bindings))}
	for _, b := range bindings {
		m.bindings = append(m.bindings, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(b.Help, b.Description),
		))
	}
	return m
}

// ShortHelp returns the playback bindings and quit.
func (m HelpMap) ShortHelp() []key.Binding {
	short := make([]key.Binding, 0, len(m.bindings))
	for _, b := range m.bindings {
		if b.Help().Key == "?" {
			continue
		}
		short = append(short, b)
	}
	return short
}

// FullHelp returns every binding, one per column.
func (m HelpMap) FullHelp() [][]key.Binding {
	cols := make([][]key.Binding, 0, len(m.bindings))
	for _, b := range m.bindings {
		cols = append(cols, []key.Binding{b})
	}
	return cols
}
