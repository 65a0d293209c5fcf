package app

import (
	"github.com/llehouerou/backdrop/internal/ui/playerbar"
)

// View implements tea.Model.
func (m Model) View() string {
	s := playerbar.NewState(m.snap, m.info)
	s.Notice = m.Notice

	bar := playerbar.Render(s, m.Width)
	return bar + "\n" + m.help.View(m.helpMap)
}
