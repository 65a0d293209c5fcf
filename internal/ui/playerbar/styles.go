package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/backdrop/internal/ui/styles"
)

func barStyle() lipgloss.Style      { return styles.T().S().Bar }
func controlStyle() lipgloss.Style  { return styles.T().S().Base.Bold(true) }
func disabledStyle() lipgloss.Style { return styles.T().S().Disabled }
func labelStyle() lipgloss.Style    { return styles.T().S().Base }
func timeStyle() lipgloss.Style     { return styles.T().S().Muted }
func errorStyle() lipgloss.Style    { return styles.T().S().Error }
