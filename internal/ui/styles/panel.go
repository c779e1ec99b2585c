package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the bordered style of the player panel. The border
// takes the accent color while the player has keyboard focus.
func PanelStyle(focused bool, accent lipgloss.Color) lipgloss.Style {
	border := T().Border
	if focused {
		border = T().AccentOr(accent)
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
