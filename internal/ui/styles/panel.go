package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the bordered style of a layout panel. Active panels
// (media playing) get the focus border color.
func PanelStyle(active bool) lipgloss.Style {
	t := T()
	color := t.Border
	if active {
		color = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}
