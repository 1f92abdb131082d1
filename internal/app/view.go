package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/audiolayout/internal/ui/headerbar"
	"github.com/llehouerou/audiolayout/internal/ui/layout"
	"github.com/llehouerou/audiolayout/internal/ui/styles"
)

var notificationStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(styles.T().Warning).
	Padding(0, 1)

// View renders the header, the audio layout, notifications and help.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	variant := m.comp.Variant()
	header := headerbar.Render("audio layout", m.headerFields(variant), m.width)
	helpView := m.help.View(m.hkeys)
	helpHeight := lipgloss.Height(helpView)

	filler := layout.ContentHeight(m.height, layout.ContentOpts{
		HeaderHeight:      headerbar.Height,
		Variant:           variant,
		HelpHeight:        helpHeight,
		NotificationCount: len(m.notifications),
	})

	parts := []string{header}
	if filler > 0 {
		parts = append(parts, strings.Repeat("\n", filler-1))
	}
	if len(m.notifications) > 0 {
		parts = append(parts, notificationStyle.Width(max(m.width-2, 0)).Render(strings.Join(m.notifications, "\n")))
	}
	if out := m.comp.Render(m.width); out != "" {
		parts = append(parts, out)
	}
	parts = append(parts, helpView)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) headerFields(variant layout.Variant) []headerbar.Field {
	iconKind := "-"
	if active := m.comp.Icons(); active != nil && active.Active() != nil {
		iconKind = active.Active().Kind().String()
	}
	return []headerbar.Field{
		{Label: "layout", Value: variant.String()},
		{Label: "phase", Value: m.comp.Phase().String()},
		{Label: "load", Value: string(m.media.Load.Get())},
		{Label: "stream", Value: string(m.media.StreamType.Get())},
		{Label: "view", Value: string(m.media.ViewType.Get())},
		{Label: "icons", Value: iconKind},
	}
}
