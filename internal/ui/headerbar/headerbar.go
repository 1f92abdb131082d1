// Package headerbar renders the one-line status header above the layout.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/audiolayout/internal/ui/render"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Field is one labeled value shown in the header.
type Field struct {
	Label string
	Value string
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Render returns the header bar string for the given width: a title on the
// left and the fields on the right, dropping trailing fields that do not fit.
func Render(title string, fields []Field, width int) string {
	if width < 20 {
		return ""
	}

	left := titleStyle.Render(title)
	sep := separatorStyle.Render(" │ ")
	available := width - lipgloss.Width(left) - 1

	var parts []string
	used := 0
	for _, f := range fields {
		part := labelStyle.Render(f.Label+" ") + valueStyle.Render(f.Value)
		w := lipgloss.Width(part)
		if len(parts) > 0 {
			w += lipgloss.Width(sep)
		}
		if used+w > available {
			break
		}
		parts = append(parts, part)
		used += w
	}

	return render.Row(left, strings.Join(parts, sep), width)
}
