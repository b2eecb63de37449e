package components

import (
	"strings"

	"github.com/theirongolddev/cyros/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// a status message on the right. busy prefixes the message with a spinner frame.
func RenderStatusBar(width int, hints, status, busy string) string {
	t := theme.Active

	base := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	statusStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)

	left := base.Render(" " + hints)
	right := ""
	if busy != "" {
		right = busy + base.Render(" ")
	}
	if status != "" {
		right += statusStyle.Render(status) + base.Render(" ")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Drop the hints before the status.
		left = ""
		gap = max(0, width-lipgloss.Width(right))
	}

	return left + base.Render(strings.Repeat(" ", gap)) + right
}
