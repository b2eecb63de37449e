package components

import (
	"fmt"

	"github.com/theirongolddev/cyros/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForRatio returns green/yellow/orange/red as budget usage climbs.
func ColorForRatio(ratio float64) lipgloss.Color {
	t := theme.Active
	switch {
	case ratio > 1:
		return t.Red
	case ratio >= 0.9:
		return t.Orange
	case ratio >= 0.7:
		return t.Yellow
	default:
		return t.Green
	}
}

// BudgetBar renders spend against the budget with a percentage label.
// ratio is spent/budget and may exceed 1; the bar itself is clamped.
func BudgetBar(ratio float64, width int) string {
	t := theme.Active
	color := ColorForRatio(ratio)

	fill := min(max(ratio, 0), 1)
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(max(width-6, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	space := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	return bar.ViewAs(fill) + space + pctStyle.Render(fmt.Sprintf("%4.0f%%", ratio*100))
}
