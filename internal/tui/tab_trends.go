package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/cyros/internal/cli"
	"github.com/theirongolddev/cyros/internal/pipeline"
	"github.com/theirongolddev/cyros/internal/tui/components"
	"github.com/theirongolddev/cyros/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// maxTrendMonths bounds the trend: months are matched by number, so a
// longer window would count the same month twice.
const maxTrendMonths = 12

func (a App) trendMonths() int {
	n := a.cfg.General.TrendMonths
	if n <= 0 {
		n = pipeline.TrendMonths
	}
	return min(n, maxTrendMonths)
}

func (a App) renderTrendsTab(cw int) string {
	t := theme.Active
	buckets := pipeline.Trend(a.data.Expenses, a.now(), a.trendMonths())
	budget := a.data.MonthlyBudget

	values := make([]float64, len(buckets))
	labels := make([]string, len(buckets))
	for i, bk := range buckets {
		values[i] = bk.Total
		labels[i] = bk.Label
	}

	var b strings.Builder

	// Chart card
	innerW := components.CardInnerWidth(cw)
	chart := components.BarChart(values, labels, budget, innerW, 8)
	legend := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).
		Render(fmt.Sprintf("┄ budget %s", a.money(budget)))
	b.WriteString(components.ContentCard(
		fmt.Sprintf("Last %d months", len(buckets)), chart+"\n"+legend, cw))
	b.WriteString("\n")

	// Table card
	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var table strings.Builder
	table.WriteString(headerStyle.Render(fmt.Sprintf("%-6s %12s %6s %8s", "Month", "Spent", "Count", "Budget")))
	var total float64
	for _, bk := range buckets {
		total += bk.Total
		ratio := 0.0
		if budget > 0 {
			ratio = bk.Total / budget
		}
		pct := lipgloss.NewStyle().Foreground(components.ColorForRatio(ratio)).Background(t.Surface).
			Render(fmt.Sprintf("%8s", cli.FormatRatio(ratio)))
		table.WriteString("\n")
		table.WriteString(rowStyle.Render(fmt.Sprintf("%-6s %12s %6d ", bk.Label, a.money(bk.Total), bk.Count)))
		table.WriteString(pct)
	}
	if len(buckets) > 0 {
		table.WriteString("\n")
		table.WriteString(mutedStyle.Render(fmt.Sprintf("%-6s %12s", "Avg", a.money(total/float64(len(buckets))))))
	}
	b.WriteString(components.ContentCard("Monthly totals", table.String(), cw))

	return b.String()
}
