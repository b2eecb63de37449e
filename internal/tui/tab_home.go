package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/cyros/internal/cli"
	"github.com/theirongolddev/cyros/internal/model"
	"github.com/theirongolddev/cyros/internal/pipeline"
	"github.com/theirongolddev/cyros/internal/tui/components"
	"github.com/theirongolddev/cyros/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderHomeTab(cw int) string {
	t := theme.Active
	sym := a.cfg.General.CurrencySymbol
	summary := pipeline.Summarize(a.data, a.now())
	bs := summary.Budget

	remainingColor := t.Green
	if bs.OverBudget {
		remainingColor = t.Red
	}

	var b strings.Builder

	// Row 1: metric cards
	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Spent this month", Value: a.money(bs.Spent), Color: components.ColorForRatio(bs.UsedPercent)},
		{Label: "Monthly budget", Value: a.money(bs.Budget)},
		{Label: "Remaining", Value: a.money(bs.Remaining), Color: remainingColor,
			Delta: cli.FormatRemaining(bs.Remaining, sym)},
		{Label: "Expenses", Value: cli.FormatNumber(int64(summary.ExpenseCount)), Delta: "this month"},
	}, cw))
	b.WriteString("\n")

	// Row 2: budget progress
	innerW := components.CardInnerWidth(cw)
	budgetBody := components.BudgetBar(bs.UsedPercent, innerW)
	if bs.Budget <= 0 {
		dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		budgetBody = dim.Render("No budget set. Press [x] to open Settings.")
	}
	b.WriteString(components.ContentCard("Budget", budgetBody, cw))
	b.WriteString("\n")

	// Row 3: top categories (all time) beside this month's breakdown
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Top categories", a.renderTopCategories(summary.TopCategories, cw), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("This month by category", a.renderBreakdown(summary.Breakdown, cw), cw))
	} else {
		widths := components.LayoutRow(cw, 2)
		b.WriteString(components.CardRow([]string{
			components.ContentCard("Top categories", a.renderTopCategories(summary.TopCategories, widths[0]), widths[0]),
			components.ContentCard("This month by category", a.renderBreakdown(summary.Breakdown, widths[1]), widths[1]),
		}))
	}

	return b.String()
}

func (a App) renderTopCategories(stats []model.CategoryStat, outerW int) string {
	t := theme.Active
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	if len(stats) == 0 {
		return dim.Render("No expenses yet")
	}

	rankStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	innerW := components.CardInnerWidth(outerW)
	var b strings.Builder
	for i, s := range stats {
		if i > 0 {
			b.WriteString("\n")
		}
		name := truncStr(s.Category, max(innerW-24, 8))
		value := fmt.Sprintf("%s · %d", a.money(s.Amount), s.Count)
		gap := max(innerW-3-lipgloss.Width(name)-lipgloss.Width(value), 1)
		b.WriteString(rankStyle.Render(fmt.Sprintf("%d. ", i+1)))
		b.WriteString(nameStyle.Render(name))
		b.WriteString(space.Render(strings.Repeat(" ", gap)))
		b.WriteString(valueStyle.Render(value))
	}
	return b.String()
}

func (a App) renderBreakdown(stats []model.CategoryStat, outerW int) string {
	t := theme.Active
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	if len(stats) == 0 {
		return dim.Render("Nothing spent this month")
	}

	innerW := components.CardInnerWidth(outerW)
	labelW := 14
	valueW := 0
	values := make([]string, len(stats))
	for i, s := range stats {
		values[i] = fmt.Sprintf("%s %4s", a.money(s.Amount), cli.FormatPercent(s.Percent))
		valueW = max(valueW, len(values[i]))
	}
	barW := max(innerW-labelW-valueW-2, 4)

	lines := make([]string, len(stats))
	for i, s := range stats {
		lines[i] = components.CategoryBar(s.Category, values[i], float64(s.Percent)/100, labelW, barW)
	}
	return strings.Join(lines, "\n")
}
