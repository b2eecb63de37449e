package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/cyros/internal/cli"
	"github.com/theirongolddev/cyros/internal/model"
	"github.com/theirongolddev/cyros/internal/pipeline"
	"github.com/theirongolddev/cyros/internal/tui/components"
	"github.com/theirongolddev/cyros/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// logState tracks the Log tab's cursor, search filter and pending delete.
type logState struct {
	cursor int

	confirmDelete bool
	pendingID     string

	searching   bool
	searchInput textinput.Model
	query       string
}

// visibleExpenses returns the Log tab rows: newest first, filtered by the search query.
func (a App) visibleExpenses() []model.Expense {
	return pipeline.FilterBySearch(pipeline.SortByDate(a.data.Expenses), a.logState.query)
}

func (s *logState) move(delta, n int) {
	s.cursor += delta
	s.clamp(n)
}

func (s *logState) clamp(n int) {
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// updateLogKeys handles list navigation. handled is false for keys the tab ignores.
func (a App) updateLogKeys(key string) (tea.Model, tea.Cmd, bool) {
	n := len(a.visibleExpenses())
	switch key {
	case "j", "down":
		a.logState.move(1, n)
	case "k", "up":
		a.logState.move(-1, n)
	case "g", "home":
		a.logState.cursor = 0
	case "G", "end":
		a.logState.cursor = max(n-1, 0)
	case "d", "delete":
		rows := a.visibleExpenses()
		if len(rows) == 0 {
			return a, nil, true
		}
		a.logState.confirmDelete = true
		a.logState.pendingID = rows[a.logState.cursor].ID
	case "/":
		ti := textinput.New()
		ti.Placeholder = "category or notes"
		ti.CharLimit = 64
		ti.Width = 30
		ti.SetValue(a.logState.query)
		ti.Focus()
		a.logState.searchInput = ti
		a.logState.searching = true
		return a, textinput.Blink, true
	case "esc":
		if a.logState.query == "" {
			return a, nil, false
		}
		a.logState.query = ""
		a.logState.cursor = 0
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) updateDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := a.logState.pendingID
	a.logState.confirmDelete = false
	a.logState.pendingID = ""

	if msg.String() != "y" {
		return a, a.setFlash("Delete cancelled")
	}
	if !a.ledger.DeleteExpense(id) {
		return a, a.setFlash("Expense already removed")
	}
	a.refresh()
	return a, a.setFlash("Expense deleted")
}

func (a App) updateLogSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.logState.query = strings.TrimSpace(a.logState.searchInput.Value())
		a.logState.searching = false
		a.logState.cursor = 0
		return a, nil
	case "esc":
		a.logState.searching = false
		return a, nil
	}

	var cmd tea.Cmd
	a.logState.searchInput, cmd = a.logState.searchInput.Update(msg)
	return a, cmd
}

func (a App) renderLogTab(cw, h int) string {
	t := theme.Active
	rows := a.visibleExpenses()

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)

	innerW := components.CardInnerWidth(cw)
	dateW, catW, amtW := 10, 14, 12
	notesW := max(innerW-dateW-catW-amtW-6, 6)

	var b strings.Builder

	switch {
	case a.logState.searching:
		b.WriteString(mutedStyle.Render("Search: ") + a.logState.searchInput.View())
		b.WriteString("\n")
	case a.logState.query != "":
		b.WriteString(mutedStyle.Render(fmt.Sprintf("Filter %q · %d of %d · [Esc] clear",
			a.logState.query, len(rows), len(a.data.Expenses))))
		b.WriteString("\n")
	}

	if len(rows) == 0 {
		msg := "No expenses yet. Press [a] to add one."
		if a.logState.query != "" {
			msg = "No expenses match the filter."
		}
		b.WriteString(dimStyle.Render(msg))
		return components.ContentCard("Expenses", b.String(), cw)
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s  %-*s  %*s  %-*s",
		dateW, "Date", catW, "Category", amtW, "Amount", notesW, "Notes")))
	b.WriteString("\n")

	// Card chrome (border, title, header, footer) takes 6 rows.
	maxVisible := max(h-6-strings.Count(b.String(), "\n"), 3)

	cursor := min(a.logState.cursor, len(rows)-1)
	offset := max(cursor-maxVisible+1, 0)
	end := min(offset+maxVisible, len(rows))

	for i := offset; i < end; i++ {
		e := rows[i]
		line := fmt.Sprintf("%-*s  %-*s  %*s  %-*s",
			dateW, e.Date.String(),
			catW, truncStr(e.Category, catW),
			amtW, a.money(e.Amount),
			notesW, truncStr(e.Notes, notesW))

		if i == cursor {
			b.WriteString(selectedStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if a.logState.confirmDelete {
		if e, ok := a.data.FindExpense(a.logState.pendingID); ok {
			b.WriteString(warnStyle.Render(fmt.Sprintf("Delete %s %s on %s? [y] yes  [any] no",
				a.money(e.Amount), e.Category, e.Date)))
		}
	} else {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d/%d · total %s",
			cursor+1, len(rows), cli.FormatMoney(pipeline.Sum(rows), a.cfg.General.CurrencySymbol))))
	}

	return components.ContentCard("Expenses", b.String(), cw)
}
