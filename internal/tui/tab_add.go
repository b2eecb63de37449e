package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/cyros/internal/log"
	"github.com/theirongolddev/cyros/internal/model"
	"github.com/theirongolddev/cyros/internal/tui/components"
	"github.com/theirongolddev/cyros/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// addValues is bound to the add form's fields. It lives behind a pointer so
// copies of App keep writing to the same values.
type addValues struct {
	amount   string
	category string
	date     string
	notes    string
}

// addState holds the Add tab's embedded form.
type addState struct {
	form *huh.Form
	vals *addValues
}

// reset builds a fresh form defaulting to today's date and the first category.
func (s *addState) reset(categories []string, now time.Time, width int) {
	vals := &addValues{date: model.DateOf(now).String()}
	if len(categories) > 0 {
		vals.category = categories[0]
	}
	s.vals = vals
	s.form = newAddForm(categories, vals).WithWidth(width)
}

func newAddForm(categories []string, vals *addValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Placeholder("0.00").
				Value(&vals.amount).
				Validate(func(s string) error {
					_, err := model.ParseAmount(s)
					return err
				}),

			huh.NewSelect[string]().
				Title("Category").
				Options(huh.NewOptions(categories...)...).
				Value(&vals.category),

			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD").
				Value(&vals.date).
				Validate(func(s string) error {
					_, err := model.ParseDate(s)
					return err
				}),

			huh.NewInput().
				Title("Notes").
				Placeholder("optional").
				CharLimit(200).
				Value(&vals.notes),
		),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(false)
}

func (a App) formWidth() int {
	if a.width == 0 {
		return 60
	}
	return min(a.contentWidth()-6, 80)
}

// expenseFromForm converts validated form values into a ledger input.
func expenseFromForm(v *addValues) (model.NewExpense, error) {
	amount, err := model.ParseAmount(v.amount)
	if err != nil {
		return model.NewExpense{}, err
	}
	date, err := model.ParseDate(v.date)
	if err != nil {
		return model.NewExpense{}, err
	}
	category, err := model.ParseCategory(v.category)
	if err != nil {
		return model.NewExpense{}, err
	}
	return model.NewExpense{
		Amount:   amount,
		Category: category,
		Date:     date,
		Notes:    strings.TrimSpace(v.notes),
	}, nil
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.add.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.add.form = f
	}

	switch a.add.form.State {
	case huh.StateCompleted:
		in, err := expenseFromForm(a.add.vals)
		var flash tea.Cmd
		if err != nil {
			a.log.Warn("add form produced invalid expense", log.FieldError, err)
			flash = a.setFlash("Not added: " + err.Error())
		} else {
			e := a.ledger.AddExpense(in)
			a.refresh()
			flash = a.setFlash(fmt.Sprintf("Added %s · %s", a.money(e.Amount), e.Category))
			a.activeTab = tabHome
		}
		a.add.reset(a.data.Categories, a.now(), a.formWidth())
		return a, tea.Batch(flash, a.add.form.Init())

	case huh.StateAborted:
		a.add.reset(a.data.Categories, a.now(), a.formWidth())
		a.activeTab = tabHome
		return a, a.add.form.Init()
	}

	return a, cmd
}

func (a App) renderAddTab(cw int) string {
	t := theme.Active
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	if !a.restored || a.add.form == nil {
		return components.ContentCard("New expense", a.spinner.View()+dim.Render(" Loading…"), cw)
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("New expense", a.add.form.View(), cw))
	b.WriteString("\n")

	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	receipt := muted.Render("▣ Scan receipt") + "\n" +
		dim.Render("Receipt scanning is not available yet. Enter the amount above.")
	b.WriteString(components.ContentCard("Receipt", receipt, cw))
	return b.String()
}
