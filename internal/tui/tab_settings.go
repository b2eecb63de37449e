package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/cyros/internal/cli"
	"github.com/theirongolddev/cyros/internal/config"
	"github.com/theirongolddev/cyros/internal/log"
	"github.com/theirongolddev/cyros/internal/model"
	"github.com/theirongolddev/cyros/internal/tui/components"
	"github.com/theirongolddev/cyros/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldBudget = iota
	settingsFieldCategory
	settingsFieldTheme
	settingsFieldClear
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor       int
	editing      bool
	confirmClear bool
	input        textinput.Model
	notice       string // result of the last action
	saveErr      error  // non-nil if the last edit was rejected or not saved
}

func newSettingsState() settingsState {
	return settingsState{input: newSettingsInput()}
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Width = 30
	return ti
}

// updateSettingsKeys handles cursor movement and actions. handled is false for
// keys the tab ignores.
func (a App) updateSettingsKeys(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.settings.cursor < settingsFieldCount-1 {
			a.settings.cursor++
		}
	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
	case "enter":
		m, cmd := a.settingsActivate()
		return m, cmd, true
	default:
		return a, nil, false
	}
	return a, nil, true
}

func (a App) settingsActivate() (tea.Model, tea.Cmd) {
	a.settings.notice = ""
	a.settings.saveErr = nil

	switch a.settings.cursor {
	case settingsFieldBudget, settingsFieldCategory:
		return a.settingsStartEdit()
	case settingsFieldTheme:
		name := theme.ToggleDark()
		a.cfg.Appearance.Theme = name
		a.spinner.Style = a.spinner.Style.Foreground(theme.Active.Accent).Background(theme.Active.Surface)
		if err := a.saveConfig(a.cfg); err != nil {
			a.log.Warn("saving theme", log.FieldError, err)
			a.settings.saveErr = fmt.Errorf("theme applied for this session only: %w", err)
		} else {
			a.settings.notice = "Theme set to " + theme.Active.Label
		}
	case settingsFieldClear:
		a.settings.confirmClear = true
	}
	return a, nil
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true

	ti := newSettingsInput()
	switch a.settings.cursor {
	case settingsFieldBudget:
		ti.Placeholder = "3000"
		ti.SetValue(strings.TrimSuffix(fmt.Sprintf("%.2f", a.data.MonthlyBudget), ".00"))
	case settingsFieldCategory:
		ti.Placeholder = "e.g. Health"
	}
	ti.Focus()
	a.settings.input = ti
	return a, ti.Cursor.BlinkCmd()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave applies the edited value. Invalid input leaves the data unchanged.
func (a *App) settingsSave() {
	val := a.settings.input.Value()

	switch a.settings.cursor {
	case settingsFieldBudget:
		budget, err := model.ParseBudget(val)
		if err != nil {
			a.settings.saveErr = err
			return
		}
		a.ledger.UpdateBudget(budget)
		a.settings.notice = "Budget set to " + a.money(budget)
	case settingsFieldCategory:
		name, err := model.ParseCategory(val)
		if err != nil {
			a.settings.saveErr = err
			return
		}
		if !a.ledger.AddCategory(name) {
			a.settings.saveErr = fmt.Errorf("category %q already exists", name)
			return
		}
		a.settings.notice = "Added category " + name
	}
	a.refresh()
	a.add.reset(a.data.Categories, a.now(), a.formWidth())
}

func (a App) updateClearConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.settings.confirmClear = false
	if msg.String() != "y" {
		a.settings.notice = "Nothing was deleted"
		return a, nil
	}

	a.ledger.ClearAllData()
	a.refresh()
	a.logState.query = ""
	a.add.reset(a.data.Categories, a.now(), a.formWidth())
	a.settings.notice = "All data cleared"
	return a, a.setFlash("All data cleared")
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
	dangerStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	type field struct {
		label string
		value string
	}
	fields := []field{
		{"Monthly budget", a.money(a.data.MonthlyBudget)},
		{"Add category", fmt.Sprintf("%d categories", len(a.data.Categories))},
		{"Theme", theme.Active.Label},
		{"Clear all data", "expenses, categories and budget"},
	}

	innerW := components.CardInnerWidth(cw)
	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker + label + value)
			used := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			if pad := innerW - used; pad > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	switch {
	case a.settings.confirmClear:
		formBody.WriteString("\n")
		formBody.WriteString(dangerStyle.Render("Delete every expense and reset categories and budget? [y] yes  [any] no"))
	case a.settings.saveErr != nil:
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(a.settings.saveErr.Error()))
	case a.settings.notice != "":
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render(a.settings.notice))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit/toggle  [Esc] cancel"))

	// Categories card
	cats := labelStyle.Render(strings.Join(a.data.Categories, " · "))

	// About card
	var about strings.Builder
	about.WriteString(labelStyle.Render("Version:      ") + valueStyle.Render(Version) + "\n")
	about.WriteString(labelStyle.Render("Expenses:     ") + valueStyle.Render(cli.FormatNumber(int64(len(a.data.Expenses)))) + "\n")
	about.WriteString(labelStyle.Render("Database:     ") + valueStyle.Render(truncStr(a.cfg.DBPath(), innerW-14)) + "\n")
	about.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(truncStr(config.Path(), innerW-14)) + "\n")
	about.WriteString(labelStyle.Render("Log file:     ") + valueStyle.Render(truncStr(a.cfg.LogPath(), innerW-14)))

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Categories", cats, cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("About cyros", about.String(), cw))
	return b.String()
}
