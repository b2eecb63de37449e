// Package tui provides the interactive Bubble Tea dashboard for cyros.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/cyros/internal/cli"
	"github.com/theirongolddev/cyros/internal/config"
	"github.com/theirongolddev/cyros/internal/ledger"
	"github.com/theirongolddev/cyros/internal/log"
	"github.com/theirongolddev/cyros/internal/model"
	"github.com/theirongolddev/cyros/internal/tui/components"
	"github.com/theirongolddev/cyros/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Tab indices, in components.Tabs order.
const (
	tabHome = iota
	tabAdd
	tabLog
	tabTrends
	tabSettings
)

// RestoredMsg is sent when the persisted snapshot has been loaded.
type RestoredMsg struct {
	Found   bool
	Elapsed time.Duration
}

// flashClearMsg hides the status flash if it is still the one with id.
type flashClearMsg struct{ id int }

const flashDuration = 3 * time.Second

// Version is shown in the About card.
var Version = "dev"

// App is the root Bubble Tea model.
type App struct {
	ledger *ledger.Ledger
	cfg    config.Config
	log    *log.Logger
	now    func() time.Time

	saveConfig func(config.Config) error

	// Snapshot copy, refreshed after every mutation.
	data     model.ExpenseData
	restored bool

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	spinner spinner.Model

	// Status flash shown in the header row
	flash   string
	flashID int

	// Per-tab state
	add      addState
	logState logState
	settings settingsState
}

const (
	minTerminalWidth = 70
	compactWidth     = 110
	maxContentWidth  = 160
	minContentHeight = 5
)

// NewApp creates the dashboard over l. The ledger is restored asynchronously
// once the program starts; mutations stay disabled until then.
func NewApp(l *ledger.Ledger, cfg config.Config, logger *log.Logger) App {
	if logger == nil {
		logger = log.Discard()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		ledger:     l,
		cfg:        cfg,
		log:        logger.WithComponent(log.ComponentTUI),
		now:        time.Now,
		saveConfig: config.Save,
		data:       l.Snapshot(),
		spinner:    sp,
		settings:   newSettingsState(),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnableMouseCellMotion,
		restoreCmd(a.ledger),
		a.spinner.Tick,
	)
}

// restoreCmd loads the persisted snapshot off the UI goroutine.
func restoreCmd(l *ledger.Ledger) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		found := l.Restore(context.Background())
		return RestoredMsg{Found: found, Elapsed: time.Since(start)}
	}
}

// refresh re-reads the snapshot after a mutation and clamps per-tab cursors.
func (a *App) refresh() {
	a.data = a.ledger.Snapshot()
	a.logState.clamp(len(a.visibleExpenses()))
}

// setFlash shows msg in the header and schedules its removal.
func (a *App) setFlash(msg string) tea.Cmd {
	a.flashID++
	a.flash = msg
	id := a.flashID
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashClearMsg{id: id}
	})
}

func (a App) money(v float64) string {
	return cli.FormatMoney(v, a.cfg.General.CurrencySymbol)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.add.form != nil {
			a.add.form = a.add.form.WithWidth(a.formWidth())
		}
		return a, nil

	case RestoredMsg:
		a.restored = true
		a.refresh()
		a.log.Info("dashboard ready", "found", msg.Found, "elapsed", msg.Elapsed)
		a.add.reset(a.data.Categories, a.now(), a.formWidth())
		return a, a.add.form.Init()

	case flashClearMsg:
		if msg.id == a.flashID {
			a.flash = ""
		}
		return a, nil

	case spinner.TickMsg:
		if !a.restored {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.MouseMsg:
		return a.updateMouse(msg)

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	// Forward everything else (cursor blinks and the like) to the add form.
	if a.activeTab == tabAdd && a.add.form != nil {
		return a.updateAddForm(msg)
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !a.restored || a.showHelp {
		return a, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.activeTab == tabLog && !a.logState.searching {
			a.logState.move(-1, len(a.visibleExpenses()))
		}
	case tea.MouseButtonWheelDown:
		if a.activeTab == tabLog && !a.logState.searching {
			a.logState.move(1, len(a.visibleExpenses()))
		}
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// Nothing but quitting until the stored data is in memory.
	if !a.restored {
		if key == "q" {
			return a, tea.Quit
		}
		return a, nil
	}

	// Modal inputs own the keyboard.
	if a.activeTab == tabAdd && a.add.form != nil {
		if key == "esc" {
			a.add.reset(a.data.Categories, a.now(), a.formWidth())
			a.activeTab = tabHome
			return a, a.add.form.Init()
		}
		return a.updateAddForm(msg)
	}
	if a.activeTab == tabSettings && a.settings.editing {
		return a.updateSettingsInput(msg)
	}
	if a.activeTab == tabSettings && a.settings.confirmClear {
		return a.updateClearConfirm(msg)
	}
	if a.activeTab == tabLog && a.logState.searching {
		return a.updateLogSearch(msg)
	}
	if a.activeTab == tabLog && a.logState.confirmDelete {
		return a.updateDeleteConfirm(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch a.activeTab {
	case tabLog:
		if m, cmd, handled := a.updateLogKeys(key); handled {
			return m, cmd
		}
	case tabSettings:
		if m, cmd, handled := a.updateSettingsKeys(key); handled {
			return m, cmd
		}
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "left", "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	default:
		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
	}

	return a, nil
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  cyros needs at least %d columns.\n",
		a.width, minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings [][2]string
	}{
		{"Navigation", [][2]string{
			{"h a l t x", "Jump to tab"},
			{"← → / Tab", "Previous / next tab"},
			{"j k", "Move in lists"},
			{"g G", "First / last entry"},
		}},
		{"Actions", [][2]string{
			{"Enter", "Edit setting / submit"},
			{"d then y", "Delete expense (Log)"},
			{"/", "Search expenses (Log)"},
			{"Esc", "Back / cancel"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(s.title))
		b.WriteString("\n")
		for _, kb := range s.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", kb[0])),
				descStyle.Render(kb[1]))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + context row
	contextStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	contextAccent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	flashStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)

	ctx := contextStyle.Render(" ") + contextAccent.Render(cli.FormatMonth(a.now()))
	ctx += contextStyle.Render(" │ budget ") + contextAccent.Render(a.money(a.data.MonthlyBudget))
	if a.flash != "" {
		ctx += contextStyle.Render(" │ ") + flashStyle.Render(a.flash)
	}
	header := components.RenderTabBar(a.activeTab, w) + "\n" +
		lipgloss.NewStyle().Background(t.Surface).Width(w).Render(ctx)

	// 2. Status bar
	status, busy := "", ""
	if !a.restored {
		status = "Restoring data…"
		busy = a.spinner.View()
	} else {
		status = fmt.Sprintf("%d expenses", len(a.data.Expenses))
	}
	statusBar := components.RenderStatusBar(w, a.hints(), status, busy)

	// 3. Content zone height
	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	// 4. Tab content
	var content string
	switch a.activeTab {
	case tabHome:
		content = a.renderHomeTab(cw)
	case tabAdd:
		content = a.renderAddTab(cw)
	case tabLog:
		content = a.renderLogTab(cw, contentH)
	case tabTrends:
		content = a.renderTrendsTab(cw)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	// 5. Exact height, full-width background, centered when w > cw
	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// hints returns the status bar key hints for the active tab.
func (a App) hints() string {
	switch {
	case !a.restored:
		return "[q]uit"
	case a.activeTab == tabAdd:
		return "[Tab] next field  [Enter] submit  [Esc] back"
	case a.activeTab == tabLog && a.logState.confirmDelete:
		return "[y] delete  [any] cancel"
	case a.activeTab == tabLog:
		return "[j/k] move  [d] delete  [/] search  [?] help  [q] quit"
	case a.activeTab == tabSettings:
		return "[j/k] move  [Enter] select  [?] help  [q] quit"
	}
	return "[?] help  [q] quit"
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes follow RenderTabBar: tabs separated by one column.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}

var _ tea.Model = App{}
