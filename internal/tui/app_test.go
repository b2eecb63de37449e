package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/cyros/internal/config"
	"github.com/theirongolddev/cyros/internal/ledger"
	"github.com/theirongolddev/cyros/internal/model"
	"github.com/theirongolddev/cyros/internal/store"
	"github.com/theirongolddev/cyros/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

var testNow = time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T) App {
	t.Helper()
	l := ledger.New(store.NewExpenseStore(store.NewMemoryKV(), nil), ledger.Config{})
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = l.Flush(ctx)
	})

	a := NewApp(l, config.DefaultConfig(), nil)
	a.now = func() time.Time { return testNow }
	a.saveConfig = func(config.Config) error { return nil }

	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App)
}

// newRestoredApp returns an app past the restore step, as if restoreCmd had run.
func newRestoredApp(t *testing.T) App {
	t.Helper()
	a := newTestApp(t)
	a.ledger.Restore(context.Background())
	m, _ := a.Update(RestoredMsg{})
	return m.(App)
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func press(t *testing.T, a App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		m, _ := a.Update(keyMsg(k))
		a = m.(App)
	}
	return a
}

func addExpense(a App, amount float64, category, date, notes string) {
	d, _ := model.ParseDate(date)
	a.ledger.AddExpense(model.NewExpense{Amount: amount, Category: category, Date: d, Notes: notes})
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestKeysGatedUntilRestored(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "l")
	if a.activeTab != tabHome {
		t.Fatalf("tab switched to %d before restore", a.activeTab)
	}

	m, cmd := a.Update(keyMsg("q"))
	if !isQuit(cmd) {
		t.Fatal("q should quit even before restore")
	}

	a = m.(App)
	m, _ = a.Update(RestoredMsg{Found: false})
	a = press(t, m.(App), "l")
	if a.activeTab != tabLog {
		t.Fatalf("activeTab = %d after restore, want Log", a.activeTab)
	}
}

func TestTabKeysAndArrows(t *testing.T) {
	a := newRestoredApp(t)

	tests := []struct {
		key  string
		want int
	}{
		{"t", tabTrends},
		{"x", tabSettings},
		{"h", tabHome},
		{"l", tabLog},
	}
	for _, tt := range tests {
		a = press(t, a, tt.key)
		if a.activeTab != tt.want {
			t.Errorf("after %q activeTab = %d, want %d", tt.key, a.activeTab, tt.want)
		}
	}

	a = press(t, a, "h")
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.(App).activeTab; got != tabSettings {
		t.Errorf("left from Home = %d, want Settings (wraps)", got)
	}
}

func TestEscLeavesAddTab(t *testing.T) {
	a := newRestoredApp(t)

	a = press(t, a, "a")
	if a.activeTab != tabAdd {
		t.Fatalf("activeTab = %d, want Add", a.activeTab)
	}
	// Letters go to the form while it is open.
	a = press(t, a, "l")
	if a.activeTab != tabAdd {
		t.Fatalf("typing in the form switched tab to %d", a.activeTab)
	}
	a = press(t, a, "esc")
	if a.activeTab != tabHome {
		t.Fatalf("esc left activeTab = %d, want Home", a.activeTab)
	}
}

func TestLogDeleteConfirm(t *testing.T) {
	a := newRestoredApp(t)
	addExpense(a, 10, "Food", "2024-03-01", "lunch")
	addExpense(a, 20, "Bills", "2024-03-10", "power")
	a.refresh()

	// Newest first: the Bills row is under the cursor.
	a = press(t, a, "l", "d")
	if !a.logState.confirmDelete {
		t.Fatal("d should ask for confirmation")
	}
	a = press(t, a, "n")
	if got := len(a.ledger.Snapshot().Expenses); got != 2 {
		t.Fatalf("declined delete removed an expense, %d left", got)
	}

	a = press(t, a, "d", "y")
	snap := a.ledger.Snapshot()
	if len(snap.Expenses) != 1 || snap.Expenses[0].Category != "Food" {
		t.Fatalf("after delete = %+v, want only the Food expense", snap.Expenses)
	}
	if len(a.data.Expenses) != 1 {
		t.Fatal("app snapshot not refreshed after delete")
	}
}

func TestLogNavigationClamps(t *testing.T) {
	a := newRestoredApp(t)
	addExpense(a, 1, "Food", "2024-03-01", "")
	addExpense(a, 2, "Food", "2024-03-02", "")
	a.refresh()

	a = press(t, a, "l", "j", "j", "j")
	if a.logState.cursor != 1 {
		t.Errorf("cursor = %d, want 1", a.logState.cursor)
	}
	a = press(t, a, "k", "k")
	if a.logState.cursor != 0 {
		t.Errorf("cursor = %d, want 0", a.logState.cursor)
	}
	a = press(t, a, "G")
	if a.logState.cursor != 1 {
		t.Errorf("G cursor = %d, want 1", a.logState.cursor)
	}
}

func TestLogDeleteOnEmptyIsNoop(t *testing.T) {
	a := newRestoredApp(t)
	a = press(t, a, "l", "d")
	if a.logState.confirmDelete {
		t.Fatal("d on an empty log should not ask for confirmation")
	}
}

func TestLogSearch(t *testing.T) {
	a := newRestoredApp(t)
	addExpense(a, 5, "Food", "2024-03-01", "coffee")
	addExpense(a, 50, "Bills", "2024-03-02", "internet")
	a.refresh()

	a = press(t, a, "l", "/")
	if !a.logState.searching {
		t.Fatal("/ should open the search input")
	}
	a.logState.searchInput.SetValue("coffee")
	a = press(t, a, "enter")

	rows := a.visibleExpenses()
	if len(rows) != 1 || rows[0].Notes != "coffee" {
		t.Fatalf("filtered rows = %+v", rows)
	}

	a = press(t, a, "esc")
	if len(a.visibleExpenses()) != 2 {
		t.Fatal("esc should clear the filter")
	}
}

func TestSettingsBudgetRejectsNonPositive(t *testing.T) {
	a := newRestoredApp(t)
	a = press(t, a, "x", "enter")
	if !a.settings.editing {
		t.Fatal("enter on budget should start editing")
	}
	a.settings.input.SetValue("0")
	a = press(t, a, "enter")

	if a.settings.saveErr == nil || !errors.Is(a.settings.saveErr, model.ErrInvalidAmount) {
		t.Fatalf("saveErr = %v, want ErrInvalidAmount", a.settings.saveErr)
	}
	if got := a.ledger.Snapshot().MonthlyBudget; got != model.DefaultMonthlyBudget {
		t.Fatalf("budget = %v after rejected edit, want default", got)
	}

	a = press(t, a, "enter")
	a.settings.input.SetValue("2500")
	a = press(t, a, "enter")
	if got := a.ledger.Snapshot().MonthlyBudget; got != 2500 {
		t.Fatalf("budget = %v, want 2500", got)
	}
	if a.data.MonthlyBudget != 2500 {
		t.Fatal("app snapshot not refreshed after budget edit")
	}
}

func TestSettingsAddCategory(t *testing.T) {
	a := newRestoredApp(t)
	a = press(t, a, "x", "j", "enter")
	a.settings.input.SetValue("  Health ")
	a = press(t, a, "enter")

	if !a.ledger.Snapshot().HasCategory("Health") {
		t.Fatal("Health was not added")
	}

	a = press(t, a, "enter")
	a.settings.input.SetValue("Food")
	a = press(t, a, "enter")
	if a.settings.saveErr == nil {
		t.Fatal("duplicate category should report an error")
	}
	if got := len(a.ledger.Snapshot().Categories); got != len(model.DefaultCategories())+1 {
		t.Fatalf("categories = %d", got)
	}
}

func TestSettingsThemeToggle(t *testing.T) {
	t.Cleanup(func() { theme.SetActive("midnight") })
	theme.SetActive("midnight")

	a := newRestoredApp(t)
	var saved config.Config
	a.saveConfig = func(c config.Config) error {
		saved = c
		return nil
	}

	a = press(t, a, "x", "j", "j", "enter")
	if theme.Active.Name != "paper" {
		t.Fatalf("active theme = %s, want paper", theme.Active.Name)
	}
	if saved.Appearance.Theme != "paper" || a.cfg.Appearance.Theme != "paper" {
		t.Fatalf("theme not persisted: saved=%q cfg=%q", saved.Appearance.Theme, a.cfg.Appearance.Theme)
	}

	a.saveConfig = func(config.Config) error { return errors.New("read-only") }
	a = press(t, a, "enter")
	if theme.Active.Name != "midnight" {
		t.Fatalf("active theme = %s, want midnight", theme.Active.Name)
	}
	if a.settings.saveErr == nil {
		t.Fatal("failed config save should be reported")
	}
}

func TestSettingsClearAll(t *testing.T) {
	a := newRestoredApp(t)
	addExpense(a, 10, "Food", "2024-03-01", "")
	a.ledger.UpdateBudget(100)
	a.ledger.AddCategory("Health")
	a.refresh()

	a = press(t, a, "x", "j", "j", "j", "enter")
	if !a.settings.confirmClear {
		t.Fatal("clear should ask for confirmation")
	}
	a = press(t, a, "n")
	if len(a.ledger.Snapshot().Expenses) != 1 {
		t.Fatal("declined clear removed data")
	}

	a = press(t, a, "enter", "y")
	snap := a.ledger.Snapshot()
	if len(snap.Expenses) != 0 || snap.MonthlyBudget != model.DefaultMonthlyBudget || snap.HasCategory("Health") {
		t.Fatalf("after clear = %+v, want defaults", snap)
	}
}

func TestExpenseFromForm(t *testing.T) {
	in, err := expenseFromForm(&addValues{amount: "12,50", category: "Food", date: "2024-03-02", notes: " tacos "})
	if err != nil {
		t.Fatal(err)
	}
	if in.Amount != 12.5 || in.Category != "Food" || in.Notes != "tacos" || in.Date.String() != "2024-03-02" {
		t.Fatalf("expenseFromForm = %+v", in)
	}

	if _, err := expenseFromForm(&addValues{amount: "abc", category: "Food", date: "2024-03-02"}); err == nil {
		t.Fatal("invalid amount accepted")
	}
	if _, err := expenseFromForm(&addValues{amount: "1", category: "Food", date: "03/02/2024"}); err == nil {
		t.Fatal("invalid date accepted")
	}
}

func TestAddFormDefaults(t *testing.T) {
	a := newRestoredApp(t)
	if a.add.form == nil || a.add.vals == nil {
		t.Fatal("add form not built after restore")
	}
	if a.add.vals.date != "2024-03-15" {
		t.Errorf("default date = %q, want today", a.add.vals.date)
	}
	if a.add.vals.category != "Food" {
		t.Errorf("default category = %q, want first category", a.add.vals.category)
	}
}

func TestViewFillsTerminal(t *testing.T) {
	a := newRestoredApp(t)
	addExpense(a, 42, "Food", "2024-03-01", "groceries")
	addExpense(a, 3100, "Bills", "2024-02-01", "rent")
	a.refresh()

	for _, key := range []string{"h", "l", "t", "x", "a"} {
		v := press(t, a, key).View()
		if got := lipgloss.Height(v); got != 40 {
			t.Errorf("tab %q view height = %d, want 40", key, got)
		}
	}
}

func TestViewBeforeRestoreShowsSpinnerStatus(t *testing.T) {
	a := newTestApp(t)
	if v := a.View(); !strings.Contains(v, "Restoring data") {
		t.Fatal("status bar should report the pending restore")
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := newRestoredApp(t)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	if v := m.(App).View(); !strings.Contains(v, "too narrow") {
		t.Fatal("narrow terminal message missing")
	}
}

func TestHelpOverlayToggle(t *testing.T) {
	a := newRestoredApp(t)
	a = press(t, a, "?")
	if !a.showHelp {
		t.Fatal("? should open help")
	}
	a = press(t, a, "l")
	if a.showHelp || a.activeTab != tabHome {
		t.Fatalf("any key should only close help: showHelp=%v tab=%d", a.showHelp, a.activeTab)
	}
}
