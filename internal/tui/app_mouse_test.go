package tui

import (
	"testing"

	"github.com/theirongolddev/cyros/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTabAtXMatchesTabWidths(t *testing.T) {
	n := len(components.Tabs)
	for active := 0; active < n; active++ {
		a := App{activeTab: active}
		pos := 0

		for i := 0; i < n; i++ {
			w := tabWidthForTest(i, active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < n-1 {
				pos++ // separator
			}
		}
		if got := a.tabAtX(pos + 5); got != -1 {
			t.Fatalf("active=%d x past last tab -> %d, want -1", active, got)
		}
	}
}

func tabWidthForTest(tabIdx, activeIdx int) int {
	nameWidths := []int{
		len("Home"),
		len("Add"),
		len("Log"),
		len("Trends"),
		len("Settings"),
	}

	w := nameWidths[tabIdx] + 2 // horizontal padding in tab renderer
	if tabIdx != activeIdx && tabIdx == tabSettings {
		w += 3 // inactive Settings adds "[x]"
	}
	return w
}

func TestMouseClickSwitchesTab(t *testing.T) {
	a := newRestoredApp(t)

	x := tabWidthForTest(tabHome, tabHome) + 1 + 1 // inside "Add"
	m, _ := a.Update(tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if got := m.(App).activeTab; got != tabAdd {
		t.Fatalf("activeTab = %d, want %d (Add)", got, tabAdd)
	}
}

func TestMouseIgnoredBeforeRestore(t *testing.T) {
	a := newTestApp(t)

	m, _ := a.Update(tea.MouseMsg{X: 8, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if got := m.(App).activeTab; got != tabHome {
		t.Fatalf("activeTab = %d before restore, want Home", got)
	}
}
