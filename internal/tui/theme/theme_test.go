package theme

import "testing"

func TestByNameFallsBack(t *testing.T) {
	if got := ByName("nope"); got.Name != Midnight.Name {
		t.Errorf("ByName(nope) = %s, want midnight", got.Name)
	}
	if got := ByName("paper"); got.Name != "paper" {
		t.Errorf("ByName(paper) = %s", got.Name)
	}
}

func TestToggleDark(t *testing.T) {
	t.Cleanup(func() { SetActive(Midnight.Name) })

	SetActive("midnight")
	if got := ToggleDark(); got != "paper" || Active.Dark {
		t.Errorf("toggle from midnight = %s (dark %v), want paper", got, Active.Dark)
	}
	if got := ToggleDark(); got != "midnight" || !Active.Dark {
		t.Errorf("toggle from paper = %s, want midnight", got)
	}

	SetActive("terminal")
	if got := ToggleDark(); got != "paper" {
		t.Errorf("toggle from terminal = %s, want paper", got)
	}
}
