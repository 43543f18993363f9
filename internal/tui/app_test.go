package tui

import (
	"strings"
	"testing"

	"findash/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestNewApp_NoPathShowsOpenForm(t *testing.T) {
	a := NewApp("", config.DefaultConfig(), false)
	_ = a.Init()

	if a.openForm == nil {
		t.Fatal("openForm not set for an empty path")
	}
	view := a.View()
	if strings.Contains(view, "No dataset loaded") {
		t.Fatalf("view shows the empty state instead of the open form:\n%s", view)
	}
	if !strings.Contains(view, "Smart Finance Dashboard") {
		t.Fatalf("view missing the open-form header:\n%s", view)
	}
}

func TestNewApp_PathStartsLoading(t *testing.T) {
	a := NewApp("statement.csv", config.DefaultConfig(), false)
	cmd := a.Init()

	if cmd == nil {
		t.Fatal("Init returned no cmd for a given path")
	}
	if !a.loading {
		t.Fatal("loading not set while the initial parse runs")
	}
	if view := a.View(); !strings.Contains(view, "Loading data") {
		t.Fatalf("view = %q, want the loading state", view)
	}
}

func TestNewApp_KeysGatedDuringInitialLoad(t *testing.T) {
	a := NewApp("statement.csv", config.DefaultConfig(), false)
	_ = a.Init()

	model, _ := a.updateKeys(keyMsg("c"))
	got := model.(App)
	if got.activeTab != 0 {
		t.Fatalf("tab switched to %d during load", got.activeTab)
	}
}
