package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/grid-agent/internal/core"
	"github.com/vovakirdan/grid-agent/internal/registry"
)

type menuStub struct{ id string }

func (g *menuStub) ID() string { return g.id }
func (g *menuStub) Title() string { return "Menu " + g.id }
func (g *menuStub) Reset(core.RuntimeConfig) {}
func (g *menuStub) Render(*core.Screen) {}
func (g *menuStub) State() core.GameState { return core.GameState{} }
func (g *menuStub) Step(core.InputFrame, time.Duration) core.StepResult { return core.StepResult{} }

func init() {
	registry.Register("menu_a", func() registry.Game { return &menuStub{id: "menu_a"} })
	registry.Register("menu_b", func() registry.Game { return &menuStub{id: "menu_b"} })
}

func sendKey(m MenuModel, msg tea.KeyMsg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuNavigationAndSelect(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, nil)
	if len(m.items) < 2 {
		t.Fatalf("Expected registered games in menu, got %d", len(m.items))
	}

	m = sendKey(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("Cursor should not move above the first item, got %d", m.cursor)
	}
	m = sendKey(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 1 {
		t.Errorf("Expected cursor 1, got %d", m.cursor)
	}
	for range 10 {
		m = sendKey(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(m.items)-1 {
		t.Errorf("Cursor should stop at the last item, got %d", m.cursor)
	}

	m = sendKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != m.items[len(m.items)-1].ID {
		t.Errorf("Expected last item selected, got %q", m.Selected())
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, nil)
	m = sendKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.quitting || m.Selected() != "" {
		t.Error("q should quit without a selection")
	}
	if m.View() != "" {
		t.Error("Quitting menu should render nothing")
	}
}

func TestMenuViewShowsLastResult(t *testing.T) {
	last := core.GameState{Score: 1230, Level: 3}
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, &last)

	view := m.View()
	if !strings.Contains(view, "1230 points, level 3") {
		t.Errorf("Expected last result in view:\n%s", view)
	}
	if !strings.Contains(view, "Menu menu_a") {
		t.Errorf("Expected game titles in view:\n%s", view)
	}
}
