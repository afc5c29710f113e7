package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
)

func TestDefaultMenuItems(t *testing.T) {
	items := DefaultMenuItems()

	if len(items) != len(config.Presets())+1 {
		t.Fatalf("got %d items, expected every preset plus classic", len(items))
	}
	if items[0].Title != "Easy" || items[0].Preset != config.DifficultyEasy {
		t.Errorf("first item = %+v, expected Easy", items[0])
	}
	last := items[len(items)-1]
	if !last.Classic || last.Preset != config.DifficultyNormal {
		t.Errorf("last item = %+v, expected classic normal", last)
	}
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(DefaultMenuItems(), 0, core.DefaultConfig())
	press := func(m MenuModel, msg tea.KeyMsg) MenuModel {
		next, _ := m.Update(msg)
		return next.(MenuModel)
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyUp}) // Already at the top
	m = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if cmd == nil {
		t.Fatal("selecting should quit the menu program")
	}
	if m.Selected() == nil || m.Selected().Preset != config.DifficultyHard {
		t.Errorf("selected = %+v, expected hard", m.Selected())
	}
}

func TestMenuCursorStopsAtBottom(t *testing.T) {
	items := DefaultMenuItems()
	m := NewMenuModel(items, 0, core.DefaultConfig())
	for i := 0; i < len(items)+3; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	if m.cursor != len(items)-1 {
		t.Errorf("cursor = %d, expected %d", m.cursor, len(items)-1)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(DefaultMenuItems(), 0, core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should request the scoreboard")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(MenuModel).IsQuitting() {
		t.Error("q should quit")
	}
}

func TestMenuViewShowsBest(t *testing.T) {
	m := NewMenuModel(DefaultMenuItems(), 1234, core.DefaultConfig())
	view := m.View()

	for _, want := range []string{"D O D G E", "best 001,234", "Classic"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
