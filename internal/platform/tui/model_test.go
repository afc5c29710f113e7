package tui

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
)

type savedScore struct {
	gameID    string
	score     int
	level     int
	sessionID string
}

type fakeSaver struct {
	saved []savedScore
	err   error
}

func (f *fakeSaver) SaveScore(gameID string, score, level int, sessionID string) (int64, error) {
	f.saved = append(f.saved, savedScore{gameID, score, level, sessionID})
	return int64(len(f.saved)), f.err
}

func newTestModel(t *testing.T, saver ScoreSaver) Model {
	t.Helper()
	m, err := NewModel(Options{
		Config:    config.DefaultDodgeConfig(),
		Runtime:   core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Scores:    saver,
		SessionID: "test-session",
	})
	if err != nil {
		t.Fatalf("NewModel() error: %v", err)
	}
	return m
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelStartsIdle(t *testing.T) {
	m := newTestModel(t, nil)

	if m.Game().Phase() != core.PhaseIdle {
		t.Fatalf("phase = %s, expected Idle", m.Game().Phase())
	}
	if m.SessionID() != "test-session" {
		t.Errorf("SessionID() = %q", m.SessionID())
	}

	// Ticks before start draw the title without moving anything
	m = send(m, TickMsg(time.Unix(100, 0)))
	if !strings.Contains(m.View(), "D O D G E") {
		t.Error("start screen should show the title")
	}
}

func TestModelEnterStartsRun(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Game().Phase() != core.PhaseRunning {
		t.Fatalf("phase = %s, expected Running", m.Game().Phase())
	}
}

func TestModelClickStartsRun(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if m.Game().Phase() != core.PhaseRunning {
		t.Fatalf("phase = %s, expected Running after a click", m.Game().Phase())
	}
}

func TestModelMovesPlayer(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(m, tea.KeyMsg{Type: tea.KeyLeft})

	t0 := time.Unix(100, 0)
	m = send(m, TickMsg(t0))                            // First frame: dt 0
	m = send(m, TickMsg(t0.Add(50*time.Millisecond)))   // dt 0.05
	m = send(m, TickMsg(t0.Add(1050*time.Millisecond))) // Clamped to 0.05

	want := 160 - 2*0.05*280
	if got := m.Game().Player().X; math.Abs(got-want) > 1e-9 {
		t.Errorf("player x = %f, expected %f", got, want)
	}
}

func TestModelMouseHalves(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	center := m.renderer.Layout().CenterColumn()
	m = send(m, tea.MouseMsg{X: center + 2, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if in := m.input.Intent(); !in.Right || in.Left {
		t.Errorf("intent = %+v, expected right after a right-half press", in)
	}

	m = send(m, tea.MouseMsg{X: center + 2, Y: 10, Action: tea.MouseActionRelease})
	if m.input.Intent().Moving() {
		t.Error("release should stop the pointer hold")
	}
}

func TestModelMuteToggle(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}})

	if !m.audio.Muted() {
		t.Error("m should mute audio")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 50})

	if w, h := m.renderer.Screen().Width(), m.renderer.Screen().Height(); w != 120 || h != 50 {
		t.Errorf("screen = %dx%d, expected 120x50", w, h)
	}
	if m.renderer.Layout().Field.H != 46 {
		t.Errorf("field rows = %d, expected 46", m.renderer.Layout().Field.H)
	}
}

func TestModelSaveScore(t *testing.T) {
	saver := &fakeSaver{}
	m := newTestModel(t, saver)

	m.hud.Publish(core.HUDState{Score: 120, Level: 2, GameOver: true, Phase: core.PhaseGameOver})
	m.saveScore()

	if len(saver.saved) != 1 {
		t.Fatalf("saved %d scores, expected 1", len(saver.saved))
	}
	want := savedScore{"dodge", 120, 2, "test-session"}
	if saver.saved[0] != want {
		t.Errorf("saved %+v, expected %+v", saver.saved[0], want)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	saver := &fakeSaver{}
	m := newTestModel(t, saver)

	m.hud.Publish(core.HUDState{Score: 0, Level: 1, GameOver: true, Phase: core.PhaseGameOver})
	m.saveScore()

	if len(saver.saved) != 0 {
		t.Errorf("a zero score should not be recorded, got %+v", saver.saved)
	}
}

func TestModelSaveFailureIgnored(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	m := newTestModel(t, saver)

	m.hud.Publish(core.HUDState{Score: 50, Level: 1, GameOver: true, Phase: core.PhaseGameOver})
	m.saveScore()

	if len(saver.saved) != 1 {
		t.Errorf("save should have been attempted once, got %d", len(saver.saved))
	}
}

func TestModelInvalidConfig(t *testing.T) {
	cfg := config.DefaultDodgeConfig()
	cfg.Playfield.Width = 0

	if _, err := NewModel(Options{Config: cfg}); err == nil {
		t.Error("expected an error for a zero-width playfield")
	}
}
