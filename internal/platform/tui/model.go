package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/dodge-arcade/internal/audio"
	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
	"github.com/vovakirdan/dodge-arcade/internal/games/dodge"
	"github.com/vovakirdan/dodge-arcade/internal/loop"
)

// ScoreSaver records finished runs. *storage.Store implements it.
type ScoreSaver interface {
	SaveScore(gameID string, score, level int, sessionID string) (int64, error)
}

// Options configures a Model.
type Options struct {
	Config    config.DodgeConfig
	Runtime   core.RuntimeConfig
	GameID    string             // Score table key, "dodge" by default
	KV        core.KeyValueStore // High score store; in-memory when nil
	Scores    ScoreSaver         // Run history; optional
	Audio     *audio.Player      // Silent when nil
	SessionID string             // Generated when empty
	Logger    *log.Logger
}

// Model is the Bubble Tea model running one dodge session.
type Model struct {
	game     *dodge.Game
	driver   *loop.Driver
	input    *HeldInput
	keys     *KeyMapper
	renderer *ScreenRenderer
	hud      *HUDSink
	audio    *audio.Player
	scores   ScoreSaver
	config   core.RuntimeConfig
	gameID   string
	session  string
	logger   *log.Logger

	quitting   bool
	scoreSaved bool // Whether the score has been saved for the current game over
}

// frame adapts the game and renderer to the loop driver.
type frame struct {
	game     *dodge.Game
	renderer *ScreenRenderer
	hud      *HUDSink
	audio    *audio.Player
}

func (f frame) Update(dt float64, in core.Intent) {
	f.game.Update(dt, in)
}

func (f frame) Draw() {
	f.game.Draw(f.renderer)

	l := f.renderer.Layout()
	s := f.renderer.Screen()
	state := f.hud.State()
	drawHUD(s, l, state, f.audio.Muted())
	drawHelp(s, l, state.Phase)
	switch state.Phase {
	case core.PhaseIdle:
		drawStartScreen(s, l, state)
	case core.PhaseGameOver:
		drawGameOver(s, l, state)
	}
}

// NewModel creates a model with the game in its Idle phase.
func NewModel(opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rc := opts.Runtime
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}
	if rc.ScreenW <= 0 || rc.ScreenH <= 0 {
		def := core.DefaultConfig()
		rc.ScreenW, rc.ScreenH = def.ScreenW, def.ScreenH
	}
	player := opts.Audio
	if player == nil {
		player = audio.NewSilent()
	}
	gameID := opts.GameID
	if gameID == "" {
		gameID = dodge.ID
	}
	session := opts.SessionID
	if session == "" {
		session = uuid.NewString()
	}
	logger = logger.With("session", session)

	hud := &HUDSink{}
	game, err := dodge.New(opts.Config, dodge.Options{
		Audio:  player,
		Store:  opts.KV,
		HUD:    hud,
		Logger: logger,
		Seed:   rc.Seed,
	})
	if err != nil {
		return Model{}, err
	}
	hud.Publish(game.HUD())

	cfg := game.Config()
	renderer := NewScreenRenderer(core.NewScreen(rc.ScreenW, rc.ScreenH), cfg.Playfield.Width, cfg.Playfield.Height)
	input := NewHeldInput(time.Duration(cfg.Input.HoldMs) * time.Millisecond)
	f := frame{game: game, renderer: renderer, hud: hud, audio: player}

	return Model{
		game:     game,
		driver:   loop.NewDriver(cfg.Loop.MaxDt, input, f),
		input:    input,
		keys:     NewKeyMapper(),
		renderer: renderer,
		hud:      hud,
		audio:    player,
		scores:   opts.Scores,
		config:   rc,
		gameID:   gameID,
		session:  session,
		logger:   logger,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.renderer.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg, m.game.Phase()); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight, core.ActionStop:
		m.input.Press(action, time.Now())
	case core.ActionStart, core.ActionRestart:
		m.begin()
	case core.ActionMute:
		muted := m.audio.ToggleMute()
		m.logger.Debug("mute toggled", "muted", muted)
	}

	return m, nil
}

// handleMouse turns clicks on the playfield halves into held directions.
// A click on the start screen starts the first run; restarting after a game
// over needs the keyboard.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.game.Phase() == core.PhaseIdle {
			m.begin()
			return m, nil
		}
		m.input.PointerDown(msg.X, m.renderer.Layout().CenterColumn())
	case tea.MouseActionRelease:
		m.input.PointerUp()
	}
	return m, nil
}

// begin starts or restarts a run depending on the phase.
func (m *Model) begin() {
	var err error
	switch m.game.Phase() {
	case core.PhaseIdle:
		err = m.game.Start()
	case core.PhaseGameOver:
		err = m.game.Restart()
	default:
		return
	}
	if err != nil {
		m.logger.Warn("cannot start run", "err", err)
		return
	}
	m.input.Release()
	m.driver.Reset()
	m.scoreSaved = false
}

// handleTick runs one frame.
func (m Model) handleTick(ts time.Time) (tea.Model, tea.Cmd) {
	m.driver.Frame(ts)

	// Save score on game over (once)
	if m.game.Phase() == core.PhaseGameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished run. Failures are logged and ignored.
func (m Model) saveScore() {
	state := m.hud.State()
	m.logger.Info("run finished", "score", state.Score, "level", state.Level, "high_score", state.HighScore)
	if m.scores == nil || state.Score <= 0 {
		return
	}
	if _, err := m.scores.SaveScore(m.gameID, state.Score, state.Level, m.session); err != nil {
		m.logger.Warn("could not save score", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".dodge", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.gameID, timestamp))
	if err := os.WriteFile(path, []byte(m.renderer.Screen().String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.renderer.Screen())
}

// Game returns the underlying game.
func (m Model) Game() *dodge.Game {
	return m.game
}

// SessionID returns the identifier stamped on this session's runs.
func (m Model) SessionID() string {
	return m.session
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on the playfield halves steer
	)

	_, err = p.Run()
	return err
}
