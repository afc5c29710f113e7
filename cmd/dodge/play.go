package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodge-arcade/internal/audio"
	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
	"github.com/vovakirdan/dodge-arcade/internal/games/dodge"
	"github.com/vovakirdan/dodge-arcade/internal/platform/tui"
	"github.com/vovakirdan/dodge-arcade/internal/storage"
)

// classicGameID keeps runs without particle effects on their own board.
const classicGameID = "dodge-classic"

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagClassic    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play dodge",
	Long: `Start a game in this terminal.

Controls:
  Left/A/H     - Move left
  Right/D/L    - Move right
  Down/S/J     - Stop
  Mouse click  - Hold left or right half of the playfield
  Enter/Space  - Start
  R/Space      - Restart (after game over)
  M            - Mute sound
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower first spawns, gentler speed ramp
  normal - Default tuning
  hard   - Fast first spawns, steeper speed ramp
  fixed  - Spawn interval never shrinks

Examples:
  dodge play
  dodge play --difficulty hard
  dodge play --classic --mute
  dodge play --config ./my-dodge.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	playCmd.Flags().BoolVar(&flagClassic, "classic", false, "Play without particle effects")
}

// session holds what every game in one process shares.
type session struct {
	logger *log.Logger
	store  *storage.Store // nil when the database could not be opened
	kv     *storage.SafeKV
	audio  *audio.Player
	closer []func()
}

// openSession opens the log file, the scores database and the speaker.
// Failures of the database or speaker degrade to in-memory scores and
// silence.
func openSession(audioCfg config.AudioConfig) (*session, error) {
	s := &session{}

	var logOut io.Writer = io.Discard
	if f, err := openLogFile(); err == nil {
		s.closer = append(s.closer, func() { f.Close() })
		logOut = f
	}
	logger, err := newLogger(logOut, "dodge")
	if err != nil {
		s.Close()
		return nil, err
	}
	s.logger = logger

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the high score lives in memory
		logger.Warn("scores database unavailable", "error", err)
		s.kv = storage.NewSafeKV(nil, logger)
	} else {
		s.store = store
		s.kv = storage.NewSafeKV(store, logger)
		s.closer = append(s.closer, func() { store.Close() })
	}

	s.audio = audio.NewPlayer(audioCfg, logger)
	if err := s.audio.Init(); err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	s.closer = append(s.closer, s.audio.Close)
	if flagMute {
		s.audio.SetMuted(true)
	}

	return s, nil
}

// Close releases everything in reverse order of opening.
func (s *session) Close() {
	for i := len(s.closer) - 1; i >= 0; i-- {
		s.closer[i]()
	}
	s.closer = nil
}

// applyVariant returns a copy of base with a preset and the classic switch
// applied, along with the score table id of the variant.
func applyVariant(base config.DodgeConfig, preset string, classic bool) (config.DodgeConfig, string, error) {
	cfg := base
	if preset != "" {
		p, ok := config.ParsePreset(preset)
		if !ok {
			return cfg, "", fmt.Errorf("unknown difficulty %q (run 'dodge presets')", preset)
		}
		config.ApplyDodgePreset(&cfg, p)
	}
	gameID := dodge.ID
	if classic {
		config.ApplyClassic(&cfg)
		gameID = classicGameID
	}
	return cfg, gameID, nil
}

// terminalConfig reads the terminal size, falling back to 80x24.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// play runs one game until the player quits.
func (s *session) play(cfg config.DodgeConfig, gameID string, rc core.RuntimeConfig) error {
	opts := tui.Options{
		Config:  cfg,
		Runtime: rc,
		GameID:  gameID,
		KV:      s.kv,
		Audio:   s.audio,
		Logger:  s.logger,
	}
	if s.store != nil {
		opts.Scores = s.store
	}
	return tui.Run(opts)
}

func runPlay(_ *cobra.Command, _ []string) error {
	base, err := config.LoadDodge(flagConfig)
	if err != nil {
		return err
	}
	cfg, gameID, err := applyVariant(base, flagDifficulty, flagClassic)
	if err != nil {
		return err
	}

	s, err := openSession(cfg.Audio)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.play(cfg, gameID, terminalConfig()); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
