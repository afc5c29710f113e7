package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/games/dodge"
	"github.com/vovakirdan/dodge-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty interactively",
	Long: `Start dodge with a difficulty picker.

After quitting a game you return to the picker to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the selected preset
  Tab          - Show scores
  Q            - Quit

Examples:
  dodge menu
  dodge menu --fps 30
  dodge menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound off")
}

func runMenu(_ *cobra.Command, _ []string) error {
	base, err := config.LoadDodge(flagConfig)
	if err != nil {
		return err
	}
	s, err := openSession(base.Audio)
	if err != nil {
		return err
	}
	defer s.Close()

	rc := terminalConfig()
	items := tui.DefaultMenuItems()

	// Menu loop
	for {
		best := int(s.kv.GetNumber(base.Scoring.HighScoreKey, 0))

		result, err := tui.RunMenu(items, best, rc)
		if err != nil {
			return err
		}
		rc = result.Config

		if result.Quit {
			return nil
		}

		if result.WantsScoreboard {
			if s.store == nil {
				fmt.Fprintln(os.Stderr, "Scores database unavailable.")
				continue
			}
			if err := tui.RunScoreboard(s.store, []string{dodge.ID, classicGameID}, rc.ScreenW, rc.ScreenH); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			continue // Back to menu
		}

		cfg, gameID, err := applyVariant(base, string(result.Item.Preset), result.Item.Classic)
		if err != nil {
			return err
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			rc.Seed = time.Now().UnixNano()
		}

		if err := s.play(cfg, gameID, rc); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
