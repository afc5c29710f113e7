package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/games/dodge"
	"github.com/vovakirdan/dodge-arcade/internal/platform/tui"
	"github.com/vovakirdan/dodge-arcade/internal/storage"
)

var (
	flagClear bool
	flagStats bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Browse the best and most recent runs in an interactive table.

Runs played with --classic are kept on their own board.

Examples:
  dodge scores
  dodge scores --stats
  dodge scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Print summary statistics instead of the table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run and the high score")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	gameIDs := []string{dodge.ID, classicGameID}

	switch {
	case flagClear:
		return clearScores(store, gameIDs)
	case flagStats:
		return printStats(store, gameIDs)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return tui.RunScoreboard(store, gameIDs, width, height)
}

// clearScores wipes the run history and the persisted high score.
func clearScores(store *storage.Store, gameIDs []string) error {
	for _, id := range gameIDs {
		if err := store.ClearScores(id); err != nil {
			return err
		}
	}
	for _, key := range highScoreKeys() {
		if err := store.DeleteNumber(key); err != nil {
			return err
		}
	}
	fmt.Println("Scores cleared.")
	return nil
}

func printStats(store *storage.Store, gameIDs []string) error {
	for _, id := range gameIDs {
		stats, err := store.GetGameStats(id)
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", id)
		if stats.GamesCount == 0 {
			fmt.Println("  No runs recorded yet.")
			fmt.Println()
			continue
		}
		fmt.Printf("  %-12s %d\n", "Runs", stats.GamesCount)
		fmt.Printf("  %-12s %s\n", "Best", tui.FormatScore(stats.HighScore))
		fmt.Printf("  %-12s %d\n", "Best level", stats.BestLevel)
		fmt.Printf("  %-12s %.1f\n", "Average", stats.AvgScore)
		fmt.Printf("  %-12s %d\n", "Total", stats.TotalScore)
		fmt.Printf("  %-12s %s\n", "Last played", stats.LastPlayed.Format("2006-01-02 15:04"))
		fmt.Println()
	}

	for _, key := range highScoreKeys() {
		if best, ok, err := store.GetNumber(key); err == nil && ok {
			fmt.Printf("%-24s %s\n", key, tui.FormatScore(int(best)))
		}
	}
	return nil
}

// highScoreKeys returns the kv keys of the regular and classic records.
func highScoreKeys() []string {
	regular := config.DefaultDodgeConfig()
	classic := regular
	config.ApplyClassic(&classic)
	return []string{regular.Scoring.HighScoreKey, classic.Scoring.HighScoreKey}
}
