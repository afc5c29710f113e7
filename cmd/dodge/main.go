// dodge is a terminal arcade game: slide left and right to avoid the blocks
// falling from the top of the screen.
//
// Usage:
//
//	dodge play               - Play in this terminal
//	dodge menu               - Pick a difficulty interactively
//	dodge serve              - Start SSH server for remote play
//	dodge scores             - Browse recorded runs
//	dodge presets            - List difficulty presets
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.dodge/scores.db)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodge",
	Short: "Dodge - avoid the falling blocks in your terminal",
	Long: `Dodge is a terminal arcade game. Blocks fall from the top of the
playfield, faster and more often as your score grows. Every block that
falls past you is worth 10 points; touching one ends the run.

Available commands:
  play     - Play in this terminal
  menu     - Pick a difficulty interactively
  serve    - Start SSH server for remote play
  scores   - Browse recorded runs
  presets  - List difficulty presets

Examples:
  dodge play
  dodge play --difficulty hard
  dodge serve --ssh :2222
  dodge scores --stats`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dodge/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(presetsCmd)
}
