package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodge-arcade/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long:  `Shows the presets accepted by 'dodge play --difficulty'.`,
	Args:  cobra.NoArgs,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	presets := config.Presets()

	// Calculate column widths
	maxLen := len("Preset")
	for _, p := range presets {
		if len(p) > maxLen {
			maxLen = len(p)
		}
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxLen, "Preset", "Description")
	fmt.Printf("  %-*s  %s\n", maxLen, "------", "-----------")
	for _, p := range presets {
		fmt.Printf("  %-*s  %s\n", maxLen, p, config.PresetDescription(p))
	}

	fmt.Println()
	fmt.Println("Run 'dodge play --difficulty <preset>' to use one.")
}
