package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// palette maps game colors to terminal colors. Pink and mint are the
// nearest 256-color matches for the hit and score bursts.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorPink:          "210",
	core.ColorMint:          "157",
	core.ColorBrown:         "137",
}

// cellStyle returns the style for a cell. Unknown colors use the terminal
// default; faint cells are dimmed.
func cellStyle(c core.Cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if fg, ok := palette[c.Color]; ok {
		style = style.Foreground(fg)
	}
	if c.Faint {
		style = style.Faint(true)
	}
	return style
}

// sameStyle reports whether two cells render with the same style.
func sameStyle(a, b core.Cell) bool {
	return a.Color == b.Color && a.Faint == b.Faint
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of cells sharing a style are rendered together.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		for x := 0; x < s.Width(); {
			first := s.GetCell(x, y)
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if !sameStyle(cell, first) {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(cellStyle(first).Render(run.String()))
		}
	}
	return sb.String()
}
