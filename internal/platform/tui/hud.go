package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// FormatScore pads a score to six digits and groups thousands,
// e.g. 1234 becomes "001,234".
func FormatScore(score int) string {
	if score < 0 {
		score = 0
	}
	digits := fmt.Sprintf("%06d", score)

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return b.String()
}

// HUDSink keeps the last state the game published.
type HUDSink struct {
	state     core.HUDState
	published int
}

// Publish implements core.HUD.
func (h *HUDSink) Publish(s core.HUDState) {
	h.state = s
	h.published++
}

// State returns the last published state.
func (h *HUDSink) State() core.HUDState {
	return h.state
}

// Published returns how many states have been received.
func (h *HUDSink) Published() int {
	return h.published
}

// highScoreLabel renders the high score, starred when it was set this run.
func highScoreLabel(s core.HUDState) string {
	label := FormatScore(s.HighScore)
	if s.NewHighScore {
		label = "★ " + label
	}
	return label
}

// drawHUD writes the score bar across the top row.
func drawHUD(screen *core.Screen, l Layout, s core.HUDState, muted bool) {
	left := "SCORE " + FormatScore(s.Score)
	mid := "LV " + strconv.Itoa(s.Level)
	right := "HI " + highScoreLabel(s)
	if muted {
		mid += "  ♪off"
	}

	screen.DrawText(1, l.HUDRow, left, core.ColorBrightWhite)
	screen.DrawTextCentered(l.HUDRow, mid, core.ColorCyan)

	hiColor := core.ColorYellow
	if s.NewHighScore {
		hiColor = core.ColorBrightYellow
	}
	screen.DrawText(screen.Width()-1-len([]rune(right)), l.HUDRow, right, hiColor)
}

// drawHelp writes the key hints below the playfield.
func drawHelp(screen *core.Screen, l Layout, phase core.Phase) {
	var help string
	switch phase {
	case core.PhaseIdle:
		help = "enter/space play · m mute · q quit"
	case core.PhaseRunning:
		help = "←/→ or a/d move · s stop · click halves · m mute · q quit"
	case core.PhaseGameOver:
		help = "r/space restart · q quit"
	}
	screen.DrawTextCentered(l.HelpRow, help, core.ColorGray)
}

// drawPanel draws a bordered box of text lines centered on the playfield.
func drawPanel(screen *core.Screen, l Layout, lines []string, colors []core.Color) {
	width := 0
	for _, line := range lines {
		width = core.Max(width, len([]rune(line)))
	}
	w := width + 4
	h := len(lines) + 2
	x := l.Field.X + (l.Field.W-w)/2
	y := l.Field.Y + (l.Field.H-h)/2

	screen.DrawRect(core.NewRect(x, y, w, h), ' ', core.ColorDefault)
	screen.DrawBox(core.NewRect(x, y, w, h), core.ColorBrightWhite)
	for i, line := range lines {
		lx := x + (w-len([]rune(line)))/2
		screen.DrawText(lx, y+1+i, line, colors[i])
	}
}

// drawStartScreen shows the title before the first run.
func drawStartScreen(screen *core.Screen, l Layout, s core.HUDState) {
	lines := []string{"D O D G E", "", "Dodge the falling blocks", "", "press enter to play"}
	colors := []core.Color{core.ColorBrightYellow, core.ColorDefault, core.ColorWhite, core.ColorDefault, core.ColorBrightGreen}
	if s.HighScore > 0 {
		lines = append(lines, "", "best "+FormatScore(s.HighScore))
		colors = append(colors, core.ColorDefault, core.ColorYellow)
	}
	drawPanel(screen, l, lines, colors)
}

// drawGameOver shows the final score and the restart hint.
func drawGameOver(screen *core.Screen, l Layout, s core.HUDState) {
	lines := []string{"GAME OVER", "", "score " + FormatScore(s.Score), "level " + strconv.Itoa(s.Level)}
	colors := []core.Color{core.ColorBrightRed, core.ColorDefault, core.ColorBrightWhite, core.ColorWhite}
	if s.NewHighScore {
		lines = append(lines, "★ new high score ★")
		colors = append(colors, core.ColorBrightYellow)
	} else {
		lines = append(lines, "best "+FormatScore(s.HighScore))
		colors = append(colors, core.ColorYellow)
	}
	lines = append(lines, "", "press r to restart")
	colors = append(colors, core.ColorDefault, core.ColorBrightGreen)
	drawPanel(screen, l, lines, colors)
}
