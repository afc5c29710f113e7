package tui

import (
	"math"
	"time"

	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// cellAspect is how many columns match one row visually.
const cellAspect = 2.0

// Layout places the playfield on the terminal.
type Layout struct {
	Frame   core.Rect // Border around the playfield
	Field   core.Rect // Cells the playfield maps onto
	HUDRow  int
	HelpRow int
}

// ComputeLayout fits a fieldW×fieldH playfield into a screenW×screenH
// terminal, keeping its aspect ratio where the terminal allows. Row 0 holds
// the HUD and the last row the key help.
func ComputeLayout(screenW, screenH int, fieldW, fieldH float64) Layout {
	rows := core.Max(1, screenH-4)
	cols := int(math.Round(float64(rows) * fieldW / fieldH * cellAspect))
	if cols > screenW-2 {
		cols = screenW - 2
	}
	cols = core.Max(1, cols)

	x := core.Max(0, (screenW-cols-2)/2)
	return Layout{
		Frame:   core.NewRect(x, 1, cols+2, rows+2),
		Field:   core.NewRect(x+1, 2, cols, rows),
		HUDRow:  0,
		HelpRow: rows + 3,
	}
}

// CenterColumn returns the screen column splitting the playfield in halves.
func (l Layout) CenterColumn() int {
	return l.Field.X + l.Field.W/2
}

// ScreenRenderer implements core.Renderer on a character screen. Playfield
// units are scaled onto the layout's field rectangle.
type ScreenRenderer struct {
	screen *core.Screen
	layout Layout
	fieldW float64
	fieldH float64
	now    func() time.Time
}

// NewScreenRenderer creates a renderer for a fieldW×fieldH playfield.
func NewScreenRenderer(screen *core.Screen, fieldW, fieldH float64) *ScreenRenderer {
	r := &ScreenRenderer{
		screen: screen,
		fieldW: fieldW,
		fieldH: fieldH,
		now:    time.Now,
	}
	r.Resize(screen.Width(), screen.Height())
	return r
}

// Resize resizes the screen and recomputes the layout.
func (r *ScreenRenderer) Resize(w, h int) {
	r.screen.Resize(w, h)
	r.layout = ComputeLayout(w, h, r.fieldW, r.fieldH)
}

// Layout returns the current layout.
func (r *ScreenRenderer) Layout() Layout {
	return r.layout
}

// Screen returns the backing screen.
func (r *ScreenRenderer) Screen() *core.Screen {
	return r.screen
}

// Clear implements core.Renderer.
func (r *ScreenRenderer) Clear() {
	r.screen.Clear()
	r.screen.DrawBox(r.layout.Frame, core.ColorGray)
}

// FillOverlay implements core.Renderer by recoloring and dimming everything
// drawn so far.
func (r *ScreenRenderer) FillOverlay(c core.Color) {
	r.screen.Tint(c)
}

// cellX maps a playfield x to a screen column.
func (r *ScreenRenderer) cellX(x float64) int {
	return r.layout.Field.X + int(math.Floor(x*float64(r.layout.Field.W)/r.fieldW))
}

// cellY maps a playfield y to a screen row.
func (r *ScreenRenderer) cellY(y float64) int {
	return r.layout.Field.Y + int(math.Floor(y*float64(r.layout.Field.H)/r.fieldH))
}

// span maps a playfield interval to at least one cell.
func span(from, to int) (int, int) {
	if to <= from {
		to = from + 1
	}
	return from, to
}

// fadeAlpha is the particle opacity below which particles are drawn faint.
const fadeAlpha = 0.5

// set draws one cell, clipped to the playfield.
func (r *ScreenRenderer) set(x, y int, cell core.Cell) {
	f := r.layout.Field
	if x < f.X || x >= f.Right() || y < f.Y || y >= f.Bottom() {
		return
	}
	r.screen.SetCell(x, y, cell)
}

// animation returns the bounce offset in playfield units and the tilt angle
// in radians for the current instant.
func (r *ScreenRenderer) animation() (bounce, tilt float64) {
	ms := float64(r.now().UnixMilli())
	return math.Sin(ms/150) * 2, math.Sin(ms/100) * 0.1
}

// DrawSprite implements core.Renderer.
func (r *ScreenRenderer) DrawSprite(kind core.SpriteKind, x, y, w, h float64, opts core.SpriteOptions) {
	bounce, tilt := r.animation()
	if opts.Bounce {
		y += bounce
	}

	switch kind {
	case core.SpritePlayer:
		lean := 0
		if opts.Tilt && math.Abs(tilt) > 0.05 {
			lean = int(math.Copysign(1, tilt))
		}
		r.drawBlock(x, y, w, h, '█', core.ColorBrightYellow, lean)
	case core.SpriteObstacle:
		r.drawBlock(x, y, w, h, '▓', core.ColorBrown, 0)
	case core.SpriteParticleCircle, core.SpriteParticleBone:
		cx, cy := x+w/2, y+h/2
		r.set(r.cellX(cx), r.cellY(cy), core.Cell{
			Rune:  particleGlyph(kind, opts.Rotation),
			Color: opts.Color,
			Faint: opts.Alpha < fadeAlpha,
		})
	}
}

// drawBlock fills the sprite's cells. lean shifts the top row sideways.
func (r *ScreenRenderer) drawBlock(x, y, w, h float64, ch rune, c core.Color, lean int) {
	x0, x1 := span(r.cellX(x), r.cellX(x+w))
	y0, y1 := span(r.cellY(y), r.cellY(y+h))

	for cy := y0; cy < y1; cy++ {
		shift := 0
		if cy == y0 && y1-y0 > 1 {
			shift = lean
		}
		for cx := x0; cx < x1; cx++ {
			r.set(cx+shift, cy, core.Cell{Rune: ch, Color: c})
		}
	}
}

// particleGlyph picks a character for a particle. Bones show their rotation.
func particleGlyph(kind core.SpriteKind, rotation float64) rune {
	if kind == core.SpriteParticleBone {
		bones := [...]rune{'─', '╲', '│', '╱'}
		a := math.Mod(rotation, math.Pi)
		if a < 0 {
			a += math.Pi
		}
		return bones[int(a/(math.Pi/4)+0.5)%len(bones)]
	}
	return '●'
}
