package dodge

import "github.com/vovakirdan/dodge-arcade/internal/core"

// Entity is a positioned, sized thing the renderer can draw.
type Entity struct {
	core.Box
	Kind core.SpriteKind
}

// Bounds returns the entity's raw sprite box.
func (e Entity) Bounds() core.Box {
	return e.Box
}

// Player is the horizontally moving sprite at the bottom of the playfield.
type Player struct {
	Entity
	Speed float64 // Units per second
}

// NewPlayer places the player one sprite width left of the playfield's
// vertical center line, bottomOffset above the playfield bottom.
func NewPlayer(fieldW, fieldH, w, h, speed, bottomOffset float64) Player {
	return Player{
		Entity: Entity{
			Box:  core.NewBox(fieldW/2-w, fieldH-bottomOffset, w, h),
			Kind: core.SpritePlayer,
		},
		Speed: speed,
	}
}

// Move shifts the player by direction*speed*dt and clamps it to
// [margin, fieldW-w-margin].
func (p *Player) Move(direction, dt, fieldW, margin float64) {
	p.X += direction * p.Speed * dt
	p.X = core.ClampF(p.X, margin, fieldW-p.W-margin)
}

// Obstacle is a falling square.
type Obstacle struct {
	Entity
	Speed float64 // Fall speed, units per second
}

// Fall advances the obstacle by speed*dt.
func (o *Obstacle) Fall(dt float64) {
	o.Y += o.Speed * dt
}
