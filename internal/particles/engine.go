// Package particles simulates short-lived decorative particles driven by
// gravity and drag.
package particles

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// Default engine tuning.
const (
	DefaultGravity = 300.0
	DefaultDrag    = 0.99
)

// Kind selects how a particle is drawn. It has no effect on physics.
type Kind uint8

const (
	KindCircle Kind = iota
	KindBone
)

// Sprite maps the particle kind to a renderer sprite.
func (k Kind) Sprite() core.SpriteKind {
	if k == KindBone {
		return core.SpriteParticleBone
	}
	return core.SpriteParticleCircle
}

// ParseKind resolves "bone" or "circle".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "bone":
		return KindBone, nil
	case "circle", "":
		return KindCircle, nil
	default:
		return KindCircle, fmt.Errorf("particles: unknown kind %q", s)
	}
}

// Range is a [Min, Max) sampling range.
type Range struct {
	Min, Max float64
}

func (r Range) sample(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Particle is one live particle. Life is remaining seconds.
type Particle struct {
	X, Y          float64
	VX, VY        float64
	Rotation      float64
	RotationSpeed float64
	Life          float64
	Size          float64
	Color         core.Color
	Kind          Kind
}

// Alpha returns the draw opacity: the remaining life clamped to [0, 1].
// Particles living longer than a second stay fully opaque until their last second.
func (p Particle) Alpha() float64 {
	return core.ClampF(p.Life, 0, 1)
}

// Burst describes a batch of particles emitted at one instant.
type Burst struct {
	Count int
	Speed Range
	Life  Range
	Size  Range
	Kind  Kind
}

// withDefaults fills zero fields the way the original effect did.
func (b Burst) withDefaults() Burst {
	if b.Count == 0 {
		b.Count = 12
	}
	if b.Speed == (Range{}) {
		b.Speed = Range{Min: 40, Max: 180}
	}
	if b.Life == (Range{}) {
		b.Life = Range{Min: 0.6, Max: 1.2}
	}
	if b.Size == (Range{}) {
		b.Size = Range{Min: 4, Max: 8}
	}
	return b
}

// Engine owns the live particle set.
type Engine struct {
	particles []Particle
	rng       *rand.Rand
	gravity   float64
	drag      float64
}

// NewEngine creates an engine with the default gravity and drag.
func NewEngine(seed int64) *Engine {
	return &Engine{
		particles: make([]Particle, 0, 64),
		rng:       rand.New(rand.NewSource(seed)),
		gravity:   DefaultGravity,
		drag:      DefaultDrag,
	}
}

// NewEngineFromConfig creates an engine using the configured physics.
func NewEngineFromConfig(seed int64, cfg config.ParticleConfig) *Engine {
	e := NewEngine(seed)
	e.gravity = cfg.Gravity
	e.drag = cfg.Drag
	return e
}

// Reseed replaces the random source, used when a session restarts.
func (e *Engine) Reseed(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
}

// Spawn emits a burst centered on (x, y).
func (e *Engine) Spawn(x, y float64, color core.Color, b Burst) {
	b = b.withDefaults()
	for i := 0; i < b.Count; i++ {
		angle := e.rng.Float64() * math.Pi * 2
		speed := b.Speed.sample(e.rng)
		size := b.Size.sample(e.rng)

		e.particles = append(e.particles, Particle{
			X:             x,
			Y:             y,
			VX:            math.Cos(angle) * speed,
			VY:            math.Sin(angle) * speed,
			Size:          size,
			Kind:          b.Kind,
			Color:         color,
			Life:          b.Life.sample(e.rng),
			Rotation:      e.rng.Float64() * math.Pi * 2,
			RotationSpeed: (e.rng.Float64() - 0.5) * 5,
		})
	}
}

// Update ages and moves every particle by dt seconds.
// Drag is a fixed per-update factor, so its strength depends on frame rate.
func (e *Engine) Update(dt float64) {
	alive := e.particles[:0]
	for _, p := range e.particles {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}

		p.VY += e.gravity * dt
		p.VX *= e.drag
		p.VY *= e.drag

		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Rotation += p.RotationSpeed * dt

		alive = append(alive, p)
	}
	e.particles = alive
}

// Particles returns the live particles. Callers must not modify the slice.
func (e *Engine) Particles() []Particle {
	return e.particles
}

// Len returns the number of live particles.
func (e *Engine) Len() int {
	return len(e.particles)
}

// Clear removes every particle.
func (e *Engine) Clear() {
	e.particles = e.particles[:0]
}

// BurstFromConfig converts a YAML burst into an engine burst and its color.
func BurstFromConfig(b config.BurstConfig) (Burst, core.Color, error) {
	kind, err := ParseKind(b.Kind)
	if err != nil {
		return Burst{}, core.ColorDefault, err
	}
	color, err := core.ParseColor(b.Color)
	if err != nil {
		return Burst{}, core.ColorDefault, fmt.Errorf("particles: %w", err)
	}
	return Burst{
		Count: b.Count,
		Speed: Range{Min: b.Speed.Min, Max: b.Speed.Max},
		Life:  Range{Min: b.Life.Min, Max: b.Life.Max},
		Size:  Range{Min: b.Size.Min, Max: b.Size.Max},
		Kind:  kind,
	}, color, nil
}
