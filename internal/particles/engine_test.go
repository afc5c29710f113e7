package particles

import (
	"math"
	"testing"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
)

const eps = 1e-9

func TestSpawnBurst(t *testing.T) {
	e := NewEngine(1)
	b := Burst{
		Count: 28,
		Speed: Range{Min: 100, Max: 300},
		Size:  Range{Min: 10, Max: 20},
		Life:  Range{Min: 0.6, Max: 1.2},
		Kind:  KindBone,
	}
	e.Spawn(180, 550, core.ColorPink, b)

	if e.Len() != 28 {
		t.Fatalf("Len() = %d, expected 28", e.Len())
	}

	for i, p := range e.Particles() {
		if p.X != 180 || p.Y != 550 {
			t.Errorf("particle %d spawned at (%f, %f), expected origin", i, p.X, p.Y)
		}
		speed := math.Hypot(p.VX, p.VY)
		if speed < 100-eps || speed >= 300+eps {
			t.Errorf("particle %d speed %f outside [100, 300)", i, speed)
		}
		if p.Size < 10 || p.Size >= 20 {
			t.Errorf("particle %d size %f outside [10, 20)", i, p.Size)
		}
		if p.Life < 0.6 || p.Life >= 1.2 {
			t.Errorf("particle %d life %f outside [0.6, 1.2)", i, p.Life)
		}
		if p.Rotation < 0 || p.Rotation >= 2*math.Pi {
			t.Errorf("particle %d rotation %f outside [0, 2π)", i, p.Rotation)
		}
		if p.RotationSpeed < -2.5 || p.RotationSpeed >= 2.5 {
			t.Errorf("particle %d rotation speed %f outside [-2.5, 2.5)", i, p.RotationSpeed)
		}
		if p.Color != core.ColorPink || p.Kind != KindBone {
			t.Errorf("particle %d has color %v kind %v", i, p.Color, p.Kind)
		}
	}
}

func TestSpawnDefaults(t *testing.T) {
	e := NewEngine(2)
	e.Spawn(0, 0, core.ColorDefault, Burst{})

	if e.Len() != 12 {
		t.Errorf("empty burst should default to 12 particles, got %d", e.Len())
	}
	for _, p := range e.Particles() {
		if p.Life < 0.6 || p.Life >= 1.2 {
			t.Errorf("default life %f outside [0.6, 1.2)", p.Life)
		}
	}
}

func TestUpdatePhysics(t *testing.T) {
	e := NewEngine(3)
	e.particles = append(e.particles, Particle{
		X: 10, Y: 20, VX: 100, VY: -50,
		Rotation: 1, RotationSpeed: 2, Life: 1,
	})

	dt := 0.1
	e.Update(dt)

	p := e.Particles()[0]

	// Gravity first, then drag on both axes, then integration
	wantVY := (-50 + 300*dt) * 0.99
	wantVX := 100 * 0.99
	if math.Abs(p.VY-wantVY) > eps {
		t.Errorf("VY = %f, expected %f", p.VY, wantVY)
	}
	if math.Abs(p.VX-wantVX) > eps {
		t.Errorf("VX = %f, expected %f", p.VX, wantVX)
	}
	if math.Abs(p.X-(10+wantVX*dt)) > eps {
		t.Errorf("X = %f, expected %f", p.X, 10+wantVX*dt)
	}
	if math.Abs(p.Y-(20+wantVY*dt)) > eps {
		t.Errorf("Y = %f, expected %f", p.Y, 20+wantVY*dt)
	}
	if math.Abs(p.Rotation-1.2) > eps {
		t.Errorf("Rotation = %f, expected 1.2", p.Rotation)
	}
	if math.Abs(p.Life-0.9) > eps {
		t.Errorf("Life = %f, expected 0.9", p.Life)
	}
}

func TestDragIsPerUpdate(t *testing.T) {
	// Two half steps apply drag twice; one full step applies it once.
	a := NewEngine(4)
	b := NewEngine(4)
	a.particles = append(a.particles, Particle{VX: 100, Life: 5})
	b.particles = append(b.particles, Particle{VX: 100, Life: 5})

	a.Update(0.05)
	b.Update(0.025)
	b.Update(0.025)

	if math.Abs(a.Particles()[0].VX-99) > eps {
		t.Errorf("one update VX = %f, expected 99", a.Particles()[0].VX)
	}
	if math.Abs(b.Particles()[0].VX-98.01) > eps {
		t.Errorf("two updates VX = %f, expected 98.01", b.Particles()[0].VX)
	}
}

func TestUpdateRemovesExpired(t *testing.T) {
	e := NewEngine(5)
	e.particles = append(e.particles,
		Particle{Life: 0.03},
		Particle{Life: 0.5},
		Particle{Life: 0.05},
	)

	e.Update(0.05)

	if e.Len() != 1 {
		t.Fatalf("Len() = %d, expected 1 survivor", e.Len())
	}
	if math.Abs(e.Particles()[0].Life-0.45) > eps {
		t.Errorf("survivor life = %f, expected 0.45", e.Particles()[0].Life)
	}
}

func TestParticlesEventuallyDie(t *testing.T) {
	e := NewEngine(6)
	e.Spawn(0, 0, core.ColorMint, Burst{Count: 8, Life: Range{Min: 0.6, Max: 1.2}})

	for i := 0; i < 30; i++ {
		e.Update(0.05)
	}
	if e.Len() != 0 {
		t.Errorf("all particles should be gone after 1.5s, %d left", e.Len())
	}
}

func TestAlpha(t *testing.T) {
	tests := []struct {
		life, want float64
	}{
		{1.2, 1},
		{1, 1},
		{0.4, 0.4},
		{-0.1, 0},
	}
	for _, tc := range tests {
		if got := (Particle{Life: tc.life}).Alpha(); got != tc.want {
			t.Errorf("Alpha() with life %f = %f, expected %f", tc.life, got, tc.want)
		}
	}
}

func TestClear(t *testing.T) {
	e := NewEngine(7)
	e.Spawn(0, 0, core.ColorDefault, Burst{Count: 5})
	e.Clear()
	if e.Len() != 0 {
		t.Errorf("Clear() left %d particles", e.Len())
	}
}

func TestBurstFromConfig(t *testing.T) {
	cfg := config.DefaultDodgeConfig().Particles.Hit

	b, color, err := BurstFromConfig(cfg)
	if err != nil {
		t.Fatalf("BurstFromConfig() error: %v", err)
	}
	if b.Count != 28 || b.Kind != KindBone || color != core.ColorPink {
		t.Errorf("unexpected burst %+v color %v", b, color)
	}
	if b.Speed != (Range{Min: 100, Max: 300}) {
		t.Errorf("Speed = %+v", b.Speed)
	}

	cfg.Kind = "confetti"
	if _, _, err := BurstFromConfig(cfg); err == nil {
		t.Error("BurstFromConfig should reject unknown kinds")
	}
}

func TestNewEngineFromConfig(t *testing.T) {
	e := NewEngineFromConfig(1, config.ParticleConfig{Gravity: 0, Drag: 1})
	e.particles = append(e.particles, Particle{VX: 10, VY: 10, Life: 1})
	e.Update(0.1)

	p := e.Particles()[0]
	if p.VX != 10 || p.VY != 10 {
		t.Errorf("no gravity and no drag should keep velocity, got (%f, %f)", p.VX, p.VY)
	}
}
