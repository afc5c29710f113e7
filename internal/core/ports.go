package core

import "sync"

// SpriteKind selects what a renderer draws for an entity.
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteObstacle
	SpriteParticleCircle
	SpriteParticleBone
)

// SpriteOptions carries per-draw presentation hints.
type SpriteOptions struct {
	Tilt     bool    // Wobble while the player is moving
	Bounce   bool    // Small vertical bob
	Rotation float64 // Radians, particles only
	Alpha    float64 // 0..1, particles only
	Color    Color
}

// Renderer draws the playfield. Coordinates are playfield units.
type Renderer interface {
	Clear()
	DrawSprite(kind SpriteKind, x, y, w, h float64, opts SpriteOptions)
	FillOverlay(c Color)
}

// Cue names a sound effect.
type Cue string

const (
	CueScore Cue = "score"
	CueHit   Cue = "hit"
)

// AudioCue plays sound effects. Implementations must not block the frame and
// must swallow their own failures.
type AudioCue interface {
	Play(cue Cue)
}

// KeyValueStore persists numeric values. Implementations swallow failures and
// return def when the value is unavailable.
type KeyValueStore interface {
	GetNumber(key string, def float64) float64
	SetNumber(key string, value float64)
}

// InputSource exposes the current movement intent.
type InputSource interface {
	Intent() Intent
}

// HUD receives presentation state after every state-affecting update.
type HUD interface {
	Publish(state HUDState)
}

// NopAudio discards every cue.
type NopAudio struct{}

// Play implements AudioCue.
func (NopAudio) Play(Cue) {}

// NopHUD discards HUD updates.
type NopHUD struct{}

// Publish implements HUD.
func (NopHUD) Publish(HUDState) {}

// StaticInput is an InputSource with a fixed intent, handy for tests and bots.
type StaticInput Intent

// Intent implements InputSource.
func (s StaticInput) Intent() Intent {
	return Intent(s)
}

// MemoryStore is a KeyValueStore kept in process memory.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]float64
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]float64)}
}

// GetNumber implements KeyValueStore.
func (m *MemoryStore) GetNumber(key string, def float64) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.values[key]; ok {
		return v
	}
	return def
}

// SetNumber implements KeyValueStore.
func (m *MemoryStore) SetNumber(key string, value float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}
