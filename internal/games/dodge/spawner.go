package dodge

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/dodge-arcade/internal/config"
	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// Spawner creates obstacles on a shrinking cooldown.
type Spawner struct {
	rng      *rand.Rand
	obs      config.ObstacleConfig
	spawn    config.SpawnConfig
	elapsed  float64 // Accumulated milliseconds since the last spawn
	interval float64 // Current cooldown in milliseconds
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(seed int64, obs config.ObstacleConfig, spawn config.SpawnConfig) *Spawner {
	s := &Spawner{
		obs:   obs,
		spawn: spawn,
	}
	s.Reset(seed)
	return s
}

// Reset restores the initial interval, clears the accumulator and reseeds.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.elapsed = 0
	s.interval = s.spawn.InitialIntervalMs
}

// Interval returns the current cooldown in milliseconds.
func (s *Spawner) Interval() float64 {
	return s.interval
}

// Advance adds elapsedMs to the accumulator. It reports true when the
// cooldown has passed; the accumulator then restarts from zero and the
// interval shrinks by the decay factor, never below the floor.
func (s *Spawner) Advance(elapsedMs float64) bool {
	s.elapsed += elapsedMs
	if s.elapsed <= s.interval {
		return false
	}

	s.elapsed = 0
	if s.interval > s.spawn.MinIntervalMs {
		s.interval = math.Max(s.spawn.MinIntervalMs, s.interval*s.spawn.Decay)
	}
	return true
}

// Spawn builds a new obstacle just above the playfield. Faster obstacles come
// with higher levels and with raw score.
func (s *Spawner) Spawn(level int, score, fieldW float64) Obstacle {
	size := s.obs.MinSize + s.rng.Float64()*(s.obs.MaxSize-s.obs.MinSize)
	x := math.Max(s.obs.LeftMargin, s.rng.Float64()*(fieldW-size-s.obs.RightMargin))
	base := s.obs.MinSpeed + s.rng.Float64()*s.obs.SpeedRange
	speed := base + float64(level-1)*s.obs.LevelSpeedBonus + score*s.obs.ScoreSpeedFactor

	return Obstacle{
		Entity: Entity{
			Box:  core.NewBox(x, -size, size, size),
			Kind: core.SpriteObstacle,
		},
		Speed: speed,
	}
}
