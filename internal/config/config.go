// Package config provides YAML-based game configuration loading and
// difficulty presets for the dodge game.
package config

// DodgeConfig contains all tuning for the dodge game.
type DodgeConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Player    PlayerConfig    `yaml:"player"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Collision CollisionConfig `yaml:"collision"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Particles ParticleConfig  `yaml:"particles"`
	Loop      LoopConfig      `yaml:"loop"`
	Input     InputConfig     `yaml:"input"`
	Audio     AudioConfig     `yaml:"audio"`
}

// PlayfieldConfig defines the simulation space in abstract units.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player sprite and movement.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Units per second
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from the playfield bottom to the sprite top
	EdgeMargin   float64 `yaml:"edge_margin"`   // Keeps the sprite off the side walls
}

// ObstacleConfig defines obstacle sizing and fall speed.
type ObstacleConfig struct {
	MinSize          float64 `yaml:"min_size"`
	MaxSize          float64 `yaml:"max_size"`
	MinSpeed         float64 `yaml:"min_speed"`
	SpeedRange       float64 `yaml:"speed_range"`        // Random speed in [min, min+range)
	LevelSpeedBonus  float64 `yaml:"level_speed_bonus"`  // Added per level above 1
	ScoreSpeedFactor float64 `yaml:"score_speed_factor"` // Added per score point
	LeftMargin       float64 `yaml:"left_margin"`
	RightMargin      float64 `yaml:"right_margin"`
	ExitMargin       float64 `yaml:"exit_margin"` // How far below the playfield an obstacle falls before it counts
}

// SpawnConfig defines the spawn cadence.
type SpawnConfig struct {
	InitialIntervalMs float64 `yaml:"initial_interval_ms"`
	MinIntervalMs     float64 `yaml:"min_interval_ms"`
	Decay             float64 `yaml:"decay"` // Interval multiplier per spawn
}

// CollisionConfig defines hitbox tolerance.
type CollisionConfig struct {
	Margin float64 `yaml:"margin"` // Fraction trimmed from each side
}

// ScoringConfig defines scoring and leveling.
type ScoringConfig struct {
	PointsPerObstacle float64 `yaml:"points_per_obstacle"`
	PointsPerLevel    float64 `yaml:"points_per_level"`
	HighScoreKey      string  `yaml:"high_score_key"`
}

// ParticleConfig defines the particle engine and the two bursts.
type ParticleConfig struct {
	Enabled bool        `yaml:"enabled"`
	Gravity float64     `yaml:"gravity"`
	Drag    float64     `yaml:"drag"` // Velocity multiplier per update
	Hit     BurstConfig `yaml:"hit"`
	Score   BurstConfig `yaml:"score"`
}

// BurstConfig describes one particle burst.
type BurstConfig struct {
	Count int        `yaml:"count"`
	Color string     `yaml:"color"`
	Kind  string     `yaml:"kind"` // "bone" or "circle"
	Speed RangeValue `yaml:"speed"`
	Size  RangeValue `yaml:"size"`
	Life  RangeValue `yaml:"life"`
}

// RangeValue is an inclusive-exclusive [min, max) sampling range.
type RangeValue struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// LoopConfig defines frame timing.
type LoopConfig struct {
	MaxDt float64 `yaml:"max_dt"` // Seconds
}

// InputConfig defines how terminal key presses become held directions.
type InputConfig struct {
	HoldMs int `yaml:"hold_ms"` // A key press keeps its direction held this long
}

// AudioConfig defines the sound cues.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
	SampleRate   int     `yaml:"sample_rate"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the presets in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset maps a CLI string to a preset. Empty input means "use config".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}
