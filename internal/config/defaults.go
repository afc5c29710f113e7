package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the built-in tuning. It mirrors
// defaults/dodge.yaml and is used if the embedded file cannot be parsed.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Playfield: PlayfieldConfig{
			Width:  400,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:        40,
			Height:       40,
			Speed:        280,
			BottomOffset: 70,
			EdgeMargin:   5,
		},
		Obstacles: ObstacleConfig{
			MinSize:          30,
			MaxSize:          70,
			MinSpeed:         120,
			SpeedRange:       140,
			LevelSpeedBonus:  30,
			ScoreSpeedFactor: 0.15,
			LeftMargin:       5,
			RightMargin:      10,
			ExitMargin:       50,
		},
		Spawn: SpawnConfig{
			InitialIntervalMs: 800,
			MinIntervalMs:     350,
			Decay:             0.98,
		},
		Collision: CollisionConfig{
			Margin: 0.15,
		},
		Scoring: ScoringConfig{
			PointsPerObstacle: 10,
			PointsPerLevel:    100,
			HighScoreKey:      "dodge_highscore",
		},
		Particles: ParticleConfig{
			Enabled: true,
			Gravity: 300,
			Drag:    0.99,
			Hit: BurstConfig{
				Count: 28,
				Color: "pink",
				Kind:  "bone",
				Speed: RangeValue{Min: 100, Max: 300},
				Size:  RangeValue{Min: 10, Max: 20},
				Life:  RangeValue{Min: 0.6, Max: 1.2},
			},
			Score: BurstConfig{
				Count: 8,
				Color: "mint",
				Kind:  "bone",
				Speed: RangeValue{Min: 50, Max: 150},
				Size:  RangeValue{Min: 8, Max: 12},
				Life:  RangeValue{Min: 0.6, Max: 1.2},
			},
		},
		Loop: LoopConfig{
			MaxDt: 0.05,
		},
		Input: InputConfig{
			HoldMs: 220,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.8,
			SampleRate:   44100,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for `dodge config` dumps.
func DefaultYAML() []byte {
	return defaultDodgeYAML
}
