package config

import "strings"

// PresetDescription returns a one-line summary for CLI help.
func PresetDescription(preset DifficultyPreset) string {
	switch preset {
	case DifficultyEasy:
		return "Slower first spawns, gentler speed ramp"
	case DifficultyNormal:
		return "Default tuning"
	case DifficultyHard:
		return "Fast first spawns, steeper speed ramp"
	case DifficultyFixed:
		return "Spawn interval never shrinks"
	default:
		return ""
	}
}

// ApplyDodgePreset modifies the config based on a difficulty preset.
// Normal leaves the loaded config untouched.
func ApplyDodgePreset(cfg *DodgeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.InitialIntervalMs = 1000
		cfg.Spawn.Decay = 0.99
		cfg.Obstacles.LevelSpeedBonus = 20
		cfg.Obstacles.ScoreSpeedFactor = 0.10
	case DifficultyHard:
		cfg.Spawn.InitialIntervalMs = 600
		cfg.Spawn.Decay = 0.97
		cfg.Obstacles.LevelSpeedBonus = 40
		cfg.Obstacles.ScoreSpeedFactor = 0.20
	case DifficultyFixed:
		cfg.Spawn.Decay = 1.0
	}
}

// ClassicKeySuffix separates the classic variant's high score from the
// regular one.
const ClassicKeySuffix = "_classic"

// ApplyClassic turns cfg into the classic variant: no particle effects and a
// high score of its own.
func ApplyClassic(cfg *DodgeConfig) {
	cfg.Particles.Enabled = false
	if !strings.HasSuffix(cfg.Scoring.HighScoreKey, ClassicKeySuffix) {
		cfg.Scoring.HighScoreKey += ClassicKeySuffix
	}
}
