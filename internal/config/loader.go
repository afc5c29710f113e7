package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dodge-arcade/internal/core"
)

// LoadDodge loads the dodge configuration.
// Search order: customPath -> ~/.dodge/configs/dodge.yaml -> ./configs/dodge.yaml -> embedded default
func LoadDodge(customPath string) (DodgeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DodgeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DodgeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("dodge.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "dodge.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultDodgeYAML)
	if err != nil {
		return DefaultDodgeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the built-in defaults so partial files only
// override what they mention, then validates the result.
func parse(data []byte) (DodgeConfig, error) {
	cfg := DefaultDodgeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dodge", "configs", filename)
}

// Validate checks the config for values the simulation cannot run with.
func (c DodgeConfig) Validate() error {
	var errs []error

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must be positive, got %gx%g", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive"))
	}
	if c.Player.Width+2*c.Player.EdgeMargin > c.Playfield.Width {
		errs = append(errs, fmt.Errorf("player (%g) with margins does not fit playfield width %g", c.Player.Width, c.Playfield.Width))
	}
	if c.Obstacles.MinSize <= 0 || c.Obstacles.MaxSize < c.Obstacles.MinSize {
		errs = append(errs, fmt.Errorf("obstacle size range [%g, %g] is invalid", c.Obstacles.MinSize, c.Obstacles.MaxSize))
	}
	if c.Obstacles.SpeedRange < 0 {
		errs = append(errs, fmt.Errorf("obstacles.speed_range must not be negative"))
	}
	if c.Spawn.InitialIntervalMs <= 0 || c.Spawn.MinIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("spawn intervals must be positive"))
	}
	if c.Spawn.Decay <= 0 || c.Spawn.Decay > 1 {
		errs = append(errs, fmt.Errorf("spawn.decay must be in (0, 1], got %g", c.Spawn.Decay))
	}
	if c.Collision.Margin < 0 || c.Collision.Margin >= 0.5 {
		errs = append(errs, fmt.Errorf("collision.margin must be in [0, 0.5), got %g", c.Collision.Margin))
	}
	if c.Scoring.PointsPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("scoring.points_per_level must be positive"))
	}
	if c.Scoring.HighScoreKey == "" {
		errs = append(errs, fmt.Errorf("scoring.high_score_key must not be empty"))
	}
	if c.Loop.MaxDt <= 0 {
		errs = append(errs, fmt.Errorf("loop.max_dt must be positive"))
	}
	for name, b := range map[string]BurstConfig{"hit": c.Particles.Hit, "score": c.Particles.Score} {
		if err := b.validate(); err != nil {
			errs = append(errs, fmt.Errorf("particles.%s: %w", name, err))
		}
	}

	return errors.Join(errs...)
}

func (b BurstConfig) validate() error {
	if b.Count < 0 {
		return fmt.Errorf("count must not be negative")
	}
	if _, err := core.ParseColor(b.Color); err != nil {
		return err
	}
	if b.Kind != "bone" && b.Kind != "circle" {
		return fmt.Errorf("unknown kind %q", b.Kind)
	}
	for name, r := range map[string]RangeValue{"speed": b.Speed, "size": b.Size, "life": b.Life} {
		if r.Max < r.Min {
			return fmt.Errorf("%s range [%g, %g] is inverted", name, r.Min, r.Max)
		}
	}
	return nil
}
