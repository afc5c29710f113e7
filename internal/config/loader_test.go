package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultDodgeYAML)
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDodgeConfig()) {
		t.Errorf("embedded YAML and DefaultDodgeConfig() differ:\nyaml: %+v\ncode: %+v", cfg, DefaultDodgeConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultDodgeConfig().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadDodgeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dodge.yaml")
	data := []byte("playfield:\n  width: 500\nspawn:\n  initial_interval_ms: 1200\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDodge(path)
	if err != nil {
		t.Fatalf("LoadDodge() failed: %v", err)
	}

	if cfg.Playfield.Width != 500 {
		t.Errorf("Playfield.Width = %g, expected 500", cfg.Playfield.Width)
	}
	if cfg.Spawn.InitialIntervalMs != 1200 {
		t.Errorf("Spawn.InitialIntervalMs = %g, expected 1200", cfg.Spawn.InitialIntervalMs)
	}
	// Unmentioned fields keep their defaults
	if cfg.Playfield.Height != 600 {
		t.Errorf("Playfield.Height = %g, expected default 600", cfg.Playfield.Height)
	}
	if cfg.Player.Speed != 280 {
		t.Errorf("Player.Speed = %g, expected default 280", cfg.Player.Speed)
	}
}

func TestLoadDodgeMissingCustomPath(t *testing.T) {
	if _, err := LoadDodge(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadDodge should fail for a missing custom path")
	}
}

func TestLoadDodgeRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("spawn:\n  decay: 1.5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadDodge(path); err == nil {
		t.Error("LoadDodge should reject decay > 1")
	}
}

func TestLoadDodgeFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := LoadDodge("")
	if err != nil {
		t.Fatalf("LoadDodge(\"\") failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultDodgeConfig()) {
		t.Error("without config files LoadDodge should return the defaults")
	}
}

func TestLoadDodgeLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "dodge.yaml"), []byte("player:\n  speed: 300\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDodge("")
	if err != nil {
		t.Fatalf("LoadDodge() failed: %v", err)
	}
	if cfg.Player.Speed != 300 {
		t.Errorf("Player.Speed = %g, expected 300 from ./configs", cfg.Player.Speed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DodgeConfig)
	}{
		{"zero playfield", func(c *DodgeConfig) { c.Playfield.Width = 0 }},
		{"player too wide", func(c *DodgeConfig) { c.Player.Width = 395 }},
		{"inverted obstacle sizes", func(c *DodgeConfig) { c.Obstacles.MaxSize = 10 }},
		{"zero decay", func(c *DodgeConfig) { c.Spawn.Decay = 0 }},
		{"margin too large", func(c *DodgeConfig) { c.Collision.Margin = 0.5 }},
		{"no high score key", func(c *DodgeConfig) { c.Scoring.HighScoreKey = "" }},
		{"bad burst color", func(c *DodgeConfig) { c.Particles.Hit.Color = "plaid" }},
		{"bad burst kind", func(c *DodgeConfig) { c.Particles.Score.Kind = "star" }},
		{"inverted life", func(c *DodgeConfig) { c.Particles.Score.Life = RangeValue{Min: 2, Max: 1} }},
		{"zero max dt", func(c *DodgeConfig) { c.Loop.MaxDt = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultDodgeConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestApplyDodgePreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		interval float64
		decay    float64
	}{
		{DifficultyEasy, 1000, 0.99},
		{DifficultyNormal, 800, 0.98},
		{DifficultyHard, 600, 0.97},
		{DifficultyFixed, 800, 1.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultDodgeConfig()
			ApplyDodgePreset(&cfg, tc.preset)

			if cfg.Spawn.InitialIntervalMs != tc.interval {
				t.Errorf("InitialIntervalMs = %g, expected %g", cfg.Spawn.InitialIntervalMs, tc.interval)
			}
			if cfg.Spawn.Decay != tc.decay {
				t.Errorf("Decay = %g, expected %g", cfg.Spawn.Decay, tc.decay)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset should reject unknown presets")
	}
	if len(Presets()) != 4 {
		t.Errorf("expected 4 presets, got %d", len(Presets()))
	}
}

func TestApplyClassic(t *testing.T) {
	cfg := DefaultDodgeConfig()
	ApplyClassic(&cfg)

	if cfg.Particles.Enabled {
		t.Error("classic variant should disable particles")
	}
	if cfg.Scoring.HighScoreKey != "dodge_highscore_classic" {
		t.Errorf("HighScoreKey = %q, expected dodge_highscore_classic", cfg.Scoring.HighScoreKey)
	}

	// Applying twice keeps a single suffix
	ApplyClassic(&cfg)
	if cfg.Scoring.HighScoreKey != "dodge_highscore_classic" {
		t.Errorf("HighScoreKey after second apply = %q", cfg.Scoring.HighScoreKey)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("classic config should validate: %v", err)
	}
}

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore cwd: %v", err)
		}
	})
}
