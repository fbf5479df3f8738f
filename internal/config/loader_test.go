package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME and RUNNER_CONFIG at an empty temp directory so the
// developer's own config files do not leak into the tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv(EnvConfigPath, "")
	return dir
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if cfg != DefaultRunnerConfig() {
		t.Errorf("embedded defaults drifted from DefaultRunnerConfig():\n got %+v\nwant %+v", cfg, DefaultRunnerConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestLoadRunnerFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, source, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if cfg.Timing.FrameRate != 70 {
		t.Errorf("FrameRate = %d, expected 70", cfg.Timing.FrameRate)
	}
}

func TestLoadRunnerCustomPathOverlaysDefaults(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "fast.yaml")
	data := []byte("obstacles:\n  base_speed: 9\ntiming:\n  frame_rate: 30\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadRunner(path)
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Obstacles.BaseSpeed != 9 || cfg.Timing.FrameRate != 30 {
		t.Errorf("overrides not applied: speed=%d fps=%d", cfg.Obstacles.BaseSpeed, cfg.Timing.FrameRate)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.Gravity != 0.6 || cfg.Obstacles.Width != 30 {
		t.Errorf("defaults lost: gravity=%v width=%d", cfg.Physics.Gravity, cfg.Obstacles.Width)
	}
}

func TestLoadRunnerEnvPath(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "env.yaml")
	if err := os.WriteFile(path, []byte("scoring:\n  interval: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigPath, path)

	cfg, source, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if source != path || cfg.Scoring.Interval != 5 {
		t.Errorf("env config not used: source=%q interval=%d", source, cfg.Scoring.Interval)
	}
}

func TestLoadRunnerUserConfig(t *testing.T) {
	dir := isolate(t)
	userDir := filepath.Join(dir, ".runner")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(userDir, "runner.yaml")
	if err := os.WriteFile(path, []byte("player:\n  x: 70\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if source != path || cfg.Player.X != 70 {
		t.Errorf("user config not used: source=%q x=%d", source, cfg.Player.X)
	}
}

func TestLoadRunnerErrors(t *testing.T) {
	dir := isolate(t)

	if _, _, err := LoadRunner(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing explicit config should fail")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("physics: [not a map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := LoadRunner(broken); err == nil {
		t.Error("unparseable config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("timing:\n  frame_rate: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err := LoadRunner(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid config error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RunnerConfig)
	}{
		{"zero frame rate", func(c *RunnerConfig) { c.Timing.FrameRate = 0 }},
		{"upward gravity", func(c *RunnerConfig) { c.Physics.Gravity = -1 }},
		{"downward jump", func(c *RunnerConfig) { c.Physics.JumpImpulse = 5 }},
		{"weak long jump", func(c *RunnerConfig) { c.Physics.LongJumpMultiplier = 0.5 }},
		{"zero speed", func(c *RunnerConfig) { c.Obstacles.BaseSpeed = 0 }},
		{"zero interval", func(c *RunnerConfig) { c.Scoring.Interval = 0 }},
		{"ground below canvas", func(c *RunnerConfig) { c.Canvas.GroundOffset = 500 }},
		{"giant player", func(c *RunnerConfig) { c.Player.Height = 1000 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRunnerConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestGroundY(t *testing.T) {
	if got := DefaultRunnerConfig().Canvas.GroundY(); got != 360 {
		t.Errorf("GroundY() = %d, expected 360", got)
	}
}
