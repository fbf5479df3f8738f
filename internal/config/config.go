// Package config provides YAML-based game configuration loading for the
// runner.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all configuration for the Dino Runner game.
// It is treated as an immutable value once loaded.
type RunnerConfig struct {
	Canvas    CanvasConfig   `yaml:"canvas"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Scoring   ScoringConfig  `yaml:"scoring"`
	Timing    TimingConfig   `yaml:"timing"`
}

// CanvasConfig defines the logical drawing surface.
type CanvasConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	GroundOffset int `yaml:"ground_offset"`
}

// GroundY returns the y-coordinate of the ground line.
func (c CanvasConfig) GroundY() int {
	return c.Height - c.GroundOffset
}

// PhysicsConfig defines the player's vertical motion.
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`
	JumpImpulse        float64 `yaml:"jump_impulse"`
	LongJumpMultiplier float64 `yaml:"long_jump_multiplier"`
}

// PlayerConfig defines the player's hitbox.
type PlayerConfig struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ObstacleConfig defines obstacle size, speed and spawn pacing.
type ObstacleConfig struct {
	Width             int     `yaml:"width"`
	Height            int     `yaml:"height"`
	BaseSpeed         int     `yaml:"base_speed"`
	SpawnDistance     float64 `yaml:"spawn_distance"`
	InitialSpawnDelay int64   `yaml:"initial_spawn_delay"` // milliseconds
}

// ScoringConfig defines score cadence and speed milestones.
type ScoringConfig struct {
	Interval       int `yaml:"interval"`        // frames per point
	Milestone      int `yaml:"milestone"`       // points between speed-ups
	SpeedIncrement int `yaml:"speed_increment"` // speed added per milestone
}

// TimingConfig holds the frame rate and real-time delays.
// FrameRate is the single source for both the backend tick and the spawn
// interval formula.
type TimingConfig struct {
	FrameRate     int   `yaml:"frame_rate"`
	GameOverDelay int64 `yaml:"game_over_delay"` // milliseconds
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid runner config")

// Validate checks that the configuration describes a playable game.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Canvas.Width > 0 && c.Canvas.Height > 0, "canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	check(c.Canvas.GroundOffset >= 0 && c.Canvas.GroundOffset < c.Canvas.Height, "ground_offset %d out of range", c.Canvas.GroundOffset)
	check(c.Physics.Gravity > 0, "gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpImpulse < 0, "jump_impulse must be negative (upward), got %v", c.Physics.JumpImpulse)
	check(c.Physics.LongJumpMultiplier >= 1, "long_jump_multiplier must be at least 1, got %v", c.Physics.LongJumpMultiplier)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive")
	check(c.Player.Height <= c.Canvas.GroundY(), "player taller than the space above ground")
	check(c.Obstacles.Width > 0 && c.Obstacles.Height > 0, "obstacle size must be positive")
	check(c.Obstacles.BaseSpeed > 0, "base_speed must be positive, got %d", c.Obstacles.BaseSpeed)
	check(c.Obstacles.SpawnDistance > 0, "spawn_distance must be positive, got %v", c.Obstacles.SpawnDistance)
	check(c.Obstacles.InitialSpawnDelay >= 0, "initial_spawn_delay must not be negative")
	check(c.Scoring.Interval > 0, "scoring interval must be positive, got %d", c.Scoring.Interval)
	check(c.Scoring.Milestone > 0, "milestone must be positive, got %d", c.Scoring.Milestone)
	check(c.Scoring.SpeedIncrement >= 0, "speed_increment must not be negative")
	check(c.Timing.FrameRate > 0, "frame_rate must be positive, got %d", c.Timing.FrameRate)
	check(c.Timing.GameOverDelay >= 0, "game_over_delay must not be negative")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
