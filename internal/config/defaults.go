package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default Dino Runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Canvas: CanvasConfig{
			Width:        800,
			Height:       400,
			GroundOffset: 40,
		},
		Physics: PhysicsConfig{
			Gravity:            0.6,
			JumpImpulse:        -10,
			LongJumpMultiplier: 1.5,
		},
		Player: PlayerConfig{
			X:      50,
			Width:  30,
			Height: 50,
		},
		Obstacles: ObstacleConfig{
			Width:             30,
			Height:            50,
			BaseSpeed:         5,
			SpawnDistance:     100,
			InitialSpawnDelay: 800,
		},
		Scoring: ScoringConfig{
			Interval:       10,
			Milestone:      100,
			SpeedIncrement: 2,
		},
		Timing: TimingConfig{
			FrameRate:     70,
			GameOverDelay: 1000,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
