package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in Snake configuration: a 25x18 grid
// moving ten times per second with two segments owed at start.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Width:  25,
			Height: 18,
		},
		Timing: SnakeTiming{
			MoveInterval: 100 * time.Millisecond,
			MinInterval:  50 * time.Millisecond,
		},
		Start: SnakeStart{
			Growth: 2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 50,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
