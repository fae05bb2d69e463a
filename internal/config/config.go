// Package config provides YAML-based game configuration loading and
// difficulty management for the snake game.
package config

import (
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid       SnakeGrid        `yaml:"grid"`
	Timing     SnakeTiming      `yaml:"timing"`
	Start      SnakeStart       `yaml:"start"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeGrid defines the playfield size in cells.
type SnakeGrid struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeTiming defines how often the snake moves.
type SnakeTiming struct {
	MoveInterval time.Duration `yaml:"move_interval"` // Time between moves at difficulty 0
	MinInterval  time.Duration `yaml:"min_interval"`  // Floor for the interval as difficulty rises
}

// SnakeStart defines the state of a freshly reset board.
type SnakeStart struct {
	Growth int `yaml:"growth"` // Segments owed to the snake at start
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/moves at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra speed at max difficulty (1.0 = twice as fast)
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width < 1 || c.Grid.Height < 1 || c.Grid.Width*c.Grid.Height < 2 {
		return fmt.Errorf("config: grid %dx%d is too small", c.Grid.Width, c.Grid.Height)
	}
	if c.Timing.MoveInterval <= 0 {
		return fmt.Errorf("config: move_interval must be positive, got %s", c.Timing.MoveInterval)
	}
	if c.Timing.MinInterval < 0 || c.Timing.MinInterval > c.Timing.MoveInterval {
		return fmt.Errorf("config: min_interval %s must be within [0, %s]", c.Timing.MinInterval, c.Timing.MoveInterval)
	}
	if c.Start.Growth < 0 {
		return fmt.Errorf("config: start growth must not be negative, got %d", c.Start.Growth)
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		return fmt.Errorf("config: unknown progression type %q", c.Difficulty.Progression.Type)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
