package config

import (
	"math"
	"time"
)

// DifficultyManager calculates the snake's pace based on score/moves.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/moves.
// A disabled manager always reports level 0 so the configured interval holds.
func (d *DifficultyManager) Level(score int, moves int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(moves) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// MoveInterval returns the time between moves for the current level.
// The interval divides base by (1 + level*speed_multiplier) and never drops below floor.
func (d *DifficultyManager) MoveInterval(base, floor time.Duration, score int, moves int) time.Duration {
	level := d.Level(score, moves)
	factor := 1.0 + level*d.cfg.Scaling.SpeedMultiplier
	if factor <= 0 {
		factor = 1
	}
	interval := time.Duration(float64(base) / factor)
	if interval < floor {
		interval = floor
	}
	return interval
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
