package config

import (
	"testing"
	"time"
)

func TestDisabledDifficultyKeepsInterval(t *testing.T) {
	d := NewDifficultyManager(DefaultSnakeConfig().Difficulty)

	if d.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	got := d.MoveInterval(100*time.Millisecond, 50*time.Millisecond, 40, 1000)
	if got != 100*time.Millisecond {
		t.Errorf("MoveInterval() = %s, expected 100ms", got)
	}
}

func TestScoreProgression(t *testing.T) {
	cfg := DefaultSnakeConfig().Difficulty
	cfg.Enabled = true
	cfg.Progression = ProgressionConfig{Type: "score", MaxAt: 10}
	cfg.Scaling.SpeedMultiplier = 1.0
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score int
		want  time.Duration
	}{
		{0, 100 * time.Millisecond},
		{5, 66666666 * time.Nanosecond}, // 100ms / 1.5
		{10, 50 * time.Millisecond},
		{50, 50 * time.Millisecond}, // progress clamps at 1
	}

	for _, tc := range tests {
		got := d.MoveInterval(100*time.Millisecond, 0, tc.score, 0)
		if got != tc.want {
			t.Errorf("score %d: MoveInterval() = %s, expected %s", tc.score, got, tc.want)
		}
	}
}

func TestIntervalFloor(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1},
		Scaling:     ScalingConfig{SpeedMultiplier: 9.0},
	}
	d := NewDifficultyManager(cfg)

	got := d.MoveInterval(100*time.Millisecond, 40*time.Millisecond, 1, 0)
	if got != 40*time.Millisecond {
		t.Errorf("MoveInterval() = %s, expected floor 40ms", got)
	}
}

func TestInitialLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level at start = %f, expected 0.5", got)
	}
	if got := d.Level(0, 50); got != 0.75 {
		t.Errorf("Level halfway = %f, expected 0.75", got)
	}
	if got := d.Level(0, 1000); got != 1.0 {
		t.Errorf("Level past max = %f, expected 1.0", got)
	}
}
