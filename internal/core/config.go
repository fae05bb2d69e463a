package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second of the platform loop (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Clock    Clock // Time source; nil means the system clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// ClockOrSystem returns the configured clock, falling back to the system clock.
func (c RuntimeConfig) ClockOrSystem() Clock {
	if c.Clock == nil {
		return SystemClock{}
	}
	return c.Clock
}

// Clock is a monotonic time source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. time.Now carries a monotonic reading,
// so differences between two Now values are safe against clock jumps.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a clock that only moves when told to. Used by tests and
// replays.
type ManualClock struct {
	T time.Time
}

// NewManualClock returns a manual clock starting at an arbitrary fixed instant.
func NewManualClock() *ManualClock {
	return &ManualClock{T: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the clock's current time.
func (c *ManualClock) Now() time.Time {
	return c.T
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.T = c.T.Add(d)
}

// GameState is the summary a game reports to the platform after each step.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the game has ended
	Paused   bool   // Whether the game is paused
	Detail   string // Why the game ended, empty while playing
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Moved bool // Whether the simulation advanced this step
}
