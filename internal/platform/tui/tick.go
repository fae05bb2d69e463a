// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping and drawing; the game
// itself decides when the snake moves.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game frame.
type TickMsg time.Time

// frameInterval returns the time between frames for the given rate.
// Rates outside [1, 240] fall back to 60 frames per second.
func frameInterval(tickRate int) time.Duration {
	if tickRate < 1 || tickRate > 240 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
