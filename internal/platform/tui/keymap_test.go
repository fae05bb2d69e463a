package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"w", runeKey('w'), core.ActionUp},
		{"a", runeKey('a'), core.ActionLeft},
		{"s", runeKey('s'), core.ActionDown},
		{"d", runeKey('d'), core.ActionRight},
		{"k", runeKey('k'), core.ActionUp},
		{"h", runeKey('h'), core.ActionLeft},
		{"j", runeKey('j'), core.ActionDown},
		{"l", runeKey('l'), core.ActionRight},
		{"pause", runeKey('p'), core.ActionPause},
		{"restart", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
		{"screenshot is not a game action", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %s, want %s", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if n := len(keys.ShortHelp()); n != 7 {
		t.Errorf("expected 7 short help bindings, got %d", n)
	}
	for _, b := range keys.ShortHelp() {
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("binding %v has no help text", b.Keys())
		}
	}
	if n := len(keys.FullHelp()); n != 2 {
		t.Errorf("expected 2 help columns, got %d", n)
	}
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{1, time.Second},
		{240, time.Second / 240},
		{0, time.Second / 60},
		{-5, time.Second / 60},
		{1000, time.Second / 60},
	}
	for _, tt := range tests {
		if got := frameInterval(tt.rate); got != tt.want {
			t.Errorf("frameInterval(%d) = %s", tt.rate, got)
		}
	}
}
