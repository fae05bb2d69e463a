package core

import (
	"strings"
	"testing"
	"time"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.GetCell(5, 5).Rune != 'X' {
		t.Errorf("GetCell(5, 5) = %q, expected 'X'", s.GetCell(5, 5).Rune)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.GetCell(-1, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.GetCell(100, 0).Rune != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetColored(1, 2, '█', ColorRed)

	c := s.GetCell(1, 2)
	if c.Rune != '█' || c.Color != ColorRed {
		t.Errorf("GetCell(1, 2) = %+v, expected red block", c)
	}

	s.Clear()
	if c := s.GetCell(1, 2); c.Color != ColorDefault || c.Rune != ' ' {
		t.Errorf("Clear should reset color, got %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		if s.GetCell(2+i, 1).Rune != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.GetCell(2+i, 1).Rune)
		}
	}

	// Only "He" fits
	s.DrawText(18, 0, "Hello")
	if s.GetCell(18, 0).Rune != 'H' || s.GetCell(19, 0).Rune != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorYellow)

	x := (20 - 2) / 2
	if s.GetCell(x, 2).Rune != 'H' || s.GetCell(x+1, 2).Rune != 'i' {
		t.Errorf("DrawTextCentered failed, text not at expected position")
	}
	if s.GetCell(x, 2).Color != ColorYellow {
		t.Errorf("DrawTextCentered should apply color")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "─a")
	if s.GetCell(0, 0).Rune != '─' || s.GetCell(1, 0).Rune != 'a' {
		t.Errorf("multibyte runes should occupy one cell each, row = %q", s.Row(0))
	}
	if TextWidth("─a") != 2 {
		t.Errorf("TextWidth = %d, expected 2", TextWidth("─a"))
	}
}

func TestTextWidthWideRunes(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"Game Over", 9},
		{"█─│", 3},
		{"日本", 4},
		{"Score 得点", 10},
	}
	for _, tt := range tests {
		if got := TextWidth(tt.text); got != tt.want {
			t.Errorf("TextWidth(%q) = %d, expected %d", tt.text, got, tt.want)
		}
	}

	// Centering uses columns, not runes
	s := NewScreen(10, 1)
	s.DrawTextCentered(0, "日本", ColorDefault)
	if s.GetCell(3, 0).Rune != '日' {
		t.Errorf("wide text should start at column 3, row = %q", s.Row(0))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorBlue)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c := s.GetCell(x, y); c.Rune != '#' || c.Color != ColorBlue {
				t.Errorf("DrawRect: expected blue '#' at (%d, %d), got %+v", x, y, c)
			}
		}
	}

	if s.GetCell(1, 1).Rune != ' ' || s.GetCell(5, 5).Rune != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorGray)

	corners := map[[2]int]rune{
		{1, 1}: '┌',
		{5, 1}: '┐',
		{1, 4}: '└',
		{5, 4}: '┘',
	}
	for pos, want := range corners {
		if got := s.GetCell(pos[0], pos[1]).Rune; got != want {
			t.Errorf("corner at %v = %q, expected %q", pos, got, want)
		}
	}

	for x := 2; x < 5; x++ {
		if s.GetCell(x, 1).Rune != '─' || s.GetCell(x, 4).Rune != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.GetCell(1, y).Rune != '│' || s.GetCell(5, y).Rune != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	expected := "AAAAA\nBBBBB\nCCCCC"
	if result := s.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if row0 := s.Row(0); !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved, row 0 = %q", row0)
	}

	s.Resize(15, 8)
	if row0 := s.Row(0); !strings.HasPrefix(row0, "Hello") {
		t.Errorf("Content should be preserved after enlarging, row 0 = %q", row0)
	}
	if row5 := s.Row(5); strings.TrimSpace(row5) != "" {
		t.Errorf("Rows cut off by shrinking should come back blank, got %q", row5)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") {
		t.Errorf("Row(2) should start with 'Test', got %q", row)
	}
	if len(row) != 10 {
		t.Errorf("Row length should be 10, got %d", len(row))
	}

	if outOfBounds := s.Row(-1); outOfBounds != "          " {
		t.Errorf("Out of bounds row should be spaces, got %q", outOfBounds)
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock()
	start := c.Now()
	c.Advance(150 * time.Millisecond)

	if got := c.Now().Sub(start); got != 150*time.Millisecond {
		t.Errorf("elapsed = %v, expected 150ms", got)
	}
}

func TestInputFrameSequence(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionLeft)
	f.Set(ActionNone)

	if !f.Has(ActionUp) || !f.Has(ActionLeft) {
		t.Fatal("frame should contain both actions")
	}
	if len(f.Sequence) != 2 || f.Sequence[0] != ActionUp || f.Sequence[1] != ActionLeft {
		t.Errorf("Sequence = %v, expected [Up Left]", f.Sequence)
	}

	clone := f.Clone()
	f.Clear()
	if len(f.Sequence) != 0 || f.Has(ActionUp) {
		t.Error("Clear should empty the frame")
	}
	if len(clone.Sequence) != 2 {
		t.Error("Clone should be independent of the original")
	}
}
