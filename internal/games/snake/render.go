package snake

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudHeight    = 1
	tileRune     = '█'
	gameOverText = "Game Over"
	restartHint  = "R: restart  Esc: quit"
	pausedText   = "Paused"
	resumeHint   = "P: resume"
	startHint    = "Press an arrow key to start"
)

var reasonText = map[Reason]string{
	ReasonWallCollision: "You hit the wall",
	ReasonSelfCollision: "You ran into yourself",
	ReasonBoardFull:     "Board full - you win!",
}

// layout is the screen geometry of the playfield. It is computed once per
// screen size, not on every frame.
type layout struct {
	tooSmall bool
	tileW    int       // Columns per grid cell: 2 keeps cells roughly square
	field    core.Rect // Screen area of the grid
	border   core.Rect
	overlay  core.Rect // Message box, sized for the widest message
}

func newLayout(screenW, screenH, gridW, gridH int) layout {
	l := layout{tileW: 2}
	if screenW < gridW*l.tileW+2 {
		l.tileW = 1
	}
	if screenW < gridW*l.tileW+2 || screenH < gridH+2+hudHeight {
		l.tooSmall = true
		l.overlay = centeredBox(screenW, screenH, boxWidth("Window too small"))
		return l
	}

	borderW, borderH := gridW*l.tileW+2, gridH+2
	x := (screenW - borderW) / 2
	y := hudHeight + (screenH-hudHeight-borderH)/2
	l.border = core.NewRect(x, y, borderW, borderH)
	l.field = l.border.Inset(1)

	widest := boxWidth(gameOverText, restartHint, pausedText, resumeHint)
	for _, text := range reasonText {
		widest = max(widest, boxWidth(text))
	}
	l.overlay = centeredBox(screenW, screenH, widest)
	return l
}

func boxWidth(texts ...string) int {
	w := 0
	for _, t := range texts {
		w = max(w, core.TextWidth(t))
	}
	return w + 4
}

func centeredBox(screenW, screenH, w int) core.Rect {
	const h = 5
	return core.NewRect((screenW-w)/2, (screenH-h)/2, w, h)
}

// cell returns the screen rectangle of a grid cell.
func (l layout) cell(p Position) core.Rect {
	return core.NewRect(l.field.X+p.X*l.tileW, l.field.Y+p.Y, l.tileW, 1)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.board == nil {
		return
	}

	g.renderHUD(dst)

	if g.layout.tooSmall {
		g.renderOverlay(dst, "Window too small", "", "Resize to continue")
		return
	}

	dst.DrawBox(g.layout.border, core.ColorGray)
	dst.DrawRect(g.layout.cell(g.board.Fruit()), tileRune, core.ColorRed)
	g.renderSnake(dst)

	switch {
	case g.board.GameOver():
		g.renderOverlay(dst, gameOverText, reasonText[g.board.Outcome().Reason], restartHint)
	case g.paused:
		g.renderOverlay(dst, pausedText, "", resumeHint)
	case g.board.Requested() == DirNone:
		dst.DrawTextCentered(g.layout.border.Bottom()-1, startHint, core.ColorGray)
	}
}

// renderHUD draws the status line.
func (g *Game) renderHUD(dst *core.Screen) {
	left := fmt.Sprintf("Score: %d", g.board.Score())
	if g.difficulty.IsEnabled() {
		level := g.difficulty.Level(g.board.Score(), g.board.Moves())
		left += fmt.Sprintf("  Speed: %d%%", int(level*100+0.5))
	}
	dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf("%s  Best: %d", g.Title(), g.best)
	dst.DrawTextColored(dst.Width()-core.TextWidth(right)-1, 0, right, core.ColorGray)
}

// renderSnake draws the body. After a game over the head pulses so the
// player can see where the snake crashed.
func (g *Game) renderSnake(dst *core.Screen) {
	segs := g.board.Segments()
	for i := len(segs) - 1; i >= 0; i-- {
		color := core.ColorBlue
		if i == 0 {
			color = core.ColorBrightBlue
			if g.board.GameOver() && g.flashOn() {
				color = core.ColorBrightWhite
			}
		}
		dst.DrawRect(g.layout.cell(segs[i]), tileRune, color)
	}
}

// flashOn is true for the bright half of a one-second sine pulse.
func (g *Game) flashOn() bool {
	t := g.clock.Now().Sub(g.epoch).Seconds()
	return (math.Sin(t*math.Pi*2)+1)/2 >= 0.5
}

// renderOverlay draws a centered message box. Empty lines are skipped.
func (g *Game) renderOverlay(dst *core.Screen, title, detail, hint string) {
	box := g.layout.overlay
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightWhite)
	if detail != "" {
		dst.DrawTextCentered(box.Y+2, detail, core.ColorYellow)
	}
	dst.DrawTextCentered(box.Y+3, hint, core.ColorGray)
}
