package snake

import (
	"github.com/gammazero/deque"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Rand is the source of uniform random integers in [0, n).
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// BoardOptions fixes the shape and rules of a board for its whole lifetime.
type BoardOptions struct {
	Width       int
	Height      int
	Wrap        bool // Leaving one edge re-enters at the opposite edge
	StartGrowth int  // Segments owed to the snake after Reset
}

// GameStateType represents the current board state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Board is the snake simulation: snake body, fruit, score and the
// playing/game-over state machine. It does no timing, input or drawing.
type Board struct {
	bounds      core.Rect
	wrap        bool
	startGrowth int
	rng         Rand

	body      deque.Deque[Position] // Head at the front
	growth    int                   // Segments still owed from eaten fruit
	fruit     Position
	score     int
	heading   Direction // Last committed direction
	requested Direction // Direction for the next tick
	moves     int

	state   GameStateType
	outcome Outcome
}

// NewBoard creates a board. Call Reset before the first Advance.
func NewBoard(opts BoardOptions, rng Rand) *Board {
	return &Board{
		bounds:      core.NewRect(0, 0, opts.Width, opts.Height),
		wrap:        opts.Wrap,
		startGrowth: max(0, opts.StartGrowth),
		rng:         rng,
		state:       StatePlaying,
	}
}

// Reset starts a new game: one segment in the middle of the grid, the
// start growth owed, score zero and a fresh fruit.
func (b *Board) Reset() {
	b.body.Clear()
	cx, cy := b.bounds.Center()
	b.body.PushFront(Position{X: cx, Y: cy})

	b.growth = b.startGrowth
	b.score = 0
	b.moves = 0
	b.heading = DirNone
	b.requested = DirNone
	b.state = StatePlaying
	b.outcome = Continued

	// A grid of two or more cells always has room next to a single segment
	b.placeFruit()
}

// RequestDirection records the direction for the next tick. A reversal of
// the committed heading is refused, as is DirNone. It reports whether the
// request was accepted; the last accepted request before a tick wins.
func (b *Board) RequestDirection(d Direction) bool {
	if d == DirNone || !b.heading.Allows(d) {
		return false
	}
	b.requested = d
	return true
}

// Tick advances the board in the requested direction.
func (b *Board) Tick() Outcome {
	return b.Advance(b.requested)
}

// Advance moves the snake one cell in d and resolves walls, self
// collision and fruit. A terminal outcome leaves the snake as it was so the
// last valid position can still be shown. DirNone is a no-op. Once the game
// is over Advance keeps returning the terminal outcome until Reset.
func (b *Board) Advance(d Direction) Outcome {
	if b.state == StateGameOver {
		return b.outcome
	}
	if d == DirNone {
		return Continued
	}
	if b.body.Len() == 0 {
		panic("snake: Advance called on a board without a snake; call Reset first")
	}

	next, inside := b.wrapPosition(b.body.Front().Add(d.Offset()))
	if !inside {
		return b.end(ReasonWallCollision)
	}

	// The tail moves away this tick unless the snake is still growing
	if b.collidesWithBody(next, b.growth == 0) {
		return b.end(ReasonSelfCollision)
	}

	ate := next == b.fruit
	if ate {
		b.score++
		b.growth++
		if b.body.Len()+b.growth >= b.bounds.Area() {
			return b.end(ReasonBoardFull)
		}
	}

	b.body.PushFront(next)
	if b.growth > 0 {
		b.growth--
	} else {
		b.body.PopBack()
	}
	b.heading = d
	b.moves++

	if ate && !b.placeFruit() {
		return b.end(ReasonBoardFull)
	}
	return Continued
}

func (b *Board) end(r Reason) Outcome {
	b.state = StateGameOver
	b.outcome = terminated(r)
	return b.outcome
}

// wrapPosition applies the boundary rule. Without wrap-around it reports
// whether p is still on the grid.
func (b *Board) wrapPosition(p Position) (Position, bool) {
	if !b.wrap {
		return p, b.bounds.Contains(p.X, p.Y)
	}

	switch {
	case p.X < 0:
		p.X = b.bounds.W - 1
	case p.X >= b.bounds.W:
		p.X = 0
	}
	switch {
	case p.Y < 0:
		p.Y = b.bounds.H - 1
	case p.Y >= b.bounds.H:
		p.Y = 0
	}
	return p, true
}

// collidesWithBody reports whether p is on a segment, ignoring the tail
// when skipTail is set.
func (b *Board) collidesWithBody(p Position, skipTail bool) bool {
	n := b.body.Len()
	if skipTail {
		n--
	}
	for i := 0; i < n; i++ {
		if b.body.At(i) == p {
			return true
		}
	}
	return false
}

// Head returns the head position. The board must have been reset.
func (b *Board) Head() Position {
	return b.body.Front()
}

// Len returns the number of segments.
func (b *Board) Len() int {
	return b.body.Len()
}

// Segments returns a copy of the body, head first.
func (b *Board) Segments() []Position {
	segs := make([]Position, b.body.Len())
	for i := range segs {
		segs[i] = b.body.At(i)
	}
	return segs
}

// Fruit returns the fruit position.
func (b *Board) Fruit() Position { return b.fruit }

// Score returns the number of fruit eaten.
func (b *Board) Score() int { return b.score }

// Growth returns the number of segments still owed to the snake.
func (b *Board) Growth() int { return b.growth }

// Heading returns the last committed direction.
func (b *Board) Heading() Direction { return b.heading }

// Requested returns the direction the next tick will move in.
func (b *Board) Requested() Direction { return b.requested }

// Moves returns the number of committed moves since Reset.
func (b *Board) Moves() int { return b.moves }

// GameOver reports whether the game has ended.
func (b *Board) GameOver() bool { return b.state == StateGameOver }

// Outcome returns the terminal outcome, or Continued while playing.
func (b *Board) Outcome() Outcome { return b.outcome }

// Width returns the grid width.
func (b *Board) Width() int { return b.bounds.W }

// Height returns the grid height.
func (b *Board) Height() int { return b.bounds.H }

// Wrap reports whether the board wraps around at the edges.
func (b *Board) Wrap() bool { return b.wrap }
