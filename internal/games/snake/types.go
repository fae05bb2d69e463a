package snake

import "fmt"

// Position is a cell on the grid.
type Position struct {
	X, Y int
}

// Add returns p moved by the offset o.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirNone Direction = iota // Before the first move
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Offset returns the one-cell step for the direction. Y grows downwards.
func (d Direction) Offset() Position {
	switch d {
	case DirUp:
		return Position{X: 0, Y: -1}
	case DirDown:
		return Position{X: 0, Y: 1}
	case DirLeft:
		return Position{X: -1, Y: 0}
	case DirRight:
		return Position{X: 1, Y: 0}
	default:
		return Position{}
	}
}

// Opposite returns the reverse direction. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Allows reports whether a snake heading in d may turn to next.
// Only a 180 degree turn is refused; DirNone allows anything.
func (d Direction) Allows(next Direction) bool {
	if d == DirNone {
		return true
	}
	return next != d.Opposite()
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Reason names why a game ended.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonWallCollision
	ReasonSelfCollision
	ReasonBoardFull
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonWallCollision:
		return "wall-collision"
	case ReasonSelfCollision:
		return "self-collision"
	case ReasonBoardFull:
		return "board-full"
	default:
		return "unknown"
	}
}

// Outcome is the result of one board transition.
type Outcome struct {
	Terminated bool
	Reason     Reason
}

// Continued is the outcome of a tick after which the game goes on.
var Continued = Outcome{}

func terminated(r Reason) Outcome {
	return Outcome{Terminated: true, Reason: r}
}

func (o Outcome) String() string {
	if !o.Terminated {
		return "continued"
	}
	return "terminated: " + o.Reason.String()
}
