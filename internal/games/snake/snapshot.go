package snake

// Snapshot is a read-only copy of the board for rendering, determinism
// testing and replay.
type Snapshot struct {
	Tick     uint64
	Mode     string // "classic" or "wrap"
	Width    int
	Height   int
	Segments []Position // Head first
	Fruit    Position
	Score    int
	Growth   int
	Moves    int
	Dir      Direction
	State    GameStateType
	Reason   Reason
	Paused   bool
}

// Head returns the first segment, or the zero position for an empty snake.
func (s Snapshot) Head() Position {
	if len(s.Segments) == 0 {
		return Position{}
	}
	return s.Segments[0]
}

// Snapshot returns a copy of the board state.
func (b *Board) Snapshot() Snapshot {
	mode := "classic"
	if b.wrap {
		mode = "wrap"
	}
	return Snapshot{
		Mode:     mode,
		Width:    b.bounds.W,
		Height:   b.bounds.H,
		Segments: b.Segments(),
		Fruit:    b.fruit,
		Score:    b.score,
		Growth:   b.growth,
		Moves:    b.moves,
		Dir:      b.heading,
		State:    b.state,
		Reason:   b.outcome.Reason,
	}
}
