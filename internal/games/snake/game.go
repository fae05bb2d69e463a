package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Registered game IDs.
const (
	IDClassic = "snake"
	IDWrap    = "snake_wrap"
)

// Package-level configuration used by registry factories (set by the CLI
// before a game is created).
var activeConfig = config.DefaultSnakeConfig()

// SetConfig sets the configuration for games created afterwards.
func SetConfig(cfg config.SnakeConfig) {
	activeConfig = cfg
}

// Game adapts a Board to the platform: it paces moves, turns input into
// direction requests, handles pause/restart and draws the board.
type Game struct {
	wrap       bool
	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager

	board *Board
	clock core.Clock
	pace  pacer
	tick  uint64
	epoch time.Time // Start of the current round, phase origin for the head flash

	paused bool
	best   int // Best score since the process started

	screenW int
	screenH int
	layout  layout
}

// New creates a classic (walled) Snake game.
func New() *Game {
	return NewWithConfig(false, activeConfig)
}

// NewWrap creates a wrap-around Snake game.
func NewWrap() *Game {
	return NewWithConfig(true, activeConfig)
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(wrap bool, cfg config.SnakeConfig) *Game {
	return &Game{
		wrap:       wrap,
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDWrap, func() registry.Game {
		return NewWrap()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.wrap {
		return IDWrap
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.wrap {
		return "Snake (Wrap-around)"
	}
	return "Snake"
}

// Reset initializes the game for a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.clock = cfg.ClockOrSystem()
	g.board = NewBoard(BoardOptions{
		Width:       g.cfg.Grid.Width,
		Height:      g.cfg.Grid.Height,
		Wrap:        g.wrap,
		StartGrowth: g.cfg.Start.Growth,
	}, rand.New(rand.NewSource(cfg.Seed)))
	g.tick = 0
	g.restart()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// restart begins a new round on the same board and RNG stream.
func (g *Game) restart() {
	g.board.Reset()
	g.pace.reset()
	g.paused = false
	g.epoch = g.clock.Now()
}

// Resize adapts the layout to a new screen size without touching the round.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout = newLayout(w, h, g.cfg.Grid.Width, g.cfg.Grid.Height)
}

// Step handles one platform frame. The board only advances once a
// direction has been chosen and the move interval has elapsed.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	if g.board == nil {
		return core.StepResult{}
	}

	if input.Has(core.ActionRestart) && g.board.GameOver() {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.board.GameOver() {
		g.paused = !g.paused
	}

	if g.board.GameOver() || g.paused || g.layout.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Replay direction keys in arrival order; the last legal one wins
	for _, a := range input.Sequence {
		if d := directionFor(a); d != DirNone {
			g.board.RequestDirection(d)
		}
	}

	if g.board.Requested() == DirNone {
		return core.StepResult{State: g.State()}
	}

	now := g.clock.Now()
	if !g.pace.due(now, g.Interval()) {
		return core.StepResult{State: g.State()}
	}
	g.pace.mark(now)

	g.board.Tick()
	g.best = max(g.best, g.board.Score())

	return core.StepResult{State: g.State(), Moved: true}
}

// Interval returns the current time between moves.
func (g *Game) Interval() time.Duration {
	score, moves := 0, 0
	if g.board != nil {
		score, moves = g.board.Score(), g.board.Moves()
	}
	return g.difficulty.MoveInterval(g.cfg.Timing.MoveInterval, g.cfg.Timing.MinInterval, score, moves)
}

func directionFor(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	default:
		return DirNone
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.board == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.board.Score(),
		GameOver: g.board.GameOver(),
		Paused:   g.paused,
		Detail:   g.board.Outcome().Reason.String(),
	}
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.board == nil {
		return Snapshot{Tick: g.tick}
	}
	s := g.board.Snapshot()
	s.Tick = g.tick
	s.Paused = g.paused
	return s
}

// Board exposes the simulation for read access.
func (g *Game) Board() *Board {
	return g.board
}

// Best returns the best score since the process started.
func (g *Game) Best() int {
	return g.best
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Mode: %s\n", s.Tick, s.Score, s.Mode)
	fmt.Fprintf(&b, "Snake len: %d, Growth: %d, Direction: %s\n", len(s.Segments), s.Growth, s.Dir)
	fmt.Fprintf(&b, "Head: %s, Fruit: %s\n", s.Head(), s.Fruit)
	fmt.Fprintf(&b, "State: %s, Reason: %s, Paused: %v\n", s.State, s.Reason, s.Paused)
	return b.String()
}
