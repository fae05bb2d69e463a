// Package registry maps game IDs to constructors. Variants register in
// init(), so the CLI can list and start them by name.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is what the platform loop drives. Implementations hold only game
// logic; timing input and terminal output belong to the platform.
type Game interface {
	ID() string
	Title() string

	// Reset starts a fresh session with the given screen size, seed and clock.
	Reset(cfg core.RuntimeConfig)

	// Step runs one platform frame with the actions gathered since the previous one.
	Step(in core.InputFrame) core.StepResult

	// Render draws the game into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize
// without restarting.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a factory under id. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered variant ordered by ID.
func List() []GameInfo {
	mu.RLock()
	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	mu.RUnlock()

	slices.SortFunc(infos, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return infos
}

// Create builds a new instance of the variant registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
