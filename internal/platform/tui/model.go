package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// helpHeight is the number of rows reserved below the game for the key help.
const helpHeight = 1

// debugStater is implemented by games that can describe their state for logs.
type debugStater interface {
	DebugState() string
}

// Options configures a game session.
type Options struct {
	Logger        *log.Logger // Nil discards log output
	Keys          *KeyMap     // Nil uses DefaultKeyMap
	ScreenshotDir string      // Empty uses ~/.snake/screenshots
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	shotDir    string
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	overLogged bool // Whether the current game over has been logged
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-helpHeight)),
		config:     cfg,
		keys:       keys,
		help:       help.New(),
		logger:     logger,
		shotDir:    opts.ScreenshotDir,
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW

	gameCfg := cfg
	gameCfg.ScreenH = m.screen.Height()
	game.Reset(gameCfg)
	m.gameState = game.State()

	logger.Debug("session started", "game", game.ID(), "seed", cfg.Seed,
		"screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the action for the next frame. Quit and screenshot
// are handled right away.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit", "game", m.game.ID(), "score", m.gameState.Score)
		return m, tea.Quit
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleResize follows the terminal size. Games that implement
// registry.Resizer keep their round; others are reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(0, msg.Height-helpHeight))
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.screen.Width(), m.screen.Height())
	} else {
		gameCfg := m.config
		gameCfg.ScreenH = m.screen.Height()
		m.game.Reset(gameCfg)
	}

	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick runs one game frame with the input collected since the last one.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Moved && m.logger.GetLevel() <= log.DebugLevel {
		if d, ok := m.game.(debugStater); ok {
			m.logger.Debug("move", "state", d.DebugState())
		}
	}

	switch {
	case m.gameState.GameOver && !m.overLogged:
		m.logger.Info("game over", "game", m.game.ID(), "score", m.gameState.Score, "reason", m.gameState.Detail)
		m.overLogged = true
	case !m.gameState.GameOver && m.overLogged:
		m.logger.Debug("new round", "game", m.game.ID())
		m.overLogged = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot: no home directory", "error", err)
			return
		}
		dir = filepath.Join(home, ".snake", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot: cannot create directory", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot: write failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game and the key help below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the game state after the last frame.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the game and blocks until it exits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
