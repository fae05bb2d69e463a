// snake is the classic Snake game for the terminal.
//
// Usage:
//
//	snake                    - Play with walls
//	snake wrap               - Play on a wrap-around board (same as --wrap)
//	snake list               - List available variants
//	snake config             - Print the built-in configuration
//
// Flags:
//
//	--fps <rate>           - Frame rate of the UI loop (default: 60)
//	--seed <value>         - RNG seed for reproducible fruit placement
//	--config <path>        - Custom snake.yaml
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--log-file <path>      - Write logs to a file instead of stderr
//	--debug                - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var (
	flagFPS        int
	flagSeed       int64
	flagWrap       bool
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake [wrap]",
	Short: "Snake - the classic game in your terminal",
	Long: `Guide the snake to the fruit. Every fruit makes it longer; running into
a wall or into yourself ends the round. Fill the whole board to win.

Controls:
  Arrows/WASD/HJKL  - Change direction
  P                 - Pause
  R                 - Restart (after game over)
  Esc/Q/Ctrl+C      - Quit
  Ctrl+S            - Save a screenshot

Difficulty options:
  easy   - Start slow, speed up with the score
  normal - Start at 30% difficulty, speed up with the score
  hard   - Start at 70% difficulty, speed up with the score
  fixed  - Constant speed

Examples:
  snake
  snake wrap
  snake --difficulty hard
  snake --config ./my-snake.yaml --seed 42`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate of the UI loop")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.Flags().BoolVar(&flagWrap, "wrap", false, "Wrap around the board edges instead of dying at walls")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// gameIDFor picks the registered variant from the positional argument and
// the --wrap flag.
func gameIDFor(args []string, wrap bool) (string, error) {
	if len(args) == 0 {
		if wrap {
			return snake.IDWrap, nil
		}
		return snake.IDClassic, nil
	}
	id := args[0]
	switch id {
	case "wrap":
		id = snake.IDWrap
	case "classic":
		id = snake.IDClassic
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown mode %q (run 'snake list' to see available variants)", args[0])
	}
	if wrap && id == snake.IDClassic {
		return snake.IDWrap, nil
	}
	return id, nil
}

// loadConfig resolves the YAML config and applies the difficulty preset.
func loadConfig(path, difficulty string) (config.SnakeConfig, string, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.SnakeConfig{}, "", err
	}
	cfg, source, err := config.LoadSnake(path)
	if err != nil {
		return config.SnakeConfig{}, "", err
	}
	config.ApplySnakePreset(&cfg, preset)
	return cfg, source, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID, err := gameIDFor(args, flagWrap)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, source, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	logger.Debug("config loaded", "source", source,
		"grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height),
		"interval", cfg.Timing.MoveInterval, "difficulty", cfg.Difficulty.Enabled)

	// Factories read the active config when they build a game
	snake.SetConfig(cfg)

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	} else {
		logger.Debug("terminal size unknown, using defaults", "error", termErr)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger.Info("starting", "game", gameID, "seed", flagSeed)
	// Stderr output would tear the alt screen, so the session only logs to a file
	opts := tui.Options{}
	if flagLogFile != "" {
		opts.Logger = logger
	}
	if err := tui.Run(game, runtime, opts); err != nil {
		logger.Error("game stopped", "error", err)
		return err
	}
	return nil
}
