package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the built-in configuration",
	Long: `Prints the default snake.yaml. Save it as ~/.snake/configs/snake.yaml or
./configs/snake.yaml, or pass it with --config, to change the grid, speed
or difficulty.

Example:
  snake config > ~/.snake/configs/snake.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printDefaultConfig(cmd.OutOrStdout())
	},
}

func printDefaultConfig(w io.Writer) error {
	if _, err := w.Write(config.DefaultYAML()); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
