package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available variants",
	Long:  `Shows the Snake variants that can be played.`,
	Run: func(cmd *cobra.Command, args []string) {
		printGames(cmd.OutOrStdout(), registry.List())
	},
}

func printGames(w io.Writer, games []registry.GameInfo) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	fmt.Fprintln(w, "Available variants:")
	fmt.Fprintln(w)

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'snake' for walls or 'snake wrap' for the wrap-around board.")
}
