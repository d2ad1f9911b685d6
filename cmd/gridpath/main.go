package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "gridpath",
	Short: "Compare Dijkstra and A* shortest-path searches on 2-D grids",
	Long: `gridpath runs priority-queue-driven shortest-path searches on 2-D
grids and compares Dijkstra's algorithm with A* side by side.

Scenarios are YAML files describing grid dimensions, start, goal, and walls
(explicit or generated from a seeded density). Without a scenario file a
30x30 grid with 30% obstacle density is used.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}
}
