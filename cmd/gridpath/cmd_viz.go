package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridpath/tui"
)

var (
	vizScenarioPath string
	vizIntervalMS   int
	vizSeed         int64
)

var vizCmd = &cobra.Command{
	Use:   "viz",
	Short: "Animate Dijkstra and A* side by side in the terminal",
	Long: `Opens a full-screen dashboard that steps both algorithms over the
same grid, one expansion per frame: the closed and open sets on each grid
pane, a bar row of the frontier's priorities underneath, and a path replay
once a search succeeds.`,
	RunE: runViz,
}

func init() {
	vizCmd.Flags().StringVarP(&vizScenarioPath, "scenario", "f", "", "scenario YAML file (default: random 30x30)")
	vizCmd.Flags().IntVar(&vizIntervalMS, "interval", 20, "frame interval in milliseconds")
	vizCmd.Flags().Int64Var(&vizSeed, "seed", 42, "seed for the default random scenario")
	rootCmd.AddCommand(vizCmd)
}

func runViz(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("viz needs a terminal; use 'gridpath run' for scripted output")
	}
	grid, start, goal, err := loadScenario(vizScenarioPath, vizSeed)
	if err != nil {
		return err
	}
	model, err := tui.NewModel(grid, start, goal, time.Duration(vizIntervalMS)*time.Millisecond)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
