// Command antsim drives the colony engine from the terminal: a headless
// stand-in for a windowed visualization. It owns the cadence (ticker or
// free-running loop) and presentation; the engine only ever sees Step,
// Reset-style reconfiguration and read-only queries.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "antsim",
		Short: "antsim - Ant Colony Optimization TSP simulation",
		Long: `antsim runs a step-driven Ant Colony Optimization simulation for the
Traveling Salesman Problem on a randomly generated complete graph.

Ants build tours hop by hop; each completed generation evaporates and
reinforces the pheromone trail, and the best tour found so far is tracked
across generations. A fixed seed reproduces a run exactly.`,
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("antsim version %s\n", version)
		},
	}
}
