package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gookit/color"
	"github.com/katalvlaran/antcolony/colony"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the simulation and report best-tour improvements",
		Long: `Run constructs a random complete graph and steps the ant colony until the
requested number of generations has completed. Every time the best tour
improves, a progress line is printed; a summary with the final tour closes
the run.

Precedence of settings: built-in defaults, then the --config YAML file,
then any explicitly set flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := defaultRunOptions()

			// Stage 1: optional YAML file.
			if path, _ := cmd.Flags().GetString("config"); path != "" {
				if err := opts.applyFile(path); err != nil {
					return err
				}
			}

			// Stage 2: explicitly set flags win over file values.
			applyChangedFlags(cmd, &opts)

			// Stage 3: construct the engine; validation errors surface here.
			sim, err := colony.NewFromConfig(opts.engineConfig())
			if err != nil {
				return err
			}

			return runSimulation(sim, opts)
		},
	}

	cmd.Flags().String("config", "", "Path to a YAML config file")
	cmd.Flags().Int("nodes", colony.DefaultNodeCount, "Number of graph nodes")
	cmd.Flags().Int("ants", colony.DefaultAntCount, "Number of ants per generation")
	cmd.Flags().Float64("alpha", colony.DefaultAlpha, "Pheromone exponent α")
	cmd.Flags().Float64("beta", colony.DefaultBeta, "Distance exponent β")
	cmd.Flags().Float64("rho", colony.DefaultRho, "Evaporation retention fraction ρ, in (0,1)")
	cmd.Flags().Float64("q", colony.DefaultQ, "Deposit numerator Q")
	cmd.Flags().Float64("tau0", colony.DefaultTau0, "Initial pheromone intensity τ0")
	cmd.Flags().Int64("seed", colony.DefaultSeed, "RNG seed (0 = fixed internal default)")
	cmd.Flags().Int("generations", defaultGenerations, "Generations to run")
	cmd.Flags().Duration("interval", time.Duration(defaultInterval), "Pause between steps (0 = flat out)")

	return cmd
}

// applyChangedFlags overlays only the flags the user actually set, so file
// values survive untouched defaults.
func applyChangedFlags(cmd *cobra.Command, opts *runOptions) {
	f := cmd.Flags()
	if f.Changed("nodes") {
		opts.Nodes, _ = f.GetInt("nodes")
	}
	if f.Changed("ants") {
		opts.Ants, _ = f.GetInt("ants")
	}
	if f.Changed("alpha") {
		opts.Alpha, _ = f.GetFloat64("alpha")
	}
	if f.Changed("beta") {
		opts.Beta, _ = f.GetFloat64("beta")
	}
	if f.Changed("rho") {
		opts.Rho, _ = f.GetFloat64("rho")
	}
	if f.Changed("q") {
		opts.Q, _ = f.GetFloat64("q")
	}
	if f.Changed("tau0") {
		opts.Tau0, _ = f.GetFloat64("tau0")
	}
	if f.Changed("seed") {
		opts.Seed, _ = f.GetInt64("seed")
	}
	if f.Changed("generations") {
		opts.Generations, _ = f.GetInt("generations")
	}
	if f.Changed("interval") {
		v, _ := f.GetDuration("interval")
		opts.Interval = duration(v)
	}
}

// runSimulation owns the cadence: one Step per tick (or flat out), progress
// lines on every best-tour improvement, and a closing summary.
func runSimulation(sim *colony.Simulation, opts runOptions) error {
	color.Cyan.Printf("antsim: %d nodes, %d ants, α=%g β=%g ρ=%g Q=%g τ0=%g seed=%d\n",
		sim.NodeCount(), sim.AntCount(),
		opts.Alpha, opts.Beta, opts.Rho, opts.Q, opts.Tau0, opts.Seed)

	var tick <-chan time.Time
	if interval := time.Duration(opts.Interval); interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	best := math.Inf(1)
	for sim.Iteration() < opts.Generations {
		if tick != nil {
			<-tick
		}
		sim.Step()

		// The record only moves at generation boundaries.
		if l := sim.BestLength(); l < best {
			best = l
			color.Green.Printf("generation %3d: best length %.4f\n", sim.Iteration(), best)
		}
	}

	tour := sim.BestTour()
	if tour == nil {
		color.Yellow.Println("no solution recorded (degenerate instance)")
		return nil
	}

	fmt.Printf("\nfinished after %d generations\n", sim.Iteration())
	fmt.Printf("best length: %.4f\n", sim.BestLength())
	fmt.Printf("best tour:   %v\n", tour)

	return nil
}
