package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cwbudde/utilityprog/internal/fit"
	"github.com/cwbudde/utilityprog/internal/opt"
	"github.com/cwbudde/utilityprog/internal/up"
	"github.com/cwbudde/utilityprog/internal/vector"
)

var (
	vecDim         int
	vecCenter      []float64
	vecStep        float64
	vecMayflyIters int
)

var vectorCmd = &cobra.Command{
	Use:   "vector",
	Short: "Move a real-valued vector toward a center point",
	Long: `Optimizes a vector inside box bounds by perturbing one coordinate at a time.
The utility is the negative squared distance to --center. With --mayfly-iters the
start vector is seeded by a Mayfly population search instead of a uniform sample.`,
	RunE: runVector,
}

func init() {
	vectorCmd.Flags().IntVar(&vecDim, "dim", 4, "Number of coordinates")
	vectorCmd.Flags().Float64SliceVar(&vecCenter, "center", nil, "Center point (missing coordinates are 0)")
	vectorCmd.Flags().Float64Var(&vecStep, "step", 0.5, "Maximum perturbation per edit")
	vectorCmd.Flags().IntVar(&vecMayflyIters, "mayfly-iters", 0, "Seed the start with Mayfly iterations (0 = uniform start)")
	rootCmd.AddCommand(vectorCmd)
}

func runVector(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if flags.Changed("dim") {
		cfg.Vector.Dim = vecDim
	}
	if flags.Changed("center") {
		cfg.Vector.Center = vecCenter
	}
	if flags.Changed("step") {
		cfg.Vector.Step = vecStep
	}
	if flags.Changed("mayfly-iters") {
		cfg.Vector.MayflyIters = vecMayflyIters
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	bounds := vector.NewBounds(cfg.Vector.Dim, cfg.Vector.Lower, cfg.Vector.Upper)
	utility := vector.Sphere{Center: cfg.Vector.Center, Weight: 1}

	var gen up.Generator[vector.Vector] = vector.Uniform{Bounds: bounds}
	if cfg.Vector.MayflyIters > 0 {
		slog.Info("Seeding with Mayfly", "iterations", cfg.Vector.MayflyIters, "population", cfg.Vector.MayflyPop)
		gen = opt.Seeder{
			Optimizer: opt.NewMayfly(cfg.Vector.MayflyIters, cfg.Vector.MayflyPop),
			Utility:   utility,
			Bounds:    bounds,
		}
	}

	observer, collector, err := newObserver()
	if err != nil {
		return err
	}

	printer, err := newProgressPrinter(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer printer.Close()

	rng := newRand()
	v := gen.Generate(rng)
	fmt.Fprintf(cmd.OutOrStdout(), "Starting at: %s\n", v)

	optimizer := vector.Optimizer(utility, bounds, cfg.Vector.Step, cfg.Search.Tries, cfg.Search.Depth)
	optimizer.Observer = observer

	result := fit.FixedPoint(rng, optimizer, &v, driveConfig(), func(r fit.Round) {
		printer.print(r, v.String())
	})

	if showStats {
		printSummary(cmd.OutOrStdout(), result, collector)
	}
	return printer.Close()
}
