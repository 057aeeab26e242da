package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cwbudde/utilityprog/internal/fit"
	"github.com/cwbudde/utilityprog/internal/number"
	"github.com/cwbudde/utilityprog/internal/up"
)

var (
	numTarget uint8
	numStart  string
	numFixed  uint8
	numReward float64
)

var numberCmd = &cobra.Command{
	Use:   "number",
	Short: "Optimize an 8-bit number toward a target while rewarding primes",
	Long: `Starts from a generated number and repeatedly optimizes it with increment
and decrement edits until it stops changing. The utility penalizes the distance
to the target and rewards prime numbers, so the result is often a prime close
to the target rather than the target itself.`,
	RunE: runNumber,
}

func init() {
	numberCmd.Flags().Uint8Var(&numTarget, "target", 42, "Target value")
	numberCmd.Flags().StringVar(&numStart, "start", "any", "Start generator: random, fixed, any")
	numberCmd.Flags().Uint8Var(&numFixed, "fixed", 0, "Start value for the fixed generator")
	numberCmd.Flags().Float64Var(&numReward, "reward", 5, "Utility reward for primes")
	rootCmd.AddCommand(numberCmd)
}

func numberGenerator(start string, fixed uint8) (up.Generator[uint8], error) {
	switch start {
	case "random":
		return number.Random{}, nil
	case "fixed":
		return number.Fixed(fixed), nil
	case "any":
		return up.Generators[uint8]{number.Random{}, number.Fixed(100), number.Fixed(0)}, nil
	default:
		return nil, fmt.Errorf("unknown start generator: %s", start)
	}
}

func runNumber(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if flags.Changed("target") {
		cfg.Number.Target = numTarget
	}
	if flags.Changed("start") {
		cfg.Number.Start = numStart
	}
	if flags.Changed("fixed") {
		cfg.Number.Fixed = numFixed
	}
	if flags.Changed("reward") {
		cfg.Number.Reward = numReward
	}

	gen, err := numberGenerator(cfg.Number.Start, cfg.Number.Fixed)
	if err != nil {
		return err
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
	num := gen.Generate(rng)
	fmt.Fprintf(cmd.OutOrStdout(), "Starting at: %d\n", num)

	optimizer := number.Optimizer(cfg.Number.Target, cfg.Number.Penalty, cfg.Number.Reward,
		cfg.Search.Tries, cfg.Search.Depth)
	optimizer.Observer = observer

	result := fit.FixedPoint(rng, optimizer, &num, driveConfig(), func(r fit.Round) {
		printer.print(r, strconv.Itoa(int(num)))
	})

	if showStats {
		printSummary(cmd.OutOrStdout(), result, collector)
	}
	return printer.Close()
}
