// Package fit drives an optimizer until it stops making progress.
package fit

import (
	"log/slog"
	"math/rand/v2"

	"github.com/cwbudde/utilityprog/internal/up"
)

// StopReason explains why FixedPoint returned
type StopReason string

const (
	// StopFixedPoint means the last round left the object unchanged
	StopFixedPoint StopReason = "fixed-point"
	// StopMaxRounds means the round limit was reached first
	StopMaxRounds StopReason = "max-rounds"
	// StopConverged means the convergence tracker ran out of patience
	StopConverged StopReason = "converged"
)

// DriveConfig bounds a FixedPoint run
type DriveConfig struct {
	// MaxRounds caps the number of optimizer calls (0 = unlimited)
	MaxRounds int

	// Convergence optionally stops the run when utility stagnates
	Convergence ConvergenceConfig
}

// Round is reported before every optimizer call
type Round struct {
	Index   int
	Utility float64
}

// DriveResult holds the output of a FixedPoint run
type DriveResult struct {
	Rounds         int
	Changes        int // Total number of edits replayed across all rounds
	InitialUtility float64
	FinalUtility   float64
	Reason         StopReason
}

// FixedPoint repeatedly runs opt on obj, feeding each result back in, until a
// call leaves the object unchanged. Since the optimizer only moves on a strict
// improvement, an empty change means obj is a local optimum for the
// optimizer's modifier, tries and depth.
//
// progress, when not nil, is called before each round with the current utility.
func FixedPoint[T, C any](rng *rand.Rand, opt *up.ModifyOptimizer[T, C], obj *T, cfg DriveConfig, progress func(Round)) *DriveResult {
	tracker := NewConvergenceTracker(cfg.Convergence)
	utility := opt.Utility.Utility(obj)
	result := &DriveResult{
		InitialUtility: utility,
		FinalUtility:   utility,
	}

	slog.Info("Starting fixed-point search",
		"tries", opt.Tries,
		"depth", opt.Depth,
		"max_rounds", cfg.MaxRounds,
		"initial_utility", utility,
	)

	for {
		if cfg.MaxRounds > 0 && result.Rounds >= cfg.MaxRounds {
			result.Reason = StopMaxRounds
			break
		}
		if progress != nil {
			progress(Round{Index: result.Rounds, Utility: result.FinalUtility})
		}

		res := opt.Search(rng, obj)
		result.Rounds++
		result.Changes += len(res.Changes)
		result.FinalUtility = res.Best

		slog.Debug("Round complete",
			"round", result.Rounds,
			"changes", len(res.Changes),
			"utility", res.Best,
		)

		if !res.Improved() {
			result.Reason = StopFixedPoint
			break
		}
		if tracker.Update(res.Best) {
			result.Reason = StopConverged
			break
		}
	}

	slog.Info("Fixed-point search complete",
		"rounds", result.Rounds,
		"reason", result.Reason,
		"initial_utility", result.InitialUtility,
		"final_utility", result.FinalUtility,
		"improvement", result.FinalUtility-result.InitialUtility,
	)

	return result
}
