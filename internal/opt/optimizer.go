// Package opt adapts population-based optimizers to produce starting objects
// for local search.
package opt

import "math/rand/v2"

// Optimizer defines a bounded continuous optimization algorithm
type Optimizer interface {
	// Run executes the optimization
	// rng: source the optimizer derives its own randomness from
	// eval: objective function to minimize
	// lower, upper: parameter bounds, one entry per dimension
	// Returns: best parameters and best cost
	Run(rng *rand.Rand, eval func([]float64) float64, lower, upper []float64) ([]float64, float64)
}
