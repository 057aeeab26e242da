package opt

import (
	legacyrand "math/rand"
	"math/rand/v2"

	"github.com/cwbudde/mayfly"
)

// MayflyAdapter wraps the external Mayfly library to conform to our Optimizer interface
type MayflyAdapter struct {
	maxIters int
	popSize  int
}

// NewMayfly creates a new Mayfly optimizer adapter.
// mayfly v0.1.0 needs a population of at least 20.
func NewMayfly(maxIters, popSize int) *MayflyAdapter {
	return &MayflyAdapter{
		maxIters: maxIters,
		popSize:  popSize,
	}
}

// Run executes the Mayfly optimization using the external library
func (m *MayflyAdapter) Run(rng *rand.Rand, eval func([]float64) float64, lower, upper []float64) ([]float64, float64) {
	dim := len(lower)

	config := mayfly.NewDefaultConfig()
	config.ObjectiveFunc = eval
	config.ProblemSize = dim
	config.MaxIterations = m.maxIters
	config.NPop = m.popSize

	// The library only supports scalar bounds; use the first dimension
	config.LowerBound = lower[0]
	config.UpperBound = upper[0]

	// The library expects a math/rand source, seeded from the caller's stream
	config.Rand = legacyrand.New(legacyrand.NewSource(int64(rng.Uint64())))

	result, err := mayfly.Optimize(config)
	if err != nil {
		// Fall back to the center of the search box
		mid := make([]float64, dim)
		for i := range mid {
			mid[i] = (lower[i] + upper[i]) / 2
		}
		return mid, eval(mid)
	}

	return result.GlobalBest.Position, result.GlobalBest.Cost
}
