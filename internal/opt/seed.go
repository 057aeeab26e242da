package opt

import (
	"log/slog"
	"math/rand/v2"

	"github.com/cwbudde/utilityprog/internal/up"
	"github.com/cwbudde/utilityprog/internal/vector"
)

// Seeder generates starting vectors by running a population optimizer on the
// utility, so that local search begins near a good region instead of at a
// blind sample.
type Seeder struct {
	Optimizer Optimizer
	Utility   up.Utility[vector.Vector]
	Bounds    vector.Bounds
}

// Generate runs the optimizer and returns its best position, clamped to Bounds.
func (s Seeder) Generate(rng *rand.Rand) vector.Vector {
	cost := func(x []float64) float64 {
		v := vector.Vector(x)
		return -s.Utility.Utility(&v)
	}

	best, bestCost := s.Optimizer.Run(rng, cost, s.Bounds.Lower, s.Bounds.Upper)

	v := make(vector.Vector, s.Bounds.Dim())
	for i := range v {
		if i < len(best) {
			v[i] = s.Bounds.Clamp(i, best[i])
		}
	}

	slog.Debug("Seeded vector", "dim", len(v), "utility", -bestCost)
	return v
}
