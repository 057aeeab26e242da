package fit

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/utilityprog/internal/number"
	"github.com/cwbudde/utilityprog/internal/up"
)

func TestFixedPointNumberScenario(t *testing.T) {
	utility := number.Utilities(42, -1, 5)

	for seed := uint64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewPCG(seed, 0))
		optimizer := number.Optimizer(42, -1, 5, 1000, 20)

		var obj uint8
		var rounds []Round
		result := FixedPoint(rng, optimizer, &obj, DriveConfig{}, func(r Round) {
			rounds = append(rounds, r)
		})

		require.Equal(t, StopFixedPoint, result.Reason)
		assert.Equal(t, result.Rounds, len(rounds))
		assert.Equal(t, -42.0, result.InitialUtility)

		// 41 and 43 are both prime and one away from the target.
		assert.Contains(t, []uint8{41, 43}, obj, "seed %d", seed)
		assert.Equal(t, 4.0, result.FinalUtility)

		got := utility.Utility(&obj)
		for _, n := range []uint8{obj - 1, obj + 1} {
			assert.LessOrEqual(t, utility.Utility(&n), got, "neighbor %d of %d", n, obj)
		}

		// Utility never goes down between rounds.
		for i := 1; i < len(rounds); i++ {
			assert.GreaterOrEqual(t, rounds[i].Utility, rounds[i-1].Utility)
		}
	}
}

func TestFixedPointStopsAtMaxRounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 0))
	optimizer := number.Optimizer(255, -1, 0, 40, 1)

	var obj uint8
	result := FixedPoint(rng, optimizer, &obj, DriveConfig{MaxRounds: 3}, nil)

	assert.Equal(t, StopMaxRounds, result.Reason)
	assert.Equal(t, 3, result.Rounds)
	assert.Equal(t, uint8(3), obj)
	assert.Equal(t, 3, result.Changes)
}

func TestFixedPointZeroBudgetStopsImmediately(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 0))
	optimizer := number.Optimizer(42, -1, 5, 0, 0)

	var obj uint8 = 7
	result := FixedPoint(rng, optimizer, &obj, DriveConfig{}, nil)

	assert.Equal(t, StopFixedPoint, result.Reason)
	assert.Equal(t, 1, result.Rounds)
	assert.Equal(t, uint8(7), obj)
	assert.Equal(t, result.InitialUtility, result.FinalUtility)
}

func TestFixedPointConverged(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 0))
	optimizer := &up.ModifyOptimizer[uint8, number.Change]{
		Modifier: number.Inc{},
		Utility:  up.UtilityFunc[uint8](func(n *uint8) float64 { return float64(*n) }),
		Tries:    1,
		Depth:    1,
	}

	var obj uint8 = 1
	cfg := DriveConfig{
		Convergence: ConvergenceConfig{Enabled: true, Patience: 2, Threshold: 10},
	}
	result := FixedPoint(rng, optimizer, &obj, cfg, nil)

	assert.Equal(t, StopConverged, result.Reason)
	assert.Equal(t, 3, result.Rounds)
	assert.Equal(t, uint8(4), obj)
}
