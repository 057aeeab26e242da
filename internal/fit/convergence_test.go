package fit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvergenceTrackerDisabled(t *testing.T) {
	tracker := NewConvergenceTracker(DisabledConvergenceConfig())

	for i := 0; i < 10; i++ {
		assert.False(t, tracker.Update(1))
	}
	assert.Empty(t, tracker.History())
}

func TestConvergenceTrackerPatience(t *testing.T) {
	tracker := NewConvergenceTracker(DefaultConvergenceConfig())

	assert.False(t, tracker.Update(-100))
	assert.False(t, tracker.Update(-50)) // 50% better
	assert.Equal(t, 0, tracker.StaleCount())

	assert.False(t, tracker.Update(-50))
	assert.False(t, tracker.Update(-49.99)) // below 0.1%
	assert.Equal(t, 2, tracker.StaleCount())
	assert.True(t, tracker.Update(-49.99))

	assert.Equal(t, -49.99, tracker.BestUtility())
	assert.Equal(t, []float64{-100, -50, -50, -49.99, -49.99}, tracker.History())
}

func TestConvergenceTrackerZeroBaseline(t *testing.T) {
	tracker := NewConvergenceTracker(ConvergenceConfig{Enabled: true, Patience: 1, Threshold: 0.5})

	assert.False(t, tracker.Update(0))
	assert.False(t, tracker.Update(1), "any gain from zero is significant")
	assert.True(t, tracker.Update(1))
}

func TestConvergenceTrackerReset(t *testing.T) {
	tracker := NewConvergenceTracker(DefaultConvergenceConfig())
	tracker.Update(1)
	tracker.Update(1)

	tracker.Reset()

	assert.Empty(t, tracker.History())
	assert.Equal(t, 0, tracker.StaleCount())
	assert.True(t, math.IsInf(tracker.BestUtility(), -1))
}
