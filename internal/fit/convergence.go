package fit

import (
	"log/slog"
	"math"
)

// ConvergenceConfig defines parameters for detecting stagnation between rounds
type ConvergenceConfig struct {
	// Enabled controls whether convergence detection is active
	Enabled bool

	// Patience is the number of rounds with no significant improvement before stopping
	Patience int

	// Threshold is the minimum relative improvement required to count as progress
	// Example: 0.001 = 0.1% improvement required
	// Relative improvement = (utility - lastSignificant) / |lastSignificant|
	Threshold float64
}

// DefaultConvergenceConfig returns sensible defaults for convergence detection
func DefaultConvergenceConfig() ConvergenceConfig {
	return ConvergenceConfig{
		Enabled:   true,
		Patience:  3,
		Threshold: 0.001, // 0.1% improvement
	}
}

// DisabledConvergenceConfig returns a config with convergence detection disabled
func DisabledConvergenceConfig() ConvergenceConfig {
	return ConvergenceConfig{
		Enabled: false,
	}
}

// ConvergenceTracker tracks utility history and detects when the search has stalled.
// Utility is maximized, so progress means the value goes up.
type ConvergenceTracker struct {
	config          ConvergenceConfig
	history         []float64
	bestUtility     float64 // Best utility ever seen
	lastSignificant float64 // Last utility that was a significant improvement
	staleCount      int     // Number of rounds without significant improvement
}

// NewConvergenceTracker creates a new convergence tracker with the given config
func NewConvergenceTracker(config ConvergenceConfig) *ConvergenceTracker {
	return &ConvergenceTracker{
		config:          config,
		history:         []float64{},
		bestUtility:     math.Inf(-1),
		lastSignificant: math.Inf(-1),
	}
}

// Update records a new utility value and returns true if convergence is detected
func (c *ConvergenceTracker) Update(utility float64) bool {
	if !c.config.Enabled {
		return false // Never converge if disabled
	}

	c.history = append(c.history, utility)

	if utility > c.bestUtility {
		c.bestUtility = utility
	}

	// First value - initialize lastSignificant
	if len(c.history) == 1 {
		c.lastSignificant = utility
		return false
	}

	if c.relativeImprovement(utility) >= c.config.Threshold {
		c.lastSignificant = utility
		c.staleCount = 0
		slog.Debug("Utility improvement detected",
			"utility", utility,
			"stale_count", c.staleCount,
		)
		return false
	}

	c.staleCount++
	slog.Debug("No significant utility improvement",
		"utility", utility,
		"last_significant", c.lastSignificant,
		"stale_count", c.staleCount,
		"patience", c.config.Patience,
	)

	if c.staleCount >= c.config.Patience {
		slog.Info("Convergence detected - stopping early",
			"stale_count", c.staleCount,
			"patience", c.config.Patience,
			"best_utility", c.bestUtility,
		)
		return true
	}

	return false
}

// relativeImprovement compares against the last significant value. A zero
// baseline makes any increase count as an infinite improvement.
func (c *ConvergenceTracker) relativeImprovement(utility float64) float64 {
	gain := utility - c.lastSignificant
	base := math.Abs(c.lastSignificant)
	if base == 0 {
		if gain > 0 {
			return math.Inf(1)
		}
		return 0
	}
	return gain / base
}

// BestUtility returns the best utility seen so far
func (c *ConvergenceTracker) BestUtility() float64 {
	return c.bestUtility
}

// History returns the full utility history
func (c *ConvergenceTracker) History() []float64 {
	return append([]float64{}, c.history...) // Return copy
}

// StaleCount returns the current number of rounds without improvement
func (c *ConvergenceTracker) StaleCount() int {
	return c.staleCount
}

// Reset clears the tracker's state
func (c *ConvergenceTracker) Reset() {
	c.history = []float64{}
	c.bestUtility = math.Inf(-1)
	c.lastSignificant = math.Inf(-1)
	c.staleCount = 0
}
