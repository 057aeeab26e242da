// Package number is a small utility programming domain over 8-bit numbers.
//
// A number is pulled toward a target value while being rewarded for being
// prime. Depending on the weights the optimizer settles on the target itself
// or on a nearby prime, which makes it a handy playground for seeing how
// utilities trade off against each other.
package number

import (
	"math"
	"math/rand/v2"

	"github.com/cwbudde/utilityprog/internal/up"
)

// Target assigns the absolute distance to Value a Penalty.
// A negative penalty makes the utility peak at Value.
type Target struct {
	Value   uint8
	Penalty float64
}

// Utility returns |obj - Value| * Penalty.
func (t Target) Utility(obj *uint8) float64 {
	return math.Abs(float64(*obj)-float64(t.Value)) * t.Penalty
}

// Prime gives a Reward when the number is prime.
type Prime struct {
	Reward float64
}

// Utility returns Reward for primes and 0 otherwise.
func (p Prime) Utility(obj *uint8) float64 {
	if IsPrime(*obj) {
		return p.Reward
	}
	return 0
}

// IsPrime reports whether n is prime.
func IsPrime(n uint8) bool {
	if n < 2 {
		return false
	}
	for i := uint8(2); uint16(i)*uint16(i) <= uint16(n); i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// Random generates a uniformly random number.
type Random struct{}

// Generate draws a number in [0, 255].
func (Random) Generate(rng *rand.Rand) uint8 {
	return uint8(rng.UintN(math.MaxUint8 + 1))
}

// Fixed always generates the same number.
type Fixed uint8

// Generate returns f.
func (f Fixed) Generate(*rand.Rand) uint8 {
	return uint8(f)
}

// Change records a number edit so it can be undone and redone.
type Change struct {
	Old uint8
	New uint8
}

// Inc increments the number, staying at 255 when already there.
type Inc struct{}

// Modify increments obj.
func (Inc) Modify(_ *rand.Rand, obj *uint8) Change {
	old := *obj
	if *obj < math.MaxUint8 {
		*obj++
	}
	return Change{Old: old, New: *obj}
}

// Undo restores the number before the increment.
func (Inc) Undo(c Change, obj *uint8) { *obj = c.Old }

// Redo restores the number after the increment.
func (Inc) Redo(c Change, obj *uint8) { *obj = c.New }

// Dec decrements the number, staying at 0 when already there.
type Dec struct{}

// Modify decrements obj.
func (Dec) Modify(_ *rand.Rand, obj *uint8) Change {
	old := *obj
	if *obj > 0 {
		*obj--
	}
	return Change{Old: old, New: *obj}
}

// Undo restores the number before the decrement.
func (Dec) Undo(c Change, obj *uint8) { *obj = c.Old }

// Redo restores the number after the decrement.
func (Dec) Redo(c Change, obj *uint8) { *obj = c.New }

// Utilities returns the demo utility: distance to target penalized by
// penalty, plus reward for primes.
func Utilities(target uint8, penalty, reward float64) up.Utilities[uint8] {
	return up.Utilities[uint8]{
		Target{Value: target, Penalty: penalty},
		Prime{Reward: reward},
	}
}

// Modifiers returns the increment and decrement edits.
func Modifiers() up.Modifiers[uint8, Change] {
	return up.Modifiers[uint8, Change]{Inc{}, Dec{}}
}

// Optimizer builds the demo optimizer over Modifiers and Utilities.
func Optimizer(target uint8, penalty, reward float64, tries, depth int) *up.ModifyOptimizer[uint8, up.Indexed[Change]] {
	return &up.ModifyOptimizer[uint8, up.Indexed[Change]]{
		Modifier: Modifiers(),
		Utility:  Utilities(target, penalty, reward),
		Tries:    tries,
		Depth:    depth,
	}
}
