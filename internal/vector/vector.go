// Package vector is a utility programming domain over real-valued vectors.
package vector

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/cwbudde/utilityprog/internal/up"
)

// Vector is the object being optimized.
type Vector []float64

// String formats the vector compactly, e.g. "[0.5, -1.25]".
func (v Vector) String() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.4g", x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Bounds defines the valid range of each coordinate.
type Bounds struct {
	Lower []float64
	Upper []float64
}

// NewBounds creates bounds of the given dimension with the same range on every axis.
func NewBounds(dim int, lower, upper float64) Bounds {
	b := Bounds{
		Lower: make([]float64, dim),
		Upper: make([]float64, dim),
	}
	for i := 0; i < dim; i++ {
		b.Lower[i] = lower
		b.Upper[i] = upper
	}
	return b
}

// Dim returns the number of coordinates covered by the bounds.
func (b Bounds) Dim() int {
	return len(b.Lower)
}

// Clamp restricts x to the range of coordinate i. Coordinates outside the
// bounds' dimension are left unchanged.
func (b Bounds) Clamp(i int, x float64) float64 {
	if i >= len(b.Lower) || i >= len(b.Upper) {
		return x
	}
	return math.Max(b.Lower[i], math.Min(b.Upper[i], x))
}

// Mid returns the center of the bounds.
func (b Bounds) Mid() Vector {
	v := make(Vector, b.Dim())
	for i := range v {
		v[i] = (b.Lower[i] + b.Upper[i]) / 2
	}
	return v
}

// Sphere rewards closeness to Center: -Weight * sum((x_i - c_i)^2).
// Missing center coordinates count as zero.
type Sphere struct {
	Center []float64
	Weight float64
}

// Utility returns the weighted negative squared distance to Center.
func (s Sphere) Utility(obj *Vector) float64 {
	var sum float64
	for i, x := range *obj {
		var c float64
		if i < len(s.Center) {
			c = s.Center[i]
		}
		d := x - c
		sum += d * d
	}
	return -s.Weight * sum
}

// Uniform generates vectors uniformly within Bounds.
type Uniform struct {
	Bounds Bounds
}

// Generate draws a random vector within the bounds.
func (u Uniform) Generate(rng *rand.Rand) Vector {
	v := make(Vector, u.Bounds.Dim())
	for i := range v {
		lo, hi := u.Bounds.Lower[i], u.Bounds.Upper[i]
		v[i] = lo + rng.Float64()*(hi-lo)
	}
	return v
}

// Delta records a single coordinate change. Index is -1 for an empty vector.
type Delta struct {
	Index int
	Old   float64
	New   float64
}

// Perturb moves one random coordinate by a uniform step in [-Step, Step],
// clamped to Bounds.
type Perturb struct {
	Step   float64
	Bounds Bounds
}

// Modify perturbs a random coordinate of obj.
func (p Perturb) Modify(rng *rand.Rand, obj *Vector) Delta {
	v := *obj
	if len(v) == 0 {
		return Delta{Index: -1}
	}
	i := rng.IntN(len(v))
	old := v[i]
	v[i] = p.Bounds.Clamp(i, old+(rng.Float64()*2-1)*p.Step)
	return Delta{Index: i, Old: old, New: v[i]}
}

// Undo restores the coordinate's old value.
func (p Perturb) Undo(d Delta, obj *Vector) {
	if d.Index >= 0 {
		(*obj)[d.Index] = d.Old
	}
}

// Redo restores the coordinate's new value.
func (p Perturb) Redo(d Delta, obj *Vector) {
	if d.Index >= 0 {
		(*obj)[d.Index] = d.New
	}
}

// Pair records a swap of two coordinates. Both are -1 for an empty vector.
type Pair struct {
	I, J int
}

// Swap exchanges two random coordinates. A swap is its own inverse.
type Swap struct{}

// Modify swaps two random coordinates of obj.
func (Swap) Modify(rng *rand.Rand, obj *Vector) Pair {
	n := len(*obj)
	if n == 0 {
		return Pair{I: -1, J: -1}
	}
	p := Pair{I: rng.IntN(n), J: rng.IntN(n)}
	swap(p, *obj)
	return p
}

// Undo swaps the pair back.
func (Swap) Undo(p Pair, obj *Vector) { swap(p, *obj) }

// Redo swaps the pair again.
func (Swap) Redo(p Pair, obj *Vector) { swap(p, *obj) }

func swap(p Pair, v Vector) {
	if p.I >= 0 {
		v[p.I], v[p.J] = v[p.J], v[p.I]
	}
}

// Optimizer builds an optimizer that perturbs coordinates to maximize utility.
func Optimizer(utility up.Utility[Vector], bounds Bounds, step float64, tries, depth int) *up.ModifyOptimizer[Vector, Delta] {
	return &up.ModifyOptimizer[Vector, Delta]{
		Modifier: Perturb{Step: step, Bounds: bounds},
		Utility:  utility,
		Tries:    tries,
		Depth:    depth,
	}
}
