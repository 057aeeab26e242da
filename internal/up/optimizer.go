package up

import (
	"math/rand/v2"
	"slices"
)

// ModifyOptimizer modifies an object by maximizing utility.
//
// Each call to Modify makes Tries independent attempts. An attempt applies up to
// Depth edits with Modifier, scoring the object after every edit, and then
// undoes all of them so the next attempt restarts from the same baseline. The
// best sequence seen across all attempts is replayed at the end. The object's
// own utility is the floor, so Modify never leaves it in a worse state.
//
// ModifyOptimizer is a Modifier itself: its change is the replayed sequence, so
// an optimizer can serve as the modifier of another optimizer.
//
// A ModifyOptimizer reuses its trial stack between calls and is not safe for
// concurrent use.
type ModifyOptimizer[T, C any] struct {
	// Modifier makes the individual edits.
	Modifier Modifier[T, C]
	// Utility is the measure being maximized.
	Utility Utility[T]
	// Tries is the number of attempts before giving up.
	Tries int
	// Depth is the number of repeated edits before backtracking.
	Depth int
	// Observer, when set, is notified about search progress.
	Observer Observer

	stack []C
}

// Result describes the outcome of one Search call.
type Result[C any] struct {
	// Changes is the replayed sequence, empty if nothing better was found.
	Changes []C
	// Initial is the utility of the object before the search.
	Initial float64
	// Best is the utility of the object after the search.
	Best float64
}

// Improved reports whether the search moved the object.
func (r Result[C]) Improved() bool {
	return len(r.Changes) > 0
}

// Modify searches for a better object state and leaves obj in it. The returned
// sequence reproduces that state when redone from the original object.
//
// Zero Tries or Depth is a no-op and returns an empty sequence.
func (o *ModifyOptimizer[T, C]) Modify(rng *rand.Rand, obj *T) []C {
	return o.Search(rng, obj).Changes
}

// Search behaves like Modify but also reports the utilities before and after.
func (o *ModifyOptimizer[T, C]) Search(rng *rand.Rand, obj *T) Result[C] {
	initial := o.Utility.Utility(obj)
	best := []C{}
	bestUtility := initial

	stack := o.stack[:0]
	for attempt := 0; attempt < o.Tries; attempt++ {
		if o.Observer != nil {
			o.Observer.Attempt(attempt)
		}
		for step := 0; step < o.Depth; step++ {
			stack = append(stack, o.Modifier.Modify(rng, obj))
			utility := o.Utility.Utility(obj)
			if bestUtility < utility {
				best = slices.Clone(stack)
				bestUtility = utility
				if o.Observer != nil {
					o.Observer.Improved(attempt, step, utility)
				}
			}
		}
		for i := len(stack) - 1; i >= 0; i-- {
			o.Modifier.Undo(stack[i], obj)
		}
		clear(stack)
		stack = stack[:0]
	}
	o.stack = stack

	for _, change := range best {
		o.Modifier.Redo(change, obj)
	}
	if o.Observer != nil {
		o.Observer.Done(initial, bestUtility, len(best))
	}

	return Result[C]{Changes: best, Initial: initial, Best: bestUtility}
}

// Undo reverts a sequence returned by Modify, most recent edit first.
func (o *ModifyOptimizer[T, C]) Undo(change []C, obj *T) {
	for i := len(change) - 1; i >= 0; i-- {
		o.Modifier.Undo(change[i], obj)
	}
}

// Redo replays a sequence returned by Modify in order.
func (o *ModifyOptimizer[T, C]) Redo(change []C, obj *T) {
	for _, c := range change {
		o.Modifier.Redo(c, obj)
	}
}
