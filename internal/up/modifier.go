package up

import "math/rand/v2"

// Modifier edits objects in place in a way that can be reversed.
//
// Modify applies an edit and returns the change it made; it may be
// non-deterministic. Undo and Redo must be deterministic: Undo restores the
// exact state before the change and Redo restores the exact state right after
// the Modify call that produced it.
type Modifier[T, C any] interface {
	Modify(rng *rand.Rand, obj *T) C
	Undo(change C, obj *T)
	Redo(change C, obj *T)
}

// Indexed is the change recorded by Modifiers: the position of the member that
// made the edit together with that member's own change.
type Indexed[C any] struct {
	Index  int
	Change C
}

// Modifiers picks one member uniformly at random for each edit. Undo and Redo
// are routed back to the member that produced the change, since other members
// may not understand its change record. The list must not be empty.
type Modifiers[T, C any] []Modifier[T, C]

// Modify edits obj with a randomly chosen member. It panics on an empty list.
func (ms Modifiers[T, C]) Modify(rng *rand.Rand, obj *T) Indexed[C] {
	mustNotBeEmpty("modifier", len(ms))
	i := rng.IntN(len(ms))
	return Indexed[C]{Index: i, Change: ms[i].Modify(rng, obj)}
}

// Undo reverts change using the member that made it.
func (ms Modifiers[T, C]) Undo(change Indexed[C], obj *T) {
	ms[change.Index].Undo(change.Change, obj)
}

// Redo reapplies change using the member that made it.
func (ms Modifiers[T, C]) Redo(change Indexed[C], obj *T) {
	ms[change.Index].Redo(change.Change, obj)
}
