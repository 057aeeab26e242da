// Package up provides the building blocks of utility programming: objects are
// scored by a Utility, produced by a Generator and edited in place by a
// Modifier whose changes can be undone and redone exactly. ModifyOptimizer
// combines a Modifier and a Utility into a multi-restart hill climber that is
// itself a Modifier, so optimizers nest like any other edit source.
//
// Randomness is always drawn from a caller-supplied *rand.Rand. Seed it to make
// aggregate selection and optimizer outcomes reproducible.
package up

// Utility measures how good an object is. Higher is better.
//
// Implementations must not mutate obj and must return the same value for the
// same object state. Returned values are not validated: keeping them finite is
// the caller's responsibility, NaN and Inf compare as the float64 rules dictate.
type Utility[T any] interface {
	Utility(obj *T) float64
}

// UtilityFunc adapts a plain function to the Utility interface.
type UtilityFunc[T any] func(obj *T) float64

// Utility calls f(obj).
func (f UtilityFunc[T]) Utility(obj *T) float64 {
	return f(obj)
}

// Utilities sums the utility of each member. An empty list scores 0.
type Utilities[T any] []Utility[T]

// Utility returns the sum of all member utilities, in list order.
func (us Utilities[T]) Utility(obj *T) float64 {
	var sum float64
	for _, u := range us {
		sum += u.Utility(obj)
	}
	return sum
}
