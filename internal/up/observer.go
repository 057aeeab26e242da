package up

// Observer receives progress notifications from a ModifyOptimizer.
// Observers only see scores; they never get access to the object.
type Observer interface {
	// Attempt is called at the start of each attempt.
	Attempt(attempt int)
	// Improved is called when an edit yields a new best utility.
	Improved(attempt, step int, utility float64)
	// Done is called once per search with the utilities before and after
	// and the length of the replayed sequence.
	Done(initial, best float64, changes int)
}

// NopObserver ignores all notifications.
type NopObserver struct{}

func (NopObserver) Attempt(int) {}
func (NopObserver) Improved(int, int, float64) {}
func (NopObserver) Done(float64, float64, int) {}
