package up

import "math/rand/v2"

// Generator produces new objects. Generation may be non-deterministic.
type Generator[O any] interface {
	Generate(rng *rand.Rand) O
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc[O any] func(rng *rand.Rand) O

// Generate calls f(rng).
func (f GeneratorFunc[O]) Generate(rng *rand.Rand) O {
	return f(rng)
}

// Generators picks one member uniformly at random and delegates to it.
// The list must not be empty.
type Generators[O any] []Generator[O]

// Generate delegates to a randomly chosen member. It panics on an empty list.
func (gs Generators[O]) Generate(rng *rand.Rand) O {
	mustNotBeEmpty("generator", len(gs))
	return gs[rng.IntN(len(gs))].Generate(rng)
}

func mustNotBeEmpty(kind string, n int) {
	if n == 0 {
		panic("up: empty " + kind + " list")
	}
}
