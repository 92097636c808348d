package maze

import "math/rand"

// defaultSeed is the fixed seed used when callers pass seed == 0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// pick returns a uniformly random element of xs. xs must be non-empty.
func pick[T any](r *rand.Rand, xs []T) T {
	return xs[r.Intn(len(xs))]
}
