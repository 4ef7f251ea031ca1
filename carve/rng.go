package carve

import "math/rand"

// DefaultSeed is used when callers pass seed==0. The value is arbitrary
// but stable, so the zero seed is reproducible too.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand for seed.
// Policy: seed==0 ⇒ DefaultSeed; any other value is used verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// sample picks one element of ids uniformly. ids must be non-empty.
func sample[T any](rng *rand.Rand, ids []T) T {
	return ids[rng.Intn(len(ids))]
}
