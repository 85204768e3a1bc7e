package mines

import (
	"hash/maphash"
	"math/rand/v2"
)

// Source supplies the randomness used to place mines. [*rand.Rand] satisfies it.
type Source interface {
	IntN(n int) int
}

// NewRand returns a PCG-backed generator. A zero seed draws entropy from the
// runtime instead.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(
			new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
		))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
