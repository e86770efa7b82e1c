package rng

import "golang.org/x/exp/rand"

// PCG is a fast, seedable Generator backed by a PCG source
// A PCG is not safe for concurrent use
type PCG struct {
	r *rand.Rand
}

// NewPCG returns a PCG generator seeded with seed
func NewPCG(seed uint64) *PCG {
	return &PCG{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a random number from 0 <= x < n
func (p *PCG) Intn(n int) int {
	return p.r.Intn(n)
}

// PCGFactory returns a Factory of PCG generators
// If seed is zero, every generator gets its own seed from crypto/rand. Otherwise every
// generator starts from the same seed, which makes results reproducible.
func PCGFactory(seed uint64) Factory {
	return func() Generator {
		if seed == 0 {
			return NewPCG(NewSeed())
		}

		return NewPCG(seed)
	}
}
