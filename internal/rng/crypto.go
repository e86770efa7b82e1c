package rng

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
)

// Crypto wraps the crypto/rand library
// It holds no state, so a single value is safe to share
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// NewSeed returns a seed read from crypto/rand
func NewSeed() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("cannot seed generator with cryptographically secure random number generator")
	}

	return binary.LittleEndian.Uint64(b[:])
}

// CryptoFactory returns a Factory that always hands out the shared Crypto generator
func CryptoFactory() Factory {
	return func() Generator {
		return Crypto{}
	}
}
