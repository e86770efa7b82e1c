package rng

// Generator is a source of random integers for shuffling
type Generator interface {
	// Intn returns a number from 0 <= x < n
	Intn(n int) int
}

// Factory returns a new Generator
// Callers that run concurrently must each use their own Generator
type Factory func() Generator
