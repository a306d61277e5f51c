// Package grid - instance generation and RNG utilities.
//
// Generation is deterministic for a given *rand.Rand; no time-based source is
// hidden anywhere. math/rand.Rand is NOT goroutine-safe: use DeriveRand to
// hand each worker its own stream.
package grid

import "math/rand"

// defaultSeed is the fixed seed used when callers pass seed==0 or a nil RNG.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// mixSeed mixes a parent seed and a stream identifier (SplitMix64 finalizer).
func mixSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand creates an independent stream from base and a stream id.
// base.Int63() is consumed once so that reusing a stream id still yields
// different children. A nil base uses defaultSeed as the parent.
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(mixSeed(parent, stream)))
}

// Generate returns a grid of the given shape holding exactly npoints
// occupied cells chosen uniformly without replacement.
// Returns ErrInvalidShape for a bad shape and ErrTooManyPoints when npoints
// is negative or exceeds the number of cells. A nil rng uses defaultSeed.
// Complexity: O(size).
func Generate(shape []int, npoints int, rng *rand.Rand) (*Grid, error) {
	g, err := New(shape...)
	if err != nil {
		return nil, err
	}
	size := len(g.cells)
	if npoints < 0 || npoints > size {
		return nil, ErrTooManyPoints
	}
	if rng == nil {
		rng = NewRand(0)
	}

	// Partial Fisher–Yates: the first npoints slots end up a uniform sample.
	pool := make([]int, size)
	for i := range pool {
		pool[i] = i
	}
	for i := 0; i < npoints; i++ {
		j := i + rng.Intn(size-i)
		pool[i], pool[j] = pool[j], pool[i]
		g.cells[pool[i]] = Occupied
	}

	return g, nil
}
