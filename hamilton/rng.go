// SPDX-License-Identifier: MIT
//
// File: rng.go
// Role: deterministic random streams shared by the search and its callers.
//
// math/rand.Rand is not goroutine-safe; derive one stream per worker with
// DeriveRand instead of sharing.

package hamilton

import "math/rand"

// defaultRNGSeed is used when callers pass seed 0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 ⇒ defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64
// finalizer so neighbouring stream ids give unrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand returns an independent stream for (seed, stream), e.g. one per
// graph order in a growth run. The same pair always yields the same stream.
func DeriveRand(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}

// pick returns a uniformly random element of a non-empty slice.
func pick(r *rand.Rand, a []int) int {
	return a[r.Intn(len(a))]
}
