// Package solve - deterministic randomness for the greedy restarts.
//
// Same seed ⇒ identical walks across platforms; no time-based sources
// anywhere. math/rand.Rand is NOT goroutine-safe, so each restart gets
// its own stream instead of sharing one generator.
package solve

import "math/rand"

// defaultSeed stands in when callers pass seed==0, keeping default
// runs reproducible. The value is arbitrary but stable.
const defaultSeed int64 = 1

// restartRNG returns the RNG stream for one greedy restart. The query
// seed and the restart index are mixed through a SplitMix64-style
// finalizer (canonical constants, Vigna 2014) so consecutive restarts
// stay uncorrelated.
//
// Complexity: O(1).
func restartRNG(seed int64, restart uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	x := uint64(seed) ^ (restart + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return rand.New(rand.NewSource(int64(x)))
}
