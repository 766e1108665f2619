// Package growth - RNG utilities for the expansion selector.
//
// Goals:
//   - Determinism: same seed ⇒ identical growth across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. An Engine owns its sampler and
//     must not be shared across goroutines.
package growth

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// uniform draws from [lo, hi) as lo + (hi-lo)·u with one sampler call.
//
// Complexity: O(1).
func uniform(s Sampler, lo, hi float64) float64 {
	return lo + (hi-lo)*s.Float64()
}
