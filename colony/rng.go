// Package colony - RNG policy for the simulation.
//
// This file centralizes deterministic random generation for the engine.
//
// Goals:
//   - Determinism: same seed ⇒ identical node layout and ant choices.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere, including fallback paths (uniform draws on a degenerate
//     desirability sum come from the same stream).
//   - Safety: no panics or logging.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The Simulation owns exactly one
//     and never shares it; callers serialize access to the Simulation itself.
package colony

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass Seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
