// Package colony - probabilistic next-node selection (transition rule).
package colony

import "math"

// minDistance floors a zero hop distance before inverting it, so coincident
// node placements cannot divide by zero.
const minDistance = 1e-6

// selectNext picks the next node for an ant standing on current, out of the
// non-empty candidate set allowed (unvisited nodes in ascending index order).
//
// Algorithm:
//  1. For each candidate u compute desirability w(u) = τ(current,u)^α · η^β
//     with η = 1/d(current,u), d floored to minDistance.
//  2. If Σ w(u) ≤ 0 (all contributions vanished, e.g. underflow), draw
//     uniformly among the candidates — a defined fallback, not an error.
//  3. Otherwise roulette-wheel: draw r ~ Uniform(0, Σw), accumulate weights
//     in candidate order until the cumulative sum first reaches r.
//     Floating-point rounding may leave the sum just short of r after the
//     last candidate; return that last candidate then (deterministic
//     tie-break, no re-draw).
//
// The returned node is always a member of allowed. The function reads shared
// state (trail, distances) but never mutates it; the only side effect is
// advancing the simulation's RNG stream.
//
// Contracts:
//   - len(allowed) ≥ 1; indices within [0..n-1]: guaranteed by the caller.
//
// Complexity: O(|allowed|) time, allocation-free (scratch reuse).
func (s *Simulation) selectNext(current int, allowed []int) int {
	// Stage 1: desirabilities into the reusable scratch buffer.
	s.desire = s.desire[:0]

	var (
		u    int     // candidate node
		tau  float64 // trail intensity τ(current,u)
		d    float64 // hop distance d(current,u)
		w    float64 // desirability of u
		sum  float64 // Σ w(u), roulette denominator
		i    int     // candidate position
		next int     // chosen node
	)
	for _, u = range allowed {
		tau = s.trail.Get(current, u)
		d = s.dist.Get(current, u)
		if d == 0 {
			d = minDistance
		}
		w = math.Pow(tau, s.cfg.Alpha) * math.Pow(1/d, s.cfg.Beta)
		s.desire = append(s.desire, w)
		sum += w
	}

	// Stage 2: degenerate sum ⇒ uniform fallback from the simulation RNG.
	if sum <= 0 {
		return allowed[s.rng.Intn(len(allowed))]
	}

	// Stage 3: roulette-wheel over the fixed candidate order.
	var (
		r          = s.rng.Float64() * sum // roulette pointer
		cumulative float64                 // running weight sum
	)
	next = allowed[len(allowed)-1] // rounding shortfall tie-break
	for i = 0; i < len(allowed); i++ {
		cumulative += s.desire[i]
		if r <= cumulative {
			next = allowed[i]
			break
		}
	}

	return next
}
