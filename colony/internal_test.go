// In-package tests for the pieces that need a hand-built layout: the
// transition rule on a known geometry, and the trail update arithmetic.
package colony

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// newSquareSim builds a simulation over four nodes pinned to the corners of
// the generation range, bypassing random layout generation:
//
//	3───2
//	│ ╳ │
//	0───1
//
// Side edges have length 0.8; diagonals ≈ 1.131.
func newSquareSim(t *testing.T, antCount int) *Simulation {
	t.Helper()

	nodes := []Node{{0.1, 0.1}, {0.9, 0.1}, {0.9, 0.9}, {0.1, 0.9}}

	dist, err := buildDistances(nodes)
	require.NoError(t, err)
	trail, err := newTrail(len(nodes), DefaultTau0)
	require.NoError(t, err)

	s := &Simulation{
		cfg: Config{
			NodeCount: len(nodes),
			AntCount:  antCount,
			Alpha:     DefaultAlpha,
			Beta:      DefaultBeta,
			Rho:       DefaultRho,
			Q:         DefaultQ,
			Tau0:      DefaultTau0,
			Seed:      1,
		},
		rng:        rngFromSeed(1),
		nodes:      nodes,
		dist:       dist,
		trail:      trail,
		bestLength: math.Inf(1),
		allowed:    make([]int, 0, len(nodes)),
		desire:     make([]float64, 0, len(nodes)),
	}
	s.spawnGeneration()

	return s
}

// TestSelectNext_FavorsNearNeighbor verifies the first-hop scenario on the
// square: with a uniform τ0 trail and β=5, the side neighbors (distance 0.8)
// must dominate the diagonal one (distance ≈1.131). The diagonal weight is
// ≈8% of the total, so over 500 draws the side nodes win by a wide margin.
func TestSelectNext_FavorsNearNeighbor(t *testing.T) {
	s := newSquareSim(t, 1)

	const trials = 500
	var side, diagonal int
	for i := 0; i < trials; i++ {
		next := s.selectNext(0, []int{1, 2, 3})
		switch next {
		case 1, 3:
			side++
		case 2:
			diagonal++
		default:
			t.Fatalf("selectNext returned %d, not a member of the candidate set", next)
		}
	}

	require.Greater(t, side, 400, "side neighbors must dominate (got side=%d diagonal=%d)", side, diagonal)
}

// TestSelectNext_SingleCandidate checks the trivial candidate set.
func TestSelectNext_SingleCandidate(t *testing.T) {
	s := newSquareSim(t, 1)
	require.Equal(t, 2, s.selectNext(0, []int{2}))
}

// TestSelectNext_ZeroSumFallback forces Σ w(u) = 0 by zeroing the trail and
// verifies the defined fallback: a uniform draw that is still a member of
// the candidate set, taken from the simulation's own RNG.
func TestSelectNext_ZeroSumFallback(t *testing.T) {
	s := newSquareSim(t, 1)
	s.trail.Zero()

	for i := 0; i < 50; i++ {
		next := s.selectNext(0, []int{1, 2, 3})
		require.Contains(t, []int{1, 2, 3}, next)
	}
}

// TestEvaporateAndDeposit_SingleAnt pins the deposit arithmetic of one
// completed generation: a traversed edge holds ρ·τ0 + Q/L, an untouched
// edge holds ρ·τ0.
func TestEvaporateAndDeposit_SingleAnt(t *testing.T) {
	s := newSquareSim(t, 1)

	// Drive the single ant through its full tour (n-1 hops); the completion
	// update runs inside the last Step call.
	for i := 0; i < 3; i++ {
		s.Step()
	}
	require.Equal(t, 1, s.Iteration())

	tour := s.BestTour()
	require.Len(t, tour, 4)
	length := s.BestLength()
	require.False(t, math.IsInf(length, 1))

	// Mark the traversed (undirected) edges.
	onTour := map[[2]int]bool{}
	for k := 0; k+1 < len(tour); k++ {
		a, b := tour[k], tour[k+1]
		if a > b {
			a, b = b, a
		}
		onTour[[2]int{a, b}] = true
	}

	baseline := DefaultRho * DefaultTau0 // ρ·τ0 on every edge
	deposit := DefaultQ / length         // Q/L on traversed edges

	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			tau := s.trail.Get(i, j)
			want := baseline
			if onTour[[2]int{i, j}] {
				want += deposit
			}
			require.InDelta(t, want, tau, 1e-12, "edge (%d,%d)", i, j)
			require.Equal(t, tau, s.trail.Get(j, i), "trail symmetry on (%d,%d)", i, j)
		}
	}
}

// TestEvaporateAndDeposit_DegenerateTourContributesNothing verifies that an
// ant with fewer than 2 visited nodes leaves only the ρ·τ_old component.
func TestEvaporateAndDeposit_DegenerateTourContributesNothing(t *testing.T) {
	trail, err := newTrail(3, DefaultTau0)
	require.NoError(t, err)

	stub := newAnt(0, 3) // single-node tour, never moved
	evaporateAndDeposit(trail, []*ant{stub}, DefaultRho, DefaultQ)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := DefaultRho * DefaultTau0
			if i == j {
				want = 0
			}
			require.InDelta(t, want, trail.Get(i, j), 1e-12, "cell (%d,%d)", i, j)
		}
	}
}

// TestGenerateNodes_Bounds checks that every generated coordinate stays in
// the documented [0.1, 0.9] band.
func TestGenerateNodes_Bounds(t *testing.T) {
	nodes := generateNodes(200, rngFromSeed(3))
	require.Len(t, nodes, 200)

	for i, nd := range nodes {
		require.GreaterOrEqual(t, nd.X, coordMin, "node %d X", i)
		require.Less(t, nd.X, coordMin+coordSpan, "node %d X", i)
		require.GreaterOrEqual(t, nd.Y, coordMin, "node %d Y", i)
		require.Less(t, nd.Y, coordMin+coordSpan, "node %d Y", i)
	}
}

// TestBuildDistances_SymmetricZeroDiagonal checks the distance-matrix
// invariants (symmetry, zero diagonal, non-negativity) on a random layout.
func TestBuildDistances_SymmetricZeroDiagonal(t *testing.T) {
	nodes := generateNodes(12, rngFromSeed(5))
	dist, err := buildDistances(nodes)
	require.NoError(t, err)

	for i := 0; i < 12; i++ {
		require.Equal(t, 0.0, dist.Get(i, i), "diagonal at %d", i)
		for j := 0; j < 12; j++ {
			require.Equal(t, dist.Get(i, j), dist.Get(j, i), "symmetry (%d,%d)", i, j)
			require.GreaterOrEqual(t, dist.Get(i, j), 0.0)
		}
	}
}
