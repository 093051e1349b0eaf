// Package colony - pheromone trail model.
//
// The trail is an n×n symmetric non-negative matrix with a zero diagonal.
// It is initialized to a constant τ0 and mutated ONLY at generation
// boundaries by evaporateAndDeposit. Symmetry is preserved by every update:
// an edge (i,j) is always written identically to (j,i).
package colony

import "github.com/katalvlaran/antcolony/matrix"

// newTrail allocates the trail matrix with every off-diagonal entry at tau0.
//
// Complexity: O(n²).
func newTrail(n int, tau0 float64) (*matrix.Dense, error) {
	trail, err := matrix.NewDense(n)
	if err != nil {
		return nil, err
	}
	trail.FillOffDiagonal(tau0)

	return trail, nil
}

// evaporateAndDeposit applies the generation-boundary update
//
//	τ′[i][j] = ρ·τ[i][j] + Σ_k Q/L_k  over every edge (i,j) on ant k's tour,
//
// computed from a snapshot of the pre-update trail: all deposits use the
// same ρ·τ_old baseline, never a matrix being mutated mid-pass.
//
// Accumulation order is fixed — deposits in ant order along each tour,
// then the ρ·τ_old component in row-major order — so repeated runs with the
// same seed reproduce bit-identical trails.
//
// Degenerate tours (fewer than 2 visited nodes) contribute nothing.
//
// Complexity: O(a·n + n²) for a ants on n nodes.
func evaporateAndDeposit(trail *matrix.Dense, ants []*ant, rho, q float64) {
	// Stage 1: snapshot the old trail, then clear the live matrix so it can
	// accumulate the Σ Q/L deposits from scratch.
	old := trail.Clone()
	trail.Zero()

	// Stage 2: deposits. Each ant reinforces every edge of its tour, in both
	// directions (undirected graph), with the same Q/L contribution.
	var (
		a            *ant    // current depositor
		contribution float64 // Q / tour length
		k            int     // tour edge index
	)
	for _, a = range ants {
		if len(a.tour) < 2 {
			continue // degenerate tour, nothing traversed
		}
		contribution = q / a.length
		for k = 0; k+1 < len(a.tour); k++ {
			// Indices come from a constructed tour; bounds hold by invariant.
			_ = trail.AddSym(a.tour[k], a.tour[k+1], contribution)
		}
	}

	// Stage 3: add the retained fraction of the old trail.
	_ = trail.AddScaled(old, rho)
}
