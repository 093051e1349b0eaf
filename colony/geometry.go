// Package colony - geometry and distance model.
//
// Nodes are immutable 2D points in normalized unit-square coordinates,
// confined to [coordMin, coordMin+coordSpan] on each axis at generation
// time so a renderer never draws them glued to the frame. The distance
// matrix is derived once per layout and never mutated afterwards.
package colony

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/antcolony/matrix"
)

// Coordinate bounds for generated nodes (normalized unit square).
const (
	// coordMin is the lower bound of each generated coordinate.
	coordMin = 0.1

	// coordSpan is the width of the coordinate range; upper bound is 0.9.
	coordSpan = 0.8
)

// Node is an immutable 2D position in normalized unit-square coordinates.
// Nodes are identified by their index 0..NodeCount-1 in the simulation.
type Node struct {
	X, Y float64
}

// generateNodes draws n node positions, each coordinate independent and
// uniform over [coordMin, coordMin+coordSpan), consuming exactly 2n values
// from rng. Pure function of the RNG stream.
//
// Complexity: O(n) time, O(n) space.
func generateNodes(n int, rng *rand.Rand) []Node {
	nodes := make([]Node, n)

	var i int
	for i = 0; i < n; i++ {
		nodes[i] = Node{
			X: coordMin + coordSpan*rng.Float64(),
			Y: coordMin + coordSpan*rng.Float64(),
		}
	}

	return nodes
}

// buildDistances computes the symmetric Euclidean distance matrix for the
// given layout; the diagonal is 0. The result is immutable by convention
// (recomputed only on reset/reconfiguration).
//
// Complexity: O(n²) time and memory.
func buildDistances(nodes []Node) (*matrix.Dense, error) {
	dist, err := matrix.NewDense(len(nodes))
	if err != nil {
		return nil, err
	}

	var (
		i, j   int     // unordered pair indices
		dx, dy float64 // coordinate deltas
	)
	for i = 0; i < len(nodes); i++ {
		for j = i + 1; j < len(nodes); j++ {
			dx = nodes[i].X - nodes[j].X
			dy = nodes[i].Y - nodes[j].Y
			// SetSym writes (i,j) and (j,i) identically; diagonal stays 0.
			_ = dist.SetSym(i, j, math.Sqrt(dx*dx+dy*dy))
		}
	}

	return dist, nil
}
