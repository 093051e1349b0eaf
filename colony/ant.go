// Package colony - per-agent tour construction state.
//
// An ant is a small state machine: active(partial tour) → … → finished.
// All its storage is fixed-capacity and indexed by node id, so advancing an
// ant is O(n) and allocation-free after generation spawn. Ants within a
// generation are independent — no ant observes another's state.
package colony

// ant owns one agent's tour-construction state for a single generation.
// It is created at spawn, mutated exactly once per simulation step (one hop
// or a finish transition), and discarded when the generation ends.
type ant struct {
	current  int     // node the ant is standing on
	visited  []bool  // tabu membership per node id, len == n
	tour     []int   // ordered visited nodes, cap == n
	length   float64 // accumulated tour length
	finished bool    // terminal-state flag
}

// newAnt creates an ant at its assigned start node, with the start already
// visited and recorded as the single-node initial tour.
//
// Complexity: O(n) for the tabu allocation.
func newAnt(start, nodeCount int) *ant {
	a := &ant{
		current: start,
		visited: make([]bool, nodeCount),
		tour:    make([]int, 0, nodeCount),
	}
	a.visited[start] = true
	a.tour = append(a.tour, start)

	return a
}

// running reports whether the ant still has hops to make.
func (a *ant) running() bool {
	return !a.finished
}

// advance moves ant a by exactly one hop (or transitions it to finished).
// Transition, per step:
//   - already spanning all nodes ⇒ finished (defensive: invoked past
//     completion adds nothing);
//   - no unvisited node remains ⇒ finished, no distance added;
//   - otherwise pick the next node via the transition rule, add the hop
//     distance, mark visited, append to the tour, and finish when the tour
//     now spans all nodes.
//
// Complexity: O(n), allocation-free (candidate scratch reuse).
func (s *Simulation) advance(a *ant) {
	n := len(s.nodes)
	if len(a.tour) >= n {
		a.finished = true
		return
	}

	// Candidate set J = unvisited nodes, ascending index order.
	s.allowed = s.allowed[:0]
	var u int
	for u = 0; u < n; u++ {
		if !a.visited[u] {
			s.allowed = append(s.allowed, u)
		}
	}
	if len(s.allowed) == 0 {
		a.finished = true
		return
	}

	next := s.selectNext(a.current, s.allowed)

	a.length += s.dist.Get(a.current, next)
	a.current = next
	a.visited[next] = true
	a.tour = append(a.tour, next)

	if len(a.tour) >= n {
		a.finished = true
	}
}
