// Package colony - simulation controller.
//
// This file provides the canonical entry points to drive the engine:
//
//   - New / NewFromConfig: validate parameters, build geometry, distances,
//     trail and the first ant generation.
//   - Step: advance every unfinished ant one hop; when the generation has
//     completed, run the trail update, track the best tour and respawn.
//   - Reset / SetAntCount: the two reconfiguration commands.
//   - Read-only queries consumed by presentation layers.
//
// Design principles:
//   - Deterministic: one seedable RNG per instance; no time-based randomness.
//   - Strict sentinels: only errors from types.go and matrix; no fmt.Errorf
//     where a sentinel suffices.
//   - Hot-path discipline: each step is O(ants·n) and allocation-free after
//     generation spawn (scratch buffers live on the Simulation).
package colony

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/antcolony/matrix"
)

// Simulation owns the full mutable aggregate of one ACO run: geometry,
// distance matrix, pheromone trail, the current ant generation and the
// best-tour record. It is the single writer of all of it; concurrent calls
// from multiple goroutines are undefined and must be serialized by the
// caller (the engine provides no internal locking).
type Simulation struct {
	cfg Config     // validated construction parameters
	rng *rand.Rand // the one RNG stream of this instance

	nodes []Node        // immutable layout, regenerated on Reset
	dist  *matrix.Dense // symmetric distances, derived from nodes
	trail *matrix.Dense // symmetric pheromone intensities

	ants       []*ant  // current generation
	iteration  int     // completed generations since construction/Reset
	bestLength float64 // best tour length so far, +Inf when unset
	bestTour   []int   // best tour permutation, nil when unset

	// Scratch buffers reused by the transition rule to keep stepping
	// allocation-free after spawn.
	allowed []int
	desire  []float64
}

// New constructs a Simulation from DefaultConfig overridden by the given
// functional options.
//
// Errors: construction sentinels from types.go (all match
// ErrInvalidConfiguration via errors.Is).
//
// Complexity: O(n²) for the matrices plus O(ants·n) for the generation.
func New(opts ...Option) (*Simulation, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg) // apply in order; last-writer-wins semantics
	}

	return NewFromConfig(cfg)
}

// NewFromConfig constructs a Simulation from an explicit Config (e.g. one
// decoded from a file). Validation happens here and only here; see
// validateConfig for the exact rules.
func NewFromConfig(cfg Config) (*Simulation, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	s := &Simulation{
		cfg: cfg,
		rng: rngFromSeed(cfg.Seed),
	}
	if err := s.initAll(); err != nil {
		return nil, err
	}

	return s, nil
}

// initAll (re)builds every piece of simulation state from the current RNG
// stream: layout, distances, trail at τ0, a fresh generation, zeroed
// counters and a cleared best-tour record.
func (s *Simulation) initAll() error {
	var err error

	s.nodes = generateNodes(s.cfg.NodeCount, s.rng)
	s.dist, err = buildDistances(s.nodes)
	if err != nil {
		return err
	}
	s.trail, err = newTrail(s.cfg.NodeCount, s.cfg.Tau0)
	if err != nil {
		return err
	}

	s.allowed = make([]int, 0, s.cfg.NodeCount)
	s.desire = make([]float64, 0, s.cfg.NodeCount)

	s.spawnGeneration()
	s.iteration = 0
	s.bestLength = math.Inf(1)
	s.bestTour = nil

	return nil
}

// spawnGeneration replaces the ant slice with a fresh generation of the
// configured size. Start nodes are assigned round-robin (k mod n) to spread
// initial coverage over the graph.
//
// Complexity: O(ants·n).
func (s *Simulation) spawnGeneration() {
	ants := make([]*ant, s.cfg.AntCount)

	var k int
	for k = 0; k < s.cfg.AntCount; k++ {
		ants[k] = newAnt(k%s.cfg.NodeCount, s.cfg.NodeCount)
	}
	s.ants = ants
}

// allFinished reports whether no ant of the current generation is running.
func (s *Simulation) allFinished() bool {
	for _, a := range s.ants {
		if a.running() {
			return false
		}
	}

	return true
}

// Step performs one discrete, atomic unit of simulation work; it runs to
// completion before returning, with no internal suspension.
//
// Behavior:
//   - If every ant is already finished (e.g. an exhausted generation),
//     the generation-completion update runs immediately instead of moving.
//   - Otherwise every unfinished ant advances exactly one hop; if that pass
//     finishes the generation, the completion update runs in the same call —
//     no extra step is needed to "notice" completion.
//
// Complexity: O(ants·n) per call.
func (s *Simulation) Step() {
	if s.allFinished() {
		s.completeGeneration()
		return
	}

	for _, a := range s.ants {
		if a.running() {
			s.advance(a)
		}
	}

	if s.allFinished() {
		s.completeGeneration()
	}
}

// completeGeneration runs the generation-boundary work, in order:
//
//	(a) trail evaporation + deposits from every completed tour;
//	(b) best-tour tracking with first-improvement semantics — a later ant
//	    replaces the record only on a strictly shorter tour, so within one
//	    generation ties keep the first ant in iteration order;
//	(c) a fresh generation (round-robin starts, current ant count);
//	(d) iteration counter increment.
func (s *Simulation) completeGeneration() {
	evaporateAndDeposit(s.trail, s.ants, s.cfg.Rho, s.cfg.Q)

	for _, a := range s.ants {
		if len(a.tour) < 2 {
			continue // degenerate tours never compete for the record
		}
		if a.length < s.bestLength {
			s.bestLength = a.length
			s.bestTour = append(s.bestTour[:0], a.tour...)
		}
	}

	s.spawnGeneration()
	s.iteration++
}

// Reset regenerates node positions, distances, trail (back to τ0) and the
// ant generation, zeroes the iteration counter and clears the best-tour
// record. The RNG stream continues — call NewFromConfig for a bit-identical
// rerun from the seed.
func (s *Simulation) Reset() {
	// cfg was validated at construction; rebuilding from it cannot fail.
	_ = s.initAll()
}

// SetAntCount clamps k to ≥ 1, updates the configured ant count, and
// immediately spawns a new generation of that size. In-flight ants are
// discarded without folding their partial progress into the trail.
//
// The node count has no equivalent setter: changing it means constructing
// a new Simulation, not resizing an existing one.
func (s *Simulation) SetAntCount(k int) {
	if k < 1 {
		k = 1
	}
	s.cfg.AntCount = k
	s.spawnGeneration()
}

// --------------------------- Read-only queries ---------------------------

// Config returns a copy of the effective construction parameters.
func (s *Simulation) Config() Config { return s.cfg }

// NodeCount returns the graph order.
func (s *Simulation) NodeCount() int { return len(s.nodes) }

// AntCount returns the configured generation size.
func (s *Simulation) AntCount() int { return s.cfg.AntCount }

// Iteration returns the number of completed generations since
// construction or the last Reset.
func (s *Simulation) Iteration() int { return s.iteration }

// Node returns the position of node i, or ErrNodeOutOfRange.
func (s *Simulation) Node(i int) (Node, error) {
	if i < 0 || i >= len(s.nodes) {
		return Node{}, ErrNodeOutOfRange
	}

	return s.nodes[i], nil
}

// Distance returns the distance between nodes i and j.
// Errors: matrix.ErrOutOfRange for invalid indices.
func (s *Simulation) Distance(i, j int) (float64, error) {
	return s.dist.At(i, j)
}

// Pheromone returns the trail intensity on edge (i, j).
// Errors: matrix.ErrOutOfRange for invalid indices.
func (s *Simulation) Pheromone(i, j int) (float64, error) {
	return s.trail.At(i, j)
}

// MaxPheromone returns the maximum off-diagonal trail intensity, intended
// for display scaling. 0 only for the degenerate single-node graph.
func (s *Simulation) MaxPheromone() float64 {
	return s.trail.MaxOffDiagonal()
}

// Ants returns a snapshot of the current generation. Tours are copies;
// mutating them never affects the engine. The slice index is the ant's
// stable identity within its generation (presentation layers key display
// attributes like color on it).
func (s *Simulation) Ants() []AntView {
	views := make([]AntView, len(s.ants))

	var i int
	var a *ant
	for i, a = range s.ants {
		views[i] = AntView{
			Current:  a.current,
			Tour:     append([]int(nil), a.tour...),
			Length:   a.length,
			Finished: a.finished,
		}
	}

	return views
}

// BestTour returns a copy of the best tour found so far (a permutation of
// 0..n-1), or nil when no generation has completed a valid tour yet.
func (s *Simulation) BestTour() []int {
	if s.bestTour == nil {
		return nil
	}

	return append([]int(nil), s.bestTour...)
}

// BestLength returns the best tour length so far, or +Inf when no solution
// has been recorded yet (check math.IsInf or BestTour()==nil).
func (s *Simulation) BestLength() float64 { return s.bestLength }
