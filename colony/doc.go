// Package colony implements a step-driven Ant Colony Optimization (ACO)
// simulation for the Traveling Salesman Problem on a randomly generated
// complete graph.
//
// It includes the five pieces of the classic ant-system loop:
//
//   - Geometry: node coordinates drawn uniformly from [0.1, 0.9]² and a
//     symmetric Euclidean distance matrix (diagonal 0).
//
//   - Pheromone trail: symmetric matrix initialized to τ0, updated at each
//     generation boundary as τ′ = ρ·τ + Σ_k Q/L_k over every edge traversed
//     by ant k, computed from a snapshot of the pre-update trail.
//
//   - Ants: per-agent tour construction with a fixed-capacity visited set;
//     each ant moves exactly one hop per Step, so an external timer or UI
//     can drive the cadence hop by hop.
//
//   - Transition rule: roulette-wheel selection with desirability
//     w(u) = τ(r,u)^α · (1/d(r,u))^β over the unvisited candidates in
//     ascending node order; a zero desirability sum falls back to a uniform
//     draw (defined behavior, not an error).
//
//   - Controller: Step advances the whole generation, detects completion,
//     runs the trail update, tracks the best-ever tour (strict improvement),
//     and spawns the next generation with round-robin start nodes.
//
// Determinism: each Simulation owns one seedable RNG; the same seed yields
// the same node layout and the same ant choices. Seed 0 routes to a fixed
// internal default, matching the rest of the module's RNG policy.
//
// Concurrency: a Simulation is NOT safe for concurrent use. All mutating
// calls (Step, Reset, SetAntCount) and queries must be serialized by the
// caller, e.g. under a single-writer loop or an external mutex.
//
// Use this package when you need a reproducible, UI-steppable ACO engine
// on small-to-medium instances (the O(n²) matrices dominate memory).
package colony
