// Package antcolony is a step-driven Ant Colony Optimization playground
// for the Traveling Salesman Problem on randomly generated complete graphs.
//
// 🐜 What is antcolony?
//
//	A small, deterministic simulation engine that brings together:
//		• Geometry: random node layouts on the unit square + Euclidean distances
//		• Pheromone trails: symmetric matrix with evaporation & deposit updates
//		• Ants: per-agent tour construction, one hop per simulation step
//		• Transition rule: roulette-wheel selection over τ^α · (1/d)^β
//		• Controller: generation lifecycle, best-tour tracking, reconfiguration
//
// ✨ Why choose antcolony?
//
//   - Reproducible – one seedable RNG per simulation, no hidden randomness
//   - Step-granular – every call to Step moves each ant exactly one hop,
//     so an external timer or UI can drive the cadence
//   - Pure Go core – the engine has no I/O; presentation stays outside
//
// Under the hood, everything is organized under three packages:
//
//	colony/     — the simulation engine: geometry, trails, ants, controller
//	matrix/     — square dense float64 matrices with symmetric write helpers
//	cmd/antsim/ — a headless demo binary driving the engine from the terminal
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╳ │
//	    3───2
//
//	four nodes, six edges; ants reinforce the short perimeter over time.
//
//	go get github.com/katalvlaran/antcolony/colony
package antcolony
