// Package colony: configuration for the simulation engine. This file defines:
//   - documented defaults (constants, single source of truth),
//   - Config (public fields, consumed by NewFromConfig),
//   - Option setters for functional construction via New,
//   - validateConfig, the one boundary where bad parameters are rejected.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: invalid parameters are rejected with sentinels
//     at New/NewFromConfig; the core never re-checks them per step.
package colony

import "math"

// DEFAULTS - single source of truth for zero-value behavior.
// The values mirror the classic ant-system demo parameterization.
const (
	// DefaultNodeCount is the number of graph nodes generated on construction.
	DefaultNodeCount = 18

	// DefaultAntCount is the number of ants per generation.
	DefaultAntCount = 25

	// DefaultAlpha weighs the pheromone term τ^α in the transition rule.
	DefaultAlpha = 1.0

	// DefaultBeta weighs the heuristic term (1/d)^β in the transition rule.
	// A high β strongly favors near nodes.
	DefaultBeta = 5.0

	// DefaultRho is the retention fraction of the old trail per update:
	// τ′ = ρ·τ + Σ deposits. Note: retention, not decay rate.
	DefaultRho = 0.5

	// DefaultQ is the deposit numerator; each finished ant deposits Q/L on
	// every edge of its tour of length L.
	DefaultQ = 100.0

	// DefaultTau0 is the initial trail intensity on every edge.
	DefaultTau0 = 0.1

	// DefaultSeed routes to the fixed internal RNG seed (see rng.go).
	DefaultSeed = int64(0)
)

// Config carries the construction parameters of a Simulation.
//
// NodeCount – number of nodes of the complete graph (must be ≥ 1).
// AntCount  – ants per generation (must be ≥ 1; SetAntCount clamps instead).
// Alpha     – pheromone exponent α (finite, ≥ 0).
// Beta      – distance exponent β (finite, ≥ 0).
// Rho       – evaporation retention fraction ρ, in (0,1) exclusive.
// Q         – deposit numerator (finite, > 0).
// Tau0      – initial pheromone intensity τ0 (finite, > 0).
// Seed      – RNG seed; 0 selects the fixed internal default.
type Config struct {
	NodeCount int     // graph order
	AntCount  int     // generation size
	Alpha     float64 // pheromone exponent
	Beta      float64 // distance exponent
	Rho       float64 // evaporation retention fraction
	Q         float64 // deposit numerator
	Tau0      float64 // initial pheromone
	Seed      int64   // RNG seed (0 => internal default)
}

// Option represents a functional option for configuring a Simulation.
type Option func(*Config)

// WithNodeCount sets the number of graph nodes.
func WithNodeCount(n int) Option {
	return func(c *Config) { c.NodeCount = n }
}

// WithAntCount sets the number of ants per generation.
func WithAntCount(k int) Option {
	return func(c *Config) { c.AntCount = k }
}

// WithAlpha sets the pheromone exponent α.
func WithAlpha(alpha float64) Option {
	return func(c *Config) { c.Alpha = alpha }
}

// WithBeta sets the distance exponent β.
func WithBeta(beta float64) Option {
	return func(c *Config) { c.Beta = beta }
}

// WithRho sets the evaporation retention fraction ρ.
func WithRho(rho float64) Option {
	return func(c *Config) { c.Rho = rho }
}

// WithQ sets the deposit numerator Q.
func WithQ(q float64) Option {
	return func(c *Config) { c.Q = q }
}

// WithTau0 sets the initial pheromone intensity τ0.
func WithTau0(tau0 float64) Option {
	return func(c *Config) { c.Tau0 = tau0 }
}

// WithSeed sets the RNG seed (0 selects the fixed internal default).
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// DefaultConfig returns a Config initialized with the documented defaults.
// Use it as a starting point for field overrides or functional options.
func DefaultConfig() Config {
	return Config{
		NodeCount: DefaultNodeCount,
		AntCount:  DefaultAntCount,
		Alpha:     DefaultAlpha,
		Beta:      DefaultBeta,
		Rho:       DefaultRho,
		Q:         DefaultQ,
		Tau0:      DefaultTau0,
		Seed:      DefaultSeed,
	}
}

// validateConfig verifies a Config at the construction boundary.
// The core itself never re-validates: a Simulation constructed through
// New/NewFromConfig carries an invariant-satisfying Config for its lifetime.
//
// Complexity: O(1).
func validateConfig(cfg Config) error {
	// Stage 1: counts.
	if cfg.NodeCount < 1 {
		return ErrNodeCount
	}
	if cfg.AntCount < 1 {
		return ErrAntCount
	}

	// Stage 2: algorithm constants.
	if !(cfg.Rho > 0 && cfg.Rho < 1) { // also rejects NaN
		return ErrRho
	}
	if !isFiniteNonNegative(cfg.Alpha) || !isFiniteNonNegative(cfg.Beta) {
		return ErrExponent
	}
	if !isFinitePositive(cfg.Q) {
		return ErrDeposit
	}
	if !isFinitePositive(cfg.Tau0) {
		return ErrTau0
	}

	return nil
}

// isFiniteNonNegative reports v ∈ [0, +∞) excluding NaN/±Inf.
func isFiniteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// isFinitePositive reports v ∈ (0, +∞) excluding NaN/±Inf.
func isFinitePositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
