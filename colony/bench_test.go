// Package colony_test — benchmarks for the simulation hot paths.
//
// Policy:
//   - Deterministic instances (fixed seeds); pre-build outside the timer.
//   - BenchmarkStep measures the steady-state per-tick cost a UI timer pays.
//   - BenchmarkGeneration measures one full spawn→update cycle.
package colony_test

import (
	"testing"

	"github.com/katalvlaran/antcolony/colony"
)

// BenchmarkStep_Default measures one Step on the default 18-node / 25-ant
// instance, the cadence cost of a timer-driven caller.
func BenchmarkStep_Default(b *testing.B) {
	sim, err := colony.New(colony.WithSeed(1))
	if err != nil {
		b.Fatalf("New: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sim.Step()
	}
}

// BenchmarkGeneration_n30 measures a complete generation (n-1 hop passes
// plus the trail update and respawn) on a larger instance.
func BenchmarkGeneration_n30(b *testing.B) {
	sim, err := colony.New(colony.WithNodeCount(30), colony.WithAntCount(30), colony.WithSeed(1))
	if err != nil {
		b.Fatalf("New: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		start := sim.Iteration()
		for sim.Iteration() == start {
			sim.Step()
		}
	}
}
