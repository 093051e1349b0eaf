// Package colony: sentinel error set and read-only view types.
// This file defines ONLY package-level sentinel errors and the snapshot
// types exposed to presentation layers. All operations MUST return these
// sentinels and tests MUST check them via errors.Is. No operation panics on
// user input.

package colony

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is the umbrella construction-time sentinel: every
// parameter-specific sentinel below matches it via errors.Is, so callers can
// treat "any bad parameter" as one condition without losing the detail.
var ErrInvalidConfiguration = errors.New("colony: invalid configuration")

var (
	// ErrNodeCount is returned when the configured node count is below 1.
	ErrNodeCount = fmt.Errorf("%w: node count must be at least 1", ErrInvalidConfiguration)

	// ErrAntCount is returned when the configured ant count is below 1.
	ErrAntCount = fmt.Errorf("%w: ant count must be at least 1", ErrInvalidConfiguration)

	// ErrRho is returned when the evaporation retention ρ is outside (0,1)
	// exclusive. ρ is the fraction of the old trail that survives an update.
	ErrRho = fmt.Errorf("%w: rho must be in (0,1) exclusive", ErrInvalidConfiguration)

	// ErrExponent is returned when α or β is negative or non-finite.
	// Zero is legal: α=0 ignores the trail, β=0 ignores the distances.
	ErrExponent = fmt.Errorf("%w: alpha and beta must be finite and non-negative", ErrInvalidConfiguration)

	// ErrDeposit is returned when the deposit numerator Q is not a finite
	// positive value.
	ErrDeposit = fmt.Errorf("%w: q must be finite and positive", ErrInvalidConfiguration)

	// ErrTau0 is returned when the initial trail intensity τ0 is not a
	// finite positive value.
	ErrTau0 = fmt.Errorf("%w: tau0 must be finite and positive", ErrInvalidConfiguration)
)

// ErrNodeOutOfRange indicates that a node index passed to a query is outside
// [0, NodeCount).
var ErrNodeOutOfRange = errors.New("colony: node index out of range")

// AntView is a read-only snapshot of one ant, safe to hold across steps:
// Tour is a copy, never the ant's live buffer. Display identity (color,
// label) is owned by the presentation layer keyed on the ant's slice index.
type AntView struct {
	// Current is the node the ant is standing on.
	Current int

	// Tour is the ordered sequence of visited node indices so far.
	Tour []int

	// Length is the accumulated tour length.
	Length float64

	// Finished reports whether the ant has visited every node.
	Finished bool
}
