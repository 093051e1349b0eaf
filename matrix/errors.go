// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All methods MUST return these sentinels and tests MUST check them
// via errors.Is. No method should panic on user-triggered error conditions;
// panics are reserved for programmer errors on documented unchecked fast paths.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrBadShape is returned when a requested matrix order is invalid (n <= 0).
	// Constructors must validate before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/SetSym/AddSym) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible orders between operands,
	// e.g. AddScaled with differently sized matrices.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
