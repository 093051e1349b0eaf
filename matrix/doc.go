// Package matrix offers square dense float64 matrices for simulation state.
//
// The matrix package provides:
//
//   - Dense: a row-major, bounds-checked square matrix with deep Clone.
//   - Symmetric write helpers (SetSym, AddSym) that keep the invariant
//     a[i][j] == a[j][i] with a single call per edge.
//   - Bulk helpers used by trail/distance models: FillOffDiagonal, Scale,
//     and MaxOffDiagonal (upper-triangle scan, handy for display scaling).
//
// Dense is best for small-to-medium complete graphs where O(V²) memory and
// O(1) element access are acceptable.
//
// See the examples in this package and colony for usage patterns.
package matrix
