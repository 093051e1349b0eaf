// Package matrix provides the square dense primitive shared by the distance
// model and the pheromone trail. Dense is a concrete, row-major matrix
// storing elements in a flat slice for performance and cache friendliness.
package matrix

// Dense is a row-major square matrix of float64 values.
// n is the order, and data holds n*n elements in row-major order.
type Dense struct {
	n    int       // matrix order (rows == cols)
	data []float64 // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure n > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	// Validate order
	if n <= 0 {
		return nil, ErrBadShape
	}
	// Allocate flat slice
	data := make([]float64, n*n)

	// Return initialized Dense
	return &Dense{n: n, data: data}, nil
}

// Order returns the matrix order n (rows == cols).
// Complexity: O(1).
func (m *Dense) Order() int {
	return m.n // return stored order
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < n and 0 ≤ col < n.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	// Validate column index
	if col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	// Compute flat offset
	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Get is the unchecked fast-path accessor for validated hot loops.
// Callers MUST guarantee 0 ≤ row,col < Order(); violating the contract is a
// programmer error and panics via slice bounds.
// Complexity: O(1).
func (m *Dense) Get(row, col int) float64 {
	return m.data[row*m.n+col]
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// SetSym assigns value v at (row, col) AND (col, row) in one call, so a
// symmetric matrix never observes a half-written edge.
// Complexity: O(1).
func (m *Dense) SetSym(row, col int, v float64) error {
	// Bounds cover both mirrored cells (square matrix).
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v
	m.data[col*m.n+row] = v

	return nil
}

// AddSym adds delta at (row, col) AND (col, row) in one call.
// Accumulation-order sensitive callers (trail deposits) rely on this being
// a plain in-place += on both mirrored cells.
// Complexity: O(1).
func (m *Dense) AddSym(row, col int, delta float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] += delta
	if row != col {
		m.data[col*m.n+row] += delta
	}

	return nil
}

// FillOffDiagonal sets every off-diagonal element to v and zeroes the
// diagonal. Used for constant trail initialization (τ0 policy).
// Complexity: O(n²).
func (m *Dense) FillOffDiagonal(v float64) {
	var i, j int
	for i = 0; i < m.n; i++ {
		for j = 0; j < m.n; j++ {
			if i == j {
				m.data[i*m.n+j] = 0
			} else {
				m.data[i*m.n+j] = v
			}
		}
	}
}

// Zero resets every element to 0 in place, keeping the backing storage.
// Complexity: O(n²).
func (m *Dense) Zero() {
	var k int
	for k = range m.data {
		m.data[k] = 0
	}
}

// Scale multiplies every element by f in place.
// Complexity: O(n²).
func (m *Dense) Scale(f float64) {
	var k int
	for k = range m.data {
		m.data[k] *= f
	}
}

// AddScaled adds f·other to m element-wise, in place: m[i][j] += f·other[i][j].
// The flat row-major traversal gives a fixed accumulation order, which keeps
// floating-point results reproducible across runs.
// Stage 1 (Validate): orders must match.
// Stage 2 (Execute): fused multiply-add over the backing slices.
// Complexity: O(n²).
func (m *Dense) AddScaled(other *Dense, f float64) error {
	if other == nil || other.n != m.n {
		return ErrDimensionMismatch
	}
	var k int
	for k = range m.data {
		m.data[k] += f * other.data[k]
	}

	return nil
}

// MaxOffDiagonal returns the maximum value over the strict upper triangle
// (i < j). For a symmetric matrix this is the global off-diagonal maximum;
// an all-zero matrix yields 0.
// Complexity: O(n²).
func (m *Dense) MaxOffDiagonal() float64 {
	var (
		max  float64 // running maximum, starts at 0
		i, j int     // triangle indices
	)
	for i = 0; i < m.n; i++ {
		for j = i + 1; j < m.n; j++ {
			if m.data[i*m.n+j] > max {
				max = m.data[i*m.n+j]
			}
		}
	}

	return max
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(n²) time and memory for copy.
func (m *Dense) Clone() *Dense {
	// Allocate new slice for data copy
	copyData := make([]float64, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{n: m.n, data: copyData}
}
