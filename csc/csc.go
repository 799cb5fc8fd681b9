// Package csc: construction, validation and dense/vector conversions for the
// CSC container. Kernels live in sibling packages; this file owns the input
// boundary (fail-fast validation) and the small test/debug surface.

package csc

import "fmt"

// New constructs a CSC matrix from raw arrays and validates it.
// The slices are adopted, not copied; callers must not mutate them afterwards.
//
// Implementation:
//   - Stage 1: wrap the arrays into a Matrix.
//   - Stage 2: run Validate and return its error verbatim on failure.
//
// Inputs:
//   - n:  matrix dimension (must be > 0).
//   - ap: column pointers, len n+1, ap[0]=0, non-decreasing.
//   - ai: row indices per stored entry.
//   - ax: values per stored entry, parallel to ai.
//
// Returns:
//   - *Matrix: the validated container.
//   - error:   one of the package sentinels on any precondition violation.
//
// Complexity:
//   - Time O(n + nnz), Space O(n) scratch (duplicate detection).
func New(n int, ap, ai []int, ax []float64) (*Matrix, error) {
	m := &Matrix{N: n, Ap: ap, Ai: ai, Ax: ax}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// NNZ reports the number of stored entries. Zero for a nil matrix.
func (m *Matrix) NNZ() int {
	if m == nil || len(m.Ap) == 0 {
		return 0
	}

	return m.Ap[len(m.Ap)-1]
}

// Validate checks every structural precondition of the CSC layout and
// returns the first violation found, in documented priority order.
//
// Checks (in order):
//  1. non-nil receiver                     (ErrNilMatrix)
//  2. N > 0 and len(Ai) == len(Ax)         (ErrBadShape)
//  3. len(Ap) == N+1, Ap[0] == 0,
//     Ap non-decreasing, Ap[N] == len(Ai)  (ErrBadColPtr)
//  4. every Ai[p] in [0, N)                (ErrIndexOutOfRange)
//  5. no duplicate row index per column    (ErrDuplicateEntry)
//
// Duplicate detection uses a generation-stamped mark array (mark[i] == j
// means row i was already seen in column j), so the whole scan is a single
// O(N + nnz) pass with no per-column clearing.
//
// Determinism:
//   - Fixed column-major scan order; the first offending entry wins.
//
// Complexity:
//   - Time O(N + nnz), Space O(N).
func (m *Matrix) Validate() error {
	// 1) Receiver must be non-nil.
	if m == nil {
		return ErrNilMatrix
	}

	// 2) Shape: positive dimension, parallel arrays agree.
	if m.N <= 0 {
		return fmt.Errorf("%w: n=%d", ErrBadShape, m.N)
	}
	if len(m.Ai) != len(m.Ax) {
		return fmt.Errorf("%w: len(Ai)=%d len(Ax)=%d", ErrBadShape, len(m.Ai), len(m.Ax))
	}

	// 3) Column pointers: length, origin, monotonicity, terminal value.
	if len(m.Ap) != m.N+1 {
		return fmt.Errorf("%w: len(Ap)=%d want %d", ErrBadColPtr, len(m.Ap), m.N+1)
	}
	if m.Ap[0] != 0 {
		return fmt.Errorf("%w: Ap[0]=%d", ErrBadColPtr, m.Ap[0])
	}
	var j int // column iterator
	for j = 0; j < m.N; j++ {
		if m.Ap[j+1] < m.Ap[j] {
			return fmt.Errorf("%w: Ap[%d]=%d > Ap[%d]=%d", ErrBadColPtr, j, m.Ap[j], j+1, m.Ap[j+1])
		}
	}
	if m.Ap[m.N] != len(m.Ai) {
		return fmt.Errorf("%w: Ap[%d]=%d want %d", ErrBadColPtr, m.N, m.Ap[m.N], len(m.Ai))
	}

	// 4+5) Row-index bounds and per-column duplicates in one stamped pass.
	mark := make([]int, m.N) // mark[i] == j+1 ⇔ row i already seen in column j
	var p, i int
	for j = 0; j < m.N; j++ {
		for p = m.Ap[j]; p < m.Ap[j+1]; p++ {
			i = m.Ai[p]
			if i < 0 || i >= m.N {
				return fmt.Errorf("%w: Ai[%d]=%d (column %d)", ErrIndexOutOfRange, p, i, j)
			}
			if mark[i] == j+1 {
				return fmt.Errorf("%w: row %d in column %d", ErrDuplicateEntry, i, j)
			}
			mark[i] = j + 1
		}
	}

	return nil
}

// MulVecSym computes dst = A·x, interpreting the stored entries as the lower
// triangle (plus diagonal) of a symmetric matrix: every stored off-diagonal
// (i, j) contributes to both dst[i] and dst[j].
//
// dst and x must both have length N; dst is fully overwritten. x and dst
// must not alias.
//
// Complexity:
//   - Time O(N + nnz), Space O(1); zero allocations.
func (m *Matrix) MulVecSym(dst, x []float64) error {
	if m == nil {
		return ErrNilMatrix
	}
	if len(dst) != m.N || len(x) != m.N {
		return fmt.Errorf("%w: len(dst)=%d len(x)=%d n=%d", ErrDimensionMismatch, len(dst), len(x), m.N)
	}

	// Zero the destination, then scatter column contributions.
	var j, p, i int
	var v float64
	for i = 0; i < m.N; i++ {
		dst[i] = 0
	}
	for j = 0; j < m.N; j++ {
		for p = m.Ap[j]; p < m.Ap[j+1]; p++ {
			i, v = m.Ai[p], m.Ax[p]
			dst[i] += v * x[j]
			if i != j { // mirror the strict-lower entry into the upper triangle
				dst[j] += v * x[i]
			}
		}
	}

	return nil
}

// Dense expands the stored entries verbatim into a dense [][]float64.
// Only stored positions are populated; symmetry is NOT applied. Intended for
// tests and debugging of triangular factors.
func (m *Matrix) Dense() [][]float64 {
	out := makeDense(m.N)
	var j, p int
	for j = 0; j < m.N; j++ {
		for p = m.Ap[j]; p < m.Ap[j+1]; p++ {
			out[m.Ai[p]][j] = m.Ax[p]
		}
	}

	return out
}

// DenseSym expands lower-triangle storage into a full dense symmetric matrix
// (each strict-lower entry mirrored above the diagonal). Test surface.
func (m *Matrix) DenseSym() [][]float64 {
	out := makeDense(m.N)
	var j, p, i int
	for j = 0; j < m.N; j++ {
		for p = m.Ap[j]; p < m.Ap[j+1]; p++ {
			i = m.Ai[p]
			out[i][j] = m.Ax[p]
			out[j][i] = m.Ax[p]
		}
	}

	return out
}

// makeDense allocates an n×n zero matrix as a slice of rows.
func makeDense(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}

	return out
}
