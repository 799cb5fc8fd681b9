// Package ichol: the finished factor and its preconditioner application.

package ichol

import (
	"fmt"

	"github.com/katalvlaran/lvlchol/csc"
)

// Factor is the immutable result of a successful factorization: a sparse
// lower-triangular matrix L with A ≈ L·Lᵗ (exact when dropping is disabled).
// Every column is strictly ascending by row with the diagonal entry first,
// and every diagonal entry is strictly positive.
type Factor struct {
	l *csc.Matrix // the factor, diag-first columns, read-only
}

// N reports the factor dimension.
func (f *Factor) N() int { return f.l.N }

// NNZ reports the number of stored entries of L (diagonal included).
func (f *Factor) NNZ() int { return f.l.NNZ() }

// L exposes the underlying CSC matrix. The returned matrix (and its backing
// slices) must be treated as read-only; mutating it invalidates the factor.
func (f *Factor) L() *csc.Matrix { return f.l }

// Solve applies the preconditioner: it solves L·Lᵗ·z = r and stores z in
// dst. This is the per-iteration operation an iterative solver performs with
// an incomplete factor; it never forms an inverse.
//
// Implementation:
//   - Stage 1: forward substitution L·y = r, column-oriented: divide by the
//     diagonal (first entry of the column), then scatter the column's
//     off-diagonals into the remaining right-hand side.
//   - Stage 2: backward substitution Lᵗ·z = y, traversing the same columns
//     in reverse; a column of L read as a row of Lᵗ is a gather.
//
// dst and r may alias (the forward pass copies r into dst first); both must
// have length N.
//
// Determinism:
//   - Fixed column order both ways; zero allocations.
//
// Complexity:
//   - Time O(N + nnz(L)), Space O(1).
func (f *Factor) Solve(dst, r []float64) error {
	n := f.l.N
	if len(dst) != n || len(r) != n {
		return fmt.Errorf("%w: len(dst)=%d len(r)=%d n=%d", ErrDimensionMismatch, len(dst), len(r), n)
	}

	lp, li, lx := f.l.Ap, f.l.Ai, f.l.Ax
	copy(dst, r)

	// 1) Forward: L·y = r. The diagonal is the first entry of each column.
	var j, p int
	var yj float64
	for j = 0; j < n; j++ {
		yj = dst[j] / lx[lp[j]]
		dst[j] = yj
		for p = lp[j] + 1; p < lp[j+1]; p++ {
			dst[li[p]] -= lx[p] * yj
		}
	}

	// 2) Backward: Lᵗ·z = y. Column j of L is row j of Lᵗ.
	for j = n - 1; j >= 0; j-- {
		yj = dst[j]
		for p = lp[j] + 1; p < lp[j+1]; p++ {
			yj -= lx[p] * dst[li[p]]
		}
		dst[j] = yj / lx[lp[j]]
	}

	return nil
}
