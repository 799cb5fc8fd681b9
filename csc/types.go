// Package csc: matrix type and sentinel error set.
// This file defines the Matrix container and ONLY package-level sentinel
// errors. All operations MUST return these sentinels (possibly wrapped with
// fmt.Errorf("ctx: %w", ...) at the facade) and tests MUST check them via
// errors.Is. No operation panics on user-triggered conditions.

package csc

import "errors"

// Sentinel errors returned by the csc package.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape -> column pointers -> row-index range -> duplicates.
var (
	// ErrNilMatrix indicates that a nil *Matrix was used as receiver or argument.
	ErrNilMatrix = errors.New("csc: nil matrix")

	// ErrBadShape is returned when the dimension is non-positive or the
	// parallel arrays disagree in length (len(Ai) != len(Ax)).
	ErrBadShape = errors.New("csc: invalid shape")

	// ErrBadColPtr indicates inconsistent column pointers: wrong length,
	// Ap[0] != 0, a decreasing step, or Ap[N] != len(Ai).
	ErrBadColPtr = errors.New("csc: invalid column pointers")

	// ErrIndexOutOfRange indicates a stored row index outside [0, N).
	ErrIndexOutOfRange = errors.New("csc: row index out of range")

	// ErrDuplicateEntry indicates two stored entries sharing (row, column).
	// Duplicates make gather/update semantics ambiguous and are rejected
	// at the boundary rather than silently summed.
	ErrDuplicateEntry = errors.New("csc: duplicate row index within column")

	// ErrDimensionMismatch indicates a vector argument whose length does not
	// match the matrix dimension (MulVecSym and friends).
	ErrDimensionMismatch = errors.New("csc: dimension mismatch")
)

// Matrix is a sparse matrix in compressed-sparse-column form.
//
// N  – dimension (the container is always square, N×N).
// Ap – column pointers, len N+1, Ap[0]=0, non-decreasing, Ap[N]=len(Ai).
// Ai – row index per stored entry, grouped by column.
// Ax – value per stored entry, parallel to Ai.
//
// Fields are exported for zero-overhead access from kernel packages and are
// read-only by convention once the Matrix has been constructed.
type Matrix struct {
	N  int       // matrix dimension (square)
	Ap []int     // column pointers (len N+1)
	Ai []int     // row indices (len nnz)
	Ax []float64 // values (len nnz)
}
