// Package csc provides the compressed-sparse-column (CSC) matrix container
// shared by the lvlchol factorization kernels.
//
// A Matrix stores one triangle of a symmetric matrix (by convention the
// lower triangle plus the diagonal) as three parallel arrays:
//
//	Ap — column pointers, len N+1, Ap[0] == 0, non-decreasing
//	Ai — row index of each stored entry, column by column
//	Ax — value of each stored entry, parallel to Ai
//
// Column j occupies positions Ap[j] .. Ap[j+1]-1 of Ai/Ax. Entries within a
// column are not required to be sorted on input (the factorization gathers
// them through a stamp array), but every column of a factorization result is
// strictly ascending by row with the diagonal entry first.
//
// Design notes:
//
//   - Fields are exported so sibling packages can index the raw arrays in
//     hot loops without accessor overhead; treat a constructed Matrix as
//     read-only. Mutating a Matrix that another component holds is a
//     programmer error, not a supported operation.
//   - Validation is strict and fail-fast: New and Validate check shape,
//     column-pointer consistency, row-index bounds, and duplicate row
//     indices per column, each with its own sentinel error.
//
// Complexity:
//
//   - Validate: O(N + nnz) time, O(N) scratch (duplicate stamp array).
//   - MulVecSym: O(nnz) time, zero allocations into a caller buffer.
//   - Dense / DenseSym: O(N² + nnz) time and O(N²) space; test surface,
//     not meant for large matrices.
//
// Errors (sentinel, priority order enforced in tests):
//
//	ErrNilMatrix → ErrBadShape → ErrBadColPtr → ErrIndexOutOfRange →
//	ErrDuplicateEntry
package csc
