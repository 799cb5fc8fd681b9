// Package ichol implements a left-looking incomplete Cholesky factorization
// for sparse symmetric positive-definite (SPD) matrices, producing the
// preconditioner L with A ≈ L·Lᵗ used by iterative solvers such as
// Conjugate Gradient.
//
// The factorization proceeds strictly column by column, k = 0..n-1, in five
// phases:
//
//  1. Scale/shift the diagonal once: d[j] = (1+alpha)·scal[j]²·A[j,j] + beta.
//  2. Gather the strict-lower entries of column k of A into a dense-value /
//     sparse-index working vector (scaled symmetrically by scal).
//  3. Walk the row-activation linked list of row k: every previously
//     finished column j with l[k,j] ≠ 0 contributes the rank-1 update
//     -l[k,j]·l[i,j] to each working entry i > k, creating fill-in where A
//     had none; column j is then re-threaded to the list of its next
//     remaining row.
//  4. Drop: discard entries with |v| ≤ tau·sqrt(d[k]) (threshold rule), then
//     keep only the `Lfill + slack` largest-magnitude survivors via an
//     expected-linear partial selection (never a full sort); re-sort the
//     survivors ascending by row.
//  5. Store: divide by sqrt(d[k]), append the column to L (diagonal first),
//     and subtract the squared entries from the remaining diagonal d.
//
// A non-positive diagonal value at any point is an SPD breakdown: the
// factorization stops and reports the offending 1-based index through
// BreakdownError. Callers typically retry with a larger shift (alpha/beta)
// or a smaller drop tolerance.
//
// Complexity:
//
//   - Time:  O(nnz(L)) per row-walk step amortized; each stored entry of L
//     is read at most once per later column that its row activates.
//   - Space: O(n) scratch (diagonal, linked lists, cursors, stamp flags,
//     working vector) beyond the factor itself.
//   - With tau = 0 and no fill limit the method degenerates to the complete
//     Cholesky factorization of the scaled, shifted matrix.
//
// Options:
//
//   - WithScaling(scal):      symmetric scaling, entry (i,j) ⇒ scal[i]·a·scal[j].
//   - WithShift(alpha, beta): diagonal shift applied once before phase 1.
//   - WithDropTolerance(tau): threshold dropping; 0 disables.
//   - WithFillLimit(lfill):   per-column off-diagonal cap with carry-over
//     slack; negative disables (unbounded fill).
//
// Errors (sentinel):
//
//   - ErrNilMatrix    if the input matrix is nil.
//   - ErrBadScaling   if the scaling vector has wrong length or non-finite entries.
//   - ErrBreakdown    if a pivot or corrected diagonal is ≤ 0 (wrapped by
//     BreakdownError, which carries the 1-based index).
//   - csc sentinels   (wrapped) if the input fails CSC validation.
//
// Determinism:
//
//   - Fixed traversal orders throughout; partial-selection ties break toward
//     the lower row index. Two runs on the same input produce bit-identical
//     factors. Floating-point accumulation order is fixed but, as with any
//     summation, not associative; cross-implementation comparisons should
//     use tolerances, not bit equality.
package ichol
