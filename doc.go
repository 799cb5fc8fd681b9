// Package lvlchol is a compact toolkit for preconditioning sparse symmetric
// positive-definite (SPD) linear systems: build an incomplete Cholesky
// factor once, apply it cheaply inside any iterative solver.
//
// 🚀 What is lvlchol?
//
//	A sequential, allocation-conscious library that brings together:
//		• csc/   — compressed-sparse-column matrix container with strict,
//		           fail-fast validation of the SPD-input contract
//		• ichol/ — left-looking incomplete Cholesky factorization with
//		           threshold dropping (tau) and fill limiting (Lfill),
//		           plus the L·Lᵗ·z = r preconditioner application
//
// ✨ Why choose lvlchol?
//
//   - Deterministic – fixed traversal orders, documented tie-breaking,
//     no global state, no hidden randomness
//   - Rock-solid guarantees – sentinel errors, explicit SPD-breakdown
//     reporting, in-code contracts on every public surface
//   - Allocation-aware – index-based linked lists, generation-stamped
//     scratch arrays, amortized-doubling factor storage
//
// The factorization is intentionally incomplete: small and surplus fill-in
// entries are discarded so that L stays sparse, trading exactness for a
// preconditioner that a Conjugate Gradient (or similar) solver applies on
// every iteration. With dropping disabled it degenerates to the complete
// Cholesky factor of the (scaled, shifted) input.
//
// Quick sketch:
//
//	a, _ := csc.New(n, ap, ai, ax)             // lower triangle + diagonal
//	f, err := ichol.Factorize(a,
//	    ichol.WithDropTolerance(1e-3),
//	    ichol.WithFillLimit(10),
//	)
//	if err != nil { ... }                      // SPD-breakdown carries index
//	f.Solve(z, r)                              // z ≈ A⁻¹·r inside CG
//
// Matrix loading, shift/scaling selection and the iterative solver itself
// are deliberately out of scope; lvlchol owns exactly the factorization
// core and its data contracts.
package lvlchol
