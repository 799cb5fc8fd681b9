// Package ichol: the left-looking factorization driver.
//
// The implementation follows the classic index-array formulation: the
// row-activation structure is a family of singly-linked lists stored in two
// plain int slices (head/next) rather than heap-allocated nodes, the working
// column is a dense value array paired with a sparse index list, and the
// "is row i active in iteration k" test is a generation-stamped flag
// (flag[i] == k) so no per-column clearing is ever needed; clearing an
// n-length array every column would make the whole algorithm quadratic.

package ichol

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvlchol/csc"
)

// Factorize computes the incomplete Cholesky factor L of the scaled, shifted
// matrix S = D·A·D + shift, where D = diag(scal) and the diagonal becomes
// d[j] = (1+alpha)·scal[j]²·A[j,j] + beta, so that L·Lᵗ ≈ S.
//
// a stores the lower triangle plus diagonal of a symmetric positive-definite
// matrix in CSC form (see csc.Matrix). A structurally missing diagonal entry
// is treated as A[j,j] = 0, leaving d[j] = beta; with beta = 0 such a column
// fails immediately with a BreakdownError rather than reading stale memory.
//
// Preconditions and validation (in order):
//  1. a must be non-nil (ErrNilMatrix).
//  2. a must pass csc validation — shape, column pointers, index range,
//     no duplicate row per column (csc sentinels, wrapped).
//  3. Scal, when set, must have length a.N and finite entries (ErrBadScaling).
//
// Behavior highlights:
//   - Every column of the result is strictly ascending by row with the
//     diagonal entry first; Lp[0] = 0.
//   - With Tau = 0 and FillLimit < 0 the result is the complete Cholesky
//     factor of S (up to rounding).
//   - Fill-limit ties at the selection boundary break toward the lower row
//     index (deterministic; see selectLargest).
//   - On SPD breakdown the returned error is a *BreakdownError carrying the
//     1-based offending index; no partial factor is returned.
//
// Determinism:
//   - Fixed phase order per column; linked-list walks follow LIFO insertion
//     order. Same input ⇒ bit-identical output.
//
// Complexity:
//   - Space O(n) scratch beyond the factor; the factor itself grows with
//     amortized doubling in unbounded-fill mode.
//
// AI-Hints:
//   - On ErrBreakdown, retry with WithShift(alpha, beta) increased or a
//     smaller Tau before giving up on the matrix.
//   - Keep FillLimit ≥ the average column degree of A; starving the factor
//     below that mostly yields a Jacobi-grade preconditioner.
func Factorize(a *csc.Matrix, opts ...Option) (*Factor, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts { // apply each functional option
		opt(&cfg)
	}

	// 2) Validate the matrix boundary.
	if a == nil {
		return nil, ErrNilMatrix
	}
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("ichol: invalid input matrix: %w", err)
	}

	// 3) Validate the scaling vector against the now-known dimension.
	if cfg.Scal != nil {
		if len(cfg.Scal) != a.N {
			return nil, fmt.Errorf("%w: len=%d want %d", ErrBadScaling, len(cfg.Scal), a.N)
		}
		for i, s := range cfg.Scal {
			if !isFinite(s) {
				return nil, fmt.Errorf("%w: non-finite entry at %d", ErrBadScaling, i)
			}
		}
	}

	// 4) Allocate scratch state and run the column loop.
	r := newRunner(a, cfg)
	if err := r.process(); err != nil {
		return nil, err
	}

	// 5) Package the finished factor. The backing slices are trimmed to the
	//    logical length by construction (append discipline), so the Matrix
	//    adopts them without copying.
	return &Factor{l: &csc.Matrix{N: r.n, Ap: r.lp, Ai: r.li, Ax: r.lx}}, nil
}

// runner holds the mutable state of a single factorization call. All arrays
// are exclusively owned by the call; nothing escapes except lp/li/lx, which
// become the factor's backing storage.
type runner struct {
	a    *csc.Matrix // input matrix, read-only
	cfg  Options     // frozen configuration
	n    int         // dimension shortcut
	scal []float64   // effective scaling vector (never nil after newRunner)

	d    []float64 // successively corrected diagonal values
	head []int     // head[r]: first column whose next entry sits in row r; -1 ends
	next []int     // next[j]: next column in j's current row list; -1 ends
	lpos []int     // lpos[j]: position in li/lx of column j's next unread entry
	flag []int     // flag[i] == k ⇔ row i holds a working entry this iteration
	wx   []float64 // dense working values, valid only where flag[i] == k
	wi   []int     // rows of the working entries gathered this iteration

	lp    []int     // factor column pointers (len n+1)
	li    []int     // factor row indices (append-grown)
	lx    []float64 // factor values (append-grown)
	extra int       // fill slack carried over from thinner columns
}

// newRunner allocates all scratch arrays and precomputes the scaled,
// shifted diagonal (phase 1, the only phase that runs once).
func newRunner(a *csc.Matrix, cfg Options) *runner {
	n := a.N
	r := &runner{
		a:    a,
		cfg:  cfg,
		n:    n,
		scal: cfg.Scal,
		d:    make([]float64, n),
		head: make([]int, n),
		next: make([]int, n),
		lpos: make([]int, n),
		flag: make([]int, n),
		wx:   make([]float64, n),
		wi:   make([]int, n),
		lp:   make([]int, n+1),
		// Initial capacity: the input pattern plus one diagonal per column is
		// the floor of any factor; unbounded fill grows from there by
		// amortized doubling (append).
		li: make([]int, 0, a.NNZ()+n),
		lx: make([]float64, 0, a.NNZ()+n),
	}
	if r.scal == nil {
		r.scal = make([]float64, n)
		for i := range r.scal {
			r.scal[i] = 1
		}
	}

	// Row-activation lists start empty; flags start on a generation no
	// column ever uses.
	for i := 0; i < n; i++ {
		r.head[i] = -1
		r.flag[i] = -1
	}

	// Phase 1 — Scaler/Shifter: d[j] = (1+alpha)·scal[j]²·A[j,j] + beta.
	// A missing diagonal entry contributes 0, leaving d[j] = beta.
	var j, p int
	for j = 0; j < n; j++ {
		r.d[j] = cfg.Beta
		for p = a.Ap[j]; p < a.Ap[j+1]; p++ {
			if a.Ai[p] == j {
				r.d[j] += (1 + cfg.Alpha) * r.scal[j] * r.scal[j] * a.Ax[p]
				break
			}
		}
	}

	return r
}

// process runs phases 2–5 for every column in strict sequence. Column k+1
// must not start before column k has updated d and the activation lists;
// there is no independence to exploit without restructuring the lists into
// an elimination-tree DAG, which this implementation deliberately avoids.
func (r *runner) process() error {
	var k, nz int
	var err error
	for k = 0; k < r.n; k++ {
		// Phase 2 — gather column k of A (strict lower part, scaled).
		nz = r.gather(k)

		// Phase 3 — apply pending rank-1 updates from finished columns.
		nz = r.rowWalk(k, nz)

		// The pivot must be positive before it feeds sqrt in the dropping
		// threshold; checking here attributes the breakdown to column k
		// exactly as the store phase would.
		if r.d[k] <= 0 {
			return &BreakdownError{Index: k + 1}
		}

		// Phase 4 — threshold drop, fill limit, order restoration.
		nz = r.drop(k, nz)

		// Phase 5 — normalize, append to L, correct the remaining diagonal.
		if err = r.store(k, nz); err != nil {
			return err
		}
	}

	return nil
}

// gather materializes the strict-lower entries of column k of A into the
// working vector, applying symmetric scaling. Entries with row ≤ k are
// ignored: the diagonal lives in d and upper-triangle storage is not this
// container's contract. Returns the number of gathered entries.
func (r *runner) gather(k int) int {
	nz := 0
	var p, i int
	for p = r.a.Ap[k]; p < r.a.Ap[k+1]; p++ {
		i = r.a.Ai[p]
		if i <= k {
			continue
		}
		r.wx[i] = r.scal[i] * r.a.Ax[p] * r.scal[k]
		r.flag[i] = k // stamp: row i owns a working entry this iteration
		r.wi[nz] = i
		nz++
	}

	return nz
}

// rowWalk drains the activation list of row k. Every listed column j has its
// next unread entry l[k,j] at lpos[j]; the entries strictly below it update
// the working vector (fill-in is created where the stamp is stale). Column j
// is then re-threaded onto the list of its next remaining row, or retired
// when exhausted. Returns the new working-entry count.
//
// List order is LIFO (last pushed, first walked); since the updates are
// additive the order affects only rounding, not the mathematical result.
func (r *runner) rowWalk(k, nz int) int {
	j := r.head[k]
	var jnext, p, q, i int
	var ljk float64
	for j != -1 {
		jnext = r.next[j] // save before re-threading clobbers next[j]

		// 1) The multiplier for this update is l[k,j] itself.
		p = r.lpos[j]
		ljk = r.lx[p]

		// 2) Scatter -l[k,j]·l[i,j] into the working vector for every entry
		//    below position p. Columns of L are sorted, so all of them have
		//    row > k.
		for q = p + 1; q < r.lp[j+1]; q++ {
			i = r.li[q]
			if r.flag[i] == k {
				r.wx[i] -= ljk * r.lx[q]
			} else {
				// Fill-in: position (i,k) was structurally absent so far.
				r.flag[i] = k
				r.wx[i] = -ljk * r.lx[q]
				r.wi[nz] = i
				nz++
			}
		}

		// 3) Advance the cursor; re-thread or retire column j.
		p++
		r.lpos[j] = p
		if p < r.lp[j+1] {
			i = r.li[p] // the next row in which column j becomes active
			r.next[j] = r.head[i]
			r.head[i] = j
		}

		j = jnext
	}

	return nz
}

// drop applies the two dropping rules in fixed order and restores ascending
// row order among the survivors. Returns the surviving count.
//
//  1. Threshold rule (Tau > 0): discard |v| ≤ Tau·sqrt(d[k]). Evaluated once
//     per column against the column's own corrected diagonal.
//  2. Fill limit (FillLimit ≥ 0): keep at most FillLimit + carried slack
//     entries, selecting the largest magnitudes by expected-linear partial
//     selection; a full sort here would be asymptotically wasteful.
//     Unused allowance rolls into the slack for later columns.
//  3. Survivors are re-sorted strictly ascending by row; the partial
//     selection does not preserve order and the ascending invariant is what
//     keeps later row-walks (and the CSC output contract) correct.
func (r *runner) drop(k, nz int) int {
	// 1) Threshold drop.
	if r.cfg.Tau > 0 {
		thresh := r.cfg.Tau * math.Sqrt(r.d[k])
		kept := 0
		var t, i int
		for t = 0; t < nz; t++ {
			i = r.wi[t]
			if math.Abs(r.wx[i]) > thresh {
				r.wi[kept] = i
				kept++
			}
		}
		nz = kept
	}

	// 2) Fill limit with carry-over slack.
	if r.cfg.FillLimit >= 0 {
		allowed := r.cfg.FillLimit + r.extra
		if nz > allowed {
			selectLargest(r.wi[:nz], r.wx, allowed)
			nz = allowed
		}
		r.extra = allowed - nz // ≥ 0: truncation leaves 0, thin columns donate
	}

	// 3) Order restoration: ascending rows. Values live in the dense array
	//    keyed by row, so sorting the index list alone suffices.
	sort.Ints(r.wi[:nz])

	return nz
}

// store finalizes column k: pivot sqrt, normalization, append into the CSC
// factor, rank-1 correction of the remaining diagonal, and registration of
// column k in the activation list of its first surviving row.
func (r *runner) store(k, nz int) error {
	// 1) Pivot. Positivity was established before dropping; sqrt is safe.
	s := math.Sqrt(r.d[k])

	// 2) Diagonal entry first; the row-walk of later columns relies on it.
	r.li = append(r.li, k)
	r.lx = append(r.lx, s)

	// 3) Off-diagonal survivors, normalized; each one corrects the diagonal
	//    of its own row. A correction driving d[i] ≤ 0 is terminal.
	var t, i int
	var v float64
	for t = 0; t < nz; t++ {
		i = r.wi[t]
		v = r.wx[i] / s
		r.li = append(r.li, i)
		r.lx = append(r.lx, v)
		r.d[i] -= v * v
		if r.d[i] <= 0 {
			return &BreakdownError{Index: i + 1}
		}
	}
	r.lp[k+1] = len(r.li)

	// 4) Register column k for the row-walk of its first surviving row, and
	//    release list k: it is fully drained and ownerless from here on.
	if nz > 0 {
		r.lpos[k] = r.lp[k] + 1 // first off-diagonal, just past the diagonal
		i = r.li[r.lpos[k]]
		r.next[k] = r.head[i]
		r.head[i] = k
	}
	r.head[k] = -1

	return nil
}
