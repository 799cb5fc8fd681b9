// Package ichol: sentinel errors, breakdown reporting, and functional
// configuration for the incomplete Cholesky factorization.
//
// Conventions (enforced in tests):
//   - Sentinel errors are package-prefixed and matched via errors.Is.
//   - BreakdownError is the ONLY typed error; it wraps ErrBreakdown so both
//     errors.Is(err, ErrBreakdown) and errors.As(&BreakdownError{}) work.
//   - Option constructors panic ONLY on nonsensical parameter values
//     (programmer error); user/data errors surface as returned errors.

package ichol

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Factorize and Factor methods.
var (
	// ErrNilMatrix indicates that a nil *csc.Matrix was passed to Factorize.
	ErrNilMatrix = errors.New("ichol: matrix is nil")

	// ErrBadScaling indicates a scaling vector whose length differs from the
	// matrix dimension or which contains NaN/Inf entries.
	ErrBadScaling = errors.New("ichol: invalid scaling vector")

	// ErrBreakdown indicates SPD breakdown: a pivot or corrected diagonal
	// value was found ≤ 0. Returned wrapped in a BreakdownError carrying the
	// offending index; callers may retry with a larger shift.
	ErrBreakdown = errors.New("ichol: non-positive diagonal (SPD breakdown)")

	// ErrDimensionMismatch indicates a right-hand-side or destination vector
	// whose length does not match the factor dimension.
	ErrDimensionMismatch = errors.New("ichol: dimension mismatch")

	// ErrBadDropTolerance reports a negative or NaN drop tolerance passed to
	// WithDropTolerance (panic message; programmer error).
	ErrBadDropTolerance = errors.New("ichol: drop tolerance must be finite and non-negative")

	// ErrBadShift reports a NaN/Inf shift passed to WithShift (panic message).
	ErrBadShift = errors.New("ichol: shift parameters must be finite")
)

// BreakdownError reports the position at which the factorization lost
// positive definiteness.
//
// Index is 1-based: Index == k+1 means either the pivot of column k was ≤ 0
// or the corrected diagonal of row k was driven ≤ 0 by a column update. The
// 1-based convention matches the established reporting of incomplete
// factorization packages and is stable API.
//
// BreakdownError unwraps to ErrBreakdown.
type BreakdownError struct {
	Index int // 1-based row/column index of the offending diagonal
}

// Error implements the error interface.
func (e *BreakdownError) Error() string {
	return fmt.Sprintf("%v at index %d", ErrBreakdown, e.Index)
}

// Unwrap lets errors.Is(err, ErrBreakdown) match through the typed wrapper.
func (e *BreakdownError) Unwrap() error { return ErrBreakdown }

// DefaultTau disables threshold dropping (keep every updated entry).
const DefaultTau = 0.0

// DefaultFillLimit disables fill limiting (unbounded fill; the factor
// storage grows with amortized doubling).
const DefaultFillLimit = -1

// Options configures a single factorization run.
//
// Scal      – symmetric scaling vector, len n; nil means all-ones.
// Alpha     – relative diagonal shift: d[j] starts from (1+Alpha)·scal²·A[j,j].
// Beta      – absolute diagonal shift added after scaling.
// Tau       – drop tolerance; entries with |v| ≤ Tau·sqrt(d[k]) are dropped.
//
//	Must be ≥ 0. Zero (default) disables the rule.
//
// FillLimit – max off-diagonal entries kept per column, plus carry-over
//
//	slack from earlier thinner columns. Negative (default) disables.
type Options struct {
	Scal      []float64 // symmetric scaling vector (nil ⇒ identity scaling)
	Alpha     float64   // relative diagonal shift
	Beta      float64   // absolute diagonal shift
	Tau       float64   // threshold drop tolerance (0 ⇒ disabled)
	FillLimit int       // per-column fill cap (< 0 ⇒ unbounded)
}

// Option represents a functional option for configuring Factorize.
type Option func(*Options)

// WithScaling sets the symmetric scaling vector: effective entry (i,j) of
// the factored matrix is scal[i]·A[i,j]·scal[j]. Length and finiteness are
// validated inside Factorize (ErrBadScaling), not here, because the matrix
// dimension is not known yet.
func WithScaling(scal []float64) Option {
	return func(o *Options) {
		o.Scal = scal
	}
}

// WithShift sets the diagonal shift parameters: before factorization every
// diagonal value becomes (1+alpha)·scal[j]²·A[j,j] + beta. Shifting is the
// standard remedy when an unshifted run breaks down (ErrBreakdown).
// Panics on NaN/Inf arguments (programmer error).
func WithShift(alpha, beta float64) Option {
	return func(o *Options) {
		if !isFinite(alpha) || !isFinite(beta) {
			panic(ErrBadShift.Error())
		}
		o.Alpha = alpha
		o.Beta = beta
	}
}

// WithDropTolerance sets the threshold-dropping tolerance tau. For every
// column k, working entries with |v| ≤ tau·sqrt(d[k]) are discarded before
// the column is stored. tau = 0 keeps everything.
// Panics on negative or NaN tau (programmer error).
func WithDropTolerance(tau float64) Option {
	return func(o *Options) {
		if math.IsNaN(tau) || tau < 0 {
			panic(ErrBadDropTolerance.Error())
		}
		o.Tau = tau
	}
}

// WithFillLimit caps the number of off-diagonal entries kept per column at
// lfill plus any slack carried over from earlier columns that used fewer
// than lfill entries. A negative lfill (the default) disables the cap and
// lets the factor grow without bound.
func WithFillLimit(lfill int) Option {
	return func(o *Options) {
		o.FillLimit = lfill
	}
}

// DefaultOptions returns the Options used when no functional options are
// supplied: identity scaling, no shift, no dropping, unbounded fill, i.e.
// the complete Cholesky factorization of A.
func DefaultOptions() Options {
	return Options{
		Scal:      nil,
		Alpha:     0,
		Beta:      0,
		Tau:       DefaultTau,
		FillLimit: DefaultFillLimit,
	}
}

// isFinite reports whether x is neither NaN nor ±Inf.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
