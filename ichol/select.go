// Package ichol: partial selection for the fill-limit dropping rule.

package ichol

// selectLargest partitions idx so that its first k positions hold the k
// entries with the largest |wx[row]|, in unspecified internal order. The
// remaining positions hold the discarded rows. wx is indexed by row and is
// not modified.
//
// Ordering is total and deterministic: larger magnitude wins; equal
// magnitudes break toward the LOWER row index. The tie rule is stable API;
// conformance tests rely on it.
//
// Implementation is an iterative quickselect with median-of-three pivoting
// (no randomness): expected O(len(idx)) time, O(1) space. A full sort here
// would be O(m log m) for a step that only needs a k-partition, which is why
// the dropping engine never sorts before selecting.
//
// Preconditions: 0 ≤ k ≤ len(idx). k == 0 and k == len(idx) are no-ops.
func selectLargest(idx []int, wx []float64, k int) {
	if k <= 0 || k >= len(idx) {
		return
	}

	lo, hi := 0, len(idx)-1
	var p int
	for lo < hi {
		p = partition(idx, wx, lo, hi)
		switch {
		case p == k-1:
			return
		case p < k-1:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
}

// partition reorders idx[lo..hi] around a median-of-three pivot under the
// keeps-first ordering and returns the pivot's final position. Lomuto scheme
// with the pivot parked at hi during the sweep.
func partition(idx []int, wx []float64, lo, hi int) int {
	// Median of three: after the swaps lo holds the top-ranked element and
	// hi holds the median, which becomes the pivot for the sweep.
	mid := lo + (hi-lo)/2
	if keepsFirst(idx[mid], idx[lo], wx) {
		idx[lo], idx[mid] = idx[mid], idx[lo]
	}
	if keepsFirst(idx[hi], idx[lo], wx) {
		idx[lo], idx[hi] = idx[hi], idx[lo]
	}
	if keepsFirst(idx[mid], idx[hi], wx) {
		idx[mid], idx[hi] = idx[hi], idx[mid]
	}
	pivot := idx[hi]

	store := lo
	for t := lo; t < hi; t++ {
		if keepsFirst(idx[t], pivot, wx) {
			idx[t], idx[store] = idx[store], idx[t]
			store++
		}
	}
	idx[store], idx[hi] = idx[hi], idx[store]

	return store
}

// keepsFirst reports whether row a outranks row b for retention:
// strictly larger magnitude, or equal magnitude with the lower row index.
func keepsFirst(a, b int, wx []float64) bool {
	av, bv := abs(wx[a]), abs(wx[b])
	if av != bv {
		return av > bv
	}

	return a < b
}

// abs avoids pulling math.Abs into the innermost comparison.
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
