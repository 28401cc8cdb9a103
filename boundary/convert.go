// File: boundary/convert.go
// Representation conversion and the dualization (anti-transpose)
// transform. Both always build a fresh matrix; the source is never
// mutated and no column storage is shared.

package boundary

// Convert returns a fresh Matrix of the target representation holding a
// verbatim copy of m's content: same column order, same dimensions, same
// boundary sets. Converting there and back is a semantic identity:
// Equal(Convert(Convert(m, B), A), m) for m of representation A.
// Complexity: O(total entries).
func Convert(m *Matrix, rep Representation) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.consumed {
		return nil, ErrMatrixConsumed
	}
	out, err := NewMatrix(rep)
	if err != nil {
		return nil, err
	}
	n := m.store.numCols()
	out.store.init(n)
	for j := 0; j < n; j++ {
		out.store.setDim(j, m.store.dim(j))
		if col := m.store.get(j); len(col) > 0 {
			out.store.set(j, col)
		}
	}

	return out, nil
}

// Dualize returns a fresh Matrix of the same representation holding the
// anti-transpose of m: cell i becomes cell n-1-i, and dual column n-1-r
// collects {n-1-j : r ∈ boundary(j)} — the co-boundary of r in reversed
// filtration order. Dual dimensions are maxDim − dim.
//
// Reducing the dual and back-mapping each pair (a, b) to (n-1-b, n-1-a)
// recovers exactly the primal persistence pairs; the reduce package's
// PersistencePairsDualized wraps that round trip.
// Complexity: O(total entries), plus the fresh matrix allocation.
func Dualize(m *Matrix) (*Matrix, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if m.consumed {
		return nil, ErrMatrixConsumed
	}
	n := m.store.numCols()
	maxDim := m.MaxDim()
	dual := make([][]int, n)
	// Descending j keeps each dual column's entries (n-1-j) ascending.
	for j := n - 1; j >= 0; j-- {
		for _, r := range m.store.get(j) {
			dual[n-1-r] = append(dual[n-1-r], n-1-j)
		}
	}
	out, err := NewMatrix(m.rep)
	if err != nil {
		return nil, err
	}
	out.store.init(n)
	for j := 0; j < n; j++ {
		out.store.setDim(j, maxDim-m.store.dim(n-1-j))
		if len(dual[j]) > 0 {
			out.store.set(j, dual[j])
		}
	}

	return out, nil
}
