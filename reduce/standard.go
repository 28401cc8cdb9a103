// File: reduce/standard.go
// The reference engine: a single left-to-right sweep. Everything else in
// this package must reproduce its pair set.

package reduce

import "github.com/katalvlaran/homology/boundary"

// standardReduce processes columns in index order. While column j's
// lowest entry is already owned, the owner is added into j (cancelling
// that entry); when j stabilizes nonempty, its low is registered as j's
// pivot. Columns that empty out are births or essential cells and own
// no row.
//
// Steps per column j:
//  1. l := low(j).
//  2. While l ≥ 0 and pt[l] owned: add(j, pt[l]); recompute l.
//  3. If l ≥ 0: pt[l] = j, compact j.
//
// Complexity: O(n³) column operations worst case; O(total entries)
// memory beyond the matrix.
func standardReduce(m *boundary.Matrix, pt PivotTable) {
	n := m.NumColumns()
	for j := 0; j < n; j++ {
		l := low(m, j)
		for l >= 0 && pt[l] >= 0 {
			add(m, j, pt[l])
			l = low(m, j)
		}
		if l >= 0 {
			pt[l] = j
			finalize(m, j)
		}
	}
}
