// File: reduce/twist.go
// The twist (clearing) engine. A row that becomes a pivot belongs to a
// birth cell, and a birth cell's own column is guaranteed to reduce to
// zero — so it is cleared outright the moment its fate is known, skipping
// the elimination work the standard sweep would spend proving it empty.

package reduce

import "github.com/katalvlaran/homology/boundary"

// twistReduce processes dimensions descending from MaxDim to 1, columns
// ascending within each dimension. Pivots of dimension-d columns are
// (d-1)-cells, so clearing a freshly paired birth column always happens
// before its dimension pass begins.
//
// Equivalent to standardReduce in its final pivot table; only the
// elimination order differs.
func twistReduce(m *boundary.Matrix, pt PivotTable) {
	n := m.NumColumns()
	for d := m.MaxDim(); d >= 1; d-- {
		for j := 0; j < n; j++ {
			if dim(m, j) != d {
				continue
			}
			l := low(m, j)
			for l >= 0 && pt[l] >= 0 {
				add(m, j, pt[l])
				l = low(m, j)
			}
			if l >= 0 {
				pt[l] = j
				finalize(m, j)
				clearColumn(m, l) // the birth column will reduce to zero anyway
			}
		}
	}
}
