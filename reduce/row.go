// File: reduce/row.go
// The row engine: eliminate along rows instead of scanning columns.
// Every column is bucketed under its current lowest entry; rows are
// visited highest first, the bucket's minimum-index column becomes the
// row's pivot, and adding it to the other bucket members pushes their
// lows strictly downward into not-yet-visited rows. Advantageous when
// boundaries are dense in early rows: each row is settled exactly once.

package reduce

import "github.com/katalvlaran/homology/boundary"

// rowReduce terminates because every re-bucketed column moves to a
// strictly smaller row, and row 0 buckets cannot collide further.
func rowReduce(m *boundary.Matrix, pt PivotTable) {
	n := m.NumColumns()
	buckets := make([][]int, n)
	for j := 0; j < n; j++ {
		if l := low(m, j); l >= 0 {
			buckets[l] = append(buckets[l], j)
		}
	}
	for r := n - 1; r >= 0; r-- {
		cols := buckets[r]
		if len(cols) == 0 {
			continue
		}
		// The leftmost contender keeps the row; additions then only ever
		// flow from an earlier column into a later one, preserving the
		// canonical pairing.
		pivot := cols[0]
		for _, c := range cols[1:] {
			if c < pivot {
				pivot = c
			}
		}
		pt[r] = pivot
		finalize(m, pivot)
		for _, c := range cols {
			if c == pivot {
				continue
			}
			add(m, c, pivot)
			if l := low(m, c); l >= 0 {
				buckets[l] = append(buckets[l], c)
			}
		}
		buckets[r] = nil
	}
}
