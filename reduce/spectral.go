// File: reduce/spectral.go
// The spectral-sequence engine: standard reduction refactored into
// bounded-distance sweeps along the diagonal. Columns are striped like
// chunk's blocks, but the passes run sequentially and dimension by
// dimension, so the twist clearing shortcut applies in every pass. Far
// -from-diagonal elimination is deferred to late passes, which suits
// complexes whose persistence intervals are short: most columns settle
// while their pivot is still near the diagonal.

package reduce

import "github.com/katalvlaran/homology/boundary"

func spectralSequenceReduce(m *boundary.Matrix, pt PivotTable, opts Options) {
	n := m.NumColumns()
	stripeSize := opts.BlockSize
	numStripes := (n + stripeSize - 1) / stripeSize
	if numStripes == 0 {
		return
	}

	unresolved := make([][]int, numStripes)
	for d := m.MaxDim(); d >= 1; d-- {
		// Collect this dimension's nonzero columns, striped.
		for s := 0; s < numStripes; s++ {
			unresolved[s] = unresolved[s][:0]
			begin, end := s*stripeSize, min((s+1)*stripeSize, n)
			for j := begin; j < end; j++ {
				if dim(m, j) == d && !isEmpty(m, j) {
					unresolved[s] = append(unresolved[s], j)
				}
			}
		}
		// Pass p lets stripe s eliminate within the rows of stripe s-p.
		for pass := 0; pass < numStripes; pass++ {
			for s := pass; s < numStripes; s++ {
				rowBegin := (s - pass) * stripeSize
				rowEnd := min(rowBegin+stripeSize, n)
				next := unresolved[s][:0]
				for _, j := range unresolved[s] {
					l := low(m, j)
					for l >= rowBegin && l < rowEnd && pt[l] >= 0 {
						add(m, j, pt[l])
						l = low(m, j)
					}
					switch {
					case l < 0:
						// Reduced to zero within the window.
					case l >= rowBegin:
						pt[l] = j
						finalize(m, j)
						clearColumn(m, l) // sequential, so always safe
					default:
						next = append(next, j)
					}
				}
				unresolved[s] = next
			}
		}
	}
}
