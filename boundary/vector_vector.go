// File: boundary/vector_vector.go
// Reference column store: one sorted []int per column. Every operation is
// eager, so finalize is a no-op and raw content is always canonical.

package boundary

// vectorVector keeps each column as a strictly increasing slice of row
// indices. Add is a linear symmetric-difference merge; Low is the last
// element. The baseline the fancier stores are tested against.
type vectorVector struct {
	storeDims
	cols [][]int
}

func (v *vectorVector) init(n int) {
	v.initDims(n)
	v.cols = make([][]int, n)
}

func (v *vectorVector) get(j int) []int {
	return append([]int(nil), v.cols[j]...)
}

func (v *vectorVector) set(j int, values []int) {
	v.cols[j] = append(v.cols[j][:0], values...)
}

func (v *vectorVector) isEmpty(j int) bool { return len(v.cols[j]) == 0 }

func (v *vectorVector) low(j int) int {
	if len(v.cols[j]) == 0 {
		return -1
	}

	return v.cols[j][len(v.cols[j])-1]
}

func (v *vectorVector) add(target, source int) {
	a, b := v.cols[target], v.cols[source]
	merged := symDiffMerge(make([]int, 0, len(a)+len(b)), a, b)
	v.cols[target] = merged
}

func (v *vectorVector) clear(j int) { v.cols[j] = v.cols[j][:0] }

func (v *vectorVector) finalize(int) {} // always compact

func (v *vectorVector) numEntries() int {
	total := 0
	for _, col := range v.cols {
		total += len(col)
	}

	return total
}
