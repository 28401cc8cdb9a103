// File: boundary/vector_set.go
// Column store over hash sets: membership toggling makes Add trivially
// correct for any overlap, at the price of an O(k) scan for Low and a
// sort on every get.

package boundary

import "sort"

// vectorSet keeps each column as a set of row indices.
type vectorSet struct {
	storeDims
	cols []map[int]struct{}
}

func (v *vectorSet) init(n int) {
	v.initDims(n)
	v.cols = make([]map[int]struct{}, n)
	for j := range v.cols {
		v.cols[j] = make(map[int]struct{})
	}
}

func (v *vectorSet) get(j int) []int {
	out := make([]int, 0, len(v.cols[j]))
	for e := range v.cols[j] {
		out = append(out, e)
	}
	sort.Ints(out)

	return out
}

func (v *vectorSet) set(j int, values []int) {
	col := make(map[int]struct{}, len(values))
	for _, e := range values {
		col[e] = struct{}{}
	}
	v.cols[j] = col
}

func (v *vectorSet) isEmpty(j int) bool { return len(v.cols[j]) == 0 }

func (v *vectorSet) low(j int) int {
	max := -1
	for e := range v.cols[j] {
		if e > max {
			max = e
		}
	}

	return max
}

func (v *vectorSet) add(target, source int) {
	t := v.cols[target]
	for e := range v.cols[source] {
		if _, ok := t[e]; ok {
			delete(t, e) // shared entry cancels
		} else {
			t[e] = struct{}{}
		}
	}
}

func (v *vectorSet) clear(j int) { v.cols[j] = make(map[int]struct{}) }

func (v *vectorSet) finalize(int) {} // sets never hold duplicates

func (v *vectorSet) numEntries() int {
	total := 0
	for _, col := range v.cols {
		total += len(col)
	}

	return total
}
