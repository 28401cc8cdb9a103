// File: boundary/vector_heap.go
// Lazy column store: one max-heap multiset per column. Add is a bulk
// append plus re-heapify; entries appearing an even number of times are
// cancelled only when a query forces it. The compaction contract of the
// store interface (finalize before trusting raw content) exists for this
// store and vectorList.

package boundary

import "container/heap"

// intMaxHeap is a max-heap of row indices implementing heap.Interface.
// A descending sorted slice satisfies the max-heap property, which
// compaction exploits to rebuild columns without a second heapify.
type intMaxHeap []int

func (h intMaxHeap) Len() int            { return len(h) }
func (h intMaxHeap) Less(i, j int) bool  { return h[i] > h[j] }
func (h intMaxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *intMaxHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *intMaxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}

// vectorHeap keeps each column as an intMaxHeap holding a multiset of
// entries: a row index is a member of the column iff it occurs an odd
// number of times. add simply concatenates the source (O(k) append +
// O(k) heapify), deferring all cancellation to low/finalize.
type vectorHeap struct {
	storeDims
	cols []intMaxHeap
}

func (v *vectorHeap) init(n int) {
	v.initDims(n)
	v.cols = make([]intMaxHeap, n)
}

func (v *vectorHeap) get(j int) []int {
	v.finalize(j)
	// Post-compaction the heap slice is sorted descending; return ascending.
	col := v.cols[j]
	out := make([]int, len(col))
	for i, e := range col {
		out[len(col)-1-i] = e
	}

	return out
}

func (v *vectorHeap) set(j int, values []int) {
	// values arrive sorted ascending; store descending, a valid max-heap.
	col := make(intMaxHeap, len(values))
	for i, e := range values {
		col[len(values)-1-i] = e
	}
	v.cols[j] = col
}

func (v *vectorHeap) isEmpty(j int) bool { return v.low(j) == -1 }

// low pops cancelling duplicate pairs off the top until a singleton
// survives, then pushes it back. Amortized O(log k) per cancelled pair.
func (v *vectorHeap) low(j int) int {
	h := &v.cols[j]
	for h.Len() > 0 {
		top := heap.Pop(h).(int)
		if h.Len() > 0 && (*h)[0] == top {
			heap.Pop(h) // even occurrence: the pair cancels

			continue
		}
		heap.Push(h, top)

		return top
	}

	return -1
}

func (v *vectorHeap) add(target, source int) {
	merged := append(v.cols[target], v.cols[source]...)
	heap.Init(&merged)
	v.cols[target] = merged
}

func (v *vectorHeap) clear(j int) { v.cols[j] = nil }

// finalize drains the heap with pair cancellation and stores the surviving
// entries descending — simultaneously compact and heap-ordered.
func (v *vectorHeap) finalize(j int) {
	h := &v.cols[j]
	compact := make(intMaxHeap, 0, h.Len())
	for h.Len() > 0 {
		top := heap.Pop(h).(int)
		if h.Len() > 0 && (*h)[0] == top {
			heap.Pop(h)

			continue
		}
		compact = append(compact, top)
	}
	v.cols[j] = compact
}

func (v *vectorHeap) numEntries() int {
	total := 0
	for j := range v.cols {
		v.finalize(j)
		total += len(v.cols[j])
	}

	return total
}
