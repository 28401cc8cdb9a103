// File: boundary/sparse_pivot.go
// Ordered-set pivot cursor: a hash set for O(1) membership toggles, plus a
// lazy max-heap of candidate maxima. Every inserted index is pushed onto
// the heap and never removed eagerly; max pops stale candidates until the
// top is a live member, which is then necessarily the set maximum.

package boundary

import (
	"container/heap"
	"sort"
)

// sparseCursor holds a set of row indices with O(1) toggle and amortized
// O(log k) max over the live entries.
type sparseCursor struct {
	members    map[int]struct{}
	candidates intMaxHeap
}

func newSparseCursor() *sparseCursor { return &sparseCursor{} }

func (s *sparseCursor) reset(int) {
	s.members = make(map[int]struct{})
	s.candidates = s.candidates[:0]
}

func (s *sparseCursor) toggle(i int) {
	if _, ok := s.members[i]; ok {
		delete(s.members, i)

		return
	}
	s.members[i] = struct{}{}
	heap.Push(&s.candidates, i)
}

func (s *sparseCursor) max() int {
	// Every member has a candidate entry, so the heap top bounds the set
	// maximum from above; pop until the bound is attained by a member.
	for len(s.candidates) > 0 {
		top := s.candidates[0]
		if _, ok := s.members[top]; ok {
			return top
		}
		heap.Pop(&s.candidates)
	}

	return -1
}

func (s *sparseCursor) drain() []int {
	out := make([]int, 0, len(s.members))
	for e := range s.members {
		out = append(out, e)
	}
	sort.Ints(out)
	s.members = make(map[int]struct{})
	s.candidates = s.candidates[:0]

	return out
}
