// File: boundary/vector_list.go
// Column store over ascending linked lists: Add splices the source into
// the target in place, so a long-lived column never reallocates during a
// reduction cascade.

package boundary

import "container/list"

// vectorList keeps each column as a container/list in strictly ascending
// order. Elements hold int row indices.
type vectorList struct {
	storeDims
	cols []*list.List
}

func (v *vectorList) init(n int) {
	v.initDims(n)
	v.cols = make([]*list.List, n)
	for j := range v.cols {
		v.cols[j] = list.New()
	}
}

func (v *vectorList) get(j int) []int {
	out := make([]int, 0, v.cols[j].Len())
	for e := v.cols[j].Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(int))
	}

	return out
}

func (v *vectorList) set(j int, values []int) {
	col := list.New()
	for _, e := range values {
		col.PushBack(e)
	}
	v.cols[j] = col
}

func (v *vectorList) isEmpty(j int) bool { return v.cols[j].Len() == 0 }

func (v *vectorList) low(j int) int {
	back := v.cols[j].Back()
	if back == nil {
		return -1
	}

	return back.Value.(int)
}

// add merges the source list into the target in a single ascending walk,
// removing entries present in both (GF(2) cancellation).
// Complexity: O(len(target)+len(source)).
func (v *vectorList) add(target, source int) {
	t := v.cols[target]
	cur := t.Front()
	for s := v.cols[source].Front(); s != nil; s = s.Next() {
		e := s.Value.(int)
		for cur != nil && cur.Value.(int) < e {
			cur = cur.Next()
		}
		switch {
		case cur == nil:
			t.PushBack(e)
		case cur.Value.(int) == e:
			next := cur.Next()
			t.Remove(cur) // shared entry cancels
			cur = next
		default: // cur > e: splice before cur
			t.InsertBefore(e, cur)
		}
	}
}

func (v *vectorList) clear(j int) { v.cols[j].Init() }

func (v *vectorList) finalize(int) {} // the merge cancels eagerly

func (v *vectorList) numEntries() int {
	total := 0
	for _, col := range v.cols {
		total += col.Len()
	}

	return total
}
