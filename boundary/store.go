// File: boundary/store.go
// The capability interface every column store implements, the closed
// constructor dispatch, and the shared helpers (dimension table, sorted
// symmetric-difference merge).

package boundary

// columnStore is the capability contract shared by all seven
// representations. The Matrix is written once against this interface and
// is representation-agnostic; reduction reaches it through the Matrix.
//
// Index arguments are trusted: the Matrix performs all bounds and
// well-formedness checks before delegating.
type columnStore interface {
	// init sizes the store to n empty columns of dimension 0,
	// discarding any previous content.
	init(n int)

	// get returns the column's entry set, sorted ascending, as a fresh
	// slice the caller may retain.
	get(j int) []int

	// set replaces the column's entry set; values are sorted ascending
	// and are copied, never aliased.
	set(j int, values []int)

	// dim and setDim access the per-column cell dimension.
	dim(j int) int
	setDim(j, d int)

	// isEmpty reports whether the column has no entries (after any
	// pending duplicate cancellation).
	isEmpty(j int) bool

	// low returns the largest entry of the column, or -1 when empty.
	low(j int) int

	// add performs target := target XOR source (symmetric difference).
	// Correct for any overlap, including none and full.
	add(target, source int)

	// clear empties the column.
	clear(j int)

	// finalize compacts the column into its canonical form. Stores with
	// lazy duplicate cancellation must be finalized before their raw
	// content is trusted; for eager stores it is a no-op.
	finalize(j int)

	// numCols returns the number of columns.
	numCols() int

	// numEntries returns the total entry count across all columns,
	// post-compaction.
	numEntries() int
}

// newStore constructs the column store for a Representation.
// The enumeration is closed: unknown values yield ErrUnknownRepresentation
// at the Matrix constructor, never a dynamic lookup failure here.
func newStore(rep Representation) columnStore {
	switch rep {
	case BitTreePivotColumn:
		return newPivotStore(newBitTreeCursor())
	case SparsePivotColumn:
		return newPivotStore(newSparseCursor())
	case FullPivotColumn:
		return newPivotStore(newFullCursor())
	case VectorVector:
		return &vectorVector{}
	case VectorHeap:
		return &vectorHeap{}
	case VectorSet:
		return &vectorSet{}
	case VectorList:
		return &vectorList{}
	default:
		return nil
	}
}

// storeDims carries the per-column dimension table shared by every store.
type storeDims struct {
	dims []int
}

func (s *storeDims) initDims(n int)  { s.dims = make([]int, n) }
func (s *storeDims) dim(j int) int   { return s.dims[j] }
func (s *storeDims) setDim(j, d int) { s.dims[j] = d }
func (s *storeDims) numCols() int    { return len(s.dims) }

// symDiffMerge merges two sorted entry slices into their symmetric
// difference, appending into dst. dst must not alias a or b.
// Entries present in both inputs cancel, per GF(2) addition.
// Complexity: O(len(a)+len(b)).
func symDiffMerge(dst, a, b []int) []int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			dst = append(dst, a[i])
			i++
		case a[i] > b[j]:
			dst = append(dst, b[j])
			j++
		default: // equal entries cancel
			i++
			j++
		}
	}
	dst = append(dst, a[i:]...)
	dst = append(dst, b[j:]...)

	return dst
}
