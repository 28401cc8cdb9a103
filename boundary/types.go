// Package boundary defines core types, options, and sentinel errors
// for the boundary subpackage of github.com/katalvlaran/homology.
package boundary

import (
	"errors"
)

// Sentinel errors for boundary-matrix operations.
var (
	// ErrUnknownRepresentation indicates a Representation value outside the closed enumeration.
	ErrUnknownRepresentation = errors.New("boundary: unknown column representation")
	// ErrIndexOutOfRange indicates a column index outside [0, NumColumns).
	ErrIndexOutOfRange = errors.New("boundary: column index out of range")
	// ErrEntryOutOfRange indicates a boundary entry that is negative or ≥ its own column index.
	ErrEntryOutOfRange = errors.New("boundary: boundary entry must lie in [0, column index)")
	// ErrUnsortedBoundary indicates boundary entries that are not strictly increasing.
	ErrUnsortedBoundary = errors.New("boundary: boundary entries must be strictly increasing")
	// ErrNegativeDimension indicates a negative cell dimension.
	ErrNegativeDimension = errors.New("boundary: cell dimension must be non-negative")
	// ErrDimensionCount indicates a bulk dimension assignment whose length differs from the column count.
	ErrDimensionCount = errors.New("boundary: dimension count does not match column count")
	// ErrMatrixConsumed indicates a read or reduction of a matrix already consumed by reduction.
	ErrMatrixConsumed = errors.New("boundary: matrix consumed by reduction; re-populate with SetColumns")
	// ErrNilMatrix indicates a nil *Matrix argument.
	ErrNilMatrix = errors.New("boundary: nil matrix")
	// ErrBadFormat indicates a malformed or truncated stream during LoadBinary/LoadText.
	ErrBadFormat = errors.New("boundary: malformed boundary-matrix stream")
)

// Representation selects the internal column store of a Matrix.
//
// All representations are behaviorally interchangeable: two matrices with
// the same logical content report identical columns, lows, emptiness and
// entry counts regardless of Representation. They differ only in the cost
// profile of Add (column XOR) and Low (pivot query):
//
//	BitTreePivotColumn  — amortized O(1) toggle, O(log₆₄ n) low; default, balanced
//	SparsePivotColumn   — O(k) toggle via hash set, lazy-heap low
//	FullPivotColumn     — dense bit cursor; best for small/medium complexes
//	VectorVector        — sorted slice per column; O(k) merge add
//	VectorHeap          — max-heap per column; O(k log k) add, lazy duplicate cancellation
//	VectorSet           — hash set per column; O(k) add, O(k) low
//	VectorList          — sorted linked list per column; O(k) in-place merge add
type Representation int

const (
	// BitTreePivotColumn stores compacted sorted columns plus a 64-ary
	// bit-tree cursor for the column currently being reduced.
	BitTreePivotColumn Representation = iota
	// SparsePivotColumn stores compacted sorted columns plus a hash-set
	// cursor with a lazy max-heap for the pivot query.
	SparsePivotColumn
	// FullPivotColumn stores compacted sorted columns plus a dense
	// uint64-bitset cursor over the full row universe.
	FullPivotColumn
	// VectorVector keeps every column as a sorted []int.
	VectorVector
	// VectorHeap keeps every column as a max-heap multiset and defers
	// duplicate cancellation until a query forces compaction.
	VectorHeap
	// VectorSet keeps every column as a hash set of row indices.
	VectorSet
	// VectorList keeps every column as an ascending linked list.
	VectorList
)

// representationNames maps each enum value to its canonical identifier.
// The names double as the vocabulary of String() and error messages.
var representationNames = map[Representation]string{
	BitTreePivotColumn: "bit-tree-pivot-column",
	SparsePivotColumn:  "sparse-pivot-column",
	FullPivotColumn:    "full-pivot-column",
	VectorVector:       "vector-vector",
	VectorHeap:         "vector-heap",
	VectorSet:          "vector-set",
	VectorList:         "vector-list",
}

// String returns the canonical identifier of r, or "unknown" for values
// outside the enumeration.
func (r Representation) String() string {
	if name, ok := representationNames[r]; ok {
		return name
	}

	return "unknown"
}

// Valid reports whether r is a member of the closed enumeration.
func (r Representation) Valid() bool {
	_, ok := representationNames[r]

	return ok
}

// Column is the bulk-load input value for one matrix column: the dimension
// of the cell it represents and the sorted, strictly increasing indices of
// its boundary cells. Boundary is interpreted as a GF(2) entry set.
type Column struct {
	// Dim is the cell dimension (0 = vertex, 1 = edge, 2 = triangle, …).
	Dim int
	// Boundary lists the boundary cell indices, strictly increasing,
	// each strictly less than the column's own index.
	Boundary []int
}
