// Package reduce defines core types, options, and sentinel errors
// for the reduce subpackage of github.com/katalvlaran/homology.
package reduce

import (
	"errors"
	"sort"
)

// Sentinel errors for reduction operations.
var (
	// ErrUnknownAlgorithm indicates an Algorithm value outside the closed enumeration.
	ErrUnknownAlgorithm = errors.New("reduce: unknown reduction algorithm")
	// ErrNilMatrix indicates a nil *boundary.Matrix argument.
	ErrNilMatrix = errors.New("reduce: nil matrix")
)

// Algorithm selects the reduction strategy. All algorithms produce the
// identical persistence pairing; they differ in elimination order and in
// the work they avoid.
type Algorithm int

const (
	// Twist reduces dimension by dimension, descending, clearing each
	// paired birth column early. The default, matching the usual best
	// practice for cell complexes.
	Twist Algorithm = iota
	// Standard is the reference single left-to-right sweep.
	Standard
	// Chunk reduces contiguous column blocks with parallel workers,
	// synchronized by a barrier between passes.
	Chunk
	// Row propagates cancellations along rows, highest row first.
	Row
	// SpectralSequence sweeps the diagonal in bounded-distance passes,
	// dimension by dimension.
	SpectralSequence
)

// algorithmNames maps each enum value to its canonical identifier.
var algorithmNames = map[Algorithm]string{
	Twist:            "twist",
	Standard:         "standard",
	Chunk:            "chunk",
	Row:              "row",
	SpectralSequence: "spectral-sequence",
}

// String returns the canonical identifier of a, or "unknown" for values
// outside the enumeration.
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}

	return "unknown"
}

// Valid reports whether a is a member of the closed enumeration.
func (a Algorithm) Valid() bool {
	_, ok := algorithmNames[a]

	return ok
}

// Pair is one persistence pair: the cell whose appearance created a
// homological feature and the cell whose appearance destroyed it.
// Birth < Death always holds.
type Pair struct {
	Birth int
	Death int
}

// Pairs is an ordered collection of persistence pairs.
type Pairs []Pair

// Sort orders pairs by birth index ascending (deaths are then unique and
// need no tiebreak: the pairing is a matching).
func (p Pairs) Sort() {
	sort.Slice(p, func(i, j int) bool { return p[i].Birth < p[j].Birth })
}

// EqualSet reports whether p and q contain the same pairs regardless of
// order. Used to cross-check algorithms and representations.
func (p Pairs) EqualSet(q Pairs) bool {
	if len(p) != len(q) {
		return false
	}
	seen := make(map[Pair]int, len(p))
	for _, pair := range p {
		seen[pair]++
	}
	for _, pair := range q {
		if seen[pair] == 0 {
			return false
		}
		seen[pair]--
	}

	return true
}

// PivotTable maps each row index to the column owning that row as its
// lowest entry after reduction, or -1 when unowned. At most one column
// owns a row — establishing that injectivity is reduction's termination
// condition.
type PivotTable []int

// newPivotTable returns an all-unowned table for n rows.
func newPivotTable(n int) PivotTable {
	pt := make(PivotTable, n)
	for i := range pt {
		pt[i] = -1
	}

	return pt
}

// Pairs reads the persistence pairs off the table, sorted by birth.
func (pt PivotTable) Pairs() Pairs {
	pairs := make(Pairs, 0, len(pt)/2)
	for row, col := range pt {
		if col >= 0 {
			pairs = append(pairs, Pair{Birth: row, Death: col})
		}
	}
	pairs.Sort()

	return pairs
}

// Essential returns the indices of essential classes — cells that are
// neither a birth nor a death in the pairing, i.e. features persisting
// to the end of the filtration. Sorted ascending.
func (pt PivotTable) Essential() []int {
	paired := make([]bool, len(pt))
	for row, col := range pt {
		if col >= 0 {
			paired[row] = true
			paired[col] = true
		}
	}
	var essential []int
	for i, p := range paired {
		if !p {
			essential = append(essential, i)
		}
	}

	return essential
}
