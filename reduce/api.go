// File: reduce/api.go
// Public facades: validate, dispatch to an engine through the closed
// Algorithm enumeration, and read pairs out. Also the small trusted
// accessors the engines share — after Validate has accepted the matrix,
// index errors are impossible, so the helpers drop the error returns the
// public boundary API carries.

package reduce

import "github.com/katalvlaran/homology/boundary"

// Reduce runs the selected algorithm on m and returns the pivot table.
//
// The matrix is validated first: malformed boundaries, a consumed
// matrix, a nil matrix or an unknown algorithm are all rejected before
// any mutation. Once begun, reduction runs to completion — there is no
// partial-success state — and m is marked consumed: subsequent reads of
// m fail until SetColumns re-populates it.
//
// Complexity: worst case O(n³) column operations; memory O(n) beyond
// the matrix.
func Reduce(m *boundary.Matrix, opts Options) (PivotTable, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if !opts.Algorithm.Valid() {
		return nil, ErrUnknownAlgorithm
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	n := m.NumColumns()
	opts = opts.normalized(n)
	pt := newPivotTable(n)
	switch opts.Algorithm {
	case Standard:
		standardReduce(m, pt)
	case Twist:
		twistReduce(m, pt)
	case Chunk:
		chunkReduce(m, pt, opts)
	case Row:
		rowReduce(m, pt)
	case SpectralSequence:
		spectralSequenceReduce(m, pt, opts)
	}
	m.Consume()

	return pt, nil
}

// PersistencePairs reduces m with the selected algorithm and returns its
// persistence pairs, sorted by birth index. m is consumed.
//
// Essential classes (features that never die) are deliberately absent
// from the result; recover them via Reduce + PivotTable.Essential when
// needed.
func PersistencePairs(m *boundary.Matrix, opts Options) (Pairs, error) {
	pt, err := Reduce(m, opts)
	if err != nil {
		return nil, err
	}

	return pt.Pairs(), nil
}

// PersistencePairsDualized computes the same pair set through the
// co-boundary formulation: dualize m (a fresh matrix; m itself is left
// intact and unconsumed), reduce the dual, and back-map each dual pair
// (a, b) to (n-1-b, n-1-a). The result is set-equal to PersistencePairs
// on m, sorted by birth index.
func PersistencePairsDualized(m *boundary.Matrix, opts Options) (Pairs, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	dual, err := boundary.Dualize(m)
	if err != nil {
		return nil, err
	}
	dualPairs, err := PersistencePairs(dual, opts)
	if err != nil {
		return nil, err
	}
	n := m.NumColumns()
	pairs := make(Pairs, len(dualPairs))
	for i, p := range dualPairs {
		pairs[i] = Pair{Birth: n - 1 - p.Death, Death: n - 1 - p.Birth}
	}
	pairs.Sort()

	return pairs, nil
}

// Trusted accessors for the engines; indices are in range by Validate.

func low(m *boundary.Matrix, j int) int {
	l, _ := m.Low(j)

	return l
}

func dim(m *boundary.Matrix, j int) int {
	d, _ := m.Dim(j)

	return d
}

func isEmpty(m *boundary.Matrix, j int) bool {
	empty, _ := m.IsEmpty(j)

	return empty
}

func add(m *boundary.Matrix, target, source int) { _ = m.Add(target, source) }

func finalize(m *boundary.Matrix, j int) { _ = m.Finalize(j) }

func clearColumn(m *boundary.Matrix, j int) { _ = m.Clear(j) }
