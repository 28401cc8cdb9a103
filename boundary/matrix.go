// File: boundary/matrix.go
// The Boundary Matrix: exclusive owner of one column store, the unit of
// mutation for reduction, and the gatekeeper of every well-formedness
// invariant. Stores trust their inputs; all checking happens here.

package boundary

// Matrix is an ordered sequence of GF(2) boundary columns plus a
// per-column cell dimension, backed by one of seven Representation
// variants. A Matrix exclusively owns its store: no column is ever
// aliased across matrices, and Convert/Dualize always build fresh ones.
//
// Lifecycle: construct → populate (SetColumns, or SetDim/SetColumn per
// index) → reduce exactly once (see the reduce package) → read pairs.
// Reduction is destructive; afterwards the matrix reports
// ErrMatrixConsumed on reads until SetColumns re-populates it.
type Matrix struct {
	rep      Representation
	store    columnStore
	consumed bool
}

// NewMatrix returns an empty Matrix using the given representation.
// Returns ErrUnknownRepresentation for values outside the enumeration.
func NewMatrix(rep Representation) (*Matrix, error) {
	if !rep.Valid() {
		return nil, ErrUnknownRepresentation
	}
	store := newStore(rep)
	store.init(0)

	return &Matrix{rep: rep, store: store}, nil
}

// NewMatrixFrom returns a fresh Matrix of the given representation holding
// a copy of source's content (construct-as-copy). Equivalent to Convert.
func NewMatrixFrom(rep Representation, source *Matrix) (*Matrix, error) {
	return Convert(source, rep)
}

// Representation reports which column store backs this matrix.
func (m *Matrix) Representation() Representation { return m.rep }

// NumColumns returns the number of columns (cells of the complex).
func (m *Matrix) NumColumns() int { return m.store.numCols() }

// NumEntries returns the total number of boundary entries across all
// columns, after compaction of any lazily cancelled duplicates.
func (m *Matrix) NumEntries() int { return m.store.numEntries() }

// Consumed reports whether the matrix has been consumed by reduction.
func (m *Matrix) Consumed() bool { return m.consumed }

// Consume marks the matrix as consumed. The reduce package calls this when
// a reduction completes; afterwards reads fail with ErrMatrixConsumed and
// only SetColumns restores the matrix to a usable state.
func (m *Matrix) Consume() { m.consumed = true }

// checkRead validates a column index for a read/mutate operation.
func (m *Matrix) checkRead(j int) error {
	if m.consumed {
		return ErrMatrixConsumed
	}
	if j < 0 || j >= m.store.numCols() {
		return ErrIndexOutOfRange
	}

	return nil
}

// validateEntries checks one column's boundary for strict ascent and range.
func validateEntries(j int, values []int) error {
	prev := -1
	for _, e := range values {
		if e < 0 || e >= j {
			return ErrEntryOutOfRange
		}
		if e <= prev {
			return ErrUnsortedBoundary
		}
		prev = e
	}

	return nil
}

// SetColumns bulk-loads the matrix: dimensions and boundaries for every
// column at once, replacing all previous content and clearing the
// consumed flag. The whole input is validated before any mutation, so a
// rejected call leaves the matrix untouched.
// Complexity: O(total entries).
func (m *Matrix) SetColumns(cols []Column) error {
	for j, col := range cols {
		if col.Dim < 0 {
			return ErrNegativeDimension
		}
		if err := validateEntries(j, col.Boundary); err != nil {
			return err
		}
	}
	m.store.init(len(cols))
	for j, col := range cols {
		m.store.setDim(j, col.Dim)
		if len(col.Boundary) > 0 {
			m.store.set(j, col.Boundary)
		}
	}
	m.consumed = false

	return nil
}

// GetColumn returns column j's boundary entries, sorted ascending, as a
// fresh slice.
func (m *Matrix) GetColumn(j int) ([]int, error) {
	if err := m.checkRead(j); err != nil {
		return nil, err
	}

	return m.store.get(j), nil
}

// SetColumn replaces column j's boundary. Entries must be strictly
// increasing and each strictly less than j.
func (m *Matrix) SetColumn(j int, values []int) error {
	if err := m.checkRead(j); err != nil {
		return err
	}
	if err := validateEntries(j, values); err != nil {
		return err
	}
	m.store.set(j, values)

	return nil
}

// Dim returns the cell dimension of column j.
func (m *Matrix) Dim(j int) (int, error) {
	if err := m.checkRead(j); err != nil {
		return 0, err
	}

	return m.store.dim(j), nil
}

// SetDim assigns the cell dimension of column j.
func (m *Matrix) SetDim(j, d int) error {
	if err := m.checkRead(j); err != nil {
		return err
	}
	if d < 0 {
		return ErrNegativeDimension
	}
	m.store.setDim(j, d)

	return nil
}

// Dims returns all cell dimensions in column order.
func (m *Matrix) Dims() []int {
	n := m.store.numCols()
	out := make([]int, n)
	for j := 0; j < n; j++ {
		out[j] = m.store.dim(j)
	}

	return out
}

// SetDims bulk-assigns dimensions; the slice length must equal the
// current column count (ErrDimensionCount otherwise).
func (m *Matrix) SetDims(dims []int) error {
	if len(dims) != m.store.numCols() {
		return ErrDimensionCount
	}
	for _, d := range dims {
		if d < 0 {
			return ErrNegativeDimension
		}
	}
	for j, d := range dims {
		m.store.setDim(j, d)
	}

	return nil
}

// MaxDim returns the largest cell dimension present, or -1 on an empty
// matrix.
func (m *Matrix) MaxDim() int {
	max := -1
	for j := 0; j < m.store.numCols(); j++ {
		if d := m.store.dim(j); d > max {
			max = d
		}
	}

	return max
}

// IsEmpty reports whether column j has no boundary entries.
func (m *Matrix) IsEmpty(j int) (bool, error) {
	if err := m.checkRead(j); err != nil {
		return false, err
	}

	return m.store.isEmpty(j), nil
}

// Low returns the largest boundary entry of column j (the pivot
// candidate), or -1 when the column is empty.
func (m *Matrix) Low(j int) (int, error) {
	if err := m.checkRead(j); err != nil {
		return -1, err
	}

	return m.store.low(j), nil
}

// Add performs column target := target XOR source (GF(2) symmetric
// difference). Adding a column to itself empties it.
func (m *Matrix) Add(target, source int) error {
	if err := m.checkRead(target); err != nil {
		return err
	}
	if err := m.checkRead(source); err != nil {
		return err
	}
	if target == source {
		m.store.clear(target)

		return nil
	}
	m.store.add(target, source)

	return nil
}

// Clear empties column j.
func (m *Matrix) Clear(j int) error {
	if err := m.checkRead(j); err != nil {
		return err
	}
	m.store.clear(j)

	return nil
}

// Finalize compacts column j into canonical form. Required before
// trusting raw content of lazily cancelling stores; harmless elsewhere.
func (m *Matrix) Finalize(j int) error {
	if err := m.checkRead(j); err != nil {
		return err
	}
	m.store.finalize(j)

	return nil
}

// Validate re-checks the whole matrix against the boundary invariants:
// entries strictly increasing within each column, every entry in
// [0, column index), dimensions non-negative. The reduce package calls
// this before mutating anything, so inconsistency is rejected up front
// rather than discovered mid-algorithm.
// Complexity: O(total entries).
func (m *Matrix) Validate() error {
	if m.consumed {
		return ErrMatrixConsumed
	}
	for j := 0; j < m.store.numCols(); j++ {
		if m.store.dim(j) < 0 {
			return ErrNegativeDimension
		}
		if err := validateEntries(j, m.store.get(j)); err != nil {
			return err
		}
	}

	return nil
}

// Equal reports whether a and b hold identical content: same column
// count, same dimensions and same boundary sets at every index. The
// internal representation does not participate in equality.
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.consumed || b.consumed {
		return false
	}
	n := a.store.numCols()
	if n != b.store.numCols() {
		return false
	}
	for j := 0; j < n; j++ {
		if a.store.dim(j) != b.store.dim(j) {
			return false
		}
		ca, cb := a.store.get(j), b.store.get(j)
		if len(ca) != len(cb) {
			return false
		}
		for i := range ca {
			if ca[i] != cb[i] {
				return false
			}
		}
	}

	return true
}
