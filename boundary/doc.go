// Package boundary implements sparse boundary matrices over GF(2) — the
// input object of persistent-homology computation — with seven
// interchangeable column-store representations, lossless conversion
// between them, the dualization (co-boundary) transform, and binary/text
// exchange formats.
//
// What:
//
//   - Matrix owns an ordered sequence of columns; each column is a cell
//     dimension plus a set of lower-indexed boundary entries.
//   - Column addition is symmetric difference (GF(2) XOR); Low(j) is the
//     largest entry of column j, the pivot candidate of reduction.
//   - NewMatrix selects one of seven Representation variants; Convert
//     copies any matrix into a fresh matrix of another variant verbatim.
//   - Dualize anti-transposes a matrix (i ↦ n-1-i, boundaries become
//     co-boundaries) for co-homological reduction.
//   - SaveBinary/LoadBinary and SaveText/LoadText round-trip the matrix
//     through the persisted exchange format exactly.
//
// Why:
//
//   - Reduction cost is dominated by column XOR and pivot queries; the
//     right store depends on complex size and boundary density.
//   - Pivot-cursor stores (bit-tree, sparse, full) make the column under
//     reduction cheap to mutate; vector stores are simple and parallel-add
//     friendly.
//
// Invariants:
//
//   - Every boundary entry of column j is strictly less than j (cells are
//     bounded only by earlier cells of the filtration).
//   - Entries are unique and strictly increasing wherever exposed.
//   - Malformed columns are rejected at load time, before any mutation;
//     a rejected call leaves the matrix in its pre-call state.
//   - A matrix consumed by reduction rejects further reads with
//     ErrMatrixConsumed until SetColumns re-populates it.
//
// Errors:
//
//   - ErrUnknownRepresentation: Representation outside the closed enum.
//   - ErrIndexOutOfRange: column index outside [0, NumColumns).
//   - ErrEntryOutOfRange: boundary entry negative or ≥ own column index.
//   - ErrUnsortedBoundary: entries not strictly increasing (or duplicated).
//   - ErrNegativeDimension: negative cell dimension.
//   - ErrDimensionCount: bulk dimension slice length mismatch.
//   - ErrMatrixConsumed: read or reduction of a consumed matrix.
//   - ErrBadFormat: malformed or truncated load stream.
//
// See the reduce package for the algorithms that consume these matrices.
package boundary
