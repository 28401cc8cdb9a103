// Package reduce implements the boundary-matrix column-reduction engines
// of persistent homology and the extraction of (birth, death) persistence
// pairs from their result.
//
// What:
//
//   - Five reduction algorithms over one boundary.Matrix: Standard,
//     Twist, Chunk, Row and SpectralSequence. Each mutates the matrix in
//     place until every nonzero column has a globally unique Low, and
//     each produces a PivotTable mapping rows to their owning columns.
//   - PersistencePairs runs a reduction and reads the pairs off the
//     pivot table; PersistencePairsDualized does the same through the
//     co-boundary (anti-transposed) matrix and back-maps the result.
//   - Essential recovers the indices of classes that never die.
//
// Why five algorithms when the pairing is unique?
//
//	The final pivot assignment is a property of the matrix's column-span
//	structure, not of the elimination path, so every engine provably
//	yields the same pair set — but their costs differ wildly. Standard
//	is the left-to-right reference. Twist clears columns known to end up
//	zero. Chunk reduces contiguous blocks with parallel workers under a
//	per-pass barrier. Row propagates cancellations along rows. Spectral
//	sequence sweeps the diagonal in bounded-distance passes.
//
// Contract:
//
//   - Reduction is destructive and runs to completion once begun; there
//     is no cancellation or partial-success state at this layer.
//   - Inconsistent matrices are rejected by validation before any
//     mutation (never discovered mid-algorithm), and a completed
//     reduction marks the matrix consumed.
//   - A single matrix is reduced by exactly one call at a time
//     (single-writer); only Chunk parallelizes internally, across
//     disjoint column blocks with a barrier between passes.
//
// Errors:
//
//   - ErrUnknownAlgorithm: Algorithm outside the closed enumeration.
//   - ErrNilMatrix: nil *boundary.Matrix argument.
//   - boundary.ErrMatrixConsumed and the boundary validation sentinels
//     propagate unchanged from the pre-reduction check.
//
// Complexity:
//
//   - Worst case O(n³) column operations for all engines; near-linear on
//     the sparse filtrations arising from real complexes.
package reduce
