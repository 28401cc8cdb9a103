// File: reduce/reduce_test.go
package reduce_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/reduce"
)

var allAlgorithms = []reduce.Algorithm{
	reduce.Standard,
	reduce.Twist,
	reduce.Chunk,
	reduce.Row,
	reduce.SpectralSequence,
}

var allReps = []boundary.Representation{
	boundary.BitTreePivotColumn,
	boundary.SparsePivotColumn,
	boundary.FullPivotColumn,
	boundary.VectorVector,
	boundary.VectorHeap,
	boundary.VectorSet,
	boundary.VectorList,
}

// Fixtures: hand-checked filtrations with known persistence pairings.

// triangleColumns: three vertices, three edges, one face.
func triangleColumns() []boundary.Column {
	return []boundary.Column{
		{Dim: 0},
		{Dim: 0},
		{Dim: 1, Boundary: []int{0, 1}},
		{Dim: 0},
		{Dim: 1, Boundary: []int{1, 3}},
		{Dim: 1, Boundary: []int{0, 3}},
		{Dim: 2, Boundary: []int{2, 4, 5}},
	}
}

// tetrahedronColumns: the full boundary of a tetrahedron. With the solid
// interior (dim-3 cell 14) included, only the connected component
// survives; without it the enclosed void persists too.
func tetrahedronColumns(solid bool) []boundary.Column {
	cols := []boundary.Column{
		{Dim: 0}, {Dim: 0}, {Dim: 0}, {Dim: 0},
		{Dim: 1, Boundary: []int{0, 1}},
		{Dim: 1, Boundary: []int{0, 2}},
		{Dim: 1, Boundary: []int{0, 3}},
		{Dim: 1, Boundary: []int{1, 2}},
		{Dim: 1, Boundary: []int{1, 3}},
		{Dim: 1, Boundary: []int{2, 3}},
		{Dim: 2, Boundary: []int{4, 5, 7}},
		{Dim: 2, Boundary: []int{4, 6, 8}},
		{Dim: 2, Boundary: []int{5, 6, 9}},
		{Dim: 2, Boundary: []int{7, 8, 9}},
	}
	if solid {
		cols = append(cols, boundary.Column{Dim: 3, Boundary: []int{10, 11, 12, 13}})
	}

	return cols
}

// twoTrianglesColumns: two filled triangles glued along edge 6.
func twoTrianglesColumns() []boundary.Column {
	return []boundary.Column{
		{Dim: 0}, {Dim: 0}, {Dim: 0}, {Dim: 0},
		{Dim: 1, Boundary: []int{0, 1}},
		{Dim: 1, Boundary: []int{0, 2}},
		{Dim: 1, Boundary: []int{1, 2}},
		{Dim: 1, Boundary: []int{1, 3}},
		{Dim: 1, Boundary: []int{2, 3}},
		{Dim: 2, Boundary: []int{4, 5, 6}},
		{Dim: 2, Boundary: []int{6, 7, 8}},
	}
}

type fixture struct {
	name      string
	cols      []boundary.Column
	pairs     reduce.Pairs
	essential []int
}

func fixtures() []fixture {
	return []fixture{
		{
			name:      "triangle",
			cols:      triangleColumns(),
			pairs:     reduce.Pairs{{Birth: 1, Death: 2}, {Birth: 3, Death: 4}, {Birth: 5, Death: 6}},
			essential: []int{0},
		},
		{
			name: "hollow_tetrahedron",
			cols: tetrahedronColumns(false),
			pairs: reduce.Pairs{
				{Birth: 1, Death: 4}, {Birth: 2, Death: 5}, {Birth: 3, Death: 6},
				{Birth: 7, Death: 10}, {Birth: 8, Death: 11}, {Birth: 9, Death: 12},
			},
			essential: []int{0, 13},
		},
		{
			name: "solid_tetrahedron",
			cols: tetrahedronColumns(true),
			pairs: reduce.Pairs{
				{Birth: 1, Death: 4}, {Birth: 2, Death: 5}, {Birth: 3, Death: 6},
				{Birth: 7, Death: 10}, {Birth: 8, Death: 11}, {Birth: 9, Death: 12},
				{Birth: 13, Death: 14},
			},
			essential: []int{0},
		},
		{
			name: "glued_triangles",
			cols: twoTrianglesColumns(),
			pairs: reduce.Pairs{
				{Birth: 1, Death: 4}, {Birth: 2, Death: 5}, {Birth: 3, Death: 7},
				{Birth: 6, Death: 9}, {Birth: 8, Death: 10},
			},
			essential: []int{0},
		},
	}
}

func newMatrix(t require.TestingT, rep boundary.Representation, cols []boundary.Column) *boundary.Matrix {
	m, err := boundary.NewMatrix(rep)
	require.NoError(t, err)
	require.NoError(t, m.SetColumns(cols))

	return m
}

// ReduceSuite checks every algorithm against every representation on the
// hand-verified fixtures.
type ReduceSuite struct {
	suite.Suite
}

// TestKnownPairings verifies the exact pairing and essential set on each
// fixture, for every algorithm × representation combination, together
// with the counting identity 2·pairs + essential = columns.
func (s *ReduceSuite) TestKnownPairings() {
	for _, fx := range fixtures() {
		for _, algo := range allAlgorithms {
			for _, rep := range allReps {
				name := fx.name + "/" + algo.String() + "/" + rep.String()
				s.Run(name, func() {
					m := newMatrix(s.T(), rep, fx.cols)
					opts := reduce.DefaultOptions()
					opts.Algorithm = algo

					pt, err := reduce.Reduce(m, opts)
					require.NoError(s.T(), err)

					pairs := pt.Pairs()
					require.Equal(s.T(), fx.pairs, pairs)
					require.Equal(s.T(), fx.essential, pt.Essential())
					require.Equal(s.T(), len(fx.cols), 2*len(pairs)+len(pt.Essential()))
					require.True(s.T(), m.Consumed(), "matrix should be consumed after reduction")
				})
			}
		}
	}
}

// TestDualizedAgreement verifies the co-boundary route yields the same
// pairs and leaves the primal matrix usable.
func (s *ReduceSuite) TestDualizedAgreement() {
	for _, fx := range fixtures() {
		for _, algo := range allAlgorithms {
			s.Run(fx.name+"/"+algo.String(), func() {
				m := newMatrix(s.T(), boundary.BitTreePivotColumn, fx.cols)
				opts := reduce.DefaultOptions()
				opts.Algorithm = algo

				got, err := reduce.PersistencePairsDualized(m, opts)
				require.NoError(s.T(), err)
				require.Equal(s.T(), fx.pairs, got)
				require.False(s.T(), m.Consumed(), "primal matrix must stay intact")
				require.NoError(s.T(), m.Validate())
			})
		}
	}
}

// TestChunkSmallBlocks forces multi-block, multi-pass chunk reduction
// with several workers.
func (s *ReduceSuite) TestChunkSmallBlocks() {
	for _, fx := range fixtures() {
		for _, bs := range []int{1, 2, 3} {
			s.Run(fmt.Sprintf("%s/block_%d", fx.name, bs), func() {
				m := newMatrix(s.T(), boundary.SparsePivotColumn, fx.cols)
				opts := reduce.Options{Algorithm: reduce.Chunk, BlockSize: bs, NumWorkers: 4}

				pt, err := reduce.Reduce(m, opts)
				require.NoError(s.T(), err)
				require.Equal(s.T(), fx.pairs, pt.Pairs())
				require.Equal(s.T(), fx.essential, pt.Essential())
			})
		}
	}
}

// TestRandomCrossAgreement reduces a reproducible random 1-dimensional
// filtration with every algorithm and representation, requiring all runs
// to agree with the standard reference pairing.
func (s *ReduceSuite) TestRandomCrossAgreement() {
	cols := randomGraphColumns(160, rand.New(rand.NewSource(42)))

	ref, err := reduce.PersistencePairs(
		newMatrix(s.T(), boundary.VectorVector, cols),
		reduce.Options{Algorithm: reduce.Standard},
	)
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), ref)

	for _, algo := range allAlgorithms {
		for _, rep := range allReps {
			s.Run(algo.String()+"/"+rep.String(), func() {
				m := newMatrix(s.T(), rep, cols)
				opts := reduce.Options{Algorithm: algo, BlockSize: 16, NumWorkers: 4}

				got, err := reduce.PersistencePairs(m, opts)
				require.NoError(s.T(), err)
				require.True(s.T(), ref.EqualSet(got),
					"pairing disagrees with the standard reference")
			})
		}
	}
}

// TestConvertedAgreement verifies reduction commutes with representation
// conversion.
func (s *ReduceSuite) TestConvertedAgreement() {
	cols := randomGraphColumns(96, rand.New(rand.NewSource(7)))

	ref, err := reduce.PersistencePairs(
		newMatrix(s.T(), boundary.VectorVector, cols),
		reduce.DefaultOptions(),
	)
	require.NoError(s.T(), err)

	src := newMatrix(s.T(), boundary.VectorVector, cols)
	for _, rep := range allReps {
		s.Run(rep.String(), func() {
			conv, err := boundary.Convert(src, rep)
			require.NoError(s.T(), err)

			got, err := reduce.PersistencePairs(conv, reduce.DefaultOptions())
			require.NoError(s.T(), err)
			require.True(s.T(), ref.EqualSet(got))
		})
	}
}

// TestEmptyAndTrivial covers degenerate inputs.
func (s *ReduceSuite) TestEmptyAndTrivial() {
	empty := newMatrix(s.T(), boundary.VectorVector, nil)
	pt, err := reduce.Reduce(empty, reduce.DefaultOptions())
	require.NoError(s.T(), err)
	require.Empty(s.T(), pt.Pairs())
	require.Empty(s.T(), pt.Essential())

	single := newMatrix(s.T(), boundary.BitTreePivotColumn, []boundary.Column{{Dim: 0}})
	pt, err = reduce.Reduce(single, reduce.DefaultOptions())
	require.NoError(s.T(), err)
	require.Empty(s.T(), pt.Pairs())
	require.Equal(s.T(), []int{0}, pt.Essential())
}

// TestRejections covers the error surface.
func (s *ReduceSuite) TestRejections() {
	_, err := reduce.Reduce(nil, reduce.DefaultOptions())
	require.ErrorIs(s.T(), err, reduce.ErrNilMatrix)

	m := newMatrix(s.T(), boundary.VectorVector, triangleColumns())
	_, err = reduce.Reduce(m, reduce.Options{Algorithm: reduce.Algorithm(99)})
	require.ErrorIs(s.T(), err, reduce.ErrUnknownAlgorithm)

	// The failed dispatch above must not have consumed the matrix.
	require.False(s.T(), m.Consumed())

	_, err = reduce.Reduce(m, reduce.DefaultOptions())
	require.NoError(s.T(), err)
	_, err = reduce.Reduce(m, reduce.DefaultOptions())
	require.ErrorIs(s.T(), err, boundary.ErrMatrixConsumed)

	_, err = reduce.PersistencePairsDualized(nil, reduce.DefaultOptions())
	require.ErrorIs(s.T(), err, reduce.ErrNilMatrix)
}

func TestReduceSuite(t *testing.T) {
	suite.Run(t, new(ReduceSuite))
}

// randomGraphColumns builds a random filtration of a graph: v vertices
// followed by 2v distinct edges in random order, each edge bounded by two
// earlier vertices.
func randomGraphColumns(v int, rng *rand.Rand) []boundary.Column {
	cols := make([]boundary.Column, 0, 3*v)
	for i := 0; i < v; i++ {
		cols = append(cols, boundary.Column{Dim: 0})
	}
	seen := map[[2]int]struct{}{}
	for len(seen) < 2*v {
		a, b := rng.Intn(v), rng.Intn(v)
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		key := [2]int{a, b}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		cols = append(cols, boundary.Column{Dim: 1, Boundary: []int{a, b}})
	}

	return cols
}
