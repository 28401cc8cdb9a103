// File: reduce/example_test.go
package reduce_test

import (
	"fmt"

	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/reduce"
)

// ExamplePersistencePairs reduces the boundary matrix of a filled
// triangle. Each edge kills the component of its younger endpoint, and
// the face kills the loop the last edge created; only the first vertex
// survives forever.
func ExamplePersistencePairs() {
	m, _ := boundary.NewMatrix(boundary.BitTreePivotColumn)
	_ = m.SetColumns([]boundary.Column{
		{Dim: 0},
		{Dim: 0},
		{Dim: 1, Boundary: []int{0, 1}},
		{Dim: 0},
		{Dim: 1, Boundary: []int{1, 3}},
		{Dim: 1, Boundary: []int{0, 3}},
		{Dim: 2, Boundary: []int{2, 4, 5}},
	})

	pairs, _ := reduce.PersistencePairs(m, reduce.DefaultOptions())
	for _, p := range pairs {
		fmt.Printf("birth %d dies at %d\n", p.Birth, p.Death)
	}

	// Output:
	// birth 1 dies at 2
	// birth 3 dies at 4
	// birth 5 dies at 6
}

// ExampleReduce_essential recovers the classes that never die.
func ExampleReduce_essential() {
	m, _ := boundary.NewMatrix(boundary.VectorVector)
	_ = m.SetColumns([]boundary.Column{
		{Dim: 0},
		{Dim: 0},
		{Dim: 1, Boundary: []int{0, 1}},
	})

	pt, _ := reduce.Reduce(m, reduce.DefaultOptions())
	fmt.Println("pairs:", pt.Pairs())
	fmt.Println("essential:", pt.Essential())

	// Output:
	// pairs: [{1 2}]
	// essential: [0]
}
