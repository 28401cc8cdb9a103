// File: reduce/bench_test.go
package reduce_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/homology/boundary"
	"github.com/katalvlaran/homology/reduce"
)

func benchReduce(b *testing.B, algo reduce.Algorithm, rep boundary.Representation) {
	cols := randomGraphColumns(512, rand.New(rand.NewSource(42)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m, err := boundary.NewMatrix(rep)
		if err != nil {
			b.Fatalf("NewMatrix failed: %v", err)
		}
		if err := m.SetColumns(cols); err != nil {
			b.Fatalf("SetColumns failed: %v", err)
		}
		b.StartTimer()

		opts := reduce.Options{Algorithm: algo, NumWorkers: 4}
		if _, err := reduce.Reduce(m, opts); err != nil {
			b.Fatalf("Reduce failed: %v", err)
		}
	}
}

func BenchmarkReduce_Standard(b *testing.B) {
	benchReduce(b, reduce.Standard, boundary.BitTreePivotColumn)
}

func BenchmarkReduce_Twist(b *testing.B) {
	benchReduce(b, reduce.Twist, boundary.BitTreePivotColumn)
}

func BenchmarkReduce_Chunk(b *testing.B) {
	benchReduce(b, reduce.Chunk, boundary.BitTreePivotColumn)
}

func BenchmarkReduce_Row(b *testing.B) {
	benchReduce(b, reduce.Row, boundary.VectorVector)
}

func BenchmarkReduce_SpectralSequence(b *testing.B) {
	benchReduce(b, reduce.SpectralSequence, boundary.BitTreePivotColumn)
}

func BenchmarkReduce_TwistVectorHeap(b *testing.B) {
	benchReduce(b, reduce.Twist, boundary.VectorHeap)
}
