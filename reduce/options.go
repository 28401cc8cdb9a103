// File: reduce/options.go
// Tunables for the reduction engines, in the options-struct-with-defaults
// convention shared across the module.

package reduce

import (
	"math"
	"runtime"
)

// Options configures a reduction run.
//
// Fields:
//   - Algorithm  — which engine to run (default Twist).
//   - NumWorkers — worker goroutines for Chunk; 0 means runtime.NumCPU().
//     Ignored by the inherently sequential engines.
//   - BlockSize  — columns per block for Chunk and stripe width for
//     SpectralSequence; 0 derives ⌈√n⌉ from the matrix size.
//
// Example:
//
//	opts := reduce.DefaultOptions()
//	opts.Algorithm = reduce.Chunk
//	opts.NumWorkers = 4
//
//	pairs, err := reduce.PersistencePairs(m, opts)
type Options struct {
	Algorithm  Algorithm
	NumWorkers int
	BlockSize  int
}

// DefaultOptions returns the default configuration: Twist, automatic
// worker count, derived block size.
func DefaultOptions() Options {
	return Options{Algorithm: Twist}
}

// normalized resolves zero values against the matrix size n.
func (o Options) normalized(n int) Options {
	if o.NumWorkers <= 0 {
		o.NumWorkers = runtime.NumCPU()
	}
	if o.BlockSize <= 0 {
		o.BlockSize = int(math.Sqrt(float64(n))) + 1
	}

	return o
}
