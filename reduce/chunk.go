// File: reduce/chunk.go
// The chunk engine: the one genuinely parallel reduction. Columns are
// partitioned into contiguous blocks; in pass p every block reduces its
// still-unresolved columns against the rows of the block p places to its
// left, registering pivots that land in that window. Row windows are
// disjoint across blocks within a pass, so pivot-table writes never
// collide; a WaitGroup barrier separates passes, so pivots registered in
// one pass are visible (and frozen) in the next. After as many passes as
// there are blocks, every column has either registered a pivot or
// reduced to zero.

package reduce

import (
	"sync"

	"github.com/katalvlaran/homology/boundary"
)

// chunkReduce runs opts.NumWorkers goroutines per pass over the blocks.
// Registered pivot columns are never mutated again and serve as shared
// read-only sources for the whole run; each unresolved column is mutated
// only by its own block's worker.
//
// Clearing of paired birth columns (the twist shortcut) is applied only
// in pass 0, where the cleared column provably belongs to the clearing
// worker's own block; later passes leave births to empty out on their
// own rather than reach into another block's columns.
func chunkReduce(m *boundary.Matrix, pt PivotTable, opts Options) {
	n := m.NumColumns()
	blockSize := opts.BlockSize
	numBlocks := (n + blockSize - 1) / blockSize
	if numBlocks == 0 {
		return
	}

	// unresolved[b] holds the columns of block b still lacking a pivot,
	// ascending; owned exclusively by block b's worker within a pass.
	unresolved := make([][]int, numBlocks)
	for b := 0; b < numBlocks; b++ {
		begin, end := b*blockSize, min((b+1)*blockSize, n)
		for j := begin; j < end; j++ {
			if !isEmpty(m, j) {
				unresolved[b] = append(unresolved[b], j)
			}
		}
	}

	workers := min(opts.NumWorkers, numBlocks)
	for pass := 0; pass < numBlocks; pass++ {
		blocks := make(chan int)
		var wg sync.WaitGroup
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func() {
				defer wg.Done()
				for b := range blocks {
					reduceBlock(m, pt, unresolved, b, pass, blockSize, n)
				}
			}()
		}
		for b := pass; b < numBlocks; b++ {
			blocks <- b
		}
		close(blocks)
		wg.Wait() // barrier: next pass sees this pass's pivots
	}
}

// reduceBlock reduces block b's unresolved columns against the row window
// of block b-pass. The unresolved list is filtered in place.
func reduceBlock(m *boundary.Matrix, pt PivotTable, unresolved [][]int, b, pass, blockSize, n int) {
	rowBegin := (b - pass) * blockSize
	rowEnd := min(rowBegin+blockSize, n)
	next := unresolved[b][:0]
	for _, j := range unresolved[b] {
		l := low(m, j)
		for l >= rowBegin && l < rowEnd && pt[l] >= 0 {
			add(m, j, pt[l])
			l = low(m, j)
		}
		switch {
		case l < 0:
			// Reduced to zero: a birth (or essential) cell, done.
		case l >= rowBegin:
			pt[l] = j
			finalize(m, j)
			if pass == 0 {
				clearColumn(m, l) // intra-block twist shortcut only
			}
		default:
			next = append(next, j) // low fell below the window; later pass
		}
	}
	unresolved[b] = next
}
