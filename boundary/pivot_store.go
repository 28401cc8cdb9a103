// File: boundary/pivot_store.go
// Shared machinery of the three pivot-column representations. Columns rest
// as compacted sorted vectors; a single cursor structure (bit tree, hash
// set or dense bitset) holds the one column currently under reduction, so
// the cascade of Adds against that column never touches slice storage.

package boundary

import "sync"

// pivotCursor is the structure holding the active column of a pivotStore.
// Implementations differ in toggle/max cost; all hold a set of row
// indices over a fixed universe [0, n).
type pivotCursor interface {
	// reset re-dimensions the cursor to an empty set over universe n.
	reset(n int)
	// toggle flips membership of row index i.
	toggle(i int)
	// max returns the largest member, or -1 when empty.
	max() int
	// drain removes and returns all members sorted ascending.
	drain() []int
}

// pivotStore adapts a pivotCursor into a full columnStore. The cursor is
// a single shared resource, so every operation is guarded by one mutex;
// concurrent Adds from chunk-reduction workers serialize here (vector
// stores allow full block parallelism; prefer them for Chunk).
type pivotStore struct {
	storeDims
	cols   [][]int
	cursor pivotCursor
	active int // column currently held by the cursor; -1 when none
	mu     sync.Mutex
}

func newPivotStore(cursor pivotCursor) *pivotStore {
	return &pivotStore{cursor: cursor, active: -1}
}

func (p *pivotStore) init(n int) {
	p.initDims(n)
	p.cols = make([][]int, n)
	p.cursor.reset(n)
	p.active = -1
}

// flushLocked writes the cursor content back to its column's vector
// storage and releases the cursor. Caller holds mu.
func (p *pivotStore) flushLocked() {
	if p.active < 0 {
		return
	}
	p.cols[p.active] = p.cursor.drain()
	p.active = -1
}

// activateLocked loads column j into the cursor, flushing any previous
// occupant first. Caller holds mu.
func (p *pivotStore) activateLocked(j int) {
	if p.active == j {
		return
	}
	p.flushLocked()
	for _, e := range p.cols[j] {
		p.cursor.toggle(e)
	}
	p.active = j
}

// discardLocked drops cursor content for column j without write-back,
// used when the column is about to be overwritten. Caller holds mu.
func (p *pivotStore) discardLocked(j int) {
	if p.active == j {
		_ = p.cursor.drain()
		p.active = -1
	}
}

func (p *pivotStore) get(j int) []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active == j {
		p.flushLocked()
	}

	return append([]int(nil), p.cols[j]...)
}

func (p *pivotStore) set(j int, values []int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.discardLocked(j)
	p.cols[j] = append([]int(nil), values...)
}

func (p *pivotStore) isEmpty(j int) bool { return p.low(j) == -1 }

func (p *pivotStore) low(j int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active == j {
		return p.cursor.max()
	}
	if len(p.cols[j]) == 0 {
		return -1
	}

	return p.cols[j][len(p.cols[j])-1]
}

func (p *pivotStore) add(target, source int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activateLocked(target)
	for _, e := range p.cols[source] {
		p.cursor.toggle(e)
	}
}

func (p *pivotStore) clear(j int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.discardLocked(j)
	p.cols[j] = nil
}

// finalize compacts column j back into vector storage, releasing the
// cursor for the next reduction target.
func (p *pivotStore) finalize(j int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active == j {
		p.flushLocked()
	}
}

func (p *pivotStore) numEntries() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.flushLocked()
	total := 0
	for _, col := range p.cols {
		total += len(col)
	}

	return total
}
