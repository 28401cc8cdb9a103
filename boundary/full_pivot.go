// File: boundary/full_pivot.go
// Dense pivot cursor: one bit per row of the full universe plus a
// monotone maximum hint. Toggle is a single XOR; max rescans downward
// from the hint only across words emptied since the last query. Memory
// is n/8 bytes regardless of sparsity — the small/medium-complex choice.

package boundary

import "math/bits"

// fullCursor holds a set of row indices as a dense uint64 bitset.
type fullCursor struct {
	words   []uint64
	maxHint int // ≥ the true maximum; -1 when known empty
}

func newFullCursor() *fullCursor { return &fullCursor{maxHint: -1} }

func (f *fullCursor) reset(n int) {
	words := (n + 63) >> 6
	if words == 0 {
		words = 1
	}
	f.words = make([]uint64, words)
	f.maxHint = -1
}

func (f *fullCursor) toggle(i int) {
	f.words[i>>6] ^= 1 << uint(i&63)
	if i > f.maxHint {
		f.maxHint = i
	}
}

func (f *fullCursor) max() int {
	if f.maxHint < 0 {
		return -1
	}
	// Scan down from the hint word; settle the hint on the true maximum.
	word := f.maxHint >> 6
	if v := f.words[word] & (^uint64(0) >> uint(63-f.maxHint&63)); v != 0 {
		f.maxHint = word<<6 | (bits.Len64(v) - 1)

		return f.maxHint
	}
	for word--; word >= 0; word-- {
		if v := f.words[word]; v != 0 {
			f.maxHint = word<<6 | (bits.Len64(v) - 1)

			return f.maxHint
		}
	}
	f.maxHint = -1

	return -1
}

func (f *fullCursor) drain() []int {
	var out []int
	top := f.max()
	for word := 0; word<<6 <= top; word++ {
		v := f.words[word]
		f.words[word] = 0
		for v != 0 {
			b := bits.TrailingZeros64(v)
			out = append(out, word<<6|b)
			v &= v - 1
		}
	}
	f.maxHint = -1

	return out
}
