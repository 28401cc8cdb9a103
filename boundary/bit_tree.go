// File: boundary/bit_tree.go
// The default pivot cursor: a 64-ary tree of uint64 words. Level 0 is one
// bit per row index; each higher level has one summary bit per word below,
// set while that word is nonzero. Toggle updates one word per level; the
// maximum query walks the summary path picking the highest set bit.

package boundary

import "math/bits"

// bitTreeCursor holds a set of row indices over a fixed universe with
// O(log₆₄ n) toggle and max.
type bitTreeCursor struct {
	// levels[0] is the leaf bit array; levels[len-1] is a single word.
	levels [][]uint64
}

func newBitTreeCursor() *bitTreeCursor { return &bitTreeCursor{} }

func (t *bitTreeCursor) reset(n int) {
	t.levels = t.levels[:0]
	words := (n + 63) >> 6
	if words == 0 {
		words = 1
	}
	for {
		t.levels = append(t.levels, make([]uint64, words))
		if words == 1 {
			break
		}
		words = (words + 63) >> 6
	}
}

func (t *bitTreeCursor) toggle(i int) {
	word, bit := i>>6, uint(i&63)
	t.levels[0][word] ^= 1 << bit
	// Propagate non-emptiness of the child word into each summary level.
	for l := 1; l < len(t.levels); l++ {
		parent, pbit := word>>6, uint(word&63)
		if t.levels[l-1][word] != 0 {
			t.levels[l][parent] |= 1 << pbit
		} else {
			t.levels[l][parent] &^= 1 << pbit
		}
		word = parent
	}
}

func (t *bitTreeCursor) max() int {
	top := len(t.levels) - 1
	if t.levels[top][0] == 0 {
		return -1
	}
	// Descend the summary path: at each level, w indexes the nonzero word
	// and its highest set bit selects the word (or final bit) below.
	w := 0
	for l := top; l >= 0; l-- {
		b := bits.Len64(t.levels[l][w]) - 1
		w = w<<6 | b
	}

	return w
}

// drain pops members highest-first, so cost stays proportional to the
// column's entry count rather than the universe size.
func (t *bitTreeCursor) drain() []int {
	var out []int
	for m := t.max(); m >= 0; m = t.max() {
		out = append(out, m)
		t.toggle(m)
	}
	// Collected descending; deliver ascending.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}
