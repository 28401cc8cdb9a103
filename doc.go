// Package homology computes persistent homology from boundary matrices —
// which topological features (components, cycles, voids, …) appear in a
// filtered cell complex, and when they disappear.
//
// 🚀 What is homology?
//
//	A pure-Go toolbox for the matrix-reduction core of topological data
//	analysis:
//		• Boundary matrices: seven interchangeable sparse column stores,
//		  from plain sorted vectors to a 64-ary bit-tree pivot cursor
//		• Reductions: standard, twist, chunk (parallel), row and
//		  spectral-sequence — all provably yielding the same pairing
//		• Persistence pairs: read (birth, death) indices off the reduced
//		  matrix, with dualized (co-homological) computation built in
//		• Conversion: copy any matrix between representations losslessly
//		• Exchange formats: binary and text save/load, round-trip exact
//
// ✨ Why choose homology?
//
//   - Predictable – every algorithm × representation pair produces the
//     identical persistence pairing, and the tests enforce it
//   - Strict by construction – malformed boundaries are rejected before
//     any mutation, never discovered mid-reduction
//   - Pure Go – no cgo, no hidden deps
//   - Tunable – pick the column store matching your complex's shape and
//     the reduction matching your core count
//
// Under the hood, everything is organized under two subpackages:
//
//	boundary/ — column stores, the Matrix type, converters & file I/O
//	reduce/   — the five reduction engines & persistence-pair extraction
//
// Quick ASCII example — one filled triangle, seven cells:
//
//	     3
//	     |\
//	    5| \ 4      cells: 0,1,3 vertices · 2,4,5 edges · 6 face
//	     |6 \
//	     |___\
//	     0  2  1
//
//	reducing its boundary matrix yields the pairs (1,2), (3,4), (5,6)
//	and leaves cell 0 essential — one connected component, no holes.
//
// Dive into the examples/ directory for full, runnable walkthroughs.
//
//	go get github.com/katalvlaran/homology
package homology
