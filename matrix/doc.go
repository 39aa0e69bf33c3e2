// SPDX-License-Identifier: MIT

// Package matrix provides the Smith-Waterman score matrix: a single contiguous
// row-major buffer of int32 cells with explicit offset arithmetic.
//
// Layout:
//
//	rows = len1+1, cols = len2+1
//	offset(i, j) = i*cols + j
//
//	       j=0  j=1  j=2 ... j=len2
//	i=0  [  0    0    0  ...   0  ]   ← boundary row, always zero
//	i=1  [  0    .    .  ...   .  ]
//	...  [  0    .    .  ...   .  ]
//	     ↑ boundary column, always zero
//
// Why one buffer and not [][]int32:
//   - row stride is a runtime constant, so the hardware prefetcher sees a linear stream
//     across row boundaries;
//   - one allocation and one release; no pointer chasing per row.
//
// Allocation is checked explicitly. Allocate never returns a nil buffer with a
// nil error: oversize requests fail with an *AllocationError that matches
// ErrAllocation under errors.Is.
//
// Concurrency:
//   - A ScoreMatrix has no internal locking. Concurrent writers are safe only when
//     their cell sets are disjoint and readers are ordered after writers by an
//     external barrier (the wavefront scheduler provides both).
//
// Complexity quicksheet:
//   - Allocate: O(r*c) zero-init; At/Set/Offset: O(1); Clone/Equal/Max: O(r*c).
package matrix
