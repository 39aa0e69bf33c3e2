// Package wavefront computes Smith-Waterman local-alignment scores over a tiled
// score matrix, running independent tiles in parallel.
//
// 🚀 What does it do?
//
//	The (len1+1)×(len2+1) score matrix is cut into T×T tiles. Tile (ti,tj)
//	depends only on tiles (ti-1,tj), (ti,tj-1) and (ti-1,tj-1). Grouping tiles by
//	anti-diagonal k = ti+tj gives wavefronts whose members are mutually
//	independent, while every dependency of a tile lives on an earlier wavefront.
//
//	    tj→   0   1   2   3
//	  ti↓  ┌───┬───┬───┬───┐
//	   0   │ 0 │ 1 │ 2 │ 3 │
//	   1   │ 1 │ 2 │ 3 │ 4 │   cell value = wavefront index k
//	   2   │ 2 │ 3 │ 4 │ 5 │
//	       └───┴───┴───┴───┘
//
//	Wavefronts run in increasing k. Each one is a fork/join region: a fixed
//	number of workers claim tiles dynamically, each tile is evaluated
//	sequentially in row-major order, and the region joins before k+1 starts.
//	Synchronisation cost is paid per tile, not per cell.
//
// ✨ Key properties:
//   - result is independent of tile size and worker count;
//   - no locks on the matrix: tiles of one wavefront write disjoint cells and the
//     join orders all writes of k before any read in k+1;
//   - the maximum is a parallel reduction: each worker keeps a private maximum,
//     folded after the join.
//
// ⚙️ Usage:
//
//	s := wavefront.New(
//	  wavefront.WithTileSize(128),
//	  wavefront.WithWorkers(8),
//	)
//	score, err := s.Run(seq1, seq2)
//	if errors.Is(err, matrix.ErrAllocation) {
//	  // matrix does not fit: fatal for this input
//	}
//
// Performance:
//
//   - Time:   O(len1·len2 / P) plus one join per wavefront (nTilesI+nTilesJ-1 joins)
//   - Memory: O(len1·len2) int32 cells in one allocation
//
// Serial is a plain row-major reference used to cross-check the tiled result.
package wavefront
