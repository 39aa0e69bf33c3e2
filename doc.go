// Package swtile computes Smith-Waterman local alignment scores on multi-core
// machines by evaluating the score matrix in cache-sized tiles, one
// anti-diagonal wavefront of tiles at a time.
//
// 🚀 What is in here?
//
//	scoring/    the cell recurrence: max(0, diag+s(a,b), up+gap, left+gap)
//	matrix/     the flat (len1+1)×(len2+1) int32 score matrix with checked allocation
//	wavefront/  tile grid, tile kernel, fork/join scheduler, max reducer, serial reference
//	sequence/   seeded random DNA and FASTA input
//	config/     TOML run settings
//	cmd/swtile  the command-line tool
//
// Quick ASCII example (T=2, 4×4 interior → 2×2 tiles, 3 wavefronts):
//
//	┌─────┬─────┐
//	│ k=0 │ k=1 │
//	├─────┼─────┤
//	│ k=1 │ k=2 │
//	└─────┴─────┘
//
// Only the optimal score is produced; there is no traceback and no affine gap
// model.
//
//	go install github.com/katalvlaran/swtile/cmd/swtile@latest
package swtile
