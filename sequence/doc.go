// Package sequence supplies the symbol sequences scored by swtile:
// deterministic random DNA for benchmarking and FASTA input for real data.
//
// Generation is seeded, so the same (n, seed) always yields the same pair.
// FASTA parsing is delegated to biogo; records are upper-cased and checked
// against the nucleotide alphabet.
package sequence
