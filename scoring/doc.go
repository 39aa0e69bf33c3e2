// Package scoring defines the Smith-Waterman cell recurrence used by swtile.
//
// A Scheme holds the three linear scoring constants:
//
//	Match     added to the diagonal predecessor when the two symbols are equal
//	Mismatch  added to the diagonal predecessor when they differ
//	Gap       added to the up/left predecessor (linear gap, no open/extend split)
//
// Cell evaluates
//
//	H[i][j] = max(0, H[i-1][j-1] + s(a,b), H[i-1][j] + Gap, H[i][j-1] + Gap)
//
// The zero floor is what makes the alignment local: a negative running score is
// reset instead of being carried forward.
//
// Cell is pure integer arithmetic with no side effects and no failure modes.
// Overflow of int32 is not guarded against.
package scoring
