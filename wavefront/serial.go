package wavefront

import (
	"github.com/katalvlaran/swtile/matrix"
	"github.com/katalvlaran/swtile/scoring"
)

// Serial evaluates the recurrence cell by cell in row-major order on a single
// goroutine, without tiling. It is the reference the tiled evaluation must
// reproduce exactly.
func Serial(seq1, seq2 []byte, s scoring.Scheme, opts ...matrix.Option) (int, *matrix.ScoreMatrix, error) {
	m, err := matrix.Allocate(len(seq1), len(seq2), opts...)
	if err != nil {
		return 0, nil, err
	}

	var best int32
	for i := 1; i <= len(seq1); i++ {
		for j := 1; j <= len(seq2); j++ {
			diag, _ := m.At(i-1, j-1)
			up, _ := m.At(i-1, j)
			left, _ := m.At(i, j-1)
			v := s.Cell(seq1[i-1], seq2[j-1], diag, up, left)
			_ = m.Set(i, j, v) // interior cell, cannot fail
			if v > best {
				best = v
			}
		}
	}

	return int(best), m, nil
}
