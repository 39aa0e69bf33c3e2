package wavefront

import (
	"fmt"

	"github.com/katalvlaran/swtile/matrix"
	"github.com/katalvlaran/swtile/scoring"
)

// ProcessTile evaluates every cell of t in row-major order and returns the
// largest value written.
//
// Preconditions (checked once, before the loop):
//   - m has shape (len(seq1)+1)×(len(seq2)+1), else ErrShapeMismatch;
//   - 1 ≤ StartI ≤ EndI ≤ len(seq1) and 1 ≤ StartJ ≤ EndJ ≤ len(seq2), else ErrTileBounds;
//   - the tiles above, left and above-left of t are already final (caller's duty).
//
// ProcessTile writes only the cells of t and reads only t and its one-cell halo
// above and to the left. It touches no other shared state.
func ProcessTile(t Tile, seq1, seq2 []byte, m *matrix.ScoreMatrix, s scoring.Scheme) (int32, error) {
	if m == nil {
		return 0, matrix.ErrNilMatrix
	}
	if m.Rows() != len(seq1)+1 || m.Cols() != len(seq2)+1 {
		return 0, fmt.Errorf("matrix %dx%d for lengths %d,%d: %w",
			m.Rows(), m.Cols(), len(seq1), len(seq2), ErrShapeMismatch)
	}
	if t.StartI < 1 || t.StartI > t.EndI || t.EndI > len(seq1) ||
		t.StartJ < 1 || t.StartJ > t.EndJ || t.EndJ > len(seq2) {
		return 0, fmt.Errorf("tile (%d,%d) [%d..%d]x[%d..%d]: %w",
			t.TI, t.TJ, t.StartI, t.EndI, t.StartJ, t.EndJ, ErrTileBounds)
	}

	return processTile(t, seq1, seq2, m.Data(), m.Stride(), s), nil
}

// processTile is the unchecked kernel.
func processTile(t Tile, seq1, seq2 []byte, data []int32, stride int, s scoring.Scheme) int32 {
	var best int32
	cols := seq2[t.StartJ-1 : t.EndJ]
	for i := t.StartI; i <= t.EndI; i++ {
		// Row offsets once per row; the column loop indexes the two row slices.
		cur := i * stride
		prev := cur - stride
		rowCur := data[cur+t.StartJ-1 : cur+t.EndJ+1]
		rowPrev := data[prev+t.StartJ-1 : prev+t.EndJ+1]
		a := seq1[i-1]
		for k, b := range cols {
			v := s.Cell(a, b, rowPrev[k], rowPrev[k+1], rowCur[k])
			rowCur[k+1] = v
			if v > best {
				best = v
			}
		}
	}

	return best
}
