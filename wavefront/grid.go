package wavefront

import "fmt"

// Grid partitions a (len1+1)×(len2+1) score matrix into tiles of edge Size.
// The boundary row and column are not part of any tile.
type Grid struct {
	len1, len2 int
	size       int
	nI, nJ     int
}

// NewGrid computes nTilesI = ceil(len1/size) and nTilesJ = ceil(len2/size).
//
// Errors:
//   - ErrNegativeLength if len1 or len2 < 0.
//   - ErrTileSize if size < 1.
func NewGrid(len1, len2, size int) (Grid, error) {
	if len1 < 0 || len2 < 0 {
		return Grid{}, fmt.Errorf("NewGrid(%d,%d): %w", len1, len2, ErrNegativeLength)
	}
	if size < 1 {
		return Grid{}, fmt.Errorf("NewGrid size=%d: %w", size, ErrTileSize)
	}

	return Grid{
		len1: len1,
		len2: len2,
		size: size,
		nI:   ceilDiv(len1, size),
		nJ:   ceilDiv(len2, size),
	}, nil
}

// ceilDiv is ceil(n/d) for n >= 0, d >= 1, exact for every d up to math.MaxInt.
func ceilDiv(n, d int) int {
	q := n / d
	if n%d != 0 {
		q++
	}

	return q
}

// Size returns the tile edge length.
func (g Grid) Size() int { return g.size }

// TilesI returns the number of tile rows.
func (g Grid) TilesI() int { return g.nI }

// TilesJ returns the number of tile columns.
func (g Grid) TilesJ() int { return g.nJ }

// Len returns the total number of tiles.
func (g Grid) Len() int { return g.nI * g.nJ }

// Wavefronts returns nTilesI+nTilesJ-1, or 0 when either sequence is empty.
func (g Grid) Wavefronts() int {
	if g.nI == 0 || g.nJ == 0 {
		return 0
	}

	return g.nI + g.nJ - 1
}

// MaxWidth returns the largest number of tiles on any wavefront.
func (g Grid) MaxWidth() int { return min(g.nI, g.nJ) }

// Tile returns the clipped bounds of tile (ti,tj):
// start = t*size+1, end = min((t+1)*size, len).
// The caller guarantees 0 ≤ ti < TilesI() and 0 ≤ tj < TilesJ().
func (g Grid) Tile(ti, tj int) Tile {
	startI, endI := g.span(ti, g.len1)
	startJ, endJ := g.span(tj, g.len2)

	return Tile{
		TI:     ti,
		TJ:     tj,
		StartI: startI,
		EndI:   endI,
		StartJ: startJ,
		EndJ:   endJ,
	}
}

// span returns the inclusive bounds of tile t along an axis of length n.
// t*size < n holds for every valid t, so neither bound can overflow.
func (g Grid) span(t, n int) (start, end int) {
	off := t * g.size

	return off + 1, off + min(g.size, n-off)
}

// TilesOn appends the tiles of wavefront k to dst in ascending ti order and
// returns the extended slice. Out-of-range k yields no tiles.
func (g Grid) TilesOn(k int, dst []Tile) []Tile {
	if k < 0 || k >= g.Wavefronts() {
		return dst
	}
	// ti ranges so that tj = k-ti stays in [0, nJ).
	lo := max(0, k-g.nJ+1)
	hi := min(k, g.nI-1)
	for ti := lo; ti <= hi; ti++ {
		dst = append(dst, g.Tile(ti, k-ti))
	}

	return dst
}
