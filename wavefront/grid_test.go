package wavefront_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/swtile/wavefront"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewGridErrors rejects negative lengths and non-positive tile sizes.
func TestNewGridErrors(t *testing.T) {
	_, err := wavefront.NewGrid(-1, 5, 4)
	require.ErrorIs(t, err, wavefront.ErrNegativeLength)

	_, err = wavefront.NewGrid(5, 5, 0)
	require.ErrorIs(t, err, wavefront.ErrTileSize)
}

// TestGridCounts checks ceil division and the wavefront count.
func TestGridCounts(t *testing.T) {
	tests := []struct {
		len1, len2, size int
		nI, nJ, waves    int
	}{
		{10, 10, 4, 3, 3, 5},
		{8, 8, 4, 2, 2, 3},
		{1, 1, 128, 1, 1, 1},
		{300, 5, 128, 3, 1, 3},
		{0, 7, 4, 0, 2, 0},
		{7, 0, 4, 2, 0, 0},
		{5, 5, 1, 5, 5, 9},
		{4, 4, math.MaxInt, 1, 1, 1},
		{math.MaxInt, 3, math.MaxInt, 1, 1, 1},
		{math.MaxInt, 3, math.MaxInt - 1, 2, 1, 2},
	}
	for _, tc := range tests {
		g, err := wavefront.NewGrid(tc.len1, tc.len2, tc.size)
		require.NoError(t, err)
		assert.Equal(t, tc.nI, g.TilesI(), "%+v", tc)
		assert.Equal(t, tc.nJ, g.TilesJ(), "%+v", tc)
		assert.Equal(t, tc.waves, g.Wavefronts(), "%+v", tc)
		assert.Equal(t, tc.nI*tc.nJ, g.Len(), "%+v", tc)
	}
}

// TestGridTileClipping verifies start = t*T+1 and end = min((t+1)*T, len).
func TestGridTileClipping(t *testing.T) {
	g, err := wavefront.NewGrid(10, 7, 4)
	require.NoError(t, err)

	first := g.Tile(0, 0)
	assert.Equal(t, wavefront.Tile{TI: 0, TJ: 0, StartI: 1, EndI: 4, StartJ: 1, EndJ: 4}, first)
	assert.Equal(t, 16, first.Cells())

	last := g.Tile(2, 1)
	assert.Equal(t, wavefront.Tile{TI: 2, TJ: 1, StartI: 9, EndI: 10, StartJ: 5, EndJ: 7}, last)
	assert.Equal(t, 6, last.Cells())
	assert.Equal(t, 3, last.Wavefront())
}

// TestWavefrontCoverage checks that wavefronts partition the tile grid, that
// every tile sits on k = ti+tj, and that its three dependencies sit on earlier
// wavefronts.
func TestWavefrontCoverage(t *testing.T) {
	for _, dims := range [][3]int{{10, 10, 3}, {37, 5, 4}, {5, 37, 4}, {64, 64, 64}, {100, 33, 7}} {
		g, err := wavefront.NewGrid(dims[0], dims[1], dims[2])
		require.NoError(t, err)

		seenTile := map[[2]int]int{}
		cells := 0
		for k := 0; k < g.Wavefronts(); k++ {
			tiles := g.TilesOn(k, nil)
			require.NotEmpty(t, tiles, "wavefront %d", k)
			require.LessOrEqual(t, len(tiles), g.MaxWidth())
			for idx, tl := range tiles {
				require.Equal(t, k, tl.Wavefront())
				if idx > 0 {
					require.Greater(t, tl.TI, tiles[idx-1].TI, "ascending ti")
				}
				key := [2]int{tl.TI, tl.TJ}
				_, dup := seenTile[key]
				require.False(t, dup, "tile %v enumerated twice", key)
				seenTile[key] = k
				cells += tl.Cells()

				for _, dep := range [][2]int{{tl.TI - 1, tl.TJ}, {tl.TI, tl.TJ - 1}, {tl.TI - 1, tl.TJ - 1}} {
					if dep[0] < 0 || dep[1] < 0 {
						continue
					}
					depK, ok := seenTile[dep]
					require.True(t, ok, "dependency %v of %v not yet scheduled", dep, key)
					require.Less(t, depK, k)
				}
			}
		}
		require.Len(t, seenTile, g.Len())
		require.Equal(t, dims[0]*dims[1], cells, "tiles must cover the interior exactly")
	}
}

// TestTilesOnOutOfRange yields nothing for k outside [0, Wavefronts()).
func TestTilesOnOutOfRange(t *testing.T) {
	g, err := wavefront.NewGrid(8, 8, 4)
	require.NoError(t, err)
	require.Empty(t, g.TilesOn(-1, nil))
	require.Empty(t, g.TilesOn(g.Wavefronts(), nil))

	buf := make([]wavefront.Tile, 0, 2)
	buf = g.TilesOn(1, buf)
	require.Len(t, buf, 2)
}

// TestHugeTileSize clips a single tile to the whole matrix and the last tile
// of a near-MaxInt grid to the sequence end.
func TestHugeTileSize(t *testing.T) {
	g, err := wavefront.NewGrid(4, 6, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, wavefront.Tile{TI: 0, TJ: 0, StartI: 1, EndI: 4, StartJ: 1, EndJ: 6}, g.Tile(0, 0))

	g, err = wavefront.NewGrid(math.MaxInt, 1, math.MaxInt-1)
	require.NoError(t, err)
	last := g.Tile(1, 0)
	assert.Equal(t, math.MaxInt, last.StartI)
	assert.Equal(t, math.MaxInt, last.EndI)
	assert.Equal(t, 1, last.EndJ)
}
