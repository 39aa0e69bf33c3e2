package wavefront

import (
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/swtile/matrix"
)

// Scheduler runs the tiled wavefront evaluation with a fixed configuration.
// A Scheduler is immutable and safe for concurrent use; every Align call owns
// its own matrix.
type Scheduler struct {
	opts Options
}

// Result is the outcome of Align.
type Result struct {
	Score      int                 // optimal local alignment score
	Matrix     *matrix.ScoreMatrix // fully evaluated score matrix
	TileSize   int
	Workers    int
	Tiles      int // tiles evaluated
	Wavefronts int // fork/join regions executed
}

// New returns a Scheduler configured by opts over DefaultOptions.
func New(opts ...Option) *Scheduler {
	return &Scheduler{opts: gatherOptions(opts...)}
}

// Options returns the resolved configuration.
func (s *Scheduler) Options() Options { return s.opts }

// Run returns the optimal local alignment score of seq1 and seq2.
func (s *Scheduler) Run(seq1, seq2 []byte) (int, error) {
	res, err := s.Align(seq1, seq2)
	if err != nil {
		return 0, err
	}

	return res.Score, nil
}

// Align evaluates the full score matrix and returns it with the score.
//
// Algorithm:
//  1. Allocate the (len1+1)×(len2+1) matrix (fatal on failure).
//  2. For k = 0 .. nTilesI+nTilesJ-2:
//     fork min(workers, |wavefront k|) workers that claim tiles from an atomic
//     cursor and evaluate them with ProcessTile;
//     join (hard barrier), then fold worker maxima.
//  3. Score = global maximum.
//
// Any scoring.Scheme is accepted; the only failure is allocation, reported as
// matrix.ErrAllocation (*matrix.AllocationError). No partial result is returned.
func (s *Scheduler) Align(seq1, seq2 []byte) (*Result, error) {
	var memOpts []matrix.Option
	if s.opts.memoryLimit > 0 {
		memOpts = append(memOpts, matrix.WithMemoryLimit(s.opts.memoryLimit))
	}
	m, err := matrix.Allocate(len(seq1), len(seq2), memOpts...)
	if err != nil {
		return nil, err
	}

	grid, err := NewGrid(len(seq1), len(seq2), s.opts.tileSize)
	if err != nil {
		return nil, err
	}

	red := NewReducer(s.opts.workers)
	tiles := make([]Tile, 0, grid.MaxWidth())
	for k := 0; k < grid.Wavefronts(); k++ {
		tiles = grid.TilesOn(k, tiles[:0])

		start := time.Now()
		forked, err := s.runRegion(tiles, seq1, seq2, m, red)
		if err != nil {
			return nil, fmt.Errorf("wavefront %d: %w", k, err)
		}
		regionMax := red.Fold()

		if s.opts.onWavefront != nil {
			s.opts.onWavefront(WavefrontStats{
				Index:   k,
				Tiles:   len(tiles),
				Workers: forked,
				Max:     regionMax,
				Elapsed: time.Since(start),
			})
		}
	}

	return &Result{
		Score:      int(red.Max()),
		Matrix:     m,
		TileSize:   grid.Size(),
		Workers:    s.opts.workers,
		Tiles:      grid.Len(),
		Wavefronts: grid.Wavefronts(),
	}, nil
}

// runRegion is one fork/join region. Tiles are claimed dynamically so that a
// clipped (small) edge tile does not leave a worker idle. Returns the number
// of goroutines forked (0 when run inline).
func (s *Scheduler) runRegion(tiles []Tile, seq1, seq2 []byte, m *matrix.ScoreMatrix, red *Reducer) (int, error) {
	n := len(tiles)
	workers := min(s.opts.workers, n)

	// A single tile or a single worker needs no fork.
	if workers <= 1 {
		for _, t := range tiles {
			v, err := ProcessTile(t, seq1, seq2, m, s.opts.scheme)
			if err != nil {
				return 0, err
			}
			red.Observe(0, v)
		}

		return 0, nil
	}

	var (
		g    errgroup.Group
		next atomic.Int64
	)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			var local int32
			for {
				idx := int(next.Add(1)) - 1
				if idx >= n {
					break
				}
				v, err := ProcessTile(tiles[idx], seq1, seq2, m, s.opts.scheme)
				if err != nil {
					return err
				}
				if v > local {
					local = v
				}
			}
			red.Observe(w, local)

			return nil
		})
	}

	return workers, g.Wait()
}

// Run is shorthand for New(opts...).Run(seq1, seq2).
func Run(seq1, seq2 []byte, opts ...Option) (int, error) {
	return New(opts...).Run(seq1, seq2)
}
