package wavefront

import (
	"errors"
	"runtime"
	"time"

	"github.com/katalvlaran/swtile/scoring"
)

// DefaultTileSize is the tile edge length. A 128×128 int32 tile plus its
// halo fits in L2 on common hardware.
const DefaultTileSize = 128

var (
	// ErrTileSize indicates a tile edge length < 1.
	ErrTileSize = errors.New("wavefront: tile size must be >= 1")

	// ErrNegativeLength indicates a negative sequence length passed to NewGrid.
	ErrNegativeLength = errors.New("wavefront: sequence length must be >= 0")

	// ErrTileBounds indicates a tile that does not lie inside the matrix interior.
	ErrTileBounds = errors.New("wavefront: tile outside matrix interior")

	// ErrShapeMismatch indicates a matrix whose shape does not match the sequences.
	ErrShapeMismatch = errors.New("wavefront: matrix shape does not match sequences")
)

const (
	panicTileSizeInvalid = "wavefront: WithTileSize: size must be >= 1"
	panicWorkersInvalid  = "wavefront: WithWorkers: workers must be >= 1"
	panicMemLimitInvalid = "wavefront: WithMemoryLimit: limit must be > 0"
)

// Tile is an inclusive rectangle [StartI,EndI]×[StartJ,EndJ] of matrix cells
// (1-based: row 0 and column 0 are the boundary) at grid position (TI,TJ).
type Tile struct {
	TI, TJ       int
	StartI, EndI int
	StartJ, EndJ int
}

// Wavefront returns TI+TJ.
func (t Tile) Wavefront() int { return t.TI + t.TJ }

// Cells returns the number of cells covered by t.
func (t Tile) Cells() int { return (t.EndI - t.StartI + 1) * (t.EndJ - t.StartJ + 1) }

// WavefrontStats is passed to the OnWavefront hook after each join.
type WavefrontStats struct {
	Index   int           // wavefront index k
	Tiles   int           // tiles in this wavefront
	Workers int           // goroutines forked for it
	Max     int32         // best cell seen in this wavefront
	Elapsed time.Duration // fork to join
}

// Option configures a Scheduler.
type Option func(*Options)

// Options holds the resolved scheduler configuration.
type Options struct {
	tileSize    int
	workers     int
	scheme      scoring.Scheme
	memoryLimit uint64 // 0 → probe, see matrix.Allocate
	onWavefront func(WavefrontStats)
}

// DefaultOptions returns T=DefaultTileSize, workers=GOMAXPROCS, default scheme.
func DefaultOptions() Options {
	return Options{
		tileSize: DefaultTileSize,
		workers:  runtime.GOMAXPROCS(0),
		scheme:   scoring.DefaultScheme(),
	}
}

// TileSize returns the tile edge length.
func (o Options) TileSize() int { return o.tileSize }

// Workers returns the worker pool size.
func (o Options) Workers() int { return o.workers }

// Scheme returns the scoring scheme.
func (o Options) Scheme() scoring.Scheme { return o.scheme }

// WithTileSize sets the tile edge length. Panics if size < 1.
func WithTileSize(size int) Option {
	if size < 1 {
		panic(panicTileSizeInvalid)
	}

	return func(o *Options) { o.tileSize = size }
}

// WithWorkers sets the worker pool size. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithScheme sets the scoring scheme. It is validated by Align.
func WithScheme(s scoring.Scheme) Option {
	return func(o *Options) { o.scheme = s }
}

// WithMemoryLimit caps the score matrix size in bytes. Panics if limit is 0.
func WithMemoryLimit(limit uint64) Option {
	if limit == 0 {
		panic(panicMemLimitInvalid)
	}

	return func(o *Options) { o.memoryLimit = limit }
}

// WithOnWavefront registers a hook called once per wavefront, after its join,
// from the goroutine that called Align.
func WithOnWavefront(fn func(WavefrontStats)) Option {
	return func(o *Options) { o.onWavefront = fn }
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
