package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/swtile/config"
	"github.com/katalvlaran/swtile/matrix"
	"github.com/katalvlaran/swtile/sequence"
	"github.com/katalvlaran/swtile/wavefront"
)

// ErrVerifyMismatch is returned by --verify when the tiled and serial scores differ.
var ErrVerifyMismatch = errors.New("tiled score differs from serial reference")

// alignFlags are shared by every scoring command. Unset flags fall back to
// the config file, then to config.Default().
type alignFlags struct {
	configPath  string
	tile        int
	workers     int
	seed        uint64
	match       int32
	mismatch    int32
	gap         int32
	memoryLimit uint64
	verify      bool
}

func (f *alignFlags) register(cmd *cobra.Command) {
	def := config.Default()
	fs := cmd.PersistentFlags()
	fs.StringVarP(&f.configPath, "config", "c", "", "TOML configuration file")
	fs.IntVarP(&f.tile, "tile", "t", def.TileSize, "tile edge length")
	fs.IntVarP(&f.workers, "workers", "w", def.Workers, "worker pool size (0 = GOMAXPROCS)")
	fs.Uint64Var(&f.seed, "seed", def.Seed, "random sequence seed")
	fs.Int32Var(&f.match, "match", def.Scoring.Match, "match score")
	fs.Int32Var(&f.mismatch, "mismatch", def.Scoring.Mismatch, "mismatch score")
	fs.Int32Var(&f.gap, "gap", def.Scoring.Gap, "linear gap score")
	fs.Uint64Var(&f.memoryLimit, "memory-limit", def.MemoryLimit, "score matrix byte ceiling (0 = probe host)")
	fs.BoolVar(&f.verify, "verify", false, "cross-check against the serial evaluation")
}

// resolve merges config file and explicitly set flags, then validates.
func (f *alignFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return config.Config{}, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("tile") {
		cfg.TileSize = f.tile
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("match") {
		cfg.Scoring.Match = f.match
	}
	if fs.Changed("mismatch") {
		cfg.Scoring.Mismatch = f.mismatch
	}
	if fs.Changed("gap") {
		cfg.Scoring.Gap = f.gap
	}
	if fs.Changed("memory-limit") {
		cfg.MemoryLimit = f.memoryLimit
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, &UsageError{Reason: err.Error(), Line: cmd.UseLine(), Cause: err}
	}

	return cfg, nil
}

// lengthArg validates the single positive-integer argument of the root command.
func lengthArg(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return usageError(cmd, "missing sequence length")
	case len(args) > 1:
		return usageError(cmd, "expected one sequence length, got %d arguments", len(args))
	}
	if _, err := parseLength(args[0]); err != nil {
		return usageError(cmd, "%v", err)
	}

	return nil
}

func parseLength(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("sequence length %q must be a positive integer", s)
	}

	return n, nil
}

// runRandom scores two seeded random sequences of length n.
func runRandom(cmd *cobra.Command, n int, f *alignFlags) error {
	logger := loggerFromContext(cmd.Context())

	cfg, err := f.resolve(cmd)
	if err != nil {
		return err
	}
	seq1, seq2, err := sequence.Pair(n, cfg.Seed)
	if err != nil {
		return err
	}
	logger.Debug("generated sequences", "length", n, "seed", cfg.Seed)

	score, elapsed, err := align(logger, cfg, seq1, seq2, f.verify)
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), report{len1: n, len2: n, score: score, elapsed: elapsed})
}

// align runs the scheduler and, when verify is set, the serial reference.
// The reported duration covers the tiled run only.
func align(logger *log.Logger, cfg config.Config, seq1, seq2 []byte, verify bool) (int, time.Duration, error) {
	var extra []wavefront.Option
	if logger.GetLevel() <= log.DebugLevel {
		extra = append(extra, wavefront.WithOnWavefront(func(ws wavefront.WavefrontStats) {
			logger.Debug("wavefront done",
				"k", ws.Index, "tiles", ws.Tiles, "workers", ws.Workers,
				"max", ws.Max, "elapsed", ws.Elapsed)
		}))
	}

	if err := cfg.Scheme().Validate(); err != nil {
		logger.Warn("scoring scheme never rewards a match", "err", err)
	}
	logger.Info("aligning",
		"len1", len(seq1), "len2", len(seq2),
		"tile", cfg.TileSize, "workers", cfg.EffectiveWorkers(),
		"scheme", cfg.Scheme().String())

	start := time.Now()
	score, err := wavefront.New(cfg.SchedulerOptions(extra...)...).Run(seq1, seq2)
	elapsed := time.Since(start)
	if err != nil {
		return 0, 0, err
	}

	if verify {
		var memOpts []matrix.Option
		if cfg.MemoryLimit > 0 {
			memOpts = append(memOpts, matrix.WithMemoryLimit(cfg.MemoryLimit))
		}
		ref, _, err := wavefront.Serial(seq1, seq2, cfg.Scheme(), memOpts...)
		if err != nil {
			return 0, 0, fmt.Errorf("verify: %w", err)
		}
		if ref != score {
			return 0, 0, fmt.Errorf("%w: tiled=%d serial=%d", ErrVerifyMismatch, score, ref)
		}
		logger.Info("verified against serial evaluation", "score", ref)
	}

	return score, elapsed, nil
}

type report struct {
	len1, len2 int
	score      int
	elapsed    time.Duration
}

// writeReport prints the result block on stdout.
func writeReport(w io.Writer, r report) error {
	var err error
	if r.len1 == r.len2 {
		_, err = fmt.Fprintf(w, "Sequence length: %d\n", r.len1)
	} else {
		_, err = fmt.Fprintf(w, "Sequence lengths: %d, %d\n", r.len1, r.len2)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Smith-Waterman optimized score: %d\nExecution time: %.6f seconds\n",
		r.score, r.elapsed.Seconds())

	return err
}
