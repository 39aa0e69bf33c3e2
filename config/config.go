// Package config loads swtile run settings from TOML.
//
// A file may set any subset of the keys; missing keys keep their defaults:
//
//	tile_size    = 128      # tile edge length T
//	workers      = 0        # 0 → GOMAXPROCS
//	seed         = 42       # sequence generator seed
//	memory_limit = 0        # score matrix byte ceiling; 0 → probe the host
//
//	[scoring]
//	match    = 2
//	mismatch = -1
//	gap      = -2
//
// Unknown keys are rejected so that typos do not silently fall back to defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/swtile/scoring"
	"github.com/katalvlaran/swtile/sequence"
	"github.com/katalvlaran/swtile/wavefront"
)

var (
	// ErrUnknownKey indicates a key that does not map to any setting.
	ErrUnknownKey = errors.New("config: unknown key")

	// ErrInvalid indicates a setting outside its legal range.
	ErrInvalid = errors.New("config: invalid value")
)

// Scoring mirrors scoring.Scheme with TOML tags.
type Scoring struct {
	Match    int32 `toml:"match"`
	Mismatch int32 `toml:"mismatch"`
	Gap      int32 `toml:"gap"`
}

// Config is the full set of run settings.
type Config struct {
	TileSize    int     `toml:"tile_size"`
	Workers     int     `toml:"workers"`
	Seed        uint64  `toml:"seed"`
	MemoryLimit uint64  `toml:"memory_limit"`
	Scoring     Scoring `toml:"scoring"`
}

// Default returns the built-in settings.
func Default() Config {
	s := scoring.DefaultScheme()

	return Config{
		TileSize: wavefront.DefaultTileSize,
		Workers:  0,
		Seed:     sequence.DefaultSeed,
		Scoring:  Scoring{Match: s.Match, Mismatch: s.Mismatch, Gap: s.Gap},
	}
}

// Load reads path over Default() and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes TOML text over Default() and validates the result.
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}

	return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(names, ", "))
}

// Validate checks ranges: tile_size ≥ 1, workers ≥ 0. Scoring values are free.
func (c Config) Validate() error {
	if c.TileSize < 1 {
		return fmt.Errorf("%w: tile_size=%d must be >= 1", ErrInvalid, c.TileSize)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers=%d must be >= 0", ErrInvalid, c.Workers)
	}

	return nil
}

// Scheme returns the scoring scheme.
func (c Config) Scheme() scoring.Scheme {
	return scoring.Scheme{Match: c.Scoring.Match, Mismatch: c.Scoring.Mismatch, Gap: c.Scoring.Gap}
}

// EffectiveWorkers resolves Workers=0 to GOMAXPROCS.
func (c Config) EffectiveWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}

	return runtime.GOMAXPROCS(0)
}

// SchedulerOptions converts the settings into wavefront options.
// The caller must have validated c.
func (c Config) SchedulerOptions(extra ...wavefront.Option) []wavefront.Option {
	opts := []wavefront.Option{
		wavefront.WithTileSize(c.TileSize),
		wavefront.WithWorkers(c.EffectiveWorkers()),
		wavefront.WithScheme(c.Scheme()),
	}
	if c.MemoryLimit > 0 {
		opts = append(opts, wavefront.WithMemoryLimit(c.MemoryLimit))
	}

	return append(opts, extra...)
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
