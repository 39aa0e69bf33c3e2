package sequence

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// DNA is the alphabet of generated sequences.
const DNA = "ACGT"

// DefaultSeed is used by the CLI when no seed is given.
const DefaultSeed uint64 = 42

var (
	// ErrNegativeLength indicates a negative requested length.
	ErrNegativeLength = errors.New("sequence: length must be >= 0")

	// ErrInvalidSymbol indicates a symbol outside the expected alphabet.
	ErrInvalidSymbol = errors.New("sequence: symbol not in alphabet")
)

// Generator draws symbols uniformly from an alphabet using a seeded PCG stream.
// Not safe for concurrent use.
type Generator struct {
	rng      *rand.Rand
	alphabet string
}

// NewGenerator returns a DNA generator for seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		alphabet: DNA,
	}
}

// Next returns the next n symbols of the stream.
func (g *Generator) Next(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("Next(%d): %w", n, ErrNegativeLength)
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = g.alphabet[g.rng.IntN(len(g.alphabet))]
	}

	return out, nil
}

// Pair returns two independent sequences of length n drawn consecutively
// from one stream seeded with seed.
func Pair(n int, seed uint64) (a, b []byte, err error) {
	g := NewGenerator(seed)
	if a, err = g.Next(n); err != nil {
		return nil, nil, err
	}
	if b, err = g.Next(n); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// Validate returns ErrInvalidSymbol (wrapped with the offending position) for
// the first byte of seq not present in alphabet.
func Validate(seq []byte, alphabet string) error {
	var allowed [256]bool
	for i := 0; i < len(alphabet); i++ {
		allowed[alphabet[i]] = true
	}
	for pos, c := range seq {
		if !allowed[c] {
			return fmt.Errorf("position %d %q: %w", pos, c, ErrInvalidSymbol)
		}
	}

	return nil
}
