package sequence_test

import (
	"testing"

	"github.com/katalvlaran/swtile/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPairDeterministic verifies identical output for identical seeds.
func TestPairDeterministic(t *testing.T) {
	a1, b1, err := sequence.Pair(500, 42)
	require.NoError(t, err)
	a2, b2, err := sequence.Pair(500, 42)
	require.NoError(t, err)

	require.Equal(t, a1, a2)
	require.Equal(t, b1, b2)
	require.NotEqual(t, a1, b1, "the two sequences of a pair must be independent draws")
}

// TestPairSeedSensitivity verifies different seeds give different sequences.
func TestPairSeedSensitivity(t *testing.T) {
	a1, _, err := sequence.Pair(200, 1)
	require.NoError(t, err)
	a2, _, err := sequence.Pair(200, 2)
	require.NoError(t, err)
	require.NotEqual(t, a1, a2)
}

// TestPairAlphabet checks every generated symbol is in {A,C,G,T} and that all
// four appear in a long sequence.
func TestPairAlphabet(t *testing.T) {
	a, b, err := sequence.Pair(1000, sequence.DefaultSeed)
	require.NoError(t, err)
	require.Len(t, a, 1000)
	require.Len(t, b, 1000)
	require.NoError(t, sequence.Validate(a, sequence.DNA))
	require.NoError(t, sequence.Validate(b, sequence.DNA))

	seen := map[byte]bool{}
	for _, c := range a {
		seen[c] = true
	}
	assert.Len(t, seen, 4)
}

// TestPairZeroAndNegative covers the edge lengths.
func TestPairZeroAndNegative(t *testing.T) {
	a, b, err := sequence.Pair(0, 7)
	require.NoError(t, err)
	require.Empty(t, a)
	require.Empty(t, b)

	_, _, err = sequence.Pair(-1, 7)
	require.ErrorIs(t, err, sequence.ErrNegativeLength)
}

// TestValidate reports the first offending symbol.
func TestValidate(t *testing.T) {
	require.NoError(t, sequence.Validate([]byte("ACGT"), sequence.DNA))
	require.NoError(t, sequence.Validate(nil, sequence.DNA))

	err := sequence.Validate([]byte("ACXT"), sequence.DNA)
	require.ErrorIs(t, err, sequence.ErrInvalidSymbol)
	assert.Contains(t, err.Error(), "position 2")
}
