package scoring_test

import (
	"testing"

	"github.com/katalvlaran/swtile/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultScheme verifies the documented default constants.
func TestDefaultScheme(t *testing.T) {
	s := scoring.DefaultScheme()
	assert.Equal(t, int32(2), s.Match)
	assert.Equal(t, int32(-1), s.Mismatch)
	assert.Equal(t, int32(-2), s.Gap)
	assert.Equal(t, "+2/-1/-2", s.String())
	require.NoError(t, s.Validate())
}

// TestValidate rejects non-positive match scores.
func TestValidate(t *testing.T) {
	for _, match := range []int32{0, -1} {
		s := scoring.Scheme{Match: match, Mismatch: -1, Gap: -1}
		assert.ErrorIs(t, s.Validate(), scoring.ErrInvalidScheme, "match=%d", match)
	}
	assert.NoError(t, scoring.Scheme{Match: 1, Mismatch: 5, Gap: 3}.Validate(), "mismatch/gap are unrestricted")
}

// TestCell covers each branch of the recurrence, including the zero floor.
func TestCell(t *testing.T) {
	s := scoring.DefaultScheme()

	tests := []struct {
		name           string
		a, b           byte
		diag, up, left int32
		want           int32
	}{
		{"match from zero", 'A', 'A', 0, 0, 0, 2},
		{"mismatch floors at zero", 'A', 'T', 0, 0, 0, 0},
		{"diagonal extension", 'G', 'G', 6, 0, 0, 8},
		{"gap from up wins", 'A', 'C', 1, 9, 0, 7},
		{"gap from left wins", 'A', 'C', 1, 0, 9, 7},
		{"mismatch keeps positive diagonal", 'A', 'C', 5, 0, 0, 4},
		{"all negative candidates", 'A', 'C', 0, 1, 1, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.Cell(tc.a, tc.b, tc.diag, tc.up, tc.left))
		})
	}
}

// TestCellNeverNegative sweeps predecessor values to confirm the zero floor.
func TestCellNeverNegative(t *testing.T) {
	s := scoring.Scheme{Match: 1, Mismatch: -7, Gap: -5}
	for diag := int32(0); diag < 8; diag++ {
		for up := int32(0); up < 8; up++ {
			for left := int32(0); left < 8; left++ {
				require.GreaterOrEqual(t, s.Cell('A', 'G', diag, up, left), int32(0))
			}
		}
	}
}
