package scoring

import (
	"errors"
	"fmt"
)

// Default scoring constants.
const (
	DefaultMatch    int32 = 2
	DefaultMismatch int32 = -1
	DefaultGap      int32 = -2
)

// ErrInvalidScheme marks a scheme whose match score is not positive. The
// recurrence is still defined for it, but identical symbols never raise a score.
var ErrInvalidScheme = errors.New("scoring: match score is not positive")

// Scheme is a linear match/mismatch/gap scoring scheme.
//
// Example:
//
//	s := scoring.Scheme{Match: 3, Mismatch: -3, Gap: -2}
//	if err := s.Validate(); err != nil {
//	  // handle ErrInvalidScheme
//	}
type Scheme struct {
	Match    int32
	Mismatch int32
	Gap      int32
}

// DefaultScheme returns the +2/-1/-2 scheme.
func DefaultScheme() Scheme {
	return Scheme{
		Match:    DefaultMatch,
		Mismatch: DefaultMismatch,
		Gap:      DefaultGap,
	}
}

// Validate reports ErrInvalidScheme when Match <= 0.
// Mismatch and Gap are not restricted. Cell and the evaluators in wavefront
// accept any scheme; Validate is for callers that want to flag odd settings.
func (s Scheme) Validate() error {
	if s.Match <= 0 {
		return fmt.Errorf("match=%d: %w", s.Match, ErrInvalidScheme)
	}

	return nil
}

// Substitution returns Match when a == b and Mismatch otherwise.
func (s Scheme) Substitution(a, b byte) int32 {
	if a == b {
		return s.Match
	}

	return s.Mismatch
}

// Cell returns the score of a cell from its symbol pair and its diagonal,
// up and left predecessors, floored at zero.
func (s Scheme) Cell(a, b byte, diag, up, left int32) int32 {
	best := diag + s.Substitution(a, b)
	if v := up + s.Gap; v > best {
		best = v
	}
	if v := left + s.Gap; v > best {
		best = v
	}
	if best < 0 {
		return 0
	}

	return best
}

// String renders the scheme as "match/mismatch/gap".
func (s Scheme) String() string {
	return fmt.Sprintf("%+d/%+d/%+d", s.Match, s.Mismatch, s.Gap)
}
