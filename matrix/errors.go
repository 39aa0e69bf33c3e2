// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Public methods return these sentinels (possibly wrapped with call-site context);
// callers match them with errors.Is. Nothing in this package panics on
// user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation indicates the score matrix could not be allocated at the
	// requested size. The concrete error is *AllocationError.
	ErrAllocation = errors.New("matrix: cannot allocate score matrix")

	// ErrOutOfRange indicates that a row or column index is outside the matrix.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBoundaryCell indicates a write to row 0 or column 0, which are fixed at zero.
	ErrBoundaryCell = errors.New("matrix: boundary cells are read-only")

	// ErrNilMatrix indicates that a nil *ScoreMatrix was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// AllocationError describes a failed Allocate call.
//   - Rows, Cols: requested shape (len1+1, len2+1); may be negative for invalid input.
//   - Requested: bytes the buffer would need (0 when the size overflowed).
//   - Available: byte ceiling that was applied (0 when unknown).
//   - Cause: underlying runtime error, if the allocation itself panicked.
type AllocationError struct {
	Rows, Cols int
	Requested  uint64
	Available  uint64
	Reason     string
	Cause      error
}

// Error implements error.
func (e *AllocationError) Error() string {
	msg := fmt.Sprintf("%s: %dx%d: %s", ErrAllocation.Error(), e.Rows, e.Cols, e.Reason)
	if e.Requested > 0 {
		msg += fmt.Sprintf(" (requested %d bytes", e.Requested)
		if e.Available > 0 {
			msg += fmt.Sprintf(", available %d bytes", e.Available)
		}
		msg += ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

// Is makes errors.Is(err, ErrAllocation) succeed.
func (e *AllocationError) Is(target error) bool { return target == ErrAllocation }

// Unwrap returns the runtime cause, if any.
func (e *AllocationError) Unwrap() error { return e.Cause }

// matrixErrorf wraps an error with the method tag and coordinates.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("ScoreMatrix.%s(%d,%d): %w", method, row, col, err)
}
