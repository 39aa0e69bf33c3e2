// SPDX-License-Identifier: MIT

// Package matrix - ScoreMatrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose the flat buffer (Data, Offset) for hot kernels that prove bounds once per tile.
//
// AI-Hints:
//   - Kernels should hoist i*Stride() out of the column loop and index Data() directly.
//   - At/Set are for tests, diagnostics and cold paths.

package matrix

import (
	"math"
	"runtime"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// cellBytes is the size of one int32 cell.
const cellBytes = 4

// ScoreMatrix is the (len1+1)×(len2+1) Smith-Waterman table.
//   - r,c hold dimensions (rows = len1+1, cols = len2+1, both ≥ 1).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type ScoreMatrix struct {
	r, c int
	data []int32
}

// Allocate creates a zero-initialized score matrix for sequences of length
// len1 and len2.
// MAIN DESCRIPTION:
//   - Single contiguous allocation of (len1+1)*(len2+1) int32 cells.
//
// Implementation:
//   - Stage 1: reject negative lengths and rows*cols overflow.
//   - Stage 2: compare requested bytes with the memory ceiling
//     (WithMemoryLimit, else runtime limit / physical memory).
//   - Stage 3: allocate; a runtime panic from make is converted to an error.
//
// Errors:
//   - *AllocationError (errors.Is(err, ErrAllocation)) on every failure above.
//
// Complexity:
//   - Time O(r*c) zeroing by the runtime, Space O(r*c).
func Allocate(len1, len2 int, opts ...Option) (*ScoreMatrix, error) {
	o := gatherOptions(opts...)
	rows, cols := len1+1, len2+1

	if len1 < 0 || len2 < 0 {
		return nil, &AllocationError{Rows: rows, Cols: cols, Reason: "negative sequence length"}
	}
	// rows ≥ 1 here, so the division is safe.
	if cols > math.MaxInt/rows {
		return nil, &AllocationError{Rows: rows, Cols: cols, Reason: "cell count overflows int"}
	}
	cells := rows * cols
	requested := uint64(cells) * cellBytes

	limit := o.memoryLimit
	if limit == 0 {
		limit = availableMemory()
	}
	if limit > 0 && requested > limit {
		return nil, &AllocationError{
			Rows: rows, Cols: cols,
			Requested: requested, Available: limit,
			Reason: "exceeds available memory",
		}
	}

	buf, err := makeCells(cells)
	if err != nil {
		return nil, &AllocationError{
			Rows: rows, Cols: cols,
			Requested: requested, Available: limit,
			Reason: "runtime allocation failed", Cause: err,
		}
	}

	return &ScoreMatrix{r: rows, c: cols, data: buf}, nil
}

// makeCells converts a makeslice panic into an error.
// Fatal out-of-memory conditions are not recoverable and still abort the process.
func makeCells(n int) (buf []int32, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			re, ok := rec.(runtime.Error)
			if !ok {
				panic(rec)
			}
			buf, err = nil, re
		}
	}()

	return make([]int32, n), nil
}

// Rows returns len1+1.
func (m *ScoreMatrix) Rows() int { return m.r }

// Cols returns len2+1.
func (m *ScoreMatrix) Cols() int { return m.c }

// Shape packs Rows() and Cols().
func (m *ScoreMatrix) Shape() (rows, cols int) { return m.r, m.c }

// Stride is the distance between vertically adjacent cells (== Cols()).
func (m *ScoreMatrix) Stride() int { return m.c }

// Len returns the number of cells.
func (m *ScoreMatrix) Len() int { return len(m.data) }

// Bytes returns the buffer size in bytes.
func (m *ScoreMatrix) Bytes() uint64 { return uint64(len(m.data)) * cellBytes }

// Data exposes the flat buffer. Writers must keep row 0 and column 0 at zero.
func (m *ScoreMatrix) Data() []int32 { return m.data }

// Offset returns i*Stride()+j without bounds checks.
func (m *ScoreMatrix) Offset(i, j int) int { return i*m.c + j }

// indexOf bounds-checks (row,col) and returns the flat offset or ErrOutOfRange.
func (m *ScoreMatrix) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
// Complexity: O(1).
func (m *ScoreMatrix) At(row, col int) (int32, error) {
	if m == nil {
		return 0, matrixErrorf(ctxAt, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, matrixErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors:
//   - ErrOutOfRange for invalid indices.
//   - ErrBoundaryCell for row 0 or column 0.
//
// Complexity: O(1).
func (m *ScoreMatrix) Set(row, col int, v int32) error {
	if m == nil {
		return matrixErrorf(ctxSet, row, col, ErrNilMatrix)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf(ctxSet, row, col, err)
	}
	if row == 0 || col == 0 {
		return matrixErrorf(ctxSet, row, col, ErrBoundaryCell)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy.
// Complexity: O(r*c).
func (m *ScoreMatrix) Clone() *ScoreMatrix {
	cp := make([]int32, len(m.data))
	copy(cp, m.data)

	return &ScoreMatrix{r: m.r, c: m.c, data: cp}
}

// Equal reports whether m and o have the same shape and cells.
func (m *ScoreMatrix) Equal(o *ScoreMatrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k, v := range m.data {
		if o.data[k] != v {
			return false
		}
	}

	return true
}

// Max returns the largest cell value. Zero for an all-boundary matrix.
func (m *ScoreMatrix) Max() int32 {
	var best int32
	for _, v := range m.data {
		if v > best {
			best = v
		}
	}

	return best
}

// String prints one bracketed row per line, e.g. "[0, 0]\n[0, 2]\n".
func (m *ScoreMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		row := m.data[i*m.c : (i+1)*m.c]
		for j, v := range row {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatInt(int64(v), 10))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
