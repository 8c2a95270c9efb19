// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (column-major) & safe accessors.
//
// Purpose:
//   - Provide a column-major buffer with the explicit index formula j*rows + i.
//   - Borrow caller-owned buffers without copying (NewDenseFrom) and assert
//     their length once, at construction.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewDenseFrom: O(1); At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"           // method tag used in error wrappers
	ctxSet    = "Set"          // method tag used in error wrappers
	ctxBorrow = "NewDenseFrom" // ctor tag for the borrowing constructor
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/...)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrOutOfRange)
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Offset returns the column-major linear offset of (row, col) in a matrix
// with the given number of rows: col*rows + row.
//
// The product is computed in int64 so that shapes with more than 2^31 cells
// address correctly even when indices arrive as int32. No bounds check.
func Offset(row, col int64, rows int) int64 {
	return col*int64(rows) + row
}

// Dense is a concrete column-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in column-major order (offset = j*r + i).
//   - borrowed marks a Dense that wraps caller-owned storage.
type Dense struct {
	r, c     int       // row and column counts (>=0)
	data     []float64 // contiguous column-major storage (len == r*c)
	borrowed bool      // storage owned by the caller (NewDenseFrom)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using column-major storage.
// MAIN DESCRIPTION:
//   - Public allocating constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and that rows*cols fits into int.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrShapeOverflow.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	size, err := ShapeLen(rows, cols)
	if err != nil {
		return nil, err
	}

	return &Dense{r: rows, c: cols, data: make([]float64, size)}, nil
}

// NewDenseFrom wraps buf as an r×c column-major matrix without copying.
// MAIN DESCRIPTION:
//   - Borrowing constructor for caller-owned buffers (the host allocates and
//     frees; the Dense only reads and writes in place).
//
// Implementation:
//   - Stage 1: validate the shape (negative dims, overflow).
//   - Stage 2: assert len(buf) >= rows*cols.
//   - Stage 3: keep buf[:rows*cols:rows*cols] so the view cannot grow into
//     caller memory past the matrix.
//
// Behavior highlights:
//   - Zero-sized shapes (0×k, k×0) are legal and borrow an empty window.
//   - Writes through the Dense are visible in buf and vice versa.
//
// Errors:
//   - ErrInvalidDimensions, ErrShapeOverflow, ErrBufferTooShort.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewDenseFrom(buf []float64, rows, cols int) (*Dense, error) {
	size, err := ShapeLen(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxBorrow, rows, cols, err)
	}
	if err = ValidateBufferLen(buf, size); err != nil {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxBorrow, rows, cols, err)
	}

	return &Dense{r: rows, c: cols, data: buf[:size:size], borrowed: true}, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Borrowed reports whether the storage belongs to the caller.
func (m *Dense) Borrowed() bool { return m.borrowed }

// Data exposes the column-major backing slice (len == Rows()*Cols()).
// Hot kernels write through it directly; mutations are visible to the matrix.
func (m *Dense) Data() []float64 { return m.data }

// indexOf computes the column-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Column-major offset: j*r + i.
	return int(Offset(int64(row), int64(col), m.r)), nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with its own (owned) buffer.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String renders the matrix row by row for diagnostics.
// Traversal is row-major over column-major storage, so each read strides by r.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[j*m.r+i]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
