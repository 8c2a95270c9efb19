// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape and buffer checks shared by
//    the Dense constructors and the scatter boundary.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    wrap again uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ShapeLen returns rows*cols after validating the shape.
//
// Inputs: non-negative rows and cols (zero is legal).
// Errors: ErrInvalidDimensions on negatives, ErrShapeOverflow when the
// product does not fit into int.
// Complexity: O(1).
func ShapeLen(rows, cols int) (int, error) {
	if rows < 0 || cols < 0 {
		return 0, validatorErrorf("ShapeLen", ErrInvalidDimensions)
	}
	if rows == 0 || cols == 0 {
		return 0, nil
	}
	// Division-based check; the product itself may already have wrapped.
	if rows > math.MaxInt/cols {
		return 0, validatorErrorf("ShapeLen", ErrShapeOverflow)
	}

	return rows * cols, nil
}

// ValidateBufferLen ensures buf can hold at least size elements.
//
// Errors: ErrBufferTooShort when len(buf) < size.
// Complexity: O(1).
func ValidateBufferLen(buf []float64, size int) error {
	if len(buf) < size {
		return validatorErrorf("ValidateBufferLen", ErrBufferTooShort)
	}

	return nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// A typed nil *Dense stored in the interface is reported as nil too.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateIndex ensures 0 <= row < rows and 0 <= col < cols.
//
// Indices are taken as int64 so callers with narrower index types convert
// once without risking truncation.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func ValidateIndex(row, col int64, rows, cols int) error {
	if row < 0 || row >= int64(rows) {
		return validatorErrorf("ValidateIndex: Row", ErrOutOfRange)
	}
	if col < 0 || col >= int64(cols) {
		return validatorErrorf("ValidateIndex: Column", ErrOutOfRange)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf.
//
// Errors: ErrNaNInf.
// Complexity: O(1).
func ValidateFinite(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return validatorErrorf("ValidateFinite", ErrNaNInf)
	}

	return nil
}
