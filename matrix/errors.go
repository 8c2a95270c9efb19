// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the scatter kernel. Callers match them via errors.Is.
// No public method panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency. Detection
// sites wrap with coordinates (denseErrorf / validatorErrorf); callers still
// match the sentinel with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape (negative dims, overflow) -> buffer length -> index -> NaN/Inf.

var (
	// ErrInvalidDimensions indicates that requested dimensions are negative
	// (or non-positive for the allocating constructor NewDense).
	ErrInvalidDimensions = errors.New("matrix: invalid dimensions")

	// ErrShapeOverflow indicates that rows*cols does not fit into int, so no
	// buffer of that shape can be addressed.
	ErrShapeOverflow = errors.New("matrix: rows*cols overflows int")

	// ErrOutOfRange indicates that a row or column index is outside the shape.
	// At/Set and the scatter boundary checks return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBufferTooShort indicates that a borrowed buffer holds fewer than
	// rows*cols elements.
	ErrBufferTooShort = errors.New("matrix: buffer shorter than rows*cols")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
