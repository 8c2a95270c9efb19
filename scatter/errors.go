// SPDX-License-Identifier: MIT
// Package scatter: sentinel error set.
// Boundary checks return these (or the matrix sentinels for shape and index
// problems) before any worker starts. Callers match via errors.Is.

package scatter

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidThreadHint is returned when threadHint < 1.
	ErrInvalidThreadHint = errors.New("scatter: thread hint must be >= 1")

	// ErrNegativeCount is returned when the entry count n is negative.
	ErrNegativeCount = errors.New("scatter: entry count must be >= 0")

	// ErrLengthMismatch is returned when a row, column or value sequence holds
	// fewer than n elements, or when Entries are built from unequal sequences.
	ErrLengthMismatch = errors.New("scatter: sequence length mismatch")

	// ErrNilEntries is returned when a nil *Entries is passed in.
	ErrNilEntries = errors.New("scatter: nil entries")

	// ErrOperationFailed is returned when a worker could not complete its
	// chunk. The output buffer is then in an unspecified, partially written
	// state; the call as a whole failed.
	ErrOperationFailed = errors.New("scatter: operation failed")
)

// fillErrorf wraps err with the entry index at which a boundary check failed.
func fillErrorf(entry int, err error) error {
	return fmt.Errorf("scatter: entry %d: %w", entry, err)
}
