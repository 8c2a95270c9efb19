// SPDX-License-Identifier: MIT

package scatter

import (
	"fmt"

	"github.com/katalvlaran/densefill/matrix"
)

// Index is the set of integer types accepted for row and column indices.
// int32 matches what numeric hosts hand over; offsets are always computed
// in int64 regardless.
type Index interface {
	~int | ~int32 | ~int64
}

// Entry is one materialized coordinate triple.
type Entry[I Index] struct {
	Row, Col I
	Value    float64
}

// Entries is a coordinate list (COO) stored as three aligned slices.
// Entry i is (rows[i], cols[i], values[i]).
//
// Entries is not safe for concurrent mutation; concurrent reads (including
// Fill) are fine.
type Entries[I Index] struct {
	rows, cols []I
	values     []float64
}

// NewEntries returns an empty list with room for capacity entries.
func NewEntries[I Index](capacity int) *Entries[I] {
	capacity = max(capacity, 0)

	return &Entries[I]{
		rows:   make([]I, 0, capacity),
		cols:   make([]I, 0, capacity),
		values: make([]float64, 0, capacity),
	}
}

// EntriesFrom wraps existing aligned sequences without copying.
//
// Errors: ErrLengthMismatch unless all three have the same length.
func EntriesFrom[I Index](rows, cols []I, values []float64) (*Entries[I], error) {
	if len(rows) != len(cols) || len(rows) != len(values) {
		return nil, fmt.Errorf("EntriesFrom(%d,%d,%d): %w", len(rows), len(cols), len(values), ErrLengthMismatch)
	}

	return &Entries[I]{rows: rows, cols: cols, values: values}, nil
}

// Append adds the triple (row, col, v). Indices are checked only when the
// list is validated or filled.
func (e *Entries[I]) Append(row, col I, v float64) {
	e.rows = append(e.rows, row)
	e.cols = append(e.cols, col)
	e.values = append(e.values, v)
}

// Len returns the number of entries.
func (e *Entries[I]) Len() int { return len(e.values) }

// At returns entry i or ErrOutOfRange.
func (e *Entries[I]) At(i int) (Entry[I], error) {
	if i < 0 || i >= e.Len() {
		return Entry[I]{}, fmt.Errorf("Entries.At(%d): %w", i, matrix.ErrOutOfRange)
	}

	return Entry[I]{Row: e.rows[i], Col: e.cols[i], Value: e.values[i]}, nil
}

// Dims returns the smallest shape containing every entry: (max row + 1,
// max col + 1). An empty list yields (0, 0). Negative indices do not
// contribute; Validate reports them.
func (e *Entries[I]) Dims() (rows, cols int) {
	for i := range e.values {
		rows = max(rows, int(e.rows[i])+1)
		cols = max(cols, int(e.cols[i])+1)
	}

	return rows, cols
}

// Validate checks every entry against an outRows×outCols shape, the same
// check Fill runs before spawning workers.
//
// Errors: ErrOutOfRange (wrapped with the entry index), or matrix.ErrNaNInf
// when WithValidateNaNInf is given.
func (e *Entries[I]) Validate(outRows, outCols int, opts ...Option) error {
	return validateEntries(e.rows, e.cols, e.values, e.Len(), outRows, outCols, gatherOptions(opts...))
}

// validateEntries is the per-entry boundary pass. Sequential and
// allocation-free; it stops at the first bad entry.
func validateEntries[I Index](rows, cols []I, values []float64, n, outRows, outCols int, o Options) error {
	var err error
	for i := 0; i < n; i++ {
		if err = matrix.ValidateIndex(int64(rows[i]), int64(cols[i]), outRows, outCols); err != nil {
			return fillErrorf(i, err)
		}
		if o.validateNaNInf {
			if err = matrix.ValidateFinite(values[i]); err != nil {
				return fillErrorf(i, err)
			}
		}
	}

	return nil
}
