// SPDX-License-Identifier: MIT

// Package scatter - concurrent COO → dense scatter.
//
// Purpose:
//   - Validate everything at the boundary, then write with no checks in the
//     hot loop.
//   - Spawn one short-lived worker per chunk and join them all before
//     returning; nothing outlives the call.
//
// Concurrency:
//   - The output buffer is shared by all workers without locks. Chunks are
//     disjoint over the entry index space, not over the output: two entries
//     with the same (row, col) in different chunks race and the surviving
//     value is whichever write lands last. That is an accepted limitation;
//     callers needing a deterministic winner must deduplicate first.
//   - Within one worker, writes happen in ascending entry order.
//   - errgroup.Group.Wait is the join barrier; every write is visible to the
//     caller once Fill returns.

package scatter

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/densefill/matrix"
)

// Fill writes values[i] into out at cell (rows[i], cols[i]) for i in [0, n),
// where out is an outRows×outCols column-major buffer: cell (r, c) is
// out[c*outRows + r]. Cells not named by any entry keep their contents.
//
// Work is split by NewPlan: min(threadHint, max(1, n/2)) workers (further
// capped by options), each owning a contiguous chunk of entries. Fill blocks
// until every worker has finished.
//
// Errors (all returned before any write):
//   - ErrInvalidThreadHint, ErrNegativeCount;
//   - matrix.ErrInvalidDimensions, matrix.ErrShapeOverflow for the shape;
//   - matrix.ErrBufferTooShort when len(out) < outRows*outCols;
//   - ErrLengthMismatch when rows, cols or values is shorter than n;
//   - matrix.ErrOutOfRange for an index outside the shape;
//   - matrix.ErrNaNInf under WithValidateNaNInf.
//
// ErrOperationFailed is returned if a worker fails mid-flight; out is then
// partially written.
func Fill[I Index](rows, cols []I, values []float64, n int,
	out []float64, outRows, outCols, threadHint int, opts ...Option) error {
	o := gatherOptions(opts...)

	// Stage 1 (Validate): scalars, shape, lengths, then every entry.
	if threadHint < 1 {
		return ErrInvalidThreadHint
	}
	if n < 0 {
		return ErrNegativeCount
	}
	size, err := matrix.ShapeLen(outRows, outCols)
	if err != nil {
		return fmt.Errorf("scatter: shape %dx%d: %w", outRows, outCols, err)
	}
	if err = matrix.ValidateBufferLen(out, size); err != nil {
		return fmt.Errorf("scatter: out has %d cells, need %d: %w", len(out), size, err)
	}
	if err = validateLens(len(rows), len(cols), len(values), n); err != nil {
		return err
	}
	if err = validateEntries(rows, cols, values, n, outRows, outCols, o); err != nil {
		return err
	}

	// Stage 2 (Prepare): resolve the partition.
	plan := newPlan(n, threadHint, o)

	// Stage 3 (Execute): one worker per chunk, join, report.
	return plan.run(func(r Range) {
		scatterRange(rows, cols, values, out, outRows, r)
	})
}

// FillDense fills dst from e. Equivalent to Fill over e's sequences and
// dst's backing buffer.
//
// Errors: ErrNilEntries, matrix.ErrNilMatrix, plus everything Fill returns.
func FillDense[I Index](e *Entries[I], dst *matrix.Dense, threadHint int, opts ...Option) error {
	if e == nil {
		return ErrNilEntries
	}
	if err := matrix.ValidateNotNil(dst); err != nil {
		return err
	}

	return Fill(e.rows, e.cols, e.values, e.Len(), dst.Data(), dst.Rows(), dst.Cols(), threadHint, opts...)
}

// ToDense allocates a zeroed rows×cols column-major matrix and fills it from e.
// Zero-sized shapes are legal when e is empty.
func ToDense[I Index](e *Entries[I], rows, cols, threadHint int, opts ...Option) (*matrix.Dense, error) {
	if e == nil {
		return nil, ErrNilEntries
	}
	size, err := matrix.ShapeLen(rows, cols)
	if err != nil {
		return nil, err
	}
	dst, err := matrix.NewDenseFrom(make([]float64, size), rows, cols)
	if err != nil {
		return nil, err
	}
	if err = FillDense(e, dst, threadHint, opts...); err != nil {
		return nil, err
	}

	return dst, nil
}

// validateLens checks that each sequence covers [0, n).
func validateLens(rows, cols, values, n int) error {
	switch {
	case rows < n:
		return fmt.Errorf("scatter: rows has %d entries, n=%d: %w", rows, n, ErrLengthMismatch)
	case cols < n:
		return fmt.Errorf("scatter: cols has %d entries, n=%d: %w", cols, n, ErrLengthMismatch)
	case values < n:
		return fmt.Errorf("scatter: values has %d entries, n=%d: %w", values, n, ErrLengthMismatch)
	}

	return nil
}

// scatterRange is the per-worker loop. Inputs were validated by Fill, so the
// only checks left are the compiler's slice bounds checks.
func scatterRange[I Index](rows, cols []I, values, out []float64, outRows int, r Range) {
	rs := rows[r.Start:r.Stop]
	cs := cols[r.Start:r.Stop]
	vs := values[r.Start:r.Stop]
	for i, v := range vs {
		out[matrix.Offset(int64(rs[i]), int64(cs[i]), outRows)] = v
	}
}

// run executes body once per chunk and waits for all of them.
// A single chunk runs on the calling goroutine.
func (p Plan) run(body func(Range)) error {
	if len(p.Chunks) == 1 {
		return runChunk(0, p.Chunks[0], body)
	}

	var g errgroup.Group
	for w, r := range p.Chunks {
		w, r := w, r
		g.Go(func() error { return runChunk(w, r, body) })
	}

	return g.Wait()
}

// runChunk turns a panic inside a worker into ErrOperationFailed so the
// caller sees one failed call instead of a crashed process.
func runChunk(worker int, r Range, body func(Range)) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("scatter: worker %d on %s: %v: %w", worker, r, rec, ErrOperationFailed)
		}
	}()
	body(r)

	return nil
}
