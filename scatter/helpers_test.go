// SPDX-License-Identifier: MIT
// Package scatter_test contains shared fixtures.
//
// Purpose:
//   - Deterministic random COO inputs with unique coordinates, so results do
//     not depend on which worker writes last.
//   - A sequential reference fill to compare the concurrent kernel against.

package scatter_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/densefill/matrix"
)

// cooFixture is one generated input.
type cooFixture struct {
	rows, cols []int32
	values     []float64
	outRows    int
	outCols    int
}

// uniqueCOO draws n distinct cells of an outRows×outCols matrix with
// non-zero values. Fails the test when n exceeds the cell count.
func uniqueCOO(tb testing.TB, seed int64, n, outRows, outCols int) cooFixture {
	tb.Helper()
	if n > outRows*outCols {
		tb.Fatalf("uniqueCOO: n=%d exceeds %dx%d cells", n, outRows, outCols)
	}
	rng := rand.New(rand.NewSource(seed))
	cells := rng.Perm(outRows * outCols)[:n]

	f := cooFixture{
		rows:    make([]int32, n),
		cols:    make([]int32, n),
		values:  make([]float64, n),
		outRows: outRows,
		outCols: outCols,
	}
	for i, cell := range cells {
		f.rows[i] = int32(cell % outRows)
		f.cols[i] = int32(cell / outRows)
		f.values[i] = float64(i+1) + rng.Float64()
	}

	return f
}

// filled returns a buffer of the fixture's shape with every cell set to v.
func (f cooFixture) filled(v float64) []float64 {
	buf := make([]float64, f.outRows*f.outCols)
	for i := range buf {
		buf[i] = v
	}

	return buf
}

// reference applies the entries one by one through Dense.Set on a copy of base.
func (f cooFixture) reference(tb testing.TB, base []float64) []float64 {
	tb.Helper()
	buf := append([]float64(nil), base...)
	m, err := matrix.NewDenseFrom(buf, f.outRows, f.outCols)
	if err != nil {
		tb.Fatalf("reference: %v", err)
	}
	for i := range f.values {
		if err = m.Set(int(f.rows[i]), int(f.cols[i]), f.values[i]); err != nil {
			tb.Fatalf("reference: entry %d: %v", i, err)
		}
	}

	return buf
}
