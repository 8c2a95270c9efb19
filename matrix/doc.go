// Package matrix provides the dense column-major storage targeted by the
// scatter kernel.
//
// The matrix package provides:
//
//   - Dense, a column-major matrix over a flat []float64 where cell (r, c)
//     lives at offset c*rows + r (the layout numeric hosts such as R or
//     Fortran-style BLAS expect).
//   - NewDenseFrom, a borrowing constructor: the Dense wraps a caller-owned
//     buffer without copying, after asserting its length once.
//   - Offset, the 64-bit linear offset formula shared with the kernel so that
//     shapes beyond 2^31 cells address correctly even with int32 indices.
//   - Validators for shapes and buffer lengths, and the sentinel errors used
//     across the module.
//
// See the scatter package for filling a Dense from coordinate lists.
package matrix
