// Package scatter fills a dense column-major matrix from a coordinate list
// (COO: aligned row, column and value sequences) using several goroutines.
//
// The package provides:
//
//   - Fill, the kernel: validates at the boundary, partitions the entries
//     into contiguous chunks, writes each chunk on its own goroutine and
//     returns after all of them have finished.
//   - WorkerCount, Chunks and Plan, the partition policy as pure functions.
//   - Entries, a COO list, with FillDense and ToDense over matrix.Dense.
//
// Duplicate coordinates are not accumulated. When they fall into different
// chunks, which value survives depends on scheduling.
//
// Quick example:
//
//	buf := make([]float64, 3*2)
//	err := scatter.Fill([]int32{0, 1, 2}, []int32{0, 0, 1}, []float64{1, 2, 3}, 3,
//		buf, 3, 2, 2)
//	// buf == [1 2 0 0 0 3]
package scatter
