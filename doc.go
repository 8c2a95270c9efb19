// Package densefill turns sparse coordinate lists into dense matrices,
// in parallel.
//
// What is densefill?
//
//	A small, pure-Go library plus a command-line host:
//		• matrix/  — column-major Dense over owned or borrowed []float64
//		• scatter/ — the concurrent COO → dense kernel (Fill), its partition
//		             policy (WorkerCount, Chunks, Plan) and the Entries list
//		• cooio/   — "row col value" triplet reader and dense writer
//		• config/  — YAML configuration for the host tool
//		• cmd/densefill — fill and bench commands
//
// Layout reminder: cell (r, c) of an R×C matrix lives at c*R + r.
//
// Quick example:
//
//	out := make([]float64, 3*2)
//	_ = scatter.Fill([]int32{0, 1, 2}, []int32{0, 0, 1}, []float64{1, 2, 3}, 3,
//		out, 3, 2, 2)
//	// out == [1 2 0 0 0 3]
//
//	go get github.com/katalvlaran/densefill
package densefill
