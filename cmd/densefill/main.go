// Command densefill fills dense column-major matrices from coordinate
// triplets and benchmarks the concurrent scatter kernel.
package main

import "github.com/katalvlaran/densefill/cmd/densefill/cmd"

func main() {
	cmd.Execute()
}
