package scatter_test

import (
	"fmt"

	"github.com/katalvlaran/densefill/scatter"
)

// ExampleFill scatters three entries into a caller-owned 3×2 column-major buffer.
func ExampleFill() {
	out := make([]float64, 3*2)
	rows := []int32{0, 1, 2}
	cols := []int32{0, 0, 1}
	values := []float64{1.0, 2.0, 3.0}

	err := scatter.Fill(rows, cols, values, len(values), out, 3, 2, 2)
	fmt.Println(out, err)

	// Output:
	// [1 2 0 0 0 3] <nil>
}

// ExamplePlan shows how entries are split between workers.
func ExamplePlan() {
	p, _ := scatter.NewPlan(11, 3)
	fmt.Println(p)

	// Output:
	// entries=11 hint=3 workers=3 chunks=[0,3) [3,6) [6,11)
}

// ExampleToDense builds a dense matrix from an entry list.
func ExampleToDense() {
	e := scatter.NewEntries[int32](2)
	e.Append(0, 1, 5)
	e.Append(1, 0, 7)

	rows, cols := e.Dims()
	m, _ := scatter.ToDense(e, rows, cols, 4)
	fmt.Print(m)

	// Output:
	// [0, 5]
	// [7, 0]
}
