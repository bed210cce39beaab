package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/perron/matrix"
)

// ExampleNewDenseFrom builds a matrix from row literals and prints it.
func ExampleNewDenseFrom() {
	m, err := matrix.NewDenseFrom([][]float64{
		{1, 1, 2},
		{2, 1, 3},
		{2, 3, 5},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(m)
	sums, _ := matrix.RowSums(m)
	fmt.Println("row sums:", sums)
	// Output:
	// [1, 1, 2]
	// [2, 1, 3]
	// [2, 3, 5]
	// row sums: [4 6 10]
}

// ExampleFlatten shows the row-major copy handed to the kernels.
func ExampleFlatten() {
	I, _ := matrix.NewIdentity(2)
	flat, _ := matrix.Flatten(I)
	fmt.Println(flat)
	// Output:
	// [1 0 0 1]
}
