package bellmanford_test

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/bellmanford"
)

// ExampleBellmanFord_PathTo relaxes a three-edge triangle where the
// two-hop route beats the direct edge.
func ExampleBellmanFord_PathTo() {
	const n = 3
	inf := bellmanford.Inf

	// 0→1=1, 1→2=2, 0→2=5.
	matrix := []int64{
		inf, 1, 5,
		inf, inf, 2,
		inf, inf, inf,
	}

	bf, err := bellmanford.New(matrix, n)
	if err != nil {
		fmt.Println("new:", err)
		return
	}
	if _, err = bf.Run(0); err != nil {
		fmt.Println("run:", err)
		return
	}

	dist, _ := bf.Distance(2)
	path, _ := bf.PathTo(2)
	fmt.Println("dist:", dist)
	fmt.Println("path:", path)
	// Output:
	// dist: 3
	// path: [1 2]
}

// ExampleBellmanFord_String renders the distance and predecessor tables,
// including the unreachable fourth vertex.
func ExampleBellmanFord_String() {
	const n = 4
	inf := bellmanford.Inf

	matrix := []int64{
		inf, 1, 5, inf,
		inf, inf, 2, inf,
		inf, inf, inf, inf,
		inf, inf, inf, inf,
	}

	bf, _ := bellmanford.New(matrix, n)
	if _, err := bf.Run(0); err != nil {
		fmt.Println("run:", err)
		return
	}

	fmt.Println(bf)
	// Output:
	// [0,1,3,inf] [null,0,1,null]
}

// ExampleBellmanFord_Run_negativeCycle shows the feasibility flag on a
// graph where a reachable loop has negative total weight.
func ExampleBellmanFord_Run_negativeCycle() {
	const n = 3
	inf := bellmanford.Inf

	// 0→1=1, 1→2=-2, 2→1=1: the 1↔2 loop sums to -1.
	matrix := []int64{
		inf, 1, inf,
		inf, inf, -2,
		inf, 1, inf,
	}

	bf, _ := bellmanford.New(matrix, n)
	ok, err := bf.Run(0)
	if err != nil {
		fmt.Println("run:", err)
		return
	}
	fmt.Println("feasible:", ok)
	// Output:
	// feasible: false
}
