package adjacency_test

import (
	"fmt"

	"github.com/katalvlaran/edgentropy/adjacency"
)

// ExampleBuild shows that input is symmetrised and self-loops are dropped.
func ExampleBuild() {
	edges, _ := adjacency.Normalize([]adjacency.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 3}}, 1)
	m, err := adjacency.Build(edges, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(m)
	fmt.Println("edges:", m.EdgeCount(), "degree(1):", m.Degree(1))

	_, err = adjacency.Build([]adjacency.Edge{{U: 0, V: 5}}, 3)
	fmt.Println(err)

	// Output:
	// 010
	// 101
	// 010
	// edges: 2 degree(1): 2
	// Build: edge #0: ValidateEdge: (0,5) outside [0,3): adjacency: invalid edge
}
