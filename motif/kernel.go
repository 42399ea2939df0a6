package motif

import "github.com/katalvlaran/edgentropy/adjacency"

// shapeFunc computes the Shape of the pair {i, j}, i ≠ j.
type shapeFunc func(adj *adjacency.Matrix, i, j int) Shape

// kernelFunc resolves a Kernel to its implementation.
func kernelFunc(k Kernel) shapeFunc {
	if k == KernelScan {
		return scanShape
	}

	return bitsetShape
}

// bitsetShape derives the Shape from two popcounts over the bitset rows.
// When i and j are adjacent, N(i)ΔN(j) contains i and j themselves, which
// are removed from Exclusive.
// Complexity: O(N/64).
func bitsetShape(adj *adjacency.Matrix, i, j int) Shape {
	s := Shape{
		Adjacent: adj.At(i, j),
		Common:   adj.CommonNeighbors(i, j),
		DegI:     adj.Degree(i),
		DegJ:     adj.Degree(j),
	}
	if s.Adjacent {
		s.Exclusive = adj.SymmetricDifference(i, j) - 2
	} else {
		s.Exclusive = adj.SymmetricDifference(i, j)
	}

	return s
}

// scanShape is the reference kernel: iterate every third node k and test
// adj[i][k], adj[j][k].
// Complexity: O(N).
func scanShape(adj *adjacency.Matrix, i, j int) Shape {
	s := Shape{
		Adjacent: adj.At(i, j),
		DegI:     adj.Degree(i),
		DegJ:     adj.Degree(j),
	}
	n := adj.Len()
	for k := 0; k < n; k++ {
		if k == i || k == j {
			continue
		}
		ik, jk := adj.At(i, k), adj.At(j, k)
		switch {
		case ik && jk:
			s.Common++
		case ik || jk:
			s.Exclusive++
		}
	}

	return s
}
