package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/edgentropy/adjacency"
)

// TestFromDense accepts triangular input and symmetrises it.
func TestFromDense(t *testing.T) {
	t.Parallel()
	d := mat.NewDense(4, 4, []float64{
		1, 1, 0, 0, // diagonal entry is dropped
		0, 0, 1, 0,
		1, 0, 0, 0.5, // lower-triangular (2,0) and weighted (2,3)
		0, 0, 0, 0,
	})
	m, err := adjacency.FromDense(d)
	require.NoError(t, err)
	requireSimple(t, m)
	require.Equal(t, []adjacency.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 2}, {U: 2, V: 3}}, m.Edges())

	_, err = adjacency.FromDense(mat.NewDense(2, 3, nil))
	require.ErrorIs(t, err, adjacency.ErrNonSquare)
	_, err = adjacency.FromDense(nil)
	require.ErrorIs(t, err, adjacency.ErrNilMatrix)
}

// TestToSymDense round-trips through gonum.
func TestToSymDense(t *testing.T) {
	t.Parallel()
	m := mustBuild(t, []adjacency.Edge{{U: 0, V: 1}, {U: 1, V: 2}}, 3)

	s := m.ToSymDense()
	require.Equal(t, 3, s.SymmetricDim())
	require.Equal(t, 1.0, s.At(2, 1))
	require.Equal(t, 0.0, s.At(0, 2))

	back, err := adjacency.FromDense(s)
	require.NoError(t, err)
	require.Equal(t, m.Edges(), back.Edges())

	require.Nil(t, mustBuild(t, nil, 0).ToSymDense())
}

// TestToGraph keeps isolated nodes and every edge.
func TestToGraph(t *testing.T) {
	t.Parallel()
	m := mustBuild(t, []adjacency.Edge{{U: 0, V: 1}, {U: 3, V: 4}}, 6)

	g := m.ToGraph()
	require.Equal(t, 6, g.Nodes().Len())
	require.True(t, g.HasEdgeBetween(1, 0))
	require.False(t, g.HasEdgeBetween(1, 3))
	require.Len(t, topo.ConnectedComponents(g), 4) // {0,1} {2} {3,4} {5}
}
