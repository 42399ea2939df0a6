package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edgentropy/adjacency"
	"github.com/katalvlaran/edgentropy/builder"
)

// requireSimple asserts the two structural invariants of every Matrix:
// symmetry and an empty diagonal.
func requireSimple(t *testing.T, m *adjacency.Matrix) {
	t.Helper()
	n := m.Len()
	for i := 0; i < n; i++ {
		require.False(t, m.At(i, i), "diagonal (%d,%d)", i, i)
		for j := i + 1; j < n; j++ {
			require.Equal(t, m.At(i, j), m.At(j, i), "asymmetric (%d,%d)", i, j)
		}
	}
}

// TestBuild_SymmetricZeroDiagonal runs the invariants over generated fixtures,
// including sizes that straddle a 64-bit word boundary.
func TestBuild_SymmetricZeroDiagonal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		cons []builder.Constructor
	}{
		{"Complete5", []builder.Constructor{builder.Complete(5)}},
		{"Cycle64", []builder.Constructor{builder.Cycle(64)}},
		{"Wheel65", []builder.Constructor{builder.Wheel(65)}},
		{"Random130", []builder.Constructor{builder.RandomSparse(130, 0.05)}},
		{"Mixed", []builder.Constructor{builder.Star(6), builder.Isolated(2), builder.TrianglePendant()}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, tc.cons...)
			require.NoError(t, err)
			m, err := adjacency.Build(g.Edges, g.N)
			require.NoError(t, err)
			require.Equal(t, g.N, m.Len())
			require.Equal(t, len(g.Edges), m.EdgeCount())
			requireSimple(t, m)
		})
	}
}

// TestBuild_Normalisation covers self-loops, reversed duplicates and directed input.
func TestBuild_Normalisation(t *testing.T) {
	t.Parallel()
	m, err := adjacency.Build([]adjacency.Edge{
		{U: 0, V: 1}, {U: 1, V: 0}, // duplicate in both orientations
		{U: 2, V: 2}, // self-loop is dropped
		{U: 3, V: 1}, // one direction only
	}, 4)
	require.NoError(t, err)
	requireSimple(t, m)

	require.Equal(t, 2, m.EdgeCount())
	require.True(t, m.At(1, 3))
	require.False(t, m.At(2, 2))
	require.Equal(t, 0, m.Degree(2))
	require.Equal(t, 2, m.Degree(1))
	require.Equal(t, []adjacency.Edge{{U: 0, V: 1}, {U: 1, V: 3}}, m.Edges())
}

// TestBuild_Errors checks validation sentinels.
func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		edges []adjacency.Edge
		n     int
		err   error
	}{
		{"NegativeN", nil, -1, adjacency.ErrInvalidNodeCount},
		{"EndpointTooLarge", []adjacency.Edge{{U: 0, V: 3}}, 3, adjacency.ErrInvalidEdge},
		{"NegativeEndpoint", []adjacency.Edge{{U: -1, V: 0}}, 3, adjacency.ErrInvalidEdge},
		{"EdgeOnEmptyGraph", []adjacency.Edge{{U: 0, V: 0}}, 0, adjacency.ErrInvalidEdge},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := adjacency.Build(tc.edges, tc.n)
			require.Nil(t, m)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestMatrix_Accessors covers neighbourhood queries across a word boundary.
func TestMatrix_Accessors(t *testing.T) {
	t.Parallel()
	m, err := adjacency.Build([]adjacency.Edge{
		{U: 0, V: 1}, {U: 0, V: 70}, {U: 1, V: 70}, {U: 1, V: 2}, {U: 70, V: 69},
	}, 71)
	require.NoError(t, err)

	require.Equal(t, []int{1, 70}, m.Neighbors(0))
	require.Equal(t, []int{0, 1, 69}, m.Neighbors(70))
	require.Nil(t, m.Neighbors(71))
	require.Equal(t, 0, m.Degree(-1))
	require.False(t, m.At(0, 71))

	// N(0)={1,70}, N(1)={0,2,70}, N(2)={1}
	require.Equal(t, 1, m.CommonNeighbors(0, 1))
	require.Equal(t, 1, m.CommonNeighbors(0, 2))
	require.Equal(t, 3, m.SymmetricDifference(0, 1)) // {0,1,2}: includes both endpoints
	require.Equal(t, "010\n101\n010\n", mustBuild(t, []adjacency.Edge{{U: 0, V: 1}, {U: 1, V: 2}}, 3).String())
}

func mustBuild(t *testing.T, edges []adjacency.Edge, n int) *adjacency.Matrix {
	t.Helper()
	m, err := adjacency.Build(edges, n)
	require.NoError(t, err)

	return m
}
