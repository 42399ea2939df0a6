package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edgentropy/adjacency"
)

// TestNormalize covers both bases and the boundary errors.
func TestNormalize(t *testing.T) {
	t.Parallel()
	in := []adjacency.Edge{{U: 1, V: 2}, {U: 3, V: 1}}

	out, err := adjacency.Normalize(in, 1)
	require.NoError(t, err)
	require.Equal(t, []adjacency.Edge{{U: 0, V: 1}, {U: 2, V: 0}}, out)
	require.Equal(t, adjacency.Edge{U: 1, V: 2}, in[0], "input must stay untouched")

	out, err = adjacency.Normalize(in, 0)
	require.NoError(t, err)
	require.Equal(t, in, out)

	_, err = adjacency.Normalize(in, 2)
	require.ErrorIs(t, err, adjacency.ErrInvalidBase)

	_, err = adjacency.Normalize([]adjacency.Edge{{U: 0, V: 1}}, 1)
	require.ErrorIs(t, err, adjacency.ErrInvalidEdge)
}

// TestFromColumns zips source/destination arrays.
func TestFromColumns(t *testing.T) {
	t.Parallel()

	edges, err := adjacency.FromColumns([]int{0, 1, 2}, []int{1, 2, 0})
	require.NoError(t, err)
	require.Equal(t, []adjacency.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}}, edges)

	_, err = adjacency.FromColumns([]int{0}, nil)
	require.ErrorIs(t, err, adjacency.ErrLengthMismatch)
}

// TestValidators exercises the boundary helpers directly.
func TestValidators(t *testing.T) {
	t.Parallel()
	require.NoError(t, adjacency.ValidateEdge(adjacency.Edge{U: 0, V: 2}, 3))
	require.ErrorIs(t, adjacency.ValidateEdge(adjacency.Edge{U: 0, V: 3}, 3), adjacency.ErrInvalidEdge)
	require.NoError(t, adjacency.ValidateBase(0))
	require.NoError(t, adjacency.ValidateBase(1))
	require.ErrorIs(t, adjacency.ValidateBase(-1), adjacency.ErrInvalidBase)
}
