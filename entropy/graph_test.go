package entropy_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edgentropy/adjacency"
	"github.com/katalvlaran/edgentropy/builder"
	"github.com/katalvlaran/edgentropy/entropy"
	"github.com/katalvlaran/edgentropy/motif"
)

const eps = 1e-12

// countFixture builds and counts a builder fixture.
func countFixture(t testing.TB, bopts []builder.BuilderOption, opts []motif.Option, cons ...builder.Constructor) *motif.Table {
	t.Helper()
	g, err := builder.BuildGraph(bopts, cons...)
	require.NoError(t, err)
	adj, err := g.Matrix()
	require.NoError(t, err)
	tab, err := motif.Count(context.Background(), adj, opts...)
	require.NoError(t, err)

	return tab
}

// h is the reference contribution −p·ln p.
func h(p float64) float64 {
	return -p * math.Log(p)
}

// TestGraph_TrianglePendant checks probabilities and contributions of the reference graph.
func TestGraph_TrianglePendant(t *testing.T) {
	t.Parallel()
	tab := countFixture(t, nil, nil, builder.TrianglePendant())

	g, err := entropy.Graph(entropy.InputOf(tab))
	require.NoError(t, err)
	require.Equal(t, 4, g.Nodes)
	require.Equal(t, 7, g.Observed)

	require.InDelta(t, 3.0/7, g.Probabilities[motif.Triangle], eps)
	require.InDelta(t, h(3.0/7), g.Values[motif.Triangle], eps)
	require.InDelta(t, h(3.0/7), g.Values[motif.Wedge], eps)
	require.InDelta(t, h(1.0/7), g.Values[motif.Pendant], eps)
	require.Zero(t, g.Values[motif.Dyad])
	require.Zero(t, g.Values[motif.OpenTriangle])
	require.InDelta(t, g.Sum(), g.Total(), eps)
}

// TestGraph_ZeroOccurrence verifies unseen categories contribute exactly 0, never NaN.
func TestGraph_ZeroOccurrence(t *testing.T) {
	t.Parallel()

	g, err := entropy.Graph(entropy.Input{
		Aggregate: motif.Counts{motif.Triangle: 4},
		Edges:     motif.EdgeCounts{motif.Triangle: 2},
		Nodes:     3,
	})
	require.NoError(t, err)
	for c, v := range g.Values {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "category %d", c)
		require.Zero(t, v, "category %d", c) // p=1 ⇒ 0, others unseen ⇒ 0
		require.False(t, math.Signbit(v), "category %d must be +0", c)
	}
}

// TestGraph_NoMotifs covers a graph without any pair rows.
func TestGraph_NoMotifs(t *testing.T) {
	t.Parallel()

	g, err := entropy.Graph(entropy.Input{Nodes: 5})
	require.NoError(t, err)
	require.Equal(t, entropy.Vector{}, g.Values)
	require.Zero(t, g.Observed)
	require.Zero(t, g.Total())
}

// TestGraph_Errors covers the input validation sentinels.
func TestGraph_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   entropy.Input
		err  error
	}{
		{"NegativeNodes", entropy.Input{Nodes: -1}, entropy.ErrInvalidNodeCount},
		{"NegativeEdges", entropy.Input{Edges: motif.EdgeCounts{motif.Wedge: -1}}, entropy.ErrNegativeCount},
		{"NegativeAggregate", entropy.Input{Aggregate: motif.Counts{motif.Dyad: -2}}, entropy.ErrNegativeCount},
		{"EdgesWithoutOccurrences", entropy.Input{Edges: motif.EdgeCounts{motif.Pendant: 1}}, entropy.ErrCountMismatch},
		{"OccurrencesWithoutEdges", entropy.Input{Aggregate: motif.Counts{motif.Triangle: 3}}, entropy.ErrCountMismatch},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := entropy.Graph(tc.in)
			require.Nil(t, g)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestGraph_FiniteNonNegative runs random graphs in both modes and checks the value domain.
func TestGraph_FiniteNonNegative(t *testing.T) {
	t.Parallel()
	for _, seed := range []int64{2, 11, 29} {
		for _, mode := range []motif.Mode{motif.ModeEdges, motif.ModeExhaustive} {
			tab := countFixture(t, []builder.BuilderOption{builder.WithSeed(seed)},
				[]motif.Option{motif.WithMode(mode)},
				builder.RandomSparse(40, 0.1), builder.Isolated(3), builder.Path(4))
			g, err := entropy.Graph(entropy.InputOf(tab))
			require.NoError(t, err)
			for c, v := range g.Values {
				require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "category %d", c)
				require.GreaterOrEqual(t, v, 0.0)
			}
		}
	}
}

// TestInputOf_SingleEdge: the 2-node graph maps to the Dyad category with p = 1.
func TestInputOf_SingleEdge(t *testing.T) {
	t.Parallel()
	adj, err := adjacency.Build([]adjacency.Edge{{U: 0, V: 1}}, 2)
	require.NoError(t, err)
	tab, err := motif.Count(context.Background(), adj)
	require.NoError(t, err)

	in := entropy.InputOf(tab)
	require.Equal(t, motif.EdgeCounts{motif.Dyad: 1}, in.Edges)
	g, err := entropy.Graph(in)
	require.NoError(t, err)
	require.Equal(t, 1.0, g.Probabilities[motif.Dyad])
	require.Zero(t, g.Values[motif.Dyad])
}
