package motif_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edgentropy/motif"
)

// TestClassify_DecisionTable walks every row of the decision table.
func TestClassify_DecisionTable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		shape motif.Shape
		want  motif.Counts
	}{
		{
			name:  "ClosedTriangles",
			shape: motif.Shape{Adjacent: true, Common: 2, Exclusive: 0, DegI: 3, DegJ: 3},
			want:  motif.Counts{motif.Triangle: 2},
		},
		{
			name:  "TrianglesAndWedges",
			shape: motif.Shape{Adjacent: true, Common: 1, Exclusive: 3, DegI: 3, DegJ: 4},
			want:  motif.Counts{motif.Triangle: 1, motif.Wedge: 3},
		},
		{
			name:  "IsolatedEdgeIsDyad",
			shape: motif.Shape{Adjacent: true, DegI: 1, DegJ: 1},
			want:  motif.Counts{motif.Dyad: 1},
		},
		{
			name:  "LeafEdgeIsPendant",
			shape: motif.Shape{Adjacent: true, Exclusive: 2, DegI: 3, DegJ: 1},
			want:  motif.Counts{motif.Wedge: 2, motif.Pendant: 1},
		},
		{
			name:  "NonAdjacentWithCommonNeighbours",
			shape: motif.Shape{Adjacent: false, Common: 2, Exclusive: 1, DegI: 2, DegJ: 3},
			want:  motif.Counts{motif.OpenTriangle: 2},
		},
		{
			name:  "NonAdjacentNothingShared",
			shape: motif.Shape{Adjacent: false, Exclusive: 4, DegI: 2, DegJ: 2},
			want:  motif.Counts{},
		},
		{
			name:  "BothIsolated",
			shape: motif.Shape{},
			want:  motif.Counts{},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, motif.Classify(tc.shape))
		})
	}
}

// TestDominant checks the precedence Triangle > Dyad > Pendant > Wedge > OpenTriangle.
func TestDominant(t *testing.T) {
	t.Parallel()

	require.Equal(t, motif.Triangle, motif.Dominant(motif.Counts{motif.Triangle: 1, motif.Wedge: 5}))
	require.Equal(t, motif.Pendant, motif.Dominant(motif.Counts{motif.Wedge: 2, motif.Pendant: 1}))
	require.Equal(t, motif.Dyad, motif.Dominant(motif.Counts{motif.Dyad: 1}))
	require.Equal(t, motif.Wedge, motif.Dominant(motif.Counts{motif.Wedge: 1}))
	require.Equal(t, motif.OpenTriangle, motif.Dominant(motif.Counts{motif.OpenTriangle: 3}))
	require.Equal(t, motif.None, motif.Dominant(motif.Counts{}))
}

// TestCategory_Names pins the stable names used in CLI output and metrics labels.
func TestCategory_Names(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, motif.NumCategories)
	for _, c := range motif.Categories() {
		names = append(names, c.String())
	}
	require.Equal(t, []string{"triangle", "wedge", "pendant", "dyad", "open-triangle"}, names)
	require.Equal(t, "none", motif.None.String())
	require.Equal(t, "category(9)", motif.Category(9).String())
}

// TestCounts_Helpers covers Total, Has and IsZero.
func TestCounts_Helpers(t *testing.T) {
	t.Parallel()

	r := motif.Counts{motif.Triangle: 2, motif.Pendant: 1}
	require.Equal(t, 3, r.Total())
	require.True(t, r.Has(motif.Pendant))
	require.False(t, r.Has(motif.Wedge))
	require.False(t, r.IsZero())
	require.True(t, motif.Counts{}.IsZero())
}

// TestParseModeKernel covers config-name parsing.
func TestParseModeKernel(t *testing.T) {
	t.Parallel()

	m, err := motif.ParseMode("exhaustive")
	require.NoError(t, err)
	require.Equal(t, motif.ModeExhaustive, m)
	m, err = motif.ParseMode("")
	require.NoError(t, err)
	require.Equal(t, motif.ModeEdges, m)
	_, err = motif.ParseMode("triads")
	require.Error(t, err)

	k, err := motif.ParseKernel("scan")
	require.NoError(t, err)
	require.Equal(t, motif.KernelScan, k)
	require.Equal(t, "bitset", motif.KernelBitset.String())
	_, err = motif.ParseKernel("simd")
	require.Error(t, err)
}

// TestOptions_Panic verifies option constructors reject programmer errors.
func TestOptions_Panic(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { motif.WithWorkers(0) })
	require.Panics(t, func() { motif.WithMode(motif.Mode(7)) })
	require.Panics(t, func() { motif.WithKernel(motif.Kernel(7)) })
}
