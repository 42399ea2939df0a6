package adjacency_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/edgentropy/adjacency"
	"github.com/katalvlaran/edgentropy/builder"
)

// benchSizes are the node counts to benchmark.
var benchSizes = []int{128, 512, 2048}

// sinks to defeat dead-code elimination
var (
	sinkM *adjacency.Matrix
	sinkI int
)

func BenchmarkBuild(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1337)}, builder.RandomSparse(n, 0.02))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := adjacency.Build(g.Edges, g.N)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkCommonNeighbors(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(4242)}, builder.RandomSparse(n, 0.1))
			if err != nil {
				b.Fatal(err)
			}
			m, err := g.Matrix()
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkI = m.CommonNeighbors(i%n, (i+1)%n)
			}
		})
	}
}
