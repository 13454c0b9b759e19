// SPDX-License-Identifier: MIT

package optimized_test

import (
	"testing"

	"github.com/katalvlaran/treach/builder"
	"github.com/katalvlaran/treach/optimized"
	"github.com/katalvlaran/treach/reach"
)

func BenchmarkConstruct(b *testing.B) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomTemporal(300, 3000, 200))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := optimized.New().Construct(g, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkQuery(b *testing.B) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomTemporal(300, 3000, 200))
	if err != nil {
		b.Fatal(err)
	}
	ix := optimized.New()
	if err := ix.Construct(g, 1); err != nil {
		b.Fatal(err)
	}
	w, n := reach.Upto(g.TMax()), g.NumVertices()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ix.Query(i%n, (i*7+1)%n, w); err != nil {
			b.Fatal(err)
		}
	}
}
