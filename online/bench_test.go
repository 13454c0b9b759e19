// SPDX-License-Identifier: MIT

package online_test

import (
	"testing"

	"github.com/katalvlaran/treach/builder"
	"github.com/katalvlaran/treach/online"
	"github.com/katalvlaran/treach/reach"
)

func BenchmarkSearch(b *testing.B) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomTemporal(2000, 20000, 500))
	if err != nil {
		b.Fatal(err)
	}
	w, n := reach.Upto(g.TMax()), g.NumVertices()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := online.Search(g, i%n, (i*7+1)%n, w); err != nil {
			b.Fatal(err)
		}
	}
}
