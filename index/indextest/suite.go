// SPDX-License-Identifier: MIT

// Package indextest is a conformance suite for index.Index implementations.
// Every engine's tests call Run with a factory; answers are checked against
// online.Search, which serves as ground truth.
package indextest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/treach/builder"
	"github.com/katalvlaran/treach/index"
	"github.com/katalvlaran/treach/online"
	"github.com/katalvlaran/treach/reach"
	"github.com/katalvlaran/treach/temporal"
)

// Factory returns a fresh, unbuilt index.
type Factory func(opts ...reach.Option) index.Index

var semantics = []reach.Semantics{reach.NonStrict, reach.Strict}

// Run executes the whole suite against factory.
func Run(t *testing.T, factory Factory) {
	t.Run("Scenario", func(t *testing.T) { testScenario(t, factory) })
	t.Run("ScenarioIncremental", func(t *testing.T) { testScenarioIncremental(t, factory) })
	t.Run("Boundary", func(t *testing.T) { testBoundary(t, factory) })
	t.Run("Errors", func(t *testing.T) { testErrors(t, factory) })
	t.Run("SizeIdempotent", func(t *testing.T) { testSizeIdempotent(t, factory) })
	t.Run("HopSemantics", func(t *testing.T) { testHopSemantics(t, factory) })
	t.Run("EquivalenceRandom", func(t *testing.T) { testEquivalenceRandom(t, factory) })
	t.Run("RetainedHorizon", func(t *testing.T) { testRetainedHorizon(t, factory) })
	t.Run("IncrementalEquivalence", func(t *testing.T) { testIncremental(t, factory) })
	t.Run("StaticCrossCheck", func(t *testing.T) { testStaticCrossCheck(t, factory) })
}

// Scenario returns the graph (0,1,1) (1,2,2) (0,2,5).
func Scenario(t testing.TB) *temporal.Graph {
	t.Helper()
	g, err := temporal.FromEdges(
		temporal.Edge{Src: 0, Dst: 1, T: 1},
		temporal.Edge{Src: 1, Dst: 2, T: 2},
		temporal.Edge{Src: 0, Dst: 2, T: 5},
	)
	require.NoError(t, err)
	return g
}

func build(t testing.TB, factory Factory, g *temporal.Graph, f float64, opts ...reach.Option) index.Index {
	t.Helper()
	ix := factory(opts...)
	require.NoError(t, ix.Construct(g, f))
	return ix
}

func query(t testing.TB, ix index.Index, s, d int, w reach.Window) reach.Result {
	t.Helper()
	res, err := ix.Query(s, d, w)
	require.NoError(t, err)
	return res
}

func testScenario(t *testing.T, factory Factory) {
	for _, sem := range semantics {
		t.Run(sem.String(), func(t *testing.T) {
			ix := build(t, factory, Scenario(t), 1, reach.WithSemantics(sem))
			assert.Equal(t, 5, ix.Horizon())

			res := query(t, ix, 0, 2, reach.Window{From: 1, To: 5})
			assert.True(t, res.Reachable)
			assert.Equal(t, 2, res.Arrival)
			assert.Equal(t, reach.Window{From: 1, To: 5}, res.Window)

			assert.False(t, query(t, ix, 2, 0, reach.Window{From: 1, To: 5}).Reachable)
			assert.False(t, query(t, ix, 0, 2, reach.Window{From: 1, To: 1}).Reachable)

			// leaving after the 0→1 edge only the direct edge remains
			res = query(t, ix, 0, 2, reach.Window{From: 2, To: 5})
			assert.True(t, res.Reachable)
			assert.Equal(t, 5, res.Arrival)

			res = query(t, ix, 0, 1, reach.Window{From: 1, To: 5})
			assert.True(t, res.Reachable)
			assert.Equal(t, 1, res.Arrival)
		})
	}
}

func testScenarioIncremental(t *testing.T, factory Factory) {
	g, err := temporal.FromEdges(
		temporal.Edge{Src: 0, Dst: 1, T: 1},
		temporal.Edge{Src: 1, Dst: 2, T: 2},
	)
	require.NoError(t, err)

	ix := build(t, factory, g, 0.5)
	require.Equal(t, 1, ix.Horizon())
	assert.False(t, query(t, ix, 0, 2, reach.Window{From: 1, To: 5}).Reachable)
	assert.True(t, query(t, ix, 0, 1, reach.Window{From: 1, To: 5}).Reachable)

	require.NoError(t, g.Append(temporal.Edge{Src: 0, Dst: 2, T: 5}))
	require.NoError(t, ix.Update(g))
	assert.Equal(t, 5, ix.Horizon())

	res := query(t, ix, 0, 2, reach.Window{From: 1, To: 5})
	assert.True(t, res.Reachable)
	assert.Equal(t, 2, res.Arrival)

	// nothing new past the horizon: Update is a no-op
	size := ix.Size()
	require.NoError(t, ix.Update(g))
	assert.Equal(t, 5, ix.Horizon())
	assert.Equal(t, size, ix.Size())
}

func testBoundary(t *testing.T, factory Factory) {
	g, err := temporal.FromEdges(
		temporal.Edge{Src: 0, Dst: 1, T: 3},
		temporal.Edge{Src: 1, Dst: 2, T: 4},
		temporal.Edge{Src: 3, Dst: 3, T: 4},
	)
	require.NoError(t, err)
	ix := build(t, factory, g, 1)

	assert.False(t, query(t, ix, 0, 1, reach.Window{From: 1, To: 2}).Reachable)
	assert.False(t, query(t, ix, 0, 1, reach.Window{From: 5, To: 9}).Reachable)
	assert.False(t, query(t, ix, 0, 1, reach.Window{From: 4, To: 2}).Reachable)
	assert.False(t, query(t, ix, 1, 0, reach.Upto(9)).Reachable)
	assert.False(t, query(t, ix, 3, 0, reach.Upto(9)).Reachable)

	for _, w := range []reach.Window{{From: 1, To: 2}, {From: 2, To: 9}, {From: 7, To: 3}, {From: 0, To: 4}} {
		res := query(t, ix, 0, 0, w)
		assert.True(t, res.Reachable, w)
		assert.Equal(t, w.Normalize().From, res.Arrival, w)
	}

	// windows past the horizon are clipped, not rejected
	res := query(t, ix, 0, 2, reach.Window{From: 1, To: 100})
	assert.True(t, res.Reachable)
	assert.Equal(t, 4, res.Arrival)
}

func testErrors(t *testing.T, factory Factory) {
	g := Scenario(t)

	ix := factory()
	_, err := ix.Query(0, 1, reach.Upto(5))
	assert.ErrorIs(t, err, reach.ErrNotBuilt)
	err = ix.Update(g)
	assert.ErrorIs(t, err, reach.ErrNotBuilt)
	assert.ErrorIs(t, err, reach.ErrInvalidConfiguration)
	assert.Equal(t, 0, ix.Horizon())

	for _, f := range []float64{0, -0.5, 1.5} {
		assert.ErrorIs(t, factory().Construct(g, f), reach.ErrInvalidConfiguration, f)
	}

	ix = build(t, factory, g, 1)
	for _, pair := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		_, err := ix.Query(pair[0], pair[1], reach.Upto(5))
		assert.ErrorIs(t, err, reach.ErrPreconditionViolation, pair)
	}
}

func testSizeIdempotent(t *testing.T, factory Factory) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(3)}, builder.RandomTemporal(15, 60, 12))
	require.NoError(t, err)
	ix := build(t, factory, g, 0.7)
	s1, s2 := ix.Size(), ix.Size()
	assert.Equal(t, s1, s2)
	assert.GreaterOrEqual(t, s1, int64(0))

	_, err = ix.Query(0, 1, reach.Upto(12))
	require.NoError(t, err)
	assert.Equal(t, s1, ix.Size())
}

func testHopSemantics(t *testing.T, factory Factory) {
	burst, err := builder.BuildGraph(nil, builder.Burst(4, 3))
	require.NoError(t, err)

	ns := build(t, factory, burst, 1, reach.WithSemantics(reach.NonStrict))
	res := query(t, ns, 0, 3, reach.Upto(3))
	assert.True(t, res.Reachable)
	assert.Equal(t, 3, res.Arrival)

	st := build(t, factory, burst, 1, reach.WithSemantics(reach.Strict))
	assert.True(t, query(t, st, 0, 1, reach.Upto(3)).Reachable)
	assert.False(t, query(t, st, 0, 2, reach.Upto(3)).Reachable)

	// every spoke at t=1: leaves meet only when simultaneous hops are allowed
	star, err := builder.BuildGraph([]builder.BuilderOption{builder.WithTimeStep(0)}, builder.Star(4))
	require.NoError(t, err)
	assert.True(t, query(t, build(t, factory, star, 1), 1, 3, reach.Upto(1)).Reachable)
	assert.False(t, query(t, build(t, factory, star, 1, reach.WithSemantics(reach.Strict)), 1, 3, reach.Upto(1)).Reachable)
}

// checkAgainstOnline compares ix with online.Search on g for every pair and
// every window inside [1,h].
func checkAgainstOnline(t *testing.T, ix index.Index, g *temporal.Graph, h int, sem reach.Semantics) {
	t.Helper()
	n := g.NumVertices()
	for s := 0; s < n; s++ {
		for d := 0; d < n; d++ {
			for from := 1; from <= h; from++ {
				for to := from; to <= h; to++ {
					w := reach.Window{From: from, To: to}
					want, err := online.Search(g, s, d, w, reach.WithSemantics(sem))
					require.NoError(t, err)
					got := query(t, ix, s, d, w)
					if want != got {
						require.Equal(t, want, got, fmt.Sprintf("%d→%d %s %s", s, d, w, sem))
					}
				}
			}
		}
	}
}

func testEquivalenceRandom(t *testing.T, factory Factory) {
	for _, sem := range semantics {
		for seed := int64(1); seed <= 4; seed++ {
			t.Run(fmt.Sprintf("%s/seed=%d", sem, seed), func(t *testing.T) {
				g, err := builder.BuildGraph(
					[]builder.BuilderOption{builder.WithSeed(seed)},
					builder.RandomTemporal(9, 30, 8),
					builder.Burst(3, 4),
				)
				require.NoError(t, err)
				ix := build(t, factory, g, 1, reach.WithSemantics(sem))
				checkAgainstOnline(t, ix, g, g.TMax(), sem)
			})
		}
	}
}

func testRetainedHorizon(t *testing.T, factory Factory) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(11)},
		builder.RandomTemporal(8, 30, 9),
		builder.Burst(2, 10),
	)
	require.NoError(t, err)
	ix := build(t, factory, g, 0.6)
	require.Equal(t, 6, ix.Horizon())

	// answers equal online search over the prefix the index has seen
	checkAgainstOnline(t, ix, g.Prefix(6), 6, reach.NonStrict)
}

func testIncremental(t *testing.T, factory Factory) {
	for _, sem := range semantics {
		t.Run(sem.String(), func(t *testing.T) {
			all, err := builder.BuildEdges(
				[]builder.BuilderOption{builder.WithSeed(5)},
				builder.RandomTemporal(10, 45, 12),
			)
			require.NoError(t, err)
			head, tail := all.Split(6)

			g, err := temporal.FromEdges(head...)
			require.NoError(t, err)
			ix := build(t, factory, g, 1, reach.WithSemantics(sem))
			h1, n1 := ix.Horizon(), g.NumVertices()

			before := make(map[[2]int]reach.Result)
			for s := 0; s < n1; s++ {
				for d := 0; d < n1; d++ {
					before[[2]int{s, d}] = query(t, ix, s, d, reach.Upto(h1))
				}
			}

			require.NoError(t, g.Append(tail...))
			require.NoError(t, ix.Update(g))
			require.Equal(t, g.TMax(), ix.Horizon())

			// monotonicity: facts at H1 survive and arrivals never increase
			for pair, old := range before {
				if !old.Reachable {
					continue
				}
				res := query(t, ix, pair[0], pair[1], reach.Upto(h1))
				assert.Equal(t, old, res, pair)
				res = query(t, ix, pair[0], pair[1], reach.Upto(ix.Horizon()))
				assert.True(t, res.Reachable, pair)
				assert.LessOrEqual(t, res.Arrival, old.Arrival, pair)
			}

			// incremental equivalence: same answers as a direct build
			full, err := temporal.FromEdges(all...)
			require.NoError(t, err)
			direct := build(t, factory, full, 1, reach.WithSemantics(sem))
			n := full.NumVertices()
			for s := 0; s < n; s++ {
				for d := 0; d < n; d++ {
					for from := 1; from <= full.TMax(); from += 3 {
						w := reach.Window{From: from, To: full.TMax()}
						assert.Equal(t, query(t, direct, s, d, w), query(t, ix, s, d, w))
					}
				}
			}
		})
	}
}

// testStaticCrossCheck compares single-timestamp graphs with plain directed
// reachability, which is what non-strict hops reduce to.
func testStaticCrossCheck(t *testing.T, factory Factory) {
	const n = 12
	el, err := builder.BuildEdges([]builder.BuilderOption{builder.WithSeed(9)}, builder.RandomTemporal(n, 20, 1))
	require.NoError(t, err)
	g, err := temporal.FromEdges(el...)
	require.NoError(t, err)
	ix := build(t, factory, g, 1)

	dg := simple.NewDirectedGraph()
	for v := 0; v < g.NumVertices(); v++ {
		dg.AddNode(simple.Node(v))
	}
	for _, e := range el {
		dg.SetEdge(dg.NewEdge(simple.Node(e.Src), simple.Node(e.Dst)))
	}

	for s := 0; s < g.NumVertices(); s++ {
		for d := 0; d < g.NumVertices(); d++ {
			if s == d {
				continue
			}
			want := topo.PathExistsIn(dg, simple.Node(s), simple.Node(d))
			assert.Equal(t, want, query(t, ix, s, d, reach.Upto(1)).Reachable, "%d→%d", s, d)
		}
	}
}
