// SPDX-License-Identifier: MIT

package index_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treach/builder"
	"github.com/katalvlaran/treach/index"
	"github.com/katalvlaran/treach/index/indextest"
	"github.com/katalvlaran/treach/reach"
	"github.com/katalvlaran/treach/temporal"
)

var modes = []index.Mode{index.Online, index.Baseline, index.Optimized}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want index.Mode
	}{
		{"online", index.Online},
		{"Baseline", index.Baseline},
		{" optimized ", index.Optimized},
		{"res", index.Optimized},
	}
	for _, tc := range tests {
		got, err := index.ParseMode(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
		if tc.in != "res" {
			assert.Equal(t, strings.ToLower(strings.TrimSpace(tc.in)), got.String())
		}
	}

	_, err := index.ParseMode("fastest")
	assert.ErrorIs(t, err, reach.ErrInvalidConfiguration)

	_, err = index.New(index.Mode(9))
	assert.ErrorIs(t, err, reach.ErrInvalidConfiguration)
}

func TestEnginesAgree(t *testing.T) {
	for _, sem := range []reach.Semantics{reach.NonStrict, reach.Strict} {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(77)},
			builder.RandomTemporal(25, 120, 30),
			builder.Star(6),
		)
		require.NoError(t, err)

		engines := make([]index.Index, 0, len(modes))
		for _, m := range modes {
			ix, err := index.New(m, reach.WithSemantics(sem))
			require.NoError(t, err)
			require.NoError(t, ix.Construct(g, 0.8), m)
			engines = append(engines, ix)
		}
		h := engines[0].Horizon()
		for _, ix := range engines[1:] {
			require.Equal(t, h, ix.Horizon())
		}

		n := g.NumVertices()
		for s := 0; s < n; s++ {
			for d := 0; d < n; d++ {
				w := reach.Window{From: 1 + (s+d)%10, To: h}
				want, err := engines[0].Query(s, d, w)
				require.NoError(t, err)
				for i, ix := range engines[1:] {
					got, err := ix.Query(s, d, w)
					require.NoError(t, err)
					require.Equal(t, want, got, "%s %s %d→%d %s", modes[i+1], sem, s, d, w)
				}
			}
		}
	}
}

func TestRun(t *testing.T) {
	ix, err := index.New(index.Baseline)
	require.NoError(t, err)
	require.NoError(t, ix.Construct(indextest.Scenario(t), 1))

	queries, _, err := reach.ParseQueries(strings.NewReader("0 2\n2 0 5\n0 2 1 1\n"), reach.QueryReadOptions{DefaultBound: 5})
	require.NoError(t, err)

	var seen int
	var total time.Duration
	results, err := index.Run(ix, queries, func(q reach.Query, r reach.Result, took time.Duration) {
		seen++
		total += took
		assert.Equal(t, q.Source, r.Source)
	})
	require.NoError(t, err)
	assert.Equal(t, 3, seen)
	require.Len(t, results, 3)
	assert.True(t, results[0].Reachable)
	assert.Equal(t, 2, results[0].Arrival)
	assert.False(t, results[1].Reachable)
	assert.False(t, results[2].Reachable)
	assert.GreaterOrEqual(t, total, time.Duration(0))
}

func TestRun_StopsAtFirstError(t *testing.T) {
	ix, err := index.New(index.Optimized)
	require.NoError(t, err)
	require.NoError(t, ix.Construct(indextest.Scenario(t), 1))

	queries := []reach.Query{
		{Source: 0, Target: 1, Window: reach.Upto(5), Line: 1},
		{Source: 0, Target: 9, Window: reach.Upto(5), Line: 2},
		{Source: 1, Target: 2, Window: reach.Upto(5), Line: 3},
	}
	results, err := index.Run(ix, queries)
	require.ErrorIs(t, err, reach.ErrPreconditionViolation)
	assert.Contains(t, err.Error(), "query 2")
	assert.Len(t, results, 1)
}

func TestRun_NotBuilt(t *testing.T) {
	for _, m := range modes {
		ix, err := index.New(m)
		require.NoError(t, err)
		_, err = index.Run(ix, []reach.Query{{Source: 0, Target: 0, Window: reach.Upto(1)}})
		assert.ErrorIs(t, err, reach.ErrNotBuilt, m)
	}
}

func TestRunClocked_EpochTimeline(t *testing.T) {
	in := "0 1 1600000000\n1 2 1600000000\n2 3 1600086400\n0 3 1900000000\n"
	queries := []reach.Query{
		{Source: 0, Target: 3, Window: reach.Upto(1900000000)},
		{Source: 0, Target: 3, Window: reach.Window{From: 1600000001, To: 1900000000}},
		{Source: 0, Target: 2, Window: reach.Window{From: 1500000000, To: 1599999999}},
		{Source: 2, Target: 2, Window: reach.Window{From: 1650000000, To: 1660000000}},
	}
	want := []reach.Result{
		{Source: 0, Target: 3, Window: queries[0].Window, Reachable: true, Arrival: 1600086400},
		{Source: 0, Target: 3, Window: queries[1].Window, Reachable: true, Arrival: 1900000000},
		{Source: 0, Target: 2, Window: queries[2].Window},
		{Source: 2, Target: 2, Window: queries[3].Window, Reachable: true, Arrival: 1650000000},
	}
	for _, m := range modes {
		t.Run(m.String(), func(t *testing.T) {
			g, err := temporal.Build(strings.NewReader(in))
			require.NoError(t, err)
			require.Equal(t, 3, g.TMax())

			ix, err := index.New(m)
			require.NoError(t, err)
			require.NoError(t, ix.Construct(g, 1))

			got, err := index.RunClocked(ix, g, queries)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}
