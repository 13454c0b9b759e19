// SPDX-License-Identifier: MIT

package builder_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treach/builder"
	"github.com/katalvlaran/treach/temporal"
)

func TestBuildEdges_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want builder.EdgeList
	}{
		{
			name: "Path(4)",
			ctor: builder.Path(4),
			want: builder.EdgeList{{Src: 0, Dst: 1, T: 1}, {Src: 1, Dst: 2, T: 2}, {Src: 2, Dst: 3, T: 3}},
		},
		{
			name: "Path(3) start 5 step 2 offset 10",
			opts: []builder.BuilderOption{builder.WithStartTime(5), builder.WithTimeStep(2), builder.WithVertexOffset(10)},
			ctor: builder.Path(3),
			want: builder.EdgeList{{Src: 10, Dst: 11, T: 5}, {Src: 11, Dst: 12, T: 7}},
		},
		{
			name: "Burst(3,4)",
			ctor: builder.Burst(3, 4),
			want: builder.EdgeList{{Src: 0, Dst: 1, T: 4}, {Src: 1, Dst: 2, T: 4}},
		},
		{
			name: "Star(3)",
			ctor: builder.Star(3),
			want: builder.EdgeList{
				{Src: 1, Dst: 0, T: 1}, {Src: 0, Dst: 1, T: 1},
				{Src: 2, Dst: 0, T: 2}, {Src: 0, Dst: 2, T: 2},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := builder.BuildEdges(tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBuildEdges_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"path too short", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"burst bad time", nil, builder.Burst(3, 0), builder.ErrInvalidTime},
		{"star too short", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"random no rng", nil, builder.RandomTemporal(5, 10, 3), builder.ErrNeedRandSource},
		{"random bad tmax", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomTemporal(5, 10, 0), builder.ErrInvalidTime},
		{"sparse bad p", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(5, 1.5, 3), builder.ErrInvalidProbability},
		{"sparse no rng", nil, builder.RandomSparse(5, 0.5, 3), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildEdges(tc.opts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomTemporal_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := builder.BuildEdges([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomTemporal(20, 100, 15))
	require.NoError(t, err)
	b, err := builder.BuildEdges([]builder.BuilderOption{builder.WithSeed(42)}, builder.RandomTemporal(20, 100, 15))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	require.Len(t, a, 100)
	for _, e := range a {
		assert.NotEqual(t, e.Src, e.Dst)
		assert.True(t, e.Src >= 0 && e.Src < 20 && e.Dst >= 0 && e.Dst < 20)
		assert.True(t, e.T >= 1 && e.T <= 15)
	}
	assert.LessOrEqual(t, a.MaxTime(), 15)
}

func TestRandomSparse_Extremes(t *testing.T) {
	t.Parallel()

	none, err := builder.BuildEdges(nil, builder.RandomSparse(6, 0, 4))
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := builder.BuildEdges([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(6, 1, 4))
	require.NoError(t, err)
	assert.Len(t, all, 6*5)
}

func TestBuildGraph(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil, builder.Path(5), builder.Burst(3, 10))
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumVertices())
	assert.Equal(t, 6, g.NumEdges())
	assert.Equal(t, 10, g.TMax())
	assert.Len(t, g.Bucket(10), 2)
}

func TestEdgeList_SplitAndWrite(t *testing.T) {
	t.Parallel()

	el, err := builder.BuildEdges(nil, builder.Path(5))
	require.NoError(t, err)
	head, tail := el.Split(2)
	assert.Len(t, head, 2)
	assert.Len(t, tail, 2)

	var buf bytes.Buffer
	_, err = el.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "0 1 1\n1 2 2\n2 3 3\n3 4 4\n", buf.String())

	g, err := temporal.Build(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, 4, g.TMax())
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithStartTime(0) })
	assert.Panics(t, func() { builder.WithTimeStep(-1) })
	assert.Panics(t, func() { builder.WithVertexOffset(-1) })
}
