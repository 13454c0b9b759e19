// SPDX-License-Identifier: MIT

package baseline_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treach/baseline"
	"github.com/katalvlaran/treach/builder"
	"github.com/katalvlaran/treach/index"
	"github.com/katalvlaran/treach/index/indextest"
	"github.com/katalvlaran/treach/reach"
	"github.com/katalvlaran/treach/temporal"
)

func TestIndexConformance(t *testing.T) {
	indextest.Run(t, func(opts ...reach.Option) index.Index { return baseline.New(opts...) })
}

func TestIndexConformance_Debug(t *testing.T) {
	indextest.Run(t, func(opts ...reach.Option) index.Index {
		return baseline.New(append(opts, reach.WithDebug(true))...)
	})
}

func TestLabels_Scenario(t *testing.T) {
	ix := baseline.New()
	require.NoError(t, ix.Construct(indextest.Scenario(t), 1))

	// 0→1 (1,1); 1→2 (2,2); 0→2 (1,2) and (5,5)
	assert.EqualValues(t, 4, ix.Labels())
	assert.Equal(t, 3, ix.Pairs())
	assert.Equal(t, 4*baseline.LabelBytes, ix.Size())
	require.NoError(t, ix.Verify())
}

func TestLabels_SameArrivalKeepsLatestDeparture(t *testing.T) {
	// 0→1 at 1 and 3, 1→2 at 4: only departure 3 matters for arrival 4
	g, err := temporal.FromEdges(
		temporal.Edge{Src: 0, Dst: 1, T: 1},
		temporal.Edge{Src: 0, Dst: 1, T: 3},
		temporal.Edge{Src: 1, Dst: 2, T: 4},
	)
	require.NoError(t, err)
	ix := baseline.New()
	require.NoError(t, ix.Construct(g, 1))

	assert.EqualValues(t, 4, ix.Labels()) // 0→1 ×2, 1→2, 0→2
	res, err := ix.Query(0, 2, reach.Window{From: 2, To: 4})
	require.NoError(t, err)
	assert.True(t, res.Reachable)
	assert.Equal(t, 4, res.Arrival)
}

func TestReachable(t *testing.T) {
	ix := baseline.New()
	_, err := ix.Reachable(0)
	require.ErrorIs(t, err, reach.ErrNotBuilt)

	require.NoError(t, ix.Construct(indextest.Scenario(t), 1))
	got, err := ix.Reachable(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)

	got, err = ix.Reachable(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, got)

	_, err = ix.Reachable(3)
	assert.ErrorIs(t, err, reach.ErrPreconditionViolation)
}

func TestConstruct_RebuildsFromScratch(t *testing.T) {
	ix := baseline.New()
	require.NoError(t, ix.Construct(indextest.Scenario(t), 1))
	require.NoError(t, ix.Construct(indextest.Scenario(t), 0.2))

	assert.Equal(t, 1, ix.Horizon())
	assert.EqualValues(t, 1, ix.Labels())
	assert.ErrorIs(t, ix.Construct(nil, 1), baseline.ErrGraphNil)
}

func TestUpdate_GrowsVertexSet(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)
	ix := baseline.New()
	require.NoError(t, ix.Construct(g, 1))

	require.NoError(t, g.Append(temporal.Edge{Src: 2, Dst: 7, T: 4}))
	require.NoError(t, ix.Update(g))

	res, err := ix.Query(0, 7, reach.Upto(4))
	require.NoError(t, err)
	assert.True(t, res.Reachable)
	assert.Equal(t, 4, res.Arrival)
	require.NoError(t, ix.Verify())
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	ix := baseline.New(reach.WithLogger(logger), reach.WithDebug(true))
	require.NoError(t, ix.Construct(indextest.Scenario(t), 1))

	out := buf.String()
	assert.Contains(t, out, `"message":"index constructed"`)
	assert.Contains(t, out, `"message":"bucket relaxed"`)
	assert.Contains(t, out, `"index":"baseline"`)
}
