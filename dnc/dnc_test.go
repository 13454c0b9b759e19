// SPDX-License-Identifier: MIT

package dnc_test

import (
	"testing"

	"github.com/RoaringBitmap/roaring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treach/builder"
	"github.com/katalvlaran/treach/dnc"
	"github.com/katalvlaran/treach/reach"
	"github.com/katalvlaran/treach/temporal"
)

func rel(pairs ...[2]int) *dnc.Relation {
	r := dnc.NewRelation()
	for _, p := range pairs {
		r.Add(p[0], p[1])
	}
	return r
}

func TestRelation_Basics(t *testing.T) {
	r := rel([2]int{0, 1}, [2]int{0, 2}, [2]int{3, 3})

	assert.True(t, r.Contains(0, 1))
	assert.True(t, r.Contains(4, 4), "identity is implicit")
	assert.False(t, r.Contains(1, 0))
	assert.EqualValues(t, 2, r.Len())
	assert.Equal(t, []uint32{1, 2}, r.Image(0).ToArray())
	assert.Positive(t, r.Bytes())
	assert.Nil(t, r.Image(3))

	var zero dnc.Relation
	zero.Add(5, 6)
	assert.True(t, zero.Contains(5, 6))
}

func TestCompose(t *testing.T) {
	a := rel([2]int{0, 1}, [2]int{2, 3})
	b := rel([2]int{1, 2}, [2]int{3, 0}, [2]int{4, 5})

	c := dnc.Compose(a, b)
	want := rel(
		[2]int{0, 1}, [2]int{0, 2}, // A, then A·B
		[2]int{2, 3}, [2]int{2, 0}, // A, then A·B
		[2]int{1, 2}, [2]int{3, 0}, [2]int{4, 5}, // B alone
	)
	assert.True(t, c.Equal(want))

	// order matters: B then A
	d := dnc.Compose(b, a)
	assert.True(t, d.Contains(4, 5))
	assert.False(t, d.Contains(0, 2))
	assert.True(t, d.Contains(3, 1))
}

func TestCompose_DropsIdentity(t *testing.T) {
	c := dnc.Compose(rel([2]int{0, 1}), rel([2]int{1, 0}))
	assert.True(t, c.Contains(0, 1))
	assert.True(t, c.Contains(1, 0))
	assert.EqualValues(t, 2, c.Len())
}

func TestApply(t *testing.T) {
	r := rel([2]int{0, 1}, [2]int{1, 2}, [2]int{5, 6})
	f := roaring.BitmapOf(0, 5)

	got := r.Apply(f)
	assert.Equal(t, []uint32{0, 1, 5, 6}, got.ToArray())
	assert.Equal(t, []uint32{0, 5}, f.ToArray(), "frontier is not modified")
}

func TestLeafRelation(t *testing.T) {
	edges := []temporal.Edge{{Src: 0, Dst: 1, T: 1}, {Src: 1, Dst: 2, T: 1}, {Src: 2, Dst: 0, T: 1}}

	strict := dnc.LeafRelation(edges, reach.Strict)
	assert.EqualValues(t, 3, strict.Len())
	assert.False(t, strict.Contains(0, 2))

	closed := dnc.LeafRelation(edges, reach.NonStrict)
	assert.EqualValues(t, 6, closed.Len())
	assert.True(t, closed.Contains(0, 2))
	assert.True(t, closed.Contains(2, 1))
}

func chain(t *testing.T, h int) *temporal.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.Path(h+1))
	require.NoError(t, err)
	return g
}

func TestTree_BuildAndCover(t *testing.T) {
	g := chain(t, 5)
	tree, err := dnc.Build(g, 5, reach.NonStrict)
	require.NoError(t, err)

	assert.Equal(t, 5, tree.Horizon())
	assert.Equal(t, 8, tree.Capacity())
	require.NoError(t, tree.Verify())

	var spans [][2]int
	for _, n := range tree.Cover(2, 5) {
		spans = append(spans, [2]int{n.Lo, n.Hi})
	}
	assert.Equal(t, [][2]int{{2, 2}, {3, 4}, {5, 5}}, spans)

	spans = spans[:0]
	for _, n := range tree.Cover(1, 100) {
		spans = append(spans, [2]int{n.Lo, n.Hi})
	}
	assert.Equal(t, [][2]int{{1, 4}, {5, 5}}, spans, "[6,8] lies past the horizon")
	assert.Empty(t, tree.Cover(4, 3))
	assert.Empty(t, tree.Cover(6, 9))

	root := tree.Root()
	assert.True(t, root.Rel.Contains(0, 5))
	assert.Equal(t, []uint32{1, 2, 3, 4, 5}, root.Rel.Image(0).ToArray())
}

func TestTree_Earliest(t *testing.T) {
	g := chain(t, 6)
	tree, err := dnc.Build(g, 6, reach.Strict)
	require.NoError(t, err)

	for target := 1; target <= 6; target++ {
		a, ok := tree.Earliest(0, target, 1, 6)
		assert.True(t, ok)
		assert.Equal(t, target, a)
	}
	_, ok := tree.Earliest(0, 3, 1, 2)
	assert.False(t, ok)
	_, ok = tree.Earliest(0, 3, 2, 6)
	assert.False(t, ok)

	a, ok := tree.Earliest(2, 5, 3, 6)
	assert.True(t, ok)
	assert.Equal(t, 5, a)

	a, ok = tree.Earliest(2, 4, 1, 4)
	assert.True(t, ok)
	assert.Equal(t, 4, a)
	_, ok = tree.Earliest(2, 5, 1, 4)
	assert.False(t, ok)
}

func TestTree_ExtendIsLocal(t *testing.T) {
	g := chain(t, 64)
	full, err := dnc.Build(g, 64, reach.NonStrict)
	require.NoError(t, err)
	built := full.Recomposed()
	assert.Equal(t, 127, built)

	tree, err := dnc.Build(g, 63, reach.NonStrict)
	require.NoError(t, err)
	require.NoError(t, tree.Extend(g, 64))
	assert.Equal(t, 7, tree.Recomposed(), "one leaf and its six ancestors")
	assert.True(t, tree.Root().Rel.Equal(full.Root().Rel))
	require.NoError(t, tree.Verify())

	require.NoError(t, tree.Extend(g, 64))
	assert.Zero(t, tree.Recomposed())
}

func TestTree_ExtendDoublesCapacity(t *testing.T) {
	g := chain(t, 9)
	tree, err := dnc.Build(g, 3, reach.NonStrict)
	require.NoError(t, err)
	assert.Equal(t, 4, tree.Capacity())
	old := tree.Root()

	require.NoError(t, tree.Extend(g, 9))
	assert.Equal(t, 16, tree.Capacity())
	cover := tree.Cover(1, 4)
	require.Len(t, cover, 1)
	assert.Same(t, old, cover[0], "old root becomes a left child")
	require.NoError(t, tree.Verify())

	direct, err := dnc.Build(g, 9, reach.NonStrict)
	require.NoError(t, err)
	assert.True(t, tree.Root().Rel.Equal(direct.Root().Rel))
	assert.Equal(t, direct.Bytes(), tree.Bytes())
	assert.Equal(t, direct.Nodes(), tree.Nodes())
}

func TestTree_Errors(t *testing.T) {
	g := chain(t, 4)
	tree, err := dnc.Build(g, 4, reach.NonStrict)
	require.NoError(t, err)
	assert.ErrorIs(t, tree.Extend(g, 2), dnc.ErrShrink)
	assert.ErrorIs(t, tree.Extend(g, 2), reach.ErrPreconditionViolation)
	assert.ErrorIs(t, tree.Extend(nil, 5), dnc.ErrGraphNil)

	empty, err := dnc.Build(g, 0, reach.NonStrict)
	require.NoError(t, err)
	assert.Nil(t, empty.Root())
	assert.Nil(t, empty.Cover(1, 4))
	_, ok := empty.Earliest(0, 1, 1, 4)
	assert.False(t, ok)
}
