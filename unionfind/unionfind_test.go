package unionfind_test

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/unionfind"
)

func TestUnionFind_Singletons(t *testing.T) {
	uf := unionfind.New(4)
	require.Equal(t, 4, uf.Len())
	require.Equal(t, 4, uf.Groups())
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, uf.Find(i))
		assert.Equal(t, i, uf.Leader(i))
		assert.Equal(t, 1, uf.Size(i))
		assert.Equal(t, 0, uf.Depth(i))
	}
}

func TestUnionFind_LeaderSequence(t *testing.T) {
	uf := unionfind.New(5)

	checkLeader := func(want ...int) {
		t.Helper()
		for i, w := range want {
			assert.Equalf(t, w, uf.Leader(i), "leader of %d", i)
		}
	}

	require.True(t, uf.Union(1, 3))
	checkLeader(0, 1, 2, 1, 4)

	require.True(t, uf.Union(0, 2))
	checkLeader(0, 1, 0, 1, 4)

	require.True(t, uf.Union(2, 1))
	checkLeader(0, 0, 0, 0, 4)

	require.True(t, uf.Union(2, 4))
	checkLeader(0, 0, 0, 0, 0)
	assert.Equal(t, 1, uf.Groups())
	assert.Equal(t, 5, uf.Size(3))
}

func TestUnionFind_UnionSameGroupIsNoop(t *testing.T) {
	uf := unionfind.New(3)
	require.True(t, uf.Union(0, 1))
	before := uf.Groups()

	assert.False(t, uf.Union(1, 0))
	assert.False(t, uf.Union(0, 0))
	assert.Equal(t, before, uf.Groups())
}

func TestUnionFind_KeyedLeaderIsSmallestKey(t *testing.T) {
	// slot:  0   1  2   3
	// key:   40  7  19  7
	uf := unionfind.NewKeyed([]int{40, 7, 19, 7})

	require.True(t, uf.Union(0, 2))
	assert.Equal(t, 2, uf.Leader(0), "19 < 40")

	require.True(t, uf.Union(0, 3))
	assert.Equal(t, 3, uf.Leader(2), "7 < 19")

	require.True(t, uf.Union(1, 2))
	assert.Equal(t, 1, uf.Leader(3), "equal keys break ties by index")
	assert.Equal(t, 1, uf.Groups())
}

func TestUnionFind_Members(t *testing.T) {
	uf := unionfind.NewKeyed([]string{"d", "b", "c", "a"})
	uf.Union(0, 1)
	uf.Union(2, 3)

	got := uf.Members()
	assert.Equal(t, map[int][]int{1: {0, 1}, 3: {2, 3}}, got)
}

func TestUnionFind_CloneIsIndependent(t *testing.T) {
	base := unionfind.NewKeyed([]int{3, 1, 2})
	c := base.Clone()

	require.True(t, c.Union(0, 2))
	assert.Equal(t, 2, c.Groups())
	assert.Equal(t, 2, c.Leader(0))

	assert.Equal(t, 3, base.Groups(), "clone merges must not leak")
	assert.False(t, base.Same(0, 2))
	assert.Equal(t, 0, base.Leader(0))
}

func TestUnionFind_NegativeSize(t *testing.T) {
	uf := unionfind.New(-3)
	assert.Equal(t, 0, uf.Len())
	assert.Equal(t, 0, uf.Groups())
}

// TestUnionFind_DepthStaysLogarithmic merges random pairs until one group is
// left and checks that no slot is ever further than ⌊log₂ n⌋ hops from its root.
func TestUnionFind_DepthStaysLogarithmic(t *testing.T) {
	const n = 4096
	limit := bits.Len(uint(n)) - 1

	r := rand.New(rand.NewSource(7))
	uf := unionfind.New(n)
	for uf.Groups() > 1 {
		a, b := r.Intn(n), r.Intn(n)
		groups := uf.Groups()
		if uf.Union(a, b) {
			require.Equal(t, groups-1, uf.Groups())
		}
	}

	for i := 0; i < n; i++ {
		require.LessOrEqualf(t, uf.Depth(i), limit, "slot %d", i)
		require.Equal(t, 0, uf.Leader(i))
	}
}
