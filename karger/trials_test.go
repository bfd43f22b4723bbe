package karger_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mincut/builder"
	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/karger"
)

// zeroSource always picks the first remaining edge.
type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

// MinCutSuite runs the trial driver over the canonical small graphs.
type MinCutSuite struct {
	suite.Suite
}

func TestMinCutSuite(t *testing.T) {
	suite.Run(t, new(MinCutSuite))
}

func (s *MinCutSuite) TestBarbellBridge() {
	rows, err := builder.BuildRows(nil, builder.Barbell(3))
	s.Require().NoError(err)

	c, err := karger.ComputeMinCut(rows, 200, karger.WithSeed(11))
	s.Require().NoError(err)
	s.Equal(1, c.Size)
	s.Require().Len(c.Edges, 1)
	s.Equal([2]int{3, 4}, c.Edges[0].Key())
	s.Equal([2][]int{{1, 2, 3}, {4, 5, 6}}, c.Sides)
}

func (s *MinCutSuite) TestSquare() {
	g, err := core.FromRows([]core.Row{
		{Vertex: 1, Neighbors: []int{2, 4}},
		{Vertex: 2, Neighbors: []int{3}},
		{Vertex: 3, Neighbors: []int{4}},
	})
	s.Require().NoError(err)

	c, err := karger.MinCut(g, 50, karger.WithSeed(5))
	s.Require().NoError(err)
	s.Equal(2, c.Size)
	s.NoError(karger.VerifyCut(g, c))
}

func (s *MinCutSuite) TestCompleteGraph() {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(6))
	s.Require().NoError(err)

	c, err := karger.MinCut(g, karger.SuggestedIterations(6)*4, karger.WithSeed(2))
	s.Require().NoError(err)
	s.Equal(5, c.Size)
	s.NoError(karger.VerifyCut(g, c))
	s.True(len(c.Sides[0]) == 1 || len(c.Sides[1]) == 1, "K_n min cut isolates one vertex")
}

func (s *MinCutSuite) TestCycle() {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(9))
	s.Require().NoError(err)

	c, err := karger.MinCut(g, 30)
	s.Require().NoError(err)
	// Every contraction of a cycle ends with exactly two crossing edges.
	s.Equal(2, c.Size)
	s.NoError(karger.VerifyCut(g, c))
}

func (s *MinCutSuite) TestSingleVertex() {
	c, err := karger.ComputeMinCut([]core.Row{{Vertex: 7}}, 1)
	s.Require().NoError(err)
	s.Zero(c.Size)
	s.Empty(c.Edges)
	s.Equal([]int{7}, c.Sides[0])
}

func (s *MinCutSuite) TestEmptyGraph() {
	c, err := karger.MinCut(core.NewGraph(), 3)
	s.Require().NoError(err)
	s.Zero(c.Size)
}

func (s *MinCutSuite) TestTwoVertices() {
	c, err := karger.ComputeMinCut([]core.Row{{Vertex: 1, Neighbors: []int{2}}}, 5)
	s.Require().NoError(err)
	s.Equal(1, c.Size)
	s.Equal([2][]int{{1}, {2}}, c.Sides)
}

func (s *MinCutSuite) TestDisconnected() {
	g, err := core.FromRows([]core.Row{
		{Vertex: 1, Neighbors: []int{2, 3}},
		{Vertex: 2, Neighbors: []int{3}},
		{Vertex: 4, Neighbors: []int{5}},
		{Vertex: 6},
	})
	s.Require().NoError(err)
	s.Equal(3, karger.Components(g))

	c, err := karger.MinCut(g, 10, karger.WithSeed(4))
	s.Require().NoError(err)
	s.Zero(c.Size)
	s.Empty(c.Edges)
	s.NoError(karger.VerifyCut(g, c))
}

func (s *MinCutSuite) TestInputRowsUnchanged() {
	rows := []core.Row{
		{Vertex: 1, Neighbors: []int{2, 3}},
		{Vertex: 2, Neighbors: []int{1, 3}},
		{Vertex: 3, Neighbors: []int{1, 2}},
	}
	_, err := karger.ComputeMinCut(rows, 10)
	s.Require().NoError(err)
	s.Equal([]int{2, 3}, rows[0].Neighbors)
	s.Equal([]int{1, 3}, rows[1].Neighbors)
	s.Equal([]int{1, 2}, rows[2].Neighbors)
}

func TestMinCutValidation(t *testing.T) {
	_, err := karger.MinCut(nil, 1)
	assert.ErrorIs(t, err, karger.ErrGraphNil)

	for _, n := range []int{0, -1} {
		_, err = karger.ComputeMinCut([]core.Row{{Vertex: 1, Neighbors: []int{2}}}, n)
		assert.ErrorIs(t, err, karger.ErrInvalidIterations, "iterations=%d", n)
	}

	_, err = karger.ComputeMinCut([]core.Row{{Vertex: 1, Neighbors: []int{1}}}, 1)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = karger.Contract(nil, nil)
	assert.ErrorIs(t, err, karger.ErrGraphNil)
}

func TestSuggestedIterations(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 1, 3: 10, 4: 23, 10: 231}
	for n, want := range cases {
		assert.Equal(t, want, karger.SuggestedIterations(n), "n=%d", n)
	}
}

func TestMinCutDeterministicAcrossWorkers(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(14, 0.25))
	require.NoError(t, err)

	base, err := karger.MinCut(g, 60, karger.WithSeed(42), karger.WithWorkers(1))
	require.NoError(t, err)
	for _, w := range []int{2, 3, 8, 0} {
		got, err := karger.MinCut(g, 60, karger.WithSeed(42), karger.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, base, got, "workers=%d", w)
	}
}

func TestMinCutTieKeepsEarliestTrial(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(6))
	require.NoError(t, err)

	c, err := karger.MinCut(g, 40,
		karger.WithWorkers(4),
		karger.WithSourceFactory(func(int) karger.Source { return zeroSource{} }),
	)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Trial)
	assert.Equal(t, 2, c.Size)
}

func TestMinCutHooks(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(5))
	require.NoError(t, err)

	var trials, merges atomic.Int64
	var worst atomic.Int64
	worst.Store(-1)
	c, err := karger.MinCut(g, 25,
		karger.WithWorkers(3),
		karger.WithOnTrial(func(_ int, c karger.Cut) {
			trials.Add(1)
			if int64(c.Size) > worst.Load() {
				worst.Store(int64(c.Size))
			}
		}),
		karger.WithOnMerge(func(before, after int) {
			merges.Add(1)
			assert.Equal(t, before-1, after)
		}),
	)
	require.NoError(t, err)
	assert.EqualValues(t, 25, trials.Load())
	assert.EqualValues(t, 25*3, merges.Load(), "K5 needs three merges per trial")
	assert.LessOrEqual(t, int64(c.Size), worst.Load())
}

func TestMinCutCancel(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(6))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var ran atomic.Int64
	_, err = karger.MinCut(g, 1000,
		karger.WithContext(ctx),
		karger.WithWorkers(1),
		karger.WithOnTrial(func(int, karger.Cut) {
			ran.Add(1)
			cancel()
		}),
	)
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
	assert.Less(t, ran.Load(), int64(1000))

	_, err = karger.MinCut(g, 5, karger.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// bruteForce enumerates every bipartition of g with both sides non-empty.
func bruteForce(g *core.Graph) int {
	vals := g.Values()
	pos := make(map[int]uint, len(vals))
	for i, v := range vals {
		pos[v] = uint(i)
	}
	edges := g.Edges()
	best := len(edges)
	// Vertex 0 stays on side 0; masks cover the others.
	for mask := uint(1); mask < 1<<(len(vals)-1); mask++ {
		side := mask << 1
		crossing := 0
		for _, e := range edges {
			if (side>>pos[e.From])&1 != (side>>pos[e.To])&1 {
				crossing++
			}
		}
		if crossing < best {
			best = crossing
		}
	}
	return best
}

func TestMinCutMatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		n := 5 + int(seed)%4
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, 0.4))
		require.NoError(t, err)

		c, err := karger.MinCut(g, 1500, karger.WithSeed(seed))
		require.NoError(t, err)
		require.NoError(t, karger.VerifyCut(g, c))
		assert.Equal(t, bruteForce(g), c.Size, "seed=%d n=%d", seed, n)
	}
}
