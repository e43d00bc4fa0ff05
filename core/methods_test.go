package core_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mincut/core"
)

// Common labels and weights used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeX = "X"

	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight5 = 5
)

// square builds A–B(1), B–C(2), C–D(3), D–A(5).
func square(t *testing.T) *core.WeightedGraph[string] {
	t.Helper()
	g := core.New[string]()
	require.NoError(t, g.AddEdge(NodeA, NodeB, Weight1))
	require.NoError(t, g.AddEdge(NodeB, NodeC, Weight2))
	require.NoError(t, g.AddEdge(NodeC, NodeD, Weight3))
	require.NoError(t, g.AddEdge(NodeD, NodeA, Weight5))

	return g
}

// assertSymmetric checks weight(u→v) == weight(v→u) and the absence of self-loops.
func assertSymmetric(t *testing.T, g *core.WeightedGraph[int]) {
	t.Helper()
	for _, u := range g.Nodes() {
		assert.Zero(t, g.EdgeWeight(u, u), "self-loop on %d", u)
		for v, w := range g.NeighbourWeights(u) {
			assert.True(t, g.HasNode(v), "dangling neighbour %d of %d", v, u)
			assert.Equal(t, w, g.EdgeWeight(v, u), "asymmetric %d–%d", u, v)
			assert.Positive(t, w)
		}
	}
}

// randomGraph returns a graph over 0..n-1 with roughly p·n²/2 edges of weight 1..maxW.
func randomGraph(r *rand.Rand, n int, p float64, maxW int64) *core.WeightedGraph[int] {
	g := core.New[int]()
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.Float64() < p {
				_ = g.AddEdge(i, j, 1+r.Int63n(maxW))
			}
		}
	}

	return g
}

type WeightedGraphSuite struct {
	suite.Suite
}

func TestWeightedGraphSuite(t *testing.T) {
	suite.Run(t, new(WeightedGraphSuite))
}

func (s *WeightedGraphSuite) TestAddEdgeAccumulates() {
	g := core.New[string]()
	s.Require().NoError(g.AddEdge(NodeA, NodeB, Weight2))
	s.Require().NoError(g.AddEdge(NodeB, NodeA, Weight3))

	s.Equal(int64(Weight2+Weight3), g.EdgeWeight(NodeA, NodeB))
	s.Equal(int64(Weight2+Weight3), g.EdgeWeight(NodeB, NodeA))
	s.Equal(2, g.NodeCount())
	s.Equal(1, g.EdgeCount())
	s.Equal(int64(Weight2+Weight3), g.TotalWeight())
}

func (s *WeightedGraphSuite) TestAddEdgeRejectsSelfLoop() {
	g := core.New[string]()
	for _, w := range []int64{-1, 0, 1, 7} {
		err := g.AddEdge(NodeX, NodeX, w)
		s.Require().ErrorIs(err, core.ErrInvalidEdge, "w=%d", w)
	}
	s.Zero(g.NodeCount(), "rejected edge must not create nodes")
}

func (s *WeightedGraphSuite) TestAddEdgeRejectsNonPositiveWeight() {
	g := core.New[string]()
	s.ErrorIs(g.AddEdge(NodeA, NodeB, 0), core.ErrInvalidEdge)
	s.ErrorIs(g.AddEdge(NodeA, NodeB, -3), core.ErrInvalidEdge)
	s.False(g.HasNode(NodeA))
}

func (s *WeightedGraphSuite) TestAddEdgeRejectsTotalOverflow() {
	g := core.New[string]()
	s.Require().NoError(g.AddEdge(NodeA, NodeB, math.MaxInt64))

	s.ErrorIs(g.AddEdge(NodeA, NodeB, Weight1), core.ErrInvalidEdge)
	s.ErrorIs(g.AddEdge(NodeC, NodeD, Weight1), core.ErrInvalidEdge)
	s.Equal(int64(math.MaxInt64), g.EdgeWeight(NodeA, NodeB))
	s.Equal(int64(math.MaxInt64), g.TotalWeight())
	s.False(g.HasNode(NodeC), "rejected edge must not create nodes")

	// Removing the heavy edge frees the budget again.
	s.Require().NoError(g.RemoveNode(NodeA))
	s.Zero(g.TotalWeight())
	s.NoError(g.AddEdge(NodeC, NodeD, math.MaxInt64))
}

func (s *WeightedGraphSuite) TestMergeIntoNearMaxWeights() {
	const half = math.MaxInt64 / 2
	g := core.New[string]()
	s.Require().NoError(g.AddEdge(NodeA, NodeC, half))
	s.Require().NoError(g.AddEdge(NodeB, NodeC, half))
	s.Require().NoError(g.MergeInto(NodeA, NodeB))

	s.Equal(int64(2*half), g.EdgeWeight(NodeB, NodeC))
	s.Equal(int64(2*half), g.EdgeWeight(NodeC, NodeB))
	s.Equal(int64(2*half), g.TotalWeight())
	s.Positive(g.EdgeWeight(NodeB, NodeC))
}

func (s *WeightedGraphSuite) TestTotalWeightTracksContraction() {
	g := square(s.T())
	s.Require().NoError(g.MergeInto(NodeA, NodeB))
	s.Require().NoError(g.MergeInto(NodeC, NodeD))
	// Only the B–D edge is left: A–D(5) + C–B(2) redirected, A–B and C–D dropped.
	s.Equal(int64(Weight5+Weight2), g.TotalWeight())
	s.Equal(g.TotalWeight(), g.Clone().TotalWeight())
}

func (s *WeightedGraphSuite) TestEdgeWeightWithoutEdge() {
	g := square(s.T())
	s.Zero(g.EdgeWeight(NodeA, NodeC))
	s.Zero(g.EdgeWeight(NodeA, "missing"))
}

func (s *WeightedGraphSuite) TestNeighboursSorted() {
	g := square(s.T())
	nbrs, err := g.Neighbours(NodeA)
	s.Require().NoError(err)
	s.Equal([]string{NodeB, NodeD}, nbrs)

	_, err = g.Neighbours("missing")
	s.ErrorIs(err, core.ErrUnknownNode)

	deg, err := g.Degree(NodeC)
	s.Require().NoError(err)
	s.Equal(2, deg)
}

func (s *WeightedGraphSuite) TestRemoveNode() {
	g := core.New[string]()
	s.Require().NoError(g.AddEdge(NodeA, NodeB, Weight1))
	s.Require().NoError(g.AddEdge(NodeB, NodeC, Weight1))

	s.Require().NoError(g.RemoveNode(NodeB))
	s.False(g.HasNode(NodeB))
	s.Equal([]string{NodeA, NodeC}, g.Nodes())

	// A and C had only B as neighbour; both stay as isolated nodes.
	nbrs, err := g.Neighbours(NodeA)
	s.Require().NoError(err)
	s.Empty(nbrs)
	s.Zero(g.EdgeCount())

	s.ErrorIs(g.RemoveNode(NodeB), core.ErrUnknownNode)
}

func (s *WeightedGraphSuite) TestReAddAfterRemove() {
	g := square(s.T())
	s.Require().NoError(g.RemoveNode(NodeA))
	s.Require().NoError(g.AddEdge(NodeA, NodeC, Weight2))
	s.Equal(int64(Weight2), g.EdgeWeight(NodeA, NodeC))
	s.Zero(g.EdgeWeight(NodeA, NodeB), "old edges must not come back")
	s.Equal(4, g.NodeCount())
}

func (s *WeightedGraphSuite) TestMergeInto() {
	g := square(s.T())
	// Contract A into B: A–D(5) becomes B–D(5); A–B(1) is dropped.
	s.Require().NoError(g.MergeInto(NodeA, NodeB))

	s.False(g.HasNode(NodeA))
	s.Equal(int64(Weight5), g.EdgeWeight(NodeB, NodeD))
	s.Equal(int64(Weight2), g.EdgeWeight(NodeB, NodeC))
	s.Equal(int64(Weight2+Weight3+Weight5), g.TotalWeight())
}

func (s *WeightedGraphSuite) TestMergeIntoAccumulatesSharedNeighbour() {
	g := core.New[string]()
	s.Require().NoError(g.AddEdge(NodeA, NodeC, Weight2))
	s.Require().NoError(g.AddEdge(NodeB, NodeC, Weight3))
	s.Require().NoError(g.MergeInto(NodeA, NodeB))
	s.Equal(int64(Weight2+Weight3), g.EdgeWeight(NodeB, NodeC))
	s.Equal(int64(Weight2+Weight3), g.EdgeWeight(NodeC, NodeB))
}

func (s *WeightedGraphSuite) TestMergeIntoErrors() {
	g := square(s.T())
	s.ErrorIs(g.MergeInto(NodeA, NodeA), core.ErrInvalidEdge)
	s.ErrorIs(g.MergeInto("missing", NodeA), core.ErrUnknownNode)
	s.ErrorIs(g.MergeInto(NodeA, "missing"), core.ErrUnknownNode)
	s.Equal(4, g.NodeCount(), "failed merges must not mutate")
}

func (s *WeightedGraphSuite) TestEdgesAndCrossing() {
	g := square(s.T())
	s.Equal([]core.Edge[string]{
		{U: NodeA, V: NodeB, Weight: Weight1},
		{U: NodeA, V: NodeD, Weight: Weight5},
		{U: NodeB, V: NodeC, Weight: Weight2},
		{U: NodeC, V: NodeD, Weight: Weight3},
	}, g.Edges())

	side := map[string]bool{NodeA: true, NodeB: true}
	s.Equal(int64(Weight2+Weight5), g.CrossingWeight(side))
	s.Equal([]core.Edge[string]{
		{U: NodeA, V: NodeD, Weight: Weight5},
		{U: NodeB, V: NodeC, Weight: Weight2},
	}, g.CrossingEdges(side))
}

func (s *WeightedGraphSuite) TestCloneIsIndependent() {
	g := square(s.T())
	c := g.Clone()
	s.Require().NoError(c.MergeInto(NodeA, NodeB))
	s.Require().NoError(c.AddEdge(NodeC, NodeX, Weight1))

	s.Equal(4, g.NodeCount())
	s.Equal(int64(Weight1), g.EdgeWeight(NodeA, NodeB))
	s.False(g.HasNode(NodeX))
	s.Equal(g.Edges(), square(s.T()).Edges())
}

func (s *WeightedGraphSuite) TestFromEdges() {
	g, err := core.FromEdges([]core.Edge[string]{
		{U: NodeA, V: NodeB, Weight: Weight1},
		{U: NodeB, V: NodeA, Weight: Weight1},
	})
	s.Require().NoError(err)
	s.Equal(int64(2), g.EdgeWeight(NodeA, NodeB))

	_, err = core.FromEdges([]core.Edge[string]{{U: NodeA, V: NodeA, Weight: Weight1}})
	s.ErrorIs(err, core.ErrInvalidEdge)
}

// TestMergeConservesCrossingWeight contracts random pairs and checks that every
// bipartition keeping each contracted pair together sees the same crossing weight.
func TestMergeConservesCrossingWeight(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 25; round++ {
		n := 4 + r.Intn(7)
		g := randomGraph(r, n, 0.5, 9)
		// Fixed random bipartition over the original labels.
		side := make(map[int]bool, n)
		for v := 0; v < n; v++ {
			side[v] = r.Intn(2) == 0
		}
		want := g.CrossingWeight(side)

		for g.NodeCount() > 2 {
			nodes := g.Nodes()
			u := nodes[r.Intn(len(nodes))]
			v := nodes[r.Intn(len(nodes))]
			if u == v || side[u] != side[v] {
				continue
			}
			require.NoError(t, g.MergeInto(u, v))
			assertSymmetric(t, g)
			require.Equal(t, want, g.CrossingWeight(side), "round %d merge %d→%d", round, u, v)

			if allSameSide(g.Nodes(), side) {
				break
			}
		}
	}
}

func allSameSide(nodes []int, side map[int]bool) bool {
	for _, v := range nodes[1:] {
		if side[v] != side[nodes[0]] {
			return false
		}
	}

	return true
}
