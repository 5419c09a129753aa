package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/ordgraph/core"
)

type ModifierSuite struct {
	suite.Suite
	g *StringGraph
}

func (s *ModifierSuite) SetupTest() {
	// A→B(1), A→C(2), A→D(3); individual tests may add to it
	s.g = newFanGraph(s.T())
}

func (s *ModifierSuite) TestInsertNodeIsIdempotent() {
	require := require.New(s.T())
	require.False(s.g.InsertNode(NodeA), "existing node must not be inserted again")
	require.True(s.g.InsertNode(""), "the zero label is an ordinary label")
	require.False(s.g.InsertNode(""))
	require.Equal([]string{"", NodeA, NodeB, NodeC, NodeD}, s.g.Nodes())
}

func (s *ModifierSuite) TestInsertEdge() {
	require := require.New(s.T())

	_, err := s.g.InsertEdge(NodeA, NodeX, Weight1)
	require.ErrorIs(err, core.ErrEndpointNotFound, "missing dst")
	_, err = s.g.InsertEdge(NodeX, NodeA, Weight1)
	require.ErrorIs(err, core.ErrEndpointNotFound, "missing src")
	require.Equal(3, s.g.EdgeCount(), "failed insert must not mutate")

	ok, err := s.g.InsertEdge(NodeA, NodeB, Weight1)
	require.NoError(err)
	require.False(ok, "duplicate triple")

	ok, err = s.g.InsertEdge(NodeA, NodeB, Weight7)
	require.NoError(err)
	require.True(ok, "parallel edge with a new weight")

	ok, err = s.g.InsertEdge(NodeD, NodeD, Weight4)
	require.NoError(err)
	require.True(ok, "self-loop")
	require.Equal(5, s.g.EdgeCount())
	requireRefsMatch(s.T(), s.g)
}

func (s *ModifierSuite) TestInsertEdgeErrorMessage() {
	_, err := s.g.InsertEdge(NodeA, NodeX, Weight1)
	require.EqualError(s.T(), err,
		"core: cannot call InsertEdge when either src or dst node does not exist: core: endpoint not found")
}

func (s *ModifierSuite) TestReplaceNode() {
	require := require.New(s.T())

	_, err := s.g.ReplaceNode(NodeX, NodeZ)
	require.ErrorIs(err, core.ErrNodeNotFound)

	ok, err := s.g.ReplaceNode(NodeA, NodeB)
	require.NoError(err)
	require.False(ok, "new label collides")

	// new label is checked before old label
	ok, err = s.g.ReplaceNode(NodeX, NodeB)
	require.NoError(err)
	require.False(ok)

	ok, err = s.g.ReplaceNode(NodeA, NodeZ)
	require.NoError(err)
	require.True(ok)
	require.False(s.g.IsNode(NodeA))
	require.Equal([]string{NodeB, NodeC, NodeD, NodeZ}, s.g.Nodes())

	w, err := s.g.Weights(NodeZ, NodeC)
	require.NoError(err)
	require.Equal([]int{Weight2}, w, "edges follow the renamed node")
	requireRefsMatch(s.T(), s.g)
}

func (s *ModifierSuite) TestReplaceNodeKeepsEdgeOrder() {
	require := require.New(s.T())
	mustInsertEdge(s.T(), s.g, NodeB, NodeA, Weight4)

	// A sorts first; renamed to Z it must sort last
	_, err := s.g.ReplaceNode(NodeA, NodeZ)
	require.NoError(err)

	want := []core.Edge[string, int]{
		{From: NodeB, To: NodeZ, Weight: Weight4},
		{From: NodeZ, To: NodeB, Weight: Weight1},
		{From: NodeZ, To: NodeC, Weight: Weight2},
		{From: NodeZ, To: NodeD, Weight: Weight3},
	}
	require.Equal(want, collect(s.g))
	require.False(s.g.Find(NodeB, NodeZ, Weight4).IsEnd())
	require.False(s.g.Find(NodeZ, NodeD, Weight3).IsEnd())
}

func (s *ModifierSuite) TestMergeReplaceNodePreconditions() {
	require := require.New(s.T())
	mustInsertEdge(s.T(), s.g, NodeC, NodeD, Weight4)

	require.ErrorIs(s.g.MergeReplaceNode(NodeE, NodeD), core.ErrNodeNotFound)
	require.ErrorIs(s.g.MergeReplaceNode(NodeC, NodeE), core.ErrNodeNotFound)
	require.True(s.g.IsNode(NodeC))
	require.True(s.g.IsNode(NodeD))

	w, err := s.g.Weights(NodeC, NodeD)
	require.NoError(err)
	require.NotEmpty(w)
}

func (s *ModifierSuite) TestMergeReplaceNodeCollapsesDuplicates() {
	require := require.New(s.T())
	// (A,C,2) and (B,C,2) meet on merge A→B
	mustInsertEdge(s.T(), s.g, NodeB, NodeC, Weight2)
	mustInsertEdge(s.T(), s.g, NodeC, NodeA, Weight1)
	mustInsertEdge(s.T(), s.g, NodeC, NodeB, Weight1)

	require.NoError(s.g.MergeReplaceNode(NodeA, NodeB))
	require.False(s.g.IsNode(NodeA))

	want := []core.Edge[string, int]{
		{From: NodeB, To: NodeB, Weight: Weight1},
		{From: NodeB, To: NodeC, Weight: Weight2},
		{From: NodeB, To: NodeD, Weight: Weight3},
		{From: NodeC, To: NodeB, Weight: Weight1},
	}
	require.Equal(want, collect(s.g))
	requireRefsMatch(s.T(), s.g)

	refs, ok := s.g.Refs(NodeB)
	require.True(ok)
	require.Equal(5, refs, "self-loop counts twice")
	require.Equal(1, s.g.Stats().FreeSlots, "merged slot is recycled")
}

func (s *ModifierSuite) TestMergeReplaceNodeIntoItself() {
	before := s.g.Clone()
	require.NoError(s.T(), s.g.MergeReplaceNode(NodeA, NodeA))
	require.True(s.T(), s.g.Equal(before))
}

func (s *ModifierSuite) TestEraseNode() {
	require := require.New(s.T())
	require.False(s.g.EraseNode(NodeX))

	require.True(s.g.EraseNode(NodeA))
	require.False(s.g.IsNode(NodeA))
	require.Zero(s.g.EdgeCount())
	for _, n := range s.g.Nodes() {
		c, err := s.g.Connections(n)
		require.NoError(err)
		require.Empty(c)
	}
	requireRefsMatch(s.T(), s.g)
}

func (s *ModifierSuite) TestEraseIsolatedNodeRoundTrip() {
	require := require.New(s.T())
	require.True(s.g.InsertNode(NodeE))
	before := s.g.Clone()

	require.True(s.g.EraseNode(NodeE))
	require.False(s.g.IsNode(NodeE))
	require.True(s.g.InsertNode(NodeE))
	require.True(s.g.Equal(before))
}

func (s *ModifierSuite) TestEraseEdgeByValue() {
	require := require.New(s.T())
	mustInsertEdge(s.T(), s.g, NodeD, NodeD, Weight4)

	ok, err := s.g.EraseEdge(NodeA, NodeB, 555)
	require.NoError(err)
	require.False(ok)

	ok, err = s.g.EraseEdge(NodeD, NodeD, Weight4)
	require.NoError(err)
	require.True(ok)
	w, err := s.g.Weights(NodeD, NodeD)
	require.NoError(err)
	require.Empty(w)

	for _, pair := range [][2]string{{NodeE, NodeD}, {NodeC, NodeE}, {NodeE, NodeX}} {
		_, err = s.g.EraseEdge(pair[0], pair[1], Weight4)
		require.ErrorIs(err, core.ErrEndpointNotFound, "%v", pair)
	}
	require.True(s.g.IsNode(NodeD), "erasing an edge keeps both endpoints")
	requireRefsMatch(s.T(), s.g)
}

func (s *ModifierSuite) TestEraseEdgeAt() {
	require := require.New(s.T())

	next := s.g.EraseEdgeAt(s.g.Find(NodeA, NodeB, Weight1))
	require.Equal(core.Edge[string, int]{From: NodeA, To: NodeC, Weight: Weight2}, next.Value())
	require.True(s.g.IsNode(NodeB))

	last := s.g.EraseEdgeAt(s.g.Find(NodeA, NodeD, Weight3))
	require.True(last.Equal(s.g.End()), "erasing the last edge yields End")

	require.True(s.g.EraseEdgeAt(s.g.End()).IsEnd())
	require.Equal(1, s.g.EdgeCount())
}

func (s *ModifierSuite) TestClear() {
	require := require.New(s.T())
	before := s.g.Clone()
	s.g.Clear()

	require.False(s.g.Equal(before))
	require.True(s.g.Empty())
	require.Zero(s.g.EdgeCount())
	require.True(s.g.Begin().IsEnd())
	require.True(s.g.InsertNode(NodeA), "graph stays usable")
}

func TestModifierSuite(t *testing.T) {
	suite.Run(t, new(ModifierSuite))
}

// TestEraseEdgeRange VERIFIES the half-open range semantics and the returned position.
func TestEraseEdgeRange(t *testing.T) {
	build := func() *core.Graph[int, int] {
		return core.FromEdges[int, int]([]core.Edge[int, int]{
			{From: 4, To: 1, Weight: -4},
			{From: 3, To: 2, Weight: 2},
			{From: 2, To: 4, Weight: 2},
			{From: 2, To: 1, Weight: 1},
			{From: 6, To: 2, Weight: 5},
			{From: 6, To: 3, Weight: 10},
			{From: 1, To: 5, Weight: -1},
			{From: 3, To: 6, Weight: -8},
			{From: 4, To: 5, Weight: 3},
			{From: 5, To: 2, Weight: 7},
		})
	}

	t.Run("middle", func(t *testing.T) {
		g := build()
		ret := g.EraseEdgeRange(g.Find(2, 4, 2), g.Find(4, 1, -4))
		require.Equal(t, core.Edge[int, int]{From: 4, To: 1, Weight: -4}, ret.Value())
		require.Equal(t, 7, g.EdgeCount())
		for _, p := range [][2]int{{1, 5}, {2, 1}, {4, 1}, {4, 5}, {5, 2}, {6, 2}, {6, 3}} {
			ok, err := g.IsConnected(p[0], p[1])
			require.NoError(t, err)
			require.True(t, ok, "%v", p)
		}
		ok, err := g.IsConnected(3, 2)
		require.NoError(t, err)
		require.False(t, ok)
		requireSortedInts(t, g)
		requireRefsMatch(t, g)
	})

	t.Run("tail to End", func(t *testing.T) {
		g := build()
		ret := g.EraseEdgeRange(g.Find(6, 2, 5), g.End())
		require.True(t, ret.IsEnd())
		require.Equal(t, 8, g.EdgeCount())
	})

	t.Run("head", func(t *testing.T) {
		g := build()
		ret := g.EraseEdgeRange(g.Begin(), g.Find(2, 1, 1))
		require.Equal(t, core.Edge[int, int]{From: 2, To: 1, Weight: 1}, ret.Value())
		require.True(t, ret.Equal(g.Begin()))
	})

	t.Run("empty ranges", func(t *testing.T) {
		g := build()
		before := g.Clone()

		require.True(t, g.EraseEdgeRange(g.End(), g.Find(5, 2, 7)).IsEnd())
		require.True(t, g.EraseEdgeRange(g.End(), g.End()).IsEnd())
		x := g.Find(5, 2, 7)
		require.True(t, g.EraseEdgeRange(x, x).Equal(x))
		require.True(t, g.Equal(before))
	})

	t.Run("everything", func(t *testing.T) {
		g := build()
		require.True(t, g.EraseEdgeRange(g.Begin(), g.End()).IsEnd())
		require.Zero(t, g.EdgeCount())
		require.Equal(t, 6, g.NodeCount(), "nodes survive edge erasure")
	})
}
