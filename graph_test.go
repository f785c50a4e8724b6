package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNodeDefaults(t *testing.T) {
	g := NewGraph()
	n := g.AddNode(defaultNodeType, 220, 170)

	assert.Equal(t, 1, n.ID)
	assert.Equal(t, defaultNodeType, n.Type)
	assert.Equal(t, defaultNodeLabel, n.Label)
	assert.Equal(t, 220.0, n.X)
	assert.Equal(t, 170.0, n.Y)
	assert.Len(t, g.Nodes, 1)
}

func TestNodeIDsNeverReused(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(defaultNodeType, 0, 0)
	before := g.Snapshot()
	b := g.AddNode(defaultNodeType, 10, 0)
	require.Equal(t, a.ID+1, b.ID)

	// Roll back past b's creation; the next id must still be fresh.
	g.Restore(before)
	c := g.AddNode(defaultNodeType, 20, 0)
	assert.Greater(t, c.ID, b.ID)
}

func TestSeparateGraphsHaveSeparateCounters(t *testing.T) {
	g1 := NewGraph()
	g2 := NewGraph()
	assert.Equal(t, g1.AddNode(defaultNodeType, 0, 0).ID, g2.AddNode(defaultNodeType, 0, 0).ID)
}

func TestUnknownIDsAreNoOps(t *testing.T) {
	g := NewGraph()
	g.AddNode(defaultNodeType, 5, 5)
	before := g.Snapshot()

	g.MoveNode(99, 10, 10)
	g.SetNodeLabel(99, "ghost")
	g.DeleteNode(99)
	g.DeleteEdge("e1-99")

	assert.Equal(t, before, g.Snapshot())
}

func TestMoveNodeTranslates(t *testing.T) {
	g := NewGraph()
	n := g.AddNode(defaultNodeType, 10, 20)
	g.MoveNode(n.ID, 3, -4)
	g.MoveNode(n.ID, 1, 1)

	got, ok := g.Node(n.ID)
	require.True(t, ok)
	assert.Equal(t, 14.0, got.X)
	assert.Equal(t, 17.0, got.Y)
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	g := NewGraph()
	n := g.AddNode(defaultNodeType, 0, 0)

	_, ok := g.AddEdge(n.ID, n.ID)
	assert.False(t, ok)
	assert.Empty(t, g.Edges)
}

func TestAddEdgePermitsDuplicatesAndDangling(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(defaultNodeType, 0, 0)
	b := g.AddNode(defaultNodeType, 30, 0)

	e1, ok := g.AddEdge(a.ID, b.ID)
	require.True(t, ok)
	e2, ok := g.AddEdge(a.ID, b.ID)
	require.True(t, ok)
	assert.Equal(t, e1.ID, e2.ID, "id derives from the ordered pair")
	assert.Len(t, g.Edges, 2)

	// Endpoint existence is not checked at creation time.
	_, ok = g.AddEdge(a.ID, 77)
	assert.True(t, ok)
}

func TestEdgeIDDerivation(t *testing.T) {
	assert.Equal(t, "e3-7", edgeID(3, 7))
	assert.NotEqual(t, edgeID(3, 7), edgeID(7, 3))
}

func TestDeleteNodeCascadesEdges(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(defaultNodeType, 0, 0)
	b := g.AddNode(defaultNodeType, 30, 0)
	c := g.AddNode(defaultNodeType, 60, 0)
	g.AddEdge(a.ID, b.ID)
	g.AddEdge(b.ID, c.ID)
	g.AddEdge(c.ID, a.ID)

	g.DeleteNode(b.ID)

	assert.Len(t, g.Nodes, 2)
	require.Len(t, g.Edges, 1)
	for _, e := range g.Edges {
		assert.NotEqual(t, b.ID, e.From)
		assert.NotEqual(t, b.ID, e.To)
	}
}

func TestDeleteEdgeRemovesFirstMatch(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(defaultNodeType, 0, 0)
	b := g.AddNode(defaultNodeType, 30, 0)
	e, _ := g.AddEdge(a.ID, b.ID)
	g.AddEdge(a.ID, b.ID)

	g.DeleteEdge(e.ID)
	assert.Len(t, g.Edges, 1)

	g.DeleteEdge("nope")
	assert.Len(t, g.Edges, 1)
}

func TestNodeAtPrefersTopmost(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(defaultNodeType, 0, 0)
	b := g.AddNode(defaultNodeType, 2, 1) // overlaps a, drawn later

	assert.Equal(t, b.ID, g.NodeAt(Point{X: 4, Y: 2}))
	assert.Equal(t, a.ID, g.NodeAt(Point{X: 1, Y: 0.5}))
	assert.Equal(t, -1, g.NodeAt(Point{X: 500, Y: 500}))
}

func TestHandleAt(t *testing.T) {
	g := NewGraph()
	n := g.AddNode(defaultNodeType, 10, 10)
	h := n.HandlePos()

	assert.Equal(t, n.ID, g.HandleAt(h, 0.1))
	assert.Equal(t, n.ID, g.HandleAt(Point{X: h.X + 0.9, Y: h.Y - 0.9}, 1.0))
	assert.Equal(t, -1, g.HandleAt(Point{X: h.X + 3, Y: h.Y}, 1.0))
}

func TestEdgeAtSkipsDangling(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(defaultNodeType, 0, 0)
	b := g.AddNode(defaultNodeType, 40, 0)
	e, _ := g.AddEdge(a.ID, b.ID)
	g.AddEdge(a.ID, 99)

	an, _ := g.Node(a.ID)
	bn, _ := g.Node(b.ID)
	mid := midpoint(an.Center(), bn.Center())

	assert.Equal(t, e.ID, g.EdgeAt(mid, 1.0))
	assert.Equal(t, "", g.EdgeAt(Point{X: -50, Y: -50}, 1.0))
}

func TestSnapshotDoesNotAliasLiveState(t *testing.T) {
	g := NewGraph()
	n := g.AddNode(defaultNodeType, 1, 2)
	snap := g.Snapshot()

	g.MoveNode(n.ID, 100, 100)
	g.SetNodeLabel(n.ID, "changed")

	require.Len(t, snap.Nodes, 1)
	assert.Equal(t, 1.0, snap.Nodes[0].X)
	assert.Equal(t, defaultNodeLabel, snap.Nodes[0].Label)
}

// Scenario from the editor's expected behavior: add, connect, cascade.
func TestScenarioAddAndConnect(t *testing.T) {
	g := NewGraph()
	a := g.AddNode(defaultNodeType, 220, 170)

	b := g.AddNode(defaultNodeType, 260, 200)
	require.Len(t, g.Nodes, 2)

	e, ok := g.AddEdge(a.ID, b.ID)
	require.True(t, ok)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, a.ID, e.From)
	assert.Equal(t, b.ID, e.To)

	g.DeleteNode(a.ID)
	assert.Empty(t, g.Edges)
	require.Len(t, g.Nodes, 1)
	assert.Equal(t, b.ID, g.Nodes[0].ID)
}
