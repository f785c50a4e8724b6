package main

import "fmt"

// Node is a positioned, labeled vertex. X and Y are logical canvas
// coordinates of the box's top-left corner.
type Node struct {
	ID    int     `json:"id"`
	Type  string  `json:"type"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Label string  `json:"label"`
}

// Width returns the box width in logical units, sized to fit the label.
func (n Node) Width() float64 {
	w := len([]rune(n.Label)) + 2*nodePadding
	if w < minNodeWidth {
		w = minNodeWidth
	}
	return float64(w)
}

// Height returns the box height in logical units.
func (n Node) Height() float64 {
	return nodeHeight
}

// Center returns the center of the node box.
func (n Node) Center() Point {
	return Point{X: n.X + n.Width()/2, Y: n.Y + n.Height()/2}
}

// Contains reports whether a logical point falls inside the node box.
func (n Node) Contains(p Point) bool {
	return p.X >= n.X && p.X < n.X+n.Width() &&
		p.Y >= n.Y && p.Y < n.Y+n.Height()
}

// HandlePos returns the logical position of the node's connect handle,
// the cell just outside the middle of its right edge.
func (n Node) HandlePos() Point {
	return Point{X: n.X + n.Width() + 0.5, Y: n.Y + n.Height()/2}
}

// Edge is a directed connection between two distinct nodes. The ID is
// derived from the ordered endpoint pair; parallel edges between the same
// pair share an ID and are permitted.
type Edge struct {
	ID   string `json:"id"`
	From int    `json:"from"`
	To   int    `json:"to"`
}

func edgeID(from, to int) string {
	return fmt.Sprintf("e%d-%d", from, to)
}

// Graph is the node/edge store. It is history-agnostic: callers that want
// a mutation to be undoable record a snapshot before calling into it.
// Unknown ids are tolerated everywhere as silent no-ops, because gestures
// can race against deletions.
type Graph struct {
	Nodes []Node
	Edges []Edge

	nextID int
}

// NewGraph returns an empty graph with its own id counter.
func NewGraph() *Graph {
	return &Graph{nextID: 1}
}

// AddNode inserts a node of the given type at a logical position and
// returns it. Ids come from a per-graph counter and are never reused, even
// across undo.
func (g *Graph) AddNode(typ string, x, y float64) Node {
	n := Node{
		ID:    g.nextID,
		Type:  typ,
		X:     x,
		Y:     y,
		Label: defaultNodeLabel,
	}
	g.nextID++
	g.Nodes = append(g.Nodes, n)
	return n
}

// MoveNode translates a node by a logical delta. Unknown id is a no-op.
func (g *Graph) MoveNode(id int, dx, dy float64) {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			g.Nodes[i].X += dx
			g.Nodes[i].Y += dy
			return
		}
	}
}

// SetNodeLabel replaces a node's label. Unknown id is a no-op.
func (g *Graph) SetNodeLabel(id int, label string) {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			g.Nodes[i].Label = label
			return
		}
	}
}

// DeleteNode removes a node and every edge that references it at either
// endpoint. Unknown id is a no-op.
func (g *Graph) DeleteNode(id int) {
	found := false
	for i, n := range g.Nodes {
		if n.ID == id {
			g.Nodes = append(g.Nodes[:i], g.Nodes[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return
	}
	kept := g.Edges[:0]
	for _, e := range g.Edges {
		if e.From != id && e.To != id {
			kept = append(kept, e)
		}
	}
	g.Edges = kept
}

// AddEdge creates a directed edge. Self-loops are rejected; duplicate
// (from, to) pairs are not. The endpoints are not checked for existence:
// dangling references are skipped at render time instead.
func (g *Graph) AddEdge(from, to int) (Edge, bool) {
	if from == to {
		return Edge{}, false
	}
	e := Edge{ID: edgeID(from, to), From: from, To: to}
	g.Edges = append(g.Edges, e)
	return e, true
}

// DeleteEdge removes the first edge with the given id. Absent id is a
// no-op.
func (g *Graph) DeleteEdge(id string) {
	for i, e := range g.Edges {
		if e.ID == id {
			g.Edges = append(g.Edges[:i], g.Edges[i+1:]...)
			return
		}
	}
}

// Node returns the node with the given id, if present.
func (g *Graph) Node(id int) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// NodeAt returns the id of the topmost node containing the logical point,
// or -1. Later nodes draw on top, so the scan runs back to front.
func (g *Graph) NodeAt(p Point) int {
	for i := len(g.Nodes) - 1; i >= 0; i-- {
		if g.Nodes[i].Contains(p) {
			return g.Nodes[i].ID
		}
	}
	return -1
}

// HandleAt returns the id of the node whose connect handle is within tol
// logical units of the point, or -1.
func (g *Graph) HandleAt(p Point, tol float64) int {
	for i := len(g.Nodes) - 1; i >= 0; i-- {
		h := g.Nodes[i].HandlePos()
		if absf(h.X-p.X) <= tol && absf(h.Y-p.Y) <= tol {
			return g.Nodes[i].ID
		}
	}
	return -1
}

// EdgeAt returns the id of the edge whose midpoint glyph is within tol
// logical units of the point, or "". Edges with a missing endpoint are
// skipped.
func (g *Graph) EdgeAt(p Point, tol float64) string {
	for i := len(g.Edges) - 1; i >= 0; i-- {
		e := g.Edges[i]
		from, ok := g.Node(e.From)
		if !ok {
			continue
		}
		to, ok := g.Node(e.To)
		if !ok {
			continue
		}
		mid := midpoint(from.Center(), to.Center())
		if absf(mid.X-p.X) <= tol && absf(mid.Y-p.Y) <= tol {
			return e.ID
		}
	}
	return ""
}

// Snapshot returns a deep copy of the graph's document state. The id
// counter is deliberately not part of it: ids stay unique for the session
// even across undo.
func (g *Graph) Snapshot() Snapshot {
	return Snapshot{
		Nodes: append([]Node(nil), g.Nodes...),
		Edges: append([]Edge(nil), g.Edges...),
	}
}

// Restore replaces the graph's document state with a copy of the snapshot.
// The id counter keeps advancing monotonically.
func (g *Graph) Restore(s Snapshot) {
	g.Nodes = append([]Node(nil), s.Nodes...)
	g.Edges = append([]Edge(nil), s.Edges...)
	for _, n := range g.Nodes {
		if n.ID >= g.nextID {
			g.nextID = n.ID + 1
		}
	}
}
