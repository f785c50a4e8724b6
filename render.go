package main

import "math"

// The presentation layer: a pure function of graph, interaction state and
// transform onto a rune grid. Nothing in here mutates the model.

func (m *model) renderCanvas(width, height int) []string {
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = make([]rune, width)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	// Edges behind nodes. Dangling endpoints are skipped silently.
	for _, e := range m.graph.Edges {
		from, ok := m.graph.Node(e.From)
		if !ok {
			continue
		}
		to, ok := m.graph.Node(e.To)
		if !ok {
			continue
		}
		m.drawEdge(grid, from, to, e.ID == m.selectedEdge)
	}

	// Dashed preview while a connect gesture is in flight.
	if m.mode == ModeConnecting {
		if from, ok := m.graph.Node(m.connectFrom); ok {
			fx, fy := m.toCell(from.Center())
			m.drawDashedLine(grid, fx, fy, m.pointerX, m.pointerY)
		}
	}

	for _, n := range m.graph.Nodes {
		m.drawNode(grid, n)
	}

	rows := make([]string, height)
	for y, line := range grid {
		rows[y] = string(line)
	}
	return rows
}

// toCell maps a logical point to a screen cell.
func (m *model) toCell(p Point) (int, int) {
	sx, sy := m.view.ToScreen(p, 0, 0)
	return int(math.Round(sx)), int(math.Round(sy))
}

// cellRect maps the node's logical box to a screen rectangle. Both edges
// go through the same transform so drawing stays aligned with hit testing
// at every zoom level.
func (m *model) cellRect(n Node) (x0, y0, w, h int) {
	x0, y0 = m.toCell(Point{X: n.X, Y: n.Y})
	x1, y1 := m.toCell(Point{X: n.X + n.Width(), Y: n.Y + n.Height()})
	return x0, y0, max(x1-x0, 3), max(y1-y0, 1)
}

func (m *model) drawNode(grid [][]rune, n Node) {
	x0, y0, w, h := m.cellRect(n)
	selected := n.ID == m.selectedNode

	corner, horiz, vert := '+', '-', '|'
	if selected {
		corner, horiz, vert = '#', '#', '#'
	}

	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			switch {
			case y == y0 || y == y0+h-1:
				if x == x0 || x == x0+w-1 {
					set(grid, x, y, corner)
				} else {
					set(grid, x, y, horiz)
				}
			case x == x0 || x == x0+w-1:
				set(grid, x, y, vert)
			}
		}
	}

	// Label (or the edit working copy) centered on the middle row. The
	// box may be too flat for an interior at low zoom.
	if h >= 3 {
		label := n.Label
		editing := m.mode == ModeEditing && m.editNode == n.ID
		if editing {
			label = m.editText
		}
		label = truncate(label, w-2)
		tx := x0 + (w-len([]rune(label)))/2
		ty := y0 + h/2
		for i, r := range []rune(label) {
			set(grid, tx+i, ty, r)
		}
		if editing {
			cx := tx + min(m.editCursor, len([]rune(label)))
			set(grid, cx, ty, cursorGlyph)
		}
	}

	// Connect handle on the right edge.
	hx, hy := m.toCell(n.HandlePos())
	set(grid, hx, hy, handleGlyph)
}

// drawEdge routes an orthogonal three-segment line from the source's right
// edge to the target's left edge and marks the grab point at the midpoint
// of the two centers.
func (m *model) drawEdge(grid [][]rune, from, to Node, selected bool) {
	x1, y1 := m.toCell(Point{X: from.X + from.Width(), Y: from.Y + from.Height()/2})
	x2, y2 := m.toCell(Point{X: to.X - 1, Y: to.Y + to.Height()/2})

	horiz, vert := '-', '|'
	if selected {
		horiz, vert = '=', '|'
	}

	mx := (x1 + x2) / 2
	drawHSegment(grid, x1, mx, y1, horiz)
	drawVSegment(grid, mx, y1, y2, vert)
	drawHSegment(grid, mx, x2, y2, horiz)
	if y1 != y2 {
		set(grid, mx, y1, '+')
		set(grid, mx, y2, '+')
	}
	if x2 >= x1 {
		set(grid, x2, y2, '>')
	} else {
		set(grid, x2, y2, '<')
	}

	gx, gy := m.toCell(midpoint(from.Center(), to.Center()))
	set(grid, gx, gy, edgeGlyph)
}

func drawHSegment(grid [][]rune, x1, x2, y int, r rune) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		set(grid, x, y, r)
	}
}

func drawVSegment(grid [][]rune, x, y1, y2 int, r rune) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		set(grid, x, y, r)
	}
}

// drawDashedLine walks a straight line, plotting every other cell.
func (m *model) drawDashedLine(grid [][]rune, x1, y1, x2, y2 int) {
	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy
	x, y, i := x1, y1, 0
	for {
		if i%2 == 0 {
			set(grid, x, y, previewGlyph)
		}
		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
		i++
	}
}

func set(grid [][]rune, x, y int, r rune) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = r
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
