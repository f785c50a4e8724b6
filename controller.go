package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// The pointer gesture state machine. All gestures terminate through
// endGesture so that no gesture state leaks into the next one, whatever
// path ends it.

func (m *model) handleMouse(msg tea.MouseMsg) {
	m.pointerX, m.pointerY = msg.X, msg.Y

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.view.ZoomBy(zoomStep)
		return
	case tea.MouseButtonWheelDown:
		m.view.ZoomBy(1 / zoomStep)
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.pointerDown(msg)
	case tea.MouseActionMotion:
		m.pointerMove(msg)
	case tea.MouseActionRelease:
		m.pointerUp(msg)
	}
}

func (m *model) pointerDown(msg tea.MouseMsg) {
	if msg.Button != tea.MouseButtonLeft {
		return
	}
	m.statusMsg = ""

	// A press anywhere pre-empts whatever was in progress. An in-flight
	// edit is discarded, not committed.
	if m.mode == ModeEditing {
		m.cancelEdit()
	}
	if m.mode != ModeIdle {
		m.cancelGesture()
	}

	lp := m.toLogical(msg.X, msg.Y)
	tol := 1.0 / m.view.K

	if id := m.graph.HandleAt(lp, tol); id >= 0 {
		m.beginConnect(id)
		return
	}

	if id := m.graph.NodeAt(lp); id >= 0 {
		if m.isDoubleClick(id) {
			m.startEdit(id)
			return
		}
		m.rememberClick(id)
		m.beginDrag(id, lp)
		return
	}

	if eid := m.graph.EdgeAt(lp, tol); eid != "" {
		m.selectedNode = -1
		m.selectedEdge = eid
		m.rememberClick(-1)
		return
	}

	// Background press: the universal escape. Clears selection and any
	// in-progress connect or edit, then starts a pan.
	m.selectedNode = -1
	m.selectedEdge = ""
	m.rememberClick(-1)
	m.beginPan(msg.X, msg.Y)
}

func (m *model) pointerMove(msg tea.MouseMsg) {
	switch m.mode {
	case ModeDragging:
		lp := m.toLogical(msg.X, msg.Y)
		m.graph.MoveNode(m.dragNodeID, lp.X-m.dragLast.X, lp.Y-m.dragLast.Y)
		m.dragLast = lp
		m.dragMoved = true
	case ModePanning:
		m.view.X = m.panStartX + float64(msg.X-m.pressX)
		m.view.Y = m.panStartY + float64(msg.Y-m.pressY)
	case ModeConnecting:
		// Pointer position alone drives the dashed preview; nothing to
		// mutate until release.
	}
}

func (m *model) pointerUp(msg tea.MouseMsg) {
	switch m.mode {
	case ModeDragging:
		// One history entry for the whole drag, capturing the pre-drag
		// state. A click with no movement records nothing. A real drag is
		// not a click either, so it must not arm double-click detection.
		if m.dragMoved {
			m.history.Record(m.pendingSnap)
			m.rememberClick(-1)
		}
		m.endGesture()
	case ModePanning:
		m.endGesture()
	case ModeConnecting:
		lp := m.toLogical(msg.X, msg.Y)
		target := m.graph.NodeAt(lp)
		if target >= 0 && target != m.connectFrom {
			m.history.Record(m.graph.Snapshot())
			m.graph.AddEdge(m.connectFrom, target)
		}
		m.endGesture()
	}
}

func (m *model) beginDrag(id int, lp Point) {
	m.mode = ModeDragging
	m.selectedNode = id
	m.selectedEdge = ""
	m.dragNodeID = id
	m.dragLast = lp
	m.dragMoved = false
	m.pendingSnap = m.graph.Snapshot()
}

func (m *model) beginPan(sx, sy int) {
	m.mode = ModePanning
	m.pressX, m.pressY = sx, sy
	m.panStartX, m.panStartY = m.view.X, m.view.Y
}

func (m *model) beginConnect(fromID int) {
	m.mode = ModeConnecting
	m.connectFrom = fromID
}

// cancelGesture aborts an in-flight gesture without recording history. An
// aborted drag rolls the node back to where the gesture found it, so no
// unrecorded mutation survives.
func (m *model) cancelGesture() {
	if m.mode == ModeDragging && m.dragMoved {
		m.graph.Restore(m.pendingSnap)
	}
	m.endGesture()
}

// endGesture is the single exit path for every pointer gesture. Each
// terminating event funnels through here, matching the attach/detach
// pairing the gestures rely on.
func (m *model) endGesture() {
	m.mode = ModeIdle
	m.dragNodeID = -1
	m.dragMoved = false
	m.connectFrom = -1
	m.pendingSnap = Snapshot{}
}

func (m *model) isDoubleClick(id int) bool {
	return id >= 0 && id == m.lastClickNode &&
		time.Since(m.lastClickAt) < doubleClickMillis*time.Millisecond
}

func (m *model) rememberClick(id int) {
	m.lastClickNode = id
	m.lastClickAt = time.Now()
}

// startEdit opens a label editor on a working copy. Nothing touches the
// graph or history until the edit is saved.
func (m *model) startEdit(id int) {
	n, ok := m.graph.Node(id)
	if !ok {
		return
	}
	m.endGesture()
	m.mode = ModeEditing
	m.selectedNode = id
	m.editNode = id
	m.editText = n.Label
	m.editCursor = len([]rune(n.Label))
}

func (m *model) commitEdit() {
	m.history.Record(m.graph.Snapshot())
	m.graph.SetNodeLabel(m.editNode, m.editText)
	m.cancelEdit()
}

func (m *model) cancelEdit() {
	m.mode = ModeIdle
	m.editNode = -1
	m.editText = ""
	m.editCursor = 0
}

// deleteSelection removes the selected node (cascading its edges) or the
// selected edge, recording history first.
func (m *model) deleteSelection() {
	switch {
	case m.selectedNode >= 0:
		m.history.Record(m.graph.Snapshot())
		m.graph.DeleteNode(m.selectedNode)
		m.selectedNode = -1
	case m.selectedEdge != "":
		m.history.Record(m.graph.Snapshot())
		m.graph.DeleteEdge(m.selectedEdge)
		m.selectedEdge = ""
	}
}

// addNodeAtPointer inserts a node at the pointer's logical position.
func (m *model) addNodeAtPointer() {
	lp := m.toLogical(m.pointerX, m.pointerY)
	m.history.Record(m.graph.Snapshot())
	n := m.graph.AddNode(defaultNodeType, lp.X, lp.Y)
	m.selectedNode = n.ID
	m.selectedEdge = ""
}

func (m *model) undo() {
	if prev, ok := m.history.Undo(m.graph.Snapshot()); ok {
		m.graph.Restore(prev)
		m.clearStaleSelection()
	}
}

func (m *model) redo() {
	if next, ok := m.history.Redo(m.graph.Snapshot()); ok {
		m.graph.Restore(next)
		m.clearStaleSelection()
	}
}

// clearStaleSelection drops selection references that no longer resolve
// after a whole-state swap.
func (m *model) clearStaleSelection() {
	if m.selectedNode >= 0 {
		if _, ok := m.graph.Node(m.selectedNode); !ok {
			m.selectedNode = -1
		}
	}
	if m.selectedEdge != "" {
		found := false
		for _, e := range m.graph.Edges {
			if e.ID == m.selectedEdge {
				found = true
				break
			}
		}
		if !found {
			m.selectedEdge = ""
		}
	}
}

// toLogical converts a screen cell to logical coordinates through the
// current transform. The canvas origin is the top-left of the window.
func (m *model) toLogical(sx, sy int) Point {
	return m.view.ToLogical(float64(sx), float64(sy), 0, 0)
}
