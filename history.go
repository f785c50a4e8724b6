package main

// Snapshot is an immutable copy of the document state at a point in time.
// It is also the wire shape for save and export.
type Snapshot struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

func (s Snapshot) clone() Snapshot {
	return Snapshot{
		Nodes: append([]Node(nil), s.Nodes...),
		Edges: append([]Edge(nil), s.Edges...),
	}
}

// History is a snapshot-based undo/redo stack. past holds states to return
// to, most recent last; future holds undone states, next redo first.
// Entries are cloned on the way in and never mutated afterwards. Growth is
// unbounded, which is fine for a session-scoped tool.
type History struct {
	past   []Snapshot
	future []Snapshot
}

// Record pushes the state as it was before the mutation about to happen,
// and discards any redo chain.
func (h *History) Record(before Snapshot) {
	h.past = append(h.past, before.clone())
	h.future = nil
}

// Undo pops the most recent past state. The caller's current state moves
// onto the future stack. Returns false with the zero Snapshot when there
// is nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.past) == 0 {
		return Snapshot{}, false
	}
	prev := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append([]Snapshot{current.clone()}, h.future...)
	return prev, true
}

// Redo is the inverse of Undo. Returns false when the future stack is
// empty.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.future) == 0 {
		return Snapshot{}, false
	}
	next := h.future[0]
	h.future = h.future[1:]
	h.past = append(h.past, current.clone())
	return next, true
}

// CanUndo reports whether an undo would do anything.
func (h *History) CanUndo() bool {
	return len(h.past) > 0
}

// CanRedo reports whether a redo would do anything.
func (h *History) CanRedo() bool {
	return len(h.future) > 0
}

// Depths returns the sizes of the past and future stacks, for the status
// line.
func (h *History) Depths() (past, future int) {
	return len(h.past), len(h.future)
}
