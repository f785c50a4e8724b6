package main

const (
	// Zoom bounds and the multiplicative step applied per wheel notch.
	minZoom  = 0.2
	maxZoom  = 2.5
	zoomStep = 1.08

	// Node box geometry in logical units (one unit = one cell at zoom 1).
	nodeHeight   = 3
	nodePadding  = 2
	minNodeWidth = 8

	defaultNodeType  = "default"
	defaultNodeLabel = "New Node"

	// Two clicks on the same node within this window count as a double click.
	doubleClickMillis = 400
)

const (
	handleGlyph  = '◆'
	edgeGlyph    = '▪'
	previewGlyph = '·'
	cursorGlyph  = '█'
)
