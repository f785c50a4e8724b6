package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestKeyboardPanMovesView(t *testing.T) {
	m := newTestModel()

	key(m, runes("h"))
	assert.Equal(t, 1.0, m.view.X)
	key(m, runes("l"))
	key(m, runes("l"))
	assert.Equal(t, -1.0, m.view.X)

	key(m, runes("k"))
	assert.Equal(t, 1.0, m.view.Y)
	key(m, tea.KeyMsg{Type: tea.KeyDown})
	key(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, -1.0, m.view.Y)

	// Shifted keys pan faster.
	key(m, runes("H"))
	assert.Equal(t, 3.0, m.view.X)

	past, _ := m.history.Depths()
	assert.Equal(t, 0, past, "panning never enters history")
}

func TestKeyboardZoomStepsAndClamps(t *testing.T) {
	m := newTestModel()

	key(m, runes("+"))
	assert.InDelta(t, zoomStep, m.view.K, 1e-9)
	key(m, runes("-"))
	assert.InDelta(t, 1.0, m.view.K, 1e-9)

	for i := 0; i < 200; i++ {
		key(m, runes("-"))
	}
	assert.Equal(t, minZoom, m.view.K)

	past, _ := m.history.Depths()
	assert.Equal(t, 0, past, "zooming never enters history")
}
