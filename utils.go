package main

import (
	"strings"

	"github.com/atotto/clipboard"
)

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// truncate cuts a string to at most w runes, marking the cut with an
// ellipsis when there is room for one.
func truncate(s string, w int) string {
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w <= 1 {
		return string(r[:max(w, 0)])
	}
	return string(r[:w-1]) + "…"
}

// copySnapshotToClipboard puts the pretty-printed snapshot JSON on the
// system clipboard.
func copySnapshotToClipboard(g *Graph) error {
	data, err := marshalSnapshotIndent(g.Snapshot())
	if err != nil {
		return err
	}
	return clipboard.WriteAll(string(data))
}

// baseName strips a trailing extension for display in the status line.
func baseName(filename string) string {
	if i := strings.LastIndex(filename, "."); i > 0 {
		return filename[:i]
	}
	return filename
}
