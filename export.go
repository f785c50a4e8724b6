package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// The persistence and export gateway. The core hands over a serialized
// snapshot; everything past that point is filesystem plumbing with no say
// in graph semantics.

func marshalSnapshot(s Snapshot) ([]byte, error) {
	if s.Nodes == nil {
		s.Nodes = []Node{}
	}
	if s.Edges == nil {
		s.Edges = []Edge{}
	}
	return json.Marshal(s)
}

func marshalSnapshotIndent(s Snapshot) ([]byte, error) {
	if s.Nodes == nil {
		s.Nodes = []Node{}
	}
	if s.Edges == nil {
		s.Edges = []Edge{}
	}
	return json.MarshalIndent(s, "", "  ")
}

// SaveToFile writes the compact JSON snapshot.
func (g *Graph) SaveToFile(filename string) error {
	data, err := marshalSnapshot(g.Snapshot())
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// LoadFromFile reads a snapshot and rebuilds a graph around it. The id
// counter resumes past the highest id in the file.
func LoadFromFile(filename string) (*Graph, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse %s: %v", filename, err)
	}
	g := NewGraph()
	g.Restore(s)
	return g, nil
}

// ExportJSON writes the pretty-printed snapshot.
func (g *Graph) ExportJSON(filename string) error {
	data, err := marshalSnapshotIndent(g.Snapshot())
	if err != nil {
		return err
	}
	return os.WriteFile(filename, append(data, '\n'), 0644)
}

// exportVisualTXT writes the canvas exactly as currently rendered, minus
// any in-progress gesture artifacts.
func (m *model) exportVisualTXT(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	width := m.width
	if width < 1 {
		width = 80
	}
	height := m.height - 1
	if height < 1 {
		height = 24
	}

	clean := *m
	clean.mode = ModeIdle
	clean.selectedNode = -1
	clean.selectedEdge = ""
	for _, line := range clean.renderCanvas(width, height) {
		fmt.Fprintln(file, line)
	}
	return nil
}

// Pixels per logical unit in PNG output. 8x16 matches a terminal cell's
// aspect so exports look like the on-screen chart.
const (
	pngUnitW = 8.0
	pngUnitH = 16.0
)

// ExportToPNG renders the graph to an image, ignoring pan and zoom: the
// output is framed around the graph's own bounds.
func (g *Graph) ExportToPNG(filename string) error {
	if len(g.Nodes) == 0 {
		return fmt.Errorf("nothing to export")
	}

	minX, minY := g.Nodes[0].X, g.Nodes[0].Y
	maxX, maxY := minX, minY
	for _, n := range g.Nodes {
		minX = math.Min(minX, n.X)
		minY = math.Min(minY, n.Y)
		maxX = math.Max(maxX, n.X+n.Width())
		maxY = math.Max(maxY, n.Y+n.Height())
	}

	const padding = 2
	minX -= padding
	minY -= padding
	maxX += padding
	maxY += padding

	imageWidth := int((maxX - minX) * pngUnitW)
	imageHeight := int((maxY - minY) * pngUnitH)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12.0,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	px := func(p Point) (float64, float64) {
		return (p.X - minX) * pngUnitW, (p.Y - minY) * pngUnitH
	}

	// Edges first so boxes draw over them.
	for _, e := range g.Edges {
		from, ok := g.Node(e.From)
		if !ok {
			continue
		}
		to, ok := g.Node(e.To)
		if !ok {
			continue
		}
		x1, y1 := px(Point{X: from.X + from.Width(), Y: from.Y + from.Height()/2})
		x2, y2 := px(Point{X: to.X, Y: to.Y + to.Height()/2})
		dc.SetLineWidth(1.5)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
		drawArrowheadPNG(dc, x1, y1, x2, y2)
	}

	for _, n := range g.Nodes {
		x, y := px(Point{X: n.X, Y: n.Y})
		w := n.Width() * pngUnitW
		h := n.Height() * pngUnitH
		dc.SetColor(color.White)
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()
		dc.SetColor(color.Black)
		dc.SetLineWidth(2)
		dc.DrawRectangle(x, y, w, h)
		dc.Stroke()
		dc.DrawStringAnchored(n.Label, x+w/2, y+h/2, 0.5, 0.35)
	}

	return dc.SavePNG(filename)
}

func drawArrowheadPNG(dc *gg.Context, x1, y1, x2, y2 float64) {
	angle := math.Atan2(y2-y1, x2-x1)
	const length = 8.0
	const spread = 0.5
	dc.SetLineWidth(1.5)
	dc.DrawLine(x2, y2,
		x2-length*math.Cos(angle-spread),
		y2-length*math.Sin(angle-spread))
	dc.DrawLine(x2, y2,
		x2-length*math.Cos(angle+spread),
		y2-length*math.Sin(angle+spread))
	dc.Stroke()
}
