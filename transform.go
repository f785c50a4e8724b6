package main

// Transform holds the view state of the canvas: a pan offset in screen
// cells and a zoom factor. It is view state, not document state, so it is
// never recorded in history.
type Transform struct {
	X, Y float64
	K    float64
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{K: 1.0}
}

// ToLogical converts a screen-space point to logical canvas coordinates.
// ox and oy are the screen position of the canvas origin (top-left of the
// drawable area).
func (t Transform) ToLogical(sx, sy, ox, oy float64) Point {
	return Point{
		X: (sx - ox - t.X) / t.K,
		Y: (sy - oy - t.Y) / t.K,
	}
}

// ToScreen converts a logical point back to screen space. It is the exact
// inverse of ToLogical.
func (t Transform) ToScreen(p Point, ox, oy float64) (float64, float64) {
	return p.X*t.K + t.X + ox, p.Y*t.K + t.Y + oy
}

// Pan shifts the view by a screen-space delta. Pan is unclamped.
func (t *Transform) Pan(dx, dy float64) {
	t.X += dx
	t.Y += dy
}

// ZoomBy multiplies the zoom factor and clamps it to the allowed range.
// The anchor is the canvas origin, not the pointer.
func (t *Transform) ZoomBy(factor float64) {
	t.K = clampZoom(t.K * factor)
}

func clampZoom(k float64) float64 {
	if k < minZoom {
		return minZoom
	}
	if k > maxZoom {
		return maxZoom
	}
	return k
}
