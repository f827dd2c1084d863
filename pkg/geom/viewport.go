package geom

import "math"

const (
	// MinScale is the lower zoom bound for any diagram surface.
	MinScale = 0.2
	// MaxScale is the upper zoom bound for any diagram surface.
	MaxScale = 3.0
	// ZoomStep is the scale delta applied per discrete zoom action.
	ZoomStep = 0.1
	// GridSize is the default snapping grid in model units.
	GridSize = 10.0
)

// Viewport is the view transform of one diagram surface: a pan offset in
// screen units plus a zoom scale. It is view-only state and is never
// persisted with a diagram's semantic content.
//
// The zero value is not an identity transform; use [IdentityViewport].
type Viewport struct {
	OffsetX float64
	OffsetY float64
	Scale   float64
}

// IdentityViewport returns the neutral transform (no pan, scale 1).
func IdentityViewport() Viewport {
	return Viewport{Scale: 1}
}

// ToModel converts a screen point to model space:
// (screen - offset) / scale. It is the exact inverse of [Viewport.ToScreen].
func (v Viewport) ToModel(p Point) Point {
	return Point{
		X: (p.X - v.OffsetX) / v.Scale,
		Y: (p.Y - v.OffsetY) / v.Scale,
	}
}

// ToScreen converts a model point to screen space: model*scale + offset.
func (v Viewport) ToScreen(p Point) Point {
	return Point{
		X: p.X*v.Scale + v.OffsetX,
		Y: p.Y*v.Scale + v.OffsetY,
	}
}

// Pan returns the viewport translated by a screen-space delta.
func (v Viewport) Pan(dx, dy float64) Viewport {
	v.OffsetX += dx
	v.OffsetY += dy
	return v
}

// Zoom returns the viewport with scale+delta clamped to [MinScale, MaxScale].
func (v Viewport) Zoom(delta float64) Viewport {
	v.Scale = math.Min(MaxScale, math.Max(MinScale, v.Scale+delta))
	return v
}

// FitToContent derives a viewport that centers the bounding box of the given
// content rectangles inside a view of the given size, with padding model
// units of breathing room on every side. The scale never exceeds 1 (content
// is shrunk to fit, never magnified). With no content the identity viewport
// is returned. The function is idempotent for unchanged content.
func FitToContent(content []Rect, view Size, padding float64) Viewport {
	bbox, ok := Bounds(content)
	if !ok {
		return IdentityViewport()
	}

	w := bbox.W + 2*padding
	h := bbox.H + 2*padding
	scale := 1.0
	if w > 0 {
		scale = math.Min(scale, view.W/w)
	}
	if h > 0 {
		scale = math.Min(scale, view.H/h)
	}

	center := bbox.Center()
	return Viewport{
		OffsetX: view.W/2 - center.X*scale,
		OffsetY: view.H/2 - center.Y*scale,
		Scale:   scale,
	}
}
