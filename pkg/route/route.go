// Package route computes connector anchors and orthogonal paths between
// node rectangles.
//
// Port selection is dominant-axis: a connector leaves on the side facing
// the larger of the center deltas. Paths are straight when the ports are
// axis-aligned within [Tolerance] model units; otherwise a single Manhattan
// elbow (two interior waypoints, one turn) is inserted at the midpoint of
// the dominant axis.
//
// [LeftToRight] is the specialized variant used by the wire-format bridge:
// it always exits the source's right-middle point and enters the target's
// left-middle point, keying the elbow rule off vertical offset only.
//
// Edge kinds affect rendering only; they never alter routing.
package route

import (
	"math"

	"github.com/flowcanvas/flowcanvas/pkg/geom"
)

// Tolerance is the maximum secondary-axis misalignment, in model units,
// for which a straight segment is used instead of an elbow.
const Tolerance = 10.0

// Path is a connector polyline: start anchor, optional interior waypoints,
// end anchor.
type Path struct {
	Start     geom.Point
	End       geom.Point
	Waypoints []geom.Point
}

// Points returns the full polyline including both anchors.
func (p Path) Points() []geom.Point {
	out := make([]geom.Point, 0, len(p.Waypoints)+2)
	out = append(out, p.Start)
	out = append(out, p.Waypoints...)
	return append(out, p.End)
}

// Between routes a connector between two node rectangles using dominant-axis
// port selection.
func Between(src, dst geom.Rect) Path {
	sc, dc := src.Center(), dst.Center()
	dx := dc.X - sc.X
	dy := dc.Y - sc.Y

	if math.Abs(dx) > math.Abs(dy) {
		start := horizontalPort(src, dx >= 0)
		end := horizontalPort(dst, dx < 0)
		return elbowed(start, end, true)
	}
	start := verticalPort(src, dy >= 0)
	end := verticalPort(dst, dy < 0)
	return elbowed(start, end, false)
}

// LeftToRight routes a connector that exits the source's right-middle point
// and enters the target's left-middle point, regardless of relative node
// positions. The elbow rule keys off vertical offset only.
func LeftToRight(src, dst geom.Rect) Path {
	start := geom.Point{X: src.X + src.W, Y: src.Y + src.H/2}
	end := geom.Point{X: dst.X, Y: dst.Y + dst.H/2}
	return elbowed(start, end, true)
}

// horizontalPort returns the middle of the left or right side.
func horizontalPort(r geom.Rect, right bool) geom.Point {
	x := r.X
	if right {
		x = r.X + r.W
	}
	return geom.Point{X: x, Y: r.Y + r.H/2}
}

// verticalPort returns the middle of the top or bottom side.
func verticalPort(r geom.Rect, bottom bool) geom.Point {
	y := r.Y
	if bottom {
		y = r.Y + r.H
	}
	return geom.Point{X: r.X + r.W/2, Y: y}
}

// elbowed builds the path between two ports. When the secondary axis is
// aligned within Tolerance the path is a straight segment; otherwise two
// interior waypoints form one right-angle turn at the primary-axis midpoint.
func elbowed(start, end geom.Point, horizontal bool) Path {
	p := Path{Start: start, End: end}

	if horizontal {
		if math.Abs(end.Y-start.Y) <= Tolerance {
			return p
		}
		midX := (start.X + end.X) / 2
		p.Waypoints = []geom.Point{
			{X: midX, Y: start.Y},
			{X: midX, Y: end.Y},
		}
		return p
	}

	if math.Abs(end.X-start.X) <= Tolerance {
		return p
	}
	midY := (start.Y + end.Y) / 2
	p.Waypoints = []geom.Point{
		{X: start.X, Y: midY},
		{X: end.X, Y: midY},
	}
	return p
}
