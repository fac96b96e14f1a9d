package geo

import "math"

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// Width extends along +X, Length along +Y. All units are meters.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
}

// NewRect constructs a rectangle from a top-left corner and dimensions.
func NewRect(pos Point, width, length float64) Rect {
	return Rect{X: pos.X, Y: pos.Y, Width: width, Length: length}
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Length }

// Center returns the rectangle's center point. All distance rules in the
// engine are measured center-to-center.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Length/2}
}

// Area returns width * length.
func (r Rect) Area() float64 { return r.Width * r.Length }

// Overlaps reports whether r and s share interior area.
// Rectangles that only touch along an edge or corner do not overlap.
func (r Rect) Overlaps(s Rect) bool {
	return !(r.Right() <= s.X || s.Right() <= r.X ||
		r.Bottom() <= s.Y || s.Bottom() <= r.Y)
}

// Within reports whether r lies entirely inside outer.
// Touching the boundary of outer counts as inside.
func (r Rect) Within(outer Rect) bool {
	return r.X >= outer.X && r.Y >= outer.Y &&
		r.Right() <= outer.Right() && r.Bottom() <= outer.Bottom()
}

// Adjacent reports whether r and s share an edge within tol meters:
// the gap along one axis is at most tol while their projections on the
// other axis overlap. Overlapping rectangles are not adjacent.
func (r Rect) Adjacent(s Rect, tol float64) bool {
	if r.Overlaps(s) {
		return false
	}

	xGap := axisGap(r.X, r.Right(), s.X, s.Right())
	yGap := axisGap(r.Y, r.Bottom(), s.Y, s.Bottom())

	// Vertical edges touch: X gap within tolerance, Y projections overlap.
	if xGap <= tol && yGap < 0 {
		return true
	}
	// Horizontal edges touch: Y gap within tolerance, X projections overlap.
	if yGap <= tol && xGap < 0 {
		return true
	}
	return false
}

// axisGap returns the distance between intervals [aMin,aMax] and [bMin,bMax].
// Negative values indicate overlap depth.
func axisGap(aMin, aMax, bMin, bMax float64) float64 {
	return math.Max(aMin, bMin) - math.Min(aMax, bMax)
}
