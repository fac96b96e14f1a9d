package geo

import "math"

// Point is a position in the module's floor plane, in meters.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// Origin is the zero point.
var Origin = Point{0, 0}

// Pt is a shorthand constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p * s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Length returns the Euclidean length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// DistanceTo returns the Euclidean distance from p to q.
func (p Point) DistanceTo(q Point) float64 {
	return p.Sub(q).Length()
}

// SnapToGrid rounds each coordinate to the nearest multiple of gridSize.
// A non-positive gridSize returns p unchanged.
func SnapToGrid(p Point, gridSize float64) Point {
	if gridSize <= 0 {
		return p
	}
	return Point{
		X: math.Round(p.X/gridSize) * gridSize,
		Y: math.Round(p.Y/gridSize) * gridSize,
	}
}
