package eink

import "math"

// Point is a sub-pixel position or displacement in device pixels, x to
// the right and y down. Pen and touch positions arrive as Points after
// axis scaling.
type Point struct {
	X, Y float64
}

// Pt returns the Point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add offsets p by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul scales both components by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div divides both components by s.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Dot is the scalar product of two displacements.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length is the Euclidean length of p in pixels.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance is the Euclidean distance from p to q in pixels.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize scales p to unit length. The zero displacement stays zero.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Lerp moves from p toward q by the fraction t; t outside [0, 1]
// extrapolates.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Midpoint is halfway between p and q. Stroke segments start and end on
// midpoints of consecutive samples.
func (p Point) Midpoint(q Point) Point {
	return p.Lerp(q, 0.5)
}

// Round snaps p to the nearest pixel corner, halves away from zero.
func (p Point) Round() Point {
	return Point{X: math.Round(p.X), Y: math.Round(p.Y)}
}

// Int truncates toward zero. Round first to get the nearest pixel.
func (p Point) Int() IntPoint {
	return IntPoint{X: int(p.X), Y: int(p.Y)}
}

// Approx reports whether p and q differ by less than epsilon on both axes.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}
