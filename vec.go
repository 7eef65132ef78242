package eink

// IntPoint is an integer pixel position or displacement.
type IntPoint struct {
	X, Y int
}

// IPt is a convenience function to create an IntPoint.
func IPt(x, y int) IntPoint {
	return IntPoint{X: x, Y: y}
}

// Add returns the sum of two points.
func (p IntPoint) Add(q IntPoint) IntPoint {
	return IntPoint{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p IntPoint) Sub(q IntPoint) IntPoint {
	return IntPoint{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by an integer factor.
func (p IntPoint) Mul(s int) IntPoint {
	return IntPoint{X: p.X * s, Y: p.Y * s}
}

// Float converts to a Point. The conversion is exact for all pixel
// coordinates a panel can address.
func (p IntPoint) Float() Point {
	return Point{X: float64(p.X), Y: float64(p.Y)}
}
