// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// StrokePoint is a bezier control point with the stroke width wanted there.
type StrokePoint struct {
	Pos   Vec
	Width float64
}

// Sample is a point on a quadratic curve and its parameter.
type Sample struct {
	T   float64
	Pos Vec
}

// SampleQuadratic evaluates the quadratic bezier (p0, p1, p2) at n evenly
// spaced parameters from 0 to 1 inclusive. Consecutive samples that round
// to the same pixel are collapsed, keeping the first; the final sample is
// always kept. n is raised to 2 if smaller.
func SampleQuadratic(p0, p1, p2 Vec, n int) []Sample {
	n = max(n, 2)
	out := make([]Sample, 0, n)
	last := Pt{}
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		u := 1 - t
		pos := Vec{
			X: u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
			Y: u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
		}
		px := pos.round()
		switch {
		case i == n-1 && len(out) > 0 && px == last:
			out[len(out)-1] = Sample{T: t, Pos: pos}
		case i == 0 || px != last:
			out = append(out, Sample{T: t, Pos: pos})
		default:
			continue
		}
		last = px
	}
	return out
}

// Tangent returns the unit tangent of the quadratic (p0, p1, p2) at t.
// When the derivative vanishes (a control point coincides with an end)
// the chord direction p0→p2 is used; when all points coincide there is
// no direction and the zero vector is returned.
func Tangent(p0, p1, p2 Vec, t float64) Vec {
	velocity := p1.sub(p0).mul(2 * (1 - t)).add(p2.sub(p1).mul(2 * t))
	if speed := velocity.length(); speed > 0 {
		return velocity.mul(1 / speed)
	}
	chord := p2.sub(p0)
	if l := chord.length(); l > 0 {
		return chord.mul(1 / l)
	}
	return Vec{}
}

// widthAt interpolates the stroke width piecewise: start→ctrl over the
// first half of the curve, ctrl→end over the second.
func widthAt(start, ctrl, end, t float64) float64 {
	if t < 0.5 {
		return 2 * (start*(0.5-t) + ctrl*t)
	}
	return 2 * (ctrl*(1-t) + end*(t-0.5))
}

// DynamicBezier fills the outline of a quadratic bezier stroke whose width
// varies from start.Width through ctrl.Width to end.Width.
//
// Each sample is offset perpendicular to the curve's tangent by half the
// interpolated width on both sides. The left edge followed by the reversed
// right edge forms one closed polygon, which is filled with the nonzero
// rule. A stroke that yields fewer than three distinct boundary points
// paints nothing and returns Empty.
func DynamicBezier(plot func(x, y int), start, ctrl, end StrokePoint, samples int) Bounds {
	pts := SampleQuadratic(start.Pos, ctrl.Pos, end.Pos, samples)

	left := make([]Pt, 0, len(pts))
	right := make([]Pt, 0, len(pts))
	for _, s := range pts {
		half := widthAt(start.Width, ctrl.Width, end.Width, s.T) / 2
		tan := Tangent(start.Pos, ctrl.Pos, end.Pos, s.T)
		normal := Vec{X: -tan.Y, Y: tan.X}.mul(half)

		if lp := s.Pos.add(normal).round(); len(left) == 0 || left[len(left)-1] != lp {
			left = append(left, lp)
		}
		if rp := s.Pos.sub(normal).round(); len(right) == 0 || right[len(right)-1] != rp {
			right = append(right, rp)
		}
	}

	outline := left
	for i := len(right) - 1; i >= 0; i-- {
		outline = append(outline, right[i])
	}
	if len(outline) <= 2 {
		return Empty
	}
	return Polygon(plot, outline, Fill)
}
