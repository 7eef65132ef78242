// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster implements the stateless pixel algorithms behind the
// drawing API: Bresenham line stamping, midpoint circles, disk fill,
// active-edge-table polygon scan conversion and variable-width quadratic
// bezier strokes.
//
// Every algorithm writes through a plot callback and reports the integer
// bounds of what it touched, so callers can hand the result straight to
// the refresh controller. No algorithm clips; callers mask.
package raster

import "math"

// Pt is an integer pixel coordinate.
type Pt struct {
	X, Y int
}

// Vec is a float coordinate or displacement.
type Vec struct {
	X, Y float64
}

func (v Vec) add(w Vec) Vec     { return Vec{v.X + w.X, v.Y + w.Y} }
func (v Vec) sub(w Vec) Vec     { return Vec{v.X - w.X, v.Y - w.Y} }
func (v Vec) mul(s float64) Vec { return Vec{v.X * s, v.Y * s} }
func (v Vec) length() float64   { return math.Hypot(v.X, v.Y) }
func (v Vec) round() Pt         { return Pt{int(math.Round(v.X)), int(math.Round(v.Y))} }

// Bounds is an inclusive pixel range. The zero value is not empty; use
// Empty for "nothing touched".
type Bounds struct {
	MinX, MinY, MaxX, MaxY int
}

// Empty is the bounds of an operation that touched no pixels.
var Empty = Bounds{MinX: math.MaxInt, MinY: math.MaxInt, MaxX: math.MinInt, MaxY: math.MinInt}

// IsEmpty reports whether b covers nothing.
func (b Bounds) IsEmpty() bool {
	return b.MaxX < b.MinX || b.MaxY < b.MinY
}

// Add grows b to include p.
func (b Bounds) Add(p Pt) Bounds {
	return Bounds{
		MinX: min(b.MinX, p.X),
		MinY: min(b.MinY, p.Y),
		MaxX: max(b.MaxX, p.X),
		MaxY: max(b.MaxY, p.Y),
	}
}

// Union returns the smallest bounds covering b and o.
func (b Bounds) Union(o Bounds) Bounds {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return Bounds{
		MinX: min(b.MinX, o.MinX),
		MinY: min(b.MinY, o.MinY),
		MaxX: max(b.MaxX, o.MaxX),
		MaxY: max(b.MaxY, o.MaxY),
	}
}

// Outset grows b by m on every side.
func (b Bounds) Outset(m int) Bounds {
	if b.IsEmpty() {
		return b
	}
	return Bounds{MinX: b.MinX - m, MinY: b.MinY - m, MaxX: b.MaxX + m, MaxY: b.MaxY + m}
}

// boundsOf returns the bounds of a point set.
func boundsOf(pts []Pt) Bounds {
	b := Empty
	for _, p := range pts {
		b = b.Add(p)
	}
	return b
}
