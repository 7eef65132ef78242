// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Circle plots the outline of the circle of radius r around c with the
// midpoint algorithm. It returns the circumscribing square, or Empty for
// a non-positive radius.
func Circle(plot func(x, y int), c Pt, r int) Bounds {
	if r <= 0 {
		return Empty
	}
	x, y := -r, 0
	err := 2 - 2*r
	for x < 0 {
		plot(c.X-x, c.Y+y)
		plot(c.X-y, c.Y-x)
		plot(c.X+x, c.Y-y)
		plot(c.X+y, c.Y+x)
		rr := err
		if rr <= y {
			y++
			err += y*2 + 1
		}
		if rr > x || err > y {
			x++
			err += x*2 + 1
		}
	}
	return square(c, r)
}

// Disk fills every pixel whose offset (dx, dy) from c satisfies
// dx²+dy² <= r², scanning the square of half-side r+1. It returns the
// circumscribing square, or Empty for a non-positive radius.
func Disk(plot func(x, y int), c Pt, r int) Bounds {
	if r <= 0 {
		return Empty
	}
	r2 := r * r
	search := r + 1
	for dy := -search; dy < search; dy++ {
		dy2 := dy * dy
		for dx := -search; dx < search; dx++ {
			if dx*dx+dy2 <= r2 {
				plot(c.X+dx, c.Y+dy)
			}
		}
	}
	return square(c, r)
}

func square(c Pt, r int) Bounds {
	return Bounds{MinX: c.X - r, MinY: c.Y - r, MaxX: c.X + r, MaxY: c.Y + r}
}
