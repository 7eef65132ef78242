// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// StampLine walks the integer Bresenham path from a to b, both ends
// included, calling stamp at every step. It returns the bounds of the
// stepped points; a stamp wider than one pixel is the caller's to account
// for.
func StampLine(stamp func(x, y int), a, b Pt) Bounds {
	x0, y0 := a.X, a.Y
	dx := abs(b.X - x0)
	dy := abs(b.Y - y0)
	sx, sy := 1, 1
	if x0 > b.X {
		sx = -1
	}
	if y0 > b.Y {
		sy = -1
	}

	var err int
	if dx > dy {
		err = dx / 2
	} else {
		err = -dy / 2
	}

	bounds := Empty
	for {
		stamp(x0, y0)
		bounds = bounds.Add(Pt{x0, y0})
		if x0 == b.X && y0 == b.Y {
			break
		}
		e2 := err
		if e2 > -dx {
			err -= dy
			x0 += sx
		}
		if e2 < dy {
			err += dx
			y0 += sy
		}
	}
	return bounds
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
