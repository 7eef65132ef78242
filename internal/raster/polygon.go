// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "slices"

// PolygonMode selects what Polygon paints on each scanline.
type PolygonMode uint8

const (
	// Fill paints the spans inside the polygon under the nonzero winding rule.
	Fill PolygonMode = iota

	// Outline paints only the two boundary pixels of each adjacent pair of
	// active edges.
	Outline
)

// edge is one polygon edge bucketed by its lower (smaller y) end.
// x advances by dx/dy per scanline using integer error accumulation.
type edge struct {
	ymin, ymax int
	x          int
	sign       int // x moves by -sign when sum overflows dy
	direction  int // +1 if the edge runs downward in vertex order, -1 otherwise
	dx, dy     int
	sum        int
}

// Polygon scan-converts the closed polygon through pts with an active
// edge table and returns the bounds of its vertices.
//
// Scanlines run from the smallest edge start downward. On each scanline,
// edges ending there are retired first, edges starting there are admitted,
// and the active set is sorted by x. Spans are half-open: a span between
// edges at x0 and x1 paints x0..x1-1, and an edge's last scanline is not
// painted, so polygons that share an edge never paint the same pixel.
//
// Fewer than three vertices, or vertices that all lie on one scanline,
// paint nothing and return Empty.
func Polygon(plot func(x, y int), pts []Pt, mode PolygonMode) Bounds {
	if len(pts) < 3 {
		return Empty
	}
	bounds := boundsOf(pts)
	if bounds.MinY == bounds.MaxY {
		return Empty
	}

	table := make([]edge, 0, len(pts))
	for i, p0 := range pts {
		p1 := pts[(i+1)%len(pts)]
		lower, higher, direction := p0, p1, 1
		if p0.Y >= p1.Y {
			lower, higher, direction = p1, p0, -1
		}
		sign := -1
		if lower.X > higher.X {
			sign = 1
		}
		table = append(table, edge{
			ymin:      lower.Y,
			ymax:      higher.Y,
			x:         lower.X,
			sign:      sign,
			direction: direction,
			dx:        abs(higher.X - lower.X),
			dy:        higher.Y - lower.Y,
		})
	}
	slices.SortFunc(table, func(a, b edge) int { return a.ymin - b.ymin })

	active := make([]edge, 0, len(pts))
	for scanline := table[0].ymin; len(table) > 0; scanline++ {
		table = slices.DeleteFunc(table, func(e edge) bool { return e.ymax == scanline })
		active = slices.DeleteFunc(active, func(e edge) bool { return e.ymax == scanline })

		for _, e := range table {
			if e.ymin == scanline {
				active = append(active, e)
			}
		}
		slices.SortStableFunc(active, func(a, b edge) int { return a.x - b.x })

		switch mode {
		case Fill:
			fillSpans(plot, active, scanline)
		case Outline:
			outlineSpans(plot, active, scanline)
		}

		for i := range active {
			e := &active[i]
			e.sum += e.dx
			for e.sum >= e.dy {
				e.x -= e.sign
				e.sum -= e.dy
			}
		}
	}
	return bounds
}

// fillSpans paints the nonzero-winding spans of one scanline. The winding
// count starts at zero on every scanline and returns to zero after the last
// edge of a closed polygon.
func fillSpans(plot func(x, y int), active []edge, y int) {
	winding := 0
	prevX := 0
	for _, e := range active {
		if winding != 0 {
			for x := prevX; x < e.x; x++ {
				plot(x, y)
			}
		}
		prevX = e.x
		winding += e.direction
	}
}

func outlineSpans(plot func(x, y int), active []edge, y int) {
	for i := 0; i+1 < len(active); i += 2 {
		x0, x1 := active[i].x, active[i+1].x
		if x0 != x1 {
			plot(x0, y)
			plot(x1-1, y)
		}
	}
}
