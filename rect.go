package eink

import (
	"fmt"
	"math"
)

// Rect is a region in device pixel space, laid out like the panel's
// mxcfb_rect. Width and Height are the distance between the first and
// last covered column and row, so a Rect always covers at least one pixel:
// Rect{Top: 0, Left: 0, Width: 10, Height: 0} is the 11-pixel run from
// (0,0) to (10,0).
//
// InvalidRect is the only Rect that covers nothing. It is the identity of
// Merge and the result of any drawing call that touched no pixels.
type Rect struct {
	Top, Left, Width, Height uint32
}

// InvalidRect is the empty sentinel.
var InvalidRect = Rect{Top: math.MaxUint32, Left: math.MaxUint32}

// RectOfSize returns the rectangle of w×h pixels whose top-left pixel is
// (left, top). A zero or negative size yields InvalidRect.
func RectOfSize(left, top, w, h int) Rect {
	if w <= 0 || h <= 0 {
		return InvalidRect
	}
	return RectFromExtents(left, top, left+w-1, top+h-1)
}

// RectFromExtents returns the rectangle covering the inclusive pixel range
// [minX, maxX]×[minY, maxY]. Parts at negative coordinates are cut off,
// since the panel has none; a range entirely off the top or left edge
// yields InvalidRect.
func RectFromExtents(minX, minY, maxX, maxY int) Rect {
	if maxX < minX || maxY < minY || maxX < 0 || maxY < 0 {
		return InvalidRect
	}
	minX = max(minX, 0)
	minY = max(minY, 0)
	return Rect{
		Top:    uint32(minY), //nolint:gosec // clamped non-negative
		Left:   uint32(minX), //nolint:gosec // clamped non-negative
		Width:  uint32(maxX - minX),
		Height: uint32(maxY - minY),
	}
}

// IsValid reports whether r covers at least one pixel.
func (r Rect) IsValid() bool {
	return r != InvalidRect
}

// Right returns the x coordinate of the last covered column.
func (r Rect) Right() int { return int(r.Left) + int(r.Width) }

// Bottom returns the y coordinate of the last covered row.
func (r Rect) Bottom() int { return int(r.Top) + int(r.Height) }

// Size returns the number of covered columns and rows.
// InvalidRect has size (0, 0).
func (r Rect) Size() (w, h int) {
	if !r.IsValid() {
		return 0, 0
	}
	return int(r.Width) + 1, int(r.Height) + 1
}

// TopLeft returns the first covered pixel.
func (r Rect) TopLeft() IntPoint {
	return IntPoint{X: int(r.Left), Y: int(r.Top)}
}

// ContainsPoint reports whether p lies inside r.
func (r Rect) ContainsPoint(p IntPoint) bool {
	if !r.IsValid() {
		return false
	}
	return p.X >= int(r.Left) && p.X <= r.Right() &&
		p.Y >= int(r.Top) && p.Y <= r.Bottom()
}

// ContainsRect reports whether every pixel of o lies inside r.
// Every rectangle contains InvalidRect; InvalidRect contains nothing else.
func (r Rect) ContainsRect(o Rect) bool {
	if !o.IsValid() {
		return true
	}
	if !r.IsValid() {
		return false
	}
	return o.Left >= r.Left && o.Top >= r.Top &&
		o.Right() <= r.Right() && o.Bottom() <= r.Bottom()
}

// Merge returns the smallest rectangle covering both r and o.
func (r Rect) Merge(o Rect) Rect {
	if !r.IsValid() {
		return o
	}
	if !o.IsValid() {
		return r
	}
	return RectFromExtents(
		min(int(r.Left), int(o.Left)),
		min(int(r.Top), int(o.Top)),
		max(r.Right(), o.Right()),
		max(r.Bottom(), o.Bottom()),
	)
}

// Expand grows r by margin pixels on every side, stopping at the top and
// left edges of the panel.
func (r Rect) Expand(margin uint32) Rect {
	if !r.IsValid() || margin == 0 {
		return r
	}
	m := int(margin)
	return RectFromExtents(int(r.Left)-m, int(r.Top)-m, r.Right()+m, r.Bottom()+m)
}

// Intersect returns the overlap of r and o, or InvalidRect if they are
// disjoint.
func (r Rect) Intersect(o Rect) Rect {
	if !r.IsValid() || !o.IsValid() {
		return InvalidRect
	}
	return RectFromExtents(
		max(int(r.Left), int(o.Left)),
		max(int(r.Top), int(o.Top)),
		min(r.Right(), o.Right()),
		min(r.Bottom(), o.Bottom()),
	)
}

func (r Rect) String() string {
	if !r.IsValid() {
		return "Rect(invalid)"
	}
	return fmt.Sprintf("Rect{top:%d left:%d width:%d height:%d}", r.Top, r.Left, r.Width, r.Height)
}
