package eink

import (
	"image"

	"github.com/gogpu/eink/internal/raster"
)

// Every drawing function writes through a Canvas and returns the smallest
// Rect covering the pixels it may have written, ready to hand to a refresh
// request. Masked writes still count toward the returned Rect. A call that
// draws nothing returns InvalidRect.

// DrawLine draws a straight line from start to end inclusive.
//
// A width of 0 or 1 writes one pixel per Bresenham step. A larger width
// stamps a filled width×width square centred on each step, and the
// returned rectangle is the path's bounds grown by (width+1)/2.
func DrawLine[C Canvas](c C, start, end IntPoint, width uint32, col Color) Rect {
	var stamp func(x, y int)
	if width <= 1 {
		stamp = func(x, y int) { c.WritePixel(IntPoint{x, y}, col) }
	} else {
		w := int(width)
		half := w / 2
		stamp = func(x, y int) { fillRect(c, x-half, y-half, w, w, col) }
	}
	b := raster.StampLine(stamp, toPt(start), toPt(end))
	r := rectOf(b)
	if width > 1 {
		r = r.Expand((width + 1) / 2)
	}
	return r
}

// DrawCircle draws the outline of a circle with the midpoint algorithm.
func DrawCircle[C Canvas](c C, center IntPoint, radius uint32, col Color) Rect {
	return rectOf(raster.Circle(plotter(c, col), toPt(center), int(radius)))
}

// FillCircle fills every pixel within radius of center.
func FillCircle[C Canvas](c C, center IntPoint, radius uint32, col Color) Rect {
	return rectOf(raster.Disk(plotter(c, col), toPt(center), int(radius)))
}

// FillPolygon fills the closed polygon through pts under the nonzero
// winding rule. The last point connects back to the first.
func FillPolygon[C Canvas](c C, pts []IntPoint, col Color) Rect {
	return DrawPolygon(c, pts, true, col)
}

// DrawPolygon scan-converts the polygon through pts. With fill false only
// the leftmost and rightmost pixel of each span is painted.
func DrawPolygon[C Canvas](c C, pts []IntPoint, fill bool, col Color) Rect {
	mode := raster.Outline
	if fill {
		mode = raster.Fill
	}
	return rectOf(raster.Polygon(plotter(c, col), toPts(pts), mode))
}

// StrokePolygon draws the closed polyline through pts with lines of the
// given width.
func StrokePolygon[C Canvas](c C, pts []IntPoint, width uint32, col Color) Rect {
	r := InvalidRect
	for i, p := range pts {
		r = r.Merge(DrawLine(c, p, pts[(i+1)%len(pts)], width, col))
	}
	return r
}

// BezierPoint is a control point of a variable-width stroke.
type BezierPoint struct {
	Pos   Point
	Width float64
}

// DrawDynamicBezier fills a quadratic bezier stroke whose width varies
// from start through ctrl to end. The curve is sampled samples times;
// around ten samples suit pen strokes between input reports.
func DrawDynamicBezier[C Canvas](c C, start, ctrl, end BezierPoint, samples int, col Color) Rect {
	b := raster.DynamicBezier(plotter(c, col),
		raster.StrokePoint{Pos: toVec(start.Pos), Width: start.Width},
		raster.StrokePoint{Pos: toVec(ctrl.Pos), Width: ctrl.Width},
		raster.StrokePoint{Pos: toVec(end.Pos), Width: end.Width},
		samples,
	)
	return rectOf(b)
}

// DrawBezier draws a constant-width quadratic bezier stroke.
func DrawBezier[C Canvas](c C, start, ctrl, end Point, width float64, samples int, col Color) Rect {
	return DrawDynamicBezier(c,
		BezierPoint{start, width}, BezierPoint{ctrl, width}, BezierPoint{end, width},
		samples, col)
}

// FillRect fills r.
func FillRect[C Canvas](c C, r Rect, col Color) Rect {
	if !r.IsValid() {
		return InvalidRect
	}
	w, h := r.Size()
	fillRect(c, int(r.Left), int(r.Top), w, h, col)
	return r
}

// DrawRect draws the border of r with lines of the given width, grown
// inward.
func DrawRect[C Canvas](c C, r Rect, width uint32, col Color) Rect {
	if !r.IsValid() || width == 0 {
		return InvalidRect
	}
	w, h := r.Size()
	bw := min(int(width), w)
	bh := min(int(width), h)
	x, y := int(r.Left), int(r.Top)
	fillRect(c, x, y, w, bh, col)
	fillRect(c, x, y+h-bh, w, bh, col)
	fillRect(c, x, y, bw, h, col)
	fillRect(c, x+w-bw, y, bw, h, col)
	return r
}

// DrawImage copies img onto the canvas with its bounds' minimum at pos.
// Alpha is ignored.
func DrawImage[C Canvas](c C, img image.Image, pos IntPoint) Rect {
	b := img.Bounds()
	if b.Empty() {
		return InvalidRect
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := IntPoint{pos.X + x - b.Min.X, pos.Y + y - b.Min.Y}
			c.WritePixel(p, FromColor(img.At(x, y)))
		}
	}
	return RectOfSize(pos.X, pos.Y, b.Dx(), b.Dy())
}

func fillRect[C Canvas](c C, x, y, w, h int, col Color) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			c.WritePixel(IntPoint{px, py}, col)
		}
	}
}

func plotter[C Canvas](c C, col Color) func(x, y int) {
	return func(x, y int) { c.WritePixel(IntPoint{x, y}, col) }
}

func rectOf(b raster.Bounds) Rect {
	if b.IsEmpty() {
		return InvalidRect
	}
	return RectFromExtents(b.MinX, b.MinY, b.MaxX, b.MaxY)
}

func toPt(p IntPoint) raster.Pt { return raster.Pt{X: p.X, Y: p.Y} }

func toVec(p Point) raster.Vec { return raster.Vec{X: p.X, Y: p.Y} }

func toPts(pts []IntPoint) []raster.Pt {
	out := make([]raster.Pt, len(pts))
	for i, p := range pts {
		out[i] = toPt(p)
	}
	return out
}
