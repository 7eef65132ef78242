package eink

import (
	"github.com/gogpu/eink/text"
)

// DrawText draws s with its baseline origin at pos, size pixels per em.
//
// Each glyph's coverage is blended linearly from White (no coverage) to
// col (full coverage); pixels with no coverage are left untouched. The
// returned rectangle is the union of the glyph boxes. With dryRun set no
// pixel is written and the same rectangle is returned, so text can be
// measured before it is placed. A nil face selects text.DefaultFace.
func DrawText[C Canvas](c C, face *text.Face, pos Point, s string, size float64, col Color, dryRun bool) Rect {
	if face == nil {
		face = text.DefaultFace()
	}
	glyphs, err := text.Layout(face, s, pos.X, pos.Y, size)
	if err != nil {
		Logger().Warn("eink: text layout failed", "err", err)
		return InvalidRect
	}

	r := InvalidRect
	for _, g := range glyphs {
		b := g.Bounds
		if b.Empty() {
			continue
		}
		r = r.Merge(RectFromExtents(b.Min.X, b.Min.Y, b.Max.X-1, b.Max.Y-1))
		if dryRun {
			continue
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				a := g.Mask.AlphaAt(x, y).A
				if a == 0 {
					continue
				}
				c.WritePixel(IntPoint{x, y}, White.Lerp(col, float64(a)/0xff))
			}
		}
	}
	return r
}
