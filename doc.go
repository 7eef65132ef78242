// Package eink draws on memory-mapped e-ink panels.
//
// # Overview
//
// eink is the drawing core of a small runtime for electrophoretic tablets:
// a framebuffer surface, a partial refresh controller, a compressed canvas
// snapshot store and a multi-device input pipeline live in sub-packages.
// This package holds the value types they share (Point, IntPoint, Color,
// Rect), the Canvas capability, the Mask decorator and the rasterization
// primitives.
//
// # Quick Start
//
//	fb, err := framebuffer.Open("/dev/fb0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer fb.Close()
//
//	r := eink.DrawLine(fb, eink.IPt(100, 100), eink.IPt(500, 100), 3, eink.Black)
//	r = r.Merge(eink.DrawText(fb, nil, eink.Pt(100, 200), "hello", 48, eink.Black, false))
//	ctl := refresh.New(fb)
//	ctl.PartialRefresh(r, refresh.ModeWait, refresh.Widget)
//
// # Dirty rectangles
//
// Every primitive returns the Rect covering what it drew, so the caller
// can refresh just that part of the panel. Rects compose with Merge, whose
// identity is InvalidRect. Rect widths and heights are inclusive extents:
// a Rect with Width 0 is one column wide.
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left pixel of the panel
//   - X increases right
//   - Y increases down
//
// # Canvases and masks
//
// Primitives are generic over Canvas and never clip. Clipping, stippling
// and region constraints are layered with Mask:
//
//	inside := eink.Mask(fb, eink.InRect(canvasRegion))
//	eink.FillCircle(inside, center, 20, eink.Black)
package eink
