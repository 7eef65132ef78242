package eink

// Canvas is anything that can receive a colored pixel write at an integer
// position. Writing the same pixel twice leaves the last color.
//
// The framebuffer surface is the terminal implementation; Masked wraps any
// Canvas to gate writes. Canvas implementations are not synchronized:
// callers serialize drawing, which the input dispatcher guarantees for
// event callbacks.
type Canvas interface {
	WritePixel(p IntPoint, c Color)
}

// CanvasFunc adapts an ordinary function to the Canvas interface.
type CanvasFunc func(p IntPoint, c Color)

// WritePixel calls f(p, c).
func (f CanvasFunc) WritePixel(p IntPoint, c Color) {
	f(p, c)
}
