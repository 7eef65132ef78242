package eink

// Masked is a Canvas that forwards only the writes its predicate accepts.
// It borrows the underlying canvas and owns no pixels.
//
// Masks compose: masking an already masked canvas accepts a write only if
// every predicate in the chain does. Predicates run innermost-last, so the
// cheapest or most selective predicate is best applied outermost.
type Masked[C Canvas] struct {
	source C
	accept func(IntPoint) bool
}

// Mask wraps c so that writes at positions where accept returns false are
// dropped. Typical predicates clip to a region, cut off negative
// coordinates or stipple a pattern:
//
//	m := eink.Mask(eink.Mask(fb, eink.InRect(canvas)), eink.Checkered(16))
//	eink.DrawDynamicBezier(m, start, ctrl, end, 10, eink.Black)
func Mask[C Canvas](c C, accept func(IntPoint) bool) *Masked[C] {
	return &Masked[C]{source: c, accept: accept}
}

// WritePixel forwards the write if the predicate accepts p.
func (m *Masked[C]) WritePixel(p IntPoint, c Color) {
	if m.accept(p) {
		m.source.WritePixel(p, c)
	}
}

// Source returns the wrapped canvas.
func (m *Masked[C]) Source() C {
	return m.source
}

// InRect accepts positions inside r.
func InRect(r Rect) func(IntPoint) bool {
	return r.ContainsPoint
}

// NonNegative accepts positions with both coordinates >= 0.
func NonNegative(p IntPoint) bool {
	return p.X >= 0 && p.Y >= 0
}

// Checkered accepts alternating size×size cells of a checkerboard.
// The cell containing the origin is rejected. Size must be positive.
func Checkered(size int) func(IntPoint) bool {
	return func(p IntPoint) bool {
		return (floorMod(p.X, 2*size) < size) != (floorMod(p.Y, 2*size) < size)
	}
}

func floorMod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
