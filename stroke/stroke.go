// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package stroke turns digitizer samples into variable-width quadratic
// bezier segments.
//
// Each new sample after the second yields one segment through the
// midpoints around the previous sample, so consecutive segments join
// smoothly and their widths follow the pen pressure.
package stroke

import (
	"fmt"

	"github.com/gogpu/eink"
	"github.com/gogpu/eink/input"
)

// MaxPressure is the pressure at which a sample's diameter equals the
// history's multiplier.
const MaxPressure = 2048

// DefaultMultiplier is the diameter in pixels of a full-pressure stroke.
const DefaultMultiplier = 2

// DefaultSamples is the number of curve samples per rendered segment.
const DefaultSamples = 10

// Sample is one pen position with its pressure.
type Sample struct {
	Pos      eink.Point
	Pressure uint16
}

// Segment is one stroke piece ready for eink.DrawDynamicBezier.
type Segment struct {
	Start, Ctrl, End eink.BezierPoint
}

// History buffers the last samples of the current stroke. The zero value
// uses DefaultMultiplier.
type History struct {
	// Multiplier scales pressure to diameter; zero means
	// DefaultMultiplier. It is read when a segment is emitted.
	Multiplier float64

	buf []Sample
}

// Push appends s and returns the segments it completes: none until three
// samples are buffered, then one per sample.
func (h *History) Push(s Sample) []Segment {
	h.buf = append(h.buf, s)
	var segs []Segment
	for len(h.buf) >= 3 {
		p0, p1, p2 := h.buf[0], h.buf[1], h.buf[2]
		h.buf = h.buf[1:]
		r0, r1, r2 := h.radius(p0), h.radius(p1), h.radius(p2)
		segs = append(segs, Segment{
			Start: eink.BezierPoint{Pos: p2.Pos.Midpoint(p1.Pos), Width: r2 + r1},
			Ctrl:  eink.BezierPoint{Pos: p1.Pos, Width: 2 * r1},
			End:   eink.BezierPoint{Pos: p1.Pos.Midpoint(p0.Pos), Width: r1 + r0},
		})
	}
	return segs
}

// Len returns the number of buffered samples.
func (h *History) Len() int { return len(h.buf) }

// Reset drops the buffered samples so the next sample starts a new stroke.
func (h *History) Reset() { h.buf = h.buf[:0] }

func (h *History) radius(s Sample) float64 {
	m := h.Multiplier
	if m == 0 {
		m = DefaultMultiplier
	}
	return m * float64(s.Pressure) / MaxPressure / 2
}

// Tracker feeds digitizer events into a History.
type Tracker struct {
	History
}

// Handle updates the stroke for ev and returns the completed segments.
// Lifting the pen or hovering further than one unit above the glass ends
// the stroke. Events from other devices are ignored.
func (t *Tracker) Handle(ev input.Event) []Segment {
	switch e := ev.(type) {
	case input.DrawEvent:
		return t.Push(Sample{Pos: e.Position, Pressure: e.Pressure})
	case input.HoverEvent:
		if e.Distance > 1 {
			t.Reset()
		}
	case input.InstrumentChangeEvent:
		switch e.Tool {
		case input.ToolPen, input.ToolRubber:
		case input.ToolTouch:
			if !e.State {
				t.Reset()
			}
		default:
			panic(fmt.Sprintf("stroke: unknown tool %v", e.Tool))
		}
	}
	return nil
}

// Render draws seg onto c and returns the dirty rectangle.
func Render[C eink.Canvas](c C, seg Segment, samples int, col eink.Color) eink.Rect {
	return eink.DrawDynamicBezier(c, seg.Start, seg.Ctrl, seg.End, samples, col)
}
