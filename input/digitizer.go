// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"math"
	"sync/atomic"
)

// Normalizer turns one device's raw packets into events. Feed is called
// from that device's reader goroutine only; emit may block until the
// dispatcher has room.
type Normalizer interface {
	Device() Device
	Feed(ev RawEvent, emit func(Event))
}

// Digitizer normalizes a pen digitizer.
//
// Key events are reported at once as InstrumentChangeEvents. Axis values
// accumulate until SYN_REPORT, which yields a DrawEvent while the pen
// touches the glass and a HoverEvent while it is only in range.
type Digitizer struct {
	xf      Transform
	inRange atomic.Bool

	x, y     int32
	pressure uint16
	distance uint16
	tilt     Tilt
	touching bool
	dirty    bool
}

// NewDigitizer returns a digitizer normalizer mapping positions with xf.
func NewDigitizer(xf Transform) *Digitizer {
	return &Digitizer{xf: xf}
}

// Device implements Normalizer.
func (d *Digitizer) Device() Device { return DeviceDigitizer }

// InRange reports whether the pen or rubber is within sensing range. It
// is updated as soon as the reader sees the key event, before the
// matching InstrumentChangeEvent is dispatched, and is safe to call from
// any goroutine.
func (d *Digitizer) InRange() bool { return d.inRange.Load() }

// Feed implements Normalizer.
func (d *Digitizer) Feed(ev RawEvent, emit func(Event)) {
	switch ev.Type {
	case evKey:
		on := ev.Value != 0
		switch ev.Code {
		case btnToolPen:
			d.inRange.Store(on)
			emit(InstrumentChangeEvent{Tool: ToolPen, State: on})
		case btnToolRubber:
			d.inRange.Store(on)
			emit(InstrumentChangeEvent{Tool: ToolRubber, State: on})
		case btnTouch:
			d.touching = on
			emit(InstrumentChangeEvent{Tool: ToolTouch, State: on})
		}
	case evAbs:
		switch ev.Code {
		case absX:
			d.x = ev.Value
		case absY:
			d.y = ev.Value
		case absPressure:
			d.pressure = clampU16(ev.Value)
		case absDistance:
			d.distance = clampU16(ev.Value)
		case absTiltX:
			d.tilt.X = int(ev.Value)
		case absTiltY:
			d.tilt.Y = int(ev.Value)
		default:
			return
		}
		d.dirty = true
	case evSyn:
		if ev.Code != synReport || !d.dirty {
			return
		}
		d.dirty = false
		pos := d.xf.Apply(d.x, d.y)
		switch {
		case d.touching:
			emit(DrawEvent{Position: pos, Pressure: d.pressure, Tilt: d.tilt})
		case d.inRange.Load():
			emit(HoverEvent{Position: pos, Distance: d.distance, Tilt: d.tilt})
		}
	}
}

func clampU16(v int32) uint16 {
	return uint16(min(max(v, 0), math.MaxUint16)) //nolint:gosec // clamped
}
