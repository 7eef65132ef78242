// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"strconv"

	"github.com/gogpu/eink"
)

// Device identifies an input source.
type Device uint8

// Input devices.
const (
	DeviceDigitizer Device = iota
	DeviceTouch
	DeviceButtons

	deviceCount
)

func (d Device) String() string {
	switch d {
	case DeviceDigitizer:
		return "digitizer"
	case DeviceTouch:
		return "touch"
	case DeviceButtons:
		return "buttons"
	}
	return "Device(" + strconv.Itoa(int(d)) + ")"
}

// Event is one normalized input event. The concrete types are DrawEvent,
// HoverEvent, InstrumentChangeEvent, TouchEvent, TouchReleaseEvent,
// ButtonPressEvent and ButtonReleaseEvent.
type Event interface {
	Device() Device
	event()
}

// Tilt is the pen tilt in raw device units.
type Tilt struct {
	X, Y int
}

// Tool is a digitizer instrument state key.
type Tool uint8

// Tools.
const (
	// ToolPen is the pen tip coming into or leaving sensing range.
	ToolPen Tool = iota + 1
	// ToolRubber is the eraser end coming into or leaving range.
	ToolRubber
	// ToolTouch is the pen making or breaking contact with the glass.
	ToolTouch
)

func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "pen"
	case ToolRubber:
		return "rubber"
	case ToolTouch:
		return "touch"
	}
	return "Tool(" + strconv.Itoa(int(t)) + ")"
}

// DrawEvent is a digitizer report while the pen touches the glass.
type DrawEvent struct {
	Position eink.Point
	Pressure uint16
	Tilt     Tilt
}

// HoverEvent is a digitizer report while the pen is in range but not
// touching.
type HoverEvent struct {
	Position eink.Point
	Distance uint16
	Tilt     Tilt
}

// InstrumentChangeEvent reports a tool entering (State true) or leaving
// a state.
type InstrumentChangeEvent struct {
	Tool  Tool
	State bool
}

// TouchEvent is a finger contact report. Seq identifies the gesture: it
// changes only when a contact starts while no finger is down. Finger is
// the contact's slot, stable while the finger stays down.
type TouchEvent struct {
	Seq      uint32
	Finger   int
	Position eink.Point
}

// TouchReleaseEvent reports a finger lifting at its last position.
type TouchReleaseEvent struct {
	Seq      uint32
	Finger   int
	Position eink.Point
}

// Button is a physical button.
type Button uint8

// Buttons.
const (
	ButtonLeft Button = iota + 1
	ButtonMiddle
	ButtonRight
	ButtonPower
	ButtonWakeup
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	case ButtonPower:
		return "power"
	case ButtonWakeup:
		return "wakeup"
	}
	return "Button(" + strconv.Itoa(int(b)) + ")"
}

// ButtonPressEvent reports a button going down.
type ButtonPressEvent struct {
	Button Button
}

// ButtonReleaseEvent reports a button coming up.
type ButtonReleaseEvent struct {
	Button Button
}

func (DrawEvent) Device() Device             { return DeviceDigitizer }
func (HoverEvent) Device() Device            { return DeviceDigitizer }
func (InstrumentChangeEvent) Device() Device { return DeviceDigitizer }
func (TouchEvent) Device() Device            { return DeviceTouch }
func (TouchReleaseEvent) Device() Device     { return DeviceTouch }
func (ButtonPressEvent) Device() Device      { return DeviceButtons }
func (ButtonReleaseEvent) Device() Device    { return DeviceButtons }

func (DrawEvent) event()             {}
func (HoverEvent) event()            {}
func (InstrumentChangeEvent) event() {}
func (TouchEvent) event()            {}
func (TouchReleaseEvent) event()     {}
func (ButtonPressEvent) event()      {}
func (ButtonReleaseEvent) event()    {}
