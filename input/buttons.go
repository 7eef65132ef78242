// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

// Buttons normalizes the GPIO key device. Autorepeat events are dropped.
type Buttons struct{}

// NewButtons returns a button normalizer.
func NewButtons() *Buttons { return &Buttons{} }

// Device implements Normalizer.
func (*Buttons) Device() Device { return DeviceButtons }

// Feed implements Normalizer.
func (*Buttons) Feed(ev RawEvent, emit func(Event)) {
	if ev.Type != evKey {
		return
	}
	b, ok := buttonOf(ev.Code)
	if !ok {
		return
	}
	switch ev.Value {
	case 1:
		emit(ButtonPressEvent{Button: b})
	case 0:
		emit(ButtonReleaseEvent{Button: b})
	}
}

func buttonOf(code uint16) (Button, bool) {
	switch code {
	case keyLeft:
		return ButtonLeft, true
	case keyHome:
		return ButtonMiddle, true
	case keyRight:
		return ButtonRight, true
	case keyPower:
		return ButtonPower, true
	case keyWakeup:
		return ButtonWakeup, true
	}
	return 0, false
}
