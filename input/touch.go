// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"maps"
	"slices"
)

type contact struct {
	x, y   int32
	moved  bool
	lifted bool
}

// Touch normalizes a type B multitouch panel. Slot updates accumulate
// until SYN_REPORT, which yields one event per changed contact in slot
// order.
type Touch struct {
	xf       Transform
	slot     int
	contacts map[int]*contact
	seq      uint32
}

// NewTouch returns a multitouch normalizer mapping positions with xf.
func NewTouch(xf Transform) *Touch {
	return &Touch{xf: xf, contacts: make(map[int]*contact)}
}

// Device implements Normalizer.
func (t *Touch) Device() Device { return DeviceTouch }

// Feed implements Normalizer.
func (t *Touch) Feed(ev RawEvent, emit func(Event)) {
	switch ev.Type {
	case evAbs:
		switch ev.Code {
		case absMTSlot:
			t.slot = int(ev.Value)
		case absMTTrackingID:
			if ev.Value < 0 {
				if c, ok := t.contacts[t.slot]; ok {
					c.lifted = true
				}
				return
			}
			// A new contact in an occupied slot ends the old one first,
			// whether or not its lift reached a frame boundary.
			if old, ok := t.contacts[t.slot]; ok {
				delete(t.contacts, t.slot)
				emit(TouchReleaseEvent{Seq: t.seq, Finger: t.slot, Position: t.xf.Apply(old.x, old.y)})
			}
			if t.down() == 0 {
				t.seq++
			}
			t.contacts[t.slot] = &contact{}
		case absMTPositionX:
			if c := t.current(); c != nil {
				c.x, c.moved = ev.Value, true
			}
		case absMTPositionY:
			if c := t.current(); c != nil {
				c.y, c.moved = ev.Value, true
			}
		}
	case evSyn:
		if ev.Code != synReport {
			return
		}
		for _, s := range slices.Sorted(maps.Keys(t.contacts)) {
			c := t.contacts[s]
			pos := t.xf.Apply(c.x, c.y)
			switch {
			case c.lifted:
				delete(t.contacts, s)
				emit(TouchReleaseEvent{Seq: t.seq, Finger: s, Position: pos})
			case c.moved:
				c.moved = false
				emit(TouchEvent{Seq: t.seq, Finger: s, Position: pos})
			}
		}
	}
}

// current returns the contact of the selected slot. Position updates for
// a slot without a contact happen when the reader attaches mid-gesture;
// they start an untracked contact so the finger is still reported.
func (t *Touch) current() *contact {
	c, ok := t.contacts[t.slot]
	if !ok {
		if t.down() == 0 {
			t.seq++
		}
		c = &contact{}
		t.contacts[t.slot] = c
	}
	return c
}

func (t *Touch) down() int {
	n := 0
	for _, c := range t.contacts {
		if !c.lifted {
			n++
		}
	}
	return n
}
