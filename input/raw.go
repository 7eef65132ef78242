// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package input reads Linux evdev devices and turns their packets into
// semantic events delivered one at a time.
//
// Each attached device gets a reader goroutine that decodes raw packets
// and feeds them to a per-device Normalizer (Digitizer, Touch, Buttons).
// Normalized events go through one bounded queue to a single dispatcher
// running on the goroutine that called Pipeline.Run, so event handlers
// never run concurrently.
package input

import (
	"bufio"
	"encoding/binary"
	"io"

	"golang.org/x/sys/unix"
)

// Event types and codes used by the normalizers.
const (
	evSyn = 0x00
	evKey = 0x01
	evAbs = 0x03

	synReport  = 0x00
	synDropped = 0x03

	absX        = 0x00
	absY        = 0x01
	absPressure = 0x18
	absDistance = 0x19
	absTiltX    = 0x1a
	absTiltY    = 0x1b

	absMTSlot       = 0x2f
	absMTPositionX  = 0x35
	absMTPositionY  = 0x36
	absMTTrackingID = 0x39

	btnToolPen    = 0x140
	btnToolRubber = 0x141
	btnTouch      = 0x14a

	keyHome   = 102
	keyLeft   = 105
	keyRight  = 106
	keyPower  = 116
	keyWakeup = 143
)

// RawEvent is struct input_event as the kernel writes it.
type RawEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// DefaultChunkSize is the default read buffer of a Decoder in bytes.
const DefaultChunkSize = 4096

// Decoder reads RawEvents from an evdev stream.
type Decoder struct {
	r *bufio.Reader
}

// NewDecoder returns a decoder reading r through a buffer of chunkSize
// bytes. A non-positive chunkSize selects DefaultChunkSize.
func NewDecoder(r io.Reader, chunkSize int) *Decoder {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Decoder{r: bufio.NewReaderSize(r, chunkSize)}
}

// Next returns the next event. A stream that ends in the middle of an
// event returns io.ErrUnexpectedEOF.
func (d *Decoder) Next() (RawEvent, error) {
	var ev RawEvent
	err := binary.Read(d.r, binary.NativeEndian, &ev)
	return ev, err
}
