// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package framebuffer exposes a Linux framebuffer as an eink.Canvas.
//
// Open maps /dev/fbN shared and read-write, so every WritePixel lands in
// the memory the panel controller scans out; nothing becomes visible until
// an update is sent (see package refresh). New wraps ordinary memory with
// the same geometry for offscreen drawing and tests.
//
// A Surface is not synchronized. Draw, dump and restore from one goroutine
// at a time.
package framebuffer

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/eink"
	"github.com/gogpu/eink/internal/mxcfb"
)

// Geometry describes the pixel layout of a surface.
type Geometry struct {
	Name          string
	Width, Height int // visible pixels
	Stride        int // bytes per row
	BitsPerPixel  int // 8, 16 (RGB565) or 32 (XRGB8888)
}

// BytesPerPixel returns BitsPerPixel/8.
func (g Geometry) BytesPerPixel() int {
	return g.BitsPerPixel / 8
}

// Bounds returns the whole visible display.
func (g Geometry) Bounds() eink.Rect {
	return eink.RectOfSize(0, 0, g.Width, g.Height)
}

func (g Geometry) validate() error {
	switch g.BitsPerPixel {
	case 8, 16, 32:
	default:
		return fmt.Errorf("%w: %d bits per pixel", ErrBadGeometry, g.BitsPerPixel)
	}
	if g.Width <= 0 || g.Height <= 0 || g.Stride < g.Width*g.BytesPerPixel() {
		return fmt.Errorf("%w: %dx%d stride %d", ErrBadGeometry, g.Width, g.Height, g.Stride)
	}
	return nil
}

// Surface is a pixel store in the panel's native format.
type Surface struct {
	mem  []byte
	geom Geometry
	dev  *device // nil when memory-backed
}

// New returns a memory-backed surface over mem. mem must hold at least
// Stride*Height bytes.
func New(mem []byte, g Geometry) (*Surface, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	if len(mem) < g.Stride*g.Height {
		return nil, fmt.Errorf("%w: %d bytes for %d rows of %d", ErrBadGeometry, len(mem), g.Height, g.Stride)
	}
	return &Surface{mem: mem, geom: g}, nil
}

// NewMemory allocates a memory-backed surface of tightly packed rows.
func NewMemory(width, height, bitsPerPixel int) (*Surface, error) {
	g := Geometry{
		Name:         "memory",
		Width:        width,
		Height:       height,
		Stride:       width * bitsPerPixel / 8,
		BitsPerPixel: bitsPerPixel,
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return New(make([]byte, g.Stride*g.Height), g)
}

// Geometry returns the surface layout read at open time.
func (s *Surface) Geometry() Geometry {
	return s.geom
}

// Bounds returns the whole visible display.
func (s *Surface) Bounds() eink.Rect {
	return s.geom.Bounds()
}

func (s *Surface) offset(p eink.IntPoint) (int, bool) {
	if p.X < 0 || p.Y < 0 || p.X >= s.geom.Width || p.Y >= s.geom.Height {
		return 0, false
	}
	off := p.Y*s.geom.Stride + p.X*s.geom.BytesPerPixel()
	if off+s.geom.BytesPerPixel() > len(s.mem) {
		return 0, false
	}
	return off, true
}

// WritePixel stores c at p. Writes outside the visible display are
// dropped.
func (s *Surface) WritePixel(p eink.IntPoint, c eink.Color) {
	off, ok := s.offset(p)
	if !ok {
		return
	}
	switch s.geom.BitsPerPixel {
	case 16:
		binary.LittleEndian.PutUint16(s.mem[off:], c.RGB565())
	case 8:
		s.mem[off] = c.Luma()
	case 32:
		r, g, b := c.RGB8()
		s.mem[off], s.mem[off+1], s.mem[off+2], s.mem[off+3] = b, g, r, 0xff
	}
}

// ReadPixel returns the color stored at p, or White outside the display.
func (s *Surface) ReadPixel(p eink.IntPoint) eink.Color {
	off, ok := s.offset(p)
	if !ok {
		return eink.White
	}
	switch s.geom.BitsPerPixel {
	case 16:
		return eink.FromRGB565(binary.LittleEndian.Uint16(s.mem[off:]))
	case 8:
		switch v := s.mem[off]; v {
		case 0:
			return eink.Black
		case 0xff:
			return eink.White
		default:
			return eink.Gray(v)
		}
	default:
		r, g, b := s.mem[off+2], s.mem[off+1], s.mem[off]
		switch {
		case r == 0 && g == 0 && b == 0:
			return eink.Black
		case r == 0xff && g == 0xff && b == 0xff:
			return eink.White
		}
		return eink.RGB(r, g, b)
	}
}

// Clear fills the whole framebuffer memory with 0xFF, the lightest value
// in every supported format. It does not refresh the panel.
func (s *Surface) Clear() {
	for i := range s.mem {
		s.mem[i] = 0xff
	}
}

// regionSpan validates r and returns its byte geometry.
func (s *Surface) regionSpan(r eink.Rect) (rowBytes, rows int, err error) {
	if s.mem == nil {
		return 0, 0, ErrClosed
	}
	if !r.IsValid() || !s.Bounds().ContainsRect(r) {
		return 0, 0, fmt.Errorf("%w: %v in %dx%d", ErrRegionOutOfBounds, r, s.geom.Width, s.geom.Height)
	}
	w, h := r.Size()
	return w * s.geom.BytesPerPixel(), h, nil
}

// DumpRegion copies the pixels of r into a new buffer, row-major with
// no padding between rows.
func (s *Surface) DumpRegion(r eink.Rect) ([]byte, error) {
	rowBytes, rows, err := s.regionSpan(r)
	if err != nil {
		return nil, err
	}
	out := make([]byte, rowBytes*rows)
	start := int(r.Top)*s.geom.Stride + int(r.Left)*s.geom.BytesPerPixel()
	for y := range rows {
		src := start + y*s.geom.Stride
		copy(out[y*rowBytes:(y+1)*rowBytes], s.mem[src:src+rowBytes])
	}
	return out, nil
}

// RestoreRegion writes data, laid out as DumpRegion returns it, back into
// r. It does not refresh the panel.
func (s *Surface) RestoreRegion(r eink.Rect, data []byte) error {
	rowBytes, rows, err := s.regionSpan(r)
	if err != nil {
		return err
	}
	if len(data) != rowBytes*rows {
		return &RegionSizeError{Want: rowBytes * rows, Got: len(data)}
	}
	start := int(r.Top)*s.geom.Stride + int(r.Left)*s.geom.BytesPerPixel()
	for y := range rows {
		dst := start + y*s.geom.Stride
		copy(s.mem[dst:dst+rowBytes], data[y*rowBytes:(y+1)*rowBytes])
	}
	return nil
}

// SendUpdate submits an update request to the panel controller. On a
// memory-backed surface it does nothing.
func (s *Surface) SendUpdate(u *mxcfb.UpdateData) error {
	if s.mem == nil {
		return ErrClosed
	}
	if s.dev == nil {
		return nil
	}
	return s.dev.sendUpdate(u)
}

// WaitForUpdate blocks until the update with m.UpdateMarker has been
// applied and stores the collision result in m. On a memory-backed
// surface it returns at once with no collision.
func (s *Surface) WaitForUpdate(m *mxcfb.UpdateMarkerData) error {
	if s.mem == nil {
		return ErrClosed
	}
	if s.dev == nil {
		m.CollisionTest = 0
		return nil
	}
	return s.dev.waitForUpdate(m)
}

// Close unmaps and closes the device. Closing a memory-backed surface
// releases the reference to its memory. Close is idempotent.
func (s *Surface) Close() error {
	if s.mem == nil {
		return nil
	}
	var err error
	if s.dev != nil {
		err = s.dev.close(s.mem)
		s.dev = nil
	}
	s.mem = nil
	return err
}
