// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package appctx

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/gogpu/eink"
	"github.com/gogpu/eink/config"
	"github.com/gogpu/eink/framebuffer"
	"github.com/gogpu/eink/input"
	"github.com/gogpu/eink/refresh"
)

// recordingSurface is a memory surface that remembers issued updates.
type recordingSurface struct {
	*framebuffer.Surface
	updates []refresh.UpdateData
}

func (r *recordingSurface) SendUpdate(u *refresh.UpdateData) error {
	r.updates = append(r.updates, *u)
	return r.Surface.SendUpdate(u)
}

func newTestContext(t *testing.T, opts ...Option) (*Context, *recordingSurface) {
	t.Helper()
	fb, err := framebuffer.NewMemory(100, 80, 16)
	if err != nil {
		t.Fatal(err)
	}
	s := &recordingSurface{Surface: fb}
	return New(s, input.NewPipeline(), opts...), s
}

func uniform(b []byte, v byte) bool {
	for _, x := range b {
		if x != v {
			return false
		}
	}
	return true
}

func TestClear(t *testing.T) {
	for _, deep := range []bool{false, true} {
		c, s := newTestContext(t, WithRefreshOptions(refresh.WithSettleDelay(time.Millisecond)))
		eink.FillRect(s, eink.RectOfSize(10, 10, 20, 20), eink.Black)

		if err := c.Clear(deep); err != nil {
			t.Fatalf("Clear(%v) = %v", deep, err)
		}
		raw, err := s.DumpRegion(s.Bounds())
		if err != nil {
			t.Fatal(err)
		}
		if !uniform(raw, 0xff) {
			t.Errorf("Clear(%v) left non-white pixels", deep)
		}
		if len(s.updates) != 1 {
			t.Fatalf("Clear(%v) issued %d updates, want 1", deep, len(s.updates))
		}
		u := s.updates[0]
		if u.UpdateRegion.Width != 100 || u.UpdateRegion.Height != 80 {
			t.Errorf("Clear(%v) region = %+v, want whole panel", deep, u.UpdateRegion)
		}
		wantMode := refresh.UpdatePartial
		if deep {
			wantMode = refresh.UpdateFull
		}
		if u.UpdateMode != wantMode {
			t.Errorf("Clear(%v) update mode = %v, want %v", deep, u.UpdateMode, wantMode)
		}
		if u.Temp != refresh.TempAmbient || u.DitherMode != refresh.DitherPassthrough {
			t.Errorf("Clear(%v) temp, dither = %#x, %#x, want ambient passthrough", deep, u.Temp, u.DitherMode)
		}
	}
}

func TestFlushPolicies(t *testing.T) {
	c, s := newTestContext(t)
	r := eink.RectOfSize(5, 5, 10, 10)
	tests := []struct {
		policy  FlushPolicy
		updates int
	}{
		{NoRefresh, 0},
		{Refresh, 1},
		{RefreshAndWait, 2},
	}
	for _, tt := range tests {
		m, err := c.Flush(r, tt.policy)
		if err != nil {
			t.Fatalf("Flush(%v) = %v", tt.policy, err)
		}
		if (m != 0) != (tt.policy != NoRefresh) {
			t.Errorf("Flush(%v) marker = %d", tt.policy, m)
		}
		if len(s.updates) != tt.updates {
			t.Errorf("after Flush(%v): %d updates, want %d", tt.policy, len(s.updates), tt.updates)
		}
	}
	if _, err := c.FlushInk(r); err != nil {
		t.Fatal(err)
	}
	if got := s.updates[len(s.updates)-1].WaveformMode; got != refresh.WaveformDU {
		t.Errorf("FlushInk waveform = %v, want DU", got)
	}
}

func TestSaveRestoreCanvas(t *testing.T) {
	canvas := eink.RectOfSize(0, 40, 100, 40)
	c, s := newTestContext(t, WithCanvasRegion(canvas))
	s.Clear()

	if c.RestoreCanvas() {
		t.Fatal("RestoreCanvas with no snapshot reported success")
	}

	eink.FillCircle(s, eink.IntPoint{X: 50, Y: 60}, 10, eink.Black)
	before, _ := s.DumpRegion(canvas)
	if !c.SaveCanvas() {
		t.Fatal("SaveCanvas failed")
	}
	s.Clear()
	if !c.RestoreCanvas() {
		t.Fatal("RestoreCanvas failed")
	}
	after, _ := s.DumpRegion(canvas)
	if !bytes.Equal(before, after) {
		t.Error("restored canvas differs from the saved one")
	}
	if s.ReadPixel(eink.IntPoint{X: 50, Y: 60}) != eink.Black {
		t.Error("circle centre not black after restore")
	}
	if len(s.updates) == 0 {
		t.Error("restore did not refresh the canvas")
	}
}

func TestCanvasOperationsOutsideSurface(t *testing.T) {
	c, s := newTestContext(t, WithCanvasRegion(eink.RectOfSize(50, 50, 200, 200)))
	s.Clear()
	if c.SaveCanvas() {
		t.Error("SaveCanvas outside the surface succeeded")
	}
	if c.InvertCanvas() {
		t.Error("InvertCanvas outside the surface succeeded")
	}
	raw, _ := s.DumpRegion(s.Bounds())
	if !uniform(raw, 0xff) {
		t.Error("failed canvas operation changed pixels")
	}
}

func TestInvertCanvas(t *testing.T) {
	canvas := eink.RectOfSize(0, 0, 100, 40)
	c, s := newTestContext(t, WithCanvasRegion(canvas))
	s.Clear()
	if !c.InvertCanvas() {
		t.Fatal("InvertCanvas failed")
	}
	if got := s.ReadPixel(eink.IntPoint{X: 10, Y: 10}); got != eink.Black {
		t.Errorf("inverted white pixel = %v, want black", got)
	}
	if got := s.ReadPixel(eink.IntPoint{X: 10, Y: 50}); got != eink.White {
		t.Errorf("pixel outside canvas = %v, want white", got)
	}
}

func keyPacket(t *testing.T, code uint16, value int32) []byte {
	t.Helper()
	var buf bytes.Buffer
	evs := []input.RawEvent{
		{Type: 0x01, Code: code, Value: value},
		{Type: 0x00, Code: 0x00},
	}
	for _, ev := range evs {
		if err := binary.Write(&buf, binary.NativeEndian, ev); err != nil {
			t.Fatal(err)
		}
	}
	return buf.Bytes()
}

func TestDispatchRoutesByDevice(t *testing.T) {
	fb, err := framebuffer.NewMemory(100, 80, 16)
	if err != nil {
		t.Fatal(err)
	}
	p := input.NewPipeline()
	pr, pw := io.Pipe()
	p.Attach(pr, input.NewButtons())
	left, power := keyPacket(t, 105, 1), keyPacket(t, 116, 1)
	go func() {
		_, _ = pw.Write(left)
		_, _ = pw.Write(power)
	}()

	var pressed []input.Button
	c := New(fb, p, WithHandlers(Handlers{
		Buttons: func(c *Context, ev input.Event) {
			e, ok := ev.(input.ButtonPressEvent)
			if !ok {
				return
			}
			pressed = append(pressed, e.Button)
			if e.Button == input.ButtonPower {
				c.Stop()
			}
		},
	}))

	done := make(chan error, 1)
	go func() { done <- c.Dispatch(context.Background()) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Dispatch = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Dispatch did not return")
	}
	if len(pressed) != 2 || pressed[0] != input.ButtonLeft || pressed[1] != input.ButtonPower {
		t.Errorf("pressed = %v, want [left power]", pressed)
	}
	if c.PenInRange() {
		t.Error("pen reported in range without a digitizer")
	}
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Input.QueueSize = 0
	if _, err := Open(cfg, Handlers{}); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("Open = %v, want config.ErrInvalid", err)
	}
}

func TestOpenMissingFramebuffer(t *testing.T) {
	cfg := config.Default()
	cfg.Devices.Framebuffer = "/nonexistent/fb"
	if _, err := Open(cfg, Handlers{}); err == nil {
		t.Error("Open of a missing framebuffer succeeded")
	}
}
