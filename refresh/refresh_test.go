// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package refresh

import (
	"errors"
	"sync"
	"testing"

	"github.com/gogpu/eink"
	"github.com/gogpu/eink/internal/mxcfb"
)

// fakeDevice records requests.
type fakeDevice struct {
	mu      sync.Mutex
	sent    []mxcfb.UpdateData
	waited  []uint32
	sendErr error
}

func (d *fakeDevice) Bounds() eink.Rect { return eink.RectOfSize(0, 0, 1404, 1872) }

func (d *fakeDevice) SendUpdate(u *mxcfb.UpdateData) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.sendErr != nil {
		return d.sendErr
	}
	d.sent = append(d.sent, *u)
	return nil
}

func (d *fakeDevice) WaitForUpdate(m *mxcfb.UpdateMarkerData) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.waited = append(d.waited, m.UpdateMarker)
	m.CollisionTest = 0
	return nil
}

func TestPartialRefreshRegion(t *testing.T) {
	tests := []struct {
		name string
		r    eink.Rect
		want mxcfb.Rect
	}{
		{"line", eink.Rect{Top: 0, Left: 0, Width: 10, Height: 0}, mxcfb.Rect{Top: 0, Left: 0, Width: 11, Height: 1}},
		{"inside", eink.RectOfSize(100, 200, 50, 40), mxcfb.Rect{Top: 200, Left: 100, Width: 50, Height: 40}},
		{"clamped", eink.RectFromExtents(1400, 1870, 1500, 1900), mxcfb.Rect{Top: 1870, Left: 1400, Width: 4, Height: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := &fakeDevice{}
			c := New(dev)
			m, err := c.PartialRefresh(tt.r, ModeAsync, Ink)
			if err != nil || m == 0 {
				t.Fatalf("PartialRefresh = %d, %v", m, err)
			}
			if len(dev.sent) != 1 {
				t.Fatalf("sent %d updates", len(dev.sent))
			}
			u := dev.sent[0]
			if u.UpdateRegion != tt.want {
				t.Errorf("region = %+v, want %+v", u.UpdateRegion, tt.want)
			}
			if u.UpdateMarker != uint32(m) || u.WaveformMode != mxcfb.WaveformDU || u.QuantBit != mxcfb.DrawingQuantBit {
				t.Errorf("request = %+v", u)
			}
			if len(dev.waited) != 0 {
				t.Error("async refresh waited")
			}
		})
	}
}

func TestPartialRefreshSkips(t *testing.T) {
	dev := &fakeDevice{}
	c := New(dev)
	for _, r := range []eink.Rect{eink.InvalidRect, eink.RectOfSize(2000, 0, 10, 10)} {
		if m, err := c.PartialRefresh(r, ModeWait, Widget); m != 0 || err != nil {
			t.Errorf("PartialRefresh(%v) = %d, %v", r, m, err)
		}
	}
	if m, _ := c.PartialRefresh(eink.RectOfSize(0, 0, 5, 5), ModeDryRun, Widget); m != 0 {
		t.Errorf("dry run returned marker %d", m)
	}
	if len(dev.sent) != 0 {
		t.Errorf("sent %d updates", len(dev.sent))
	}
	if u, ok := c.Request(eink.RectOfSize(0, 0, 5, 5), Widget); !ok || u.UpdateRegion.Width != 5 {
		t.Errorf("Request = %+v, %v", u, ok)
	}
}

func TestPartialRefreshWaitUsesMarker(t *testing.T) {
	dev := &fakeDevice{}
	c := New(dev)
	m1, _ := c.PartialRefresh(eink.RectOfSize(0, 0, 5, 5), ModeWait, Widget)
	m2, _ := c.PartialRefresh(eink.RectOfSize(0, 0, 5, 5), ModeWait, Widget)
	if m1 == m2 || m1 == 0 || m2 == 0 {
		t.Errorf("markers %d, %d not distinct and non-zero", m1, m2)
	}
	if len(dev.waited) != 2 || dev.waited[0] != uint32(m1) || dev.waited[1] != uint32(m2) {
		t.Errorf("waited on %v, want [%d %d]", dev.waited, m1, m2)
	}
}

func TestMarkersDistinctUnderConcurrency(t *testing.T) {
	dev := &fakeDevice{}
	c := New(dev)
	const n = 200
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.PartialRefresh(eink.RectOfSize(0, 0, 1, 1), ModeAsync, Ink); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	seen := make(map[uint32]bool, n)
	for _, u := range dev.sent {
		if seen[u.UpdateMarker] {
			t.Fatalf("marker %d issued twice", u.UpdateMarker)
		}
		seen[u.UpdateMarker] = true
	}
	if len(seen) != n {
		t.Errorf("%d distinct markers, want %d", len(seen), n)
	}
}

func TestDedup(t *testing.T) {
	dev := &fakeDevice{}
	c := New(dev, WithDedup(true))
	big := eink.RectOfSize(0, 0, 100, 100)
	small := eink.RectOfSize(10, 10, 5, 5)
	outside := eink.RectOfSize(90, 90, 20, 20)

	c.PartialRefresh(big, ModeAsync, Ink)
	if m, _ := c.PartialRefresh(small, ModeAsync, Ink); m != 0 {
		t.Error("contained request was not deduplicated")
	}
	if m, _ := c.PartialRefresh(outside, ModeAsync, Ink); m == 0 {
		t.Error("overlapping request was deduplicated")
	}
	c.ResetDedup()
	if m, _ := c.PartialRefresh(eink.RectOfSize(95, 95, 2, 2), ModeAsync, Ink); m == 0 {
		t.Error("request after ResetDedup was deduplicated")
	}
	if len(dev.sent) != 3 {
		t.Errorf("sent %d updates, want 3", len(dev.sent))
	}
}

func TestFullRefresh(t *testing.T) {
	dev := &fakeDevice{}
	c := New(dev, WithSettleDelay(0))

	m, err := c.FullRefresh(Deep, true)
	if err != nil || m == 0 {
		t.Fatalf("FullRefresh = %d, %v", m, err)
	}
	u := dev.sent[0]
	if u.UpdateMode != mxcfb.UpdateModeFull || u.WaveformMode != mxcfb.WaveformInit ||
		u.Temp != mxcfb.TempUseAmbient || u.DitherMode != mxcfb.DitherPassthrough {
		t.Errorf("deep request = %+v", u)
	}
	if u.UpdateRegion != (mxcfb.Rect{Width: 1404, Height: 1872}) {
		t.Errorf("full region = %+v", u.UpdateRegion)
	}
	if len(dev.waited) != 0 {
		t.Error("deep refresh waited on a marker instead of settling")
	}

	if _, err := c.FullRefresh(Widget, true); err != nil {
		t.Fatal(err)
	}
	if len(dev.waited) != 1 {
		t.Error("trackable full refresh did not wait")
	}
}

func TestSendErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	dev := &fakeDevice{sendErr: boom}
	c := New(dev)
	if _, err := c.PartialRefresh(eink.RectOfSize(0, 0, 1, 1), ModeWait, Ink); !errors.Is(err, boom) {
		t.Errorf("error = %v, want boom", err)
	}
	if len(dev.waited) != 0 {
		t.Error("waited after a failed send")
	}
}

func TestWaitZeroMarker(t *testing.T) {
	dev := &fakeDevice{}
	if _, err := New(dev).Wait(0); err != nil || len(dev.waited) != 0 {
		t.Errorf("Wait(0) = %v, waited %v", err, dev.waited)
	}
}
