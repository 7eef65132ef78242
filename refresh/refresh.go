// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package refresh turns dirty rectangles into e-ink panel updates.
//
// Drawing into the framebuffer changes memory only; the panel shows the
// change after a Controller issues an update for the region. Each issued
// update gets a Marker that Wait blocks on.
package refresh

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/eink"
	"github.com/gogpu/eink/internal/mxcfb"
)

// Device accepts update requests. framebuffer.Surface implements it.
type Device interface {
	Bounds() eink.Rect
	SendUpdate(*mxcfb.UpdateData) error
	WaitForUpdate(*mxcfb.UpdateMarkerData) error
}

// Marker identifies one issued update. The zero Marker means nothing was
// issued.
type Marker uint32

// Mode says what PartialRefresh does after building the request.
type Mode int

const (
	// ModeAsync sends the update and returns at once.
	ModeAsync Mode = iota

	// ModeWait sends the update and blocks until the panel applied it.
	ModeWait

	// ModeDryRun builds and logs the request without sending it.
	ModeDryRun
)

// DefaultSettleDelay is how long a Deep full refresh is given to finish
// when waiting was requested.
const DefaultSettleDelay = 150 * time.Millisecond

// Controller issues updates to one device. It is safe for concurrent use.
type Controller struct {
	dev     Device
	display eink.Rect
	settle  time.Duration
	dedup   bool

	next atomic.Uint32

	mu   sync.Mutex
	last eink.Rect
}

// Option configures a Controller.
type Option func(*Controller)

// WithDedup enables skipping partial updates whose region lies wholly
// inside the previous one. Off by default.
func WithDedup(on bool) Option {
	return func(c *Controller) { c.dedup = on }
}

// WithSettleDelay sets the sleep after a waited Deep full refresh.
func WithSettleDelay(d time.Duration) Option {
	return func(c *Controller) { c.settle = d }
}

// New returns a controller for dev. The display bounds are read once.
func New(dev Device, opts ...Option) *Controller {
	c := &Controller{
		dev:     dev,
		display: dev.Bounds(),
		settle:  DefaultSettleDelay,
		last:    eink.InvalidRect,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request builds the update request for r without issuing it. r is
// clipped to the display; ok is false when nothing of r is on screen.
// The request's marker is left zero.
func (c *Controller) Request(r eink.Rect, cfg Config) (u mxcfb.UpdateData, ok bool) {
	r = r.Intersect(c.display)
	if !r.IsValid() {
		return mxcfb.UpdateData{}, false
	}
	w, h := r.Size()
	return mxcfb.UpdateData{
		UpdateRegion: mxcfb.Rect{
			Top:    r.Top,
			Left:   r.Left,
			Width:  uint32(w), //nolint:gosec // positive pixel count
			Height: uint32(h), //nolint:gosec // positive pixel count
		},
		WaveformMode: cfg.Waveform,
		UpdateMode:   cfg.Update,
		Temp:         cfg.Temperature,
		Flags:        cfg.Flags,
		DitherMode:   cfg.Dither,
		QuantBit:     cfg.Quant,
	}, true
}

// PartialRefresh issues an update for r. An invalid or wholly off-screen
// r, a dry run and a deduplicated request all return the zero Marker and
// no error.
func (c *Controller) PartialRefresh(r eink.Rect, mode Mode, cfg Config) (Marker, error) {
	u, ok := c.Request(r, cfg)
	if !ok {
		return 0, nil
	}
	log := eink.Logger()
	if mode == ModeDryRun {
		log.Debug("refresh: dry run", "region", u.UpdateRegion, "waveform", cfg.Waveform)
		return 0, nil
	}
	if c.dedup && c.skip(r.Intersect(c.display)) {
		log.Debug("refresh: deduplicated", "region", u.UpdateRegion)
		return 0, nil
	}

	m, err := c.send(&u)
	if err != nil {
		return 0, err
	}
	log.Debug("refresh: partial", "marker", m, "region", u.UpdateRegion, "waveform", cfg.Waveform)
	if mode == ModeWait {
		if _, err := c.Wait(m); err != nil {
			return m, err
		}
	}
	return m, nil
}

// FullRefresh updates the whole display with cfg. With wait set it
// blocks until the update is applied, or for the settle delay when cfg
// cannot be tracked by marker (a Deep update).
func (c *Controller) FullRefresh(cfg Config, wait bool) (Marker, error) {
	u, ok := c.Request(c.display, cfg)
	if !ok {
		return 0, nil
	}
	m, err := c.send(&u)
	if err != nil {
		return 0, err
	}
	eink.Logger().Debug("refresh: full", "marker", m, "waveform", cfg.Waveform, "wait", wait)
	c.ResetDedup()
	if !wait {
		return m, nil
	}
	if cfg.untrackable() {
		time.Sleep(c.settle)
		return m, nil
	}
	_, err = c.Wait(m)
	return m, err
}

// Wait blocks until the update identified by m has been applied and
// returns the device's collision result. Waiting on the zero Marker
// returns at once.
func (c *Controller) Wait(m Marker) (collision uint32, err error) {
	if m == 0 {
		return 0, nil
	}
	d := mxcfb.UpdateMarkerData{UpdateMarker: uint32(m)}
	if err := c.dev.WaitForUpdate(&d); err != nil {
		return 0, err
	}
	return d.CollisionTest, nil
}

// ResetDedup forgets the last refreshed region.
func (c *Controller) ResetDedup() {
	c.mu.Lock()
	c.last = eink.InvalidRect
	c.mu.Unlock()
}

// skip reports whether r is covered by the last region, recording r
// otherwise.
func (c *Controller) skip(r eink.Rect) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last.IsValid() && c.last.ContainsRect(r) {
		return true
	}
	c.last = r
	return false
}

func (c *Controller) send(u *mxcfb.UpdateData) (Marker, error) {
	m := Marker(c.next.Add(1))
	if m == 0 {
		m = Marker(c.next.Add(1))
	}
	u.UpdateMarker = uint32(m)
	if err := c.dev.SendUpdate(u); err != nil {
		return 0, err
	}
	return m, nil
}
