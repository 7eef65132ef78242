// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package appctx bundles what an e-ink program drives: the framebuffer
// surface, its refresh controller, a snapshot store for the canvas region
// and the input pipeline.
//
// Event callbacks receive the Context and run one at a time on the
// goroutine that called Dispatch, so they may draw and refresh without
// locking.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/eink"
	"github.com/gogpu/eink/config"
	"github.com/gogpu/eink/framebuffer"
	"github.com/gogpu/eink/input"
	"github.com/gogpu/eink/refresh"
	"github.com/gogpu/eink/snapshot"
)

// Surface is the drawable, refreshable screen. framebuffer.Surface
// implements it.
type Surface interface {
	eink.Canvas
	refresh.Device
	snapshot.RegionIO
	Clear()
	Close() error
}

// Handler handles one event of a device.
type Handler func(*Context, input.Event)

// Handlers are the per-device callbacks. A nil handler drops the device's
// events.
type Handlers struct {
	Digitizer Handler
	Touch     Handler
	Buttons   Handler
}

// FlushPolicy says what Flush does with a dirty rectangle.
type FlushPolicy int

const (
	// NoRefresh leaves the panel alone.
	NoRefresh FlushPolicy = iota
	// Refresh issues a partial update and returns.
	Refresh
	// RefreshAndWait issues a partial update and waits for it.
	RefreshAndWait
)

// Context is the application context. Its methods other than Stop and
// PenInRange are meant to be called from handlers or before Dispatch.
type Context struct {
	surface   Surface
	refresher *refresh.Controller
	store     *snapshot.Store
	pipeline  *input.Pipeline
	handlers  Handlers

	canvas     eink.Rect
	ink        refresh.Config
	widget     refresh.Config
	refreshOpt []refresh.Option
}

// Option configures a Context.
type Option func(*Context)

// WithCanvasRegion sets the region SaveCanvas, RestoreCanvas and
// InvertCanvas work on. The default is the whole surface.
func WithCanvasRegion(r eink.Rect) Option {
	return func(c *Context) { c.canvas = r }
}

// WithHandlers sets the event callbacks.
func WithHandlers(h Handlers) Option {
	return func(c *Context) { c.handlers = h }
}

// WithRefreshOptions passes options to the refresh controller.
func WithRefreshOptions(opts ...refresh.Option) Option {
	return func(c *Context) { c.refreshOpt = append(c.refreshOpt, opts...) }
}

// WithInkConfig sets the update configuration of FlushInk. The default
// is refresh.Ink.
func WithInkConfig(cfg refresh.Config) Option {
	return func(c *Context) { c.ink = cfg }
}

// WithWidgetConfig sets the update configuration of Flush and of the
// canvas operations. The default is refresh.Widget.
func WithWidgetConfig(cfg refresh.Config) Option {
	return func(c *Context) { c.widget = cfg }
}

// New assembles a Context from an open surface and a pipeline with its
// devices attached.
func New(s Surface, p *input.Pipeline, opts ...Option) *Context {
	c := &Context{
		surface:  s,
		pipeline: p,
		store:    snapshot.NewStore(s),
		canvas:   s.Bounds(),
		ink:      refresh.Ink,
		widget:   refresh.Widget,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.refresher = refresh.New(s, c.refreshOpt...)
	return c
}

// Open opens the framebuffer and input devices named by cfg. Input axes
// are scaled to the framebuffer's geometry.
func Open(cfg config.Config, h Handlers) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ink, err := cfg.InkConfig()
	if err != nil {
		return nil, err
	}
	widget, err := cfg.WidgetConfig()
	if err != nil {
		return nil, err
	}

	fb, err := framebuffer.Open(cfg.Devices.Framebuffer)
	if err != nil {
		return nil, err
	}
	g := fb.Geometry()
	p := input.NewPipeline(input.WithQueueSize(cfg.Input.QueueSize), input.WithChunkSize(cfg.Input.ChunkSize))

	devices := []struct {
		path string
		norm input.Normalizer
	}{
		{cfg.Devices.Digitizer, input.NewDigitizer(cfg.DigitizerTransform(g.Width, g.Height))},
		{cfg.Devices.Touch, input.NewTouch(cfg.TouchTransform(g.Width, g.Height))},
		{cfg.Devices.Buttons, input.NewButtons()},
	}
	var opened []io.Closer
	for _, d := range devices {
		f, err := input.OpenDevice(d.path)
		if err != nil {
			for _, o := range opened {
				_ = o.Close()
			}
			return nil, errors.Join(err, fb.Close())
		}
		opened = append(opened, f)
		p.Attach(f, d.norm)
	}

	eink.Logger().Info("appctx: opened",
		"framebuffer", g.Name, "width", g.Width, "height", g.Height, "bpp", g.BitsPerPixel)
	return New(fb, p,
		WithCanvasRegion(cfg.Canvas.Rect()),
		WithHandlers(h),
		WithInkConfig(ink),
		WithWidgetConfig(widget),
		WithRefreshOptions(
			refresh.WithDedup(cfg.Refresh.Dedup),
			refresh.WithSettleDelay(cfg.Refresh.SettleDelay),
		),
	), nil
}

// Surface returns the drawing surface.
func (c *Context) Surface() Surface { return c.surface }

// Refresher returns the refresh controller.
func (c *Context) Refresher() *refresh.Controller { return c.refresher }

// Snapshots returns the canvas snapshot store.
func (c *Context) Snapshots() *snapshot.Store { return c.store }

// CanvasRegion returns the region of the canvas operations.
func (c *Context) CanvasRegion() eink.Rect { return c.canvas }

// SetHandlers replaces the event callbacks. Call it before Dispatch or
// from a handler.
func (c *Context) SetHandlers(h Handlers) { c.handlers = h }

// Clear blanks the framebuffer and refreshes the whole panel with
// refresh.Blank, waiting for the update. A deep clear uses refresh.Deep,
// a full flashing update that also removes ghosting.
func (c *Context) Clear(deep bool) error {
	c.surface.Clear()
	var err error
	if deep {
		_, err = c.refresher.FullRefresh(refresh.Deep, true)
	} else {
		_, err = c.refresher.PartialRefresh(c.surface.Bounds(), refresh.ModeWait, refresh.Blank)
	}
	c.refresher.ResetDedup()
	if err != nil {
		return fmt.Errorf("appctx: clear: %w", err)
	}
	return nil
}

// Flush refreshes r with the widget configuration according to p.
func (c *Context) Flush(r eink.Rect, p FlushPolicy) (refresh.Marker, error) {
	switch p {
	case Refresh:
		return c.refresher.PartialRefresh(r, refresh.ModeAsync, c.widget)
	case RefreshAndWait:
		return c.refresher.PartialRefresh(r, refresh.ModeWait, c.widget)
	}
	return 0, nil
}

// FlushInk refreshes r with the ink configuration without waiting.
func (c *Context) FlushInk(r eink.Rect) (refresh.Marker, error) {
	return c.refresher.PartialRefresh(r, refresh.ModeAsync, c.ink)
}

// SaveCanvas snapshots the canvas region and reports whether it did.
// Failures are logged.
func (c *Context) SaveCanvas() bool {
	if err := c.store.Save(c.canvas); err != nil {
		eink.Logger().Warn("appctx: save canvas", "region", c.canvas, "err", err)
		return false
	}
	return true
}

// RestoreCanvas writes the last snapshot back and refreshes it. It
// reports false when there is no snapshot or restoring failed; failures
// are logged.
func (c *Context) RestoreCanvas() bool {
	r, ok, err := c.store.Restore()
	if err != nil {
		eink.Logger().Warn("appctx: restore canvas", "err", err)
		return false
	}
	if !ok {
		return false
	}
	c.refresh(r)
	return true
}

// InvertCanvas inverts every byte of the canvas region and refreshes it.
// Failures are logged and leave the canvas unchanged.
func (c *Context) InvertCanvas() bool {
	raw, err := c.surface.DumpRegion(c.canvas)
	if err != nil {
		eink.Logger().Warn("appctx: invert canvas", "region", c.canvas, "err", err)
		return false
	}
	for i, b := range raw {
		raw[i] = ^b
	}
	if err := c.surface.RestoreRegion(c.canvas, raw); err != nil {
		eink.Logger().Warn("appctx: invert canvas", "region", c.canvas, "err", err)
		return false
	}
	c.refresh(c.canvas)
	return true
}

func (c *Context) refresh(r eink.Rect) {
	if _, err := c.refresher.PartialRefresh(r, refresh.ModeWait, c.widget); err != nil {
		eink.Logger().Warn("appctx: refresh", "region", r, "err", err)
	}
}

// Dispatch runs the input pipeline, calling the handlers until Stop, ctx
// cancellation or a device failure. It closes the input devices before
// returning.
func (c *Context) Dispatch(ctx context.Context) error {
	return c.pipeline.Run(ctx, c.route)
}

func (c *Context) route(ev input.Event) {
	var h Handler
	switch ev.Device() {
	case input.DeviceDigitizer:
		h = c.handlers.Digitizer
	case input.DeviceTouch:
		h = c.handlers.Touch
	case input.DeviceButtons:
		h = c.handlers.Buttons
	}
	if h != nil {
		h(c, ev)
	}
}

// Stop ends Dispatch. It is safe to call from any goroutine.
func (c *Context) Stop() { c.pipeline.Stop() }

// PenInRange reports whether the pen is near the panel.
func (c *Context) PenInRange() bool { return c.pipeline.PenInRange() }

// SetInputActive enables or disables delivery of a device's events.
func (c *Context) SetInputActive(d input.Device, on bool) { c.pipeline.SetActive(d, on) }

// Close releases the surface.
func (c *Context) Close() error { return c.surface.Close() }
