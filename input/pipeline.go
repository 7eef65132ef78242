// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/eink"
)

// Pipeline errors.
var (
	ErrStopped = errors.New("input: pipeline stopped")
	ErrRunning = errors.New("input: pipeline already running")
)

// DefaultQueueSize is the default capacity of the event queue.
const DefaultQueueSize = 256

type source struct {
	r    io.ReadCloser
	norm Normalizer
}

// Pipeline fans the events of several devices into one handler.
//
// Readers block when the queue is full, so a slow handler applies back
// pressure to the devices instead of dropping events. A Pipeline runs at
// most once.
type Pipeline struct {
	queueSize int
	chunkSize int

	mu      sync.Mutex
	sources []source

	active   [deviceCount]atomic.Bool
	running  atomic.Bool
	stopped  atomic.Bool
	stopCh   chan struct{}
	stopOnce sync.Once
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithQueueSize sets the event queue capacity. Values below 1 are ignored.
func WithQueueSize(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.queueSize = n
		}
	}
}

// WithChunkSize sets the read buffer size of each device in bytes.
func WithChunkSize(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.chunkSize = n
		}
	}
}

// NewPipeline returns a pipeline with every device active.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		queueSize: DefaultQueueSize,
		chunkSize: DefaultChunkSize,
		stopCh:    make(chan struct{}),
	}
	for i := range p.active {
		p.active[i].Store(true)
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Attach adds a device stream. The pipeline closes r when Run returns.
// Attaching after Run has started has no effect on that run.
func (p *Pipeline) Attach(r io.ReadCloser, n Normalizer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sources = append(p.sources, source{r: r, norm: n})
}

// SetActive enables or disables dispatch of a device's events. Events of
// an inactive device are read and discarded.
func (p *Pipeline) SetActive(d Device, on bool) {
	if d < deviceCount {
		p.active[d].Store(on)
	}
}

// Active reports whether events of d are dispatched.
func (p *Pipeline) Active(d Device) bool {
	return d < deviceCount && p.active[d].Load()
}

// PenInRange reports whether any attached digitizer has a tool in range.
func (p *Pipeline) PenInRange() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, s := range p.sources {
		if d, ok := s.norm.(interface{ InRange() bool }); ok && d.InRange() {
			return true
		}
	}
	return false
}

// Stop asks a running pipeline to return. No event is dispatched after
// Stop returns. It is safe to call from a handler and from any goroutine,
// any number of times.
func (p *Pipeline) Stop() {
	p.stopOnce.Do(func() {
		p.stopped.Store(true)
		close(p.stopCh)
	})
}

// Run reads every attached device and calls handle for each event on the
// calling goroutine until Stop is called, ctx is done, or a device fails.
// It closes the attached streams before returning. A device reaching EOF
// stops only its own reader.
//
// Run returns nil after Stop, ctx.Err() after cancellation, and the first
// read error otherwise.
func (p *Pipeline) Run(ctx context.Context, handle func(Event)) error {
	if p.stopped.Load() {
		return ErrStopped
	}
	if !p.running.CompareAndSwap(false, true) {
		return ErrRunning
	}

	p.mu.Lock()
	sources := slices.Clone(p.sources)
	p.mu.Unlock()

	queue := make(chan Event, p.queueSize)
	g, gctx := errgroup.WithContext(ctx)
	for _, s := range sources {
		g.Go(func() error { return p.read(gctx, s, queue) })
	}

	log := eink.Logger()
	log.Info("input: dispatching", "devices", len(sources), "queue", p.queueSize)
	p.dispatch(gctx, queue, handle)

	p.Stop()
	for _, s := range sources {
		if err := s.r.Close(); err != nil {
			log.Debug("input: close device", "device", s.norm.Device(), "err", err)
		}
	}
	err := g.Wait()
	log.Info("input: stopped", "err", err)
	switch {
	case err != nil:
		return err
	case ctx.Err() != nil:
		return ctx.Err()
	}
	return nil
}

func (p *Pipeline) dispatch(ctx context.Context, queue <-chan Event, handle func(Event)) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case ev := <-queue:
			if p.stopped.Load() {
				return
			}
			if p.Active(ev.Device()) {
				handle(ev)
			}
		}
	}
}

func (p *Pipeline) read(ctx context.Context, s source, queue chan<- Event) error {
	dev := s.norm.Device()
	dec := NewDecoder(s.r, p.chunkSize)
	done := false
	emit := func(ev Event) {
		if done {
			return
		}
		select {
		case queue <- ev:
		case <-ctx.Done():
			done = true
		case <-p.stopCh:
			done = true
		}
	}
	for !done && !p.stopped.Load() {
		raw, err := dec.Next()
		if err != nil {
			if p.stopped.Load() || ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, io.EOF) {
				eink.Logger().Info("input: device closed", "device", dev)
				return nil
			}
			eink.Logger().Warn("input: read failed", "device", dev, "err", err)
			return fmt.Errorf("input: read %s: %w", dev, err)
		}
		if raw.Type == evSyn && raw.Code == synDropped {
			eink.Logger().Debug("input: events dropped by kernel", "device", dev)
		}
		s.norm.Feed(raw, emit)
	}
	return nil
}
