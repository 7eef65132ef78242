// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package input

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"
)

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }
func (failingReader) Close() error               { return nil }

// feed writes evs into a new pipe from a goroutine and returns the read
// side.
func feed(t *testing.T, evs ...RawEvent) io.ReadCloser {
	t.Helper()
	data := encode(t, evs...)
	pr, pw := io.Pipe()
	if len(data) > 0 {
		go func() {
			_, _ = pw.Write(data)
		}()
	}
	return pr
}

func runWithTimeout(t *testing.T, p *Pipeline, ctx context.Context, handle func(Event)) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx, handle) }()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
		return nil
	}
}

func TestPipelineDispatchesInOrder(t *testing.T) {
	p := NewPipeline(WithQueueSize(1), WithChunkSize(64))
	p.Attach(feed(t,
		raw(evKey, keyLeft, 1), raw(evKey, keyLeft, 0),
		raw(evKey, keyRight, 1), raw(evKey, keyPower, 1),
		raw(evKey, keyLeft, 1),
	), NewButtons())

	var got []Event
	err := runWithTimeout(t, p, context.Background(), func(ev Event) {
		got = append(got, ev)
		if ev == (ButtonPressEvent{Button: ButtonPower}) {
			p.Stop()
		}
	})
	if err != nil {
		t.Fatalf("Run = %v", err)
	}
	want := []Event{
		ButtonPressEvent{Button: ButtonLeft},
		ButtonReleaseEvent{Button: ButtonLeft},
		ButtonPressEvent{Button: ButtonRight},
		ButtonPressEvent{Button: ButtonPower},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d events %v, want %v", len(got), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %#v, want %#v", i, got[i], want[i])
		}
	}

	if err := p.Run(context.Background(), func(Event) {}); !errors.Is(err, ErrStopped) {
		t.Errorf("second Run = %v, want ErrStopped", err)
	}
}

func TestPipelineInactiveDevice(t *testing.T) {
	p := NewPipeline()
	p.SetActive(DeviceDigitizer, false)
	if p.Active(DeviceDigitizer) || !p.Active(DeviceButtons) {
		t.Fatal("SetActive did not take effect")
	}
	p.Attach(feed(t,
		raw(evKey, btnToolPen, 1),
		raw(evAbs, absX, 5), syn(),
	), NewDigitizer(DigitizerTransform(100, 100)))
	p.Attach(feed(t, raw(evKey, keyPower, 1)), NewButtons())

	err := runWithTimeout(t, p, context.Background(), func(ev Event) {
		if ev.Device() != DeviceButtons {
			t.Errorf("inactive device dispatched %#v", ev)
		}
		p.Stop()
	})
	if err != nil {
		t.Fatalf("Run = %v", err)
	}
}

func TestPipelinePenInRange(t *testing.T) {
	p := NewPipeline()
	d := NewDigitizer(DigitizerTransform(100, 100))
	p.Attach(feed(t, raw(evKey, btnToolPen, 1)), d)
	p.Attach(feed(t), NewButtons())
	if p.PenInRange() {
		t.Fatal("pen in range before any event")
	}

	err := runWithTimeout(t, p, context.Background(), func(ev Event) {
		if !p.PenInRange() {
			t.Errorf("PenInRange false while handling %#v", ev)
		}
		p.Stop()
	})
	if err != nil {
		t.Fatalf("Run = %v", err)
	}
}

func TestPipelineContextCancel(t *testing.T) {
	p := NewPipeline()
	pr, pw := io.Pipe()
	p.Attach(pr, NewButtons())

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)
	err := runWithTimeout(t, p, ctx, func(Event) {})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run = %v, want context.Canceled", err)
	}
	if _, err := pw.Write([]byte{0}); !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("device not closed: write err = %v", err)
	}
}

func TestPipelineReadError(t *testing.T) {
	boom := errors.New("boom")
	p := NewPipeline()
	p.Attach(failingReader{err: boom}, NewTouch(TouchTransform(10, 10)))

	err := runWithTimeout(t, p, context.Background(), func(Event) {})
	if !errors.Is(err, boom) {
		t.Errorf("Run = %v, want wrapped boom", err)
	}
}

func TestPipelineEOFStopsOnlyThatDevice(t *testing.T) {
	p := NewPipeline()
	p.Attach(io.NopCloser(eofReader{}), NewTouch(TouchTransform(10, 10)))
	p.Attach(feed(t, raw(evKey, keyPower, 1)), NewButtons())

	var n int
	err := runWithTimeout(t, p, context.Background(), func(Event) {
		n++
		p.Stop()
	})
	if err != nil || n != 1 {
		t.Errorf("Run = %v after %d events, want nil after 1", err, n)
	}
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }
