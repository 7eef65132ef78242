// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads the process configuration of an e-ink program from
// TOML.
//
// A file only needs the keys it changes; everything else keeps the values
// of Default, which describe the reference tablet:
//
//	[devices]
//	touch = "/dev/input/event1"
//
//	[refresh]
//	ink_waveform = "A2"
//	settle_delay = "300ms"
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/eink"
	"github.com/gogpu/eink/input"
	"github.com/gogpu/eink/refresh"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete process configuration.
type Config struct {
	Display Display `toml:"display"`
	Devices Devices `toml:"devices"`
	Canvas  Region  `toml:"canvas"`
	Input   Input   `toml:"input"`
	Refresh Refresh `toml:"refresh"`
	Log     Log     `toml:"log"`
}

// Display is the panel size in pixels, used to scale input axes.
type Display struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Devices are the device node paths.
type Devices struct {
	Framebuffer string `toml:"framebuffer"`
	Digitizer   string `toml:"digitizer"`
	Touch       string `toml:"touch"`
	Buttons     string `toml:"buttons"`
}

// Region is a rectangle in pixels. Width and Height count pixels.
type Region struct {
	Top    int `toml:"top"`
	Left   int `toml:"left"`
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Rect returns r as an eink.Rect.
func (r Region) Rect() eink.Rect {
	return eink.RectOfSize(r.Left, r.Top, r.Width, r.Height)
}

// Axis describes how a device's raw axes map onto the display.
type Axis struct {
	RawX    int32 `toml:"raw_x"`
	RawY    int32 `toml:"raw_y"`
	Swap    bool  `toml:"swap"`
	InvertX bool  `toml:"invert_x"`
	InvertY bool  `toml:"invert_y"`
}

// Input configures the event pipeline.
type Input struct {
	QueueSize int  `toml:"queue_size"`
	ChunkSize int  `toml:"chunk_size"`
	Digitizer Axis `toml:"digitizer"`
	Touch     Axis `toml:"touch"`
}

// Refresh configures panel updates.
type Refresh struct {
	InkWaveform    string        `toml:"ink_waveform"`
	WidgetWaveform string        `toml:"widget_waveform"`
	SettleDelay    time.Duration `toml:"settle_delay"`
	Dedup          bool          `toml:"dedup"`
}

// Log configures diagnostics.
type Log struct {
	Level string `toml:"level"`
}

// Default returns the configuration of the reference tablet.
func Default() Config {
	const w, h = 1404, 1872
	dig := input.DigitizerTransform(w, h)
	tch := input.TouchTransform(w, h)
	return Config{
		Display: Display{Width: w, Height: h},
		Devices: Devices{
			Framebuffer: "/dev/fb0",
			Digitizer:   "/dev/input/event0",
			Touch:       "/dev/input/event1",
			Buttons:     "/dev/input/event2",
		},
		Canvas: Region{Top: 720, Left: 0, Width: w, Height: 1080},
		Input: Input{
			QueueSize: input.DefaultQueueSize,
			ChunkSize: input.DefaultChunkSize,
			Digitizer: Axis{RawX: dig.RawX, RawY: dig.RawY, Swap: dig.Swap, InvertX: dig.InvertX, InvertY: dig.InvertY},
			Touch:     Axis{RawX: tch.RawX, RawY: tch.RawY, Swap: tch.Swap, InvertX: tch.InvertX, InvertY: tch.InvertY},
		},
		Refresh: Refresh{
			InkWaveform:    refresh.WaveformDU.String(),
			WidgetWaveform: refresh.WaveformGC16Fast.String(),
			SettleDelay:    refresh.DefaultSettleDelay,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads the TOML file at path over Default and validates the result.
// Unknown keys are logged and ignored.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		eink.Logger().Warn("config: unknown keys", "path", path, "keys", strings.Join(keys, ","))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	switch {
	case c.Display.Width <= 0 || c.Display.Height <= 0:
		return fmt.Errorf("%w: display %dx%d", ErrInvalid, c.Display.Width, c.Display.Height)
	case c.Devices.Framebuffer == "":
		return fmt.Errorf("%w: empty framebuffer path", ErrInvalid)
	case c.Devices.Digitizer == "" || c.Devices.Touch == "" || c.Devices.Buttons == "":
		return fmt.Errorf("%w: empty input device path", ErrInvalid)
	case c.Input.QueueSize <= 0:
		return fmt.Errorf("%w: queue size %d", ErrInvalid, c.Input.QueueSize)
	case c.Input.ChunkSize < 0:
		return fmt.Errorf("%w: chunk size %d", ErrInvalid, c.Input.ChunkSize)
	}
	for name, a := range map[string]Axis{"digitizer": c.Input.Digitizer, "touch": c.Input.Touch} {
		if a.RawX <= 0 || a.RawY <= 0 {
			return fmt.Errorf("%w: %s axis range %dx%d", ErrInvalid, name, a.RawX, a.RawY)
		}
	}

	cv := c.Canvas
	if cv.Width <= 0 || cv.Height <= 0 || cv.Top < 0 || cv.Left < 0 ||
		cv.Left+cv.Width > c.Display.Width || cv.Top+cv.Height > c.Display.Height {
		return fmt.Errorf("%w: canvas %+v outside %dx%d display", ErrInvalid, cv, c.Display.Width, c.Display.Height)
	}

	if _, err := c.InkConfig(); err != nil {
		return err
	}
	if _, err := c.WidgetConfig(); err != nil {
		return err
	}
	if c.Refresh.SettleDelay < 0 {
		return fmt.Errorf("%w: settle delay %v", ErrInvalid, c.Refresh.SettleDelay)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// DigitizerTransform returns the pen axis mapping for a display of the
// given size.
func (c Config) DigitizerTransform(width, height int) input.Transform {
	return c.Input.Digitizer.transform(width, height)
}

// TouchTransform returns the finger axis mapping for a display of the
// given size.
func (c Config) TouchTransform(width, height int) input.Transform {
	return c.Input.Touch.transform(width, height)
}

func (a Axis) transform(width, height int) input.Transform {
	return input.Transform{
		RawX: a.RawX, RawY: a.RawY,
		Width: width, Height: height,
		Swap: a.Swap, InvertX: a.InvertX, InvertY: a.InvertY,
	}
}

// InkConfig returns refresh.Ink with the configured waveform.
func (c Config) InkConfig() (refresh.Config, error) {
	return withWaveform(refresh.Ink, c.Refresh.InkWaveform)
}

// WidgetConfig returns refresh.Widget with the configured waveform.
func (c Config) WidgetConfig() (refresh.Config, error) {
	return withWaveform(refresh.Widget, c.Refresh.WidgetWaveform)
}

func withWaveform(base refresh.Config, name string) (refresh.Config, error) {
	w, ok := refresh.ParseWaveform(strings.ToUpper(name))
	if !ok {
		return refresh.Config{}, fmt.Errorf("%w: unknown waveform %q", ErrInvalid, name)
	}
	base.Waveform = w
	return base, nil
}

// LogLevel parses Log.Level ("debug", "info", "warn", "error").
func (c Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	return l, nil
}
