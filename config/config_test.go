// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gogpu/eink"
	"github.com/gogpu/eink/refresh"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if got, want := c.Canvas.Rect(), eink.RectOfSize(0, 720, 1404, 1080); got != want {
		t.Errorf("canvas = %v, want %v", got, want)
	}
	ink, err := c.InkConfig()
	if err != nil || ink != refresh.Ink {
		t.Errorf("InkConfig() = %+v, %v, want refresh.Ink", ink, err)
	}
	widget, err := c.WidgetConfig()
	if err != nil || widget != refresh.Widget {
		t.Errorf("WidgetConfig() = %+v, %v, want refresh.Widget", widget, err)
	}
	if l, err := c.LogLevel(); err != nil || l != slog.LevelInfo {
		t.Errorf("LogLevel() = %v, %v", l, err)
	}
	if p := c.DigitizerTransform(1404, 1872).Apply(20967, 0); !p.Approx(eink.Pt(1404, 1872), 1e-9) {
		t.Errorf("digitizer corner maps to %v", p)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero display", func(c *Config) { c.Display.Width = 0 }},
		{"no framebuffer", func(c *Config) { c.Devices.Framebuffer = "" }},
		{"no touch", func(c *Config) { c.Devices.Touch = "" }},
		{"zero queue", func(c *Config) { c.Input.QueueSize = 0 }},
		{"negative chunk", func(c *Config) { c.Input.ChunkSize = -1 }},
		{"zero axis", func(c *Config) { c.Input.Touch.RawY = 0 }},
		{"canvas too tall", func(c *Config) { c.Canvas.Height = 1200 }},
		{"canvas negative", func(c *Config) { c.Canvas.Left = -1 }},
		{"empty canvas", func(c *Config) { c.Canvas.Width = 0 }},
		{"bad waveform", func(c *Config) { c.Refresh.InkWaveform = "SPARKLE" }},
		{"negative settle", func(c *Config) { c.Refresh.SettleDelay = -time.Second }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "eink.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
[devices]
touch = "/dev/input/event7"

[canvas]
top = 100
height = 200

[input.digitizer]
swap = false

[refresh]
ink_waveform = "a2"
settle_delay = "300ms"
dedup = true

[log]
level = "debug"
`)
	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Devices.Touch != "/dev/input/event7" || c.Devices.Digitizer != "/dev/input/event0" {
		t.Errorf("devices = %+v", c.Devices)
	}
	if got, want := c.Canvas.Rect(), eink.RectOfSize(0, 100, 1404, 200); got != want {
		t.Errorf("canvas = %v, want %v", got, want)
	}
	if c.Input.Digitizer.Swap || c.Input.Digitizer.RawX != 20967 {
		t.Errorf("digitizer axis = %+v", c.Input.Digitizer)
	}
	if c.Refresh.SettleDelay != 300*time.Millisecond || !c.Refresh.Dedup {
		t.Errorf("refresh = %+v", c.Refresh)
	}
	ink, err := c.InkConfig()
	if err != nil || ink.Waveform != refresh.WaveformA2 {
		t.Errorf("InkConfig() = %+v, %v", ink, err)
	}
	if l, _ := c.LogLevel(); l != slog.LevelDebug {
		t.Errorf("level = %v", l)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
	if _, err := Load(writeFile(t, "[canvas\n")); err == nil {
		t.Error("Load of malformed TOML succeeded")
	}
	if _, err := Load(writeFile(t, "[input]\nqueue_size = 0\n")); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load of invalid values = %v, want ErrInvalid", err)
	}
}
