// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package refresh

import "github.com/gogpu/eink/internal/mxcfb"

// Config is everything about an update request except its region.
type Config struct {
	Update      mxcfb.UpdateMode
	Waveform    mxcfb.Waveform
	Temperature mxcfb.Temperature
	Dither      mxcfb.Dither
	Quant       int32
	Flags       mxcfb.Flags
}

// Named configurations.
var (
	// Ink is the lowest-latency partial update, for pen strokes.
	Ink = Config{
		Update:      mxcfb.UpdateModePartial,
		Waveform:    mxcfb.WaveformDU,
		Temperature: mxcfb.TempRemarkableDraw,
		Dither:      mxcfb.DitherExp1,
		Quant:       mxcfb.DrawingQuantBit,
	}

	// Widget is a fast grayscale partial update for UI elements and text.
	Widget = Config{
		Update:      mxcfb.UpdateModePartial,
		Waveform:    mxcfb.WaveformGC16Fast,
		Temperature: mxcfb.TempRemarkableDraw,
		Dither:      mxcfb.DitherPassthrough,
	}

	// Blank is the whole-panel partial update after clearing the
	// framebuffer.
	Blank = Config{
		Update:      mxcfb.UpdateModePartial,
		Waveform:    mxcfb.WaveformGC16Fast,
		Temperature: mxcfb.TempUseAmbient,
		Dither:      mxcfb.DitherPassthrough,
	}

	// Deep is a full flashing update that removes ghosting. Completion of
	// a Deep update cannot be tracked by marker.
	Deep = Config{
		Update:      mxcfb.UpdateModeFull,
		Waveform:    mxcfb.WaveformInit,
		Temperature: mxcfb.TempUseAmbient,
		Dither:      mxcfb.DitherPassthrough,
	}
)

// untrackable reports whether the panel signals completion of c unreliably.
func (c Config) untrackable() bool {
	return c.Update == mxcfb.UpdateModeFull && c.Waveform == mxcfb.WaveformInit
}
