// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package refresh

import "github.com/gogpu/eink/internal/mxcfb"

// Update parameter types, shared with the EPDC driver interface.
type (
	UpdateMode  = mxcfb.UpdateMode
	Waveform    = mxcfb.Waveform
	Temperature = mxcfb.Temperature
	Dither      = mxcfb.Dither
	Flags       = mxcfb.Flags

	// UpdateData is the request a Device receives.
	UpdateData = mxcfb.UpdateData
	// UpdateMarkerData is the argument of Device.WaitForUpdate.
	UpdateMarkerData = mxcfb.UpdateMarkerData
)

// Update modes.
const (
	UpdatePartial = mxcfb.UpdateModePartial
	UpdateFull    = mxcfb.UpdateModeFull
)

// Waveforms.
const (
	WaveformInit     = mxcfb.WaveformInit
	WaveformDU       = mxcfb.WaveformDU
	WaveformGC16     = mxcfb.WaveformGC16
	WaveformGC16Fast = mxcfb.WaveformGC16Fast
	WaveformA2       = mxcfb.WaveformA2
	WaveformGL16     = mxcfb.WaveformGL16
	WaveformGL16Fast = mxcfb.WaveformGL16Fast
	WaveformDU4      = mxcfb.WaveformDU4
	WaveformREAGL    = mxcfb.WaveformREAGL
	WaveformREAGLD   = mxcfb.WaveformREAGLD
	WaveformGL4      = mxcfb.WaveformGL4
	WaveformGL16Inv  = mxcfb.WaveformGL16Inv
	WaveformAuto     = mxcfb.WaveformAuto
)

// Temperatures.
const (
	TempDraw    = mxcfb.TempRemarkableDraw
	TempAmbient = mxcfb.TempUseAmbient
	TempPapyrus = mxcfb.TempUsePapyrus
	TempMax     = mxcfb.TempUseMax
)

// Dither modes.
const (
	DitherPassthrough = mxcfb.DitherPassthrough
	DitherDrawing     = mxcfb.DitherDrawing
	DitherY1          = mxcfb.DitherY1
	DitherY4          = mxcfb.DitherY4
	DitherExp1        = mxcfb.DitherExp1
	DitherAlpha       = mxcfb.DitherAlpha
)

// Quantization bits for Config.Quant.
const (
	DrawingQuantBit  = mxcfb.DrawingQuantBit
	DrawingQuantBit2 = mxcfb.DrawingQuantBit2
	DrawingQuantBit3 = mxcfb.DrawingQuantBit3
)

// ParseWaveform returns the waveform named name, such as "DU" or
// "GC16_FAST".
func ParseWaveform(name string) (Waveform, bool) {
	return mxcfb.ParseWaveform(name)
}
