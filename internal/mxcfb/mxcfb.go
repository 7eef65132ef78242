// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package mxcfb mirrors the Linux fbdev and i.MX EPDC kernel ABI: the
// screen-info structs, the update request structs and the ioctl request
// numbers that drive a partial e-ink refresh.
//
// Struct layouts match the C definitions on both 32- and 64-bit ARM and
// are passed to ioctl by pointer.
package mxcfb

import "strconv"

// ioctl request numbers.
const (
	FBIOGET_VSCREENINFO = 0x4600
	FBIOPUT_VSCREENINFO = 0x4601
	FBIOGET_FSCREENINFO = 0x4602

	MXCFB_SEND_UPDATE              = 0x4048462E // _IOW('F', 0x2E, UpdateData)
	MXCFB_WAIT_FOR_UPDATE_COMPLETE = 0xC008462F // _IOWR('F', 0x2F, UpdateMarkerData)
)

// Bitfield is one color channel of VarScreenInfo.
type Bitfield struct {
	Offset   uint32
	Length   uint32
	MSBRight uint32
}

// VarScreenInfo is struct fb_var_screeninfo.
type VarScreenInfo struct {
	XRes, YRes               uint32
	XResVirtual, YResVirtual uint32
	XOffset, YOffset         uint32
	BitsPerPixel             uint32
	Grayscale                uint32
	Red, Green, Blue, Transp Bitfield
	Nonstd                   uint32
	Activate                 uint32
	Height, Width            uint32 // millimetres
	AccelFlags               uint32
	Pixclock                 uint32
	LeftMargin, RightMargin  uint32
	UpperMargin, LowerMargin uint32
	HsyncLen, VsyncLen       uint32
	Sync                     uint32
	Vmode                    uint32
	Rotate                   uint32
	Colorspace               uint32
	Reserved                 [4]uint32
}

// FixScreenInfo is struct fb_fix_screeninfo.
type FixScreenInfo struct {
	ID           [16]byte
	SmemStart    uintptr
	SmemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanStep     uint16
	YPanStep     uint16
	YWrapStep    uint16
	LineLength   uint32
	MmioStart    uintptr
	MmioLen      uint32
	Accel        uint32
	Capabilities uint16
	Reserved     [2]uint16
}

// Name returns the driver id with trailing NULs removed.
func (f *FixScreenInfo) Name() string {
	n := 0
	for n < len(f.ID) && f.ID[n] != 0 {
		n++
	}
	return string(f.ID[:n])
}

// Rect is struct mxcfb_rect. Width and Height are pixel counts.
type Rect struct {
	Top, Left, Width, Height uint32
}

// AltBufferData is struct mxcfb_alt_buffer_data.
type AltBufferData struct {
	PhysAddr        uint32
	Width, Height   uint32
	AltUpdateRegion Rect
}

// UpdateData is struct mxcfb_update_data, the MXCFB_SEND_UPDATE argument.
type UpdateData struct {
	UpdateRegion  Rect
	WaveformMode  Waveform
	UpdateMode    UpdateMode
	UpdateMarker  uint32
	Temp          Temperature
	Flags         Flags
	DitherMode    Dither
	QuantBit      int32
	AltBufferData AltBufferData
}

// UpdateMarkerData is struct mxcfb_update_marker_data, the
// MXCFB_WAIT_FOR_UPDATE_COMPLETE argument.
type UpdateMarkerData struct {
	UpdateMarker  uint32
	CollisionTest uint32
}

// Waveform selects the EPDC waveform of an update.
type Waveform uint32

// Waveforms.
const (
	WaveformInit     Waveform = 0x0 // full white flash, clears ghosting
	WaveformDU       Waveform = 0x1 // direct update, black and white only
	WaveformGC16     Waveform = 0x2
	WaveformGC16Fast Waveform = 0x3
	WaveformA2       Waveform = 0x4
	WaveformGL16     Waveform = 0x5
	WaveformGL16Fast Waveform = 0x6
	WaveformDU4      Waveform = 0x7
	WaveformREAGL    Waveform = 0x8
	WaveformREAGLD   Waveform = 0x9
	WaveformGL4      Waveform = 0xA
	WaveformGL16Inv  Waveform = 0xB
	WaveformAuto     Waveform = 257
)

var waveformNames = map[Waveform]string{
	WaveformInit:     "INIT",
	WaveformDU:       "DU",
	WaveformGC16:     "GC16",
	WaveformGC16Fast: "GC16_FAST",
	WaveformA2:       "A2",
	WaveformGL16:     "GL16",
	WaveformGL16Fast: "GL16_FAST",
	WaveformDU4:      "DU4",
	WaveformREAGL:    "REAGL",
	WaveformREAGLD:   "REAGLD",
	WaveformGL4:      "GL4",
	WaveformGL16Inv:  "GL16_INV",
	WaveformAuto:     "AUTO",
}

func (w Waveform) String() string {
	if s, ok := waveformNames[w]; ok {
		return s
	}
	return "Waveform(" + strconv.FormatUint(uint64(w), 10) + ")"
}

// ParseWaveform returns the waveform with the given name as printed by
// String.
func ParseWaveform(name string) (Waveform, bool) {
	for w, s := range waveformNames {
		if s == name {
			return w, true
		}
	}
	return 0, false
}

// UpdateMode chooses between partial and full updates.
type UpdateMode uint32

// Update modes.
const (
	UpdateModePartial UpdateMode = 0x0
	UpdateModeFull    UpdateMode = 0x1
)

// Temperature is the panel temperature hint of an update.
type Temperature int32

// Temperatures.
const (
	TempRemarkableDraw Temperature = 0x0018
	TempUseAmbient     Temperature = 0x1000
	TempUsePapyrus     Temperature = 0x1001
	TempUseMax         Temperature = 0xFFFF
)

// Dither selects the dithering applied by the EPDC.
type Dither int32

// Dither modes.
const (
	DitherPassthrough Dither = 0x0
	DitherDrawing     Dither = 0x1
	DitherY1          Dither = 0x2000
	DitherY4          Dither = 0x4000
	DitherRemarkable  Dither = 0x300f30
	DitherExp1        Dither = 0x270ce20
	DitherAlpha       Dither = 0x3ff00000
)

// Flags modify an update.
type Flags uint32

// Update flags.
const (
	FlagEnableInversion Flags = 0x01
	FlagForceMonochrome Flags = 0x02
	FlagUseCmap         Flags = 0x04
	FlagUseAltBuffer    Flags = 0x100
	FlagTestCollision   Flags = 0x200
	FlagGroupUpdate     Flags = 0x400
)

// Quantization bits used with the drawing dither mode.
const (
	DrawingQuantBit  int32 = 0x76143b24
	DrawingQuantBit2 int32 = 0x75e7bb24
	DrawingQuantBit3 int32 = 0x2f8
)
