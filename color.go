package eink

import "image/color"

type colorKind uint8

const (
	kindRGB colorKind = iota
	kindBlack
	kindWhite
)

// Color is a pixel value: one of the two monochrome extremes of the panel
// or an explicit RGB triple. The zero value is RGB(0, 0, 0).
type Color struct {
	kind    colorKind
	r, g, b uint8
}

// Monochrome extremes of the panel.
var (
	Black = Color{kind: kindBlack}
	White = Color{kind: kindWhite, r: 0xff, g: 0xff, b: 0xff}
)

// RGB creates a color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{kind: kindRGB, r: r, g: g, b: b}
}

// Gray creates a neutral color of the given intensity (0 = darkest).
func Gray(v uint8) Color {
	return RGB(v, v, v)
}

// FromColor converts a standard color.Color, dropping alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8)) //nolint:gosec // >>8 of a 16-bit channel fits in uint8
}

// IsBlack reports whether c is the named darkest tone.
func (c Color) IsBlack() bool { return c.kind == kindBlack }

// IsWhite reports whether c is the named lightest tone.
func (c Color) IsWhite() bool { return c.kind == kindWhite }

// RGB8 returns the 8-bit-per-channel triple.
func (c Color) RGB8() (r, g, b uint8) {
	switch c.kind {
	case kindBlack:
		return 0, 0, 0
	case kindWhite:
		return 0xff, 0xff, 0xff
	default:
		return c.r, c.g, c.b
	}
}

// RGB565 packs the color into the panel's native 16-bit layout.
func (c Color) RGB565() uint16 {
	switch c.kind {
	case kindBlack:
		return 0x0000
	case kindWhite:
		return 0xffff
	}
	return uint16(c.r>>3)<<11 | uint16(c.g>>2)<<5 | uint16(c.b>>3)
}

// FromRGB565 unpacks a native 16-bit pixel. The two extremes map back to
// the named colors.
func FromRGB565(v uint16) Color {
	switch v {
	case 0x0000:
		return Black
	case 0xffff:
		return White
	}
	r := uint8(v>>11) & 0x1f
	g := uint8(v>>5) & 0x3f
	b := uint8(v) & 0x1f
	return RGB(r<<3|r>>2, g<<2|g>>4, b<<3|b>>2)
}

// Luma returns the BT.601 luminance, used by 8-bit grayscale panels.
func (c Color) Luma() uint8 {
	r, g, b := c.RGB8()
	y := (299*uint32(r) + 587*uint32(g) + 114*uint32(b) + 500) / 1000
	return uint8(y) //nolint:gosec // weighted mean of uint8 values
}

// Lerp interpolates between c (t=0) and other (t=1) per channel.
func (c Color) Lerp(other Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	r0, g0, b0 := c.RGB8()
	r1, g1, b1 := other.RGB8()
	return RGB(lerp8(r0, r1, t), lerp8(g0, g1, t), lerp8(b0, b1, t))
}

// Color implements conversion to the standard library color model.
func (c Color) Color() color.Color {
	r, g, b := c.RGB8()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

func lerp8(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	return uint8(clamp255(v + 0.5))
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
