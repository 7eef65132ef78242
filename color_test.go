package eink

import (
	"image/color"
	"testing"
)

func TestColorRGB565(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want uint16
	}{
		{"black", Black, 0x0000},
		{"white", White, 0xffff},
		{"red", RGB(0xff, 0, 0), 0xf800},
		{"green", RGB(0, 0xff, 0), 0x07e0},
		{"blue", RGB(0, 0, 0xff), 0x001f},
		{"mid gray", Gray(0x80), 0x8410},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.RGB565(); got != tt.want {
				t.Errorf("RGB565() = %#04x, want %#04x", got, tt.want)
			}
		})
	}
}

func TestFromRGB565NamedExtremes(t *testing.T) {
	if !FromRGB565(0).IsBlack() {
		t.Error("FromRGB565(0) is not Black")
	}
	if !FromRGB565(0xffff).IsWhite() {
		t.Error("FromRGB565(0xffff) is not White")
	}
	r, g, b := FromRGB565(0xf800).RGB8()
	if r != 0xff || g != 0 || b != 0 {
		t.Errorf("FromRGB565(0xf800) = %d,%d,%d", r, g, b)
	}
}

func TestColorLerp(t *testing.T) {
	if got := White.Lerp(Black, 0); got != White {
		t.Errorf("Lerp(0) = %v, want White", got)
	}
	if got := White.Lerp(Black, 1); got != Black {
		t.Errorf("Lerp(1) = %v, want Black", got)
	}
	r, g, b := White.Lerp(Black, 0.5).RGB8()
	if r != 0x80 || g != 0x80 || b != 0x80 {
		t.Errorf("Lerp(0.5) = %d,%d,%d, want 128", r, g, b)
	}
}

func TestColorLumaAndConversion(t *testing.T) {
	if Black.Luma() != 0 || White.Luma() != 0xff {
		t.Errorf("Luma extremes = %d, %d", Black.Luma(), White.Luma())
	}
	c := FromColor(color.Gray{Y: 0x40})
	if r, g, b := c.RGB8(); r != 0x40 || g != 0x40 || b != 0x40 {
		t.Errorf("FromColor(gray 0x40) = %d,%d,%d", r, g, b)
	}
	if got := color.NRGBAModel.Convert(White.Color()).(color.NRGBA); got != (color.NRGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("White.Color() = %v", got)
	}
}
