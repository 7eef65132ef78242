// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"image"
	"math"
	"sync"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/unicode/norm"
)

// Glyph is a laid-out glyph in device pixels.
type Glyph struct {
	ID      sfnt.GlyphIndex
	Cluster int

	// Bounds is the pixel box of the glyph's coverage. It is empty for
	// glyphs without ink, such as spaces.
	Bounds image.Rectangle

	// Mask holds the coverage over Bounds, addressed in device
	// coordinates. It is nil when Bounds is empty. The pixels are shared
	// with the face's cache.
	Mask *image.Alpha
}

// Option configures Layout and Measure.
type Option func(*options)

type options struct {
	shaper Shaper
}

// WithShaper selects the shaper. The default is a shared HarfBuzzShaper.
func WithShaper(s Shaper) Option {
	return func(o *options) {
		if s != nil {
			o.shaper = s
		}
	}
}

var defaultShaper = sync.OnceValue(func() Shaper { return NewHarfBuzzShaper() })

// Layout shapes s at size pixels per em with its baseline origin at (x, y)
// and returns one Glyph per shaped glyph. The string is NFC-normalized
// first. An empty string yields no glyphs and no error.
func Layout(face *Face, s string, x, y, size float64, opts ...Option) ([]Glyph, error) {
	if face == nil {
		return nil, ErrNilFace
	}
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, ErrInvalidSize
	}
	if s == "" {
		return nil, nil
	}

	o := options{shaper: defaultShaper()}
	for _, opt := range opts {
		opt(&o)
	}

	ppem := toFixed(size)
	shaped := o.shaper.Shape(face, []rune(norm.NFC.String(s)), size)
	glyphs := make([]Glyph, 0, len(shaped))
	for _, sg := range shaped {
		penX := x + sg.X
		ox := math.Floor(penX)
		frac := uint8(math.Floor((penX - ox) * subpixelSteps))
		origin := image.Pt(int(ox), int(math.Round(y+sg.Y)))

		m := face.mask(maskKey{id: sg.ID, ppem: ppem, frac: frac})
		g := Glyph{ID: sg.ID, Cluster: sg.Cluster}
		if m.alpha != nil {
			g.Bounds = m.rect.Add(origin)
			g.Mask = &image.Alpha{Pix: m.alpha.Pix, Stride: m.alpha.Stride, Rect: g.Bounds}
		}
		glyphs = append(glyphs, g)
	}
	return glyphs, nil
}

// Measure returns the union of the glyph bounds Layout would produce for
// the same arguments.
func Measure(face *Face, s string, x, y, size float64, opts ...Option) (image.Rectangle, error) {
	glyphs, err := Layout(face, s, x, y, size, opts...)
	if err != nil {
		return image.Rectangle{}, err
	}
	var r image.Rectangle
	for _, g := range glyphs {
		r = r.Union(g.Bounds)
	}
	return r, nil
}
