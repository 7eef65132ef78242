// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"math"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/eink/internal/cache"
)

// maskCacheSize bounds the number of rendered glyph masks kept per face.
const maskCacheSize = 2048

// subpixelSteps is the number of horizontal pen positions per pixel that
// get distinct masks.
const subpixelSteps = 4

// Face is a parsed font usable at any size.
//
// The sfnt form supplies outlines and metrics; the go-text form feeds the
// HarfBuzz shaper. Both are read-only after parsing, so a Face is safe for
// concurrent use.
type Face struct {
	name   string
	sfnt   *sfnt.Font
	shaped *gotext.Font
	masks  *cache.Cache[maskKey, *glyphMask]
}

// NewFace parses TrueType or OpenType font data.
func NewFace(ttf []byte) (*Face, error) {
	if len(ttf) == 0 {
		return nil, ErrEmptyFontData
	}
	sf, err := sfnt.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	gf, err := gotext.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}
	name, err := sf.Name(nil, sfnt.NameIDFull)
	if err != nil {
		name = "unknown"
	}
	return &Face{
		name:   name,
		sfnt:   sf,
		shaped: gf.Font,
		masks:  cache.New[maskKey, *glyphMask](maskCacheSize),
	}, nil
}

var defaultFace = sync.OnceValue(func() *Face {
	f, err := NewFace(goregular.TTF)
	if err != nil {
		panic("text: embedded Go Regular font: " + err.Error())
	}
	return f
})

// DefaultFace returns the embedded Go Regular face. It is parsed on first
// use and shared afterwards.
func DefaultFace() *Face {
	return defaultFace()
}

// Name returns the font's full name.
func (f *Face) Name() string {
	return f.name
}

// Metrics returns the ascent and descent at size, both positive, in pixels.
func (f *Face) Metrics(size float64) (ascent, descent float64) {
	var buf sfnt.Buffer
	m, err := f.sfnt.Metrics(&buf, toFixed(size), font.HintingNone)
	if err != nil {
		return size, 0
	}
	return fromFixed(m.Ascent), fromFixed(m.Descent)
}

type maskKey struct {
	id   sfnt.GlyphIndex
	ppem fixed.Int26_6
	frac uint8
}

// glyphMask is a glyph's coverage with rect relative to its pen origin.
// A blank glyph has an empty rect and a nil alpha.
type glyphMask struct {
	rect  image.Rectangle
	alpha *image.Alpha
}

func (f *Face) mask(k maskKey) *glyphMask {
	return f.masks.GetOrCreate(k, func() *glyphMask { return f.render(k) })
}

// render rasterizes the outline of k.id at k.ppem, shifted right by
// k.frac/subpixelSteps of a pixel.
func (f *Face) render(k maskKey) *glyphMask {
	var buf sfnt.Buffer
	segs, err := f.sfnt.LoadGlyph(&buf, k.id, k.ppem, nil)
	if err != nil || len(segs) == 0 {
		return &glyphMask{}
	}
	shift := float32(k.frac) / subpixelSteps

	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := -minX, -minY
	for _, s := range segs {
		for _, p := range s.Args[:argCount(s.Op)] {
			x, y := float32(p.X)/64+shift, float32(p.Y)/64
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	rect := image.Rect(
		int(math.Floor(float64(minX))), int(math.Floor(float64(minY))),
		int(math.Ceil(float64(maxX))), int(math.Ceil(float64(maxY))),
	)
	if rect.Empty() {
		return &glyphMask{}
	}

	ox, oy := float32(rect.Min.X), float32(rect.Min.Y)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X)/64 + shift - ox, float32(p.Y)/64 - oy
	}
	r := vector.NewRasterizer(rect.Dx(), rect.Dy())
	r.DrawOp = draw.Src
	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(pt(s.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			r.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			r.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			dx, dy := pt(s.Args[2])
			r.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if open {
		r.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return &glyphMask{rect: rect, alpha: dst}
}

func argCount(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpQuadTo:
		return 2
	case sfnt.SegmentOpCubeTo:
		return 3
	default:
		return 1
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
