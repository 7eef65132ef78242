// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
)

// ShapedGlyph is one glyph of a shaped run. X and Y are the glyph origin
// relative to the run origin in pixels, y down.
type ShapedGlyph struct {
	ID      sfnt.GlyphIndex
	Cluster int
	X, Y    float64
	Advance float64
}

// Shaper converts runes into positioned glyphs at a pixel size.
type Shaper interface {
	Shape(face *Face, runes []rune, size float64) []ShapedGlyph
}

// HarfBuzzShaper shapes with go-text/typesetting, applying the font's
// GSUB and GPOS tables (ligatures, kerning, marks). It is safe for
// concurrent use.
type HarfBuzzShaper struct {
	pool sync.Pool
}

// NewHarfBuzzShaper returns a ready shaper.
func NewHarfBuzzShaper() *HarfBuzzShaper {
	return &HarfBuzzShaper{
		pool: sync.Pool{New: func() any { return &shaping.HarfbuzzShaper{} }},
	}
}

// Shape implements Shaper. Runs are shaped left to right.
func (s *HarfBuzzShaper) Shape(face *Face, runes []rune, size float64) []ShapedGlyph {
	if len(runes) == 0 || face == nil {
		return nil
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gotext.NewFace(face.shaped),
		Size:      toFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	s.pool.Put(hb)

	glyphs := make([]ShapedGlyph, len(out.Glyphs))
	var x float64
	for i, g := range out.Glyphs {
		adv := fromFixed(g.Advance)
		glyphs[i] = ShapedGlyph{
			ID:      sfnt.GlyphIndex(g.GlyphID), //nolint:gosec // glyph ids fit in 16 bits
			Cluster: g.TextIndex(),
			X:       x + fromFixed(g.XOffset),
			Y:       -fromFixed(g.YOffset), // go-text offsets are y up
			Advance: adv,
		}
		x += adv
	}
	return glyphs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// BuiltinShaper maps each rune to one glyph and places glyphs by advance
// and pair kerning only. It has no ligatures or contextual forms.
type BuiltinShaper struct{}

// Shape implements Shaper.
func (BuiltinShaper) Shape(face *Face, runes []rune, size float64) []ShapedGlyph {
	if len(runes) == 0 || face == nil {
		return nil
	}
	var buf sfnt.Buffer
	ppem := toFixed(size)
	glyphs := make([]ShapedGlyph, 0, len(runes))

	var x float64
	var prev sfnt.GlyphIndex
	for i, r := range runes {
		gid, err := face.sfnt.GlyphIndex(&buf, r)
		if err != nil {
			gid = 0
		}
		if i > 0 {
			if k, err := face.sfnt.Kern(&buf, prev, gid, ppem, font.HintingNone); err == nil {
				x += fromFixed(k)
			}
		}
		adv, err := face.sfnt.GlyphAdvance(&buf, gid, ppem, font.HintingNone)
		if err != nil {
			adv = 0
		}
		glyphs = append(glyphs, ShapedGlyph{
			ID:      gid,
			Cluster: i,
			X:       x,
			Advance: fromFixed(adv),
		})
		x += fromFixed(adv)
		prev = gid
	}
	return glyphs
}
