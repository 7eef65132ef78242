// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package text lays out strings into positioned glyph coverage masks.
//
// A Face holds a parsed TrueType/OpenType font. Layout shapes a string with
// HarfBuzz (go-text/typesetting) by default, or with the simpler builtin
// shaper that only applies advances and pair kerning, then rasterizes each
// glyph outline into an 8-bit coverage mask positioned in device pixels:
//
//	glyphs, err := text.Layout(text.DefaultFace(), "hello", 100, 200, 32)
//	if err != nil {
//	    return err
//	}
//	for _, g := range glyphs {
//	    // g.Mask.AlphaAt(x, y) for (x, y) in g.Bounds
//	}
//
// Masks are cached per face, glyph, size and subpixel offset and are
// shared between calls; treat them as read-only.
package text
