// vecgpu - a 2D rendering library
// Copyright (C) 2026  The vecgpu Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fontrepo

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// faceAdapter exposes a Font through golang.org/x/image/font.Face, so
// text layout can use the standard library's measurement conventions
// (fixed.Int26_6) instead of a bespoke metrics type.
type faceAdapter struct {
	f *Font
}

// Face returns a font.Face backed by f's glyph table. Only the metrics
// methods used by simple left-to-right text layout are implemented; Glyph
// (rasterized mask output) is not implemented, and nothing in this module
// draws glyphs.
func (f *Font) Face() font.Face { return faceAdapter{f: f} }

func toFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(v * 64) }

func (a faceAdapter) Close() error { return nil }

func (a faceAdapter) Glyph(dot fixed.Point26_6, r rune) (image.Rectangle, image.Image, image.Point, fixed.Int26_6, bool) {
	return image.Rectangle{}, nil, image.Point{}, 0, false
}

func (a faceAdapter) GlyphBounds(r rune) (fixed.Rectangle26_6, fixed.Int26_6, bool) {
	g, ok := a.f.glyphs[r]
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	bounds := fixed.Rectangle26_6{
		Min: fixed.Point26_6{X: toFixed(g.BearingX), Y: -toFixed(g.BearingY)},
		Max: fixed.Point26_6{X: toFixed(g.BearingX + g.Width), Y: toFixed(g.Height - g.BearingY)},
	}
	return bounds, toFixed(g.AdvanceWidth), true
}

func (a faceAdapter) GlyphAdvance(r rune) (fixed.Int26_6, bool) {
	g, ok := a.f.glyphs[r]
	if !ok {
		return 0, false
	}
	return toFixed(g.AdvanceWidth), true
}

func (a faceAdapter) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func (a faceAdapter) Metrics() font.Metrics {
	return font.Metrics{}
}
