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

package canvas

import (
	"image/color"

	"seehuhn.de/go/pdf/graphics"

	"github.com/vecgpu/vecgpu/paint"
)

func rgba(r, g, b, a uint8) color.RGBA { return color.RGBA{R: r, G: g, B: b, A: a} }

// Property setters, matching spec.md §6's Properties list: fillStyle,
// strokeStyle, lineWidth, lineCap, lineJoin, miterLimit, lineDashOffset,
// globalAlpha, shadowColor, shadowOffsetX/Y, font. shadowColor/offset are
// consumed by the batcher's shadow pass (batch.shadowGeometry), per
// spec.md §4.F's "emit a shadow pass" rule.

func (c *Context) SetFillStyle(p paint.Paint)   { c.state.Current().FillPaint = p }
func (c *Context) SetStrokeStyle(p paint.Paint) { c.state.Current().StrokePaint = p }
func (c *Context) SetLineWidth(w float64)       { c.state.Current().LineWidth = w }
func (c *Context) SetLineCap(cap graphics.LineCapStyle)   { c.state.Current().LineCap = cap }
func (c *Context) SetLineJoin(join graphics.LineJoinStyle) { c.state.Current().LineJoin = join }
func (c *Context) SetMiterLimit(m float64)      { c.state.Current().MiterLimit = m }
func (c *Context) SetLineDashOffset(o float64)  { c.state.Current().DashOffset = o }
func (c *Context) SetGlobalAlpha(a float64)     { c.state.Current().GlobalAlpha = a }
func (c *Context) SetShadowColor(col color.RGBA) { c.state.Current().ShadowColor = col }
func (c *Context) SetShadowOffset(x, y float64) {
	c.state.Current().ShadowOffsetX = x
	c.state.Current().ShadowOffsetY = y
}
func (c *Context) SetFont(family string, size float64) {
	c.state.Current().Font = family
	c.state.Current().FontSize = size
}

// State returns the live, mutable current graphics state for callers that
// need direct access (e.g. the CLI replaying a recorded scene).
func (c *Context) State() *paint.ContextState { return c.state.Current() }
