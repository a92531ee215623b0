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

// Package canvas is the public Canvas-like drawing API (spec §6) that
// wires pathgeom, stroke, triangulate, paint, queue, batch, gpubackend,
// and atlas together into one Context.
package canvas

import (
	"context"
	"log/slog"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"github.com/vecgpu/vecgpu/atlas"
	"github.com/vecgpu/vecgpu/batch"
	"github.com/vecgpu/vecgpu/fontrepo"
	"github.com/vecgpu/vecgpu/gpubackend"
	"github.com/vecgpu/vecgpu/paint"
	"github.com/vecgpu/vecgpu/pathgeom"
	"github.com/vecgpu/vecgpu/queue"
)

// Context is one rendering surface: current path, graphics state stack,
// deferred render queue, and the backend it submits batches to at
// endFrame, mirroring the original engine's per-context ContextPriv.
type Context struct {
	backend gpubackend.Backend
	atlas   *atlas.Atlas
	decoder *atlas.Decoder
	fonts   *fontrepo.Repository
	log     *slog.Logger

	width, height int
	dpr           float64
	viewport      rect.Rect

	state *paint.Stack
	path  *pathgeom.Path
	q     *queue.Queue

	lastBatches []batch.MergedBatch
}

// New returns a Context backed by backend, with an empty atlas and no
// font repository (SetFonts to enable text).
func New(backend gpubackend.Backend) *Context {
	return &Context{
		backend: backend,
		atlas:   atlas.New(atlas.MaxTextureSize),
		decoder: atlas.NewDecoder(),
		log:     slog.Default(),
		state:   paint.NewStack(),
		path:    pathgeom.NewPath(),
		q:       queue.New(),
		dpr:     1,
	}
}

// SetFonts installs the font repository used by fillText/strokeText.
func (c *Context) SetFonts(repo *fontrepo.Repository) { c.fonts = repo }

// BeginFrame starts a frame of width x height device pixels at the given
// device pixel ratio, per spec.md §6's beginFrame(w,h,dpr). Per spec.md
// §4.I, any decode results completed since the last frame are drained and
// packed into the atlas before anything else runs.
func (c *Context) BeginFrame(w, h int, dpr float64) {
	c.width, c.height = w, h
	c.dpr = dpr
	c.viewport = rect.Rect{LLx: 0, LLy: 0, URx: float64(w), URy: float64(h)}
	for _, res := range c.decoder.Drain() {
		if res.Err != nil {
			c.log.Warn("image decode failed", "imageID", res.ImageID, "error", res.Err)
			continue
		}
		if _, err := c.atlas.Pack(res.ImageID, res.Img); err != nil {
			c.log.Warn("atlas pack failed", "imageID", res.ImageID, "error", err)
		}
	}
}

// EndFrame runs Pass 1/2/3 (batch.GeneratePass1/MergePass2/Submit) over
// everything queued this frame and submits it to the backend, per
// spec.md §4.F.
func (c *Context) EndFrame() error {
	ops := c.q.Drain()
	geoms, err := batch.GeneratePass1(context.Background(), c.dpr, float64(c.height), c.atlas, ops)
	if err != nil {
		return err
	}
	batches := batch.MergePass2(geoms)
	batch.Submit(c.backend, batches)
	c.lastBatches = batches
	return nil
}

// LastBatches exposes the most recent EndFrame's merged batches, used by
// cmd/vgcanvasctl's replay stats and by tests.
func (c *Context) LastBatches() []batch.MergedBatch { return c.lastBatches }

// Viewport returns the current frame's device-coordinate rectangle as set
// by BeginFrame. Geometry is not clipped against it by this package or by
// the batcher.
func (c *Context) Viewport() rect.Rect { return c.viewport }

// ClearFrame clears a device-space rectangle to bg, implemented as an
// immediate solid-color fillRect bypassing the current path/state.
func (c *Context) ClearFrame(l, t, w, h float64, bg paint.Paint) {
	p := pathgeom.NewPath()
	p.Rect(l, t, w, h)
	st := *c.state.Current()
	st.FillPaint = bg
	c.q.Push(queue.DrawOp{Op: queue.OpFill, Path: p, State: st})
}

// Save pushes a copy of the current graphics state.
func (c *Context) Save() { c.state.Save() }

// Restore pops the most recently saved graphics state.
func (c *Context) Restore() { c.state.Restore() }

// BeginPath discards the current path, starting a new one.
func (c *Context) BeginPath() { c.path = pathgeom.NewPath() }

func (c *Context) ClosePath()                               { c.path.ClosePath() }
func (c *Context) MoveTo(x, y float64)                       { c.path.MoveTo(x, y) }
func (c *Context) LineTo(x, y float64)                       { c.path.LineTo(x, y) }
func (c *Context) BezierCurveTo(x1, y1, x2, y2, x, y float64) { c.path.BezierCurveTo(x1, y1, x2, y2, x, y) }
func (c *Context) QuadraticCurveTo(cx, cy, x, y float64)     { c.path.QuadraticCurveTo(cx, cy, x, y) }
func (c *Context) Arc(cx, cy, r, a0, a1 float64, ccw bool)   { c.path.Arc(cx, cy, r, a0, a1, ccw) }
func (c *Context) ArcTo(x1, y1, x2, y2, r float64)           { c.path.ArcTo(x1, y1, x2, y2, r) }
func (c *Context) Ellipse(cx, cy, rx, ry, rot, a0, a1 float64, ccw bool) {
	c.path.Ellipse(cx, cy, rx, ry, rot, a0, a1, ccw)
}
func (c *Context) Rect(x, y, w, h float64) { c.path.Rect(x, y, w, h) }

// Fill enqueues a fill of the given path (or the current path if nil).
// fillRule is recorded on the queued op; the batcher does not consult it.
func (c *Context) Fill(p *pathgeom.Path, fillRule graphics.FillRule) {
	target := p
	if target == nil {
		target = c.path
	}
	c.q.Push(queue.DrawOp{Op: queue.OpFill, Path: target.Clone(), State: *c.state.Current(), FillRule: fillRule})
}

// Stroke enqueues a stroke of the given path (or the current path if nil).
func (c *Context) Stroke(p *pathgeom.Path) {
	target := p
	if target == nil {
		target = c.path
	}
	c.q.Push(queue.DrawOp{Op: queue.OpStroke, Path: target.Clone(), State: *c.state.Current()})
}

// FillRect is the fillRect(x,y,w,h) convenience: fill a rectangular path
// immediately without touching the current path, per spec.md §6.
func (c *Context) FillRect(x, y, w, h float64) {
	p := pathgeom.NewPath()
	p.Rect(x, y, w, h)
	c.q.Push(queue.DrawOp{Op: queue.OpFill, Path: p, State: *c.state.Current()})
}

// StrokeRect is the strokeRect(x,y,w,h) convenience.
func (c *Context) StrokeRect(x, y, w, h float64) {
	p := pathgeom.NewPath()
	p.Rect(x, y, w, h)
	c.q.Push(queue.DrawOp{Op: queue.OpStroke, Path: p, State: *c.state.Current()})
}

// ClearRect clears a rectangle to fully transparent, implemented as a
// solid transparent-black fillRect.
func (c *Context) ClearRect(x, y, w, h float64) {
	p := pathgeom.NewPath()
	p.Rect(x, y, w, h)
	st := *c.state.Current()
	st.FillPaint = paint.NewSolid(transparent)
	c.q.Push(queue.DrawOp{Op: queue.OpFill, Path: p, State: st})
}

// FillText and StrokeText are partial stubs, matching spec.md's explicit
// Non-goal: glyph lookup runs (for layout/measurement callers) but no
// glyph image is generated or queued for drawing, since that requires a
// glyph-to-atlas lifecycle this pass does not implement.
func (c *Context) FillText(text string, x, y, maxWidth float64) {
	c.measureText(text)
}

func (c *Context) StrokeText(text string, x, y, maxWidth float64) {
	c.measureText(text)
}

func (c *Context) measureText(text string) {
	if c.fonts == nil {
		c.log.Warn("fillText: no font repository loaded")
		return
	}
	st := c.state.Current()
	font := c.fonts.Find(st.Font, 400, false)
	if font == nil {
		c.log.Warn("fillText: no matching font", "family", st.Font)
		return
	}
	for _, r := range text {
		if _, ok := font.Glyph(r); !ok {
			c.log.Warn("fillText: missing glyph", "rune", r)
		}
	}
}

// SetLineDash sets the dash pattern (setLineDash(seq)).
func (c *Context) SetLineDash(seq []float64) {
	c.state.Current().Dash = append([]float64(nil), seq...)
}

// CreateLinearGradient implements createLinearGradient(x0,y0,x1,y1).
func CreateLinearGradient(x0, y0, x1, y1 float64, stops []paint.Stop) paint.Paint {
	return paint.NewLinearGradient(vec.Vec2{X: x0, Y: y0}, vec.Vec2{X: x1, Y: y1}, stops)
}

// CreateRadialGradient implements
// createRadialGradient(x0,y0,r0,x1,y1,r1).
func CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64, stops []paint.Stop) paint.Paint {
	return paint.NewRadialGradient(vec.Vec2{X: x0, Y: y0}, r0, vec.Vec2{X: x1, Y: y1}, r1, stops)
}

// CreatePattern implements createPattern(image, repeat); imageID is the
// atlas identifier the caller previously submitted via SubmitImage.
func CreatePattern(imageID int, repeatX, repeatY bool) paint.Paint {
	return paint.NewImagePattern(imageID, repeatX, repeatY)
}

// SubmitImage queues data (an encoded PNG/JPEG) for async decoding; once
// decoded it will be packed into the atlas at the start of a later frame.
func (c *Context) SubmitImage(imageID int, data []byte) {
	c.decoder.Submit(imageID, data)
}

var transparent = rgba(0, 0, 0, 0)
