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

// Package paint holds the fill/stroke style union and the per-context
// drawing state stack — spec component 4.G.
package paint

import (
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Kind identifies which union member of Paint is populated.
type Kind uint8

const (
	KindSolid Kind = iota
	KindLinearGradient
	KindRadialGradient
	KindImagePattern
)

// Stop is one color stop of a gradient.
type Stop struct {
	Offset float64 // in [0,1]
	Color  color.RGBA
}

// Paint is a tagged union over the four fill/stroke sources the canvas
// API exposes (CanvasRenderingContext2D's fillStyle/strokeStyle).
type Paint struct {
	Kind Kind

	Solid color.RGBA

	// Linear/radial gradient fields.
	Start, End vec.Vec2 // linear: line endpoints; radial: circle centers
	StartR, EndR float64 // radial only
	Stops      []Stop

	// Image pattern fields.
	PatternImageID int
	RepeatX        bool
	RepeatY        bool
}

// NewSolid constructs a Paint for an opaque or translucent solid color.
func NewSolid(c color.RGBA) Paint { return Paint{Kind: KindSolid, Solid: c} }

// NewLinearGradient constructs a linear gradient between start and end.
func NewLinearGradient(start, end vec.Vec2, stops []Stop) Paint {
	return Paint{Kind: KindLinearGradient, Start: start, End: end, Stops: stops}
}

// NewRadialGradient constructs a radial gradient between two circles, the
// canvas spec's two-circle gradient model.
func NewRadialGradient(start vec.Vec2, startR float64, end vec.Vec2, endR float64, stops []Stop) Paint {
	return Paint{Kind: KindRadialGradient, Start: start, StartR: startR, End: end, EndR: endR, Stops: stops}
}

// NewImagePattern constructs a Paint that samples an atlas image.
func NewImagePattern(imageID int, repeatX, repeatY bool) Paint {
	return Paint{Kind: KindImagePattern, PatternImageID: imageID, RepeatX: repeatX, RepeatY: repeatY}
}

// ContextState is the subset of canvas.Context mutated by save()/restore(),
// generalizing the teacher's Rasterizer fields (CTM, Clip, Width, Cap,
// Join, MiterLimit, Dash, DashPhase) to a push/pop stack plus fill/stroke
// paints and alpha.
type ContextState struct {
	CTM            matrix.Matrix
	ClipPath       []vec.Vec2 // empty = no clip beyond the device rectangle

	FillPaint   Paint
	StrokePaint Paint
	GlobalAlpha float64

	LineWidth  float64
	LineCap    graphics.LineCapStyle
	LineJoin   graphics.LineJoinStyle
	MiterLimit float64
	Dash       []float64
	DashOffset float64

	ShadowColor             color.RGBA
	ShadowOffsetX, ShadowOffsetY float64

	Font      string
	FontSize  float64
}

// DefaultState returns the state a freshly created context starts in,
// mirroring the teacher's NewRasterizer defaults (CTM identity, butt cap,
// miter join, miterLimit 10).
func DefaultState() ContextState {
	return ContextState{
		CTM:         matrix.Identity,
		FillPaint:   NewSolid(color.RGBA{A: 255}),
		StrokePaint: NewSolid(color.RGBA{A: 255}),
		GlobalAlpha: 1,
		LineWidth:   1,
		LineCap:     graphics.LineCapButt,
		LineJoin:    graphics.LineJoinMiter,
		MiterLimit:  10,
		ShadowColor: color.RGBA{},
		FontSize:    10,
	}
}

// Stack is the save()/restore() stack of ContextState, mirroring a
// canvas's graphics-state stack.
type Stack struct {
	cur     ContextState
	history []ContextState
}

// NewStack returns a stack whose current state is DefaultState.
func NewStack() *Stack {
	return &Stack{cur: DefaultState()}
}

// Current returns a pointer to the live, mutable state.
func (s *Stack) Current() *ContextState { return &s.cur }

// Save pushes a copy of the current state.
func (s *Stack) Save() {
	saved := s.cur
	saved.ClipPath = append([]vec.Vec2(nil), s.cur.ClipPath...)
	saved.Dash = append([]float64(nil), s.cur.Dash...)
	s.history = append(s.history, saved)
}

// Restore pops the most recently saved state, if any; restoring an empty
// stack is a no-op, matching CanvasRenderingContext2D.restore()'s leniency.
func (s *Stack) Restore() {
	n := len(s.history)
	if n == 0 {
		return
	}
	s.cur = s.history[n-1]
	s.history = s.history[:n-1]
}

// Depth reports how many states are saved below the current one.
func (s *Stack) Depth() int { return len(s.history) }
