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

// Package pathgeom holds the path command stream and the flattener that
// turns it into polylines.
package pathgeom

import "seehuhn.de/go/geom/vec"

// Kind identifies the operation a Command records.
type Kind uint8

const (
	KindMoveTo Kind = iota
	KindLineTo
	KindBezier
	KindQuad
	KindArc
	KindArcTo
	KindEllipse
	KindRect
	KindClose
)

// Command is a tagged record appended by a drawing call. No geometric work
// happens when it is appended; Path.Flatten interprets the stream lazily.
// P holds up to seven float parameters, interpreted per Kind; the sweep
// direction of Arc and Ellipse is carried in CCW:
//
//	MoveTo/LineTo:  P[0],P[1] = x,y
//	Bezier:         P[0..5]   = cp1x,cp1y,cp2x,cp2y,x,y
//	Quad:           P[0..3]   = cpx,cpy,x,y
//	Arc:            P[0..4]   = cx,cy,r,a0,a1
//	ArcTo:          P[0..4]   = x1,y1,x2,y2,r
//	Ellipse:        P[0..6]   = cx,cy,rx,ry,rot,a0,a1
//	Rect:           P[0..3]   = x,y,w,h
//	Close:          (no params)
type Command struct {
	Kind Kind
	P    [7]float64
	CCW  bool
}

// Path is an ordered sequence of commands plus a cache of derived geometry.
// It is created by beginPath or Path2D construction; commands are appended
// by the drawing calls; it is cloned onto the render queue by fill/stroke.
type Path struct {
	commands []Command
	dirty    bool
	subpaths []*SubPath
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{dirty: true}
}

// Reset clears the command stream, as if the path had just been created.
func (p *Path) Reset() {
	p.commands = p.commands[:0]
	p.subpaths = nil
	p.dirty = true
}

func (p *Path) append(c Command) {
	p.commands = append(p.commands, c)
	p.dirty = true
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.append(Command{Kind: KindMoveTo, P: [7]float64{x, y}})
}

// LineTo appends a straight segment to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.append(Command{Kind: KindLineTo, P: [7]float64{x, y}})
}

// BezierCurveTo appends a cubic Bézier segment.
func (p *Path) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	p.append(Command{Kind: KindBezier, P: [7]float64{cp1x, cp1y, cp2x, cp2y, x, y}})
}

// QuadraticCurveTo appends a quadratic Bézier segment.
func (p *Path) QuadraticCurveTo(cpx, cpy, x, y float64) {
	p.append(Command{Kind: KindQuad, P: [7]float64{cpx, cpy, x, y}})
}

// Arc appends a circular arc centered at (cx, cy).
func (p *Path) Arc(cx, cy, r, a0, a1 float64, ccw bool) {
	p.append(Command{Kind: KindArc, P: [7]float64{cx, cy, r, a0, a1}, CCW: ccw})
}

// ArcTo appends a tangent-circle arc between the current point, p1 and p2.
func (p *Path) ArcTo(x1, y1, x2, y2, r float64) {
	p.append(Command{Kind: KindArcTo, P: [7]float64{x1, y1, x2, y2, r}})
}

// Ellipse appends an elliptical arc. Rotation is accepted for API
// compatibility but not applied to the flattened geometry — see
// DESIGN.md's "ellipse rotation" open question.
func (p *Path) Ellipse(cx, cy, rx, ry, rot, a0, a1 float64, ccw bool) {
	p.append(Command{Kind: KindEllipse, P: [7]float64{cx, cy, rx, ry, rot, a0, a1}, CCW: ccw})
}

// Rect appends a closed rectangular subpath with four corners in CCW order
// starting top-left.
func (p *Path) Rect(x, y, w, h float64) {
	p.append(Command{Kind: KindRect, P: [7]float64{x, y, w, h}})
}

// ClosePath marks the current subpath closed.
func (p *Path) ClosePath() {
	p.append(Command{Kind: KindClose})
}

// Clone returns an independent copy of the path, suitable for pushing onto
// a render queue while the original continues to be mutated or is reset.
// The derived-geometry cache is not copied; the clone re-flattens lazily
// from its own command stream.
func (p *Path) Clone() *Path {
	out := &Path{
		commands: append([]Command(nil), p.commands...),
		dirty:    true,
	}
	return out
}

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.commands) == 0
}

// vecOf is a small helper shared by the flattener.
func vecOf(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
