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

// Package stroke expands a flattened polyline into the polygon that
// represents its stroke, honoring line width, join, cap, miter limit, and
// dash pattern — spec component 4.C.
package stroke

import (
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"github.com/vecgpu/vecgpu/pathgeom"
)

// Params mirrors the subset of ContextState that affects stroke geometry.
type Params struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
	Dash       []float64
	DashOffset float64
}

// Result is one stroked contour ready for triangulation: Outer is always
// populated; Inner is the hole of a closed, non-dashed stroke (an annulus).
type Result struct {
	Outer  []vec.Vec2
	Inner  []vec.Vec2
	Closed bool
}

const (
	epsNormal   = 1e-6
	normalClamp = 1000.0
)

// Expand produces one or more Results for sp. Dashing (if Params.Dash is
// non-empty) splits sp into independent open dashes first, per spec.md
// §4.C step 2; each dash is then extruded as an open polyline.
func Expand(sp *pathgeom.SubPath, p Params) []Result {
	if len(sp.Points) < 2 {
		if len(sp.Points) == 1 && hasDashDot(p) {
			return []Result{dotCap(sp.Points[0].Pos, p)}
		}
		return nil
	}

	if len(p.Dash) > 0 {
		dashes := splitDashes(sp, p.Dash, p.DashOffset)
		out := make([]Result, 0, len(dashes))
		for _, d := range dashes {
			if len(d.Points) == 1 {
				if hasDashDot(p) {
					out = append(out, dotCap(d.Points[0].Pos, p))
				}
				continue
			}
			deriveOpenDirections(d)
			out = append(out, extrudeOpen(d, p))
		}
		return out
	}

	if sp.Closed {
		return []Result{extrudeClosed(sp, p)}
	}
	return []Result{extrudeOpen(sp, p)}
}

func hasDashDot(p Params) bool {
	return p.Cap == graphics.LineCapRound || p.Cap == graphics.LineCapSquare
}

func dotCap(center vec.Vec2, p Params) Result {
	d := p.Width / 2
	var outer []vec.Vec2
	switch p.Cap {
	case graphics.LineCapRound:
		outer = appendArc(nil, center, d, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true, 0.5)
	case graphics.LineCapSquare:
		outer = []vec.Vec2{
			{X: center.X - d, Y: center.Y - d},
			{X: center.X + d, Y: center.Y - d},
			{X: center.X + d, Y: center.Y + d},
			{X: center.X - d, Y: center.Y + d},
		}
	}
	return Result{Outer: outer, Closed: true}
}

func rotateCW(v vec.Vec2) vec.Vec2 { return vec.Vec2{X: v.Y, Y: -v.X} }

// cornerNormal implements spec.md §4.C step 3: the averaged, clamp-scaled
// corner normal shared by both the outer and inner offset of a vertex.
func cornerNormal(d0, d1 vec.Vec2) (norm vec.Vec2, sqLen float64) {
	n0 := rotateCW(d0)
	n1 := rotateCW(d1)
	norm = n0.Add(n1).Mul(0.5)
	sqLen = norm.Dot(norm)
	if sqLen > epsNormal {
		scale := 1 / sqLen
		if scale > normalClamp {
			scale = normalClamp
		}
		norm = norm.Mul(scale)
	}
	return norm, sqLen
}

func isSharp(sqLen, lenPrev, lenNext, halfWidth float64) bool {
	if halfWidth <= 0 {
		return false
	}
	m := min(lenPrev, lenNext)
	return sqLen*m*m/(halfWidth*halfWidth) > 1
}

func needsBevel(join graphics.LineJoinStyle, sqLen, miterLimit float64) bool {
	if join == graphics.LineJoinBevel || join == graphics.LineJoinRound {
		return true
	}
	return sqLen*miterLimit*miterLimit < 1
}

// extrudeClosed implements spec.md §4.C step 4 (closed path): one walk over
// the vertices emitting an outer ring and an inner hole.
func extrudeClosed(sp *pathgeom.SubPath, p Params) Result {
	n := len(sp.Points)
	halfWidth := p.Width / 2
	outer := make([]vec.Vec2, 0, 2*n)
	inner := make([]vec.Vec2, 0, 2*n)

	for i := 0; i < n; i++ {
		prev := sp.Points[(i-1+n)%n]
		cur := sp.Points[i]
		pos := cur.Pos
		norm, sqLen := cornerNormal(prev.Dir, cur.Dir)

		bevel := needsBevel(p.Join, sqLen, p.MiterLimit)
		sharp := isSharp(sqLen, prev.Len, cur.Len, halfWidth)

		if bevel {
			n0 := rotateCW(prev.Dir)
			n1 := rotateCW(cur.Dir)
			switch p.Join {
			case graphics.LineJoinRound:
				outer = appendArc(outer, pos, halfWidth, n0, angleBetween(n0, n1), false, 0.5)
			default:
				outer = append(outer, pos.Add(n0.Mul(halfWidth)), pos.Add(n1.Mul(halfWidth)))
			}
		} else {
			outer = append(outer, pos.Add(norm.Mul(halfWidth)))
		}

		if sharp {
			inner = append(inner, pos.Sub(norm.Mul(halfWidth)))
		} else {
			n0 := rotateCW(prev.Dir)
			n1 := rotateCW(cur.Dir)
			inner = append(inner, pos.Sub(n0.Mul(halfWidth)), pos.Sub(n1.Mul(halfWidth)))
		}
	}

	return Result{Outer: outer, Inner: inner, Closed: true}
}

// extrudeOpen implements spec.md §4.C step 4 (open path): offset one side,
// a front cap, the reverse side, and a back cap, forming one closed ring.
func extrudeOpen(sp *pathgeom.SubPath, p Params) Result {
	n := len(sp.Points)
	halfWidth := p.Width / 2
	outer := make([]vec.Vec2, 0, 4*n)

	// Forward pass along +normal.
	for i := 0; i < n; i++ {
		cur := sp.Points[i]
		if i == 0 {
			n0 := rotateCW(cur.Dir)
			outer = append(outer, cur.Pos.Add(n0.Mul(halfWidth)))
			continue
		}
		prev := sp.Points[i-1]
		if i == n-1 {
			n1 := rotateCW(cur.Dir)
			outer = append(outer, cur.Pos.Add(n1.Mul(halfWidth)))
			continue
		}
		norm, sqLen := cornerNormal(prev.Dir, cur.Dir)
		if needsBevel(p.Join, sqLen, p.MiterLimit) {
			n0 := rotateCW(prev.Dir)
			n1 := rotateCW(cur.Dir)
			if p.Join == graphics.LineJoinRound {
				outer = appendArc(outer, cur.Pos, halfWidth, n0, angleBetween(n0, n1), false, 0.5)
			} else {
				outer = append(outer, cur.Pos.Add(n0.Mul(halfWidth)), cur.Pos.Add(n1.Mul(halfWidth)))
			}
		} else {
			outer = append(outer, cur.Pos.Add(norm.Mul(halfWidth)))
		}
	}

	// Front cap at the last point.
	last := sp.Points[n-1]
	outer = appendCap(outer, last.Pos, last.Dir, halfWidth, p.Cap)

	// Backward pass along -normal.
	for i := n - 1; i >= 0; i-- {
		cur := sp.Points[i]
		if i == n-1 {
			n1 := rotateCW(cur.Dir)
			outer = append(outer, cur.Pos.Sub(n1.Mul(halfWidth)))
			continue
		}
		next := sp.Points[i+1]
		if i == 0 {
			n0 := rotateCW(cur.Dir)
			outer = append(outer, cur.Pos.Sub(n0.Mul(halfWidth)))
			continue
		}
		norm, sqLen := cornerNormal(cur.Dir, next.Dir)
		if needsBevel(p.Join, sqLen, p.MiterLimit) {
			n0 := rotateCW(cur.Dir)
			n1 := rotateCW(next.Dir)
			if p.Join == graphics.LineJoinRound {
				outer = appendArc(outer, cur.Pos, halfWidth, n1.Mul(-1), angleBetween(n1.Mul(-1), n0.Mul(-1)), false, 0.5)
			} else {
				outer = append(outer, cur.Pos.Sub(n1.Mul(halfWidth)), cur.Pos.Sub(n0.Mul(halfWidth)))
			}
		} else {
			outer = append(outer, cur.Pos.Sub(norm.Mul(halfWidth)))
		}
	}

	// Back cap at the first point, mirrored.
	first := sp.Points[0]
	outer = appendCap(outer, first.Pos, first.Dir.Mul(-1), halfWidth, p.Cap)

	return Result{Outer: outer, Closed: true}
}

func appendCap(pts []vec.Vec2, at, dir vec.Vec2, halfWidth float64, cap graphics.LineCapStyle) []vec.Vec2 {
	n := rotateCW(dir)
	switch cap {
	case graphics.LineCapButt:
		return pts
	case graphics.LineCapSquare:
		ext := at.Add(dir.Mul(halfWidth))
		return append(pts, ext.Add(n.Mul(halfWidth)), ext.Sub(n.Mul(halfWidth)))
	case graphics.LineCapRound:
		return appendArc(pts, at, halfWidth, n, math.Pi, false, 0.5)
	}
	return pts
}

func angleBetween(a, b vec.Vec2) float64 {
	cos := max(-1, min(1, a.Dot(b)))
	angle := math.Acos(cos)
	cross := a.X*b.Y - a.Y*b.X
	if cross < 0 {
		return -angle
	}
	return angle
}

// appendArc emits points along a circular arc of the given radius, flatness
// controlling segment density (device-pixel tolerance, as spec.md §4.B's
// flattener uses for curves).
func appendArc(pts []vec.Vec2, center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool, flatness float64) []vec.Vec2 {
	if radius <= 0 {
		return pts
	}
	angleStep := 2 * math.Acos(max(-1, 1-flatness/radius))
	if angleStep <= 0 || math.IsNaN(angleStep) {
		angleStep = math.Pi / 8
	}
	n := int(math.Ceil(math.Abs(sweep) / angleStep))
	if n < 1 {
		n = 1
	}
	dt := sweep / float64(n)
	start := 0
	if !includeStart {
		start = 1
	}
	for i := start; i <= n; i++ {
		angle := float64(i) * dt
		cos, sin := math.Cos(angle), math.Sin(angle)
		dir := vec.Vec2{X: startDir.X*cos - startDir.Y*sin, Y: startDir.X*sin + startDir.Y*cos}
		pts = append(pts, center.Add(dir.Mul(radius)))
	}
	return pts
}

func deriveOpenDirections(sp *pathgeom.SubPath) {
	n := len(sp.Points)
	if n < 2 {
		return
	}
	for i := 0; i < n-1; i++ {
		d := sp.Points[i+1].Pos.Sub(sp.Points[i].Pos)
		l := d.Length()
		if l > 0 {
			sp.Points[i].Dir = d.Mul(1 / l)
		}
		sp.Points[i].Len = l
	}
	sp.Points[n-1].Dir = sp.Points[n-2].Dir
	sp.Points[n-1].Len = 0
}
