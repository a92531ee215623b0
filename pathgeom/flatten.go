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

package pathgeom

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// CurveRecursionLimit bounds the depth of adaptive cubic subdivision.
// Overridable at the package level by config.Apply.
var CurveRecursionLimit = 32

const curveCollinearEpsilon = 1e-6

// flattener accumulates SubPaths for one Path.Flatten call.
type flattener struct {
	dpr      float64
	tessTol  float64
	distTol  float64
	subpaths []*SubPath
	cur      *SubPath
}

// Flatten converts the command stream into flattened SubPaths using
// adaptive recursive subdivision. dpr is the device pixel ratio; it scales
// tessTol and distTol exactly as spec.md §4.B defines them. The result is
// cached until the next mutating call invalidates it.
func (p *Path) Flatten(dpr float64) []*SubPath {
	if !p.dirty && p.subpaths != nil {
		return p.subpaths
	}
	f := &flattener{
		dpr:     dpr,
		tessTol: 0.25 / dpr,
		distTol: 0.01 / dpr,
	}
	f.run(p.commands)
	p.subpaths = f.subpaths
	p.dirty = false
	return p.subpaths
}

func (f *flattener) run(cmds []Command) {
	var current vec.Vec2
	for _, c := range cmds {
		switch c.Kind {
		case KindMoveTo:
			f.finishSubpath()
			current = vecOf(c.P[0], c.P[1])
			f.cur = &SubPath{}
			f.addPoint(current, true)

		case KindLineTo:
			f.ensureSubpath(current)
			current = vecOf(c.P[0], c.P[1])
			f.addPoint(current, true)

		case KindBezier:
			f.ensureSubpath(current)
			p1 := vecOf(c.P[0], c.P[1])
			p2 := vecOf(c.P[2], c.P[3])
			p3 := vecOf(c.P[4], c.P[5])
			f.cubicTo(current, p1, p2, p3, 0)
			current = p3

		case KindQuad:
			f.ensureSubpath(current)
			cp := vecOf(c.P[0], c.P[1])
			end := vecOf(c.P[2], c.P[3])
			c1 := current.Add(cp.Sub(current).Mul(2.0 / 3.0))
			c2 := end.Add(cp.Sub(end).Mul(2.0 / 3.0))
			f.cubicTo(current, c1, c2, end, 0)
			current = end

		case KindArc:
			f.ensureSubpath(current)
			center := vecOf(c.P[0], c.P[1])
			r := c.P[2]
			a0, a1 := c.P[3], c.P[4]
			current = f.arcTo(current, center, r, a0, a1, c.CCW)

		case KindArcTo:
			f.ensureSubpath(current)
			p1 := vecOf(c.P[0], c.P[1])
			p2 := vecOf(c.P[2], c.P[3])
			r := c.P[4]
			current = f.arcToCorner(current, p1, p2, r)

		case KindEllipse:
			f.ensureSubpath(current)
			center := vecOf(c.P[0], c.P[1])
			rx, ry := c.P[2], c.P[3]
			a0, a1 := c.P[5], c.P[6]
			current = f.ellipseTo(current, center, rx, ry, a0, a1, c.CCW)

		case KindRect:
			f.finishSubpath()
			x, y, w, h := c.P[0], c.P[1], c.P[2], c.P[3]
			f.cur = &SubPath{}
			f.addPoint(vecOf(x, y), true)
			f.addPoint(vecOf(x, y+h), true)
			f.addPoint(vecOf(x+w, y+h), true)
			f.addPoint(vecOf(x+w, y), true)
			f.cur.Closed = true
			f.finishSubpath()
			current = vecOf(x, y)

		case KindClose:
			if f.cur != nil {
				f.cur.Closed = true
			}
			f.finishSubpath()
		}
	}
	f.finishSubpath()
}

func (f *flattener) ensureSubpath(origin vec.Vec2) {
	if f.cur == nil {
		f.cur = &SubPath{}
		f.addPoint(origin, true)
	}
}

// addPoint discards any point within distTol of the previous point, per
// spec.md §4.B's deduplication rule.
func (f *flattener) addPoint(p vec.Vec2, corner bool) {
	if f.cur == nil {
		return
	}
	if n := len(f.cur.Points); n > 0 {
		prev := f.cur.Points[n-1].Pos
		if prev.Sub(p).Length() < f.distTol {
			return
		}
	}
	props := PointProperties(0)
	if corner {
		props |= PropCorner
	}
	f.cur.Points = append(f.cur.Points, Point{Pos: p, Props: props})
}

// finishSubpath closes out the current subpath: drops a duplicate closing
// point, derives per-point direction/length, and appends it to the result.
func (f *flattener) finishSubpath() {
	if f.cur == nil {
		return
	}
	sp := f.cur
	f.cur = nil

	if sp.Closed && len(sp.Points) > 1 {
		first := sp.Points[0].Pos
		last := sp.Points[len(sp.Points)-1].Pos
		if first.Sub(last).Length() < f.distTol {
			sp.Points = sp.Points[:len(sp.Points)-1]
		}
	}

	if len(sp.Points) == 0 {
		return
	}

	deriveDirections(sp)
	f.subpaths = append(f.subpaths, sp)
}

// deriveDirections fills Dir and Len for every point in the subpath. The
// stroke package derives its own directions for dashed pieces and computes
// corner normals itself.
func deriveDirections(sp *SubPath) {
	n := len(sp.Points)
	if n < 2 {
		return
	}
	last := n - 1
	if sp.Closed {
		last = n
	}
	for i := 0; i < last; i++ {
		a := sp.Points[i].Pos
		b := sp.Points[(i+1)%n].Pos
		d := b.Sub(a)
		l := d.Length()
		if l > 0 {
			sp.Points[i].Dir = d.Mul(1 / l)
		}
		sp.Points[i].Len = l
	}
	if !sp.Closed {
		sp.Points[n-1].Dir = sp.Points[n-2].Dir
		sp.Points[n-1].Len = 0
	}
}

// cubicTo performs adaptive recursive de Casteljau subdivision of the cubic
// Bézier (p0,p1,p2,p3), per spec.md §4.B.
func (f *flattener) cubicTo(p0, p1, p2, p3 vec.Vec2, depth int) {
	if depth >= CurveRecursionLimit {
		f.addPoint(p3, true)
		return
	}

	dx := p3.X - p0.X
	dy := p3.Y - p0.Y

	d2 := math.Abs((p2.X-p3.X)*dy - (p2.Y-p3.Y)*dx)
	d3 := math.Abs((p1.X-p3.X)*dy - (p1.Y-p3.Y)*dx)

	const eps = curveCollinearEpsilon
	far2 := d2 > eps
	far3 := d3 > eps

	distSq := dx*dx + dy*dy

	switch {
	case !far2 && !far3:
		// Collinear: decide whether a midpoint is worth emitting, or can be
		// dropped entirely because the control points barely deviate.
		dd := (p1.X-p3.X)*(p1.X-p3.X) + (p1.Y-p3.Y)*(p1.Y-p3.Y) +
			(p2.X-p0.X)*(p2.X-p0.X) + (p2.Y-p0.Y)*(p2.Y-p0.Y)
		if dd < f.tessTol*distSq {
			f.addPoint(p3, true)
			return
		}

	case far2 != far3:
		dd := d2
		if far3 {
			dd = d3
		}
		if dd*dd <= f.tessTol*distSq {
			mid := midCubic(p0, p1, p2, p3)
			f.addPoint(mid, false)
			f.addPoint(p3, true)
			return
		}

	default:
		sum := d2 + d3
		if sum*sum <= f.tessTol*distSq {
			mid := midCubic(p0, p1, p2, p3)
			f.addPoint(mid, false)
			f.addPoint(p3, true)
			return
		}
	}

	// Split at t=0.5 and recurse on both halves.
	p01 := p0.Add(p1).Mul(0.5)
	p12 := p1.Add(p2).Mul(0.5)
	p23 := p2.Add(p3).Mul(0.5)
	p012 := p01.Add(p12).Mul(0.5)
	p123 := p12.Add(p23).Mul(0.5)
	mid := p012.Add(p123).Mul(0.5)

	f.cubicTo(p0, p01, p012, mid, depth+1)
	f.cubicTo(mid, p123, p23, p3, depth+1)
}

func midCubic(p0, p1, p2, p3 vec.Vec2) vec.Vec2 {
	omt, t := 0.5, 0.5
	b := func(a, b, c, d vec.Vec2) vec.Vec2 {
		return a.Mul(omt * omt * omt).Add(b.Mul(3 * omt * omt * t)).Add(c.Mul(3 * omt * t * t)).Add(d.Mul(t * t * t))
	}
	return b(p0, p1, p2, p3)
}

// arcTo decomposes a circular arc into one cubic Bézier segment per ≤90°
// sweep, per spec.md §4.B.
func (f *flattener) arcTo(from, center vec.Vec2, r, a0, a1 float64, ccw bool) vec.Vec2 {
	delta := a1 - a0
	if ccw {
		for delta > 0 {
			delta -= 2 * math.Pi
		}
	} else {
		for delta < 0 {
			delta += 2 * math.Pi
		}
	}
	if delta == 0 {
		return from
	}

	segCount := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	if segCount < 1 {
		segCount = 1
	}
	step := delta / float64(segCount)

	cur := a0
	curPt := center.Add(vecOf(math.Cos(cur), math.Sin(cur)).Mul(r))
	for i := 0; i < segCount; i++ {
		next := cur + step
		nextPt := center.Add(vecOf(math.Cos(next), math.Sin(next)).Mul(r))

		theta := step
		tanLen := math.Abs(4.0 / 3.0 * (1 - math.Cos(theta/2)) / math.Sin(theta/2)) * r
		if theta < 0 {
			tanLen = -tanLen
		}

		t0 := vecOf(-math.Sin(cur), math.Cos(cur))
		t1 := vecOf(-math.Sin(next), math.Cos(next))

		cp1 := curPt.Add(t0.Mul(tanLen))
		cp2 := nextPt.Sub(t1.Mul(tanLen))

		f.cubicTo(curPt, cp1, cp2, nextPt, 0)

		cur = next
		curPt = nextPt
	}
	return curPt
}

// arcToCorner implements the two-point-and-radius arcTo form, handling the
// degenerate collinear/zero-radius cases by falling back to a corner point.
func (f *flattener) arcToCorner(p0, p1, p2 vec.Vec2, r float64) vec.Vec2 {
	d1 := p0.Sub(p1)
	d2 := p2.Sub(p1)
	l1 := d1.Length()
	l2 := d2.Length()
	if l1 < 1e-9 || l2 < 1e-9 || r <= 0 {
		f.addPoint(p1, true)
		return p1
	}
	u1 := d1.Mul(1 / l1)
	u2 := d2.Mul(1 / l2)

	cosTheta := u1.Dot(u2)
	// Collinear (including 180° reversal): no arc, emit the corner.
	if cosTheta > 1-1e-9 || cosTheta < -1+1e-9 {
		f.addPoint(p1, true)
		return p1
	}

	sinHalf := math.Sqrt((1 - cosTheta) / 2)
	if sinHalf < 1e-9 {
		f.addPoint(p1, true)
		return p1
	}
	dist := r * math.Sqrt((1+cosTheta)/2) / sinHalf

	tangent1 := p1.Add(u1.Mul(dist))
	tangent2 := p1.Add(u2.Mul(dist))

	cross := u1.X*u2.Y - u1.Y*u2.X
	bis := u1.Add(u2)
	bisLen := bis.Length()
	if bisLen < 1e-9 {
		f.addPoint(p1, true)
		return p1
	}
	bis = bis.Mul(1 / bisLen)
	centerDist := r / sinHalf
	center := p1.Add(bis.Mul(centerDist))

	a0 := math.Atan2(tangent1.Y-center.Y, tangent1.X-center.X)
	a1 := math.Atan2(tangent2.Y-center.Y, tangent2.X-center.X)
	ccw := cross > 0

	f.addPoint(tangent1, true)
	return f.arcTo(tangent1, center, r, a0, a1, ccw)
}

// ellipseTo is the non-rotated special case of a full ellipse arc. True
// rotation is an open question left undefined by the original source — see
// DESIGN.md.
func (f *flattener) ellipseTo(from, center vec.Vec2, rx, ry, a0, a1 float64, ccw bool) vec.Vec2 {
	delta := a1 - a0
	if ccw {
		for delta > 0 {
			delta -= 2 * math.Pi
		}
	} else {
		for delta < 0 {
			delta += 2 * math.Pi
		}
	}
	if delta == 0 {
		return from
	}
	segCount := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	if segCount < 1 {
		segCount = 1
	}
	step := delta / float64(segCount)

	cur := a0
	curPt := center.Add(vecOf(rx*math.Cos(cur), ry*math.Sin(cur)))
	for i := 0; i < segCount; i++ {
		next := cur + step
		nextPt := center.Add(vecOf(rx*math.Cos(next), ry*math.Sin(next)))

		theta := step
		k := 4.0 / 3.0 * math.Tan(theta/4)

		t0 := vecOf(-rx*math.Sin(cur), ry*math.Cos(cur))
		t1 := vecOf(-rx*math.Sin(next), ry*math.Cos(next))

		cp1 := curPt.Add(t0.Mul(k))
		cp2 := nextPt.Sub(t1.Mul(k))

		f.cubicTo(curPt, cp1, cp2, nextPt, 0)

		cur = next
		curPt = nextPt
	}
	return curPt
}
