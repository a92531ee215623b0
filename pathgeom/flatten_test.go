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
	"testing"
)

func positions(sp *SubPath) []struct{ X, Y float64 } {
	out := make([]struct{ X, Y float64 }, len(sp.Points))
	for i, p := range sp.Points {
		out[i] = struct{ X, Y float64 }{p.Pos.X, p.Pos.Y}
	}
	return out
}

func TestFlattenDeterministic(t *testing.T) {
	build := func() *Path {
		p := NewPath()
		p.MoveTo(0, 0)
		p.BezierCurveTo(10, 40, 40, 40, 50, 0)
		return p
	}

	a := build().Flatten(1.0)
	b := build().Flatten(1.0)

	if len(a) != len(b) || len(a) != 1 {
		t.Fatalf("expected 1 subpath each, got %d and %d", len(a), len(b))
	}
	pa, pb := positions(a[0]), positions(b[0])
	if len(pa) != len(pb) {
		t.Fatalf("point count mismatch: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("point %d differs: %v vs %v", i, pa[i], pb[i])
		}
	}
}

func TestFlattenMinimumDistance(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(0, 0.001) // well under distTol at dpr=1
	p.LineTo(10, 0)
	sp := p.Flatten(1.0)[0]

	for i := 1; i < len(sp.Points); i++ {
		d := sp.Points[i].Pos.Sub(sp.Points[i-1].Pos).Length()
		if d < 0.01 {
			t.Fatalf("adjacent points %d/%d are %g apart, want >= distTol", i-1, i, d)
		}
	}
}

func TestQuadraticMatchesEquivalentCubic(t *testing.T) {
	p0x, p0y := 0.0, 0.0
	cpx, cpy := 25.0, 50.0
	x, y := 50.0, 0.0

	quad := NewPath()
	quad.MoveTo(p0x, p0y)
	quad.QuadraticCurveTo(cpx, cpy, x, y)

	c1x := p0x + 2.0/3.0*(cpx-p0x)
	c1y := p0y + 2.0/3.0*(cpy-p0y)
	c2x := x + 2.0/3.0*(cpx-x)
	c2y := y + 2.0/3.0*(cpy-y)

	cubic := NewPath()
	cubic.MoveTo(p0x, p0y)
	cubic.BezierCurveTo(c1x, c1y, c2x, c2y, x, y)

	spq := quad.Flatten(1.0)[0]
	spc := cubic.Flatten(1.0)[0]

	if len(spq.Points) != len(spc.Points) {
		t.Fatalf("point count mismatch: quad=%d cubic=%d", len(spq.Points), len(spc.Points))
	}
	for i := range spq.Points {
		if spq.Points[i].Pos != spc.Points[i].Pos {
			t.Fatalf("point %d differs: %v vs %v", i, spq.Points[i].Pos, spc.Points[i].Pos)
		}
	}
}

func TestRectProducesClosedFourCorners(t *testing.T) {
	p := NewPath()
	p.Rect(10, 10, 50, 50)
	sp := p.Flatten(1.0)[0]

	if !sp.Closed {
		t.Fatal("rect subpath must be closed")
	}
	if len(sp.Points) != 4 {
		t.Fatalf("expected 4 corners, got %d", len(sp.Points))
	}
	tl, br, ok := sp.Bounds()
	if !ok {
		t.Fatal("expected bounds")
	}
	if tl.X != 10 || tl.Y != 10 || br.X != 60 || br.Y != 60 {
		t.Fatalf("bounds = %v..%v, want (10,10)-(60,60)", tl, br)
	}
}

func TestBeginPathResetClearsCommands(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 10)
	p.Reset()
	if !p.IsEmpty() {
		t.Fatal("expected empty path after Reset")
	}
	if len(p.Flatten(1.0)) != 0 {
		t.Fatal("expected no subpaths from an empty path")
	}
}
