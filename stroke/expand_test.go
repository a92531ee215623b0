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

package stroke

import (
	"testing"

	"seehuhn.de/go/pdf/graphics"

	"github.com/vecgpu/vecgpu/pathgeom"
)

func rectSubPath(x0, y0, x1, y1 float64) *pathgeom.SubPath {
	p := pathgeom.NewPath()
	p.MoveTo(x0, y0)
	p.LineTo(x1, y0)
	p.LineTo(x1, y1)
	p.LineTo(x0, y1)
	p.ClosePath()
	return p.Flatten(1.0)[0]
}

func TestClosedMiterRectProducesOnePointPerVertexPerSide(t *testing.T) {
	sp := rectSubPath(0, 0, 100, 50)
	r := Expand(sp, Params{Width: 10, Join: graphics.LineJoinMiter, MiterLimit: 10})
	if len(r) != 1 {
		t.Fatalf("expected 1 result, got %d", len(r))
	}
	res := r[0]
	if len(res.Outer) != 4 {
		t.Fatalf("outer: want 4 points (n=4 clean miters), got %d", len(res.Outer))
	}
	if len(res.Inner) != 4 {
		t.Fatalf("inner: want 4 points (n=4 clean miters), got %d", len(res.Inner))
	}
}

func TestOpenStrokeRoundCapProducesClosedRing(t *testing.T) {
	p := pathgeom.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)
	sp := p.Flatten(1.0)[0]

	r := Expand(sp, Params{Width: 10, Cap: graphics.LineCapRound, Join: graphics.LineJoinMiter, MiterLimit: 10})
	if len(r) != 1 {
		t.Fatalf("expected 1 result, got %d", len(r))
	}
	if len(r[0].Outer) < 4 {
		t.Fatalf("expected at least 4 points (2 straight sides + 2 round caps), got %d", len(r[0].Outer))
	}
	if len(r[0].Inner) != 0 {
		t.Fatalf("open stroke should have no inner ring, got %d points", len(r[0].Inner))
	}
}

func TestDashedLineProducesMultipleDashes(t *testing.T) {
	p := pathgeom.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)
	sp := p.Flatten(1.0)[0]

	r := Expand(sp, Params{
		Width: 4, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10,
		Dash: []float64{10, 10},
	})
	if len(r) != 5 {
		t.Fatalf("expected 5 dashes over a length-100 line with a 10/10 pattern, got %d", len(r))
	}
	for i, res := range r {
		if len(res.Outer) == 0 {
			t.Fatalf("dash %d has no geometry", i)
		}
	}
}

func TestDashOffsetShiftsPattern(t *testing.T) {
	p := pathgeom.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(100, 0)
	sp := p.Flatten(1.0)[0]

	base := Expand(sp, Params{Width: 4, Join: graphics.LineJoinMiter, MiterLimit: 10, Dash: []float64{10, 10}})
	shifted := Expand(sp, Params{Width: 4, Join: graphics.LineJoinMiter, MiterLimit: 10, Dash: []float64{10, 10}, DashOffset: 10})

	if len(base) == 0 || len(shifted) == 0 {
		t.Fatal("expected dashes in both cases")
	}
	if base[0].Outer[0] == shifted[0].Outer[0] {
		t.Fatal("expected dash offset to shift the first dash's starting geometry")
	}
}

func TestEmptySubPathProducesNoResult(t *testing.T) {
	sp := &pathgeom.SubPath{}
	r := Expand(sp, Params{Width: 4})
	if r != nil {
		t.Fatalf("expected nil, got %v", r)
	}
}
