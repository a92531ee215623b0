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

// Package triangulate turns a flattened/stroked ring (with an optional
// hole) into a constrained Delaunay triangulation — spec component 4.D.
package triangulate

import (
	"fmt"

	p2t "github.com/ByteArena/poly2tri-go"
	"seehuhn.de/go/geom/vec"
)

// Triangle is one output triangle, indices into the Points that were
// supplied to Triangulate (outer ring first, then hole points if any).
type Triangle struct {
	A, B, C int
}

// Result is the triangulated mesh: Points in input order, Triangles
// indexing into Points.
type Result struct {
	Points    []vec.Vec2
	Triangles []Triangle
}

// Triangulate builds a constrained triangulation of outer, with hole (if
// non-empty) cut out of it. outer must have at least 3 points; hole, if
// given, must be fully contained in outer. The hole's winding is not
// inspected (the stroke package's extrudeClosed emits its outer and inner
// rings in the same vertex order).
func Triangulate(outer, hole []vec.Vec2) (Result, error) {
	if len(outer) < 3 {
		return Result{}, fmt.Errorf("triangulate: outer ring needs at least 3 points, got %d", len(outer))
	}

	contour := toP2T(outer)
	cdt := p2t.NewCDT(contour)
	var holeContour []*p2t.Point
	if len(hole) >= 3 {
		holeContour = toP2T(hole)
		cdt.AddHole(holeContour)
	}
	cdt.Triangulate()

	index := make(map[*p2t.Point]int, len(outer)+len(hole))
	points := make([]vec.Vec2, 0, len(outer)+len(hole))
	for i, pt := range contour {
		index[pt] = i
		points = append(points, outer[i])
	}
	if len(hole) >= 3 {
		base := len(points)
		for i, pt := range holeContour {
			index[pt] = base + i
			points = append(points, hole[i])
		}
	}

	tris := cdt.GetTriangles()
	out := make([]Triangle, 0, len(tris))
	for _, tri := range tris {
		a, okA := index[tri.Points[0]]
		b, okB := index[tri.Points[1]]
		c, okC := index[tri.Points[2]]
		if !okA || !okB || !okC {
			// Steiner point introduced by the library; append it.
			a = resolveOrAppend(&index, &points, tri.Points[0])
			b = resolveOrAppend(&index, &points, tri.Points[1])
			c = resolveOrAppend(&index, &points, tri.Points[2])
		}
		out = append(out, Triangle{A: a, B: b, C: c})
	}

	return Result{Points: points, Triangles: out}, nil
}

func resolveOrAppend(index *map[*p2t.Point]int, points *[]vec.Vec2, pt *p2t.Point) int {
	if i, ok := (*index)[pt]; ok {
		return i
	}
	i := len(*points)
	*points = append(*points, vec.Vec2{X: pt.X, Y: pt.Y})
	(*index)[pt] = i
	return i
}

func toP2T(pts []vec.Vec2) []*p2t.Point {
	out := make([]*p2t.Point, len(pts))
	for i, p := range pts {
		out[i] = p2t.NewPoint(p.X, p.Y)
	}
	return out
}
