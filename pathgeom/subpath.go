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

import "seehuhn.de/go/geom/vec"

// PointProperties is a bitset describing a flattened point's role in a
// future stroke expansion.
type PointProperties uint8

const (
	PropCorner PointProperties = 1 << iota
	PropLeftTurn
	PropRightTurn
	PropSharp
	PropBevel
)

// Has reports whether all bits of mask are set.
func (p PointProperties) Has(mask PointProperties) bool { return p&mask == mask }

// Point is one vertex of a flattened SubPath.
type Point struct {
	Pos    vec.Vec2        // position
	Dir    vec.Vec2        // unit direction to the next point
	Normal vec.Vec2        // not filled by the flattener; stroke computes its own corner normals
	Len    float64         // segment length to the next point
	Props  PointProperties
}

// SubPath is a maximal flattened open or closed polyline derived from a
// prefix of path commands between moveTo/close boundaries.
//
// Invariant: adjacent points differ by at least distTol (enforced by
// addPoint during flattening).
type SubPath struct {
	Points []Point
	Closed bool

	// InnerPoints/OuterPoints are not filled by this package or by
	// stroke.Expand, which returns its contours in a stroke.Result instead;
	// they stay empty.
	InnerPoints []vec.Vec2
	OuterPoints []vec.Vec2

	// bounds computed lazily by Bounds; zero value means "not yet
	// computed".
	boundsValid  bool
	boundTopLeft vec.Vec2
	boundBotRight vec.Vec2
}

// Bounds returns the axis-aligned bounding box of Points, computing it on
// first use and caching the result.
func (s *SubPath) Bounds() (topLeft, bottomRight vec.Vec2, ok bool) {
	if len(s.Points) == 0 {
		return vec.Vec2{}, vec.Vec2{}, false
	}
	if !s.boundsValid {
		lo, hi := s.Points[0].Pos, s.Points[0].Pos
		for _, p := range s.Points[1:] {
			lo.X = min(lo.X, p.Pos.X)
			lo.Y = min(lo.Y, p.Pos.Y)
			hi.X = max(hi.X, p.Pos.X)
			hi.Y = max(hi.Y, p.Pos.Y)
		}
		s.boundTopLeft, s.boundBotRight = lo, hi
		s.boundsValid = true
	}
	return s.boundTopLeft, s.boundBotRight, true
}
