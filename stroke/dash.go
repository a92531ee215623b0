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
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/vecgpu/vecgpu/pathgeom"
)

const zeroLengthThreshold = 1e-9

// splitDashes walks sp's points and cuts out the "on" runs of the dash
// pattern, normalizing phase into [0, patternLen) and doubling an
// odd-length pattern, per spec.md §4.C step 2. Each returned SubPath is an
// open run of points (possibly a single degenerate point, for a
// zero-length dash that should still receive a round/square cap).
func splitDashes(sp *pathgeom.SubPath, dash []float64, phase float64) []*pathgeom.SubPath {
	dashLen := len(dash)
	patternLen := 0.0
	for _, d := range dash {
		patternLen += d
	}
	if dashLen%2 == 1 {
		patternLen *= 2
	}
	if patternLen <= 0 {
		return []*pathgeom.SubPath{sp}
	}

	phase = math.Mod(phase, patternLen)
	if phase < 0 {
		phase += patternLen
	}

	n := len(sp.Points)
	segCount := n - 1
	if sp.Closed {
		segCount = n
	}
	if segCount <= 0 {
		return nil
	}

	dashAt := func(i int) float64 { return dash[i%dashLen] }

	dashIdx := 0
	dist := phase
	for dashAt(dashIdx) > 0 && dist >= dashAt(dashIdx) {
		dist -= dashAt(dashIdx)
		dashIdx++
	}
	remaining := dashAt(dashIdx) - dist
	isOn := dashIdx%2 == 0

	var out []*pathgeom.SubPath
	var cur *pathgeom.SubPath
	startedOn := isOn

	startDash := func(pos vec.Vec2) {
		cur = &pathgeom.SubPath{Points: []pathgeom.Point{{Pos: pos}}}
	}
	extendDash := func(pos vec.Vec2) {
		cur.Points = append(cur.Points, pathgeom.Point{Pos: pos})
	}
	endDash := func() {
		if cur != nil {
			out = append(out, cur)
			cur = nil
		}
	}

	at := func(i int) vec.Vec2 { return sp.Points[i%n].Pos }

	if isOn && remaining == 0 {
		startDash(at(0))
		endDash()
		dashIdx++
		remaining = dashAt(dashIdx)
		isOn = dashIdx%2 == 0
	}

	firstDash := []pathgeom.Point(nil)

	segIdx := 0
	segDist := 0.0
	if isOn {
		startDash(at(0))
	}

	for segIdx < segCount {
		a, b := at(segIdx), at(segIdx+1)
		segVec := b.Sub(a)
		segLen := segVec.Length()
		segRemaining := segLen - segDist

		if remaining >= segRemaining {
			if isOn {
				extendDash(b)
			}
			remaining -= segRemaining
			segIdx++
			segDist = 0
			continue
		}

		endDist := segDist + remaining
		var splitPt vec.Vec2
		if segLen > 0 {
			splitPt = a.Add(segVec.Mul(endDist / segLen))
		} else {
			splitPt = a
		}

		if isOn {
			extendDash(splitPt)
			if firstDash == nil {
				firstDash = append([]pathgeom.Point(nil), cur.Points...)
			}
			endDash()
		}

		segDist = endDist
		dashIdx++
		remaining = dashAt(dashIdx)
		isOn = dashIdx%2 == 0
		if isOn {
			startDash(splitPt)
		}
	}

	if cur != nil {
		if sp.Closed && startedOn && isOn && firstDash != nil {
			cur.Points = append(cur.Points, firstDash...)
			if len(out) > 0 {
				out = out[1:]
			}
		}
		out = append(out, cur)
	}

	return out
}
