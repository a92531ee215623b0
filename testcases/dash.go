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

package testcases

import (
	"seehuhn.de/go/pdf/graphics"

	"github.com/vecgpu/vecgpu/canvas"
)

var dashCases = []Case{
	{Name: "dash_single_element", Width: 64, Height: 64, Build: dashCase([]float64{10}, 0)},
	{Name: "dash_three_element", Width: 64, Height: 64, Build: dashCase([]float64{5, 3, 8}, 0)},
	{Name: "dash_long_short", Width: 64, Height: 64, Build: dashCase([]float64{20, 2}, 0)},
	{Name: "dash_short_long", Width: 64, Height: 64, Build: dashCase([]float64{2, 20}, 0)},
	{Name: "dash_equal", Width: 64, Height: 64, Build: dashCase([]float64{10, 10}, 0)},
	{Name: "dash_many_elements", Width: 64, Height: 64, Build: dashCase([]float64{2, 2, 6, 2, 2, 10}, 0)},
	{Name: "dash_phase_zero", Width: 64, Height: 64, Build: dashCase([]float64{10, 5}, 0)},
	{Name: "dash_phase_half", Width: 64, Height: 64, Build: dashCase([]float64{10, 5}, 5)},
	{Name: "dash_phase_full_cycle", Width: 64, Height: 64, Build: dashCase([]float64{10, 5}, 15)},
	{Name: "dash_on_closed_path", Width: 64, Height: 64, Build: dashedSquareCase([]float64{8, 4})},
}

func dashCase(pattern []float64, phase float64) func(*canvas.Context) {
	return func(c *canvas.Context) {
		c.SetStrokeStyle(black)
		c.SetLineWidth(4)
		c.SetLineCap(graphics.LineCapButt)
		c.SetLineDash(pattern)
		c.SetLineDashOffset(phase)
		c.BeginPath()
		c.MoveTo(5, 32)
		c.LineTo(59, 32)
		c.Stroke(nil)
	}
}

// dashedSquareCase exercises splitDashes's closed-path first/last dash
// merge by dashing a closed rectangular subpath.
func dashedSquareCase(pattern []float64) func(*canvas.Context) {
	return func(c *canvas.Context) {
		c.SetStrokeStyle(black)
		c.SetLineWidth(4)
		c.SetLineDash(pattern)
		c.BeginPath()
		c.Rect(16, 16, 32, 32)
		c.ClosePath()
		c.Stroke(nil)
	}
}
