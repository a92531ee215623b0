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
	"github.com/vecgpu/vecgpu/paint"
)

var curveCases = []Case{
	{Name: "quadratic", Width: 64, Height: 64, Build: quadraticCase(10, 50, 32, 10, 54, 50)},
	{Name: "quadratic_shallow", Width: 64, Height: 64, Build: quadraticCase(10, 32, 32, 28, 54, 32)},
	{Name: "quadratic_deep", Width: 64, Height: 64, Build: quadraticCase(10, 50, 32, 5, 54, 50)},
	{Name: "cubic", Width: 64, Height: 64, Build: cubicCase(10, 50, 20, 10, 44, 10, 54, 50)},
	{Name: "cubic_s_shape", Width: 64, Height: 64, Build: cubicCase(10, 54, 10, 10, 54, 54, 54, 10)},
	{Name: "circle_via_cubics", Width: 64, Height: 64, Build: circleCase(32, 32, 25)},
	{Name: "stroked_curve", Width: 64, Height: 64, Build: strokedQuadraticCase(10, 50, 32, 10, 54, 50)},
}

func quadraticCase(x0, y0, cx, cy, x1, y1 float64) func(*canvas.Context) {
	return func(c *canvas.Context) {
		c.SetFillStyle(paint.NewSolid(red))
		c.BeginPath()
		c.MoveTo(x0, y0)
		c.QuadraticCurveTo(cx, cy, x1, y1)
		c.ClosePath()
		c.Fill(nil, graphics.FillRule(0))
	}
}

func cubicCase(x0, y0, cx1, cy1, cx2, cy2, x1, y1 float64) func(*canvas.Context) {
	return func(c *canvas.Context) {
		c.SetFillStyle(paint.NewSolid(red))
		c.BeginPath()
		c.MoveTo(x0, y0)
		c.BezierCurveTo(cx1, cy1, cx2, cy2, x1, y1)
		c.ClosePath()
		c.Fill(nil, graphics.FillRule(0))
	}
}

// circleCase approximates a circle with four cubic segments, exercising
// the adaptive d2/d3 subdivision at varying curvature along the ring.
func circleCase(cx, cy, r float64) func(*canvas.Context) {
	return func(c *canvas.Context) {
		const kappa = 0.5522847498307936
		k := r * kappa
		c.SetFillStyle(paint.NewSolid(red))
		c.BeginPath()
		circle(c, cx, cy, r, k)
		c.Fill(nil, graphics.FillRule(0))
	}
}

func strokedQuadraticCase(x0, y0, cx, cy, x1, y1 float64) func(*canvas.Context) {
	return func(c *canvas.Context) {
		c.SetStrokeStyle(black)
		c.SetLineWidth(4)
		c.BeginPath()
		c.MoveTo(x0, y0)
		c.QuadraticCurveTo(cx, cy, x1, y1)
		c.Stroke(nil)
	}
}
