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
	"image/color"
	"math"

	"seehuhn.de/go/pdf/graphics"

	"github.com/vecgpu/vecgpu/canvas"
	"github.com/vecgpu/vecgpu/paint"
)

var red = color.RGBA{R: 255, A: 255}
var rgbaBlack = color.RGBA{A: 255}

var fillCases = []Case{
	{
		Name: "triangle", Width: 64, Height: 64,
		Build: func(c *canvas.Context) { triangle(c, 10, 50, 32, 10, 54, 50) },
	},
	{
		Name: "star_self_intersecting", Width: 64, Height: 64,
		Build: func(c *canvas.Context) { fivePointStar(c, 32, 32, 25) },
	},
	{
		Name: "rectangle", Width: 64, Height: 64,
		Build: func(c *canvas.Context) { c.SetFillStyle(paint.NewSolid(red)); c.FillRect(10, 10, 44, 44) },
	},
	{
		// nested rectangles of opposite winding. The batcher triangulates
		// each fill subpath on its own with no hole, so the inner rectangle
		// is filled over rather than cut out.
		Name: "concentric_rectangles_with_hole", Width: 64, Height: 64,
		Build: func(c *canvas.Context) { concentricRectangles(c, 32, 32, 25, 12) },
	},
	{
		Name: "overlapping_circles", Width: 64, Height: 64,
		Build: func(c *canvas.Context) { overlappingCircles(c, 24, 32, 44, 32, 16) },
	},
	{
		Name: "figure_eight_self_crossing", Width: 64, Height: 64,
		Build: func(c *canvas.Context) { figureEight(c, 32, 32, 20, 10) },
	},
	{
		Name: "pixel_aligned_rect", Width: 64, Height: 64,
		Build: func(c *canvas.Context) { c.SetFillStyle(paint.NewSolid(red)); c.FillRect(10, 10, 40, 40) },
	},
	{
		Name: "partially_clipped_rect", Width: 64, Height: 64,
		Build: func(c *canvas.Context) { c.SetFillStyle(paint.NewSolid(red)); c.FillRect(-10, 20, 50, 54) },
	},
}

func triangle(c *canvas.Context, x1, y1, x2, y2, x3, y3 float64) {
	c.SetFillStyle(paint.NewSolid(red))
	c.BeginPath()
	c.MoveTo(x1, y1)
	c.LineTo(x2, y2)
	c.LineTo(x3, y3)
	c.ClosePath()
	c.Fill(nil, graphics.FillRule(0))
}

// fivePointStar draws a five-pointed star by connecting every second vertex
// of a regular pentagon, producing a self-intersecting subpath.
func fivePointStar(c *canvas.Context, cx, cy, r float64) {
	var pts [5][2]float64
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = [2]float64{cx + r*math.Cos(angle), cy + r*math.Sin(angle)}
	}
	order := [5]int{0, 2, 4, 1, 3}

	c.SetFillStyle(paint.NewSolid(red))
	c.BeginPath()
	c.MoveTo(pts[order[0]][0], pts[order[0]][1])
	for _, i := range order[1:] {
		c.LineTo(pts[i][0], pts[i][1])
	}
	c.ClosePath()
	c.Fill(nil, graphics.FillRule(0))
}

func concentricRectangles(c *canvas.Context, cx, cy, outer, inner float64) {
	c.SetFillStyle(paint.NewSolid(red))
	c.BeginPath()
	c.MoveTo(cx-outer, cy-outer)
	c.LineTo(cx+outer, cy-outer)
	c.LineTo(cx+outer, cy+outer)
	c.LineTo(cx-outer, cy+outer)
	c.ClosePath()
	c.MoveTo(cx-inner, cy-inner)
	c.LineTo(cx-inner, cy+inner)
	c.LineTo(cx+inner, cy+inner)
	c.LineTo(cx+inner, cy-inner)
	c.ClosePath()
	c.Fill(nil, graphics.FillRule(0))
}

func overlappingCircles(c *canvas.Context, cx1, cy1, cx2, cy2, r float64) {
	const kappa = 0.5522847498307936
	k := r * kappa

	c.SetFillStyle(paint.NewSolid(red))
	c.BeginPath()
	circle(c, cx1, cy1, r, k)
	circle(c, cx2, cy2, r, k)
	c.Fill(nil, graphics.FillRule(0))
}

func circle(c *canvas.Context, cx, cy, r, k float64) {
	c.MoveTo(cx+r, cy)
	c.BezierCurveTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
	c.BezierCurveTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
	c.BezierCurveTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
	c.BezierCurveTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	c.ClosePath()
}

func figureEight(c *canvas.Context, cx, cy, w, h float64) {
	c.SetFillStyle(paint.NewSolid(red))
	c.BeginPath()
	c.MoveTo(cx-w, cy-h)
	c.LineTo(cx+w, cy+h)
	c.LineTo(cx+w, cy-h)
	c.LineTo(cx-w, cy+h)
	c.ClosePath()
	c.Fill(nil, graphics.FillRule(0))
}
