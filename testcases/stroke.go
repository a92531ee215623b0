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
	"math"

	"seehuhn.de/go/pdf/graphics"

	"github.com/vecgpu/vecgpu/canvas"
	"github.com/vecgpu/vecgpu/paint"
)

var black = paint.NewSolid(rgbaBlack)

var strokeCases = []Case{
	{Name: "line_butt", Width: 64, Height: 64, Build: horizontalLineCase(8, graphics.LineCapButt, nil)},
	{Name: "line_round", Width: 64, Height: 64, Build: horizontalLineCase(8, graphics.LineCapRound, nil)},
	{Name: "line_square", Width: 64, Height: 64, Build: horizontalLineCase(8, graphics.LineCapSquare, nil)},
	{Name: "line_dashed", Width: 64, Height: 64, Build: horizontalLineCase(4, graphics.LineCapButt, []float64{8, 4})},
	{Name: "width_thin", Width: 64, Height: 64, Build: horizontalLineCase(1, graphics.LineCapButt, nil)},
	{Name: "width_thick", Width: 64, Height: 64, Build: horizontalLineCase(20, graphics.LineCapButt, nil)},

	{Name: "corner_miter", Width: 64, Height: 64, Build: cornerCase(graphics.LineJoinMiter)},
	{Name: "corner_round", Width: 64, Height: 64, Build: cornerCase(graphics.LineJoinRound)},
	{Name: "corner_bevel", Width: 64, Height: 64, Build: cornerCase(graphics.LineJoinBevel)},

	{Name: "cap_vertical_round", Width: 64, Height: 64, Build: verticalLineCase(graphics.LineCapRound)},
	{Name: "cap_diagonal_square", Width: 64, Height: 64, Build: diagonalLineCase(graphics.LineCapSquare)},

	{Name: "closed_square_miter", Width: 64, Height: 64, Build: closedSquareCase(graphics.LineJoinMiter)},
	{Name: "closed_square_round", Width: 64, Height: 64, Build: closedSquareCase(graphics.LineJoinRound)},
}

func horizontalLineCase(width float64, cap graphics.LineCapStyle, dash []float64) func(*canvas.Context) {
	return func(c *canvas.Context) {
		c.SetStrokeStyle(black)
		c.SetLineWidth(width)
		c.SetLineCap(cap)
		c.SetLineDash(dash)
		c.BeginPath()
		c.MoveTo(10, 32)
		c.LineTo(54, 32)
		c.Stroke(nil)
	}
}

func verticalLineCase(cap graphics.LineCapStyle) func(*canvas.Context) {
	return func(c *canvas.Context) {
		c.SetStrokeStyle(black)
		c.SetLineWidth(8)
		c.SetLineCap(cap)
		c.BeginPath()
		c.MoveTo(32, 10)
		c.LineTo(32, 54)
		c.Stroke(nil)
	}
}

func diagonalLineCase(cap graphics.LineCapStyle) func(*canvas.Context) {
	return func(c *canvas.Context) {
		angle := 45 * math.Pi / 180
		length := 30.0
		c.SetStrokeStyle(black)
		c.SetLineWidth(8)
		c.SetLineCap(cap)
		c.BeginPath()
		c.MoveTo(32-length*math.Cos(angle)/2, 32-length*math.Sin(angle)/2)
		c.LineTo(32+length*math.Cos(angle)/2, 32+length*math.Sin(angle)/2)
		c.Stroke(nil)
	}
}

// cornerCase strokes an open two-segment path bending sharply at (32,14),
// exercising the join kind at the one interior vertex.
func cornerCase(join graphics.LineJoinStyle) func(*canvas.Context) {
	return func(c *canvas.Context) {
		c.SetStrokeStyle(black)
		c.SetLineWidth(6)
		c.SetLineJoin(join)
		c.BeginPath()
		c.MoveTo(10, 50)
		c.LineTo(32, 14)
		c.LineTo(54, 50)
		c.Stroke(nil)
	}
}

// closedSquareCase strokes a closed rectangular path, exercising the
// separate outer-ring/inner-hole expansion extrudeClosed produces.
func closedSquareCase(join graphics.LineJoinStyle) func(*canvas.Context) {
	return func(c *canvas.Context) {
		c.SetStrokeStyle(black)
		c.SetLineWidth(6)
		c.SetLineJoin(join)
		c.BeginPath()
		c.Rect(16, 16, 32, 32)
		c.ClosePath()
		c.Stroke(nil)
	}
}
