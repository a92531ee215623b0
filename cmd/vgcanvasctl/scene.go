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

package main

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"strconv"

	"seehuhn.de/go/pdf/graphics"

	"github.com/vecgpu/vecgpu/canvas"
	"github.com/vecgpu/vecgpu/paint"
)

// Scene is the on-disk JSON shape a replay command drives a canvas.Context
// with: one frame's worth of canvas calls, in order.
type Scene struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	DPR    float64 `json:"dpr"`
	Ops    []Op    `json:"ops"`
}

// Op is one canvas call. Only the fields relevant to Kind are read.
type Op struct {
	Kind string `json:"op"`

	X, Y, W, H float64
	X1, Y1     float64
	Value      float64
	Color      string
	Pattern    []float64
}

func loadScene(r io.Reader) (Scene, error) {
	var s Scene
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Scene{}, fmt.Errorf("vgcanvasctl: decode scene: %w", err)
	}
	if s.DPR == 0 {
		s.DPR = 1
	}
	return s, nil
}

// apply replays every op in the scene against c, in order.
func apply(c *canvas.Context, s Scene) error {
	c.BeginFrame(s.Width, s.Height, s.DPR)
	for _, op := range s.Ops {
		if err := applyOp(c, op); err != nil {
			return err
		}
	}
	return c.EndFrame()
}

func applyOp(c *canvas.Context, op Op) error {
	switch op.Kind {
	case "fillStyle":
		col, err := parseColor(op.Color)
		if err != nil {
			return err
		}
		c.SetFillStyle(paint.NewSolid(col))
	case "strokeStyle":
		col, err := parseColor(op.Color)
		if err != nil {
			return err
		}
		c.SetStrokeStyle(paint.NewSolid(col))
	case "lineWidth":
		c.SetLineWidth(op.Value)
	case "lineCap":
		c.SetLineCap(parseLineCap(op.Color))
	case "lineJoin":
		c.SetLineJoin(parseLineJoin(op.Color))
	case "setLineDash":
		c.SetLineDash(op.Pattern)
	case "shadowColor":
		col, err := parseColor(op.Color)
		if err != nil {
			return err
		}
		c.SetShadowColor(col)
	case "shadowOffset":
		c.SetShadowOffset(op.X, op.Y)
	case "beginPath":
		c.BeginPath()
	case "closePath":
		c.ClosePath()
	case "moveTo":
		c.MoveTo(op.X, op.Y)
	case "lineTo":
		c.LineTo(op.X, op.Y)
	case "rect":
		c.Rect(op.X, op.Y, op.W, op.H)
	case "fill":
		c.Fill(nil, graphics.FillRule(0))
	case "stroke":
		c.Stroke(nil)
	case "fillRect":
		c.FillRect(op.X, op.Y, op.W, op.H)
	case "strokeRect":
		c.StrokeRect(op.X, op.Y, op.W, op.H)
	case "clearRect":
		c.ClearRect(op.X, op.Y, op.W, op.H)
	case "save":
		c.Save()
	case "restore":
		c.Restore()
	default:
		return fmt.Errorf("vgcanvasctl: unknown op %q", op.Kind)
	}
	return nil
}

func parseLineCap(s string) graphics.LineCapStyle {
	switch s {
	case "round":
		return graphics.LineCapRound
	case "square":
		return graphics.LineCapSquare
	default:
		return graphics.LineCapButt
	}
}

func parseLineJoin(s string) graphics.LineJoinStyle {
	switch s {
	case "round":
		return graphics.LineJoinRound
	case "bevel":
		return graphics.LineJoinBevel
	default:
		return graphics.LineJoinMiter
	}
}

// parseColor reads a "#rrggbbaa" or "#rrggbb" hex string.
func parseColor(s string) (color.RGBA, error) {
	if len(s) == 7 {
		s += "ff"
	}
	if len(s) != 9 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("vgcanvasctl: bad color %q, want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("vgcanvasctl: bad color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
