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

// Package batch implements the deferred-queue Pass 1/2/3 pipeline — spec
// component 4.F: parallel per-entry geometry generation, sequential batch
// merging by (shader, texture, paint) equality, and sequential GPU
// submission.
package batch

import (
	"image/color"

	"seehuhn.de/go/geom/vec"

	"github.com/vecgpu/vecgpu/atlas"
	"github.com/vecgpu/vecgpu/gpubackend"
)

// TexturedVertex is the layout used by solid-color and image-pattern
// draws: position, texture coordinate, texture atlas offset/size (so a
// packed atlas sub-rectangle can be addressed), and a per-vertex color.
type TexturedVertex struct {
	X, Y           float32
	U, V           float32
	TexOffX, TexOffY float32
	TexW, TexH     float32
	R, G, B, A     float32
}

// GradientVertex is the layout used by gradient-filled draws: position
// only, since the gradient's shape is resolved entirely in per-batch
// uniforms rather than per-vertex attributes.
type GradientVertex struct {
	X, Y float32
}

// Geometry is the output of Pass 1 for one DrawOp: triangulated positions
// plus the shading inputs Pass 2 needs to decide which vertex layout and
// batch key apply.
type Geometry struct {
	Positions []vec.Vec2
	Triangles [][3]int

	ShaderKind gpubackend.ShaderKind
	TextureID  int
	SolidColor color.RGBA
	Uniforms   gpubackend.Uniforms

	// Image-pattern-only: the atlas sub-rectangle this geometry's
	// texcoords should address, and whether it repeats in each axis (used
	// to derive texscale, per spec.md §4.F's textured vertex layout).
	PatternRect    atlas.Rect
	HasPatternRect bool
	PatternRepeatX bool
	PatternRepeatY bool
}

func colorToFloats(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}
