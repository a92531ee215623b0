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

// Package testcases is a registry of named rendering scenarios, grouped by
// category, each built directly as a sequence of canvas.Context calls.
// cmd/vgcanvasctl's "scenes" subcommand runs every case through a
// gpubackend.Recorder and reports the batches it would submit; the test
// suite runs the same cases and asserts on their geometry.
package testcases

import "github.com/vecgpu/vecgpu/canvas"

// Case defines a single rendering scenario: a frame size and a Build
// function that records the scene's draw calls onto a fresh Context.
type Case struct {
	Name          string
	Width, Height int
	Build         func(c *canvas.Context)
}

// Run replays tc against c inside one beginFrame/endFrame cycle.
func (tc Case) Run(c *canvas.Context) error {
	c.BeginFrame(tc.Width, tc.Height, 1.0)
	tc.Build(c)
	return c.EndFrame()
}
