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

// Package gpubackend defines the GPU submission contract (spec component
// 4.H) that batch.Submit drives, plus a software reference backend that
// records calls instead of issuing them, so the rest of the module can be
// exercised and tested without a real GPU context.
package gpubackend

// ShaderKind selects one of the three programs the original engine keeps
// resident: plain textured quads, and the two gradient fills.
type ShaderKind uint8

const (
	ShaderTexture ShaderKind = iota
	ShaderGradientLinear
	ShaderGradientRadial
)

// Uniforms carries the per-batch values a shader needs beyond its vertex
// attributes: gradient stop colors/offsets and the derived gradient
// geometry parameters spec.md §4.F requires precomputed on the CPU side
// (dt, lenSq for linear; dt, r0, dr, a for radial) rather than recomputed
// per-fragment.
type Uniforms struct {
	GradientStart [2]float32 // linear: start; radial: focal
	GradientEnd   [2]float32 // linear: end; radial: center
	GradientDelta [2]float32 // dt = end-start (linear) or focal-center (radial)
	GradientLenSq float32    // linear: dt·dt
	GradientR0    float32    // radial: inner radius
	GradientDR    float32    // radial: outer radius - inner radius
	GradientA     float32    // radial: dt·dt - dr²
	StopColors    [][4]float32
	StopOffsets   []float32
	GlobalAlpha   float32
}

// Backend is the contract a concrete GPU submission target (GL/Vulkan/a
// software rasterizer) must implement. batch.Submit drives a Backend
// through exactly this sequence per frame: UploadVertices, UploadIndices,
// then for each batch BindShader/BindTexture/SetUniforms/DrawIndexed.
type Backend interface {
	UploadVertices(data []float32)
	UploadIndices(data []uint16)
	BindShader(kind ShaderKind)
	BindTexture(textureID int)
	SetUniforms(u Uniforms)
	DrawIndexed(indexOffset, indexCount int)
}

// Call records one Backend method invocation, for backends (like Recorder)
// that capture submission traffic instead of issuing it.
type Call struct {
	Method      string
	ShaderKind  ShaderKind
	TextureID   int
	Uniforms    Uniforms
	IndexOffset int
	IndexCount  int
	VertexCount int
	IndexTotal  int
}

// Recorder is a Backend that appends every call it receives, for use in
// tests and the replay CLI.
type Recorder struct {
	Calls []Call
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) UploadVertices(data []float32) {
	r.Calls = append(r.Calls, Call{Method: "UploadVertices", VertexCount: len(data)})
}

func (r *Recorder) UploadIndices(data []uint16) {
	r.Calls = append(r.Calls, Call{Method: "UploadIndices", IndexTotal: len(data)})
}

func (r *Recorder) BindShader(kind ShaderKind) {
	r.Calls = append(r.Calls, Call{Method: "BindShader", ShaderKind: kind})
}

func (r *Recorder) BindTexture(textureID int) {
	r.Calls = append(r.Calls, Call{Method: "BindTexture", TextureID: textureID})
}

func (r *Recorder) SetUniforms(u Uniforms) {
	r.Calls = append(r.Calls, Call{Method: "SetUniforms", Uniforms: u})
}

func (r *Recorder) DrawIndexed(indexOffset, indexCount int) {
	r.Calls = append(r.Calls, Call{Method: "DrawIndexed", IndexOffset: indexOffset, IndexCount: indexCount})
}

// DrawCallCount reports how many DrawIndexed calls were recorded, the
// metric the replay CLI and batch tests check most often.
func (r *Recorder) DrawCallCount() int {
	n := 0
	for _, c := range r.Calls {
		if c.Method == "DrawIndexed" {
			n++
		}
	}
	return n
}
