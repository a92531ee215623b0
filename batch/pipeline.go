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

package batch

import (
	"context"
	"fmt"
	"image/color"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/vec"

	"github.com/vecgpu/vecgpu/atlas"
	"github.com/vecgpu/vecgpu/gpubackend"
	"github.com/vecgpu/vecgpu/paint"
	"github.com/vecgpu/vecgpu/queue"
	"github.com/vecgpu/vecgpu/stroke"
	"github.com/vecgpu/vecgpu/triangulate"
)

// BatchKey groups draws that can share one DrawIndexed call: same shader,
// same texture, and the same paint (PaintID folds in both the gradient
// uniforms and, for solid/textured paints, the tint color — see
// uniformsKey — so two differently-colored solid fills never collide).
type BatchKey struct {
	Shader  gpubackend.ShaderKind
	Texture int
	PaintID string
}

func buildGeometry(dpr, height float64, atl *atlas.Atlas, op queue.DrawOp) ([]Geometry, error) {
	switch op.Op {
	case queue.OpFill, queue.OpTextFill:
		return fillGeometry(dpr, height, atl, op)
	case queue.OpStroke, queue.OpTextStroke:
		return strokeGeometry(dpr, height, atl, op)
	default:
		return nil, fmt.Errorf("batch: unknown op %v", op.Op)
	}
}

func fillGeometry(dpr, height float64, atl *atlas.Atlas, op queue.DrawOp) ([]Geometry, error) {
	subpaths := op.Path.Flatten(dpr)

	var positions []vec.Vec2
	var triangles [][3]int
	for _, sp := range subpaths {
		if len(sp.Points) < 3 {
			continue
		}
		ring := make([]vec.Vec2, len(sp.Points))
		for i, p := range sp.Points {
			ring[i] = p.Pos
		}
		res, err := triangulate.Triangulate(ring, nil)
		if err != nil {
			continue
		}
		appendTriangulation(&positions, &triangles, res)
	}

	return geometriesFromPaint(op.State.FillPaint, positions, triangles, &op.State, height, atl)
}

func strokeGeometry(dpr, height float64, atl *atlas.Atlas, op queue.DrawOp) ([]Geometry, error) {
	subpaths := op.Path.Flatten(dpr)
	params := stroke.Params{
		Width:      op.State.LineWidth,
		Cap:        op.State.LineCap,
		Join:       op.State.LineJoin,
		MiterLimit: op.State.MiterLimit,
		Dash:       op.State.Dash,
		DashOffset: op.State.DashOffset,
	}

	var positions []vec.Vec2
	var triangles [][3]int
	for _, sp := range subpaths {
		for _, r := range stroke.Expand(sp, params) {
			if len(r.Outer) < 3 {
				continue
			}
			res, err := triangulate.Triangulate(r.Outer, r.Inner)
			if err != nil {
				continue
			}
			appendTriangulation(&positions, &triangles, res)
		}
	}

	return geometriesFromPaint(op.State.StrokePaint, positions, triangles, &op.State, height, atl)
}

func appendTriangulation(positions *[]vec.Vec2, triangles *[][3]int, res triangulate.Result) {
	base := len(*positions)
	*positions = append(*positions, res.Points...)
	for _, t := range res.Triangles {
		*triangles = append(*triangles, [3]int{base + t.A, base + t.B, base + t.C})
	}
}

// GeneratePass1 runs geometry generation for every queued op in parallel,
// per spec.md §4.F step 1 ("Pass 1 parallel geometry"). height is the
// frame's device-pixel viewport height, needed to Y-flip gradient
// coordinates before they're packed into uniforms. atl resolves image
// patterns to their packed atlas rectangle; it may be nil (e.g. a scene
// using no image patterns). perOp[i] holds ops[i]'s geometry — usually one
// entry, or two when a shadow pass is emitted ahead of the main fill — and
// is concatenated in queue order before returning, so the result is
// deterministic.
func GeneratePass1(ctx context.Context, dpr, height float64, atl *atlas.Atlas, ops []queue.DrawOp) ([]Geometry, error) {
	perOp := make([][]Geometry, len(ops))
	g, gctx := errgroup.WithContext(ctx)
	for i, op := range ops {
		i, op := i, op
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			geoms, err := buildGeometry(dpr, height, atl, op)
			if err != nil {
				return err
			}
			perOp[i] = geoms
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var out []Geometry
	for _, geoms := range perOp {
		out = append(out, geoms...)
	}
	return out, nil
}

// MergedBatch is one Pass 2 output: a contiguous vertex/index range sharing
// a single shader bind, texture bind, and uniform set.
type MergedBatch struct {
	Key        BatchKey
	VertexData []float32 // textured or gradient layout, per Key.Shader
	IndexData  []uint16
	Uniforms   gpubackend.Uniforms
}

// MergePass2 merges geometries sharing a batch key into as few GPU
// batches as possible, per spec.md §4.F step 2. Only batches adjacent in
// queue order are combined, matching the original engine's single linear
// scan over its BatchArray.
func MergePass2(geoms []Geometry) []MergedBatch {
	var out []MergedBatch
	for _, geom := range geoms {
		if len(geom.Triangles) == 0 {
			continue
		}
		key := BatchKey{Shader: geom.ShaderKind, Texture: geom.TextureID, PaintID: uniformsKey(geom.Uniforms, geom.SolidColor)}

		if n := len(out); n > 0 && out[n-1].Key == key {
			appendGeometry(&out[n-1], geom)
			continue
		}
		b := MergedBatch{Key: key, Uniforms: geom.Uniforms}
		appendGeometry(&b, geom)
		out = append(out, b)
	}
	return out
}

// pixelWidth is one atlas pixel expressed in 16-bit texcoord units, per
// spec.md §4.F's textured vertex layout (texcoord = pos·pixelWidth for
// solid fills, texscale·pos for images).
const pixelWidth = float32(65535) / float32(atlas.MaxTextureSize)

func appendGeometry(b *MergedBatch, geom Geometry) {
	indexBase := vertexCount(b.VertexData, b.Key.Shader)

	r, g2, bl, a := colorToFloats(geom.SolidColor)
	u, v, offX, offY, texW, texH := texturingParams(geom)
	for _, p := range geom.Positions {
		switch b.Key.Shader {
		case gpubackend.ShaderTexture:
			b.VertexData = append(b.VertexData,
				float32(p.X), float32(p.Y),
				float32(p.X)*u, float32(p.Y)*v,
				offX, offY, texW, texH,
				r, g2, bl, a,
			)
		default:
			b.VertexData = append(b.VertexData, float32(p.X), float32(p.Y))
		}
	}
	for _, t := range geom.Triangles {
		// Reversed to CW (p2, p1, p0): the triangulator emits CCW
		// winding, but the backend's cull mode is CCW-front/cull-back
		// for the *original* untransformed polygon, so front faces must
		// be written CW here.
		b.IndexData = append(b.IndexData,
			uint16(indexBase+t[2]), uint16(indexBase+t[1]), uint16(indexBase+t[0]))
	}
}

// texturingParams returns the per-axis texcoord scale and the
// texoffset/texsize quad for geom, per spec.md §4.F: solid fills sample a
// 1x1 white texel scaled by pixelWidth, image patterns address their
// packed atlas rectangle with a scale derived from repeat mode.
func texturingParams(geom Geometry) (u, v, offX, offY, texW, texH float32) {
	if !geom.HasPatternRect {
		return pixelWidth, pixelWidth, 0, 0, 1, 1
	}
	r := geom.PatternRect
	u, v = 1, 1
	if !geom.PatternRepeatX && r.W > 0 {
		u = 1 / float32(r.W)
	}
	if !geom.PatternRepeatY && r.H > 0 {
		v = 1 / float32(r.H)
	}
	return u, v, float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
}

func vertexCount(data []float32, shader gpubackend.ShaderKind) int {
	stride := 2
	if shader == gpubackend.ShaderTexture {
		stride = 12
	}
	return len(data) / stride
}

// Submit drives backend through Pass 3, per spec.md §4.F step 3: upload
// the full frame's vertex/index buffers once, then one bind+draw per
// merged batch.
func Submit(backend gpubackend.Backend, batches []MergedBatch) {
	var allVerts []float32
	var allIdx []uint16
	offsets := make([]int, len(batches))

	for i, b := range batches {
		offsets[i] = len(allIdx)
		base := uint16(vertexCount(allVerts, b.Key.Shader))
		allVerts = append(allVerts, b.VertexData...)
		for _, idx := range b.IndexData {
			allIdx = append(allIdx, idx+base)
		}
	}

	backend.UploadVertices(allVerts)
	backend.UploadIndices(allIdx)

	for i, b := range batches {
		backend.BindShader(b.Key.Shader)
		backend.BindTexture(b.Key.Texture)
		backend.SetUniforms(b.Uniforms)
		backend.DrawIndexed(offsets[i], len(b.IndexData))
	}
}

// geometriesFromPaint builds the main draw geometry for p, prepending a
// shadow pass geometry when st's shadow properties call for one, per
// spec.md §4.F ("If paint is texture and shadowColor ≠ transparent with
// non-zero offset: first emit a shadow pass").
func geometriesFromPaint(p paint.Paint, positions []vec.Vec2, triangles [][3]int, st *paint.ContextState, height float64, atl *atlas.Atlas) ([]Geometry, error) {
	main, err := geometryFromPaint(p, positions, triangles, st.GlobalAlpha, height, atl)
	if err != nil {
		return nil, err
	}
	var out []Geometry
	if shadow := shadowGeometry(main, positions, triangles, st); shadow != nil {
		out = append(out, *shadow)
	}
	return append(out, main), nil
}

// shadowGeometry returns the shadow-pass geometry for main, or nil if main
// isn't a texture paint or the current state's shadow is a no-op.
func shadowGeometry(main Geometry, positions []vec.Vec2, triangles [][3]int, st *paint.ContextState) *Geometry {
	if main.ShaderKind != gpubackend.ShaderTexture {
		return nil
	}
	sc := st.ShadowColor
	if sc.A == 0 || (st.ShadowOffsetX == 0 && st.ShadowOffsetY == 0) {
		return nil
	}
	shifted := make([]vec.Vec2, len(positions))
	for i, p := range positions {
		shifted[i] = vec.Vec2{X: p.X + st.ShadowOffsetX, Y: p.Y + st.ShadowOffsetY}
	}
	alpha := uint8(int(sc.A) * int(main.SolidColor.A) / 255)
	return &Geometry{
		Positions:  shifted,
		Triangles:  triangles,
		ShaderKind: gpubackend.ShaderTexture,
		SolidColor: color.RGBA{R: sc.R, G: sc.G, B: sc.B, A: alpha},
		Uniforms:   gpubackend.Uniforms{GlobalAlpha: main.Uniforms.GlobalAlpha},
	}
}

// geometryFromPaint packs p's fill source into a Geometry. height is the
// frame's device-pixel viewport height, used to Y-flip gradient
// coordinates (the shader's pixel origin is bottom-left) before deriving
// the per-batch gradient uniforms spec.md §4.F names.
func geometryFromPaint(p paint.Paint, positions []vec.Vec2, triangles [][3]int, alpha, height float64, atl *atlas.Atlas) (Geometry, error) {
	geom := Geometry{Positions: positions, Triangles: triangles, Uniforms: gpubackend.Uniforms{GlobalAlpha: float32(alpha)}}
	switch p.Kind {
	case paint.KindSolid:
		geom.ShaderKind = gpubackend.ShaderTexture
		geom.SolidColor = p.Solid
	case paint.KindLinearGradient:
		geom.ShaderKind = gpubackend.ShaderGradientLinear
		start, end := flipY(p.Start, height), flipY(p.End, height)
		geom.Uniforms.GradientStart = vec2ToF32(start)
		geom.Uniforms.GradientEnd = vec2ToF32(end)
		dtx, dty := end.X-start.X, end.Y-start.Y
		geom.Uniforms.GradientDelta = [2]float32{float32(dtx), float32(dty)}
		geom.Uniforms.GradientLenSq = float32(dtx*dtx + dty*dty)
		fillStops(&geom.Uniforms, p.Stops)
	case paint.KindRadialGradient:
		geom.ShaderKind = gpubackend.ShaderGradientRadial
		focal, center := flipY(p.Start, height), flipY(p.End, height)
		geom.Uniforms.GradientStart = vec2ToF32(focal)
		geom.Uniforms.GradientEnd = vec2ToF32(center)
		dtx, dty := focal.X-center.X, focal.Y-center.Y
		geom.Uniforms.GradientDelta = [2]float32{float32(dtx), float32(dty)}
		dr := p.EndR - p.StartR
		geom.Uniforms.GradientR0 = float32(p.StartR)
		geom.Uniforms.GradientDR = float32(dr)
		geom.Uniforms.GradientA = float32(dtx*dtx + dty*dty - dr*dr)
		fillStops(&geom.Uniforms, p.Stops)
	case paint.KindImagePattern:
		geom.ShaderKind = gpubackend.ShaderTexture
		geom.TextureID = p.PatternImageID
		geom.SolidColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
		geom.PatternRepeatX = p.RepeatX
		geom.PatternRepeatY = p.RepeatY
		if atl != nil {
			if r, ok := atl.Lookup(p.PatternImageID); ok {
				geom.PatternRect = r
				geom.HasPatternRect = true
			}
		}
	default:
		return Geometry{}, fmt.Errorf("batch: unknown paint kind %v", p.Kind)
	}
	return geom, nil
}

// flipY mirrors v's Y coordinate into the shader's bottom-left-origin
// space, per spec.md §4.F's gradient Y-flip note.
func flipY(v vec.Vec2, height float64) vec.Vec2 { return vec.Vec2{X: v.X, Y: height - v.Y} }

func vec2ToF32(v vec.Vec2) [2]float32 { return [2]float32{float32(v.X), float32(v.Y)} }

func fillStops(u *gpubackend.Uniforms, stops []paint.Stop) {
	for _, s := range stops {
		r, g, b, a := colorToFloats(s.Color)
		u.StopColors = append(u.StopColors, [4]float32{r, g, b, a})
		u.StopOffsets = append(u.StopOffsets, float32(s.Offset))
	}
}

// uniformsKey builds BatchKey.PaintID: the full gradient uniform set plus
// the solid/tint color, so solid fills of different colors (whose
// Uniforms would otherwise be identical zero values) never share a key.
func uniformsKey(u gpubackend.Uniforms, solid color.RGBA) string {
	return fmt.Sprintf("%+v|%v", u, solid)
}
