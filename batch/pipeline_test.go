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
	"image/color"
	"testing"

	"seehuhn.de/go/geom/vec"

	"github.com/vecgpu/vecgpu/gpubackend"
	"github.com/vecgpu/vecgpu/paint"
	"github.com/vecgpu/vecgpu/pathgeom"
	"github.com/vecgpu/vecgpu/queue"
)

func rectOp(x, y, w, h float64, c color.RGBA) queue.DrawOp {
	p := pathgeom.NewPath()
	p.Rect(x, y, w, h)
	state := paint.DefaultState()
	state.FillPaint = paint.NewSolid(c)
	return queue.DrawOp{Op: queue.OpFill, Path: p, State: state}
}

func TestTwoIdenticalColorRectsMergeIntoOneBatch(t *testing.T) {
	ops := []queue.DrawOp{
		rectOp(0, 0, 10, 10, color.RGBA{R: 255, A: 255}),
		rectOp(20, 0, 10, 10, color.RGBA{R: 255, A: 255}),
	}
	geoms, err := GeneratePass1(context.Background(), 1.0, 100, nil, ops)
	if err != nil {
		t.Fatal(err)
	}
	batches := MergePass2(geoms)
	if len(batches) != 1 {
		t.Fatalf("expected 1 merged batch for two same-color rects, got %d", len(batches))
	}
	if len(batches[0].IndexData) != 12 {
		t.Fatalf("expected 12 indices (2 rects x 2 triangles x 3), got %d", len(batches[0].IndexData))
	}
}

func TestDifferentColorRectsProduceSeparateBatches(t *testing.T) {
	ops := []queue.DrawOp{
		rectOp(0, 0, 10, 10, color.RGBA{R: 255, A: 255}),
		rectOp(20, 0, 10, 10, color.RGBA{G: 255, A: 255}),
	}
	geoms, err := GeneratePass1(context.Background(), 1.0, 100, nil, ops)
	if err != nil {
		t.Fatal(err)
	}
	batches := MergePass2(geoms)
	if len(batches) != 2 {
		t.Fatalf("expected 2 batches for differently-colored rects, got %d", len(batches))
	}
}

func TestSubmitIssuesOneDrawPerBatch(t *testing.T) {
	ops := []queue.DrawOp{
		rectOp(0, 0, 10, 10, color.RGBA{R: 255, A: 255}),
		rectOp(20, 0, 10, 10, color.RGBA{G: 255, A: 255}),
	}
	geoms, err := GeneratePass1(context.Background(), 1.0, 100, nil, ops)
	if err != nil {
		t.Fatal(err)
	}
	batches := MergePass2(geoms)

	rec := gpubackend.NewRecorder()
	Submit(rec, batches)

	if got := rec.DrawCallCount(); got != 2 {
		t.Fatalf("expected 2 draw calls, got %d", got)
	}
}

func TestRedSquareProducesNonEmptyGeometry(t *testing.T) {
	ops := []queue.DrawOp{rectOp(0, 0, 50, 50, color.RGBA{R: 255, A: 255})}
	geoms, err := GeneratePass1(context.Background(), 1.0, 100, nil, ops)
	if err != nil {
		t.Fatal(err)
	}
	if len(geoms[0].Triangles) == 0 {
		t.Fatal("expected triangles for a filled square")
	}
}

func TestIndicesAreReversedFromTriangulatorOrder(t *testing.T) {
	ops := []queue.DrawOp{rectOp(0, 0, 10, 10, color.RGBA{R: 255, A: 255})}
	geoms, err := GeneratePass1(context.Background(), 1.0, 100, nil, ops)
	if err != nil {
		t.Fatal(err)
	}
	if len(geoms[0].Triangles) == 0 {
		t.Fatal("expected at least one triangle")
	}
	batches := MergePass2(geoms)
	idx := batches[0].IndexData
	for i, tri := range geoms[0].Triangles {
		got := [3]uint16{idx[i*3], idx[i*3+1], idx[i*3+2]}
		// appendGeometry must emit (p2,p1,p0), reversing the
		// triangulator's (p0,p1,p2) order, per spec.md §4.F's cull-mode
		// note.
		want := [3]uint16{uint16(tri[2]), uint16(tri[1]), uint16(tri[0])}
		if got != want {
			t.Fatalf("triangle %d: expected reversed winding %v, got %v", i, want, got)
		}
	}
}

func TestLinearGradientComputesDeltaAndLenSqWithYFlip(t *testing.T) {
	state := paint.DefaultState()
	state.FillPaint = paint.NewLinearGradient(
		vec2(0, 0), vec2(10, 0),
		[]paint.Stop{{Offset: 0, Color: color.RGBA{A: 255}}, {Offset: 1, Color: color.RGBA{R: 255, A: 255}}},
	)
	p := pathgeom.NewPath()
	p.Rect(0, 0, 10, 10)
	ops := []queue.DrawOp{{Op: queue.OpFill, Path: p, State: state}}

	geoms, err := GeneratePass1(context.Background(), 1.0, 100, nil, ops)
	if err != nil {
		t.Fatal(err)
	}
	u := geoms[0].Uniforms
	// height=100: start (0,0) flips to (0,100), end (10,0) flips to (10,100).
	if u.GradientStart != [2]float32{0, 100} {
		t.Fatalf("expected Y-flipped start (0,100), got %v", u.GradientStart)
	}
	if u.GradientEnd != [2]float32{10, 100} {
		t.Fatalf("expected Y-flipped end (10,100), got %v", u.GradientEnd)
	}
	if u.GradientDelta != [2]float32{10, 0} {
		t.Fatalf("expected dt=(10,0), got %v", u.GradientDelta)
	}
	if u.GradientLenSq != 100 {
		t.Fatalf("expected lenSq=100, got %v", u.GradientLenSq)
	}
}

func TestShadowPassEmitsTranslatedGeometryBeforeMain(t *testing.T) {
	state := paint.DefaultState()
	state.FillPaint = paint.NewSolid(color.RGBA{R: 255, A: 255})
	state.ShadowColor = color.RGBA{A: 128}
	state.ShadowOffsetX, state.ShadowOffsetY = 4, 4
	ops := []queue.DrawOp{rectOpWithState(0, 0, 10, 10, state)}

	geoms, err := GeneratePass1(context.Background(), 1.0, 100, nil, ops)
	if err != nil {
		t.Fatal(err)
	}
	if len(geoms) != 2 {
		t.Fatalf("expected shadow + main geometry, got %d entries", len(geoms))
	}
	shadow, main := geoms[0], geoms[1]
	if shadow.SolidColor.A == 0 {
		t.Fatal("expected non-transparent shadow alpha")
	}
	if shadow.Positions[0].X != main.Positions[0].X+4 || shadow.Positions[0].Y != main.Positions[0].Y+4 {
		t.Fatalf("expected shadow geometry translated by (4,4), got shadow=%v main=%v", shadow.Positions[0], main.Positions[0])
	}
}

func TestNoShadowPassWhenShadowColorTransparent(t *testing.T) {
	ops := []queue.DrawOp{rectOp(0, 0, 10, 10, color.RGBA{R: 255, A: 255})}
	geoms, err := GeneratePass1(context.Background(), 1.0, 100, nil, ops)
	if err != nil {
		t.Fatal(err)
	}
	if len(geoms) != 1 {
		t.Fatalf("expected only the main geometry with no shadow configured, got %d entries", len(geoms))
	}
}

func rectOpWithState(x, y, w, h float64, state paint.ContextState) queue.DrawOp {
	p := pathgeom.NewPath()
	p.Rect(x, y, w, h)
	return queue.DrawOp{Op: queue.OpFill, Path: p, State: state}
}

func vec2(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
