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

package paint

import (
	"image/color"
	"testing"
)

func TestSaveRestoreRoundTrips(t *testing.T) {
	s := NewStack()
	s.Current().LineWidth = 1

	s.Save()
	s.Current().LineWidth = 5
	s.Current().FillPaint = NewSolid(color.RGBA{R: 255, A: 255})

	if s.Current().LineWidth != 5 {
		t.Fatalf("expected mutated state before restore, got %v", s.Current().LineWidth)
	}

	s.Restore()
	if s.Current().LineWidth != 1 {
		t.Fatalf("expected LineWidth restored to 1, got %v", s.Current().LineWidth)
	}
	if s.Current().FillPaint.Kind != KindSolid || s.Current().FillPaint.Solid.R != 0 {
		t.Fatalf("expected fill paint restored to default black, got %+v", s.Current().FillPaint)
	}
}

func TestRestoreOnEmptyStackIsNoOp(t *testing.T) {
	s := NewStack()
	s.Current().LineWidth = 3
	s.Restore()
	if s.Current().LineWidth != 3 {
		t.Fatal("expected restore on empty stack to be a no-op")
	}
}

func TestSaveIsolatesDashSlice(t *testing.T) {
	s := NewStack()
	s.Current().Dash = []float64{1, 2}
	s.Save()
	s.Current().Dash[0] = 99
	s.Restore()
	if s.Current().Dash[0] != 1 {
		t.Fatalf("expected saved dash slice to be unaffected, got %v", s.Current().Dash)
	}
}

func TestDepthTracksNesting(t *testing.T) {
	s := NewStack()
	if s.Depth() != 0 {
		t.Fatal("expected depth 0 initially")
	}
	s.Save()
	s.Save()
	if s.Depth() != 2 {
		t.Fatalf("expected depth 2, got %d", s.Depth())
	}
	s.Restore()
	if s.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", s.Depth())
	}
}
