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

package atlas

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestPackPlacesTwoImagesWithoutOverlap(t *testing.T) {
	a := New(64)
	r1, err := a.Pack(1, solidImage(10, 10, color.White))
	if err != nil {
		t.Fatal(err)
	}
	r2, err := a.Pack(2, solidImage(10, 10, color.White))
	if err != nil {
		t.Fatal(err)
	}
	if overlap(r1, r2) {
		t.Fatalf("expected non-overlapping rects, got %+v and %+v", r1, r2)
	}
}

func overlap(a, b Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func TestLookupReturnsPackedRect(t *testing.T) {
	a := New(64)
	placed, _ := a.Pack(7, solidImage(5, 5, color.Black))
	got, ok := a.Lookup(7)
	if !ok {
		t.Fatal("expected lookup to find imageID 7")
	}
	if got != placed {
		t.Fatalf("lookup rect %+v != packed rect %+v", got, placed)
	}
}

func TestLookupMissingImageFails(t *testing.T) {
	a := New(64)
	if _, ok := a.Lookup(999); ok {
		t.Fatal("expected lookup of an unpacked image to fail")
	}
}

func TestDecoderDrainReturnsSubmittedResults(t *testing.T) {
	d := NewDecoder()
	png := pngBytes(t, solidImage(2, 2, color.White))
	d.Submit(1, png)
	d.Wait()

	results := d.Drain()
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Err != nil {
		t.Fatalf("unexpected decode error: %v", results[0].Err)
	}
	if results[0].ImageID != 1 {
		t.Fatalf("expected ImageID 1, got %d", results[0].ImageID)
	}
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}
