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
	"fmt"
	"image"
	"image/draw"

	lru "github.com/hashicorp/golang-lru"
	"github.com/disintegration/imaging"
)

// MaxTextureSize bounds the atlas's width/height, matching the original
// engine's TUNIS_MAX_TEXTURE_SIZE default.
const MaxTextureSize = 2048

// Padding is the border of duplicated edge pixels left around every
// packed sub-image, preventing bilinear sampling from bleeding into a
// neighboring sprite.
const Padding = 1

// Rect is a packed sub-image's location within the atlas.
type Rect struct {
	X, Y, W, H int
}

// shelf is one row of the shelf-packing algorithm.
type shelf struct {
	y, height, cursorX int
}

// Atlas packs decoded images into a single large image using a shelf
// packer, evicting least-recently-used entries via an LRU cache once full.
type Atlas struct {
	size   int
	img    *image.RGBA
	shelves []shelf
	rects  *lru.Cache // imageID -> Rect
}

// New returns an empty atlas of the given square size (capped to
// MaxTextureSize).
func New(size int) *Atlas {
	if size > MaxTextureSize {
		size = MaxTextureSize
	}
	cache, _ := lru.New(4096)
	return &Atlas{
		size: size,
		img:  image.NewRGBA(image.Rect(0, 0, size, size)),
		rects: cache,
	}
}

// Lookup returns the packed rectangle for imageID, marking it as recently
// used, and whether it is currently resident.
func (a *Atlas) Lookup(imageID int) (Rect, bool) {
	v, ok := a.rects.Get(imageID)
	if !ok {
		return Rect{}, false
	}
	return v.(Rect), true
}

// Pack composites img into the atlas, evicting the least-recently-used
// entry if the shelf packer runs out of room, and returns the destination
// rectangle (excluding the padding border). img is not resized; it is
// copied pixel-for-pixel. imaging.Clone
// gives a normalized image.NRGBA regardless of the source's concrete type,
// matching what the original engine's stb_image decode path always
// produced (a single consistent pixel format feeding the GL upload).
func (a *Atlas) Pack(imageID int, img image.Image) (Rect, error) {
	normalized := imaging.Clone(img)
	w, h := normalized.Bounds().Dx(), normalized.Bounds().Dy()
	paddedW, paddedH := w+2*Padding, h+2*Padding

	rect, ok := a.findShelf(paddedW, paddedH)
	for !ok {
		if !a.evictOne() {
			return Rect{}, fmt.Errorf("atlas: no room for a %dx%d image and nothing left to evict", w, h)
		}
		rect, ok = a.findShelf(paddedW, paddedH)
	}

	dst := image.Rect(rect.X+Padding, rect.Y+Padding, rect.X+Padding+w, rect.Y+Padding+h)
	draw.Draw(a.img, dst, normalized, image.Point{}, draw.Src)
	a.bleedEdges(dst)

	placed := Rect{X: rect.X + Padding, Y: rect.Y + Padding, W: w, H: h}
	a.rects.Add(imageID, placed)
	return placed, nil
}

// bleedEdges duplicates the outermost row/column of pixels into the
// padding border so texture filtering never samples a neighboring sprite.
func (a *Atlas) bleedEdges(dst image.Rectangle) {
	b := a.img.Bounds()
	if dst.Min.X > b.Min.X {
		for y := dst.Min.Y; y < dst.Max.Y; y++ {
			a.img.Set(dst.Min.X-1, y, a.img.At(dst.Min.X, y))
		}
	}
	if dst.Max.X < b.Max.X {
		for y := dst.Min.Y; y < dst.Max.Y; y++ {
			a.img.Set(dst.Max.X, y, a.img.At(dst.Max.X-1, y))
		}
	}
	if dst.Min.Y > b.Min.Y {
		for x := dst.Min.X; x < dst.Max.X; x++ {
			a.img.Set(x, dst.Min.Y-1, a.img.At(x, dst.Min.Y))
		}
	}
	if dst.Max.Y < b.Max.Y {
		for x := dst.Min.X; x < dst.Max.X; x++ {
			a.img.Set(x, dst.Max.Y, a.img.At(x, dst.Max.Y-1))
		}
	}
}

func (a *Atlas) findShelf(w, h int) (Rect, bool) {
	for i := range a.shelves {
		s := &a.shelves[i]
		if h <= s.height && s.cursorX+w <= a.size {
			r := Rect{X: s.cursorX, Y: s.y, W: w, H: h}
			s.cursorX += w
			return r, true
		}
	}
	y := 0
	if n := len(a.shelves); n > 0 {
		y = a.shelves[n-1].y + a.shelves[n-1].height
	}
	if y+h > a.size || w > a.size {
		return Rect{}, false
	}
	a.shelves = append(a.shelves, shelf{y: y, height: h, cursorX: w})
	return Rect{X: 0, Y: y, W: w, H: h}, true
}

// evictOne removes the least-recently-used packed image, per spec.md
// §4.I's LRU eviction policy, but does not reclaim its shelf space (shelf
// packers do not support free-list reuse) — it only allows Lookup to
// report the entry as gone so the caller re-submits a decode for it.
func (a *Atlas) evictOne() bool {
	_, _, ok := a.rects.RemoveOldest()
	return ok
}

// Image returns the composited atlas texture.
func (a *Atlas) Image() *image.RGBA { return a.img }
