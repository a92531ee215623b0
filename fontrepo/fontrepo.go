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

// Package fontrepo loads a single binary font-repository file and matches
// (family, weight, italic) queries against it — spec component 4.J.
package fontrepo

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

const magic uint32 = 0x544e5546 // "FUNT"
const version uint32 = 1

// Glyph is one character's metrics and atlas-image reference within a
// Font, enough to emit a textured quad per spec component 4.F.
type Glyph struct {
	Rune           rune
	AdvanceWidth   float64
	BearingX       float64
	BearingY       float64
	Width, Height  float64
	ImageID        int
}

// Font is one (family, weight, italic) face loaded from the repository.
type Font struct {
	Family string
	Weight int
	Italic bool
	glyphs map[rune]Glyph
}

// Glyph looks up r's metrics within this font.
func (f *Font) Glyph(r rune) (Glyph, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

// Repository is the set of fonts loaded from one binary file.
type Repository struct {
	fonts []*Font
}

// Load reads the length-prefixed binary schema: magic, version, font
// count, then per font: family (length-prefixed string), weight (uint32),
// italic (byte), glyph count, then per glyph a rune and five float64
// metrics plus an image ID.
func Load(r io.Reader) (*Repository, error) {
	br := bufio.NewReader(r)

	var gotMagic, gotVersion, fontCount uint32
	for _, v := range []*uint32{&gotMagic, &gotVersion, &fontCount} {
		if err := binary.Read(br, binary.LittleEndian, v); err != nil {
			return nil, fmt.Errorf("fontrepo: read header: %w", err)
		}
	}
	if gotMagic != magic {
		return nil, fmt.Errorf("fontrepo: bad magic %x", gotMagic)
	}
	if gotVersion != version {
		return nil, fmt.Errorf("fontrepo: unsupported version %d", gotVersion)
	}

	repo := &Repository{}
	for i := uint32(0); i < fontCount; i++ {
		f, err := readFont(br)
		if err != nil {
			return nil, fmt.Errorf("fontrepo: font %d: %w", i, err)
		}
		repo.fonts = append(repo.fonts, f)
	}
	return repo, nil
}

func readFont(br *bufio.Reader) (*Font, error) {
	family, err := readString(br)
	if err != nil {
		return nil, err
	}
	var weight uint32
	if err := binary.Read(br, binary.LittleEndian, &weight); err != nil {
		return nil, err
	}
	italicByte, err := br.ReadByte()
	if err != nil {
		return nil, err
	}
	var glyphCount uint32
	if err := binary.Read(br, binary.LittleEndian, &glyphCount); err != nil {
		return nil, err
	}

	f := &Font{Family: family, Weight: int(weight), Italic: italicByte != 0, glyphs: make(map[rune]Glyph, glyphCount)}
	for i := uint32(0); i < glyphCount; i++ {
		g, err := readGlyph(br)
		if err != nil {
			return nil, err
		}
		f.glyphs[g.Rune] = g
	}
	return f, nil
}

func readGlyph(br *bufio.Reader) (Glyph, error) {
	var runeVal int32
	var metrics [5]float64
	var imageID int32

	if err := binary.Read(br, binary.LittleEndian, &runeVal); err != nil {
		return Glyph{}, err
	}
	if err := binary.Read(br, binary.LittleEndian, &metrics); err != nil {
		return Glyph{}, err
	}
	if err := binary.Read(br, binary.LittleEndian, &imageID); err != nil {
		return Glyph{}, err
	}
	return Glyph{
		Rune: rune(runeVal), AdvanceWidth: metrics[0], BearingX: metrics[1],
		BearingY: metrics[2], Width: metrics[3], Height: metrics[4], ImageID: int(imageID),
	}, nil
}

func readString(br *bufio.Reader) (string, error) {
	var length uint32
	if err := binary.Read(br, binary.LittleEndian, &length); err != nil {
		return "", err
	}
	buf := make([]byte, length)
	if _, err := io.ReadFull(br, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// Find implements spec.md §6's matching rule: an exact (family, weight,
// italic) match; else the first same-family candidate with a weight not
// exceeding the request and matching italic; else the first same-family
// candidate; else nil.
func (repo *Repository) Find(family string, weight int, italic bool) *Font {
	var sameFamily []*Font
	for _, f := range repo.fonts {
		if f.Family != family {
			continue
		}
		sameFamily = append(sameFamily, f)
		if f.Weight == weight && f.Italic == italic {
			return f
		}
	}

	for _, f := range sameFamily {
		if f.Italic == italic && f.Weight <= weight {
			return f
		}
	}

	if len(sameFamily) > 0 {
		return sameFamily[0]
	}
	return nil
}
