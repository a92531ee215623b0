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

package fontrepo

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func writeString(buf *bytes.Buffer, s string) {
	binary.Write(buf, binary.LittleEndian, uint32(len(s)))
	buf.WriteString(s)
}

func writeFont(buf *bytes.Buffer, family string, weight int, italic bool, glyphs map[rune][6]float64) {
	writeString(buf, family)
	binary.Write(buf, binary.LittleEndian, uint32(weight))
	if italic {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
	binary.Write(buf, binary.LittleEndian, uint32(len(glyphs)))
	for r, m := range glyphs {
		binary.Write(buf, binary.LittleEndian, int32(r))
		binary.Write(buf, binary.LittleEndian, [5]float64{m[0], m[1], m[2], m[3], m[4]})
		binary.Write(buf, binary.LittleEndian, int32(m[5]))
	}
}

func buildRepoBytes(t *testing.T, fonts []struct {
	family string
	weight int
	italic bool
}) []byte {
	t.Helper()
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, magic)
	binary.Write(&buf, binary.LittleEndian, version)
	binary.Write(&buf, binary.LittleEndian, uint32(len(fonts)))
	for _, f := range fonts {
		writeFont(&buf, f.family, f.weight, f.italic, map[rune][6]float64{
			'A': {10, 1, 8, 9, 10, 0},
		})
	}
	return buf.Bytes()
}

func TestLoadAndExactMatch(t *testing.T) {
	data := buildRepoBytes(t, []struct {
		family string
		weight int
		italic bool
	}{
		{"Sans", 400, false},
		{"Sans", 700, false},
	})

	repo, err := Load(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	f := repo.Find("Sans", 700, false)
	if f == nil || f.Weight != 700 {
		t.Fatalf("expected exact weight-700 match, got %+v", f)
	}
}

func TestFindFallsBackToLesserWeight(t *testing.T) {
	data := buildRepoBytes(t, []struct {
		family string
		weight int
		italic bool
	}{
		{"Sans", 400, false},
	})
	repo, _ := Load(bytes.NewReader(data))

	f := repo.Find("Sans", 700, false)
	if f == nil || f.Weight != 400 {
		t.Fatalf("expected fallback to weight 400, got %+v", f)
	}
}

func TestFindFallsBackToAnySameFamily(t *testing.T) {
	data := buildRepoBytes(t, []struct {
		family string
		weight int
		italic bool
	}{
		{"Sans", 700, true},
	})
	repo, _ := Load(bytes.NewReader(data))

	// Requesting weight 400 non-italic: no candidate has weight<=400 or
	// matching italic, so it must fall back to "any same family".
	f := repo.Find("Sans", 400, false)
	if f == nil || f.Weight != 700 {
		t.Fatalf("expected any-same-family fallback, got %+v", f)
	}
}

func TestFindUnknownFamilyReturnsNil(t *testing.T) {
	data := buildRepoBytes(t, []struct {
		family string
		weight int
		italic bool
	}{
		{"Sans", 400, false},
	})
	repo, _ := Load(bytes.NewReader(data))

	if f := repo.Find("Serif", 400, false); f != nil {
		t.Fatalf("expected nil for unknown family, got %+v", f)
	}
}

func TestGlyphLookup(t *testing.T) {
	data := buildRepoBytes(t, []struct {
		family string
		weight int
		italic bool
	}{
		{"Sans", 400, false},
	})
	repo, _ := Load(bytes.NewReader(data))
	f := repo.Find("Sans", 400, false)

	g, ok := f.Glyph('A')
	if !ok {
		t.Fatal("expected glyph 'A' to be present")
	}
	if g.AdvanceWidth != 10 {
		t.Fatalf("expected advance width 10, got %v", g.AdvanceWidth)
	}

	if _, ok := f.Glyph('Z'); ok {
		t.Fatal("expected glyph 'Z' to be absent")
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(0))
	binary.Write(&buf, binary.LittleEndian, version)
	binary.Write(&buf, binary.LittleEndian, uint32(0))

	if _, err := Load(bytes.NewReader(buf.Bytes())); err == nil {
		t.Fatal("expected an error for bad magic")
	}
}
