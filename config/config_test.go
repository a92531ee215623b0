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

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOptionalMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Engine.CurveRecursionLimit != 32 {
		t.Fatalf("expected default recursion limit 32, got %d", cfg.Engine.CurveRecursionLimit)
	}
}

func TestLoadOptionalReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := "engine:\n  maxTextureSize: 4096\n"
	if err := os.WriteFile(filepath.Join(dir, "vgcanvas.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Engine.MaxTextureSize != 4096 {
		t.Fatalf("expected maxTextureSize 4096, got %d", cfg.Engine.MaxTextureSize)
	}
	if cfg.Engine.CurveRecursionLimit != 32 {
		t.Fatalf("expected unset fields to keep defaults, got %d", cfg.Engine.CurveRecursionLimit)
	}
}

func TestEnvOverrideWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	content := "engine:\n  vertexMax: 1000\n"
	os.WriteFile(filepath.Join(dir, "vgcanvas.yaml"), []byte(content), 0o644)

	t.Setenv("VGCANVAS_VERTEX_MAX", "2048")
	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Engine.VertexMax != 2048 {
		t.Fatalf("expected env override 2048, got %d", cfg.Engine.VertexMax)
	}
}
