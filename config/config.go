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

// Package config loads the optional vgcanvas.yaml tunables file — spec
// component §6 — and exposes env var overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vecgpu/vecgpu/pathgeom"
)

// Config mirrors the original engine's compile-time tunables
// (TUNIS_CURVE_RECURSION_LIMIT, TUNIS_MAX_TEXTURE_SIZE, TUNIS_VERTEX_MAX),
// exposed here as runtime-configurable values.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
}

// EngineConfig holds the engine tunables; Apply feeds CurveRecursionLimit
// to pathgeom, and the other two fields are not applied anywhere.
type EngineConfig struct {
	CurveRecursionLimit int `yaml:"curveRecursionLimit,omitempty"`
	MaxTextureSize      int `yaml:"maxTextureSize,omitempty"`
	VertexMax           int `yaml:"vertexMax,omitempty"`
}

// DefaultConfig matches the original engine's compiled-in defaults.
func DefaultConfig() Config {
	return Config{Engine: EngineConfig{
		CurveRecursionLimit: 32,
		MaxTextureSize:      2048,
		VertexMax:           16384,
	}}
}

// LoadOptional reads vgcanvas.yaml from dir if present, falling back to
// DefaultConfig when the file does not exist; environment overrides are
// applied on top in both cases.
func LoadOptional(dir string) (Config, error) {
	path := filepath.Join(dir, "vgcanvas.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := DefaultConfig()
			applyEnvOverrides(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read vgcanvas.yaml: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse vgcanvas.yaml: %w", err)
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := envInt("VGCANVAS_CURVE_RECURSION_LIMIT"); ok {
		cfg.Engine.CurveRecursionLimit = v
	}
	if v, ok := envInt("VGCANVAS_MAX_TEXTURE_SIZE"); ok {
		cfg.Engine.MaxTextureSize = v
	}
	if v, ok := envInt("VGCANVAS_VERTEX_MAX"); ok {
		cfg.Engine.VertexMax = v
	}
}

func envInt(name string) (int, bool) {
	s, ok := os.LookupEnv(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Apply pushes cfg's values onto the package-level tunables that consume
// them directly, currently just pathgeom's curve recursion limit.
func Apply(cfg Config) {
	if cfg.Engine.CurveRecursionLimit > 0 {
		pathgeom.CurveRecursionLimit = cfg.Engine.CurveRecursionLimit
	}
}
