// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the settings of a gadget host, which are
// read from TOML or YAML files.
package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/gadget/base/logx"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the tunables of a view and its host.
type Settings struct {

	// DefaultWidth is the width of a view whose width is unset.
	DefaultWidth float64 `toml:"default_width" yaml:"default_width"`

	// DefaultHeight is the height of a view whose height is unset.
	DefaultHeight float64 `toml:"default_height" yaml:"default_height"`

	// Zoom is the zoom factor of the graphics. Values of 0 or less
	// mean 1.
	Zoom float64 `toml:"zoom" yaml:"zoom"`

	// ClipRatio is the merge ratio of the damage region.
	ClipRatio float64 `toml:"clip_ratio" yaml:"clip_ratio"`

	// CanvasCache enables the canvas cache of views.
	CanvasCache bool `toml:"canvas_cache" yaml:"canvas_cache"`

	// ClipRegion enables partial redraws through the damage region.
	ClipRegion bool `toml:"clip_region" yaml:"clip_region"`

	// DebugClipRegion draws the damage rectangles over each frame.
	DebugClipRegion bool `toml:"debug_clip_region" yaml:"debug_clip_region"`

	// AnimationInterval is the interval of animation timers in
	// milliseconds.
	AnimationInterval int `toml:"animation_interval" yaml:"animation_interval"`

	// MinTimerInterval is the smallest interval between two calls of
	// the same timer in milliseconds.
	MinTimerInterval int `toml:"min_timer_interval" yaml:"min_timer_interval"`

	// LogLevel is the log level, such as "debug" or "warn".
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// Options is the path of the option store. Options are kept in
	// memory if it is empty.
	Options string `toml:"options" yaml:"options"`
}

// Default returns the default settings.
func Default() *Settings {
	return &Settings{
		DefaultWidth:      320,
		DefaultHeight:     240,
		Zoom:              1,
		ClipRatio:         0.9,
		CanvasCache:       true,
		ClipRegion:        true,
		AnimationInterval: 33,
		MinTimerInterval:  5,
		LogLevel:          "warn",
	}
}

// Format is a settings file format.
type Format int32

const (
	TOML Format = iota
	YAML
)

// FormatOf returns the format of a file from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("config: unknown settings format %q", filepath.Ext(path))
}

// Open reads settings from the file over the defaults.
func Open(path string) (*Settings, error) {
	s := Default()
	if err := s.Open(path); err != nil {
		return nil, err
	}
	return s, nil
}

// Open reads the file into s. Fields missing from the file keep
// their values.
func (s *Settings) Open(path string) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return s.Read(b, f)
}

// Read decodes b in the given format into s.
func (s *Settings) Read(b []byte, f Format) error {
	var err error
	switch f {
	case YAML:
		err = yaml.Unmarshal(b, s)
	default:
		err = toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields().Decode(s)
	}
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	s.Fix()
	return nil
}

// Save writes s to the file in the format given by its extension.
func (s *Settings) Save(path string) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	var b []byte
	switch f {
	case YAML:
		b, err = yaml.Marshal(s)
	default:
		b, err = toml.Marshal(s)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Fix replaces out of range values by their defaults.
func (s *Settings) Fix() {
	d := Default()
	if s.DefaultWidth <= 0 {
		s.DefaultWidth = d.DefaultWidth
	}
	if s.DefaultHeight <= 0 {
		s.DefaultHeight = d.DefaultHeight
	}
	if s.Zoom <= 0 {
		s.Zoom = 1
	}
	if s.ClipRatio <= 0 || s.ClipRatio > 1 {
		s.ClipRatio = d.ClipRatio
	}
	if s.AnimationInterval <= 0 {
		s.AnimationInterval = d.AnimationInterval
	}
	if s.MinTimerInterval < 0 {
		s.MinTimerInterval = 0
	}
}

// Level returns the log level of the settings, or [logx.UserLevel]
// if it is not a known level.
func (s *Settings) Level() slog.Level {
	if lv, ok := logx.LevelFromString(s.LogLevel); ok {
		return lv
	}
	return logx.UserLevel.Level()
}
