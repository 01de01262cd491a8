// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphics

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is an opaque RGB color with components in [0, 1].
// Opacity is always carried separately.
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}

	// Middle is the neutral color for [Image.MultiplyColor].
	Middle = Color{0.5, 0.5, 0.5}
)

// RGB returns a [Color] from 8 bit components.
func RGB(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

// NRGBA returns the color with the given opacity as a non premultiplied
// Go color.
func (c Color) NRGBA(opacity float64) color.NRGBA {
	return color.NRGBA{to8(c.R), to8(c.G), to8(c.B), to8(opacity)}
}

// RGBA returns the color with the given opacity as a premultiplied
// Go color.
func (c Color) RGBA(opacity float64) color.RGBA {
	return color.RGBAModel.Convert(c.NRGBA(opacity)).(color.RGBA)
}

// Hex returns the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", to8(c.R), to8(c.G), to8(c.B))
}

func (c Color) String() string {
	return c.Hex()
}

// FromGo converts a Go color into a [Color] and its opacity.
func FromGo(gc color.Color) (Color, float64) {
	n := color.NRGBAModel.Convert(gc).(color.NRGBA)
	return RGB(n.R, n.G, n.B), float64(n.A) / 255
}

// ParseColor parses a color given as "#RRGGBB", "#AARRGGBB", "#RGB"
// or a named color such as "red". The returned opacity is 1 unless the
// alpha form is used.
func ParseColor(s string) (Color, float64, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	if str == "" {
		return Color{}, 0, fmt.Errorf("graphics.ParseColor: empty color")
	}
	if !strings.HasPrefix(str, "#") {
		nc, ok := colornames.Map[str]
		if !ok {
			return Color{}, 0, fmt.Errorf("graphics.ParseColor: unknown color %q", s)
		}
		c, op := FromGo(nc)
		return c, op, nil
	}
	opacity := 1.0
	if len(str) == 9 {
		a, err := strconv.ParseUint(str[1:3], 16, 8)
		if err != nil {
			return Color{}, 0, fmt.Errorf("graphics.ParseColor: invalid alpha in %q: %w", s, err)
		}
		opacity = float64(a) / 255
		str = "#" + str[3:]
	}
	cf, err := colorful.Hex(str)
	if err != nil {
		return Color{}, 0, fmt.Errorf("graphics.ParseColor: %q: %w", s, err)
	}
	r, g, b := cf.Clamped().RGB255()
	return RGB(r, g, b), opacity, nil
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
