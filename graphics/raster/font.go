// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"cogentcore.org/gadget/graphics"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	parsedMu sync.Mutex
	parsed   = map[string]*opentype.Font{}
)

// fontData returns the TTF data of the Go font best matching the
// family and style. Any family other than a monospace one maps to the
// Go sans serif fonts.
func fontData(family string, style graphics.FontStyle, weight graphics.FontWeight) (string, []byte) {
	fam := strings.ToLower(family)
	if strings.Contains(fam, "mono") || strings.Contains(fam, "courier") {
		return "gomono", gomono.TTF
	}
	bold := weight == graphics.WeightBold
	italic := style == graphics.StyleItalic
	switch {
	case bold && italic:
		return "gobolditalic", gobolditalic.TTF
	case bold:
		return "gobold", gobold.TTF
	case italic:
		return "goitalic", goitalic.TTF
	}
	return "goregular", goregular.TTF
}

func parseFont(name string, data []byte) (*opentype.Font, error) {
	parsedMu.Lock()
	defer parsedMu.Unlock()
	if f, ok := parsed[name]; ok {
		return f, nil
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	parsed[name] = f
	return f, nil
}

// Font is a [graphics.Font] backed by an x/image font face.
type Font struct {
	face font.Face
	size float64
	zoom float64
}

func newFont(family string, size float64, style graphics.FontStyle, weight graphics.FontWeight, zoom float64) (*Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("raster.NewFont: invalid size %g", size)
	}
	name, data := fontData(family, style, weight)
	otf, err := parseFont(name, data)
	if err != nil {
		slog.Warn("raster: falling back to basic font", "family", family, "err", err)
		return &Font{face: basicfont.Face7x13, size: size, zoom: 1}, nil
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72 * zoom,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	return &Font{face: face, size: size, zoom: zoom}, nil
}

func (f *Font) Destroy() {
	if f.face != nil && f.face != font.Face(basicfont.Face7x13) {
		f.face.Close()
	}
	f.face = nil
}

func (f *Font) Size() float64 {
	return f.size
}

func (f *Font) TextExtents(text string, flags graphics.TextFlags, wrapWidth float64) (float64, float64) {
	if !flags.Has(graphics.TextWordWrap) {
		wrapWidth = 0
	}
	lines := f.wrap(text, wrapWidth)
	w := 0.0
	for _, ln := range lines {
		w = max(w, f.measure(ln))
	}
	return w, f.lineHeight() * float64(len(lines))
}

// measure returns the logical width of s.
func (f *Font) measure(s string) float64 {
	return fixedToFloat(font.MeasureString(f.face, s)) / f.zoom
}

func (f *Font) lineHeight() float64 {
	return fixedToFloat(f.face.Metrics().Height) / f.zoom
}

func (f *Font) ascent() float64 {
	return fixedToFloat(f.face.Metrics().Ascent) / f.zoom
}

// wrap splits text into lines at newlines and, if width is positive,
// at word boundaries so that each line fits. Words wider than width
// get a line of their own.
func (f *Font) wrap(text string, width float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		if width <= 0 {
			lines = append(lines, para)
			continue
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			next := cur + " " + w
			if f.measure(next) > width {
				lines = append(lines, cur)
				cur = w
				continue
			}
			cur = next
		}
		lines = append(lines, cur)
	}
	return lines
}

const ellipsis = "..."

// trim shortens line to fit width according to the trimming mode.
func (f *Font) trim(line string, width float64, trimming graphics.Trimming) string {
	if trimming == graphics.TrimmingNone || f.measure(line) <= width {
		return line
	}
	runes := []rune(line)
	switch trimming {
	case graphics.TrimmingCharacter, graphics.TrimmingCharacterEllipsis:
		suffix := ""
		if trimming == graphics.TrimmingCharacterEllipsis {
			suffix = ellipsis
		}
		for n := len(runes) - 1; n >= 0; n-- {
			s := string(runes[:n]) + suffix
			if f.measure(s) <= width {
				return s
			}
		}
		return ""
	case graphics.TrimmingWord, graphics.TrimmingWordEllipsis:
		suffix := ""
		if trimming == graphics.TrimmingWordEllipsis {
			suffix = ellipsis
		}
		words := strings.Fields(line)
		for n := len(words) - 1; n > 0; n-- {
			s := strings.Join(words[:n], " ") + suffix
			if f.measure(s) <= width {
				return s
			}
		}
		return f.trim(line, width, graphics.TrimmingCharacterEllipsis)
	case graphics.TrimmingPathEllipsis:
		for cut := 1; cut <= len(runes); cut++ {
			head := (len(runes) - cut) / 2
			tail := len(runes) - cut - head
			s := string(runes[:head]) + ellipsis + string(runes[len(runes)-tail:])
			if f.measure(s) <= width {
				return s
			}
		}
		return ""
	}
	return line
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
