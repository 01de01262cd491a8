// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"log/slog"

	"cogentcore.org/gadget/graphics"
	"cogentcore.org/gadget/script"
)

// Label is an element showing text. Its default size is the size of
// the text.
type Label struct {
	ElementBase

	text     string
	family   string
	size     float64
	color    string
	bold     bool
	italic   bool
	flags    graphics.TextFlags
	align    graphics.Alignment
	valign   graphics.VAlignment
	trimming graphics.Trimming

	font     graphics.Font
	measured bool
	textW    float64
	textH    float64
}

func (l *Label) Init() {
	l.ElementBase.Init()
	l.family = "sans-serif"
	l.size = 8
	l.color = "#000000"
	s := &l.Script
	stringProp(s, "innerText", l.Text, l.SetText)
	stringProp(s, "font", l.Font, l.SetFont)
	floatProp(s, "size", l.Size, l.SetSize)
	stringProp(s, "color", l.Color, l.SetColor)
	boolProp(s, "bold", func() bool { return l.bold }, func(b bool) { l.setStyle(&l.bold, b) })
	boolProp(s, "italic", func() bool { return l.italic }, func(b bool) { l.setStyle(&l.italic, b) })
	boolProp(s, "underline", l.flagGetter(graphics.TextUnderline), l.flagSetter(graphics.TextUnderline))
	boolProp(s, "strikeout", l.flagGetter(graphics.TextStrikeout), l.flagSetter(graphics.TextStrikeout))
	boolProp(s, "wordWrap", l.flagGetter(graphics.TextWordWrap), l.flagSetter(graphics.TextWordWrap))
	s.RegisterProperty("align", func() any { return l.align.String() }, func(v any) error {
		a, ok := graphics.ParseAlignment(script.ToString(v))
		if !ok {
			return fmt.Errorf("align: unknown value %q", script.ToString(v))
		}
		l.SetAlign(a)
		return nil
	})
	s.RegisterProperty("valign", func() any { return l.valign.String() }, func(v any) error {
		a, ok := graphics.ParseVAlignment(script.ToString(v))
		if !ok {
			return fmt.Errorf("valign: unknown value %q", script.ToString(v))
		}
		l.SetVAlign(a)
		return nil
	})
	s.RegisterProperty("trimming", func() any { return l.trimming.String() }, func(v any) error {
		t, ok := graphics.ParseTrimming(script.ToString(v))
		if !ok {
			return fmt.Errorf("trimming: unknown value %q", script.ToString(v))
		}
		l.SetTrimming(t)
		return nil
	})
}

func (l *Label) Text() string {
	return l.text
}

func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.measured = false
	l.QueueDraw()
}

// Font returns the font family.
func (l *Label) Font() string {
	return l.family
}

func (l *Label) SetFont(family string) {
	if family == l.family {
		return
	}
	l.family = family
	l.resetFont()
}

// Size returns the font size in points.
func (l *Label) Size() float64 {
	return l.size
}

// SetSize sets the font size. Sizes of 0 or less are ignored.
func (l *Label) SetSize(size float64) {
	if size == l.size || size <= 0 {
		return
	}
	l.size = size
	l.resetFont()
}

func (l *Label) Color() string {
	return l.color
}

func (l *Label) SetColor(c string) {
	if c == l.color {
		return
	}
	l.color = c
	l.QueueDraw()
}

func (l *Label) SetAlign(a graphics.Alignment) {
	if a != l.align {
		l.align = a
		l.QueueDraw()
	}
}

func (l *Label) SetVAlign(a graphics.VAlignment) {
	if a != l.valign {
		l.valign = a
		l.QueueDraw()
	}
}

func (l *Label) SetTrimming(t graphics.Trimming) {
	if t != l.trimming {
		l.trimming = t
		l.QueueDraw()
	}
}

func (l *Label) setStyle(dst *bool, b bool) {
	if *dst == b {
		return
	}
	*dst = b
	l.resetFont()
}

func (l *Label) flagGetter(f graphics.TextFlags) func() bool {
	return func() bool { return l.flags.Has(f) }
}

func (l *Label) flagSetter(f graphics.TextFlags) func(bool) {
	return func(on bool) {
		if on == l.flags.Has(f) {
			return
		}
		l.flags ^= f
		l.measured = false
		l.QueueDraw()
	}
}

func (l *Label) resetFont() {
	if l.font != nil {
		l.font.Destroy()
		l.font = nil
	}
	l.measured = false
	l.QueueDraw()
}

// ensureFont returns the font, creating it on first use.
func (l *Label) ensureFont() graphics.Font {
	if l.font != nil {
		return l.font
	}
	gfx := l.view.Graphics()
	if gfx == nil {
		return nil
	}
	style := graphics.StyleNormal
	if l.italic {
		style = graphics.StyleItalic
	}
	weight := graphics.WeightNormal
	if l.bold {
		weight = graphics.WeightBold
	}
	f, err := gfx.NewFont(l.family, l.size, style, weight)
	if err != nil {
		slog.Debug("cannot create font", "family", l.family, "err", err)
		return nil
	}
	l.font = f
	return f
}

// TextSize returns the size of the text, without wrapping.
func (l *Label) TextSize() (float64, float64) {
	if !l.measured {
		l.textW, l.textH = 0, 0
		if f := l.ensureFont(); f != nil && l.text != "" {
			l.textW, l.textH = f.TextExtents(l.text, l.flags&^graphics.TextWordWrap, 0)
		}
		l.measured = true
	}
	return l.textW, l.textH
}

func (l *Label) DefaultSize() (float64, float64) {
	return l.TextSize()
}

func (l *Label) DoDraw(c graphics.Canvas, children graphics.Canvas) {
	f := l.ensureFont()
	if f == nil || l.text == "" {
		return
	}
	col, opacity, err := graphics.ParseColor(l.color)
	if err != nil {
		col, opacity = graphics.Black, 1
	}
	if opacity <= 0 {
		return
	}
	if opacity < 1 {
		c.PushState()
		defer c.PopState()
		c.MultiplyOpacity(opacity)
	}
	c.DrawText(0, 0, l.geom.width, l.geom.height, l.text, f, col,
		l.align, l.valign, l.trimming, l.flags)
}

func (l *Label) OnDestroy() {
	if l.font != nil {
		l.font.Destroy()
		l.font = nil
	}
}
