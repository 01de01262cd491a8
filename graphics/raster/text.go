// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"

	"cogentcore.org/gadget/graphics"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func (c *Canvas) DrawText(x, y, width, height float64, text string, gf graphics.Font, col graphics.Color,
	align graphics.Alignment, valign graphics.VAlignment, trimming graphics.Trimming, flags graphics.TextFlags) {
	f, ok := gf.(*Font)
	if !ok || f.face == nil || width <= 0 || height <= 0 || text == "" {
		return
	}
	wrapWidth := 0.0
	if flags.Has(graphics.TextWordWrap) {
		wrapWidth = width
	}
	lines := f.wrap(text, wrapWidth)
	lh := f.lineHeight()
	if trimming != graphics.TrimmingNone {
		// drop lines that do not fit vertically
		if n := int(height / lh); n < len(lines) {
			lines = lines[:max(n, 1)]
		}
		for i, ln := range lines {
			lines[i] = f.trim(ln, width, trimming)
		}
	}

	total := lh * float64(len(lines))
	top := 0.0
	switch valign {
	case graphics.VAlignMiddle:
		top = (height - total) / 2
	case graphics.VAlignBottom:
		top = height - total
	}

	tmp := NewCanvas(width, height, c.zoom)
	dr := &font.Drawer{
		Dst:  tmp.img,
		Src:  image.NewUniform(col.RGBA(1)),
		Face: f.face,
	}
	asc := f.ascent()
	for i, ln := range lines {
		lw := f.measure(ln)
		lx := 0.0
		switch align {
		case graphics.AlignCenter:
			lx = (width - lw) / 2
		case graphics.AlignRight:
			lx = width - lw
		}
		base := top + float64(i)*lh + asc
		dr.Dot = fixed.Point26_6{X: floatToFixed(lx * c.zoom), Y: floatToFixed(base * c.zoom)}
		dr.DrawString(ln)
		if flags.Has(graphics.TextUnderline) {
			tmp.DrawFilledRect(lx, base+1, lw, 1, col)
		}
		if flags.Has(graphics.TextStrikeout) {
			tmp.DrawFilledRect(lx, base-asc/3, lw, 1, col)
		}
	}
	c.DrawCanvas(x, y, tmp)
}
