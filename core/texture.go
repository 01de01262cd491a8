// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cogentcore.org/gadget/graphics"
	"cogentcore.org/gadget/imagecache"
)

// Texture fills rectangles with a color or with a tiled image. Colors
// are given as "#RRGGBB", "#AARRGGBB" or by name, and anything else is
// the name of an image.
type Texture struct {
	src     string
	color   graphics.Color
	opacity float64
	image   *imagecache.SharedImage
}

// NewTexture returns the texture of src for the view, or nil if src is
// empty.
func NewTexture(v *View, src string) *Texture {
	if src == "" {
		return nil
	}
	t := &Texture{src: src}
	if c, op, err := graphics.ParseColor(src); err == nil {
		t.color, t.opacity = c, op
		return t
	}
	if v != nil {
		t.image = v.LoadImage(src, false)
	}
	return t
}

// Src returns the source the texture was created from.
func (t *Texture) Src() string {
	if t == nil {
		return ""
	}
	return t.src
}

// Draw fills a rectangle with the texture.
func (t *Texture) Draw(c graphics.Canvas, x, y, width, height float64) {
	if t == nil || width <= 0 || height <= 0 {
		return
	}
	if t.image != nil {
		if ic := t.image.Canvas(); ic != nil {
			c.DrawFilledRectWithCanvas(x, y, width, height, ic)
		}
		return
	}
	if t.opacity <= 0 {
		return
	}
	if t.opacity < 1 {
		c.PushState()
		defer c.PopState()
		c.MultiplyOpacity(t.opacity)
	}
	c.DrawFilledRect(x, y, width, height, t.color)
}

// IsFullyOpaque returns whether the texture has no transparent pixels.
func (t *Texture) IsFullyOpaque() bool {
	if t == nil {
		return false
	}
	if t.image != nil {
		return t.image.IsFullyOpaque()
	}
	return t.opacity >= 1
}

// Destroy releases the image of the texture.
func (t *Texture) Destroy() {
	if t != nil && t.image != nil {
		t.image.Destroy()
		t.image = nil
	}
}
