// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagecache

import (
	"cogentcore.org/gadget/base/errors"
	"cogentcore.org/gadget/graphics"
)

var errNoFiles = errors.New("imagecache: no file manager")

// SharedImage is one reference to a cached image. It implements
// [graphics.Image]; an image that failed to load has no pixels and
// draws nothing.
type SharedImage struct {
	entry     *entry
	tag       string
	destroyed bool
}

func (si *SharedImage) withTag(tag string) *SharedImage {
	si.tag = tag
	return si
}

// IsValid returns whether the image has pixels.
func (si *SharedImage) IsValid() bool {
	return !si.destroyed && si.entry.img != nil
}

// Image returns the underlying image, or nil for a placeholder.
func (si *SharedImage) Image() graphics.Image {
	if si.destroyed {
		return nil
	}
	return si.entry.img
}

// Destroy releases this reference. Calling it again has no effect.
func (si *SharedImage) Destroy() {
	if si == nil || si.destroyed {
		return
	}
	si.destroyed = true
	si.entry.owner.release(si.entry)
}

func (si *SharedImage) Canvas() graphics.Canvas {
	if img := si.Image(); img != nil {
		return img.Canvas()
	}
	return nil
}

func (si *SharedImage) Width() float64 {
	if img := si.Image(); img != nil {
		return img.Width()
	}
	return 0
}

func (si *SharedImage) Height() float64 {
	if img := si.Image(); img != nil {
		return img.Height()
	}
	return 0
}

func (si *SharedImage) Draw(c graphics.Canvas, x, y float64) {
	if img := si.Image(); img != nil {
		img.Draw(c, x, y)
	}
}

func (si *SharedImage) StretchDraw(c graphics.Canvas, x, y, width, height float64) {
	if img := si.Image(); img != nil {
		img.StretchDraw(c, x, y, width, height)
	}
}

// MultiplyColor returns a new, unshared image. The caller owns it.
func (si *SharedImage) MultiplyColor(c graphics.Color) graphics.Image {
	if img := si.Image(); img != nil {
		return img.MultiplyColor(c)
	}
	return nil
}

func (si *SharedImage) PointValue(x, y float64) (graphics.Color, float64, bool) {
	if img := si.Image(); img != nil {
		return img.PointValue(x, y)
	}
	return graphics.Color{}, 0, false
}

// Tag returns the file name the image was requested with, whether or
// not it could be loaded.
func (si *SharedImage) Tag() string {
	return si.tag
}

func (si *SharedImage) IsFullyOpaque() bool {
	if img := si.Image(); img != nil {
		return img.IsFullyOpaque()
	}
	return false
}
