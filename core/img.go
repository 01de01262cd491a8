// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"math"

	"cogentcore.org/gadget/graphics"
	"cogentcore.org/gadget/imagecache"
	"cogentcore.org/gadget/script"
)

// CropMode selects how an [Img] fits its image into its bounds.
type CropMode int32

const (
	// CropFalse stretches the image to the bounds.
	CropFalse CropMode = iota

	// CropTrue scales the image to cover the bounds, keeping its
	// aspect ratio, and centers it.
	CropTrue

	// CropPhoto is like CropTrue, but never crops the top of the image.
	CropPhoto
)

var cropNames = []string{"false", "true", "photo"}

func (m CropMode) String() string {
	if m < 0 || int(m) >= len(cropNames) {
		return "false"
	}
	return cropNames[m]
}

// ParseCropMode parses a crop mode name.
func ParseCropMode(s string) (CropMode, bool) {
	for i, nm := range cropNames {
		if nm == s {
			return CropMode(i), true
		}
	}
	return CropFalse, false
}

// Img is an element showing an image. Its default size is the size of
// the image, and transparent pixels of the image do not hit the
// element.
type Img struct {
	ElementBase

	image      *imagecache.SharedImage
	multiplied graphics.Image

	src                 string
	srcWidth, srcHeight float64
	colorMultiply       string
	crop                CropMode
}

func (im *Img) Init() {
	im.ElementBase.Init()
	s := &im.Script
	stringProp(s, "src", im.Src, im.SetSrc)
	s.RegisterReadonlyProperty("srcWidth", func() any { return im.srcWidth })
	s.RegisterReadonlyProperty("srcHeight", func() any { return im.srcHeight })
	stringProp(s, "colorMultiply", im.ColorMultiply, im.SetColorMultiply)
	s.RegisterProperty("cropMaintainAspect", func() any { return im.crop.String() }, func(v any) error {
		m, ok := ParseCropMode(script.ToString(v))
		if !ok {
			return fmt.Errorf("cropMaintainAspect: unknown value %q", script.ToString(v))
		}
		im.SetCropMaintainAspect(m)
		return nil
	})
	s.RegisterMethod("setSrcSize", func(args ...any) (any, error) {
		w, _ := script.ToFloat(arg(args, 0))
		h, _ := script.ToFloat(arg(args, 1))
		im.SetSrcSize(w, h)
		return nil, nil
	})
}

// Src returns the name of the image, even if it could not be loaded.
func (im *Img) Src() string {
	if im.image != nil {
		return im.image.Tag()
	}
	return im.src
}

func (im *Img) SetSrc(src string) {
	if src == im.Src() {
		return
	}
	if im.image != nil {
		im.image.Destroy()
		im.image = nil
	}
	im.src = src
	im.image = im.view.LoadImage(src, false)
	im.srcWidth, im.srcHeight = 0, 0
	if im.image != nil {
		im.srcWidth, im.srcHeight = im.image.Width(), im.image.Height()
	}
	im.applyColorMultiply()
	im.QueueDraw()
}

// SrcSize returns the size of the image.
func (im *Img) SrcSize() (float64, float64) {
	return im.srcWidth, im.srcHeight
}

// SetSrcSize changes the default size of the element. The image itself
// is not resized.
func (im *Img) SetSrcSize(width, height float64) {
	im.srcWidth, im.srcHeight = width, height
}

// ColorMultiply returns the color multiplied with the image.
func (im *Img) ColorMultiply() string {
	return im.colorMultiply
}

// SetColorMultiply multiplies the image with a color, where gray
// "#808080" leaves it unchanged. A transparent or white color disables
// the multiplication.
func (im *Img) SetColorMultiply(c string) {
	if c == im.colorMultiply {
		return
	}
	im.colorMultiply = c
	im.applyColorMultiply()
	im.QueueDraw()
}

func (im *Img) CropMaintainAspect() CropMode {
	return im.crop
}

func (im *Img) SetCropMaintainAspect(m CropMode) {
	if m == im.crop {
		return
	}
	im.crop = m
	im.QueueDraw()
}

func (im *Img) applyColorMultiply() {
	if im.multiplied != nil {
		im.multiplied.Destroy()
		im.multiplied = nil
	}
	if im.image == nil || !im.image.IsValid() || im.colorMultiply == "" {
		return
	}
	c, opacity, err := graphics.ParseColor(im.colorMultiply)
	if err != nil || opacity == 0 || c == graphics.White {
		return
	}
	im.multiplied = im.image.MultiplyColor(c)
}

// current returns the image to draw, or nil.
func (im *Img) current() graphics.Image {
	if im.multiplied != nil {
		return im.multiplied
	}
	if im.image != nil && im.image.IsValid() {
		return im.image.Image()
	}
	return nil
}

// destRect returns where the image is drawn in element coordinates.
func (im *Img) destRect(img graphics.Image) (x, y, w, h float64) {
	pw, ph := im.geom.width, im.geom.height
	if im.crop == CropFalse {
		return 0, 0, pw, ph
	}
	iw, ih := img.Width(), img.Height()
	if iw <= 0 || ih <= 0 {
		return 0, 0, 0, 0
	}
	scale := math.Max(pw/iw, ph/ih)
	w, h = scale*iw, scale*ih
	x, y = (pw-w)/2, (ph-h)/2
	if im.crop == CropPhoto && y < 0 {
		y = 0
	}
	return x, y, w, h
}

func (im *Img) DefaultSize() (float64, float64) {
	return im.srcWidth, im.srcHeight
}

func (im *Img) DoDraw(c graphics.Canvas, children graphics.Canvas) {
	img := im.current()
	if img == nil {
		return
	}
	x, y, w, h := im.destRect(img)
	if w > 0 && h > 0 {
		img.StretchDraw(c, x, y, w, h)
	}
}

// IsPointIn only hits pixels of the image that are not transparent.
func (im *Img) IsPointIn(x, y float64) bool {
	if !im.ElementBase.IsPointIn(x, y) {
		return false
	}
	img := im.current()
	if img == nil {
		return false
	}
	dx, dy, w, h := im.destRect(img)
	if w <= 0 || h <= 0 {
		return false
	}
	ix := (x - dx) * img.Width() / w
	iy := (y - dy) * img.Height() / h
	_, opacity, ok := img.PointValue(ix, iy)
	return !ok || opacity > 0
}

func (im *Img) IsFullyOpaque() bool {
	img := im.current()
	return img != nil && im.crop == CropFalse && img.IsFullyOpaque()
}

func (im *Img) OnDestroy() {
	if im.multiplied != nil {
		im.multiplied.Destroy()
		im.multiplied = nil
	}
	if im.image != nil {
		im.image.Destroy()
		im.image = nil
	}
}
