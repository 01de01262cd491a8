// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"cogentcore.org/gadget/graphics"
	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image is a [graphics.Image] holding its pixels in a [Canvas].
type Image struct {
	tag    string
	canvas *Canvas
	opaque bool

	// stretched caches the last StretchDraw resampling.
	stretched *Canvas
}

// DecodeImage decodes image data after checking that it holds a known
// image format.
func DecodeImage(data []byte) (image.Image, string, error) {
	if !filetype.IsImage(data) {
		return nil, "", fmt.Errorf("raster: data is not a known image format")
	}
	kind, err := filetype.Match(data)
	if err != nil {
		return nil, "", err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, kind.Extension, fmt.Errorf("raster: decoding %s image: %w", kind.MIME.Value, err)
	}
	return img, kind.Extension, nil
}

// NewImageFrom returns an image holding a copy of src. If isMask is
// set, black pixels become transparent and all others opaque white.
func NewImageFrom(tag string, src image.Image, isMask bool, zoom float64) *Image {
	sb := src.Bounds()
	cv := NewCanvas(float64(sb.Dx())/zoom, float64(sb.Dy())/zoom, zoom)
	draw.Draw(cv.img, cv.img.Bounds(), src, sb.Min, draw.Src)
	if isMask {
		px := cv.img.Pix
		for i := 0; i < len(px); i += 4 {
			if px[i] == 0 && px[i+1] == 0 && px[i+2] == 0 {
				px[i], px[i+1], px[i+2], px[i+3] = 0, 0, 0, 0
			} else {
				px[i], px[i+1], px[i+2], px[i+3] = 255, 255, 255, 255
			}
		}
	}
	return &Image{tag: tag, canvas: cv, opaque: fullyOpaque(cv.img)}
}

func fullyOpaque(img *image.RGBA) bool {
	if img.Bounds().Empty() {
		return false
	}
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			return false
		}
	}
	return true
}

func (im *Image) Destroy() {
	if im.canvas != nil {
		im.canvas.Destroy()
		im.canvas = nil
	}
	im.stretched = nil
}

func (im *Image) Canvas() graphics.Canvas {
	if im.canvas == nil {
		return nil
	}
	return im.canvas
}

func (im *Image) Width() float64 {
	if im.canvas == nil {
		return 0
	}
	return im.canvas.w
}

func (im *Image) Height() float64 {
	if im.canvas == nil {
		return 0
	}
	return im.canvas.h
}

func (im *Image) Tag() string {
	return im.tag
}

func (im *Image) IsFullyOpaque() bool {
	return im.opaque
}

func (im *Image) Draw(c graphics.Canvas, x, y float64) {
	if im.canvas != nil {
		c.DrawCanvas(x, y, im.canvas)
	}
}

// StretchDraw resamples the image with a linear filter to the target
// pixel size and draws it.
func (im *Image) StretchDraw(c graphics.Canvas, x, y, width, height float64) {
	if im.canvas == nil || width <= 0 || height <= 0 {
		return
	}
	if width == im.canvas.w && height == im.canvas.h {
		im.Draw(c, x, y)
		return
	}
	zoom := im.canvas.zoom
	pw := max(1, int(math.Round(width*zoom)))
	ph := max(1, int(math.Round(height*zoom)))
	st := im.stretched
	if st == nil || st.img.Bounds().Dx() != pw || st.img.Bounds().Dy() != ph {
		resized := imaging.Resize(im.canvas.img, pw, ph, imaging.Linear)
		st = NewCanvas(float64(pw)/zoom, float64(ph)/zoom, zoom)
		draw.Draw(st.img, st.img.Bounds(), resized, resized.Bounds().Min, draw.Src)
		im.stretched = st
	}
	c.PushState()
	c.TranslateCoordinates(x, y)
	c.ScaleCoordinates(width/st.w, height/st.h)
	c.DrawCanvas(0, 0, st)
	c.PopState()
}

func (im *Image) MultiplyColor(mc graphics.Color) graphics.Image {
	if im.canvas == nil {
		return &Image{tag: im.tag}
	}
	if mc == graphics.Middle {
		return NewImageFrom(im.tag, im.canvas.img, false, im.canvas.zoom)
	}
	scale := func(v uint8, f float64) uint8 {
		return uint8(math.Min(255, math.Round(float64(v)*2*f)))
	}
	adj := imaging.AdjustFunc(im.canvas.img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{scale(c.R, mc.R), scale(c.G, mc.G), scale(c.B, mc.B), c.A}
	})
	return NewImageFrom(im.tag, adj, false, im.canvas.zoom)
}

func (im *Image) PointValue(x, y float64) (graphics.Color, float64, bool) {
	if im.canvas == nil {
		return graphics.Color{}, 0, false
	}
	return im.canvas.PointValue(x, y)
}
