// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster is a software implementation of the graphics
// interfaces that draws into Go images. It is used by the offscreen
// host and by tests.
package raster

import (
	"image"
	"image/png"
	"io"

	"cogentcore.org/gadget/graphics"
)

// Graphics is a [graphics.Graphics] producing raster canvases.
type Graphics struct {
	zoom float64
}

// New returns a new [Graphics] with the given zoom factor.
// A non-positive zoom is treated as 1.
func New(zoom float64) *Graphics {
	if zoom <= 0 {
		zoom = 1
	}
	return &Graphics{zoom: zoom}
}

func (g *Graphics) NewCanvas(width, height float64) graphics.Canvas {
	return NewCanvas(width, height, g.zoom)
}

func (g *Graphics) NewImage(tag string, data []byte, isMask bool) (graphics.Image, error) {
	img, _, err := DecodeImage(data)
	if err != nil {
		return nil, err
	}
	return NewImageFrom(tag, img, isMask, g.zoom), nil
}

func (g *Graphics) NewFont(family string, size float64, style graphics.FontStyle, weight graphics.FontWeight) (graphics.Font, error) {
	f, err := newFont(family, size, style, weight, g.zoom)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (g *Graphics) Zoom() float64 {
	return g.zoom
}

// WritePNG encodes the pixels of a raster canvas as PNG.
func WritePNG(w io.Writer, c graphics.Canvas) error {
	rc := asCanvas(c)
	if rc == nil {
		return png.Encode(w, image.NewRGBA(image.Rectangle{}))
	}
	return png.Encode(w, rc.img)
}
