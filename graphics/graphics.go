// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graphics defines the drawing interfaces that the gadget view
// renders through. Hosts provide an implementation; package raster
// provides a software one.
package graphics

import "cogentcore.org/gadget/clip"

// Graphics creates canvases, images and fonts for one view.
type Graphics interface {
	// NewCanvas returns a transparent canvas of the given size.
	NewCanvas(width, height float64) Canvas

	// NewImage decodes image data. The tag is the name the image was
	// loaded from. If isMask is set, black pixels become transparent
	// and everything else opaque. It returns an error if the data
	// cannot be decoded.
	NewImage(tag string, data []byte, isMask bool) (Image, error)

	// NewFont returns a font of the given family and size in points.
	NewFont(family string, size float64, style FontStyle, weight FontWeight) (Font, error)

	// Zoom returns the zoom factor between view and device pixels.
	Zoom() float64
}

// Canvas is a drawing surface with a state stack holding the current
// transform, opacity and clip.
type Canvas interface {
	// Destroy releases the canvas.
	Destroy()

	Width() float64
	Height() float64

	// PushState saves the transform, opacity and clip.
	PushState()

	// PopState restores the state saved by the matching PushState.
	// It returns false if there was nothing to restore.
	PopState() bool

	// MultiplyOpacity multiplies the current opacity, which applies to
	// everything drawn afterwards.
	MultiplyOpacity(opacity float64)

	RotateCoordinates(radians float64)
	TranslateCoordinates(dx, dy float64)
	ScaleCoordinates(cx, cy float64)

	// ClearCanvas makes the whole canvas transparent, ignoring the clip.
	ClearCanvas()

	// ClearRect makes a rectangle transparent, within the current clip.
	ClearRect(x, y, width, height float64)

	DrawLine(x0, y0, x1, y1, width float64, c Color)
	DrawFilledRect(x, y, width, height float64, c Color)

	// DrawFilledRectWithCanvas fills the rectangle with the canvas
	// tiled from the origin.
	DrawFilledRectWithCanvas(x, y, width, height float64, img Canvas)

	// DrawCanvas draws img with its top left corner at (x, y).
	DrawCanvas(x, y float64, img Canvas)

	// DrawCanvasWithMask draws img at (x, y) through the alpha of mask
	// placed at (mx, my).
	DrawCanvasWithMask(x, y float64, img Canvas, mx, my float64, mask Canvas)

	// DrawText draws text in the rectangle.
	DrawText(x, y, width, height float64, text string, f Font, c Color,
		align Alignment, valign VAlignment, trimming Trimming, flags TextFlags)

	// IntersectRectClipRegion intersects the clip with a rectangle in
	// current coordinates.
	IntersectRectClipRegion(x, y, width, height float64)

	// IntersectGeneralClipRegion intersects the clip with the union of
	// the rectangles of the region, in current coordinates.
	IntersectGeneralClipRegion(region *clip.Region)

	// PointValue returns the color and opacity of the pixel at (x, y)
	// in current coordinates. ok is false outside the canvas.
	PointValue(x, y float64) (c Color, opacity float64, ok bool)
}

// Image is a decoded image.
type Image interface {
	// Destroy releases the image.
	Destroy()

	// Canvas returns the pixels of the image, or nil for an image
	// without data.
	Canvas() Canvas

	Width() float64
	Height() float64

	// Draw draws the image at (x, y).
	Draw(c Canvas, x, y float64)

	// StretchDraw draws the image scaled into the given rectangle.
	StretchDraw(c Canvas, x, y, width, height float64)

	// MultiplyColor returns a copy of the image with every pixel
	// multiplied by 2*c, so that [Middle] leaves it unchanged.
	MultiplyColor(c Color) Image

	PointValue(x, y float64) (c Color, opacity float64, ok bool)

	// Tag returns the name the image was loaded from.
	Tag() string

	// IsFullyOpaque returns whether every pixel is opaque.
	IsFullyOpaque() bool
}

// Font is a font used for drawing text.
type Font interface {
	Destroy()

	// Size returns the size in points.
	Size() float64

	// TextExtents returns the size of text drawn in this font. If
	// wrapWidth is positive, lines wrap at that width.
	TextExtents(text string, flags TextFlags, wrapWidth float64) (width, height float64)
}

// FontStyle is the slant of a font.
type FontStyle int32

const (
	StyleNormal FontStyle = iota
	StyleItalic
)

// FontWeight is the weight of a font.
type FontWeight int32

const (
	WeightNormal FontWeight = iota
	WeightBold
)

// Alignment is the horizontal alignment of text.
type Alignment int32

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

// VAlignment is the vertical alignment of text.
type VAlignment int32

const (
	VAlignTop VAlignment = iota
	VAlignMiddle
	VAlignBottom
)

// Trimming selects how text that does not fit is cut.
type Trimming int32

const (
	TrimmingNone Trimming = iota
	TrimmingCharacter
	TrimmingWord
	TrimmingCharacterEllipsis
	TrimmingWordEllipsis
	TrimmingPathEllipsis
)

// TextFlags are bit flags for text decoration and wrapping.
type TextFlags int32

const (
	TextUnderline TextFlags = 1 << iota
	TextStrikeout
	TextWordWrap
)

// Has returns whether the flag is set.
func (f TextFlags) Has(o TextFlags) bool {
	return f&o != 0
}
