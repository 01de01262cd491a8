// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cogentcore.org/gadget/cursors"
	"cogentcore.org/gadget/events"
	"cogentcore.org/gadget/graphics"
	"cogentcore.org/gadget/imagecache"
)

// ButtonImage is one of the images of a [Button].
type ButtonImage int32

const (
	// ButtonNormal is shown when no other image applies.
	ButtonNormal ButtonImage = iota

	// ButtonOver is shown while the mouse is over the button.
	ButtonOver

	// ButtonDown is shown while the button is pressed.
	ButtonDown

	// ButtonDisabled is shown while the button is disabled.
	ButtonDisabled

	buttonImagesN
)

// buttonImageProps are the script properties of the button images.
var buttonImageProps = [buttonImagesN]string{
	ButtonNormal:   "image",
	ButtonOver:     "overImage",
	ButtonDown:     "downImage",
	ButtonDisabled: "disabledImage",
}

// Button is an element showing one of its images depending on its
// state. Its default size is the size of its normal image.
type Button struct {
	ElementBase

	images  [buttonImagesN]*imagecache.SharedImage
	over    bool
	pressed bool
}

func (b *Button) Init() {
	b.ElementBase.Init()
	b.cursor = cursors.Hand
	for i, prop := range buttonImageProps {
		which := ButtonImage(i)
		stringProp(&b.Script, prop,
			func() string { return b.Image(which) },
			func(src string) { b.SetImage(which, src) })
	}
}

// Image returns the name of an image.
func (b *Button) Image(which ButtonImage) string {
	if im := b.images[which]; im != nil {
		return im.Tag()
	}
	return ""
}

// SetImage sets an image.
func (b *Button) SetImage(which ButtonImage, src string) {
	if src == b.Image(which) {
		return
	}
	if im := b.images[which]; im != nil {
		im.Destroy()
	}
	b.images[which] = b.view.LoadImage(src, false)
	b.QueueDraw()
}

// IsMouseOver returns whether the mouse is over the button.
func (b *Button) IsMouseOver() bool {
	return b.over
}

// IsPressed returns whether the left button is held on the button.
func (b *Button) IsPressed() bool {
	return b.pressed
}

// current returns the image for the state of the button.
func (b *Button) current() *imagecache.SharedImage {
	which := ButtonNormal
	switch {
	case !b.IsReallyEnabled():
		which = ButtonDisabled
	case b.pressed && b.over:
		which = ButtonDown
	case b.over:
		which = ButtonOver
	}
	if im := b.images[which]; im != nil && im.IsValid() {
		return im
	}
	return b.images[ButtonNormal]
}

func (b *Button) DefaultSize() (float64, float64) {
	if im := b.images[ButtonNormal]; im != nil {
		return im.Width(), im.Height()
	}
	return 0, 0
}

func (b *Button) DoDraw(c graphics.Canvas, children graphics.Canvas) {
	if im := b.current(); im != nil {
		im.StretchDraw(c, 0, 0, b.geom.width, b.geom.height)
	}
}

func (b *Button) IsFullyOpaque() bool {
	im := b.current()
	return im != nil && im.IsFullyOpaque()
}

func (b *Button) HandleMouseEvent(ev *events.Mouse) events.Result {
	switch ev.Type() {
	case events.MouseDown:
		if ev.Buttons.Has(events.Left) {
			b.setState(b.over, true)
		}
	case events.MouseUp:
		b.setState(b.over, false)
	case events.MouseOver:
		b.setState(true, b.pressed)
	case events.MouseOut:
		b.setState(false, b.pressed)
	default:
		return events.Unhandled
	}
	return events.Handled
}

func (b *Button) setState(over, pressed bool) {
	if over == b.over && pressed == b.pressed {
		return
	}
	b.over, b.pressed = over, pressed
	b.QueueDraw()
}

func (b *Button) OnDestroy() {
	for i, im := range b.images {
		im.Destroy()
		b.images[i] = nil
	}
}
