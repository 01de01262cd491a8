// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"math"

	"cogentcore.org/gadget/events"
	"cogentcore.org/gadget/geom"
	"cogentcore.org/gadget/graphics"
)

// wheelDelta is the wheel delta of one notch, and scrollLine the
// number of pixels a notch scrolls.
const (
	wheelDelta = 120
	scrollLine = 10
)

// Div is a container element with an optional background. With
// autoscroll, children outside of its bounds can be scrolled into view
// with the mouse wheel.
type Div struct {
	ElementBase

	background *Texture
	autoscroll bool

	// size of the children, without scrolling
	contentWidth, contentHeight float64
}

func (d *Div) Init() {
	d.ElementBase.Init()
	d.EnableChildren()
	s := &d.Script
	stringProp(s, "background", d.Background, d.SetBackground)
	boolProp(s, "autoscroll", d.Autoscroll, d.SetAutoscroll)
	floatProp(s, "scrollX", d.ScrollX, func(x float64) { d.ScrollTo(x, d.scrollY) })
	floatProp(s, "scrollY", d.ScrollY, func(y float64) { d.ScrollTo(d.scrollX, y) })
}

// Background returns the color or image name of the background.
func (d *Div) Background() string {
	return d.background.Src()
}

func (d *Div) SetBackground(src string) {
	if src == d.Background() {
		return
	}
	d.background.Destroy()
	d.background = NewTexture(d.view, src)
	d.QueueDraw()
}

func (d *Div) Autoscroll() bool {
	return d.autoscroll
}

func (d *Div) SetAutoscroll(autoscroll bool) {
	if autoscroll == d.autoscroll {
		return
	}
	d.autoscroll = autoscroll
	if !autoscroll {
		d.ScrollTo(0, 0)
	}
}

func (d *Div) ScrollX() float64 { return d.scrollX }
func (d *Div) ScrollY() float64 { return d.scrollY }

// ContentSize returns the size of the bounding box of the children,
// from the origin of the div, as of the last layout.
func (d *Div) ContentSize() (float64, float64) {
	return d.contentWidth, d.contentHeight
}

// ScrollTo scrolls the children so that (x, y) is at the top left
// corner. It is clamped to the content size, and only applies with
// autoscroll.
func (d *Div) ScrollTo(x, y float64) {
	if !d.autoscroll {
		x, y = 0, 0
	}
	x = geom.Clamp(x, 0, math.Max(0, d.contentWidth-d.geom.width))
	y = geom.Clamp(y, 0, math.Max(0, d.contentHeight-d.geom.height))
	if x == d.scrollX && y == d.scrollY {
		return
	}
	d.scrollX, d.scrollY = x, y
	d.QueueDraw()
}

func (d *Div) Layout() {
	d.ElementBase.Layout()
	var content geom.Rect
	for _, child := range d.children.items {
		cb := child.AsElement()
		if !cb.visible {
			continue
		}
		r := cb.ExtentsInParent()
		r.X += d.scrollX
		r.Y += d.scrollY
		content = content.Union(r)
	}
	d.contentWidth = math.Max(0, content.Right())
	d.contentHeight = math.Max(0, content.Bottom())
	d.ScrollTo(d.scrollX, d.scrollY)
}

func (d *Div) DoDraw(c graphics.Canvas, children graphics.Canvas) {
	d.background.Draw(c, 0, 0, d.geom.width, d.geom.height)
	d.ElementBase.DoDraw(c, children)
}

func (d *Div) IsFullyOpaque() bool {
	return d.opacity >= 1 && d.background.IsFullyOpaque()
}

func (d *Div) HandleMouseEvent(ev *events.Mouse) events.Result {
	if ev.Type() != events.MouseWheel || !d.autoscroll {
		return events.Unhandled
	}
	x, y := d.scrollX, d.scrollY
	d.ScrollTo(x-float64(ev.WheelDeltaX)*scrollLine/wheelDelta, y-float64(ev.WheelDeltaY)*scrollLine/wheelDelta)
	if x == d.scrollX && y == d.scrollY {
		return events.Unhandled
	}
	return events.Handled
}

func (d *Div) OnDestroy() {
	d.background.Destroy()
	d.background = nil
}
