// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cogentcore.org/gadget/events"
	"cogentcore.org/gadget/graphics"
)

// Item is an item of a [ListBox]. Inside a list box, its default size
// is the item size of the list box, and items are stacked in order.
type Item struct {
	ElementBase

	selected   bool
	over       bool
	background *Texture
}

func (it *Item) Init() {
	it.ElementBase.Init()
	it.EnableChildren()
	s := &it.Script
	boolProp(s, "selected", it.Selected, it.SetSelected)
	stringProp(s, "background", it.Background, it.SetBackground)
	stringProp(s, "labelText", it.LabelText, it.SetLabelText)
	s.RegisterMethod("addLabelWithText", func(args ...any) (any, error) {
		return it.AddLabelWithText(argString(args, 0)), nil
	})
}

// ListBox returns the list box of the item, or nil.
func (it *Item) ListBox() *ListBox {
	lb, _ := it.parent.(*ListBox)
	return lb
}

func (it *Item) Selected() bool {
	return it.selected
}

// SetSelected selects or unselects the item. In a list box without
// multiSelect, selecting an item unselects the others.
func (it *Item) SetSelected(selected bool) {
	lb := it.ListBox()
	switch {
	case lb == nil:
		it.setSelected(selected)
	case selected && !lb.multiSelect:
		lb.selectOnly(it)
	case it.setSelected(selected):
		lb.fireChange()
	}
}

func (it *Item) setSelected(selected bool) bool {
	if selected == it.selected {
		return false
	}
	it.selected = selected
	it.QueueDraw()
	return true
}

// IsMouseOver returns whether the mouse is over the item.
func (it *Item) IsMouseOver() bool {
	return it.over
}

func (it *Item) Background() string {
	return it.background.Src()
}

func (it *Item) SetBackground(src string) {
	if src == it.Background() {
		return
	}
	it.background.Destroy()
	it.background = NewTexture(it.view, src)
	it.QueueDraw()
}

// label returns the first label of the item, or nil.
func (it *Item) label() *Label {
	for _, el := range it.children.items {
		if l, ok := el.(*Label); ok {
			return l
		}
	}
	return nil
}

// LabelText returns the text of the first label of the item.
func (it *Item) LabelText() string {
	if l := it.label(); l != nil {
		return l.Text()
	}
	return ""
}

// SetLabelText sets the text of the first label of the item, adding a
// label if there is none.
func (it *Item) SetLabelText(text string) {
	if l := it.label(); l != nil {
		l.SetText(text)
		return
	}
	it.AddLabelWithText(text)
}

// AddLabelWithText adds a label filling the item and showing text.
// The label is disabled so that the item gets the mouse events.
func (it *Item) AddLabelWithText(text string) bool {
	l, ok := it.children.AppendElement("label", "").(*Label)
	if !ok {
		return false
	}
	l.SetEnabled(false)
	l.SetWidth(Rel(1))
	l.SetHeight(Rel(1))
	l.SetVAlign(graphics.VAlignMiddle)
	l.SetTrimming(graphics.TrimmingCharacterEllipsis)
	l.SetText(text)
	return true
}

func (it *Item) DefaultSize() (float64, float64) {
	if lb := it.ListBox(); lb != nil {
		return lb.ItemSize()
	}
	return 0, 0
}

func (it *Item) DefaultPosition() (float64, float64) {
	lb := it.ListBox()
	if lb == nil {
		return 0, 0
	}
	_, h := lb.ItemSize()
	return 0, float64(it.Index()) * h
}

func (it *Item) DoDraw(c graphics.Canvas, children graphics.Canvas) {
	w, h := it.geom.width, it.geom.height
	it.background.Draw(c, 0, 0, w, h)
	if lb := it.ListBox(); lb != nil {
		switch {
		case it.selected:
			fillColor(c, lb.itemSelectedColor, 0, 0, w, h)
		case it.over:
			fillColor(c, lb.itemOverColor, 0, 0, w, h)
		}
		if lb.itemSeparator {
			if col, op, err := graphics.ParseColor(lb.itemSeparatorColor); err == nil && op > 0 {
				c.DrawLine(0, h-0.5, w, h-0.5, 1, col)
			}
		}
	}
	it.ElementBase.DoDraw(c, children)
}

// fillColor fills a rectangle with a color given as a string.
func fillColor(c graphics.Canvas, color string, x, y, w, h float64) {
	col, opacity, err := graphics.ParseColor(color)
	if err != nil || opacity <= 0 {
		return
	}
	if opacity < 1 {
		c.PushState()
		defer c.PopState()
		c.MultiplyOpacity(opacity)
	}
	c.DrawFilledRect(x, y, w, h, col)
}

func (it *Item) IsFullyOpaque() bool {
	return it.opacity >= 1 && it.background.IsFullyOpaque()
}

func (it *Item) HandleMouseEvent(ev *events.Mouse) events.Result {
	switch ev.Type() {
	case events.MouseOver, events.MouseOut:
		over := ev.Type() == events.MouseOver
		if over != it.over {
			it.over = over
			it.QueueDraw()
		}
	case events.MouseClick:
		lb := it.ListBox()
		if lb == nil {
			return events.Unhandled
		}
		lb.itemClicked(it, ev.Mods)
		return events.Handled
	}
	return events.Unhandled
}

func (it *Item) HandleKeyEvent(ev *events.Key) events.Result {
	if lb := it.ListBox(); lb != nil {
		return lb.HandleKeyEvent(ev)
	}
	return events.Unhandled
}

func (it *Item) OnDestroy() {
	it.background.Destroy()
	it.background = nil
}
