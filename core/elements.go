// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"log/slog"
	"slices"

	"cogentcore.org/gadget/events"
	"cogentcore.org/gadget/geom"
	"cogentcore.org/gadget/graphics"
)

// Elements is an ordered collection of sibling elements, owned by a
// parent element or by the view. Later elements are drawn on top of
// earlier ones, and receive mouse events first.
type Elements struct {
	factory *Factory
	owner   Element
	view    *View
	items   []Element
}

// NewElements returns an empty collection of the children of owner,
// which is nil for the top-level elements of a view.
func NewElements(factory *Factory, owner Element, view *View) *Elements {
	return &Elements{factory: factory, owner: owner, view: view}
}

// Owner returns the element owning the collection, or nil.
func (es *Elements) Owner() Element {
	return es.owner
}

// Count returns the number of elements.
func (es *Elements) Count() int {
	return len(es.items)
}

// Items returns a copy of the elements.
func (es *Elements) Items() []Element {
	return slices.Clone(es.items)
}

// ItemByIndex returns the element at index i, or nil if i is out of
// range.
func (es *Elements) ItemByIndex(i int) Element {
	if i < 0 || i >= len(es.items) {
		return nil
	}
	return es.items[i]
}

// ItemByName returns the first element with the given name, or nil.
func (es *Elements) ItemByName(name string) Element {
	for _, el := range es.items {
		if el.AsElement().name == name {
			return el
		}
	}
	return nil
}

// IndexOf returns the index of el, or -1 if it is not in the
// collection.
func (es *Elements) IndexOf(el Element) int {
	if el == nil {
		return -1
	}
	eb := el.AsElement()
	return slices.IndexFunc(es.items, func(o Element) bool { return o.AsElement() == eb })
}

// AppendElement creates an element of the given tag at the end of the
// collection. It returns nil if the tag is unknown.
func (es *Elements) AppendElement(tag, name string) Element {
	return es.InsertElement(tag, nil, name)
}

// InsertElement creates an element of the given tag before the element
// before, or at the end if before is nil or not in the collection.
// It returns nil if the tag is unknown.
func (es *Elements) InsertElement(tag string, before Element, name string) Element {
	el := es.factory.Create(tag, es.view, name)
	if el == nil {
		if s := es.factory.Suggest(tag); s != "" {
			slog.Warn("unknown element tag", "tag", tag, "suggestion", s)
		} else {
			slog.Warn("unknown element tag", "tag", tag)
		}
		return nil
	}
	if !es.insert(el, before) {
		el.AsElement().destroy()
		return nil
	}
	return el
}

// InsertExisting moves an existing element before the element before,
// or to the end if before is nil. If el is already in the collection,
// it is only reordered. It returns false if el cannot be moved here.
func (es *Elements) InsertExisting(el, before Element) bool {
	if el == nil || !el.AsElement().IsAlive() {
		return false
	}
	eb := el.AsElement()
	if eb.view != es.view || es.isDescendantOf(el) {
		return false
	}
	if sameElement(el, before) {
		return eb.owner == es
	}
	if eb.owner == es {
		eb.QueueDraw()
		es.items = slices.Delete(es.items, es.IndexOf(el), es.IndexOf(el)+1)
		es.items = slices.Insert(es.items, es.insertIndex(before), el)
		eb.QueueDraw()
		return true
	}
	if old := eb.owner; old != nil {
		if es.view != nil {
			es.view.OnElementRemove(el)
		}
		i := old.IndexOf(el)
		old.items = slices.Delete(old.items, i, i+1)
	}
	return es.insert(el, before)
}

// isDescendantOf returns whether the owner of the collection is el or
// one of its descendants.
func (es *Elements) isDescendantOf(el Element) bool {
	for o := es.owner; o != nil; o = o.AsElement().parent {
		if sameElement(o, el) {
			return true
		}
	}
	return false
}

func (es *Elements) insertIndex(before Element) int {
	if i := es.IndexOf(before); i >= 0 {
		return i
	}
	return len(es.items)
}

func (es *Elements) insert(el, before Element) bool {
	eb := el.AsElement()
	eb.owner = es
	eb.parent = es.owner
	if es.view != nil && !es.view.OnElementAdd(el) {
		eb.owner = nil
		eb.parent = nil
		return false
	}
	es.items = slices.Insert(es.items, es.insertIndex(before), el)
	eb.QueueDraw()
	return true
}

// RemoveElement removes and destroys el. It returns false if el is not
// in the collection.
func (es *Elements) RemoveElement(el Element) bool {
	i := es.IndexOf(el)
	if i < 0 {
		return false
	}
	if es.view != nil {
		es.view.OnElementRemove(el)
	}
	// handlers run by the view may have changed the collection
	if i = es.IndexOf(el); i >= 0 {
		es.items = slices.Delete(es.items, i, i+1)
	}
	el.AsElement().destroy()
	return true
}

// RemoveAll removes and destroys all elements.
func (es *Elements) RemoveAll() {
	for len(es.items) > 0 {
		es.RemoveElement(es.items[len(es.items)-1])
	}
}

// Layout lays out the elements in order.
func (es *Elements) Layout() {
	for _, el := range slices.Clone(es.items) {
		if el.AsElement().IsAlive() {
			el.Layout()
		}
	}
}

// Draw draws the visible elements in order on a canvas in the
// coordinates of the owner. Elements outside of the damage region of
// the view are skipped.
func (es *Elements) Draw(c graphics.Canvas) {
	for _, el := range slices.Clone(es.items) {
		eb := el.AsElement()
		if !eb.IsAlive() || !eb.visible {
			continue
		}
		if es.view != nil && !es.view.IsElementInClipRegion(el) {
			continue
		}
		c.PushState()
		c.TranslateCoordinates(eb.geom.x, eb.geom.y)
		if eb.rotation != 0 {
			c.RotateCoordinates(geom.DegreesToRadians(eb.rotation))
		}
		if eb.geom.pinX != 0 || eb.geom.pinY != 0 {
			c.TranslateCoordinates(-eb.geom.pinX, -eb.geom.pinY)
		}
		eb.Draw(c)
		c.PopState()
	}
}

// OnMouseEvent dispatches a mouse event in owner coordinates to the
// topmost visible element under the pointer, continuing downwards
// while elements leave the event unhandled without firing. It returns
// the result, the element that handled the event, and the topmost
// element under the pointer.
func (es *Elements) OnMouseEvent(ev *events.Mouse) (result events.Result, fired, in Element) {
	items := slices.Clone(es.items)
	for i := len(items) - 1; i >= 0; i-- {
		child := items[i]
		cb := child.AsElement()
		if !cb.IsAlive() || !cb.visible {
			continue
		}
		x, y := cb.ParentCoordToSelfCoord(ev.X, ev.Y)
		if !child.IsPointIn(x, y) {
			continue
		}
		h := Hold(child)
		r, f, cin := cb.OnMouseEvent(ev.WithPos(x, y).(*events.Mouse), false)
		if h.Get() == nil {
			return r, nil, in
		}
		if in == nil {
			in = cin
		}
		if f != nil || r != events.Unhandled {
			return r, f, in
		}
	}
	return events.Unhandled, nil, in
}

// OnDragEvent dispatches a drag event in owner coordinates to the
// topmost drop target under the pointer.
func (es *Elements) OnDragEvent(ev *events.Drag) (events.Result, Element) {
	items := slices.Clone(es.items)
	for i := len(items) - 1; i >= 0; i-- {
		child := items[i]
		cb := child.AsElement()
		if !cb.IsAlive() || !cb.visible {
			continue
		}
		x, y := cb.ParentCoordToSelfCoord(ev.X, ev.Y)
		if !child.IsPointIn(x, y) {
			continue
		}
		h := Hold(child)
		r, f := cb.OnDragEvent(ev.WithPos(x, y).(*events.Drag), false)
		if h.Get() == nil {
			return r, nil
		}
		if f != nil || r != events.Unhandled {
			return r, f
		}
	}
	return events.Unhandled, nil
}
