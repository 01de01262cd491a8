// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cogentcore.org/gadget/cursors"
	"cogentcore.org/gadget/events"
)

// toElement returns a copy of a mouse event in view coordinates, moved
// into the coordinates of el.
func toElement(ev *events.Mouse, el Element) *events.Mouse {
	x, y := el.AsElement().ViewCoordToSelfCoord(ev.X, ev.Y)
	return ev.WithPos(x, y).(*events.Mouse)
}

// OnMouseEvent handles a mouse event from the host, in view
// coordinates. The view fires its own listeners, then sends the event
// to the elements, keeping track of the element under the mouse and of
// the element grabbing the mouse.
//
// Once the view has been drawn, events over transparent pixels of the
// canvas cache are not dispatched: the view reports
// [HitTestTransparent] so that the host can pass them through.
func (v *View) OnMouseEvent(ev *events.Mouse) events.Result {
	typ := ev.Type()
	if typ != events.MouseOut && v.grab.Get() == nil && v.enableCache && v.cache != nil {
		if _, opacity, ok := v.cache.PointValue(ev.X, ev.Y); ok && opacity == 0 {
			if v.mouseOver {
				v.OnMouseEvent(events.NewMouse(events.MouseOut, ev.X, ev.Y, events.NoButton, ev.Mods))
			}
			v.hitTest = HitTestTransparent
			return events.Unhandled
		}
	}

	switch {
	case typ == events.MouseOut && !v.mouseOver:
		return events.Unhandled
	case typ == events.MouseOver && v.mouseOver:
		return events.Unhandled
	case typ != events.MouseOut && typ != events.MouseOver && !v.mouseOver:
		v.OnMouseEvent(events.NewMouse(events.MouseOver, ev.X, ev.Y, events.NoButton, ev.Mods))
	}

	switch typ {
	case events.MouseOut:
		v.mouseOver = false
	case events.MouseOver:
		v.mouseOver = true
	}
	se := events.NewScriptEvent(ev, nil, nil)
	result := v.FireEvent(se, &v.Listeners)
	if result != events.Canceled {
		if typ == events.MouseOver {
			result = v.sendMouseEventToChildren(ev.WithType(events.MouseMove))
		} else {
			result = v.sendMouseEventToChildren(ev)
		}
	}

	if v.mouseOver && result == events.Unhandled && typ == events.MouseRClick &&
		ev.Buttons == events.Right && v.host != nil {
		if v.host.ShowContextMenu(events.Right) {
			result = events.Handled
		}
	}
	return result
}

func (v *View) sendMouseEventToChildren(ev *events.Mouse) events.Result {
	typ := ev.Type()
	if typ == events.MouseOver {
		return events.Unhandled
	}

	if g := v.grab.Get(); g != nil {
		if g.AsElement().IsReallyEnabled() && ev.Buttons.Has(events.Left) &&
			(typ == events.MouseMove || typ == events.MouseUp || typ == events.MouseClick) {
			result, _, _ := g.AsElement().OnMouseEvent(toElement(ev, g), true)
			if g := v.grab.Get(); g != nil {
				v.SetCursor(g.AsElement().cursor)
			}
			if typ == events.MouseClick {
				v.grab.Reset(nil)
			}
			return result
		}
		v.grab.Reset(nil)
	}

	if typ == events.MouseOut {
		result := events.Unhandled
		if m := v.mouseover.Get(); m != nil {
			result, _, _ = m.AsElement().OnMouseEvent(toElement(ev, m), true)
			v.mouseover.Reset(nil)
		}
		return result
	}

	var result events.Result
	var fired, in Element
	inPopup := false
	if p := v.popup.Get(); p != nil {
		pb := p.AsElement()
		if pb.IsReallyVisible() {
			pev := toElement(ev, p)
			if p.IsPointIn(pev.X, pev.Y) {
				inPopup = true
				result, fired, in = pb.OnMouseEvent(pev, false)
			}
		} else {
			v.SetPopupElement(nil)
		}
	}
	if !inPopup {
		result, fired, in = v.children.OnMouseEvent(ev)
		if typ == events.MouseDown && result != events.Canceled {
			v.SetPopupElement(nil)
		}
	}

	if !v.mouseOver {
		return result
	}
	firedH, inH := Hold(fired), Hold(in)

	if f := firedH.Get(); f != nil && typ == events.MouseDown && ev.Buttons.Has(events.Left) {
		v.grab.Reset(f)
	}

	if f := firedH.Get(); !v.mouseover.Is(f) && !(f == nil && v.mouseover.Get() == nil) {
		old := Hold(v.mouseover.Get())
		v.mouseover.Reset(f)
		if o := old.Get(); o != nil {
			out := events.NewMouse(events.MouseOut, ev.X, ev.Y, ev.Buttons, ev.Mods)
			o.AsElement().OnMouseEvent(toElement(out, o), true)
		}
		if m := v.mouseover.Get(); m != nil {
			over := events.NewMouse(events.MouseOver, ev.X, ev.Y, ev.Buttons, ev.Mods)
			m.AsElement().OnMouseEvent(toElement(over, m), true)
		}
	}

	if in := inH.Get(); in != nil {
		ib := in.AsElement()
		x, y := ib.ViewCoordToSelfCoord(ev.X, ev.Y)
		v.hitTest = in.HitTestAt(x, y)
		v.SetCursor(ib.cursor)
		if typ == events.MouseMove && !v.tooltip.Is(in) {
			v.tooltip.Reset(in)
			v.SetTooltip(ib.tooltip)
		}
	} else {
		v.hitTest = HitTestTransparent
		v.SetCursor(cursors.Arrow)
		v.tooltip.Reset(nil)
	}
	return result
}

// OnKeyEvent handles a key event from the host. The view fires its own
// listeners, then sends the event to the focused element. A focused
// element that became disabled loses the focus instead.
func (v *View) OnKeyEvent(ev *events.Key) events.Result {
	result := v.FireEvent(events.NewScriptEvent(ev, nil, nil), &v.Listeners)
	if result == events.Canceled {
		return result
	}
	f := v.focused.Get()
	if f == nil {
		return result
	}
	fb := f.AsElement()
	if !fb.IsReallyEnabled() {
		fb.OnOtherEvent(events.NewSimple(events.FocusOut))
		v.focused.Reset(nil)
		return result
	}
	return result.Max(fb.OnKeyEvent(ev))
}

// OnDragEvent handles a drag event from the host, in view coordinates.
// [events.DragMotion] events track the drop target under the pointer,
// which gets [events.DragOver] and [events.DragOut] events. A drop on a
// target that did not handle its dragover event becomes a dragout.
func (v *View) OnDragEvent(ev *events.Drag) events.Result {
	typ := ev.Type()
	if typ == events.DragOut || typ == events.DragDrop {
		result := events.Unhandled
		if d := v.dragover.Get(); d != nil {
			dev := ev
			if v.dragoverResult != events.Handled {
				dev = ev.WithType(events.DragOut)
			}
			x, y := d.AsElement().ViewCoordToSelfCoord(ev.X, ev.Y)
			result, _ = d.AsElement().OnDragEvent(dev.WithPos(x, y).(*events.Drag), true)
			v.dragover.Reset(nil)
		}
		return result
	}

	_, fired := v.children.OnDragEvent(ev)
	if !v.dragover.Is(fired) && !(fired == nil && v.dragover.Get() == nil) {
		v.dragoverResult = events.Unhandled
		firedH := Hold(fired)
		if old := v.dragover.Get(); old != nil {
			x, y := old.AsElement().ViewCoordToSelfCoord(ev.X, ev.Y)
			out := events.NewDrag(events.DragOut, x, y, ev.Files)
			old.AsElement().OnDragEvent(out, true)
		}
		v.dragover.Reset(firedH.Get())
		if d := v.dragover.Get(); d != nil {
			db := d.AsElement()
			if !db.IsReallyVisible() {
				v.dragover.Reset(nil)
			} else {
				x, y := db.ViewCoordToSelfCoord(ev.X, ev.Y)
				v.dragoverResult, _ = db.OnDragEvent(events.NewDrag(events.DragOver, x, y, ev.Files), true)
			}
		}
	}
	return v.dragoverResult
}

// OnOtherEvent handles an event from the host that is neither a mouse,
// key nor drag event, such as [events.Open] or [events.Close]. Losing
// the focus of the host removes the focus from the focused element.
func (v *View) OnOtherEvent(ev events.Event) events.Result {
	switch ev.Type() {
	case events.FocusIn:
		return events.Unhandled
	case events.FocusOut:
		v.SetFocus(nil)
		return events.Unhandled
	}
	return v.FireEvent(events.NewScriptEvent(ev, nil, nil), &v.Listeners)
}

// OnSizing asks the listeners of the sizing signal whether the view can
// be resized to the given size. They can adjust the size. It returns
// the accepted size, and false if a listener canceled the resize.
func (v *View) OnSizing(width, height float64) (float64, float64, bool) {
	out := events.NewSizing(width, height)
	se := events.NewScriptEvent(events.NewSizing(width, height), nil, out)
	if v.FireEvent(se, &v.Listeners) == events.Canceled {
		return width, height, false
	}
	return out.Width, out.Height, true
}

// OnAddContextMenuItems lets the element under the mouse and then the
// listeners of the oncontextmenu signal add items to the context menu.
// It returns false if the default items must be hidden.
func (v *View) OnAddContextMenuItems(m events.Menu) bool {
	result := true
	if mo := v.mouseover.Get(); mo != nil {
		if mo.AsElement().IsReallyEnabled() {
			result = mo.AddContextMenuItems(m)
		} else {
			v.mouseover.Reset(nil)
		}
	}
	se := events.NewScriptEvent(events.NewContextMenu(m), nil, nil)
	if v.FireEvent(se, &v.Listeners) == events.Canceled {
		return false
	}
	return result
}
