// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core provides the element tree of a gadget view: elements,
// element collections and the [View] that lays them out, draws them
// incrementally and routes input events to them.
package core

import (
	"cogentcore.org/gadget/cursors"
	"cogentcore.org/gadget/events"
	"cogentcore.org/gadget/geom"
	"cogentcore.org/gadget/graphics"
	"cogentcore.org/gadget/imagecache"
	"cogentcore.org/gadget/script"
)

// Element is the interface that all elements satisfy. The common
// element functionality is defined on [ElementBase], which all element
// types must embed. This interface only contains the methods that
// element types may need to override. You can call
// [Element.AsElement] to get the [ElementBase] of an Element.
type Element interface {

	// AsElement returns the [ElementBase] of this Element.
	AsElement() *ElementBase

	// Init is called once by [Factory.Create] after the element is
	// bound to its view. Element types register their script
	// properties here, and must call the Init of the type they embed.
	Init()

	// Layout recomputes the geometry of the element and its children.
	// It must be idempotent. Element types that compute an intrinsic
	// size call [ElementBase.Layout] after updating it.
	Layout()

	// DoDraw draws the element on a canvas that is already
	// transformed and clipped to the element. children is the canvas
	// the children were drawn on, or nil.
	DoDraw(c graphics.Canvas, children graphics.Canvas)

	// DefaultSize returns the size used when width or height is not
	// specified.
	DefaultSize() (width, height float64)

	// DefaultPosition returns the position used when x or y is not
	// specified.
	DefaultPosition() (x, y float64)

	// IsPointIn returns whether the point, in element coordinates,
	// hits the element.
	IsPointIn(x, y float64) bool

	// HitTestAt returns the hit test of the point in element
	// coordinates.
	HitTestAt(x, y float64) HitTest

	// HandleMouseEvent, HandleKeyEvent and HandleOtherEvent run the
	// built-in behavior of the element type after the script
	// listeners, unless a listener canceled the event.
	HandleMouseEvent(e *events.Mouse) events.Result
	HandleKeyEvent(e *events.Key) events.Result
	HandleOtherEvent(e events.Event) events.Result

	// IsFullyOpaque returns whether the element covers its whole
	// rectangle with opaque pixels.
	IsFullyOpaque() bool

	// OnPopupOff is called when the element stops being the popup
	// element of the view.
	OnPopupOff()

	// AddContextMenuItems adds items to the context menu. It returns
	// false to hide the default items of the view.
	AddContextMenuItems(m events.Menu) bool

	// OnDestroy releases the resources of the element type.
	OnDestroy()
}

// ElementBase implements the [Element] interface and provides the
// core functionality of an element: geometry, visibility, the script
// surface and event dispatch.
type ElementBase struct {

	// This is the Element that embeds this ElementBase. It is nil once
	// the element has been destroyed, which is how [Holder] detects
	// destroyed elements.
	This Element

	// Script is the script surface of the element.
	Script script.Object

	// Listeners are the event listeners of the element, which are also
	// exposed to scripts as "onclick", "onmousedown" etc.
	Listeners events.Listeners

	view     *View
	parent   Element
	owner    *Elements
	children *Elements

	tag  string
	name string

	x, y, pinX, pinY, width, height Dim

	rotation   float64
	opacity    float64
	visible    bool
	enabled    bool
	cursor     cursors.Cursor
	hitTest    HitTest
	tooltip    string
	dropTarget bool

	mask      string
	maskImage *imagecache.SharedImage

	// resolved geometry, updated by Layout
	geom resolved

	// scroll offset of the children
	scrollX, scrollY float64
}

type resolved struct {
	x, y, width, height, pinX, pinY, rotation float64
}

// AsElement satisfies the [Element] interface.
func (e *ElementBase) AsElement() *ElementBase {
	return e
}

// Init registers the common script surface of all elements.
func (e *ElementBase) Init() {
	e.opacity = 1
	e.visible = true
	e.enabled = true
	e.cursor = cursors.Arrow
	e.hitTest = HitTestClient
	e.registerProperties()
}

// IsAlive returns whether the element has not been destroyed.
func (e *ElementBase) IsAlive() bool {
	return e.This != nil
}

// View returns the view of the element.
func (e *ElementBase) View() *View {
	return e.view
}

// Tag returns the tag name the element was created with.
func (e *ElementBase) Tag() string {
	return e.tag
}

// Name returns the name of the element, which may be empty.
func (e *ElementBase) Name() string {
	return e.name
}

// Parent returns the parent element, or nil for top-level elements.
func (e *ElementBase) Parent() Element {
	return e.parent
}

// Owner returns the collection containing the element.
func (e *ElementBase) Owner() *Elements {
	return e.owner
}

// Children returns the children of the element, or nil if the element
// type has none.
func (e *ElementBase) Children() *Elements {
	return e.children
}

// Index returns the index of the element in its collection, or -1.
func (e *ElementBase) Index() int {
	if e.owner == nil {
		return -1
	}
	return e.owner.IndexOf(e.This)
}

// EnableChildren gives the element a collection of children. Element
// types that contain other elements call it from Init.
func (e *ElementBase) EnableChildren() {
	if e.children != nil {
		return
	}
	e.children = NewElements(e.view.Factory(), e.This, e.view)
	e.Script.RegisterConstant("children", e.children)
	e.Script.RegisterMethod("appendElement", func(args ...any) (any, error) {
		return e.children.AppendElementFromXML(argString(args, 0))
	})
	e.Script.RegisterMethod("insertElement", func(args ...any) (any, error) {
		before, _ := argElement(args, 1)
		return e.children.InsertElementFromXML(argString(args, 0), before)
	})
	e.Script.RegisterMethod("removeElement", func(args ...any) (any, error) {
		el, ok := argElement(args, 0)
		return ok && e.children.RemoveElement(el), nil
	})
	e.Script.RegisterMethod("removeAllElements", func(args ...any) (any, error) {
		e.children.RemoveAll()
		return nil, nil
	})
}

// X returns the specified x position in the parent.
func (e *ElementBase) X() Dim { return e.x }

// Y returns the specified y position in the parent.
func (e *ElementBase) Y() Dim { return e.y }

// Width returns the specified width.
func (e *ElementBase) Width() Dim { return e.width }

// Height returns the specified height.
func (e *ElementBase) Height() Dim { return e.height }

// PinX returns the specified x coordinate of the pin.
func (e *ElementBase) PinX() Dim { return e.pinX }

// PinY returns the specified y coordinate of the pin.
func (e *ElementBase) PinY() Dim { return e.pinY }

// SetX sets the x position in the parent. An unspecified value uses
// [Element.DefaultPosition].
func (e *ElementBase) SetX(d Dim) {
	e.setDim(&e.x, d)
}

// SetY sets the y position in the parent.
func (e *ElementBase) SetY(d Dim) {
	e.setDim(&e.y, d)
}

// SetWidth sets the width. Relative widths are fractions of the width
// of the parent, and an unspecified value uses [Element.DefaultSize].
func (e *ElementBase) SetWidth(d Dim) {
	e.setDim(&e.width, d)
}

// SetHeight sets the height, like [ElementBase.SetWidth].
func (e *ElementBase) SetHeight(d Dim) {
	e.setDim(&e.height, d)
}

// SetPinX sets the x coordinate of the pin, the point of the element
// placed at its position and around which it rotates. Relative values
// are fractions of the element width.
func (e *ElementBase) SetPinX(d Dim) {
	e.setDim(&e.pinX, d)
}

// SetPinY sets the y coordinate of the pin. Relative values are
// fractions of the element height.
func (e *ElementBase) SetPinY(d Dim) {
	e.setDim(&e.pinY, d)
}

func (e *ElementBase) setDim(dst *Dim, d Dim) {
	if *dst == d {
		return
	}
	e.QueueDraw()
	*dst = d
}

// PixelX returns the x position in pixels as of the last layout.
func (e *ElementBase) PixelX() float64 { return e.geom.x }

// PixelY returns the y position in pixels as of the last layout.
func (e *ElementBase) PixelY() float64 { return e.geom.y }

// PixelWidth returns the width in pixels as of the last layout.
func (e *ElementBase) PixelWidth() float64 { return e.geom.width }

// PixelHeight returns the height in pixels as of the last layout.
func (e *ElementBase) PixelHeight() float64 { return e.geom.height }

// PixelPinX returns the x coordinate of the pin in pixels.
func (e *ElementBase) PixelPinX() float64 { return e.geom.pinX }

// PixelPinY returns the y coordinate of the pin in pixels.
func (e *ElementBase) PixelPinY() float64 { return e.geom.pinY }

// Rotation returns the rotation in degrees.
func (e *ElementBase) Rotation() float64 {
	return e.rotation
}

// SetRotation sets the clockwise rotation around the pin in degrees.
func (e *ElementBase) SetRotation(degrees float64) {
	if degrees == e.rotation {
		return
	}
	e.QueueDraw()
	e.rotation = degrees
}

// Opacity returns the opacity as set.
func (e *ElementBase) Opacity() float64 {
	return e.opacity
}

// SetOpacity sets the opacity. Values outside of [0, 1] are kept, and
// clamped when drawing.
func (e *ElementBase) SetOpacity(opacity float64) {
	if opacity == e.opacity {
		return
	}
	e.QueueDraw()
	e.opacity = opacity
	e.QueueDraw()
}

// Visible returns whether the element itself is visible, regardless
// of its ancestors.
func (e *ElementBase) Visible() bool {
	return e.visible
}

// SetVisible shows or hides the element.
func (e *ElementBase) SetVisible(visible bool) {
	if visible == e.visible {
		return
	}
	if visible {
		e.visible = true
		e.QueueDraw()
		return
	}
	e.QueueDraw()
	e.visible = false
}

// Enabled returns whether the element itself is enabled.
func (e *ElementBase) Enabled() bool {
	return e.enabled
}

// SetEnabled enables or disables the element. Disabled elements
// receive no mouse or keyboard events.
func (e *ElementBase) SetEnabled(enabled bool) {
	if enabled == e.enabled {
		return
	}
	e.enabled = enabled
	e.QueueDraw()
}

// IsReallyVisible returns whether the element and all of its ancestors
// are visible with a non-zero opacity.
func (e *ElementBase) IsReallyVisible() bool {
	for el := e; el != nil; el = parentBase(el) {
		if !el.visible || el.opacity == 0 {
			return false
		}
	}
	return true
}

// IsReallyEnabled returns whether the element and all of its ancestors
// are enabled.
func (e *ElementBase) IsReallyEnabled() bool {
	for el := e; el != nil; el = parentBase(el) {
		if !el.enabled {
			return false
		}
	}
	return true
}

func parentBase(e *ElementBase) *ElementBase {
	if e.parent == nil {
		return nil
	}
	return e.parent.AsElement()
}

// Cursor returns the cursor shown over the element.
func (e *ElementBase) Cursor() cursors.Cursor {
	return e.cursor
}

// SetCursor sets the cursor shown over the element.
func (e *ElementBase) SetCursor(c cursors.Cursor) {
	e.cursor = c
}

// HitTest returns the hit test code reported over the element.
func (e *ElementBase) HitTest() HitTest {
	return e.hitTest
}

// SetHitTest sets the hit test code reported over the element.
func (e *ElementBase) SetHitTest(h HitTest) {
	e.hitTest = h
}

// Tooltip returns the tooltip of the element.
func (e *ElementBase) Tooltip() string {
	return e.tooltip
}

// SetTooltip sets the tooltip shown while the mouse is over the element.
func (e *ElementBase) SetTooltip(tooltip string) {
	e.tooltip = tooltip
}

// DropTarget returns whether the element receives drag events.
func (e *ElementBase) DropTarget() bool {
	return e.dropTarget
}

// SetDropTarget sets whether the element receives drag events.
func (e *ElementBase) SetDropTarget(target bool) {
	e.dropTarget = target
}

// Mask returns the name of the mask image.
func (e *ElementBase) Mask() string {
	return e.mask
}

// SetMask sets the mask image. Black pixels of the mask hide the
// element, and other pixels show it.
func (e *ElementBase) SetMask(mask string) {
	if mask == e.mask {
		return
	}
	e.mask = mask
	if e.maskImage != nil {
		e.maskImage.Destroy()
		e.maskImage = nil
	}
	if mask != "" && e.view != nil {
		e.maskImage = e.view.LoadImage(mask, true)
	}
	e.QueueDraw()
}

// QueueDraw adds the current extents of the element to the damage
// region of the view and asks for a draw.
func (e *ElementBase) QueueDraw() {
	if e.view == nil || e.This == nil {
		return
	}
	if e.owner != nil && e.IsReallyVisible() {
		e.view.AddElementToClipRegion(e.This, nil)
	}
	e.view.QueueDraw()
}

// Focus gives the keyboard focus to the element.
func (e *ElementBase) Focus() {
	if e.view != nil && e.This != nil {
		e.view.SetFocus(e.This)
	}
}

// KillFocus removes the keyboard focus from the element.
func (e *ElementBase) KillFocus() {
	if e.view != nil && e.This != nil && sameElement(e.view.FocusedElement(), e.This) {
		e.view.SetFocus(nil)
	}
}

// IsFocused returns whether the element has the keyboard focus.
func (e *ElementBase) IsFocused() bool {
	return e.view != nil && e.This != nil && e.view.focused.Is(e.This)
}

// parentSize returns the size that relative dimensions refer to.
func (e *ElementBase) parentSize() (float64, float64) {
	if e.parent != nil {
		pb := e.parent.AsElement()
		return pb.geom.width, pb.geom.height
	}
	if e.view != nil {
		return e.view.Width(), e.view.Height()
	}
	return 0, 0
}

// Layout resolves the position and size of the element against its
// parent, and lays out the children. If the geometry changed, the new
// extents are added to the damage region, and an onsize event is
// posted if the size changed.
func (e *ElementBase) Layout() {
	if e.This == nil {
		return
	}
	pw, ph := e.parentSize()
	var dw, dh float64
	if !e.width.Specified || !e.height.Specified {
		dw, dh = e.This.DefaultSize()
	}
	g := resolved{width: dw, height: dh, rotation: e.rotation}
	if e.width.Specified {
		g.width = e.width.Pixels(pw)
	}
	if e.height.Specified {
		g.height = e.height.Pixels(ph)
	}
	g.width = max(g.width, 0)
	g.height = max(g.height, 0)
	if !e.x.Specified || !e.y.Specified {
		g.x, g.y = e.This.DefaultPosition()
	}
	if e.x.Specified {
		g.x = e.x.Pixels(pw)
	}
	if e.y.Specified {
		g.y = e.y.Pixels(ph)
	}
	g.pinX = e.pinX.Pixels(g.width)
	g.pinY = e.pinY.Pixels(g.height)

	if g != e.geom {
		sized := g.width != e.geom.width || g.height != e.geom.height
		e.geom = g
		e.QueueDraw()
		if sized && e.view != nil {
			e.view.PostElementSizeEvent(e.This, events.Size)
		}
	}
	if e.children != nil {
		e.children.Layout()
	}
}

// DefaultSize returns zero.
func (e *ElementBase) DefaultSize() (float64, float64) {
	return 0, 0
}

// DefaultPosition returns zero.
func (e *ElementBase) DefaultPosition() (float64, float64) {
	return 0, 0
}

// origin returns the position of the element in the coordinates of
// its parent element, taking the scroll offset of the parent into
// account.
func (e *ElementBase) origin() (float64, float64) {
	x, y := e.geom.x, e.geom.y
	if pb := parentBase(e); pb != nil {
		x -= pb.scrollX
		y -= pb.scrollY
	}
	return x, y
}

// ChildCalculator returns a calculator converting coordinates of the
// parent element (or of the view for top-level elements) to element
// coordinates.
func (e *ElementBase) ChildCalculator() geom.ChildCalculator {
	x, y := e.origin()
	return geom.NewChildCalculator(x, y, e.geom.pinX, e.geom.pinY, geom.DegreesToRadians(e.rotation))
}

// ParentCalculator returns a calculator converting element coordinates
// to coordinates of the parent element.
func (e *ElementBase) ParentCalculator() geom.ParentCalculator {
	x, y := e.origin()
	return geom.NewParentCalculator(x, y, e.geom.pinX, e.geom.pinY, geom.DegreesToRadians(e.rotation))
}

// ParentCoordToSelfCoord converts coordinates of the parent element
// to element coordinates.
func (e *ElementBase) ParentCoordToSelfCoord(x, y float64) (float64, float64) {
	return e.ChildCalculator().Convert(x, y)
}

// SelfCoordToParentCoord converts element coordinates to coordinates
// of the parent element.
func (e *ElementBase) SelfCoordToParentCoord(x, y float64) (float64, float64) {
	return e.ParentCalculator().Convert(x, y)
}

// ViewCoordToSelfCoord converts view coordinates to element coordinates.
func (e *ElementBase) ViewCoordToSelfCoord(x, y float64) (float64, float64) {
	if pb := parentBase(e); pb != nil {
		x, y = pb.ViewCoordToSelfCoord(x, y)
	}
	return e.ParentCoordToSelfCoord(x, y)
}

// SelfCoordToViewCoord converts element coordinates to view coordinates.
func (e *ElementBase) SelfCoordToViewCoord(x, y float64) (float64, float64) {
	for el := e; el != nil; el = parentBase(el) {
		x, y = el.SelfCoordToParentCoord(x, y)
	}
	return x, y
}

// ExtentsInParent returns the bounding box of the element in the
// coordinates of its parent.
func (e *ElementBase) ExtentsInParent() geom.Rect {
	x, y := e.origin()
	return geom.ChildExtentInParent(x, y, e.geom.pinX, e.geom.pinY,
		e.geom.width, e.geom.height, geom.DegreesToRadians(e.rotation))
}

// ExtentsInView returns the bounding box of the element in view
// coordinates.
func (e *ElementBase) ExtentsInView() geom.Rect {
	return e.RectExtentsInView(geom.R(0, 0, e.geom.width, e.geom.height))
}

// RectExtentsInView returns the bounding box in view coordinates of a
// rectangle in element coordinates.
func (e *ElementBase) RectExtentsInView(r geom.Rect) geom.Rect {
	var calcs []geom.ParentCalculator
	for el := e; el != nil; el = parentBase(el) {
		calcs = append(calcs, el.ParentCalculator())
	}
	pts := []geom.Point{
		geom.Pt(r.X, r.Y), geom.Pt(r.Right(), r.Y),
		geom.Pt(r.X, r.Bottom()), geom.Pt(r.Right(), r.Bottom()),
	}
	for i := range pts {
		for _, c := range calcs {
			pts[i].X, pts[i].Y = c.Convert(pts[i].X, pts[i].Y)
		}
	}
	return geom.BoundsOf(pts...)
}

// IsPointIn returns whether the point is inside the element, and not
// under a transparent pixel of the mask.
func (e *ElementBase) IsPointIn(x, y float64) bool {
	if !geom.IsPointInElement(x, y, e.geom.width, e.geom.height) {
		return false
	}
	if e.maskImage != nil && e.maskImage.IsValid() {
		_, opacity, ok := e.maskImage.PointValue(x, y)
		return !ok || opacity > 0
	}
	return true
}

// HitTestAt returns the hit test of the element.
func (e *ElementBase) HitTestAt(x, y float64) HitTest {
	return e.hitTest
}

// Default implementations of the [Element] event and drawing hooks.

func (e *ElementBase) HandleMouseEvent(ev *events.Mouse) events.Result { return events.Unhandled }
func (e *ElementBase) HandleKeyEvent(ev *events.Key) events.Result     { return events.Unhandled }
func (e *ElementBase) HandleOtherEvent(ev events.Event) events.Result  { return events.Unhandled }

func (e *ElementBase) IsFullyOpaque() bool { return false }

func (e *ElementBase) OnPopupOff() {}

func (e *ElementBase) AddContextMenuItems(m events.Menu) bool { return true }

func (e *ElementBase) OnDestroy() {}

// DoDraw draws the children canvas.
func (e *ElementBase) DoDraw(c graphics.Canvas, children graphics.Canvas) {
	if children != nil {
		c.DrawCanvas(0, 0, children)
	}
}

// Draw draws the element with its children on a canvas transformed to
// element coordinates.
func (e *ElementBase) Draw(c graphics.Canvas) {
	self := e.This
	w, h := e.geom.width, e.geom.height
	if self == nil || !e.visible || e.opacity <= 0 || w <= 0 || h <= 0 {
		return
	}
	c.PushState()
	defer c.PopState()
	c.IntersectRectClipRegion(0, 0, w, h)
	c.MultiplyOpacity(geom.Clamp(e.opacity, 0, 1))

	gfx := e.view.Graphics()
	var cc graphics.Canvas
	if e.children != nil && e.children.Count() > 0 && gfx != nil {
		cc = gfx.NewCanvas(w, h)
		if cc != nil {
			defer cc.Destroy()
			cc.TranslateCoordinates(-e.scrollX, -e.scrollY)
			e.children.Draw(cc)
		}
	}
	e.view.increaseDrawCount()

	mask := e.maskImage
	if mask == nil || mask.Canvas() == nil || gfx == nil {
		self.DoDraw(c, cc)
		return
	}
	tmp := gfx.NewCanvas(w, h)
	defer tmp.Destroy()
	self.DoDraw(tmp, cc)
	c.DrawCanvasWithMask(0, 0, tmp, 0, 0, mask.Canvas())
}

// fireEvent sends se to the listeners of the element through the view.
func (e *ElementBase) fireEvent(se *events.ScriptEvent) events.Result {
	if e.view == nil {
		return e.Listeners.Call(se)
	}
	return e.view.FireEvent(se, &e.Listeners)
}

// OnMouseEvent dispatches a mouse event in element coordinates. If
// direct is false, the event is first offered to the children, and the
// caller has already checked that the point is in the element.
// It returns the result, the element that handled the event, and the
// element under the pointer, which may be disabled.
func (e *ElementBase) OnMouseEvent(ev *events.Mouse, direct bool) (result events.Result, fired, in Element) {
	self := e.This
	if self == nil {
		return events.Unhandled, nil, nil
	}
	h := Hold(self)
	if !direct && !e.enabled {
		return events.Unhandled, nil, self
	}
	in = self
	if !direct && e.children != nil {
		r, f, cin := e.children.OnMouseEvent(ev)
		if h.Get() == nil {
			return r, nil, nil
		}
		if f != nil {
			return r, f, cin
		}
		if cin != nil {
			in = cin
		}
	}

	if ev.Type() == events.MouseDown && ev.Buttons.Has(events.Left) {
		e.Focus()
		if h.Get() == nil {
			return events.Unhandled, nil, nil
		}
	}

	se := events.NewScriptEvent(ev, self, nil)
	result = e.fireEvent(se)
	if h.Get() == nil {
		return result, nil, nil
	}
	if result != events.Canceled {
		result = result.Max(self.HandleMouseEvent(ev))
	}
	if h.Get() == nil {
		return result, nil, nil
	}
	return result, self, in
}

// OnDragEvent dispatches a drag event in element coordinates. Only
// drop targets receive drag events.
func (e *ElementBase) OnDragEvent(ev *events.Drag, direct bool) (events.Result, Element) {
	self := e.This
	if self == nil {
		return events.Unhandled, nil
	}
	h := Hold(self)
	if !direct && !e.enabled {
		return events.Unhandled, nil
	}
	if !direct && e.children != nil {
		r, f := e.children.OnDragEvent(ev)
		if h.Get() == nil {
			return r, nil
		}
		if f != nil {
			return r, f
		}
	}
	if !e.dropTarget {
		return events.Unhandled, nil
	}
	if ev.Type() == events.DragMotion {
		return events.Unhandled, self
	}
	result := e.fireEvent(events.NewScriptEvent(ev, self, nil))
	if h.Get() == nil {
		return result, nil
	}
	return result, self
}

// OnKeyEvent sends a key event to the element.
func (e *ElementBase) OnKeyEvent(ev *events.Key) events.Result {
	self := e.This
	if self == nil {
		return events.Unhandled
	}
	h := Hold(self)
	result := e.fireEvent(events.NewScriptEvent(ev, self, nil))
	if h.Get() != nil && result != events.Canceled {
		result = result.Max(self.HandleKeyEvent(ev))
	}
	return result
}

// OnOtherEvent sends a non-input event, such as [events.FocusIn], to
// the element.
func (e *ElementBase) OnOtherEvent(ev events.Event) events.Result {
	self := e.This
	if self == nil {
		return events.Unhandled
	}
	h := Hold(self)
	result := e.fireEvent(events.NewScriptEvent(ev, self, nil))
	if h.Get() != nil && result != events.Canceled {
		result = result.Max(self.HandleOtherEvent(ev))
	}
	return result
}

// destroy destroys the children and releases the element. The element
// must already be removed from its collection.
func (e *ElementBase) destroy() {
	self := e.This
	if self == nil {
		return
	}
	if e.children != nil {
		e.children.RemoveAll()
	}
	self.OnDestroy()
	e.Listeners.DisconnectAll()
	if e.maskImage != nil {
		e.maskImage.Destroy()
		e.maskImage = nil
	}
	e.This = nil
	e.owner = nil
	e.parent = nil
}

// sameElement returns whether a and b are the same element.
func sameElement(a, b Element) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.AsElement() == b.AsElement()
}
