// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"log/slog"
	"math"
	"slices"

	"cogentcore.org/gadget/clip"
	"cogentcore.org/gadget/config"
	"cogentcore.org/gadget/cursors"
	"cogentcore.org/gadget/events"
	"cogentcore.org/gadget/filemanager"
	"cogentcore.org/gadget/geom"
	"cogentcore.org/gadget/graphics"
	"cogentcore.org/gadget/imagecache"
	"cogentcore.org/gadget/mainloop"
	"cogentcore.org/gadget/options"
	"cogentcore.org/gadget/script"
)

// ViewConfig contains the collaborators of a [View]. Zero fields get
// defaults in [NewView].
type ViewConfig struct {

	// Factory creates the elements. It defaults to [NewDefaultFactory].
	Factory *Factory

	// Script compiles the script code of event attributes. Without it,
	// such attributes are ignored.
	Script ScriptContext

	// MainLoop runs the timers. It defaults to a new [mainloop.Loop].
	MainLoop mainloop.MainLoop

	// Settings default to [config.Default].
	Settings *config.Settings

	// Files are the files of the gadget.
	Files filemanager.FileManager

	// Images is the image cache shared between views. A private one is
	// created if it is nil.
	Images *imagecache.Global

	// Options are the options of the gadget. Changes are forwarded to
	// the onoptionchanged signal of the view.
	Options options.Options
}

// View is the root of the user interface of a gadget. It owns the
// top-level elements, lays them out and draws them incrementally into
// a cached canvas, routes the input events of its [ViewHost] to them,
// and runs their timers.
//
// A View and its elements must only be used from the goroutine running
// its main loop.
type View struct {

	// Script is the script surface of the view.
	Script script.Object

	// Listeners are the event listeners of the view, which are also
	// exposed to scripts as "onopen", "onsize" etc.
	Listeners events.Listeners

	host      ViewHost
	graphics  graphics.Graphics
	factory   *Factory
	scriptCtx ScriptContext
	loop      mainloop.MainLoop
	settings  *config.Settings
	files     filemanager.FileManager
	images    *imagecache.Cache
	options   options.Options
	optConn   *events.Connection

	children *Elements
	names    map[string]Element

	focused, mouseover, grab, dragover, tooltip, popup Holder

	dragoverResult events.Result
	hitTest        HitTest

	clip        *clip.Region
	cache       graphics.Canvas
	enableCache bool
	clipEnabled bool
	needRedraw  bool
	drawQueued  bool
	drawCount   int

	eventsEnabled bool
	eventStack    []*events.ScriptEvent
	postedSizes   []postedSize

	timers map[int]*timerWatch

	width, height               float64
	defaultWidth, defaultHeight float64
	resizable                   ResizableMode
	caption                     string
	showCaptionAlways           bool
	mouseOver                   bool

	cursorSet  bool
	lastCursor cursors.Cursor
	destroyed  bool
}

type postedSize struct {
	el  Holder
	typ events.Types
}

// NewView returns a new view shown by host, which may be nil.
func NewView(host ViewHost, vc ViewConfig) *View {
	v := &View{
		factory:       vc.Factory,
		scriptCtx:     vc.Script,
		loop:          vc.MainLoop,
		settings:      vc.Settings,
		files:         vc.Files,
		options:       vc.Options,
		names:         map[string]Element{},
		timers:        map[int]*timerWatch{},
		eventsEnabled: true,
		needRedraw:    true,
		resizable:     ResizableZoom,
		hitTest:       HitTestClient,
	}
	if v.factory == nil {
		v.factory = NewDefaultFactory()
	}
	if v.loop == nil {
		v.loop = mainloop.NewLoop()
	}
	if v.settings == nil {
		v.settings = config.Default()
	}
	global := vc.Images
	if global == nil {
		global = imagecache.NewGlobal(nil)
	}
	v.images = imagecache.New(global)
	v.defaultWidth, v.defaultHeight = v.settings.DefaultWidth, v.settings.DefaultHeight
	v.enableCache = v.settings.CanvasCache
	v.clipEnabled = v.settings.ClipRegion
	v.clip = clip.NewRegion(v.settings.ClipRatio)
	v.children = NewElements(v.factory, nil, v)
	if v.options != nil {
		v.optConn = v.options.OnChanged(v.onOptionChanged)
	}
	v.registerProperties()
	v.attachHost(host)
	return v
}

func (v *View) attachHost(host ViewHost) {
	v.host = host
	v.graphics = nil
	if host == nil {
		return
	}
	v.graphics = host.NewGraphics()
	host.SetView(v)
	host.SetResizable(v.resizable)
	host.SetCaption(v.caption)
	host.SetShowCaptionAlways(v.showCaptionAlways)
}

// Host returns the host of the view, which may be nil.
func (v *View) Host() ViewHost {
	return v.host
}

// SwitchViewHost attaches the view to another host and returns the old
// one, which is detached but not destroyed. The canvas cache is
// rebuilt with the graphics of the new host.
func (v *View) SwitchViewHost(host ViewHost) ViewHost {
	old := v.host
	if old != nil {
		old.SetView(nil)
	}
	if v.cache != nil {
		v.cache.Destroy()
		v.cache = nil
	}
	v.cursorSet = false
	v.attachHost(host)
	v.needRedraw = true
	v.QueueDraw()
	return old
}

// Graphics returns the graphics of the host, or nil without a host.
func (v *View) Graphics() graphics.Graphics {
	return v.graphics
}

// Factory returns the element factory of the view.
func (v *View) Factory() *Factory {
	return v.factory
}

// ScriptContext returns the script context, which may be nil.
func (v *View) ScriptContext() ScriptContext {
	return v.scriptCtx
}

// MainLoop returns the main loop running the timers of the view.
func (v *View) MainLoop() mainloop.MainLoop {
	return v.loop
}

// Settings returns the settings of the view.
func (v *View) Settings() *config.Settings {
	return v.settings
}

// Files returns the files of the gadget, which may be nil.
func (v *View) Files() filemanager.FileManager {
	return v.files
}

// Options returns the options of the gadget, which may be nil.
func (v *View) Options() options.Options {
	return v.options
}

// Children returns the top-level elements.
func (v *View) Children() *Elements {
	return v.children
}

// Width returns the width of the view. Zero means that the width is
// unset and [View.DefaultSize] applies.
func (v *View) Width() float64 {
	return v.width
}

// Height returns the height of the view.
func (v *View) Height() float64 {
	return v.height
}

// DefaultSize returns the size of the view used while its size is
// unset. It is the first size set on the view, or the size from the
// settings.
func (v *View) DefaultSize() (float64, float64) {
	return v.defaultWidth, v.defaultHeight
}

// SetSize sets the size of the view. If it changed, the canvas cache
// is dropped, the elements are laid out, and the onsize signal fires.
func (v *View) SetSize(width, height float64) {
	if width == v.width && height == v.height {
		return
	}
	if v.cache != nil {
		v.cache.Destroy()
		v.cache = nil
	}
	if v.width == 0 && width > 0 {
		v.defaultWidth = width
	}
	if v.height == 0 && height > 0 {
		v.defaultHeight = height
	}
	v.width, v.height = width, height
	v.children.Layout()
	v.FireEvent(events.NewScriptEvent(events.NewSimple(events.Size), nil, nil), &v.Listeners)
	if v.host != nil {
		v.host.QueueResize()
	}
}

// SetWidth sets the width of the view.
func (v *View) SetWidth(width float64) {
	v.SetSize(width, v.height)
}

// SetHeight sets the height of the view.
func (v *View) SetHeight(height float64) {
	v.SetSize(v.width, height)
}

// ResizeBy changes the size of the view by the given amounts.
func (v *View) ResizeBy(dw, dh float64) {
	v.SetSize(v.width+dw, v.height+dh)
}

// Resizable returns the resizable mode of the view.
func (v *View) Resizable() ResizableMode {
	return v.resizable
}

func (v *View) SetResizable(mode ResizableMode) {
	v.resizable = mode
	if v.host != nil {
		v.host.SetResizable(mode)
	}
}

func (v *View) Caption() string {
	return v.caption
}

func (v *View) SetCaption(caption string) {
	v.caption = caption
	if v.host != nil {
		v.host.SetCaption(caption)
	}
}

func (v *View) ShowCaptionAlways() bool {
	return v.showCaptionAlways
}

func (v *View) SetShowCaptionAlways(always bool) {
	v.showCaptionAlways = always
	if v.host != nil {
		v.host.SetShowCaptionAlways(always)
	}
}

// HitTest returns the hit test of the last mouse event.
func (v *View) HitTest() HitTest {
	return v.hitTest
}

// EnableEvents enables or disables the script listeners of the view
// and its elements. Dispatch continues while they are disabled.
func (v *View) EnableEvents(enable bool) {
	v.eventsEnabled = enable
}

// EnableCanvasCache enables or disables the canvas cache. Disabling it
// drops the cache and asks for a full draw.
func (v *View) EnableCanvasCache(enable bool) {
	v.enableCache = enable
	if !enable && v.cache != nil {
		v.cache.Destroy()
		v.cache = nil
		v.QueueDraw()
	}
}

// EnableClipRegion enables or disables partial redraws.
func (v *View) EnableClipRegion(enable bool) {
	v.clipEnabled = enable
}

// MarkRedraw forces the next draw to redraw every element.
func (v *View) MarkRedraw() {
	v.needRedraw = true
}

// QueueDraw asks the host for a draw. It does nothing while a draw is
// already queued or in progress.
func (v *View) QueueDraw() {
	if !v.drawQueued && v.host != nil {
		v.drawQueued = true
		v.host.QueueDraw()
	}
}

// ClipRegion returns the damage region accumulated since the last
// draw.
func (v *View) ClipRegion() *clip.Region {
	return v.clip
}

// IsElementInClipRegion returns whether el must be drawn by the
// current draw.
func (v *View) IsElementInClipRegion(el Element) bool {
	return !v.clipEnabled || !v.enableCache || v.clip.IsEmpty() ||
		v.clip.Overlaps(el.AsElement().ExtentsInView())
}

// AddElementToClipRegion adds the extents of a rectangle of el, or of
// the whole element if r is nil, to the damage region.
func (v *View) AddElementToClipRegion(el Element, r *geom.Rect) {
	if !v.clipEnabled || !v.enableCache || el == nil {
		return
	}
	eb := el.AsElement()
	if r == nil {
		v.clip.AddRectangle(eb.ExtentsInView())
		return
	}
	v.clip.AddRectangle(eb.RectExtentsInView(*r))
}

// AddRectangleToClipRegion adds a rectangle in view coordinates to the
// damage region.
func (v *View) AddRectangleToClipRegion(r geom.Rect) {
	if v.clipEnabled && v.enableCache {
		v.clip.AddRectangle(r)
	}
}

// DrawCount returns the number of elements drawn by the last draw.
func (v *View) DrawCount() int {
	return v.drawCount
}

func (v *View) increaseDrawCount() {
	v.drawCount++
}

// Layout lays out the top-level elements.
func (v *View) Layout() {
	v.children.Layout()
}

// Draw draws the view on c. Only the elements overlapping the damage
// region are redrawn into the canvas cache, which is then copied to c.
// Without damage, the cache is copied as is.
func (v *View) Draw(c graphics.Canvas) {
	v.drawCount = 0
	v.drawQueued = true
	v.children.Layout()
	v.drawQueued = false

	if v.clip.IsEmpty() && v.clipEnabled && v.cache != nil && !v.needRedraw {
		c.DrawCanvas(0, 0, v.cache)
		return
	}

	if p := v.popup.Get(); p != nil && !p.AsElement().IsReallyVisible() {
		v.SetPopupElement(nil)
	}
	w, h := v.width, v.height
	if w <= 0 || h <= 0 {
		w, h = v.DefaultSize()
	}
	if v.enableCache && v.cache == nil && v.graphics != nil {
		v.cache = v.graphics.NewCanvas(w, h)
		v.needRedraw = true
	}
	v.firePostedSizeEvents()

	target := c
	if v.cache != nil {
		if v.needRedraw || !v.clipEnabled {
			v.clip.Clear()
		} else {
			v.clip.Integerize()
		}
		target = v.cache
		target.PushState()
		target.IntersectGeneralClipRegion(v.clip)
		target.ClearRect(0, 0, w, h)
	} else {
		target.PushState()
	}

	popup := v.popup.Get()
	var pb *ElementBase
	var rotation float64
	if popup != nil {
		pb = popup.AsElement()
		for el := pb; el != nil; el = parentBase(el) {
			rotation += el.rotation
		}
	}
	covered := popup != nil && v.cache != nil && v.clipEnabled && popup.IsFullyOpaque() &&
		math.Mod(rotation, 90) == 0 && v.clip.IsInside(pb.ExtentsInView())
	if !covered {
		v.children.Draw(target)
	}
	if pb != nil && pb.IsAlive() {
		ax, ay := pb.SelfCoordToViewCoord(pb.geom.pinX, pb.geom.pinY)
		target.TranslateCoordinates(ax, ay)
		target.RotateCoordinates(geom.DegreesToRadians(rotation))
		target.TranslateCoordinates(-pb.geom.pinX, -pb.geom.pinY)
		pb.Draw(target)
	}
	target.PopState()

	if target != c {
		c.DrawCanvas(0, 0, v.cache)
	}
	if v.settings.DebugClipRegion && v.clipEnabled {
		red := graphics.RGB(255, 0, 0)
		v.clip.EnumerateRectangles(func(r geom.Rect) bool {
			c.DrawLine(r.X, r.Y, r.Right(), r.Y, 1, red)
			c.DrawLine(r.Right(), r.Y, r.Right(), r.Bottom(), 1, red)
			c.DrawLine(r.Right(), r.Bottom(), r.X, r.Bottom(), 1, red)
			c.DrawLine(r.X, r.Bottom(), r.X, r.Y, 1, red)
			c.DrawLine(r.X, r.Y, r.Right(), r.Bottom(), 1, red)
			return true
		})
	}
	v.clip.Clear()
	v.needRedraw = false
}

// ElementByName returns the first element added to the view with the
// given name, or nil.
func (v *View) ElementByName(name string) Element {
	el := v.names[name]
	if el != nil && !el.AsElement().IsAlive() {
		return nil
	}
	return el
}

// OnElementAdd is called by [Elements] before el is added. It returns
// false to reject the element.
func (v *View) OnElementAdd(el Element) bool {
	if v.destroyed {
		return false
	}
	name := el.AsElement().name
	if name == "" {
		return true
	}
	if old, ok := v.names[name]; ok && old.AsElement().IsAlive() {
		if !sameElement(old, el) {
			slog.Warn("duplicate element name", "name", name)
		}
		return true
	}
	v.names[name] = el
	return true
}

// OnElementRemove is called by [Elements] before el is removed.
func (v *View) OnElementRemove(el Element) {
	eb := el.AsElement()
	if eb.visible {
		v.AddElementToClipRegion(el, nil)
	}
	if v.tooltip.Is(el) {
		v.SetTooltip("")
	}
	if old, ok := v.names[eb.name]; ok && sameElement(old, el) {
		delete(v.names, eb.name)
	}
}

// FocusedElement returns the element with the keyboard focus, or nil.
func (v *View) FocusedElement() Element {
	return v.focused.Get()
}

// MouseOverElement returns the element under the mouse, or nil.
func (v *View) MouseOverElement() Element {
	return v.mouseover.Get()
}

// GrabElement returns the element grabbing the mouse, or nil.
func (v *View) GrabElement() Element {
	return v.grab.Get()
}

// DragOverElement returns the element under a drag, or nil.
func (v *View) DragOverElement() Element {
	return v.dragover.Get()
}

// PopupElement returns the popup element, or nil.
func (v *View) PopupElement() Element {
	return v.popup.Get()
}

// SetFocus moves the keyboard focus to el, or removes it if el is nil.
// The old element gets a focusout event, which can cancel the change.
// If the new element is disabled or cancels its focusin event, the
// focus returns to the old element, or is removed if that fails too.
func (v *View) SetFocus(el Element) {
	if v.focused.Is(el) {
		return
	}
	if el != nil && !el.AsElement().IsAlive() {
		return
	}
	old := Hold(v.focused.Get())
	elh := Hold(el)
	if o := old.Get(); o != nil {
		if o.AsElement().OnOtherEvent(events.NewSimple(events.FocusOut)) == events.Canceled {
			return
		}
	}
	el = elh.Get()
	if el != nil && (!el.AsElement().IsReallyEnabled() ||
		el.AsElement().OnOtherEvent(events.NewSimple(events.FocusIn)) == events.Canceled) {
		el = old.Get()
		if el != nil && (!el.AsElement().IsReallyEnabled() ||
			el.AsElement().OnOtherEvent(events.NewSimple(events.FocusIn)) == events.Canceled) {
			el = nil
		}
	}
	v.focused.Reset(el)
}

// SetPopupElement sets the element drawn on top of all the others,
// which gets the first chance to handle the mouse events over it.
func (v *View) SetPopupElement(el Element) {
	if old := v.popup.Get(); old != nil {
		old.OnPopupOff()
	}
	v.popup.Reset(el)
	if el != nil {
		el.AsElement().QueueDraw()
	}
}

// SetTooltip asks the host to show a tooltip, or to hide it.
func (v *View) SetTooltip(tooltip string) {
	if v.host != nil {
		v.host.SetTooltip(tooltip)
	}
}

// SetCursor asks the host to show a cursor, unless it already does.
func (v *View) SetCursor(c cursors.Cursor) {
	if v.host == nil || (v.cursorSet && v.lastCursor == c) {
		return
	}
	v.cursorSet = true
	v.lastCursor = c
	v.host.SetCursor(c)
}

// Event returns the event being fired to script listeners, or nil.
func (v *View) Event() *events.ScriptEvent {
	if len(v.eventStack) == 0 {
		return nil
	}
	return v.eventStack[len(v.eventStack)-1]
}

// FireEvent calls the listeners of the event type in ls, unless
// events are disabled. During the calls, [View.Event] returns se.
func (v *View) FireEvent(se *events.ScriptEvent, ls *events.Listeners) events.Result {
	if !v.eventsEnabled || !ls.Has(se.Type()) {
		return se.ReturnValue
	}
	v.eventStack = append(v.eventStack, se)
	defer func() { v.eventStack = v.eventStack[:len(v.eventStack)-1] }()
	return ls.Call(se)
}

// fireEventFunc calls fun with se as the current event.
func (v *View) fireEventFunc(se *events.ScriptEvent, fun func(se *events.ScriptEvent)) {
	se.ReturnValue = events.Handled
	v.eventStack = append(v.eventStack, se)
	defer func() { v.eventStack = v.eventStack[:len(v.eventStack)-1] }()
	fun(se)
}

// PostElementSizeEvent posts an event of the given type for el, fired
// by the next draw after layout. Each element has at most one pending
// event.
func (v *View) PostElementSizeEvent(el Element, typ events.Types) {
	if slices.ContainsFunc(v.postedSizes, func(p postedSize) bool { return p.el.Is(el) }) {
		return
	}
	v.postedSizes = append(v.postedSizes, postedSize{el: Hold(el), typ: typ})
}

func (v *View) firePostedSizeEvents() {
	posted := v.postedSizes
	v.postedSizes = nil
	for _, p := range posted {
		el := p.el.Get()
		if el == nil {
			continue
		}
		se := events.NewScriptEvent(events.NewSimple(p.typ), el, nil)
		v.FireEvent(se, &el.AsElement().Listeners)
	}
}

// LoadImage loads an image of the gadget, falling back on the global
// images. Every image must be released with
// [imagecache.SharedImage.Destroy]. It returns nil for an empty name
// or without graphics.
func (v *View) LoadImage(name string, isMask bool) *imagecache.SharedImage {
	if v.graphics == nil {
		return nil
	}
	return v.images.LoadImage(v.graphics, v.files, name, isMask)
}

// LoadImageFromGlobal loads an image from the global images only.
func (v *View) LoadImageFromGlobal(name string, isMask bool) *imagecache.SharedImage {
	if v.graphics == nil {
		return nil
	}
	return v.images.LoadImage(v.graphics, nil, name, isMask)
}

// LoadTexture loads a color or an image from the gadget files.
func (v *View) LoadTexture(src string) *Texture {
	return NewTexture(v, src)
}

func (v *View) onOptionChanged(name string) {
	se := events.NewScriptEvent(events.NewOptionChange(name), nil, nil)
	v.FireEvent(se, &v.Listeners)
}

// ViewCoordToNative converts view coordinates to coordinates of the
// native widget of the host.
func (v *View) ViewCoordToNative(x, y float64) (float64, float64) {
	if v.host == nil {
		return x, y
	}
	return v.host.ViewCoordToNative(x, y)
}

// NativeToViewCoord converts coordinates of the native widget of the
// host to view coordinates.
func (v *View) NativeToViewCoord(x, y float64) (float64, float64) {
	if v.host == nil {
		return x, y
	}
	return v.host.NativeToViewCoord(x, y)
}

// Alert shows a message through the host.
func (v *View) Alert(message string) {
	if v.host != nil {
		v.host.Alert(v, message)
	}
}

// Confirm asks a yes or no question through the host.
func (v *View) Confirm(message string) bool {
	return v.host != nil && v.host.Confirm(v, message)
}

// Prompt asks for a string through the host. It returns "" without a
// host.
func (v *View) Prompt(message, defaultValue string) string {
	if v.host == nil {
		return ""
	}
	return v.host.Prompt(v, message, defaultValue)
}

// CurrentTime returns the time of the main loop in milliseconds.
func (v *View) CurrentTime() uint64 {
	return v.loop.CurrentTime()
}

// Destroy cancels the timers, destroys the elements and the canvas
// cache, and destroys the host.
func (v *View) Destroy() {
	if v.destroyed {
		return
	}
	v.removeTimers()
	if v.optConn != nil {
		v.optConn.Disconnect()
		v.optConn = nil
	}
	v.children.RemoveAll()
	v.destroyed = true
	v.Listeners.DisconnectAll()
	if v.cache != nil {
		v.cache.Destroy()
		v.cache = nil
	}
	v.images.Close()
	if v.host != nil {
		v.host.SetView(nil)
		v.host.Destroy()
		v.host = nil
	}
	v.graphics = nil
}
