// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides a [core.ViewHost] without a window, which
// draws its view into a raster image. The gadgetview tool and the
// tests use it to render views.
package offscreen

import (
	"image"
	"log/slog"
	"os"

	"cogentcore.org/gadget/base/errors"
	"cogentcore.org/gadget/core"
	"cogentcore.org/gadget/cursors"
	"cogentcore.org/gadget/events"
	"cogentcore.org/gadget/graphics"
	"cogentcore.org/gadget/graphics/raster"
)

// Host is a [core.ViewHost] rendering into an image.
type Host struct {

	// ConfirmAnswer is the answer to [core.View.Confirm] questions.
	ConfirmAnswer bool

	// PromptAnswer is the answer to [core.View.Prompt] questions. The
	// default value of the prompt is used if it is empty.
	PromptAnswer string

	// Alerts are the messages of [core.View.Alert], in order.
	Alerts []string

	// Menu is the last context menu shown.
	Menu *Menu

	gfx    *raster.Graphics
	view   *core.View
	canvas *raster.Canvas

	needDraw  bool
	caption   string
	cursor    cursors.Cursor
	tooltip   string
	resizable core.ResizableMode
	destroyed bool
}

// New returns a new host drawing with the given zoom factor.
func New(zoom float64) *Host {
	return &Host{gfx: raster.New(zoom), needDraw: true}
}

// View returns the view shown by the host, or nil.
func (h *Host) View() *core.View {
	return h.view
}

func (h *Host) NewGraphics() graphics.Graphics { return h.gfx }

func (h *Host) SetView(v *core.View) {
	h.view = v
	h.needDraw = true
}

func (h *Host) QueueDraw() { h.needDraw = true }

// QueueResize drops the image, which is made again at the new size of
// the view by the next [Host.Render].
func (h *Host) QueueResize() {
	h.canvas = nil
	h.needDraw = true
}

func (h *Host) SetResizable(mode core.ResizableMode)  { h.resizable = mode }
func (h *Host) SetCaption(caption string)             { h.caption = caption }
func (h *Host) SetShowCaptionAlways(always bool)      {}
func (h *Host) SetCursor(c cursors.Cursor)            { h.cursor = c }
func (h *Host) SetTooltip(tooltip string)             { h.tooltip = tooltip }
func (h *Host) Caption() string                       { return h.caption }
func (h *Host) Cursor() cursors.Cursor                { return h.cursor }
func (h *Host) Tooltip() string                       { return h.tooltip }
func (h *Host) Resizable() core.ResizableMode         { return h.resizable }
func (h *Host) IsDestroyed() bool                     { return h.destroyed }
func (h *Host) Confirm(v *core.View, msg string) bool { return h.ConfirmAnswer }

// ShowContextMenu collects the items of the context menu into
// [Host.Menu]. It reports whether the menu has any item.
func (h *Host) ShowContextMenu(button events.Buttons) bool {
	if h.view == nil {
		return false
	}
	m := &Menu{}
	m.Default = h.view.OnAddContextMenuItems(m)
	h.Menu = m
	return len(m.Items) > 0
}

func (h *Host) Alert(v *core.View, message string) {
	slog.Info("alert", "message", message)
	h.Alerts = append(h.Alerts, message)
}

func (h *Host) Prompt(v *core.View, message, defaultValue string) string {
	if h.PromptAnswer != "" {
		return h.PromptAnswer
	}
	return defaultValue
}

func (h *Host) ViewCoordToNative(x, y float64) (float64, float64) { return x, y }
func (h *Host) NativeToViewCoord(x, y float64) (float64, float64) { return x, y }

func (h *Host) Destroy() {
	h.destroyed = true
	h.view = nil
	h.canvas = nil
}

// size returns the size of the image of the view.
func (h *Host) size() (float64, float64) {
	w, ht := h.view.Width(), h.view.Height()
	dw, dh := h.view.DefaultSize()
	if w <= 0 {
		w = dw
	}
	if ht <= 0 {
		ht = dh
	}
	return w, ht
}

// NeedsDraw returns whether the view asked to be drawn since the last
// [Host.Render].
func (h *Host) NeedsDraw() bool {
	return h.needDraw
}

// Render draws the view if it asked for it and returns the image. The
// image is owned by the host and changes with the next Render.
func (h *Host) Render() *image.RGBA {
	if h.view == nil {
		return image.NewRGBA(image.Rectangle{})
	}
	w, ht := h.size()
	if h.canvas == nil || h.canvas.Width() != w || h.canvas.Height() != ht {
		h.canvas = raster.NewCanvas(w, ht, h.gfx.Zoom())
		h.needDraw = true
	}
	if h.needDraw {
		h.needDraw = false
		h.canvas.ClearCanvas()
		h.view.Draw(h.canvas)
	}
	return h.canvas.Image()
}

// SavePNG renders the view into a PNG file.
func (h *Host) SavePNG(path string) error {
	h.Render()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := raster.WritePNG(f, h.canvas); err != nil {
		return errors.Log(err)
	}
	return f.Close()
}

// Click sends the events of a left click at (x, y) to the view.
func (h *Host) Click(x, y float64) {
	if h.view == nil {
		return
	}
	h.view.OnMouseEvent(events.NewMouse(events.MouseMove, x, y, events.NoButton, 0))
	for _, typ := range []events.Types{events.MouseDown, events.MouseUp, events.MouseClick} {
		h.view.OnMouseEvent(events.NewMouse(typ, x, y, events.Left, 0))
	}
}

// MenuItem is an item of a [Menu].
type MenuItem struct {
	Text     string
	Disabled bool
	fun      func(text string)
}

// Menu is the context menu of a [Host].
type Menu struct {
	Items []MenuItem

	// Default is whether the default items of the host are shown.
	Default bool
}

func (m *Menu) AddItem(text string, disabled bool, fun func(text string)) {
	m.Items = append(m.Items, MenuItem{Text: text, Disabled: disabled, fun: fun})
}

// Select runs the handler of the item with the given text. It returns
// false if there is no such enabled item.
func (m *Menu) Select(text string) bool {
	for _, it := range m.Items {
		if it.Text == text && !it.Disabled {
			if it.fun != nil {
				it.fun(text)
			}
			return true
		}
	}
	return false
}
