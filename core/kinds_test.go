// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image/color"
	"testing"

	"cogentcore.org/gadget/events"
	"cogentcore.org/gadget/graphics/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var green = color.NRGBA{0, 255, 0, 255}

func TestImg(t *testing.T) {
	env := newTestView(t)
	v := env.view
	writePNG(t, env.files, "half.png", 20, 10, 10, green)
	v.SetSize(100, 100)
	im := v.Children().AppendElement("img", "im").(*Img)

	im.SetSrc("missing.png")
	assert.Equal(t, "missing.png", im.Src())
	w, h := im.SrcSize()
	assert.Zero(t, w)
	assert.Zero(t, h)

	require.NoError(t, im.Script.SetProperty("src", "half.png"))
	assert.Equal(t, "half.png", im.Src())
	sw, err := im.Script.GetProperty("srcWidth")
	require.NoError(t, err)
	assert.Equal(t, 20.0, sw)
	v.Layout()
	assert.Equal(t, 20.0, im.PixelWidth())
	assert.Equal(t, 10.0, im.PixelHeight())

	assert.False(t, im.IsPointIn(5, 5), "transparent pixels are not hit")
	assert.True(t, im.IsPointIn(15, 5))
	assert.False(t, im.IsFullyOpaque())
	v.OnMouseEvent(mouse(events.MouseMove, 5, 5, events.NoButton))
	assert.Nil(t, v.MouseOverElement())
	v.OnMouseEvent(mouse(events.MouseMove, 15, 5, events.NoButton))
	assert.Same(t, im, v.MouseOverElement())

	_, err = im.Script.Call("setSrcSize", 40, 30)
	require.NoError(t, err)
	v.Layout()
	assert.Equal(t, 40.0, im.PixelWidth())
	assert.Equal(t, 30.0, im.PixelHeight())
}

func TestImgDraw(t *testing.T) {
	env := newTestView(t)
	v := env.view
	writePNG(t, env.files, "green.png", 10, 10, 0, green)
	v.SetSize(50, 50)
	im := v.Children().AppendElement("img", "im").(*Img)
	im.SetSrc("green.png")
	im.SetWidth(Px(20))
	im.SetHeight(Px(20))
	assert.True(t, im.IsFullyOpaque())

	c := raster.NewCanvas(50, 50, 1)
	v.Draw(c)
	col, opacity, _ := c.PointValue(15, 15)
	assert.InDelta(t, 1, opacity, 1e-6)
	assert.InDelta(t, 1, col.G, 0.01)
	_, opacity, _ = c.PointValue(25, 25)
	assert.Zero(t, opacity)
}

func TestImgCrop(t *testing.T) {
	env := newTestView(t)
	v := env.view
	writePNG(t, env.files, "wide.png", 20, 10, 0, green)
	writePNG(t, env.files, "tall.png", 10, 20, 0, green)
	v.SetSize(100, 100)
	im := v.Children().AppendElement("img", "im").(*Img)
	im.SetWidth(Px(40))
	im.SetHeight(Px(40))

	im.SetSrc("wide.png")
	v.Layout()
	x, y, w, h := im.destRect(im.current())
	assert.Equal(t, []float64{0, 0, 40, 40}, []float64{x, y, w, h})

	require.NoError(t, im.Script.SetProperty("cropMaintainAspect", "true"))
	assert.Equal(t, CropTrue, im.CropMaintainAspect())
	x, y, w, h = im.destRect(im.current())
	assert.Equal(t, []float64{-20, 0, 80, 40}, []float64{x, y, w, h})
	assert.False(t, im.IsFullyOpaque(), "cropped images do not cover the element")

	im.SetSrc("tall.png")
	x, y, w, h = im.destRect(im.current())
	assert.Equal(t, []float64{0, -20, 40, 80}, []float64{x, y, w, h})
	im.SetCropMaintainAspect(CropPhoto)
	x, y, w, h = im.destRect(im.current())
	assert.Equal(t, []float64{0, 0, 40, 80}, []float64{x, y, w, h}, "photos keep their top")

	assert.Error(t, im.Script.SetProperty("cropMaintainAspect", "sometimes"))
	m, ok := ParseCropMode("photo")
	assert.True(t, ok)
	assert.Equal(t, CropPhoto, m)
}

func TestImgColorMultiply(t *testing.T) {
	env := newTestView(t)
	writePNG(t, env.files, "green.png", 10, 10, 0, green)
	im := env.view.Children().AppendElement("img", "im").(*Img)
	im.SetSrc("green.png")

	im.SetColorMultiply("#808080")
	assert.Equal(t, "#808080", im.ColorMultiply())
	assert.NotNil(t, im.multiplied)
	im.SetColorMultiply("#00808080")
	assert.Nil(t, im.multiplied, "transparent colors disable the multiplication")
	im.SetColorMultiply("#FF8080")
	assert.NotNil(t, im.multiplied)
	im.SetColorMultiply("#FFFFFF")
	assert.Nil(t, im.multiplied, "white disables the multiplication")
}

func TestLabel(t *testing.T) {
	env := newTestView(t)
	v := env.view
	l := v.Children().AppendElement("label", "l").(*Label)
	w, h := l.DefaultSize()
	assert.Zero(t, w)
	assert.Zero(t, h)

	require.NoError(t, l.Script.SetProperty("innerText", "Hello"))
	w, h = l.DefaultSize()
	assert.Positive(t, w)
	assert.Positive(t, h)

	l.SetSize(16)
	w2, h2 := l.DefaultSize()
	assert.Greater(t, w2, w)
	assert.Greater(t, h2, h)

	l.SetSize(-1)
	assert.Equal(t, 16.0, l.Size(), "invalid sizes are ignored")
	assert.Equal(t, "sans-serif", l.Font())
	assert.Equal(t, "#000000", l.Color())

	require.NoError(t, l.Script.SetProperty("align", "center"))
	assert.Error(t, l.Script.SetProperty("valign", "sideways"))
	require.NoError(t, l.Script.SetProperty("underline", true))
	u, err := l.Script.GetProperty("underline")
	require.NoError(t, err)
	assert.Equal(t, true, u)

	v.SetSize(100, 50)
	v.Draw(raster.NewCanvas(100, 50, 1))
	assert.Equal(t, 1, v.DrawCount())
}

func TestButton(t *testing.T) {
	env := newTestView(t)
	v := env.view
	for _, name := range []string{"normal.png", "over.png", "down.png", "disabled.png"} {
		writePNG(t, env.files, name, 16, 8, 0, green)
	}
	v.SetSize(100, 100)
	b := v.Children().AppendElement("button", "b").(*Button)
	require.NoError(t, b.Script.SetProperty("image", "normal.png"))
	require.NoError(t, b.Script.SetProperty("overImage", "over.png"))
	b.SetImage(ButtonDown, "down.png")
	v.Layout()
	assert.Equal(t, 16.0, b.PixelWidth())
	assert.Equal(t, 8.0, b.PixelHeight())
	assert.Equal(t, "normal.png", b.current().Tag())

	v.OnMouseEvent(mouse(events.MouseMove, 2, 2, events.NoButton))
	assert.True(t, b.IsMouseOver())
	assert.Equal(t, "over.png", b.current().Tag())

	v.OnMouseEvent(mouse(events.MouseDown, 2, 2, events.Left))
	assert.True(t, b.IsPressed())
	assert.Equal(t, "down.png", b.current().Tag())

	v.OnMouseEvent(mouse(events.MouseMove, 50, 50, events.Left))
	assert.True(t, b.IsMouseOver(), "the button grabs the mouse")
	assert.Equal(t, "down.png", b.current().Tag())

	v.OnMouseEvent(mouse(events.MouseUp, 50, 50, events.Left))
	assert.False(t, b.IsPressed())
	assert.Equal(t, "over.png", b.current().Tag())

	v.OnMouseEvent(mouse(events.MouseMove, 50, 50, events.NoButton))
	assert.False(t, b.IsMouseOver())
	assert.Equal(t, "normal.png", b.current().Tag())

	b.SetEnabled(false)
	assert.Equal(t, "normal.png", b.current().Tag(), "no disabled image")
	b.SetImage(ButtonDisabled, "disabled.png")
	assert.Equal(t, "disabled.png", b.current().Tag())
	assert.Equal(t, "disabled.png", b.Image(ButtonDisabled))
}

func TestDivScroll(t *testing.T) {
	env := newTestView(t)
	v := env.view
	v.SetSize(200, 200)
	d := v.Children().AppendElement("div", "d").(*Div)
	d.SetWidth(Px(100))
	d.SetHeight(Px(50))
	p := addProbe(t, d.Children(), "p", 0, 100, 50, 50)
	v.Layout()

	cw, ch := d.ContentSize()
	assert.Equal(t, []float64{50, 150}, []float64{cw, ch})

	wheel := mouse(events.MouseWheel, 10, 10, events.NoButton)
	wheel.WheelDeltaY = -120
	assert.Equal(t, events.Unhandled, v.OnMouseEvent(wheel), "no autoscroll")
	assert.Zero(t, d.ScrollY())

	require.NoError(t, d.Script.SetProperty("autoscroll", true))
	assert.Equal(t, events.Handled, v.OnMouseEvent(wheel))
	assert.Equal(t, 10.0, d.ScrollY())
	assert.InDelta(t, 90, p.ExtentsInView().Y, 1e-9)
	p.SetY(Px(150))
	v.Layout()
	assert.Equal(t, 10.0, d.ScrollY(), "layout keeps the scroll offset")

	d.ScrollTo(30, 1000)
	assert.Equal(t, 0.0, d.ScrollX())
	assert.Equal(t, 100.0, d.ScrollY())

	d.SetAutoscroll(false)
	assert.Zero(t, d.ScrollY())
}

func TestDivBackground(t *testing.T) {
	env := newTestView(t)
	v := env.view
	v.SetSize(50, 50)
	d := v.Children().AppendElement("div", "d").(*Div)
	d.SetWidth(Rel(1))
	d.SetHeight(Rel(1))
	assert.False(t, d.IsFullyOpaque())
	require.NoError(t, d.Script.SetProperty("background", "red"))
	assert.Equal(t, "red", d.Background())
	assert.True(t, d.IsFullyOpaque())

	c := raster.NewCanvas(50, 50, 1)
	v.Draw(c)
	col, opacity, _ := c.PointValue(25, 25)
	assert.InDelta(t, 1, opacity, 1e-6)
	assert.InDelta(t, 1, col.R, 1e-6)

	d.SetBackground("#80FF0000")
	assert.False(t, d.IsFullyOpaque())
}

func TestTexture(t *testing.T) {
	env := newTestView(t)
	writePNG(t, env.files, "tile.png", 4, 4, 0, green)
	assert.Nil(t, NewTexture(env.view, ""))

	var nilTexture *Texture
	assert.Equal(t, "", nilTexture.Src())
	assert.False(t, nilTexture.IsFullyOpaque())
	nilTexture.Destroy()

	tx := NewTexture(env.view, "tile.png")
	assert.Equal(t, "tile.png", tx.Src())
	assert.True(t, tx.IsFullyOpaque())
	c := raster.NewCanvas(10, 10, 1)
	tx.Draw(c, 0, 0, 10, 10)
	col, opacity, _ := c.PointValue(9, 9)
	assert.InDelta(t, 1, opacity, 1e-6)
	assert.InDelta(t, 1, col.G, 0.01)
	tx.Destroy()
}

func TestListBox(t *testing.T) {
	env := newTestView(t)
	v := env.view
	v.SetSize(200, 200)
	lb := v.Children().AppendElement("listbox", "lb").(*ListBox)
	lb.SetWidth(Px(100))
	lb.SetHeight(Px(50))
	changes := 0
	lb.Listeners.Add(events.Change, func(se *events.ScriptEvent) { changes++ })

	for _, s := range []string{"a", "b", "c"} {
		require.NotNil(t, lb.AppendString(s))
	}
	v.Layout()
	items := lb.Items()
	require.Len(t, items, 3)
	for i, it := range items {
		assert.Equal(t, float64(i*20), it.PixelY())
		assert.Equal(t, 100.0, it.PixelWidth())
	}
	assert.Equal(t, "b", items[1].LabelText())
	assert.Equal(t, -1, lb.SelectedIndex())

	lb.SetSelectedIndex(1)
	assert.Equal(t, 1, lb.SelectedIndex())
	assert.Same(t, items[1], lb.SelectedItem())
	assert.Equal(t, 1, changes)
	lb.SetSelectedIndex(1)
	assert.Equal(t, 1, changes, "no change")

	v.OnMouseEvent(mouse(events.MouseClick, 10, 45, events.Left))
	assert.Equal(t, 2, lb.SelectedIndex())
	assert.False(t, items[1].Selected())
	assert.Equal(t, 2, changes)
	assert.Equal(t, 10.0, lb.ScrollY(), "the selected item is scrolled into view")

	lb.SetMultiSelect(true)
	ctrl := events.NewMouse(events.MouseClick, 10, 5, events.Left, events.Control)
	v.OnMouseEvent(ctrl)
	assert.True(t, items[0].Selected())
	assert.True(t, items[2].Selected())
	shift := events.NewMouse(events.MouseClick, 10, 20, events.Left, events.Shift)
	v.OnMouseEvent(shift)
	assert.Equal(t, []bool{true, true, false},
		[]bool{items[0].Selected(), items[1].Selected(), items[2].Selected()})

	lb.SetMultiSelect(false)
	assert.Equal(t, []bool{true, false, false},
		[]bool{items[0].Selected(), items[1].Selected(), items[2].Selected()})

	lb.Focus()
	key := func(code uint32) {
		v.OnKeyEvent(events.NewKey(events.KeyDown, code, 0))
	}
	key(events.KeyCodeDown)
	assert.Equal(t, 1, lb.SelectedIndex())
	key(events.KeyCodeEnd)
	assert.Equal(t, 2, lb.SelectedIndex())
	key(events.KeyCodeHome)
	assert.Equal(t, 0, lb.SelectedIndex())
	key(events.KeyCodeUp)
	assert.Equal(t, 0, lb.SelectedIndex())

	lb.RemoveString("b")
	assert.Len(t, lb.Items(), 2)
	it, err := lb.Script.Call("getItemByIndex", 1)
	require.NoError(t, err)
	assert.Same(t, items[2], it)

	lb.ClearSelection()
	assert.Equal(t, -1, lb.SelectedIndex())
}

func TestItemOutsideListBox(t *testing.T) {
	env := newTestView(t)
	it := env.view.Children().AppendElement("item", "it").(*Item)
	it.SetSelected(true)
	assert.True(t, it.Selected())
	w, h := it.DefaultSize()
	assert.Zero(t, w)
	assert.Zero(t, h)
	it.SetLabelText("x")
	assert.Equal(t, "x", it.LabelText())
	it.SetLabelText("y")
	assert.Equal(t, 1, it.Children().Count())
}
