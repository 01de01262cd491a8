// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image/color"
	"testing"

	"cogentcore.org/gadget/events"
	"cogentcore.org/gadget/geom"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDim(t *testing.T) {
	tests := []struct {
		in   any
		want Dim
		err  bool
	}{
		{in: 12, want: Px(12)},
		{in: 2.5, want: Px(2.5)},
		{in: "40", want: Px(40)},
		{in: " 50% ", want: Rel(0.5)},
		{in: "", want: Dim{}},
		{in: nil, want: Dim{}},
		{in: "abc", err: true},
		{in: "x%", err: true},
	}
	for _, test := range tests {
		d, err := ParseDim(test.in)
		if test.err {
			assert.Error(t, err, "%v", test.in)
			continue
		}
		assert.NoError(t, err, "%v", test.in)
		assert.Equal(t, test.want, d, "%v", test.in)
	}
	assert.Equal(t, "25%", Rel(0.25).String())
	assert.Equal(t, "7", Px(7).String())
	assert.Equal(t, "", Dim{}.String())
}

func TestLayoutRelative(t *testing.T) {
	env := newTestView(t)
	v := env.view
	v.SetSize(200, 100)
	p := addProbe(t, v.Children(), "p", 0, 0, 0, 0)
	require.NoError(t, p.Script.SetProperty("width", "50%"))
	require.NoError(t, p.Script.SetProperty("height", "25%"))
	require.NoError(t, p.Script.SetProperty("x", "10%"))

	v.Layout()
	got := []float64{p.PixelX(), p.PixelY(), p.PixelWidth(), p.PixelHeight()}
	assert.Equal(t, []float64{20, 0, 100, 25}, got)

	v.Layout()
	again := []float64{p.PixelX(), p.PixelY(), p.PixelWidth(), p.PixelHeight()}
	assert.Equal(t, got, again, "layout is idempotent")

	w, err := p.Script.GetProperty("width")
	require.NoError(t, err)
	assert.Equal(t, "50%", w)
	ow, err := p.Script.GetProperty("offsetWidth")
	require.NoError(t, err)
	assert.Equal(t, 100.0, ow)

	v.SetSize(400, 100)
	assert.Equal(t, 200.0, p.PixelWidth(), "resizing the view lays out the elements")
}

func TestLayoutNested(t *testing.T) {
	env := newTestView(t)
	v := env.view
	v.SetSize(200, 100)
	d := v.Children().AppendElement("div", "d").(*Div)
	d.SetWidth(Px(100))
	d.SetHeight(Px(80))
	p := addProbe(t, d.Children(), "p", 0, 0, 0, 0)
	p.SetWidth(Rel(0.5))
	p.SetHeight(Rel(1))
	p.SetPinX(Rel(0.5))
	p.SetPinY(Rel(0.5))
	v.Layout()

	assert.Equal(t, 50.0, p.PixelWidth())
	assert.Equal(t, 80.0, p.PixelHeight())
	assert.Equal(t, 25.0, p.PixelPinX())
	assert.Equal(t, 40.0, p.PixelPinY())
}

func TestExtentsRotation(t *testing.T) {
	env := newTestView(t)
	v := env.view
	v.SetSize(200, 200)
	p := addProbe(t, v.Children(), "p", 50, 50, 20, 10)
	p.SetRotation(90)
	v.Layout()

	want := geom.Rect{X: 40, Y: 50, W: 10, H: 20}
	if diff := cmp.Diff(want, p.ExtentsInView(), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("ExtentsInView (-want +got):\n%s", diff)
	}
}

func TestCoordinateRoundTrip(t *testing.T) {
	env := newTestView(t)
	v := env.view
	v.SetSize(300, 300)
	d := v.Children().AppendElement("div", "d").(*Div)
	d.SetX(Px(20))
	d.SetY(Px(10))
	d.SetWidth(Px(200))
	d.SetHeight(Px(200))
	d.SetRotation(30)
	p := addProbe(t, d.Children(), "p", 30, 40, 50, 20)
	p.SetPinX(Px(10))
	p.SetPinY(Px(5))
	p.SetRotation(37)
	v.Layout()

	for _, pt := range []geom.Point{{X: 0, Y: 0}, {X: 12.5, Y: 3}, {X: -40, Y: 150}} {
		x, y := p.ViewCoordToSelfCoord(pt.X, pt.Y)
		x, y = p.SelfCoordToViewCoord(x, y)
		assert.InDelta(t, pt.X, x, 1e-9)
		assert.InDelta(t, pt.Y, y, 1e-9)
	}

	// the pin is at the position of the element in its parent
	x, y := p.SelfCoordToParentCoord(10, 5)
	assert.InDelta(t, 30, x, 1e-9)
	assert.InDelta(t, 40, y, 1e-9)
}

func TestVisibility(t *testing.T) {
	env := newTestView(t)
	v := env.view
	d := v.Children().AppendElement("div", "d")
	p := addProbe(t, d.AsElement().Children(), "p", 0, 0, 10, 10)

	assert.True(t, p.IsReallyVisible())
	d.AsElement().SetVisible(false)
	assert.True(t, p.Visible())
	assert.False(t, p.IsReallyVisible())

	d.AsElement().SetEnabled(false)
	assert.True(t, p.Enabled())
	assert.False(t, p.IsReallyEnabled())
}

func TestElementProperties(t *testing.T) {
	env := newTestView(t)
	p := addProbe(t, env.view.Children(), "p", 0, 0, 10, 10)
	s := &p.Script
	require.NoError(t, s.SetProperty("opacity", "0.5"))
	require.NoError(t, s.SetProperty("visible", "false"))
	require.NoError(t, s.SetProperty("cursor", "hand"))
	require.NoError(t, s.SetProperty("hitTest", "htcaption"))
	require.NoError(t, s.SetProperty("tooltip", "hello"))
	assert.Equal(t, 0.5, p.Opacity())
	assert.False(t, p.Visible())
	assert.Equal(t, HitTestCaption, p.HitTest())
	assert.Equal(t, "hello", p.Tooltip())

	assert.Error(t, s.SetProperty("cursor", "spinner"))
	assert.Error(t, s.SetProperty("width", "wide"))

	name, err := s.GetProperty("name")
	require.NoError(t, err)
	assert.Equal(t, "p", name)
	tag, err := s.GetProperty("tagName")
	require.NoError(t, err)
	assert.Equal(t, "probe", tag)

	resolved, ok := s.Resolve("ONCLICK")
	assert.True(t, ok)
	assert.Equal(t, "onclick", resolved)
}

func TestElementClick(t *testing.T) {
	env := newTestView(t)
	v := env.view
	v.SetSize(100, 100)
	p := addProbe(t, v.Children(), "p", 0, 0, 10, 10)
	v.Layout()

	clicks := 0
	_, err := p.Script.ConnectSignal("onclick", func(se *events.ScriptEvent) {
		clicks++
		assert.Same(t, p, se.Src)
	})
	require.NoError(t, err)
	v.OnMouseEvent(mouse(events.MouseClick, 5, 5, events.Left))
	assert.Equal(t, 1, clicks)
}

func TestMask(t *testing.T) {
	env := newTestView(t)
	v := env.view
	writePNG(t, env.files, "mask.png", 20, 20, 10, color.NRGBA{255, 255, 255, 255})
	v.SetSize(100, 100)
	p := addProbe(t, v.Children(), "p", 0, 0, 20, 20)
	p.SetMask("mask.png")
	v.Layout()

	assert.False(t, p.IsPointIn(5, 5), "black pixels of a mask are transparent")
	assert.True(t, p.IsPointIn(15, 5))
	v.OnMouseEvent(mouse(events.MouseMove, 5, 5, events.NoButton))
	assert.Nil(t, v.MouseOverElement())
}
