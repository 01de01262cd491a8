// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"cogentcore.org/gadget/cursors"
	"cogentcore.org/gadget/events"
	"cogentcore.org/gadget/filemanager"
	"cogentcore.org/gadget/graphics"
	"cogentcore.org/gadget/graphics/raster"
	"cogentcore.org/gadget/imagecache"
	"cogentcore.org/gadget/mainloop"
	"github.com/stretchr/testify/require"
)

// testHost is a [ViewHost] recording the requests of its view.
type testHost struct {
	gfx       *raster.Graphics
	view      *View
	draws     int
	resizes   int
	caption   string
	cursors   []cursors.Cursor
	tooltip   string
	menus     int
	alerts    []string
	confirm   bool
	destroyed bool
}

func (h *testHost) NewGraphics() graphics.Graphics             { return h.gfx }
func (h *testHost) SetView(v *View)                            { h.view = v }
func (h *testHost) QueueDraw()                                 { h.draws++ }
func (h *testHost) QueueResize()                               { h.resizes++ }
func (h *testHost) SetResizable(mode ResizableMode)            {}
func (h *testHost) SetCaption(caption string)                  { h.caption = caption }
func (h *testHost) SetShowCaptionAlways(always bool)           {}
func (h *testHost) SetCursor(c cursors.Cursor)                 { h.cursors = append(h.cursors, c) }
func (h *testHost) SetTooltip(tooltip string)                  { h.tooltip = tooltip }
func (h *testHost) ShowContextMenu(button events.Buttons) bool { h.menus++; return true }
func (h *testHost) Alert(v *View, message string)              { h.alerts = append(h.alerts, message) }
func (h *testHost) Confirm(v *View, message string) bool       { return h.confirm }
func (h *testHost) Destroy()                                   { h.destroyed = true }

func (h *testHost) Prompt(v *View, message, defaultValue string) string {
	return defaultValue
}

func (h *testHost) ViewCoordToNative(x, y float64) (float64, float64) {
	return x + 100, y + 100
}

func (h *testHost) NativeToViewCoord(x, y float64) (float64, float64) {
	return x - 100, y - 100
}

// probe is a test element filling its extents with a color and
// recording the mouse events it handles and how often it is drawn.
type probe struct {
	ElementBase
	color       graphics.Color
	events      []events.Types
	draws       int
	translucent bool
}

func (p *probe) Init() {
	p.ElementBase.Init()
	p.EnableChildren()
}

func (p *probe) DoDraw(c graphics.Canvas, children graphics.Canvas) {
	p.draws++
	c.DrawFilledRect(0, 0, p.geom.width, p.geom.height, p.color)
	p.ElementBase.DoDraw(c, children)
}

func (p *probe) HandleMouseEvent(ev *events.Mouse) events.Result {
	p.events = append(p.events, ev.Type())
	return events.Unhandled
}

func (p *probe) IsFullyOpaque() bool { return !p.translucent }

// testScript compiles event attributes into handlers recording the
// code they were compiled from.
type testScript struct {
	ran []string
}

func (s *testScript) Compile(code, filename string, line int) (func(se *events.ScriptEvent), error) {
	return func(se *events.ScriptEvent) { s.ran = append(s.ran, code) }, nil
}

type testEnv struct {
	view   *View
	host   *testHost
	loop   *mainloop.Fake
	files  *filemanager.Memory
	script *testScript
}

// newTestView returns a view shown by a [testHost], with a fake main
// loop starting at 1000 ms and in-memory gadget files.
func newTestView(t *testing.T) *testEnv {
	t.Helper()
	files, err := filemanager.NewMemory()
	require.NoError(t, err)
	f := NewDefaultFactory()
	f.Register("probe", func() Element { return &probe{color: graphics.RGB(0, 0, 255)} })
	env := &testEnv{
		host:   &testHost{gfx: raster.New(1)},
		loop:   mainloop.NewFake(1000),
		files:  files,
		script: &testScript{},
	}
	env.view = NewView(env.host, ViewConfig{
		Factory:  f,
		Script:   env.script,
		MainLoop: env.loop,
		Files:    files,
		Images:   imagecache.NewGlobal(nil),
	})
	t.Cleanup(env.view.Destroy)
	return env
}

// addProbe appends a probe element with the given extents to es.
func addProbe(t *testing.T, es *Elements, name string, x, y, w, h float64) *probe {
	t.Helper()
	p, ok := es.AppendElement("probe", name).(*probe)
	require.True(t, ok)
	p.SetX(Px(x))
	p.SetY(Px(y))
	p.SetWidth(Px(w))
	p.SetHeight(Px(h))
	return p
}

// writePNG stores a w x h PNG image in files, filled with c on the
// right of column split and transparent on its left.
func writePNG(t *testing.T, files *filemanager.Memory, name string, w, h, split int, c color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := split; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, files.WriteFile(name, buf.Bytes()))
}

func mouse(typ events.Types, x, y float64, b events.Buttons) *events.Mouse {
	return events.NewMouse(typ, x, y, b, 0)
}
