// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"log/slog"
	"path/filepath"

	"cogentcore.org/gadget/base/errors"
	"cogentcore.org/gadget/config"
	"cogentcore.org/gadget/core"
	"cogentcore.org/gadget/filemanager"
	"cogentcore.org/gadget/host/offscreen"
	"cogentcore.org/gadget/imagecache"
	"cogentcore.org/gadget/mainloop"
	"cogentcore.org/gadget/options"
)

// gadget is the view of a gadget directory shown by an offscreen host.
type gadget struct {
	host *offscreen.Host
	view *core.View
	opts options.Options
}

// openGadget loads the view file of the gadget in dir.
func openGadget(dir string, s *config.Settings, f *flags, loop mainloop.MainLoop, images *imagecache.Global) (*gadget, error) {
	files, err := filemanager.Dir(dir)
	if err != nil {
		return nil, err
	}
	var opts options.Options = options.NewMemory()
	if s.Options != "" {
		st, err := options.OpenStore(s.Options, filepath.Base(filepath.Clean(dir)))
		if err != nil {
			return nil, err
		}
		opts = st
	}
	g := &gadget{host: offscreen.New(s.Zoom), opts: opts}
	g.view = core.NewView(g.host, core.ViewConfig{
		MainLoop: loop,
		Settings: s,
		Files:    files,
		Images:   images,
		Options:  opts,
	})
	data, err := files.ReadFile(f.xml)
	if err == nil {
		err = g.view.LoadXML(bytes.NewReader(data), f.xml)
	}
	if err != nil {
		g.Close()
		return nil, err
	}
	pts, err := f.points()
	if err != nil {
		g.Close()
		return nil, err
	}
	for _, p := range pts {
		g.host.Click(p[0], p[1])
	}
	return g, nil
}

// save renders the view into the output file.
func (g *gadget) save(output string) error {
	if err := g.host.SavePNG(output); err != nil {
		return err
	}
	slog.Info("rendered view", "output", output, "elements", g.view.DrawCount())
	return nil
}

func (g *gadget) Close() {
	g.view.Destroy()
	errors.Log(g.opts.Close())
}

// renderOnce renders the gadget in dir after running its timers for
// the --advance duration.
func renderOnce(dir string, s *config.Settings, f *flags) error {
	loop := mainloop.NewFake(0)
	g, err := openGadget(dir, s, f, loop, imagecache.NewGlobal(nil))
	if err != nil {
		return err
	}
	defer g.Close()
	loop.Advance(f.advance)
	return g.save(f.output)
}
