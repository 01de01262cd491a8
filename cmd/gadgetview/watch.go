// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"cogentcore.org/gadget/config"
	"cogentcore.org/gadget/imagecache"
	"cogentcore.org/gadget/mainloop"
	"github.com/fsnotify/fsnotify"
)

// redrawInterval is how often the watcher renders views that asked to
// be drawn, in milliseconds.
const redrawInterval = 100

// watch renders the gadget in dir, and renders it again whenever a file
// of the gadget changes or the view asks to be drawn, until ctx is
// done or the process is interrupted.
func watch(ctx context.Context, dir string, s *config.Settings, f *flags) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(dir); err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	loop := mainloop.NewLoop()
	images := imagecache.NewGlobal(nil)
	output, _ := filepath.Abs(f.output)
	var g *gadget
	reload := func() {
		if g != nil {
			g.Close()
			g = nil
		}
		ng, err := openGadget(dir, s, f, loop, images)
		if err != nil {
			slog.Error("cannot load gadget", "dir", dir, "err", err)
			return
		}
		g = ng
		if err := g.save(f.output); err != nil {
			slog.Error("cannot render gadget", "err", err)
		}
	}
	defer func() {
		if g != nil {
			g.Close()
		}
	}()

	loop.Post(reload)
	loop.AddTimeoutWatch(redrawInterval, mainloop.FuncCallback(func(mainloop.MainLoop, int) bool {
		if g != nil && g.host.NeedsDraw() {
			if err := g.save(f.output); err != nil {
				slog.Error("cannot render gadget", "err", err)
			}
		}
		return true
	}))

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
					!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if abs, _ := filepath.Abs(ev.Name); abs == output {
					continue
				}
				slog.Info("gadget changed", "file", ev.Name)
				loop.Post(reload)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Warn("watching gadget", "err", err)
			}
		}
	}()

	err = loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
