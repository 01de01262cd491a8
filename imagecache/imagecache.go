// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagecache shares decoded images between the elements of a
// gadget, and between gadgets for images of the host's global
// resources. Images are reference counted and freed when the last
// user releases them.
package imagecache

import (
	"log/slog"
	"sync"

	"cogentcore.org/gadget/filemanager"
	"cogentcore.org/gadget/graphics"
)

type key struct {
	name string
	mask bool
}

// store is one map of shared images, either the local map of a
// [Cache] or the map of a [Global].
type store struct {
	mu      sync.Mutex
	entries map[key]*entry
}

func newStore() *store {
	return &store{entries: map[key]*entry{}}
}

func (s *store) get(k key) *SharedImage {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.entries[k]
	if e == nil {
		return nil
	}
	e.refs++
	return &SharedImage{entry: e}
}

func (s *store) add(k key, img graphics.Image) *SharedImage {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := &entry{owner: s, key: k, img: img, refs: 1}
	s.entries[k] = e
	return &SharedImage{entry: e}
}

func (s *store) release(e *entry) {
	s.mu.Lock()
	e.refs--
	done := e.refs <= 0
	if done && s.entries[e.key] == e {
		delete(s.entries, e.key)
	}
	s.mu.Unlock()
	if done && e.img != nil {
		e.img.Destroy()
		e.img = nil
	}
}

func (s *store) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

type entry struct {
	owner *store
	key   key
	img   graphics.Image
	refs  int
}

// Global holds the images loaded from the host's global resources.
// One Global is normally shared by every view of the process; tests
// construct their own.
type Global struct {
	// Files are the global resources.
	Files filemanager.FileManager

	images *store
}

// NewGlobal returns a new [Global] reading from files, which may be nil.
func NewGlobal(files filemanager.FileManager) *Global {
	return &Global{Files: files, images: newStore()}
}

// Len returns the number of images in the global map.
func (g *Global) Len() int {
	return g.images.len()
}

// Cache is the image cache of one gadget.
type Cache struct {
	global *Global
	local  *store
}

// New returns a new [Cache] falling back on global, which may be nil.
func New(global *Global) *Cache {
	return &Cache{global: global, local: newStore()}
}

// Global returns the global cache, which may be nil.
func (c *Cache) Global() *Global {
	return c.global
}

// LoadImage returns a shared image for the given file. It looks in the
// local map, then the global map, then reads the file from local and
// then from the global files. Every call must be matched by a call to
// [SharedImage.Destroy]. If the image cannot be loaded, the result is a
// placeholder without pixels whose tag is still filename. An empty
// filename returns nil.
func (c *Cache) LoadImage(gfx graphics.Graphics, local filemanager.FileManager, filename string, isMask bool) *SharedImage {
	if filename == "" {
		return nil
	}
	k := key{filename, isMask}
	if si := c.local.get(k); si != nil {
		return si
	}
	if c.global != nil {
		if si := c.global.images.get(k); si != nil {
			return si
		}
	}

	target := c.local
	data, err := readFile(local, filename)
	if err != nil && c.global != nil {
		if gd, gerr := readFile(c.global.Files, filename); gerr == nil {
			data, err = gd, nil
			target = c.global.images
		}
	}
	if err != nil {
		slog.Debug("imagecache: cannot read image", "file", filename, "err", err)
		return c.local.add(k, nil).withTag(filename)
	}
	img, err := gfx.NewImage(filename, data, isMask)
	if err != nil {
		slog.Debug("imagecache: cannot decode image", "file", filename, "err", err)
		img = nil
	}
	return target.add(k, img).withTag(filename)
}

// Len returns the number of images in the local map.
func (c *Cache) Len() int {
	return c.local.len()
}

// Close drops all local images that are still referenced, and reports
// them at the debug level. The handles stay valid but no longer share.
func (c *Cache) Close() {
	c.local.mu.Lock()
	leaked := c.local.entries
	c.local.entries = map[key]*entry{}
	c.local.mu.Unlock()
	for k, e := range leaked {
		slog.Debug("imagecache: image still in use at close", "file", k.name, "refs", e.refs)
	}
}

func readFile(fm filemanager.FileManager, name string) ([]byte, error) {
	if fm == nil {
		return nil, errNoFiles
	}
	return fm.ReadFile(name)
}
