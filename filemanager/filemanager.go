// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filemanager provides read access to the files of a gadget
// and to the shared resources of the host, over any hackpadfs file
// system.
package filemanager

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	osfs "github.com/hack-pad/hackpadfs/os"
)

// FileManager reads files by gadget relative name.
type FileManager interface {
	// ReadFile returns the contents of the named file.
	ReadFile(name string) ([]byte, error)

	// FileExists returns whether the named file exists.
	FileExists(name string) bool
}

// FS is a [FileManager] over a hackpadfs file system.
type FS struct {
	fsys hackpadfs.FS
}

// New returns a [FS] reading from fsys.
func New(fsys hackpadfs.FS) *FS {
	return &FS{fsys: fsys}
}

// Dir returns a [FS] reading from the given directory of the
// operating system.
func Dir(dir string) (*FS, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	sub := strings.TrimPrefix(filepath.ToSlash(abs), "/")
	fsys, err := hackpadfs.Sub(osfs.NewFS(), sub)
	if err != nil {
		return nil, fmt.Errorf("filemanager.Dir %q: %w", dir, err)
	}
	return New(fsys), nil
}

// CleanName converts a gadget file name, which may use backslashes or
// a leading slash, into a valid io/fs path.
func CleanName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Clean("/" + name)
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return "."
	}
	return name
}

func (f *FS) ReadFile(name string) ([]byte, error) {
	nm := CleanName(name)
	if !fs.ValidPath(nm) || nm == "." {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return hackpadfs.ReadFile(f.fsys, nm)
}

func (f *FS) FileExists(name string) bool {
	nm := CleanName(name)
	if !fs.ValidPath(nm) || nm == "." {
		return false
	}
	info, err := hackpadfs.Stat(f.fsys, nm)
	return err == nil && !info.IsDir()
}

// Memory is a writable in-memory [FileManager], used for generated
// content and tests.
type Memory struct {
	FS
	mfs *mem.FS
}

// NewMemory returns an empty [Memory] file manager.
func NewMemory() (*Memory, error) {
	mfs, err := mem.NewFS()
	if err != nil {
		return nil, err
	}
	return &Memory{FS: FS{fsys: mfs}, mfs: mfs}, nil
}

// WriteFile stores data under the given name, creating directories
// as needed.
func (m *Memory) WriteFile(name string, data []byte) error {
	nm := CleanName(name)
	if dir := path.Dir(nm); dir != "." {
		if err := hackpadfs.MkdirAll(m.mfs, dir, 0o755); err != nil {
			return err
		}
	}
	return hackpadfs.WriteFullFile(m.mfs, nm, data, 0o644)
}

// Multi is a [FileManager] trying several file managers in order.
type Multi []FileManager

func (ms Multi) ReadFile(name string) ([]byte, error) {
	var firstErr error
	for _, m := range ms {
		data, err := m.ReadFile(name)
		if err == nil {
			return data, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		firstErr = &fs.PathError{Op: "read", Path: name, Err: fs.ErrNotExist}
	}
	return nil, firstErr
}

func (ms Multi) FileExists(name string) bool {
	for _, m := range ms {
		if m.FileExists(name) {
			return true
		}
	}
	return false
}
