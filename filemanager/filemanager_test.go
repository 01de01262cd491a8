// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filemanager

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanName(t *testing.T) {
	assert.Equal(t, "images/a.png", CleanName("images\\a.png"))
	assert.Equal(t, "a.png", CleanName("/a.png"))
	assert.Equal(t, "b.png", CleanName("./x/../b.png"))
	assert.Equal(t, ".", CleanName(""))
}

func TestMemory(t *testing.T) {
	m, err := NewMemory()
	require.NoError(t, err)
	require.NoError(t, m.WriteFile("images/bg.png", []byte("png")))

	data, err := m.ReadFile("images\\bg.png")
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))
	assert.True(t, m.FileExists("/images/bg.png"))
	assert.False(t, m.FileExists("images"))
	assert.False(t, m.FileExists("missing.png"))

	_, err = m.ReadFile("missing.png")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	_, err = m.ReadFile("")
	assert.Error(t, err)
}

func TestDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.xml"), []byte("<view/>"), 0o644))
	d, err := Dir(dir)
	require.NoError(t, err)
	data, err := d.ReadFile("main.xml")
	require.NoError(t, err)
	assert.Equal(t, "<view/>", string(data))
	assert.True(t, d.FileExists("main.xml"))
}

func TestMulti(t *testing.T) {
	a, err := NewMemory()
	require.NoError(t, err)
	b, err := NewMemory()
	require.NoError(t, err)
	require.NoError(t, b.WriteFile("shared.png", []byte("b")))
	require.NoError(t, a.WriteFile("shared.png", []byte("a")))
	require.NoError(t, b.WriteFile("only-b.png", []byte("b")))

	ms := Multi{a, b}
	data, err := ms.ReadFile("shared.png")
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))
	data, err = ms.ReadFile("only-b.png")
	require.NoError(t, err)
	assert.Equal(t, "b", string(data))
	assert.True(t, ms.FileExists("only-b.png"))
	_, err = ms.ReadFile("none.png")
	assert.Error(t, err)
	_, err = Multi{}.ReadFile("none.png")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
