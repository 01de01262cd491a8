// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/gadget/config"
	"cogentcore.org/gadget/options"
	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGadget = `<view width="40" height="30" caption="Test">
  <div name="box" x="10" y="10" width="20" height="10" background="#FF0000"/>
</view>`

func writeGadget(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.xml"), []byte(testGadget), 0o644))
	return dir
}

func readPNG(t *testing.T, path string) color.Color {
	t.Helper()
	fp, err := os.Open(path)
	require.NoError(t, err)
	defer fp.Close()
	img, err := png.Decode(fp)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())
	return img.At(15, 15)
}

func TestRenderOnce(t *testing.T) {
	dir := writeGadget(t)
	out := filepath.Join(t.TempDir(), "view.png")
	f := &flags{output: out, xml: "main.xml", clicks: []string{"15, 15"}}
	s, err := f.settings()
	require.NoError(t, err)
	require.NoError(t, renderOnce(dir, s, f))
	r, g, b, a := readPNG(t, out).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b, a})
}

func TestRenderErrors(t *testing.T) {
	dir := writeGadget(t)
	s := config.Default()
	out := filepath.Join(t.TempDir(), "view.png")
	assert.Error(t, renderOnce(dir, s, &flags{output: out, xml: "missing.xml"}))
	assert.Error(t, renderOnce(dir, s, &flags{output: out, xml: "main.xml", clicks: []string{"15"}}))
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestOptionStore(t *testing.T) {
	dir := writeGadget(t)
	db := filepath.Join(t.TempDir(), "options.db")
	f := &flags{output: filepath.Join(t.TempDir(), "view.png"), xml: "main.xml", options: db}
	s, err := f.settings()
	require.NoError(t, err)
	assert.Equal(t, db, s.Options)

	g, err := openGadget(dir, s, f, nil, nil)
	require.NoError(t, err)
	require.NoError(t, g.opts.Put("color", `"red"`))
	g.Close()

	st, err := options.OpenStore(db, filepath.Base(dir))
	require.NoError(t, err)
	defer st.Close()
	v, ok := st.Get("color")
	assert.True(t, ok)
	assert.Equal(t, `"red"`, v)
}

func TestPoints(t *testing.T) {
	f := &flags{clicks: []string{"1,2", " 3.5 , 4 "}}
	pts, err := f.points()
	require.NoError(t, err)
	assert.Equal(t, [][2]float64{{1, 2}, {3.5, 4}}, pts)

	for _, bad := range []string{"1", "a,2", "1,b"} {
		_, err := (&flags{clicks: []string{bad}}).points()
		assert.Error(t, err, bad)
	}
}

func TestExpandPaths(t *testing.T) {
	home, err := homedir.Dir()
	require.NoError(t, err)
	f := &flags{output: "~/view.png", options: "/tmp/options.db"}
	require.NoError(t, f.expandPaths())
	assert.Equal(t, filepath.Join(home, "view.png"), f.output)
	assert.Equal(t, "/tmp/options.db", f.options)
	assert.Equal(t, "", f.config)
}

func TestSettingsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"settings", path})
	require.NoError(t, cmd.Execute())
	s, err := config.Open(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), s)
}

func TestSettingsFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	s := config.Default()
	s.Zoom = 2
	s.LogLevel = "debug"
	require.NoError(t, s.Save(path))

	f := &flags{config: path, zoom: 3}
	got, err := f.settings()
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.Zoom)
	assert.Equal(t, "debug", got.LogLevel)

	_, err = (&flags{config: filepath.Join(t.TempDir(), "settings.ini")}).settings()
	assert.Error(t, err)
}
