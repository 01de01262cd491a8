// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphics

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	c, op, err := ParseColor("#FF0000")
	require.NoError(t, err)
	assert.Equal(t, Color{1, 0, 0}, c)
	assert.Equal(t, 1.0, op)

	c, op, err = ParseColor("#8000FF00")
	require.NoError(t, err)
	assert.Equal(t, Color{0, 1, 0}, c)
	assert.InDelta(t, 128.0/255, op, 1e-9)

	c, _, err = ParseColor("blue")
	require.NoError(t, err)
	assert.Equal(t, "#0000FF", c.Hex())

	_, _, err = ParseColor("notacolor")
	assert.Error(t, err)
	_, _, err = ParseColor("#GG0000")
	assert.Error(t, err)
	_, _, err = ParseColor("")
	assert.Error(t, err)
}

func TestColorConversions(t *testing.T) {
	c := RGB(255, 128, 0)
	assert.Equal(t, color.NRGBA{255, 128, 0, 255}, c.NRGBA(1))
	assert.Equal(t, color.RGBA{0, 0, 0, 0}, c.RGBA(0))
	back, op := FromGo(color.NRGBA{255, 128, 0, 51})
	assert.Equal(t, c, back)
	assert.InDelta(t, 0.2, op, 1e-9)
}

func TestNames(t *testing.T) {
	a, ok := ParseAlignment("Center")
	assert.True(t, ok)
	assert.Equal(t, AlignCenter, a)
	v, ok := ParseVAlignment("bottom")
	assert.True(t, ok)
	assert.Equal(t, VAlignBottom, v)
	tr, ok := ParseTrimming("word-ellipsis")
	assert.True(t, ok)
	assert.Equal(t, "word-ellipsis", tr.String())
	_, ok = ParseAlignment("diagonal")
	assert.False(t, ok)
}
