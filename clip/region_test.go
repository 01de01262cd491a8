// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clip

import (
	"testing"

	"cogentcore.org/gadget/geom"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRectangleMerge(t *testing.T) {
	rg := NewRegion(0)
	assert.Equal(t, DefaultRatio, rg.Ratio)
	assert.True(t, rg.IsEmpty())

	rg.AddRectangle(geom.R(0, 0, 10, 10))
	rg.AddRectangle(geom.R(10, 0, 10, 10))
	// adjacent rectangles waste nothing, so they merge
	assert.Equal(t, []geom.Rect{geom.R(0, 0, 20, 10)}, rg.Rectangles())

	rg.AddRectangle(geom.R(100, 100, 5, 5))
	assert.Equal(t, 2, rg.Len())

	// contained rectangles are absorbed
	rg.AddRectangle(geom.R(2, 2, 3, 3))
	assert.Equal(t, 2, rg.Len())

	// a larger rectangle swallows smaller ones
	rg.AddRectangle(geom.R(-1, -1, 30, 30))
	if diff := cmp.Diff([]geom.Rect{geom.R(100, 100, 5, 5), geom.R(-1, -1, 30, 30)}, rg.Rectangles()); diff != "" {
		t.Errorf("rectangles mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, rg.Validate())
}

func TestAddRectangleChainMerge(t *testing.T) {
	rg := NewRegion(1)
	rg.AddRectangle(geom.R(0, 0, 10, 10))
	rg.AddRectangle(geom.R(20, 0, 10, 10))
	assert.Equal(t, 2, rg.Len())
	// fills the gap, after which everything merges into one
	rg.AddRectangle(geom.R(10, 0, 10, 10))
	assert.Equal(t, []geom.Rect{geom.R(0, 0, 30, 10)}, rg.Rectangles())
}

func TestEmptyIgnored(t *testing.T) {
	rg := NewRegion(0)
	rg.AddRectangle(geom.R(5, 5, 0, 10))
	rg.AddRectangle(geom.R(5, 5, 10, -1))
	assert.True(t, rg.IsEmpty())
}

func TestQueries(t *testing.T) {
	rg := NewRegion(0)
	assert.False(t, rg.IsInside(geom.R(0, 0, 1, 1)))
	assert.False(t, rg.ContainsRect(geom.R(0, 0, 1, 1)))
	assert.False(t, rg.Overlaps(geom.R(0, 0, 1, 1)))

	rg.AddRectangle(geom.R(10, 10, 20, 20))
	assert.True(t, rg.Overlaps(geom.R(25, 25, 10, 10)))
	assert.False(t, rg.Overlaps(geom.R(30, 10, 5, 5)))
	assert.True(t, rg.ContainsRect(geom.R(12, 12, 5, 5)))
	assert.False(t, rg.ContainsRect(geom.R(5, 12, 10, 5)))
	assert.True(t, rg.IsInside(geom.R(10, 10, 20, 20)))
	assert.True(t, rg.IsInside(geom.R(0, 0, 50, 50)))
	assert.False(t, rg.IsInside(geom.R(12, 12, 5, 5)), "the region is larger than r")

	rg.AddRectangle(geom.R(100, 100, 5, 5))
	assert.False(t, rg.IsInside(geom.R(0, 0, 50, 50)), "one rectangle is outside r")
	assert.True(t, rg.IsInside(geom.R(0, 0, 200, 200)))
	assert.True(t, rg.Contains(10, 10))
	assert.Equal(t, geom.R(10, 10, 20, 20), rg.Bounds())

	rg.Clear()
	assert.True(t, rg.IsEmpty())
}

func TestIntegerizeNoShrink(t *testing.T) {
	input := []geom.Rect{
		geom.R(0.5, 0.25, 10.1, 3.3),
		geom.R(40.7, 12.2, 0.6, 0.6),
		geom.R(-3.3, 5.9, 2.2, 7.7),
		geom.R(100.01, 100.99, 1, 1),
	}
	rg := NewRegion(0)
	for _, r := range input {
		rg.AddRectangle(r)
	}
	rg.Integerize()
	assert.True(t, rg.IsIntegerized())

	rg.EnumerateRectangles(func(r geom.Rect) bool {
		assert.Equal(t, r, r.Integerize())
		return true
	})
	for _, r := range input {
		corners := []geom.Point{
			{r.X, r.Y}, {r.Right() - 1e-9, r.Y}, {r.X, r.Bottom() - 1e-9},
			{r.Right() - 1e-9, r.Bottom() - 1e-9}, {r.X + r.W/2, r.Y + r.H/2},
		}
		for _, p := range corners {
			assert.True(t, rg.Contains(p.X, p.Y), "point %v of %v lost", p, r)
		}
	}

	rg.AddRectangle(geom.R(200.5, 200.5, 1, 1))
	assert.True(t, rg.ContainsRect(geom.R(200, 200, 2, 2)))
}

func TestEnumerateStops(t *testing.T) {
	rg := NewRegion(1)
	rg.AddRectangle(geom.R(0, 0, 1, 1))
	rg.AddRectangle(geom.R(10, 10, 1, 1))
	n := 0
	done := rg.EnumerateRectangles(func(r geom.Rect) bool {
		n++
		return false
	})
	assert.False(t, done)
	assert.Equal(t, 1, n)
}
