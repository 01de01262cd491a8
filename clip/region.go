// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clip provides [Region], the set of rectangles that need to be
// repainted since the last paint of a view.
package clip

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/gadget/geom"
)

// DefaultRatio is the merge ratio used when none is given.
const DefaultRatio = 0.9

// Region is a set of rectangles. Adding a rectangle merges it with
// existing ones when the area wasted by their bounding box is small,
// which keeps the number of rectangles low at the cost of precision.
// The zero value is not ready to use; call [NewRegion].
type Region struct {
	// Ratio controls merging: two rectangles a and b are merged when
	// area(union(a, b)) * Ratio <= area(a) + area(b).
	Ratio float64

	rects      []geom.Rect
	integerize bool
}

// NewRegion returns an empty region with the given merge ratio.
// A non-positive ratio selects [DefaultRatio].
func NewRegion(ratio float64) *Region {
	if ratio <= 0 {
		ratio = DefaultRatio
	}
	return &Region{Ratio: ratio}
}

func (rg *Region) String() string {
	var sb strings.Builder
	sb.WriteString("clip.Region[")
	for i, r := range rg.rects {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(r.String())
	}
	sb.WriteString("]")
	return sb.String()
}

// AddRectangle adds r to the region. Empty rectangles are ignored.
func (rg *Region) AddRectangle(r geom.Rect) {
	if r.Empty() {
		return
	}
	if rg.integerize {
		r = r.Integerize()
	}
	for {
		merged := false
		for i := 0; i < len(rg.rects); i++ {
			e := rg.rects[i]
			if r.Inside(e) {
				return
			}
			if e.Inside(r) {
				rg.rects = slices.Delete(rg.rects, i, i+1)
				i--
				continue
			}
			u := e.Union(r)
			if u.Area()*rg.Ratio <= e.Area()+r.Area() {
				rg.rects = slices.Delete(rg.rects, i, i+1)
				r = u
				merged = true
				break
			}
		}
		if !merged {
			break
		}
	}
	rg.rects = append(rg.rects, r)
}

// AddRegion adds all rectangles of o to the region.
func (rg *Region) AddRegion(o *Region) {
	for _, r := range o.rects {
		rg.AddRectangle(r)
	}
}

// Overlaps returns whether r shares any area with the region.
func (rg *Region) Overlaps(r geom.Rect) bool {
	for _, e := range rg.rects {
		if e.Intersects(r) {
			return true
		}
	}
	return false
}

// IsInside returns whether every rectangle of the region lies within r.
// It is always false for an empty region.
func (rg *Region) IsInside(r geom.Rect) bool {
	if len(rg.rects) == 0 {
		return false
	}
	for _, e := range rg.rects {
		if !e.Inside(r) {
			return false
		}
	}
	return true
}

// ContainsRect returns whether r lies entirely within a single
// rectangle of the region.
func (rg *Region) ContainsRect(r geom.Rect) bool {
	for _, e := range rg.rects {
		if r.Inside(e) {
			return true
		}
	}
	return false
}

// IsEmpty returns whether the region has no rectangles.
func (rg *Region) IsEmpty() bool {
	return len(rg.rects) == 0
}

// Clear removes all rectangles and leaves integer mode.
func (rg *Region) Clear() {
	rg.rects = rg.rects[:0]
	rg.integerize = false
}

// Integerize snaps every rectangle outward to integer pixel edges.
// Rectangles added afterwards are snapped as well, until [Region.Clear].
func (rg *Region) Integerize() {
	if rg.integerize {
		return
	}
	rg.integerize = true
	old := rg.rects
	rg.rects = nil
	for _, r := range old {
		rg.AddRectangle(r)
	}
}

// IsIntegerized returns whether [Region.Integerize] is in effect.
func (rg *Region) IsIntegerized() bool {
	return rg.integerize
}

// Len returns the number of rectangles.
func (rg *Region) Len() int {
	return len(rg.rects)
}

// Rectangles returns a copy of the rectangles of the region.
func (rg *Region) Rectangles() []geom.Rect {
	return slices.Clone(rg.rects)
}

// Bounds returns the bounding box of the region.
func (rg *Region) Bounds() geom.Rect {
	var b geom.Rect
	for _, r := range rg.rects {
		b = b.Union(r)
	}
	return b
}

// EnumerateRectangles calls fun for each rectangle until it returns false.
// It returns false if the enumeration was stopped.
func (rg *Region) EnumerateRectangles(fun func(r geom.Rect) bool) bool {
	for _, r := range rg.rects {
		if !fun(r) {
			return false
		}
	}
	return true
}

// Contains returns whether the point is covered by the region.
func (rg *Region) Contains(x, y float64) bool {
	for _, r := range rg.rects {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}

// Validate checks internal consistency, for tests and debugging.
func (rg *Region) Validate() error {
	for i, r := range rg.rects {
		if r.Empty() {
			return fmt.Errorf("clip.Region: empty rectangle %v at %d", r, i)
		}
	}
	return nil
}
