// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the coordinate conversions used by the gadget
// scene graph: mapping points between a parent and a child that is
// positioned at (x, y), rotated about its pin point, as well as the
// axis aligned extents of such a child in its parent.
package geom

import "math"

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// Clamp returns v limited to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// IsPointInElement returns whether (x, y) lies within an element of
// the given size, in the element's own coordinate space.
func IsPointInElement(x, y, width, height float64) bool {
	return x >= 0 && y >= 0 && x < width && y < height
}

// ParentToChild converts the point (px, py) in parent coordinates into
// the coordinate space of a child located at (childX, childY) in the
// parent, whose pin point (pinX, pinY) is at that location, and which
// is rotated by rotation radians around the pin.
func ParentToChild(px, py, childX, childY, pinX, pinY, rotation float64) (float64, float64) {
	sn, cs := math.Sincos(rotation)
	dx, dy := px-childX, py-childY
	return dx*cs + dy*sn + pinX, dy*cs - dx*sn + pinY
}

// ChildToParent is the inverse of [ParentToChild].
func ChildToParent(cx, cy, childX, childY, pinX, pinY, rotation float64) (float64, float64) {
	sn, cs := math.Sincos(rotation)
	dx, dy := cx-pinX, cy-pinY
	return dx*cs - dy*sn + childX, dx*sn + dy*cs + childY
}

// ChildCalculator converts many points from one parent space into a
// single child space. It caches the rotation coefficients so that
// repeated hit testing against the same child does no trigonometry.
type ChildCalculator struct {
	sin, cos float64
	a13, a23 float64
}

// NewChildCalculator returns a [ChildCalculator] for the given child
// transform, with the same parameters as [ParentToChild].
func NewChildCalculator(childX, childY, pinX, pinY, rotation float64) ChildCalculator {
	sn, cs := math.Sincos(rotation)
	return ChildCalculator{
		sin: sn,
		cos: cs,
		a13: pinX - childY*sn - childX*cs,
		a23: pinY + childX*sn - childY*cs,
	}
}

// Convert maps a parent point into child coordinates.
func (c ChildCalculator) Convert(px, py float64) (float64, float64) {
	return c.X(px, py), c.Y(px, py)
}

// X returns the child x coordinate of the parent point.
func (c ChildCalculator) X(px, py float64) float64 {
	return px*c.cos + py*c.sin + c.a13
}

// Y returns the child y coordinate of the parent point.
func (c ChildCalculator) Y(px, py float64) float64 {
	return py*c.cos - px*c.sin + c.a23
}

// ParentCalculator is the cached inverse of [ChildCalculator].
type ParentCalculator struct {
	sin, cos float64
	x0, y0   float64
}

// NewParentCalculator returns a [ParentCalculator] for the given
// child transform.
func NewParentCalculator(childX, childY, pinX, pinY, rotation float64) ParentCalculator {
	sn, cs := math.Sincos(rotation)
	return ParentCalculator{
		sin: sn,
		cos: cs,
		x0:  childX + pinY*sn - pinX*cs,
		y0:  childY - pinX*sn - pinY*cs,
	}
}

// Convert maps a child point into parent coordinates.
func (c ParentCalculator) Convert(cx, cy float64) (float64, float64) {
	return c.X(cx, cy), c.Y(cx, cy)
}

// X returns the parent x coordinate of the child point.
func (c ParentCalculator) X(cx, cy float64) float64 {
	return cx*c.cos - cy*c.sin + c.x0
}

// Y returns the parent y coordinate of the child point.
func (c ParentCalculator) Y(cx, cy float64) float64 {
	return cx*c.sin + cy*c.cos + c.y0
}

// ChildExtentInParent returns the axis aligned bounding box, in parent
// coordinates, of a child rectangle of the given size.
func ChildExtentInParent(childX, childY, pinX, pinY, width, height, rotation float64) Rect {
	if rotation == 0 {
		return Rect{X: childX - pinX, Y: childY - pinY, W: width, H: height}
	}
	pc := NewParentCalculator(childX, childY, pinX, pinY, rotation)
	return BoundsOf(
		Pt(pc.Convert(0, 0)),
		Pt(pc.Convert(width, 0)),
		Pt(pc.Convert(0, height)),
		Pt(pc.Convert(width, height)),
	)
}
