// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cursors defines the standard mouse cursors that elements
// can request from the view host.
package cursors

import "strings"

// Cursor is a standard cursor shape.
type Cursor int32

const (
	// Arrow is the standard arrow pointer.
	Arrow Cursor = iota

	// IBeam is the text entry cursor.
	IBeam

	// Wait is the busy cursor shown while the gadget blocks input.
	Wait

	// Cross is a crosshair.
	Cross

	// UpArrow is a vertical arrow.
	UpArrow

	// Size is the generic resize cursor.
	Size

	// SizeNWSE points up-left and down-right.
	SizeNWSE

	// SizeNESW points up-right and down-left.
	SizeNESW

	// SizeWE points left and right.
	SizeWE

	// SizeNS points up and down.
	SizeNS

	// SizeAll points in all four directions.
	SizeAll

	// No is a slashed circle.
	No

	// Hand is a pointing hand, used for links and buttons.
	Hand

	// Busy is an arrow with a busy indicator, shown while work runs
	// in the background.
	Busy

	// Help is an arrow with a question mark.
	Help

	// CursorsN is the number of cursors.
	CursorsN
)

var names = [...]string{
	Arrow:    "arrow",
	IBeam:    "ibeam",
	Wait:     "wait",
	Cross:    "cross",
	UpArrow:  "uparrow",
	Size:     "size",
	SizeNWSE: "sizenwse",
	SizeNESW: "sizenesw",
	SizeWE:   "sizewe",
	SizeNS:   "sizens",
	SizeAll:  "sizeall",
	No:       "no",
	Hand:     "hand",
	Busy:     "busy",
	Help:     "help",
}

func (c Cursor) String() string {
	if c < 0 || c >= CursorsN {
		return "arrow"
	}
	return names[c]
}

// Parse returns the cursor with the given name, ignoring case.
func Parse(name string) (Cursor, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, nm := range names {
		if nm == name {
			return Cursor(i), true
		}
	}
	return Arrow, false
}

// Values returns all cursors.
func Values() []Cursor {
	vs := make([]Cursor, CursorsN)
	for i := range vs {
		vs[i] = Cursor(i)
	}
	return vs
}
