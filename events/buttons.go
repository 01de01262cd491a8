// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strings"

// Buttons is a bit set of mouse buttons.
type Buttons int32

const (
	NoButton Buttons = 0
	Left     Buttons = 1 << (iota - 1)
	Middle
	Right
	X1
	X2

	// AllButtons has every button set.
	AllButtons = Left | Middle | Right | X1 | X2
)

// Has returns whether all the given buttons are set.
func (b Buttons) Has(o Buttons) bool {
	return b&o == o && o != 0
}

func (b Buttons) String() string {
	if b == NoButton {
		return "none"
	}
	var parts []string
	for _, f := range []struct {
		b  Buttons
		nm string
	}{{Left, "left"}, {Middle, "middle"}, {Right, "right"}, {X1, "x1"}, {X2, "x2"}} {
		if b&f.b != 0 {
			parts = append(parts, f.nm)
		}
	}
	return strings.Join(parts, "|")
}

// Modifiers is a bit set of keyboard modifiers.
type Modifiers int32

const (
	Shift Modifiers = 1 << iota
	Control
	Alt
	Meta
)

// Has returns whether the modifier is set.
func (m Modifiers) Has(o Modifiers) bool {
	return m&o != 0
}
