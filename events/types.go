// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "strings"

// Types is the type of a gadget event. Every type has a script
// signal name (such as "onclick") through which script code and
// element listeners subscribe to it.
type Types int32

const (
	// UnknownType is the zero value.
	UnknownType Types = iota

	// MouseDown is sent when a mouse button is pressed.
	MouseDown

	// MouseUp is sent when a mouse button is released.
	MouseUp

	// MouseClick is a MouseDown followed by a MouseUp with the
	// left button.
	MouseClick

	// MouseDblClick is a double click with the left button.
	MouseDblClick

	// MouseRClick is a click with the right button.
	MouseRClick

	// MouseRDblClick is a double click with the right button.
	MouseRDblClick

	// MouseMove is sent for every mouse motion.
	MouseMove

	// MouseOver is sent when the mouse enters an element or the view.
	MouseOver

	// MouseOut is sent when the mouse leaves an element or the view.
	MouseOut

	// MouseWheel is sent when the wheel is scrolled.
	MouseWheel

	// KeyDown is sent when a key is pressed.
	KeyDown

	// KeyUp is sent when a key is released.
	KeyUp

	// KeyPress is sent for a character produced by a key.
	KeyPress

	// DragOver is sent when a drag enters an element.
	DragOver

	// DragOut is sent when a drag leaves an element, or when a drop
	// lands on an element that refused the drag.
	DragOut

	// DragDrop is sent when files are dropped on an element.
	DragDrop

	// DragMotion is sent by the host while dragging over the view.
	DragMotion

	// FocusIn is sent to an element that receives the keyboard focus.
	FocusIn

	// FocusOut is sent to an element that loses the keyboard focus.
	FocusOut

	// Change is sent when the value of an element changes.
	Change

	// Size is sent after the size of an element or the view changed.
	Size

	// Sizing is sent before the view is resized, and can adjust or
	// cancel the new size.
	Sizing

	// Timer is sent for an animation or timer tick.
	Timer

	// Cancel is sent when the options dialog was canceled.
	Cancel

	// Close is sent when the gadget is closing.
	Close

	// Dock is sent when the gadget is docked.
	Dock

	// Minimize is sent when the gadget is minimized.
	Minimize

	// Ok is sent when the options dialog was confirmed.
	Ok

	// Open is sent when the gadget has been opened.
	Open

	// OptionChanged is sent when a gadget option changed.
	OptionChanged

	// PopIn is sent when an expanded gadget is popped back in.
	PopIn

	// PopOut is sent when the gadget is expanded.
	PopOut

	// Restore is sent when the gadget is restored from minimized.
	Restore

	// Undock is sent when the gadget is undocked.
	Undock

	// ContextMenu is sent before the context menu is shown, so that
	// items can be added to it.
	ContextMenu

	typesN
)

var typeNames = [...]string{
	UnknownType:    "",
	MouseDown:      "onmousedown",
	MouseUp:        "onmouseup",
	MouseClick:     "onclick",
	MouseDblClick:  "ondblclick",
	MouseRClick:    "onrclick",
	MouseRDblClick: "onrdblclick",
	MouseMove:      "onmousemove",
	MouseOver:      "onmouseover",
	MouseOut:       "onmouseout",
	MouseWheel:     "onmousewheel",
	KeyDown:        "onkeydown",
	KeyUp:          "onkeyup",
	KeyPress:       "onkeypress",
	DragOver:       "ondragover",
	DragOut:        "ondragout",
	DragDrop:       "ondragdrop",
	DragMotion:     "ondragmotion",
	FocusIn:        "onfocusin",
	FocusOut:       "onfocusout",
	Change:         "onchange",
	Size:           "onsize",
	Sizing:         "onsizing",
	Timer:          "ontimer",
	Cancel:         "oncancel",
	Close:          "onclose",
	Dock:           "ondock",
	Minimize:       "onminimize",
	Ok:             "onok",
	Open:           "onopen",
	OptionChanged:  "onoptionchanged",
	PopIn:          "onpopin",
	PopOut:         "onpopout",
	Restore:        "onrestore",
	Undock:         "onundock",
	ContextMenu:    "oncontextmenu",
}

var typesByName map[string]Types

func init() {
	typesByName = make(map[string]Types, len(typeNames))
	for t, nm := range typeNames {
		if nm != "" {
			typesByName[nm] = Types(t)
		}
	}
}

// SignalName returns the script signal name of the type, such as "onclick".
func (t Types) SignalName() string {
	if t < 0 || t >= typesN {
		return ""
	}
	return typeNames[t]
}

// String returns the name of the type without the "on" prefix.
func (t Types) String() string {
	if nm := t.SignalName(); nm != "" {
		return strings.TrimPrefix(nm, "on")
	}
	return "unknown"
}

// TypeByName returns the type with the given signal name. The match is
// case insensitive and the "on" prefix is optional.
func TypeByName(name string) (Types, bool) {
	name = strings.ToLower(name)
	if !strings.HasPrefix(name, "on") {
		name = "on" + name
	}
	t, ok := typesByName[name]
	return t, ok
}

// IsMouse returns whether the type is a mouse event type.
func (t Types) IsMouse() bool {
	return t >= MouseDown && t <= MouseWheel
}

// IsKey returns whether the type is a key event type.
func (t Types) IsKey() bool {
	return t >= KeyDown && t <= KeyPress
}

// IsDrag returns whether the type is a drag and drop event type.
func (t Types) IsDrag() bool {
	return t >= DragOver && t <= DragMotion
}
