// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Event is implemented by every gadget event.
type Event interface {
	fmt.Stringer

	// Type returns the type of the event.
	Type() Types
}

// Positioned is implemented by events that carry a position, which
// is remapped into each element's coordinate space during dispatch.
type Positioned interface {
	Event

	// Pos returns the position of the event.
	Pos() (x, y float64)

	// WithPos returns a copy of the event at the given position.
	WithPos(x, y float64) Positioned
}

// Base is the common part of all events.
type Base struct {
	Typ Types
}

func (ev *Base) Type() Types {
	return ev.Typ
}

// Simple is an event without any data, such as [Close] or [FocusIn].
type Simple struct {
	Base
}

// NewSimple returns a new [Simple] event of the given type.
func NewSimple(typ Types) *Simple {
	return &Simple{Base{typ}}
}

func (ev *Simple) String() string {
	return ev.Typ.String()
}

// Mouse is a mouse event. X and Y are in the coordinate space of the
// receiver.
type Mouse struct {
	Base
	X, Y float64

	// WheelDeltaX and WheelDeltaY are the scroll amounts of a
	// [MouseWheel] event.
	WheelDeltaX, WheelDeltaY int

	// Buttons are the buttons held (or, for clicks, the button clicked).
	Buttons Buttons

	Mods Modifiers
}

// NewMouse returns a new mouse event.
func NewMouse(typ Types, x, y float64, buttons Buttons, mods Modifiers) *Mouse {
	return &Mouse{Base: Base{typ}, X: x, Y: y, Buttons: buttons, Mods: mods}
}

func (ev *Mouse) String() string {
	return fmt.Sprintf("%v{Pos: (%g, %g), Buttons: %v}", ev.Typ, ev.X, ev.Y, ev.Buttons)
}

func (ev *Mouse) Pos() (float64, float64) {
	return ev.X, ev.Y
}

func (ev *Mouse) WithPos(x, y float64) Positioned {
	cp := *ev
	cp.X, cp.Y = x, y
	return &cp
}

// WithType returns a copy of the event with another type.
func (ev *Mouse) WithType(typ Types) *Mouse {
	cp := *ev
	cp.Typ = typ
	return &cp
}

// Key is a keyboard event.
type Key struct {
	Base

	// KeyCode is the platform independent key code for [KeyDown] and
	// [KeyUp], and the character code for [KeyPress].
	KeyCode uint32

	Mods Modifiers
}

// NewKey returns a new key event.
func NewKey(typ Types, code uint32, mods Modifiers) *Key {
	return &Key{Base: Base{typ}, KeyCode: code, Mods: mods}
}

func (ev *Key) String() string {
	return fmt.Sprintf("%v{Code: %d}", ev.Typ, ev.KeyCode)
}

// Drag is a drag and drop event carrying the dragged file names.
type Drag struct {
	Base
	X, Y  float64
	Files []string
}

// NewDrag returns a new drag event.
func NewDrag(typ Types, x, y float64, files []string) *Drag {
	return &Drag{Base: Base{typ}, X: x, Y: y, Files: files}
}

func (ev *Drag) String() string {
	return fmt.Sprintf("%v{Pos: (%g, %g), Files: %v}", ev.Typ, ev.X, ev.Y, ev.Files)
}

func (ev *Drag) Pos() (float64, float64) {
	return ev.X, ev.Y
}

func (ev *Drag) WithPos(x, y float64) Positioned {
	cp := *ev
	cp.X, cp.Y = x, y
	return &cp
}

// WithType returns a copy of the event with another type.
func (ev *Drag) WithType(typ Types) *Drag {
	cp := *ev
	cp.Typ = typ
	return &cp
}

// SizingEvent carries a proposed view size. Handlers of the [Sizing]
// signal may change it through the output event.
type SizingEvent struct {
	Base
	Width, Height float64
}

// NewSizing returns a new [Sizing] event.
func NewSizing(width, height float64) *SizingEvent {
	return &SizingEvent{Base: Base{Sizing}, Width: width, Height: height}
}

func (ev *SizingEvent) String() string {
	return fmt.Sprintf("%v{%gx%g}", ev.Typ, ev.Width, ev.Height)
}

// TimerEvent is delivered to animation and timer callbacks.
type TimerEvent struct {
	Base
	Token int

	// Value is the current animation value; zero for plain timers.
	Value int
}

// NewTimer returns a new [Timer] event.
func NewTimer(token, value int) *TimerEvent {
	return &TimerEvent{Base: Base{Timer}, Token: token, Value: value}
}

func (ev *TimerEvent) String() string {
	return fmt.Sprintf("%v{Token: %d, Value: %d}", ev.Typ, ev.Token, ev.Value)
}

// OptionChange reports that the named option changed.
type OptionChange struct {
	Base
	Name string
}

// NewOptionChange returns a new [OptionChanged] event.
func NewOptionChange(name string) *OptionChange {
	return &OptionChange{Base: Base{OptionChanged}, Name: name}
}

func (ev *OptionChange) String() string {
	return fmt.Sprintf("%v{%s}", ev.Typ, ev.Name)
}

// Menu is the context menu collected by [ContextMenu] handlers.
type Menu interface {
	// AddItem adds an item with the given text. Selecting it calls fun.
	AddItem(text string, disabled bool, fun func(text string))
}

// ContextMenuEvent carries the menu to which handlers add items.
type ContextMenuEvent struct {
	Base
	Menu Menu
}

// NewContextMenu returns a new [ContextMenu] event.
func NewContextMenu(menu Menu) *ContextMenuEvent {
	return &ContextMenuEvent{Base: Base{ContextMenu}, Menu: menu}
}

func (ev *ContextMenuEvent) String() string {
	return ev.Typ.String()
}
