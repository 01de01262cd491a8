// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"cogentcore.org/gadget/cursors"
	"cogentcore.org/gadget/events"
	"cogentcore.org/gadget/graphics"
)

// ViewHost is the platform side of a [View]: the native widget or
// window that shows it. A host draws the view by calling [View.Draw]
// when it gets a paint request, and forwards input to
// [View.OnMouseEvent], [View.OnKeyEvent], [View.OnDragEvent] and
// [View.OnOtherEvent].
type ViewHost interface {

	// NewGraphics returns the graphics used by the view.
	NewGraphics() graphics.Graphics

	// SetView attaches the view, or detaches it if v is nil.
	SetView(v *View)

	// QueueDraw asks for a [View.Draw] call in the near future.
	QueueDraw()

	// QueueResize tells the host that the size of the view changed.
	QueueResize()

	SetResizable(mode ResizableMode)
	SetCaption(caption string)
	SetShowCaptionAlways(always bool)
	SetCursor(cursor cursors.Cursor)

	// SetTooltip shows a tooltip, or hides it if tooltip is empty.
	SetTooltip(tooltip string)

	// ShowContextMenu shows the context menu of the view, and returns
	// whether a menu was shown.
	ShowContextMenu(button events.Buttons) bool

	Alert(v *View, message string)
	Confirm(v *View, message string) bool
	Prompt(v *View, message, defaultValue string) string

	// ViewCoordToNative converts view coordinates to coordinates of
	// the native widget.
	ViewCoordToNative(x, y float64) (float64, float64)

	// NativeToViewCoord converts coordinates of the native widget to
	// view coordinates.
	NativeToViewCoord(x, y float64) (float64, float64)

	// Destroy releases the host. The view calls it when it is
	// destroyed.
	Destroy()
}

// ScriptContext compiles the script code found in event attributes,
// such as onclick="...", into handlers.
type ScriptContext interface {
	Compile(code, filename string, line int) (func(se *events.ScriptEvent), error)
}
