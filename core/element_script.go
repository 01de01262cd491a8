// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"

	"cogentcore.org/gadget/cursors"
	"cogentcore.org/gadget/events"
	"cogentcore.org/gadget/script"
)

// elementSignals are the events exposed as signals on every element.
var elementSignals = []events.Types{
	events.MouseClick, events.MouseDblClick, events.MouseRClick, events.MouseRDblClick,
	events.DragDrop, events.DragOut, events.DragOver,
	events.FocusIn, events.FocusOut,
	events.KeyDown, events.KeyPress, events.KeyUp,
	events.MouseDown, events.MouseMove, events.MouseOut, events.MouseOver,
	events.MouseUp, events.MouseWheel, events.Size,
}

func (e *ElementBase) registerProperties() {
	s := &e.Script
	dimProp := func(name string, get func() Dim, set func(Dim)) {
		s.RegisterProperty(name, func() any { return get().ScriptValue() }, func(v any) error {
			d, err := ParseDim(v)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			set(d)
			return nil
		})
	}
	dimProp("x", e.X, e.SetX)
	dimProp("y", e.Y, e.SetY)
	dimProp("width", e.Width, e.SetWidth)
	dimProp("height", e.Height, e.SetHeight)
	dimProp("pinX", e.PinX, e.SetPinX)
	dimProp("pinY", e.PinY, e.SetPinY)

	floatProp(s, "rotation", e.Rotation, e.SetRotation)
	floatProp(s, "opacity", e.Opacity, e.SetOpacity)
	boolProp(s, "visible", e.Visible, e.SetVisible)
	boolProp(s, "enabled", e.Enabled, e.SetEnabled)
	boolProp(s, "dropTarget", e.DropTarget, e.SetDropTarget)
	stringProp(s, "tooltip", e.Tooltip, e.SetTooltip)
	stringProp(s, "mask", e.Mask, e.SetMask)

	s.RegisterProperty("cursor", func() any { return e.cursor.String() }, func(v any) error {
		c, ok := cursors.Parse(script.ToString(v))
		if !ok {
			return fmt.Errorf("cursor: unknown cursor %q", script.ToString(v))
		}
		e.SetCursor(c)
		return nil
	})
	s.RegisterProperty("hitTest", func() any { return e.hitTest.String() }, func(v any) error {
		h, ok := ParseHitTest(script.ToString(v))
		if !ok {
			return fmt.Errorf("hitTest: unknown value %q", script.ToString(v))
		}
		e.SetHitTest(h)
		return nil
	})

	s.RegisterReadonlyProperty("name", func() any { return e.name })
	s.RegisterReadonlyProperty("tagName", func() any { return e.tag })
	s.RegisterReadonlyProperty("offsetX", func() any { return e.geom.x })
	s.RegisterReadonlyProperty("offsetY", func() any { return e.geom.y })
	s.RegisterReadonlyProperty("offsetWidth", func() any { return e.geom.width })
	s.RegisterReadonlyProperty("offsetHeight", func() any { return e.geom.height })
	s.RegisterReadonlyProperty("parentElement", func() any { return e.parent })

	s.RegisterMethod("focus", func(args ...any) (any, error) {
		e.Focus()
		return nil, nil
	})
	s.RegisterMethod("killFocus", func(args ...any) (any, error) {
		e.KillFocus()
		return nil, nil
	})

	for _, t := range elementSignals {
		s.RegisterSignal(t.SignalName(), e.Listeners.Signal(t))
	}
}

func floatProp(s *script.Object, name string, get func() float64, set func(float64)) {
	s.RegisterProperty(name, func() any { return get() }, func(v any) error {
		f, err := script.ToFloat(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		set(f)
		return nil
	})
}

func intProp(s *script.Object, name string, get func() int, set func(int)) {
	s.RegisterProperty(name, func() any { return get() }, func(v any) error {
		i, err := script.ToInt(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		set(i)
		return nil
	})
}

func boolProp(s *script.Object, name string, get func() bool, set func(bool)) {
	s.RegisterProperty(name, func() any { return get() }, func(v any) error {
		b, err := script.ToBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		set(b)
		return nil
	})
}

func stringProp(s *script.Object, name string, get func() string, set func(string)) {
	s.RegisterProperty(name, func() any { return get() }, func(v any) error {
		set(script.ToString(v))
		return nil
	})
}

func argString(args []any, i int) string {
	if i >= len(args) {
		return ""
	}
	return script.ToString(args[i])
}

func argInt(args []any, i int) int {
	if i >= len(args) {
		return 0
	}
	n, _ := script.ToInt(args[i])
	return n
}

func argElement(args []any, i int) (Element, bool) {
	if i >= len(args) {
		return nil, false
	}
	el, ok := args[i].(Element)
	return el, ok && el != nil
}
