// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"log/slog"

	"cogentcore.org/gadget/events"
	"cogentcore.org/gadget/script"
)

var viewSignals = []events.Types{
	events.Cancel, events.MouseClick, events.Close, events.MouseDblClick,
	events.MouseRClick, events.MouseRDblClick, events.Dock,
	events.KeyDown, events.KeyPress, events.KeyUp, events.Minimize,
	events.MouseDown, events.MouseMove, events.MouseOut, events.MouseOver,
	events.MouseUp, events.Ok, events.Open, events.OptionChanged,
	events.PopIn, events.PopOut, events.Restore, events.Size, events.Sizing,
	events.Undock, events.ContextMenu,
}

func (v *View) registerProperties() {
	s := &v.Script
	stringProp(s, "caption", v.Caption, v.SetCaption)
	boolProp(s, "showCaptionAlways", v.ShowCaptionAlways, v.SetShowCaptionAlways)
	floatProp(s, "width", v.Width, v.SetWidth)
	floatProp(s, "height", v.Height, v.SetHeight)
	s.RegisterProperty("resizable", func() any { return v.resizable.String() }, func(val any) error {
		m, ok := ParseResizable(script.ToString(val))
		if !ok {
			return fmt.Errorf("resizable: unknown mode %q", script.ToString(val))
		}
		v.SetResizable(m)
		return nil
	})
	s.RegisterReadonlyProperty("event", func() any { return v.Event() })
	s.RegisterConstant("children", v.children)

	s.RegisterMethod("appendElement", func(args ...any) (any, error) {
		return v.children.AppendElementFromXML(argString(args, 0))
	})
	s.RegisterMethod("insertElement", func(args ...any) (any, error) {
		before, _ := argElement(args, 1)
		return v.children.InsertElementFromXML(argString(args, 0), before)
	})
	s.RegisterMethod("removeElement", func(args ...any) (any, error) {
		el, ok := argElement(args, 0)
		return ok && v.children.RemoveElement(el), nil
	})
	s.RegisterMethod("removeAllElements", func(args ...any) (any, error) {
		v.children.RemoveAll()
		return nil, nil
	})

	s.RegisterMethod("beginAnimation", func(args ...any) (any, error) {
		fun := v.callback(arg(args, 0))
		return v.BeginAnimation(fun, argInt(args, 1), argInt(args, 2), argInt(args, 3)), nil
	})
	s.RegisterMethod("setTimeout", func(args ...any) (any, error) {
		return v.SetTimeout(v.callback(arg(args, 0)), argInt(args, 1)), nil
	})
	s.RegisterMethod("setInterval", func(args ...any) (any, error) {
		return v.SetInterval(v.callback(arg(args, 0)), argInt(args, 1)), nil
	})
	for _, name := range []string{"cancelAnimation", "clearTimeout", "clearInterval"} {
		s.RegisterMethod(name, func(args ...any) (any, error) {
			v.RemoveTimer(argInt(args, 0))
			return nil, nil
		})
	}

	s.RegisterMethod("alert", func(args ...any) (any, error) {
		v.Alert(argString(args, 0))
		return nil, nil
	})
	s.RegisterMethod("confirm", func(args ...any) (any, error) {
		return v.Confirm(argString(args, 0)), nil
	})
	s.RegisterMethod("prompt", func(args ...any) (any, error) {
		return v.Prompt(argString(args, 0), argString(args, 1)), nil
	})
	s.RegisterMethod("resizeBy", func(args ...any) (any, error) {
		v.ResizeBy(float64(argInt(args, 0)), float64(argInt(args, 1)))
		return nil, nil
	})
	s.RegisterMethod("resizeTo", func(args ...any) (any, error) {
		v.SetSize(float64(argInt(args, 0)), float64(argInt(args, 1)))
		return nil, nil
	})

	for _, t := range viewSignals {
		s.RegisterSignal(t.SignalName(), v.Listeners.Signal(t))
	}
}

func arg(args []any, i int) any {
	if i >= len(args) {
		return nil
	}
	return args[i]
}

// callback converts a script value to a timer callback. Strings are
// compiled by the script context.
func (v *View) callback(val any) func(se *events.ScriptEvent) {
	switch f := val.(type) {
	case func(se *events.ScriptEvent):
		return f
	case func():
		return func(*events.ScriptEvent) { f() }
	case string:
		if v.scriptCtx == nil || f == "" {
			return nil
		}
		fun, err := v.scriptCtx.Compile(f, "", 1)
		if err != nil {
			slog.Warn("cannot compile timer callback", "err", err)
			return nil
		}
		return fun
	}
	return nil
}
