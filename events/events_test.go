// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeNames(t *testing.T) {
	assert.Equal(t, "onclick", MouseClick.SignalName())
	assert.Equal(t, "click", MouseClick.String())
	for typ := MouseDown; typ < typesN; typ++ {
		got, ok := TypeByName(typ.SignalName())
		assert.True(t, ok, typ.String())
		assert.Equal(t, typ, got)
	}
	got, ok := TypeByName("MouseOver")
	assert.True(t, ok)
	assert.Equal(t, MouseOver, got)
	_, ok = TypeByName("onbogus")
	assert.False(t, ok)

	assert.True(t, MouseWheel.IsMouse())
	assert.False(t, KeyDown.IsMouse())
	assert.True(t, KeyPress.IsKey())
	assert.True(t, DragMotion.IsDrag())
}

func TestButtons(t *testing.T) {
	b := Left | Right
	assert.True(t, b.Has(Left))
	assert.False(t, b.Has(Middle))
	assert.False(t, b.Has(NoButton))
	assert.Equal(t, "left|right", b.String())
	assert.Equal(t, Buttons(31), AllButtons)
}

func TestResultMax(t *testing.T) {
	assert.Equal(t, Handled, Unhandled.Max(Handled))
	assert.Equal(t, Canceled, Canceled.Max(Handled))
}

func TestSignalDisconnectDuringEmit(t *testing.T) {
	var sig Signal[int]
	var got []string
	var c2 *Connection
	sig.Connect(func(v int) {
		got = append(got, "a")
		c2.Disconnect()
	})
	c2 = sig.Connect(func(v int) { got = append(got, "b") })
	var self *Connection
	self = sig.Connect(func(v int) {
		got = append(got, "c")
		self.Disconnect()
	})

	sig.Emit(1)
	assert.Equal(t, []string{"a", "c"}, got)
	assert.Equal(t, 1, sig.Len())
	assert.False(t, c2.Connected())

	got = nil
	sig.Emit(2)
	assert.Equal(t, []string{"a"}, got)
}

func TestSignalBlocked(t *testing.T) {
	var sig Signal[string]
	n := 0
	c := sig.Connect(func(string) { n++ })
	c.SetBlocked(true)
	sig.Emit("x")
	assert.Equal(t, 0, n)
	c.SetBlocked(false)
	sig.Emit("x")
	assert.Equal(t, 1, n)
	sig.DisconnectAll()
	assert.False(t, sig.HasConnections())
	assert.False(t, c.Connected())
}

func TestListenersCall(t *testing.T) {
	var ls Listeners
	se := NewScriptEvent(NewMouse(MouseClick, 1, 2, Left, 0), nil, nil)
	assert.Equal(t, Unhandled, ls.Call(se))

	ls.Add(MouseClick, func(se *ScriptEvent) {})
	assert.True(t, ls.Has(MouseClick))
	assert.False(t, ls.Has(MouseDown))
	assert.Equal(t, Handled, ls.Call(se))

	ls.Add(MouseClick, func(se *ScriptEvent) { se.Cancel() })
	se = NewScriptEvent(NewMouse(MouseClick, 1, 2, Left, 0), nil, nil)
	assert.Equal(t, Canceled, ls.Call(se))
	assert.True(t, se.IsCanceled())

	ls.DisconnectAll()
	assert.False(t, ls.Has(MouseClick))
}

func TestWithPos(t *testing.T) {
	m := NewMouse(MouseMove, 1, 2, Left, Shift)
	p := m.WithPos(10, 20)
	x, y := p.Pos()
	assert.Equal(t, 10.0, x)
	assert.Equal(t, 20.0, y)
	assert.Equal(t, 1.0, m.X)
	assert.Equal(t, MouseMove, p.Type())

	d := NewDrag(DragMotion, 0, 0, []string{"a.png"})
	assert.Equal(t, DragOut, d.WithType(DragOut).Type())
	assert.Equal(t, DragMotion, d.Type())
}
