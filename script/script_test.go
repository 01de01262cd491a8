// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"testing"

	"cogentcore.org/gadget/base/errors"
	"cogentcore.org/gadget/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObject(t *testing.T) {
	var o Object
	width := 10.0
	o.RegisterProperty("width", func() any { return width }, func(v any) error {
		f, err := ToFloat(v)
		width = f
		return err
	})
	o.RegisterReadonlyProperty("tagName", func() any { return "img" })
	o.RegisterConstant("VERSION", 2)
	o.RegisterMethod("double", func(args ...any) (any, error) {
		f, err := ToFloat(args[0])
		return f * 2, err
	})
	var sig events.EventSignal
	o.RegisterSignal("onclick", &sig)

	require.NoError(t, o.SetProperty("width", "42"))
	v, err := o.GetProperty("width")
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	assert.True(t, errors.Is(o.SetProperty("tagName", "x"), ErrReadOnly))
	assert.True(t, errors.Is(o.SetProperty("nope", 1), ErrNotFound))
	v, err = o.GetProperty("VERSION")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	v, err = o.Call("double", 4)
	require.NoError(t, err)
	assert.Equal(t, 8.0, v)
	_, err = o.Call("triple", 4)
	assert.Error(t, err)

	n := 0
	_, err = o.ConnectSignal("onclick", func(se *events.ScriptEvent) { n++ })
	require.NoError(t, err)
	sig.Emit(events.NewScriptEvent(events.NewSimple(events.MouseClick), nil, nil))
	assert.Equal(t, 1, n)

	nm, ok := o.Resolve("WIDTH")
	assert.True(t, ok)
	assert.Equal(t, "width", nm)
	nm, ok = o.Resolve("tagName")
	assert.True(t, ok)
	assert.Equal(t, "tagName", nm)
	_, ok = o.Resolve("height")
	assert.False(t, ok)

	assert.Equal(t, []string{"VERSION", "double", "onclick", "tagName", "width"}, o.Names())
}

func TestConvert(t *testing.T) {
	f, err := ToFloat(" 1.5 ")
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)
	_, err = ToFloat("abc")
	assert.Error(t, err)
	_, err = ToFloat([]int{})
	assert.Error(t, err)

	i, err := ToInt(2.6)
	require.NoError(t, err)
	assert.Equal(t, 3, i)

	for s, want := range map[string]bool{"": false, "false": false, "0": false, "True": true, "yes": true} {
		b, err := ToBool(s)
		require.NoError(t, err)
		assert.Equal(t, want, b, s)
	}
	b, err := ToBool(0.0)
	require.NoError(t, err)
	assert.False(t, b)

	assert.Equal(t, "1.5", ToString(1.5))
	assert.Equal(t, "7", ToString(7))
	assert.Equal(t, "", ToString(nil))
	assert.Equal(t, "left", ToString(events.Left))
}
