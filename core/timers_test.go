// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"cogentcore.org/gadget/events"
	"cogentcore.org/gadget/mainloop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnimation(t *testing.T) {
	env := newTestView(t)
	v := env.view
	var values []int
	token := v.BeginAnimation(func(se *events.ScriptEvent) {
		values = append(values, se.Event.(*events.TimerEvent).Value)
		assert.Same(t, se, v.Event())
	}, 0, 100, 100)
	require.NotZero(t, token)
	assert.Equal(t, 1, v.TimerCount())

	env.loop.Advance(200)
	assert.Equal(t, []int{33, 66, 99, 100}, values)
	assert.Zero(t, v.TimerCount(), "finished animations are removed")
	assert.Zero(t, env.loop.Len())
}

func TestAnimationSkipsRepeatedValues(t *testing.T) {
	env := newTestView(t)
	v := env.view
	var values []int
	v.BeginAnimation(func(se *events.ScriptEvent) {
		values = append(values, se.Event.(*events.TimerEvent).Value)
	}, 10, 12, 200)
	env.loop.Advance(300)
	assert.Equal(t, []int{11, 12}, values)
}

func TestCancelAnimation(t *testing.T) {
	env := newTestView(t)
	v := env.view
	calls := 0
	token := v.BeginAnimation(func(se *events.ScriptEvent) { calls++ }, 0, 100, 1000)
	env.loop.Advance(40)
	v.CancelAnimation(token)
	env.loop.Advance(1000)
	assert.Equal(t, 1, calls)
	assert.Zero(t, v.TimerCount())
}

func TestTimeout(t *testing.T) {
	env := newTestView(t)
	v := env.view
	calls := 0
	v.SetTimeout(func(se *events.ScriptEvent) { calls++ }, 50)
	env.loop.Advance(49)
	assert.Equal(t, 0, calls)
	env.loop.Advance(1)
	assert.Equal(t, 1, calls)
	env.loop.Advance(100)
	assert.Equal(t, 1, calls)
	assert.Zero(t, v.TimerCount())
}

func TestClearTimeout(t *testing.T) {
	env := newTestView(t)
	v := env.view
	calls := 0
	token := v.SetTimeout(func(se *events.ScriptEvent) { calls++ }, 50)
	v.ClearTimeout(token)
	env.loop.Advance(100)
	assert.Zero(t, calls)
}

func TestInterval(t *testing.T) {
	env := newTestView(t)
	v := env.view
	var tokens []int
	token := v.SetInterval(func(se *events.ScriptEvent) {
		tokens = append(tokens, se.Event.(*events.TimerEvent).Token)
	}, 10)
	env.loop.Advance(35)
	assert.Equal(t, []int{token, token, token}, tokens)

	v.ClearInterval(token)
	env.loop.Advance(100)
	assert.Len(t, tokens, 3)
}

func TestIntervalThrottle(t *testing.T) {
	env := newTestView(t)
	v := env.view
	calls := 0
	v.SetInterval(func(se *events.ScriptEvent) { calls++ }, 2)
	env.loop.Advance(10)
	assert.Equal(t, 2, calls, "intervals fire at most every 5 ms")
}

func TestIntervalFirstCallAtClockStart(t *testing.T) {
	env := newTestView(t)
	v := env.view
	loop := mainloop.NewFake(0)
	v.loop = loop
	calls := 0
	v.SetInterval(func(se *events.ScriptEvent) { calls++ }, 2)
	loop.Advance(2)
	assert.Equal(t, 1, calls, "the first call is never throttled")
	loop.Advance(8)
	assert.Equal(t, 2, calls)
}

func TestClearIntervalFromCallback(t *testing.T) {
	env := newTestView(t)
	v := env.view
	calls := 0
	v.SetInterval(func(se *events.ScriptEvent) {
		calls++
		v.ClearInterval(se.Event.(*events.TimerEvent).Token)
	}, 10)
	assert.NotPanics(t, func() { env.loop.Advance(100) })
	assert.Equal(t, 1, calls)
	assert.Zero(t, v.TimerCount())
}

func TestRemoveForeignTimer(t *testing.T) {
	env := newTestView(t)
	v := env.view
	other := newTestView(t)
	other.view.loop = env.loop
	calls := 0
	token := other.view.SetInterval(func(se *events.ScriptEvent) { calls++ }, 10)
	v.RemoveTimer(token)
	env.loop.Advance(25)
	assert.Equal(t, 2, calls, "views only remove their own timers")
}

func TestInvalidTimerCallback(t *testing.T) {
	env := newTestView(t)
	assert.Zero(t, env.view.SetTimeout(nil, 10))
	assert.Zero(t, env.view.TimerCount())
}

func TestScriptTimers(t *testing.T) {
	env := newTestView(t)
	v := env.view
	token, err := v.Script.Call("setTimeout", "tick()", 10)
	require.NoError(t, err)
	assert.NotZero(t, token)
	env.loop.Advance(10)
	assert.Equal(t, []string{"tick()"}, env.script.ran)

	calls := 0
	token, err = v.Script.Call("setInterval", func() { calls++ }, 10)
	require.NoError(t, err)
	env.loop.Advance(20)
	_, err = v.Script.Call("clearInterval", token)
	require.NoError(t, err)
	env.loop.Advance(20)
	assert.Equal(t, 2, calls)
}
