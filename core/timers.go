// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"log/slog"
	"math"

	"cogentcore.org/gadget/events"
	"cogentcore.org/gadget/geom"
	"cogentcore.org/gadget/mainloop"
)

// timerWatch runs an animation, a timeout or an interval of a view,
// depending on duration: animations have a positive duration,
// timeouts a zero duration and intervals a negative one.
type timerWatch struct {
	view *View
	fun  func(se *events.ScriptEvent)

	start, end, duration int
	lastValue            int
	startTime            uint64
	lastFired            uint64
	fired                bool
}

func (t *timerWatch) Call(loop mainloop.MainLoop, id int) bool {
	fire, keep := true, true
	value := 0
	now := loop.CurrentTime()
	switch {
	case t.duration > 0:
		progress := geom.Clamp(float64(now-t.startTime)/float64(t.duration), 0, 1)
		value = t.start + int(math.Round(progress*float64(t.end-t.start)))
		fire = value != t.lastValue
		keep = progress < 1
		t.lastValue = value
	case t.duration == 0:
		keep = false
	}
	minInterval := uint64(max(t.view.settings.MinTimerInterval, 0))
	if fire && (t.duration == 0 || !t.fired || now-t.lastFired > minInterval) {
		se := events.NewScriptEvent(events.NewTimer(id, value), nil, nil)
		t.view.fireEventFunc(se, t.fun)
		t.lastFired = loop.CurrentTime()
		t.fired = true
	}
	return keep
}

func (t *timerWatch) OnRemove(loop mainloop.MainLoop, id int) {
	delete(t.view.timers, id)
}

func (v *View) addTimer(fun func(se *events.ScriptEvent), interval, start, end, duration int) int {
	if fun == nil {
		slog.Warn("invalid timer callback")
		return 0
	}
	if v.destroyed {
		return 0
	}
	t := &timerWatch{
		view:      v,
		fun:       fun,
		start:     start,
		end:       end,
		duration:  duration,
		lastValue: start,
		startTime: v.loop.CurrentTime(),
	}
	id := v.loop.AddTimeoutWatch(interval, t)
	if id > 0 {
		v.timers[id] = t
	}
	return id
}

// BeginAnimation starts an animation calling fun with values going
// from start to end over duration milliseconds. fun is only called when
// the value changes. It returns the token of the animation, or 0 on
// error.
func (v *View) BeginAnimation(fun func(se *events.ScriptEvent), start, end, duration int) int {
	return v.addTimer(fun, v.settings.AnimationInterval, start, end, max(duration, 0))
}

// CancelAnimation stops an animation.
func (v *View) CancelAnimation(token int) {
	v.RemoveTimer(token)
}

// SetTimeout calls fun once after ms milliseconds. It returns the token
// of the timer, or 0 on error.
func (v *View) SetTimeout(fun func(se *events.ScriptEvent), ms int) int {
	return v.addTimer(fun, ms, 0, 0, 0)
}

// ClearTimeout cancels a timeout.
func (v *View) ClearTimeout(token int) {
	v.RemoveTimer(token)
}

// SetInterval calls fun every ms milliseconds. It returns the token of
// the timer, or 0 on error.
func (v *View) SetInterval(fun func(se *events.ScriptEvent), ms int) int {
	return v.addTimer(fun, ms, 0, 0, -1)
}

// ClearInterval cancels an interval.
func (v *View) ClearInterval(token int) {
	v.RemoveTimer(token)
}

// RemoveTimer cancels the animation or timer with the given token. A
// timer can cancel itself from its callback.
func (v *View) RemoveTimer(token int) {
	if token <= 0 || v.timers[token] == nil {
		return
	}
	v.loop.RemoveWatch(token)
}

// TimerCount returns the number of active animations and timers.
func (v *View) TimerCount() int {
	return len(v.timers)
}

func (v *View) removeTimers() {
	for id := range v.timers {
		v.loop.RemoveWatch(id)
	}
	clear(v.timers)
}
