// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// ScriptEvent is what script handlers see as the current event:
// the event itself, the element it is sent to, an optional output
// event that handlers may modify, and the return value.
type ScriptEvent struct {
	Event Event

	// Src is the element receiving the event, or nil for the view.
	Src any

	// Output is a modifiable copy of the event, used by [Sizing].
	Output Event

	// ReturnValue is [Handled] when at least one handler ran,
	// unless a handler canceled the event.
	ReturnValue Result
}

// NewScriptEvent returns a new [ScriptEvent].
func NewScriptEvent(ev Event, src any, output Event) *ScriptEvent {
	return &ScriptEvent{Event: ev, Src: src, Output: output}
}

// Cancel marks the event as canceled.
func (se *ScriptEvent) Cancel() {
	se.ReturnValue = Canceled
}

// IsCanceled returns whether a handler canceled the event.
func (se *ScriptEvent) IsCanceled() bool {
	return se.ReturnValue == Canceled
}

// Type returns the type of the wrapped event.
func (se *ScriptEvent) Type() Types {
	return se.Event.Type()
}
