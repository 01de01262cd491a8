// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// EventSignal is a signal delivering script events.
type EventSignal = Signal[*ScriptEvent]

// Listeners holds one lazily created [EventSignal] per event type.
// Listeners are closures with all context captured, registered on
// specific elements or views.
type Listeners map[Types]*EventSignal

// Init ensures that the map is constructed.
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[Types]*EventSignal)
}

// Signal returns the signal for the given type, creating it if needed.
func (ls *Listeners) Signal(typ Types) *EventSignal {
	ls.Init()
	sig := (*ls)[typ]
	if sig == nil {
		sig = &EventSignal{}
		(*ls)[typ] = sig
	}
	return sig
}

// Add connects fun to the given event type.
func (ls *Listeners) Add(typ Types, fun func(se *ScriptEvent)) *Connection {
	return ls.Signal(typ).Connect(fun)
}

// Has returns whether anything listens to the given type.
func (ls Listeners) Has(typ Types) bool {
	return ls[typ].HasConnections()
}

// Call emits the signal matching the event type of se. It marks se as
// [Handled] before the first listener runs, so that listeners can
// still cancel it. It returns the resulting value.
func (ls Listeners) Call(se *ScriptEvent) Result {
	sig := ls[se.Event.Type()]
	if !sig.HasConnections() {
		return se.ReturnValue
	}
	if se.ReturnValue == Unhandled {
		se.ReturnValue = Handled
	}
	sig.Emit(se)
	return se.ReturnValue
}

// DisconnectAll removes every listener.
func (ls Listeners) DisconnectAll() {
	for _, sig := range ls {
		sig.DisconnectAll()
	}
}
