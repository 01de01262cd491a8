// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Result is the outcome of dispatching an event.
// Results are ordered so that combining two results keeps the larger.
type Result int32

const (
	// Unhandled means nobody processed the event.
	Unhandled Result = iota

	// Handled means the event was processed.
	Handled

	// Canceled means a handler canceled the event, which suppresses
	// any default behavior.
	Canceled
)

func (r Result) String() string {
	switch r {
	case Handled:
		return "handled"
	case Canceled:
		return "canceled"
	}
	return "unhandled"
}

// Max returns the larger of the two results.
func (r Result) Max(o Result) Result {
	if o > r {
		return o
	}
	return r
}
