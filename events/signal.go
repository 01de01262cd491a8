// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "slices"

// Connection is the handle of one function connected to a [Signal].
type Connection struct {
	remove  func()
	blocked bool
	dead    bool
}

// Disconnect removes the function from its signal. It is safe to call
// more than once, and from within the function itself.
func (c *Connection) Disconnect() {
	if c == nil || c.dead {
		return
	}
	c.dead = true
	if c.remove != nil {
		c.remove()
		c.remove = nil
	}
}

// Connected returns whether the connection is still attached.
func (c *Connection) Connected() bool {
	return c != nil && !c.dead
}

// SetBlocked temporarily stops or resumes calls to the function.
func (c *Connection) SetBlocked(blocked bool) {
	c.blocked = blocked
}

type slot[T any] struct {
	conn *Connection
	fun  func(T)
}

// Signal is a list of functions called in connection order when the
// signal is emitted. Functions may connect or disconnect other
// functions, including themselves, while the signal is emitted.
// The zero value is ready to use.
type Signal[T any] struct {
	slots []*slot[T]
}

// Connect adds fun to the signal and returns its connection.
func (s *Signal[T]) Connect(fun func(T)) *Connection {
	sl := &slot[T]{conn: &Connection{}, fun: fun}
	sl.conn.remove = func() {
		s.slots = slices.DeleteFunc(s.slots, func(o *slot[T]) bool { return o == sl })
	}
	s.slots = append(s.slots, sl)
	return sl.conn
}

// Emit calls all connected, unblocked functions with v.
func (s *Signal[T]) Emit(v T) {
	if len(s.slots) == 0 {
		return
	}
	for _, sl := range slices.Clone(s.slots) {
		if sl.conn.dead || sl.conn.blocked {
			continue
		}
		sl.fun(v)
	}
}

// HasConnections returns whether any function is connected.
func (s *Signal[T]) HasConnections() bool {
	return s != nil && len(s.slots) > 0
}

// Len returns the number of connected functions.
func (s *Signal[T]) Len() int {
	return len(s.slots)
}

// DisconnectAll removes all functions.
func (s *Signal[T]) DisconnectAll() {
	for _, sl := range slices.Clone(s.slots) {
		sl.conn.Disconnect()
	}
	s.slots = nil
}
