// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mainloop provides the timer watches that drive gadget
// timers and animations: a real [Loop] and a manually advanced [Fake].
package mainloop

import "sync"

// WatchCallback is called by a main loop for a timeout watch.
type WatchCallback interface {
	// Call is called when the watch is due. The watch is removed if
	// Call returns false.
	Call(loop MainLoop, id int) bool

	// OnRemove is called exactly once when the watch is removed,
	// whether by [MainLoop.RemoveWatch] or because Call returned false.
	OnRemove(loop MainLoop, id int)
}

// MainLoop schedules timeout watches.
type MainLoop interface {
	// AddTimeoutWatch calls cb every interval milliseconds until it is
	// removed. It returns the id of the watch, which is always positive.
	AddTimeoutWatch(interval int, cb WatchCallback) int

	// RemoveWatch removes the watch with the given id. Removing the
	// watch that is currently being called is allowed; its OnRemove
	// runs after its Call returns.
	RemoveWatch(id int)

	// CurrentTime returns the current time in milliseconds.
	CurrentTime() uint64
}

// FuncCallback adapts a function to [WatchCallback].
type FuncCallback func(loop MainLoop, id int) bool

func (f FuncCallback) Call(loop MainLoop, id int) bool { return f(loop, id) }
func (f FuncCallback) OnRemove(loop MainLoop, id int)  {}

type watch struct {
	id       int
	interval uint64
	due      uint64
	cb       WatchCallback
	removed  bool
}

// scheduler is the watch bookkeeping shared by [Loop] and [Fake].
type scheduler struct {
	mu      sync.Mutex
	owner   MainLoop
	watches map[int]*watch
	lastID  int
	firing  int
}

func (s *scheduler) init(owner MainLoop) {
	s.owner = owner
	s.watches = map[int]*watch{}
}

func (s *scheduler) add(now uint64, interval int, cb WatchCallback) int {
	if cb == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	iv := uint64(max(interval, 1))
	w := &watch{id: s.lastID, interval: iv, due: now + iv, cb: cb}
	s.watches[w.id] = w
	return w.id
}

func (s *scheduler) remove(id int) {
	s.mu.Lock()
	w := s.watches[id]
	if w == nil || w.removed {
		s.mu.Unlock()
		return
	}
	w.removed = true
	if s.firing == id {
		s.mu.Unlock()
		return
	}
	delete(s.watches, id)
	s.mu.Unlock()
	w.cb.OnRemove(s.owner, id)
}

// nextDue returns the earliest due time of all watches.
func (s *scheduler) nextDue() (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w := s.earliest()
	if w == nil {
		return 0, false
	}
	return w.due, true
}

func (s *scheduler) earliest() *watch {
	var best *watch
	for _, w := range s.watches {
		if w.removed {
			continue
		}
		if best == nil || w.due < best.due || (w.due == best.due && w.id < best.id) {
			best = w
		}
	}
	return best
}

// fireOne calls the earliest watch that is due at now, and reports
// whether there was one.
func (s *scheduler) fireOne(now func() uint64) bool {
	s.mu.Lock()
	w := s.earliest()
	t := now()
	if w == nil || w.due > t {
		s.mu.Unlock()
		return false
	}
	s.firing = w.id
	s.mu.Unlock()

	keep := w.cb.Call(s.owner, w.id)

	s.mu.Lock()
	s.firing = 0
	if keep && !w.removed {
		w.due = now() + w.interval
		s.mu.Unlock()
		return true
	}
	w.removed = true
	delete(s.watches, w.id)
	s.mu.Unlock()
	w.cb.OnRemove(s.owner, w.id)
	return true
}

func (s *scheduler) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.watches)
}

// removeAll removes every watch.
func (s *scheduler) removeAll() {
	s.mu.Lock()
	ids := make([]int, 0, len(s.watches))
	for id := range s.watches {
		ids = append(ids, id)
	}
	s.mu.Unlock()
	for _, id := range ids {
		s.remove(id)
	}
}
