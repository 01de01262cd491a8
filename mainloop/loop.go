// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mainloop

import (
	"context"
	"sync"
	"time"
)

// Loop is a real [MainLoop]. All watch callbacks and posted functions
// run on the goroutine that calls [Loop.Run], which makes that
// goroutine the single thread that owns the views using the loop.
type Loop struct {
	scheduler
	start time.Time

	postMu sync.Mutex
	posted []func()
	wake   chan struct{}
}

// NewLoop returns a new [Loop]. Its clock starts at zero.
func NewLoop() *Loop {
	l := &Loop{start: time.Now(), wake: make(chan struct{}, 1)}
	l.init(l)
	return l
}

func (l *Loop) AddTimeoutWatch(interval int, cb WatchCallback) int {
	id := l.add(l.CurrentTime(), interval, cb)
	l.signal()
	return id
}

func (l *Loop) RemoveWatch(id int) {
	l.remove(id)
}

func (l *Loop) CurrentTime() uint64 {
	return uint64(time.Since(l.start).Milliseconds())
}

// Post queues fun to run on the loop goroutine. It is safe to call
// from any goroutine.
func (l *Loop) Post(fun func()) {
	l.postMu.Lock()
	l.posted = append(l.posted, fun)
	l.postMu.Unlock()
	l.signal()
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run processes watches and posted functions until ctx is done.
// On return all remaining watches are removed.
func (l *Loop) Run(ctx context.Context) error {
	defer l.removeAll()
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()
	for {
		l.runPosted()
		for l.fireOne(l.CurrentTime) {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.runPosted()
		}

		wait := time.Hour
		if due, ok := l.nextDue(); ok {
			now := l.CurrentTime()
			wait = 0
			if due > now {
				wait = time.Duration(due-now) * time.Millisecond
			}
		}
		timer.Reset(wait)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
		case <-timer.C:
		}
	}
}

func (l *Loop) runPosted() {
	l.postMu.Lock()
	fns := l.posted
	l.posted = nil
	l.postMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Len returns the number of active watches.
func (l *Loop) Len() int {
	return l.len()
}
