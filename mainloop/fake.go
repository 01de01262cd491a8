// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mainloop

// Fake is a [MainLoop] with a manual clock, for tests. Watches only
// fire from [Fake.Advance], in order of due time and then id.
type Fake struct {
	scheduler
	now uint64
}

// NewFake returns a [Fake] whose clock starts at start milliseconds.
func NewFake(start uint64) *Fake {
	f := &Fake{now: start}
	f.init(f)
	return f
}

func (f *Fake) AddTimeoutWatch(interval int, cb WatchCallback) int {
	return f.add(f.now, interval, cb)
}

func (f *Fake) RemoveWatch(id int) {
	f.remove(id)
}

func (f *Fake) CurrentTime() uint64 {
	return f.now
}

// Advance moves the clock forward by ms milliseconds, calling every
// watch that becomes due with the clock set to its due time.
func (f *Fake) Advance(ms uint64) {
	target := f.now + ms
	for {
		due, ok := f.nextDue()
		if !ok || due > target {
			break
		}
		f.now = max(f.now, due)
		f.fireOne(f.CurrentTime)
	}
	f.now = target
}

// Len returns the number of active watches.
func (f *Fake) Len() int {
	return f.len()
}

// RemoveAll removes every watch.
func (f *Fake) RemoveAll() {
	f.removeAll()
}
