// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mainloop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls   []uint64
	removed int
	keep    func(n int) bool
	onCall  func(loop MainLoop, id int)
}

func (r *recorder) Call(loop MainLoop, id int) bool {
	r.calls = append(r.calls, loop.CurrentTime())
	if r.onCall != nil {
		r.onCall(loop, id)
	}
	if r.keep == nil {
		return true
	}
	return r.keep(len(r.calls))
}

func (r *recorder) OnRemove(loop MainLoop, id int) {
	r.removed++
}

func TestFakeInterval(t *testing.T) {
	f := NewFake(1000)
	r := &recorder{}
	id := f.AddTimeoutWatch(10, r)
	assert.Positive(t, id)
	f.Advance(35)
	assert.Equal(t, []uint64{1010, 1020, 1030}, r.calls)
	assert.Equal(t, uint64(1035), f.CurrentTime())

	f.RemoveWatch(id)
	f.RemoveWatch(id)
	assert.Equal(t, 1, r.removed)
	f.Advance(100)
	assert.Len(t, r.calls, 3)
	assert.Equal(t, 0, f.Len())
}

func TestFakeOrder(t *testing.T) {
	f := NewFake(0)
	var order []string
	f.AddTimeoutWatch(20, FuncCallback(func(MainLoop, int) bool {
		order = append(order, "b")
		return false
	}))
	f.AddTimeoutWatch(10, FuncCallback(func(MainLoop, int) bool {
		order = append(order, "a")
		return true
	}))
	f.Advance(20)
	// a fires at 10 and 20; at 20 b was added first so it goes first
	assert.Equal(t, []string{"a", "b", "a"}, order)
	assert.Equal(t, 1, f.Len())
}

func TestFakeRemoveSelfDuringCall(t *testing.T) {
	f := NewFake(0)
	r := &recorder{}
	r.onCall = func(loop MainLoop, id int) {
		loop.RemoveWatch(id)
		assert.Equal(t, 0, r.removed, "OnRemove must wait for Call to return")
	}
	f.AddTimeoutWatch(5, r)
	f.Advance(50)
	assert.Len(t, r.calls, 1)
	assert.Equal(t, 1, r.removed)
	assert.Equal(t, 0, f.Len())
}

func TestFakeCallFalse(t *testing.T) {
	f := NewFake(0)
	r := &recorder{keep: func(n int) bool { return n < 2 }}
	f.AddTimeoutWatch(1, r)
	f.Advance(10)
	assert.Len(t, r.calls, 2)
	assert.Equal(t, 1, r.removed)
}

func TestFakeRemoveOther(t *testing.T) {
	f := NewFake(0)
	other := &recorder{}
	otherID := f.AddTimeoutWatch(10, other)
	first := &recorder{onCall: func(loop MainLoop, id int) { loop.RemoveWatch(otherID) }}
	f.AddTimeoutWatch(5, first)
	f.Advance(10)
	assert.Empty(t, other.calls)
	assert.Equal(t, 1, other.removed)
	f.RemoveAll()
	assert.Equal(t, 1, first.removed)
	assert.Equal(t, 0, f.AddTimeoutWatch(5, nil))
}

func TestLoop(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	n := 0
	l.AddTimeoutWatch(5, FuncCallback(func(loop MainLoop, id int) bool {
		n++
		if n == 3 {
			l.Post(cancel)
		}
		return true
	}))
	posted := false
	l.Post(func() { posted = true })

	err := l.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.True(t, posted)
	assert.GreaterOrEqual(t, n, 3)
	assert.Equal(t, 0, l.Len())
}
