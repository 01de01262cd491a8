// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"testing"

	"cogentcore.org/gadget/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(es *Elements) []string {
	var ns []string
	for _, el := range es.Items() {
		ns = append(ns, el.AsElement().Name())
	}
	return ns
}

func TestInsertElement(t *testing.T) {
	env := newTestView(t)
	es := env.view.Children()
	btn := es.InsertElement("button", nil, "btn")
	require.NotNil(t, btn)
	lbl := es.AppendElement("label", "")
	require.NotNil(t, lbl)

	assert.Equal(t, 2, es.Count())
	assert.Same(t, btn, es.ItemByIndex(0))
	assert.Same(t, lbl, es.ItemByIndex(1))
	assert.Same(t, btn, es.ItemByName("btn"))
	assert.Same(t, btn, env.view.ElementByName("btn"))
	assert.Nil(t, es.ItemByIndex(2))
	assert.Nil(t, es.ItemByIndex(-1))
	assert.Equal(t, "button", btn.AsElement().Tag())
	assert.Nil(t, btn.AsElement().Parent())
	assert.Equal(t, 1, lbl.AsElement().Index())

	first := es.InsertElement("div", btn, "first")
	assert.Equal(t, []string{"first", "btn", ""}, names(es))
	assert.Equal(t, 0, first.AsElement().Index())
}

func TestInsertUnknownTag(t *testing.T) {
	env := newTestView(t)
	es := env.view.Children()
	assert.Nil(t, es.AppendElement("marquee", "m"))
	assert.Zero(t, es.Count())
	assert.Nil(t, env.view.ElementByName("m"))
}

func TestFactorySuggest(t *testing.T) {
	f := NewDefaultFactory()
	assert.Equal(t, "button", f.Suggest("buton"))
	assert.Equal(t, "listbox", f.Suggest("ListBx"))
	assert.Equal(t, "", f.Suggest("zzzz"))
	var nilFactory *Factory
	assert.Equal(t, "", nilFactory.Suggest("div"))
}

func TestTagsAreCaseInsensitive(t *testing.T) {
	env := newTestView(t)
	el := env.view.Children().AppendElement("ListBox", "")
	_, ok := el.(*ListBox)
	assert.True(t, ok)
}

func TestDuplicateNames(t *testing.T) {
	env := newTestView(t)
	es := env.view.Children()
	a := addProbe(t, es, "x", 0, 0, 10, 10)
	b := addProbe(t, es, "x", 0, 0, 10, 10)
	assert.Same(t, a, env.view.ElementByName("x"), "the first element keeps the name")
	assert.Same(t, a, es.ItemByName("x"))

	es.RemoveElement(a)
	assert.Nil(t, env.view.ElementByName("x"))
	assert.Same(t, b, es.ItemByName("x"))
}

func TestRemoveElementClearsReferences(t *testing.T) {
	env := newTestView(t)
	v := env.view
	v.SetSize(200, 100)
	a := addProbe(t, v.Children(), "a", 0, 0, 50, 50)
	v.Layout()

	v.OnMouseEvent(mouse(events.MouseMove, 10, 10, 0))
	a.Focus()
	v.SetPopupElement(a)
	require.Same(t, a, v.MouseOverElement())

	assert.True(t, v.Children().RemoveElement(a))
	assert.False(t, a.IsAlive())
	assert.Nil(t, v.Children().ItemByName("a"))
	assert.Nil(t, v.ElementByName("a"))
	assert.Nil(t, v.FocusedElement())
	assert.Nil(t, v.MouseOverElement())
	assert.Nil(t, v.PopupElement())
	assert.Nil(t, v.GrabElement())
	assert.False(t, v.Children().RemoveElement(a), "already removed")
}

func TestRemoveFromHandler(t *testing.T) {
	env := newTestView(t)
	v := env.view
	v.SetSize(200, 100)
	a := addProbe(t, v.Children(), "a", 0, 0, 50, 50)
	b := addProbe(t, v.Children(), "b", 0, 0, 50, 50)
	v.Layout()
	b.Listeners.Add(events.MouseMove, func(se *events.ScriptEvent) {
		v.Children().RemoveElement(b)
	})

	assert.NotPanics(t, func() {
		v.OnMouseEvent(mouse(events.MouseMove, 10, 10, 0))
	})
	assert.False(t, b.IsAlive())
	assert.Equal(t, 1, v.Children().Count())
	assert.Same(t, a, v.MouseOverElement())
}

func TestInsertExisting(t *testing.T) {
	env := newTestView(t)
	v := env.view
	es := v.Children()
	a := addProbe(t, es, "a", 0, 0, 10, 10)
	b := addProbe(t, es, "b", 0, 0, 10, 10)
	c := addProbe(t, es, "c", 0, 0, 10, 10)

	assert.True(t, es.InsertExisting(c, a))
	assert.Equal(t, []string{"c", "a", "b"}, names(es))
	assert.True(t, es.InsertExisting(c, nil))
	assert.Equal(t, []string{"a", "b", "c"}, names(es))

	assert.True(t, a.Children().InsertExisting(b, nil))
	assert.Equal(t, []string{"a", "c"}, names(es))
	assert.Same(t, a, b.Parent())
	assert.Same(t, b, v.ElementByName("b"))

	assert.False(t, b.Children().InsertExisting(a, nil), "an element cannot be moved into itself")
	assert.False(t, es.InsertExisting(nil, nil))
}

func TestRemoveAll(t *testing.T) {
	env := newTestView(t)
	es := env.view.Children()
	a := addProbe(t, es, "a", 0, 0, 10, 10)
	child := addProbe(t, a.Children(), "child", 0, 0, 5, 5)
	addProbe(t, es, "b", 0, 0, 10, 10)

	es.RemoveAll()
	assert.Zero(t, es.Count())
	assert.False(t, a.IsAlive())
	assert.False(t, child.IsAlive(), "children are destroyed with their parent")
	assert.Nil(t, env.view.ElementByName("child"))
}
