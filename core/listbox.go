// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"

	"cogentcore.org/gadget/events"
)

// ListBox is a scrollable list of [Item] elements stacked vertically,
// of which the user can select one, or several with multiSelect.
// Changes of the selection fire the onchange signal.
type ListBox struct {
	Div

	itemWidth, itemHeight Dim

	itemOverColor      string
	itemSelectedColor  string
	itemSeparatorColor string
	itemSeparator      bool
	multiSelect        bool

	// index of the item the last selection started from
	anchor int
}

func (lb *ListBox) Init() {
	lb.Div.Init()
	lb.autoscroll = true
	lb.itemWidth = Rel(1)
	lb.itemHeight = Px(20)
	lb.itemOverColor = "#DEFBFF"
	lb.itemSelectedColor = "#C6FF9D"
	lb.itemSeparatorColor = "#F7F3F7"
	lb.anchor = -1

	s := &lb.Script
	dimProp := func(name string, dst *Dim) {
		s.RegisterProperty(name, func() any { return dst.ScriptValue() }, func(v any) error {
			d, err := ParseDim(v)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			lb.setItemDim(dst, d)
			return nil
		})
	}
	dimProp("itemWidth", &lb.itemWidth)
	dimProp("itemHeight", &lb.itemHeight)
	colorProp := func(name string, dst *string) {
		stringProp(s, name, func() string { return *dst }, func(c string) {
			if c != *dst {
				*dst = c
				lb.QueueDraw()
			}
		})
	}
	colorProp("itemOverColor", &lb.itemOverColor)
	colorProp("itemSelectedColor", &lb.itemSelectedColor)
	colorProp("itemSeparatorColor", &lb.itemSeparatorColor)
	boolProp(s, "itemSeparator", func() bool { return lb.itemSeparator }, func(b bool) {
		if b != lb.itemSeparator {
			lb.itemSeparator = b
			lb.QueueDraw()
		}
	})
	boolProp(s, "multiSelect", lb.MultiSelect, lb.SetMultiSelect)
	intProp(s, "selectedIndex", lb.SelectedIndex, lb.SetSelectedIndex)
	s.RegisterProperty("selectedItem", func() any {
		if it := lb.SelectedItem(); it != nil {
			return it
		}
		return nil
	}, func(v any) error {
		it, _ := v.(*Item)
		lb.SetSelectedItem(it)
		return nil
	})
	lb.Script.RegisterSignal(events.Change.SignalName(), lb.Listeners.Signal(events.Change))

	s.RegisterMethod("clearSelection", func(args ...any) (any, error) {
		lb.ClearSelection()
		return nil, nil
	})
	s.RegisterMethod("getItemByIndex", func(args ...any) (any, error) {
		if it := lb.ItemByIndex(argInt(args, 0)); it != nil {
			return it, nil
		}
		return nil, nil
	})
	s.RegisterMethod("getItemByName", func(args ...any) (any, error) {
		if it, ok := lb.children.ItemByName(argString(args, 0)).(*Item); ok {
			return it, nil
		}
		return nil, nil
	})
	s.RegisterMethod("appendString", func(args ...any) (any, error) {
		return lb.AppendString(argString(args, 0)), nil
	})
	s.RegisterMethod("insertStringAt", func(args ...any) (any, error) {
		return lb.InsertStringAt(argString(args, 0), argInt(args, 1)), nil
	})
	s.RegisterMethod("removeString", func(args ...any) (any, error) {
		lb.RemoveString(argString(args, 0))
		return nil, nil
	})
}

func (lb *ListBox) setItemDim(dst *Dim, d Dim) {
	if *dst == d {
		return
	}
	*dst = d
	lb.QueueDraw()
}

// ItemSize returns the size of the items in pixels.
func (lb *ListBox) ItemSize() (float64, float64) {
	return lb.itemWidth.Pixels(lb.geom.width), lb.itemHeight.Pixels(lb.geom.height)
}

func (lb *ListBox) SetItemWidth(d Dim)  { lb.setItemDim(&lb.itemWidth, d) }
func (lb *ListBox) SetItemHeight(d Dim) { lb.setItemDim(&lb.itemHeight, d) }

func (lb *ListBox) MultiSelect() bool {
	return lb.multiSelect
}

// SetMultiSelect allows several items to be selected. Turning it off
// keeps only the first selected item.
func (lb *ListBox) SetMultiSelect(multi bool) {
	if multi == lb.multiSelect {
		return
	}
	lb.multiSelect = multi
	if !multi {
		if first := lb.SelectedItem(); first != nil {
			lb.selectOnly(first)
		}
	}
}

// Items returns the items of the list.
func (lb *ListBox) Items() []*Item {
	var items []*Item
	for _, el := range lb.children.items {
		if it, ok := el.(*Item); ok {
			items = append(items, it)
		}
	}
	return items
}

// ItemByIndex returns the item at index i, or nil.
func (lb *ListBox) ItemByIndex(i int) *Item {
	it, _ := lb.children.ItemByIndex(i).(*Item)
	return it
}

// SelectedIndex returns the index of the first selected item, or -1.
func (lb *ListBox) SelectedIndex() int {
	for i, el := range lb.children.items {
		if it, ok := el.(*Item); ok && it.selected {
			return i
		}
	}
	return -1
}

// SetSelectedIndex selects only the item at index i, or clears the
// selection if there is none.
func (lb *ListBox) SetSelectedIndex(i int) {
	lb.SetSelectedItem(lb.ItemByIndex(i))
}

// SelectedItem returns the first selected item, or nil.
func (lb *ListBox) SelectedItem() *Item {
	return lb.ItemByIndex(lb.SelectedIndex())
}

// SetSelectedItem selects only it, or clears the selection if it is
// nil.
func (lb *ListBox) SetSelectedItem(it *Item) {
	if it == nil {
		lb.ClearSelection()
		return
	}
	lb.selectOnly(it)
}

// ClearSelection unselects all items.
func (lb *ListBox) ClearSelection() {
	changed := false
	for _, it := range lb.Items() {
		changed = it.setSelected(false) || changed
	}
	lb.anchor = -1
	if changed {
		lb.fireChange()
	}
}

// selectOnly selects it and unselects the other items.
func (lb *ListBox) selectOnly(it *Item) {
	if it.AsElement().owner != lb.children {
		return
	}
	changed := false
	for _, o := range lb.Items() {
		changed = o.setSelected(o == it) || changed
	}
	lb.anchor = it.Index()
	lb.ScrollToItem(it)
	if changed {
		lb.fireChange()
	}
}

// ScrollToItem scrolls the list so that it is fully visible.
func (lb *ListBox) ScrollToItem(it *Item) {
	r := it.ExtentsInParent()
	x, y := lb.scrollX, lb.scrollY
	top, bottom := r.Y+y, r.Bottom()+y
	switch {
	case top < y:
		y = top
	case bottom > y+lb.geom.height:
		y = bottom - lb.geom.height
	}
	lb.ScrollTo(x, y)
}

// itemClicked updates the selection for a click on it. With
// multiSelect, Control toggles the item and Shift selects the range
// from the last selected item.
func (lb *ListBox) itemClicked(it *Item, mods events.Modifiers) {
	if !lb.multiSelect || !mods.Has(events.Control|events.Shift) {
		lb.selectOnly(it)
		return
	}
	if mods.Has(events.Shift) && lb.anchor >= 0 {
		from, to := lb.anchor, it.Index()
		if from > to {
			from, to = to, from
		}
		changed := false
		for _, o := range lb.Items() {
			i := o.Index()
			changed = o.setSelected(i >= from && i <= to) || changed
		}
		if changed {
			lb.fireChange()
		}
		return
	}
	it.setSelected(!it.selected)
	lb.anchor = it.Index()
	lb.fireChange()
}

func (lb *ListBox) fireChange() {
	lb.fireEvent(events.NewScriptEvent(events.NewSimple(events.Change), lb.This, nil))
}

// AppendString appends an item with a label showing text. It returns
// nil if the item cannot be created.
func (lb *ListBox) AppendString(text string) *Item {
	return lb.InsertStringAt(text, lb.children.Count())
}

// InsertStringAt inserts an item with a label showing text at index.
func (lb *ListBox) InsertStringAt(text string, index int) *Item {
	el := lb.children.InsertElement("item", lb.children.ItemByIndex(index), "")
	it, ok := el.(*Item)
	if !ok {
		if el != nil {
			lb.children.RemoveElement(el)
		}
		return nil
	}
	if !it.AddLabelWithText(text) {
		lb.children.RemoveElement(it)
		return nil
	}
	return it
}

// RemoveString removes the first item whose label shows text.
func (lb *ListBox) RemoveString(text string) {
	for _, it := range lb.Items() {
		if it.LabelText() == text {
			lb.children.RemoveElement(it)
			return
		}
	}
}

func (lb *ListBox) HandleKeyEvent(ev *events.Key) events.Result {
	if ev.Type() != events.KeyDown {
		return events.Unhandled
	}
	items := lb.Items()
	if len(items) == 0 {
		return events.Unhandled
	}
	cur := -1
	if sel := lb.SelectedItem(); sel != nil {
		for i, it := range items {
			if it == sel {
				cur = i
			}
		}
	}
	next := cur
	switch ev.KeyCode {
	case events.KeyCodeUp:
		next = max(cur-1, 0)
	case events.KeyCodeDown:
		next = min(cur+1, len(items)-1)
	case events.KeyCodeHome:
		next = 0
	case events.KeyCodeEnd:
		next = len(items) - 1
	default:
		return events.Unhandled
	}
	lb.selectOnly(items[next])
	return events.Handled
}
