// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

// Holder is a weak reference to an element: [Holder.Get] returns nil
// once the element has been destroyed. The zero value holds nothing.
type Holder struct {
	el Element
}

// Hold returns a [Holder] of el.
func Hold(el Element) Holder {
	var h Holder
	h.Reset(el)
	return h
}

// Get returns the element, or nil if it has been destroyed.
func (h *Holder) Get() Element {
	if h.el == nil {
		return nil
	}
	if h.el.AsElement().This == nil {
		h.el = nil
	}
	return h.el
}

// Reset makes the holder reference el, which may be nil.
func (h *Holder) Reset(el Element) {
	if el != nil && el.AsElement().This == nil {
		el = nil
	}
	h.el = el
}

// Is returns whether the holder references el.
func (h *Holder) Is(el Element) bool {
	cur := h.Get()
	return cur != nil && el != nil && cur.AsElement() == el.AsElement()
}
