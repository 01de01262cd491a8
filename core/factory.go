// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"maps"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// minSuggestSimilarity is the smallest similarity of a tag suggested
// by [Factory.Suggest].
const minSuggestSimilarity = 0.5

// Factory creates elements by tag name.
type Factory struct {
	creators map[string]func() Element
}

// NewFactory returns an empty [Factory].
func NewFactory() *Factory {
	return &Factory{creators: map[string]func() Element{}}
}

// NewDefaultFactory returns a [Factory] with all the element types of
// this package registered.
func NewDefaultFactory() *Factory {
	f := NewFactory()
	f.Register("div", func() Element { return &Div{} })
	f.Register("img", func() Element { return &Img{} })
	f.Register("label", func() Element { return &Label{} })
	f.Register("button", func() Element { return &Button{} })
	f.Register("listbox", func() Element { return &ListBox{} })
	f.Register("item", func() Element { return &Item{} })
	f.Register("listitem", func() Element { return &Item{} })
	return f
}

// Register registers the function creating the elements of a tag.
// Tags are case insensitive.
func (f *Factory) Register(tag string, create func() Element) {
	f.creators[strings.ToLower(tag)] = create
}

// Tags returns the sorted registered tags.
func (f *Factory) Tags() []string {
	return slices.Sorted(maps.Keys(f.creators))
}

// Create returns a new element of the given tag bound to the view, or
// nil if the tag is unknown.
func (f *Factory) Create(tag string, view *View, name string) Element {
	if f == nil {
		return nil
	}
	create := f.creators[strings.ToLower(tag)]
	if create == nil {
		return nil
	}
	el := create()
	eb := el.AsElement()
	eb.This = el
	eb.view = view
	eb.tag = strings.ToLower(tag)
	eb.name = name
	el.Init()
	return el
}

// Suggest returns the registered tag closest to an unknown tag, or ""
// if no tag is close enough.
func (f *Factory) Suggest(tag string) string {
	if f == nil {
		return ""
	}
	tag = strings.ToLower(tag)
	lev := metrics.NewLevenshtein()
	best, bestSim := "", 0.0
	for _, t := range f.Tags() {
		if sim := strutil.Similarity(tag, t, lev); sim > bestSim {
			best, bestSim = t, sim
		}
	}
	if bestSim < minSuggestSimilarity {
		return ""
	}
	return best
}
