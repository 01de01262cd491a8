// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cogentcore.org/gadget/base/errors"
	"cogentcore.org/gadget/script"
	"golang.org/x/net/html/charset"
)

// ErrNoElement is returned when an XML document has no root element.
var ErrNoElement = errors.New("core: no XML element")

// xmlBuilder creates elements from the tokens of an XML decoder.
type xmlBuilder struct {
	view     *View
	filename string
	decoder  *xml.Decoder
}

func newXMLBuilder(v *View, r io.Reader, filename string) *xmlBuilder {
	decoder := xml.NewDecoder(r)
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel
	return &xmlBuilder{view: v, filename: filename, decoder: decoder}
}

// root returns the start of the root element.
func (b *xmlBuilder) root() (xml.StartElement, error) {
	for {
		t, err := b.decoder.Token()
		if err == io.EOF {
			return xml.StartElement{}, ErrNoElement
		}
		if err != nil {
			return xml.StartElement{}, err
		}
		if se, ok := t.(xml.StartElement); ok {
			return se, nil
		}
	}
}

func (b *xmlBuilder) line() int {
	line, _ := b.decoder.InputPos()
	return line
}

// create creates the element of se in es before the element before.
func (b *xmlBuilder) create(es *Elements, before Element, se xml.StartElement) Element {
	name := ""
	for _, a := range se.Attr {
		if strings.EqualFold(a.Name.Local, "name") {
			name = a.Value
		}
	}
	el := es.InsertElement(se.Name.Local, before, name)
	if el == nil {
		return nil
	}
	b.setAttributes(&el.AsElement().Script, se.Attr)
	return el
}

// setAttributes assigns XML attributes to the properties of obj. The
// attributes naming a signal, such as onclick, are compiled into
// handlers by the script context of the view.
func (b *xmlBuilder) setAttributes(obj *script.Object, attrs []xml.Attr) {
	for _, a := range attrs {
		if strings.EqualFold(a.Name.Local, "name") {
			continue
		}
		name, ok := obj.Resolve(a.Name.Local)
		if !ok {
			slog.Warn("unknown attribute", "attribute", a.Name.Local, "file", b.filename, "line", b.line())
			continue
		}
		if sig, ok := obj.Signal(name); ok {
			ctx := b.view.ScriptContext()
			if ctx == nil {
				continue
			}
			fun, err := ctx.Compile(a.Value, b.filename, b.line())
			if err != nil {
				slog.Warn("cannot compile event handler", "attribute", a.Name.Local, "file", b.filename, "err", err)
				continue
			}
			sig.Connect(fun)
			continue
		}
		if err := obj.SetProperty(name, a.Value); err != nil {
			slog.Warn("invalid attribute", "attribute", a.Name.Local, "value", a.Value, "file", b.filename, "err", err)
		}
	}
}

// readContent reads the content of the current element up to its end.
// Child elements are created in es, which is nil if they must be
// skipped, and the text is assigned to the innerText property of el.
func (b *xmlBuilder) readContent(es *Elements, el Element) error {
	var text strings.Builder
	for {
		t, err := b.decoder.Token()
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		if err != nil {
			return err
		}
		switch t := t.(type) {
		case xml.StartElement:
			var child Element
			if es != nil {
				child = b.create(es, nil, t)
			} else if el != nil {
				slog.Warn("element cannot have children", "tag", el.AsElement().tag, "child", t.Name.Local)
			}
			if err := b.readContent(childrenOf(child), child); err != nil {
				return err
			}
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if el != nil {
				b.setText(el, text.String())
			}
			return nil
		}
	}
}

func (b *xmlBuilder) setText(el Element, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	s := &el.AsElement().Script
	if name, ok := s.Resolve("innerText"); ok {
		if err := s.SetProperty(name, text); err != nil {
			slog.Warn("invalid element text", "tag", el.AsElement().tag, "err", err)
		}
	}
}

func childrenOf(el Element) *Elements {
	if el == nil {
		return nil
	}
	return el.AsElement().children
}

// AppendElementFromXML creates an element with its children from an
// XML fragment such as `<img src="a.png" x="10"/>`, and appends it.
func (es *Elements) AppendElementFromXML(src string) (Element, error) {
	return es.InsertElementFromXML(src, nil)
}

// InsertElementFromXML creates an element with its children from an
// XML fragment, and inserts it before the element before.
func (es *Elements) InsertElementFromXML(src string, before Element) (Element, error) {
	b := newXMLBuilder(es.view, strings.NewReader(src), "")
	se, err := b.root()
	if err != nil {
		slog.Warn("invalid element XML", "err", err)
		return nil, err
	}
	el := b.create(es, before, se)
	if el == nil {
		return nil, fmt.Errorf("core: unknown element tag %q", se.Name.Local)
	}
	h := Hold(el)
	if err := b.readContent(childrenOf(el), el); err != nil {
		slog.Warn("invalid element XML", "err", err)
		if el := h.Get(); el != nil {
			es.RemoveElement(el)
		}
		return nil, err
	}
	return h.Get(), nil
}

// LoadXML reads a view from an XML document whose root is a <view>
// element. The attributes of the root set the properties of the view,
// and its children become the top-level elements. The filename is only
// used in messages.
func (v *View) LoadXML(r io.Reader, filename string) error {
	b := newXMLBuilder(v, r, filename)
	se, err := b.root()
	if err != nil {
		return fmt.Errorf("core: %s: %w", filename, err)
	}
	if !strings.EqualFold(se.Name.Local, "view") {
		return fmt.Errorf("core: %s: root element is <%s>, not <view>", filename, se.Name.Local)
	}
	b.setAttributes(&v.Script, se.Attr)
	if err := b.readContent(v.children, nil); err != nil {
		return fmt.Errorf("core: %s: %w", filename, err)
	}
	return nil
}
