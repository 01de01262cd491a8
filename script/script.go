// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package script provides the registry through which views and
// elements expose their properties, methods, signals and constants to
// a script engine. The engine itself is opaque: it only sees named
// getters, setters and callable functions.
package script

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"cogentcore.org/gadget/base/errors"
	"cogentcore.org/gadget/events"
)

// Getter returns the value of a property.
type Getter func() any

// Setter sets the value of a property.
type Setter func(v any) error

// Method is a function callable from script code.
type Method func(args ...any) (any, error)

// Property is a registered property. A nil Set makes it read only.
type Property struct {
	Get Getter
	Set Setter
}

// ErrNotFound is returned for unknown names.
var ErrNotFound = errors.New("script: not found")

// ErrReadOnly is returned when setting a property without a setter.
var ErrReadOnly = errors.New("script: read only")

// Object is the script-visible surface of a view or an element.
// The zero value is ready to use.
type Object struct {
	properties map[string]*Property
	methods    map[string]Method
	signals    map[string]*events.EventSignal
	constants  map[string]any

	// lower maps lowercase names to registered names.
	lower map[string]string
}

func (o *Object) addName(name string) {
	if o.lower == nil {
		o.lower = map[string]string{}
	}
	if _, ok := o.lower[strings.ToLower(name)]; !ok {
		o.lower[strings.ToLower(name)] = name
	}
}

// RegisterProperty registers a property. A later registration of the
// same name replaces the earlier one.
func (o *Object) RegisterProperty(name string, get Getter, set Setter) {
	if o.properties == nil {
		o.properties = map[string]*Property{}
	}
	o.properties[name] = &Property{Get: get, Set: set}
	o.addName(name)
}

// RegisterReadonlyProperty registers a property without a setter.
func (o *Object) RegisterReadonlyProperty(name string, get Getter) {
	o.RegisterProperty(name, get, nil)
}

// RegisterMethod registers a method.
func (o *Object) RegisterMethod(name string, fn Method) {
	if o.methods == nil {
		o.methods = map[string]Method{}
	}
	o.methods[name] = fn
	o.addName(name)
}

// RegisterSignal registers a signal, such as "onclick".
func (o *Object) RegisterSignal(name string, sig *events.EventSignal) {
	if o.signals == nil {
		o.signals = map[string]*events.EventSignal{}
	}
	o.signals[name] = sig
	o.addName(name)
}

// RegisterConstant registers a constant value.
func (o *Object) RegisterConstant(name string, v any) {
	if o.constants == nil {
		o.constants = map[string]any{}
	}
	o.constants[name] = v
	o.addName(name)
}

// Resolve returns the registered name matching name, first exactly and
// then ignoring case.
func (o *Object) Resolve(name string) (string, bool) {
	if o.has(name) {
		return name, true
	}
	if nm, ok := o.lower[strings.ToLower(name)]; ok {
		return nm, true
	}
	return "", false
}

func (o *Object) has(name string) bool {
	if _, ok := o.properties[name]; ok {
		return true
	}
	if _, ok := o.methods[name]; ok {
		return true
	}
	if _, ok := o.signals[name]; ok {
		return true
	}
	_, ok := o.constants[name]
	return ok
}

// HasProperty returns whether a property of the exact name exists.
func (o *Object) HasProperty(name string) bool {
	_, ok := o.properties[name]
	return ok
}

// GetProperty returns the value of a property or constant.
func (o *Object) GetProperty(name string) (any, error) {
	if p, ok := o.properties[name]; ok {
		return p.Get(), nil
	}
	if v, ok := o.constants[name]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: property %q", ErrNotFound, name)
}

// SetProperty sets the value of a property.
func (o *Object) SetProperty(name string, v any) error {
	p, ok := o.properties[name]
	if !ok {
		return fmt.Errorf("%w: property %q", ErrNotFound, name)
	}
	if p.Set == nil {
		return fmt.Errorf("%w: property %q", ErrReadOnly, name)
	}
	return p.Set(v)
}

// Call calls a method.
func (o *Object) Call(name string, args ...any) (any, error) {
	m, ok := o.methods[name]
	if !ok {
		return nil, fmt.Errorf("%w: method %q", ErrNotFound, name)
	}
	return m(args...)
}

// Signal returns the named signal.
func (o *Object) Signal(name string) (*events.EventSignal, bool) {
	sig, ok := o.signals[name]
	return sig, ok
}

// ConnectSignal connects fun to the named signal.
func (o *Object) ConnectSignal(name string, fun func(se *events.ScriptEvent)) (*events.Connection, error) {
	sig, ok := o.signals[name]
	if !ok {
		return nil, fmt.Errorf("%w: signal %q", ErrNotFound, name)
	}
	return sig.Connect(fun), nil
}

// Names returns all registered names, sorted.
func (o *Object) Names() []string {
	names := slices.Collect(maps.Values(o.lower))
	slices.Sort(names)
	return names
}
