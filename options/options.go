// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package options provides the simple key-value options of a gadget,
// with a signal that reports changes to the view.
package options

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"cogentcore.org/gadget/events"
)

// Options is a set of named values. Values are stored as JSON text so
// that any script value survives a round trip.
type Options interface {
	// Get returns the JSON text of the named value.
	Get(name string) (string, bool)

	// Put sets the JSON text of the named value. Putting a value equal
	// to the current one does not emit a change.
	Put(name, value string) error

	// Remove deletes the named value.
	Remove(name string) error

	// Names returns the sorted names of all values.
	Names() []string

	// OnChanged connects fun, which is called with the name of every
	// changed value.
	OnChanged(fun func(name string)) *events.Connection

	// Close releases the storage.
	Close() error
}

// GetValue decodes the named value into v.
func GetValue(o Options, name string, v any) (bool, error) {
	s, ok := o.Get(name)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(s), v); err != nil {
		return true, fmt.Errorf("options: value %q: %w", name, err)
	}
	return true, nil
}

// PutValue encodes v as JSON and stores it under name.
func PutValue(o Options, name string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("options: value %q: %w", name, err)
	}
	return o.Put(name, string(b))
}

// Memory is an in-memory [Options].
type Memory struct {
	mu      sync.Mutex
	values  map[string]string
	changed events.Signal[string]
}

// NewMemory returns an empty [Memory].
func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

func (m *Memory) Get(name string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[name]
	return v, ok
}

func (m *Memory) Put(name, value string) error {
	m.mu.Lock()
	old, ok := m.values[name]
	if ok && old == value {
		m.mu.Unlock()
		return nil
	}
	m.values[name] = value
	m.mu.Unlock()
	m.changed.Emit(name)
	return nil
}

func (m *Memory) Remove(name string) error {
	m.mu.Lock()
	_, ok := m.values[name]
	delete(m.values, name)
	m.mu.Unlock()
	if ok {
		m.changed.Emit(name)
	}
	return nil
}

func (m *Memory) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.values))
	for k := range m.values {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

func (m *Memory) OnChanged(fun func(name string)) *events.Connection {
	return m.changed.Connect(fun)
}

func (m *Memory) Close() error {
	m.changed.DisconnectAll()
	return nil
}
