// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(old) })
	return &buf
}

func TestLog(t *testing.T) {
	buf := captureLog(t)
	assert.NoError(t, Log(nil))
	assert.Empty(t, buf.String())

	err := New("broken image")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, buf.String(), "broken image")
}

func TestLog1(t *testing.T) {
	buf := captureLog(t)
	assert.Equal(t, 3, Log1(3, nil))
	assert.Equal(t, 0, Log1(0, New("nope")))
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestWarn(t *testing.T) {
	buf := captureLog(t)
	Warn(New("unknown tag"), "tag", "blink")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "tag=blink")
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("x")) })
	assert.Equal(t, "a", Must1("a", nil))
	assert.Panics(t, func() { Must1("a", New("x")) })
}
