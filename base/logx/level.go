// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user verbosity level and the default
// slog handler used by gadget hosts and tools.
package logx

import (
	"log/slog"
	"strings"
)

// UserLevel is the verbosity level that the user has selected.
// Messages at or above this level are shown by the handler installed
// by [SetDefaultLogger]. It can be changed at any time.
var UserLevel = &slog.LevelVar{}

func init() {
	UserLevel.Set(slog.LevelWarn)
}

// LevelFromFlags returns the [slog.Level] corresponding to the given
// command line flags:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// LevelFromString parses a level name such as "debug" or "warn".
// Unknown names return [slog.LevelWarn] and false.
func LevelFromString(s string) (slog.Level, bool) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s)))); err != nil {
		return slog.LevelWarn, false
	}
	return l, true
}
