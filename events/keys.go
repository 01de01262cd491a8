// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

// Key codes of [KeyDown] and [KeyUp] events. They are the same on all
// platforms, and hosts translate native codes to them.
const (
	KeyCodeBack     uint32 = 8
	KeyCodeTab      uint32 = 9
	KeyCodeReturn   uint32 = 13
	KeyCodeEscape   uint32 = 27
	KeyCodeSpace    uint32 = 32
	KeyCodePageUp   uint32 = 33
	KeyCodePageDown uint32 = 34
	KeyCodeEnd      uint32 = 35
	KeyCodeHome     uint32 = 36
	KeyCodeLeft     uint32 = 37
	KeyCodeUp       uint32 = 38
	KeyCodeRight    uint32 = 39
	KeyCodeDown     uint32 = 40
	KeyCodeDelete   uint32 = 46
)
