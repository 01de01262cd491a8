// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graphics

import "strings"

var (
	alignNames    = []string{"left", "center", "right", "justify"}
	valignNames   = []string{"top", "middle", "bottom"}
	trimmingNames = []string{"none", "character", "word", "character-ellipsis", "word-ellipsis", "path-ellipsis"}
)

func parseName(names []string, s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, nm := range names {
		if nm == s {
			return i, true
		}
	}
	return 0, false
}

func (a Alignment) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return alignNames[0]
	}
	return alignNames[a]
}

// ParseAlignment parses "left", "center", "right" or "justify".
func ParseAlignment(s string) (Alignment, bool) {
	i, ok := parseName(alignNames, s)
	return Alignment(i), ok
}

func (a VAlignment) String() string {
	if a < 0 || int(a) >= len(valignNames) {
		return valignNames[0]
	}
	return valignNames[a]
}

// ParseVAlignment parses "top", "middle" or "bottom".
func ParseVAlignment(s string) (VAlignment, bool) {
	i, ok := parseName(valignNames, s)
	return VAlignment(i), ok
}

func (t Trimming) String() string {
	if t < 0 || int(t) >= len(trimmingNames) {
		return trimmingNames[0]
	}
	return trimmingNames[t]
}

// ParseTrimming parses a trimming name such as "word-ellipsis".
func ParseTrimming(s string) (Trimming, bool) {
	i, ok := parseName(trimmingNames, s)
	return Trimming(i), ok
}
