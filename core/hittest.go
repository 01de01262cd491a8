// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "strings"

// HitTest is the meaning of a point of a view for the host, which uses
// it to let the window manager handle moving and resizing.
type HitTest int32

const (
	HitTestDefault HitTest = iota
	HitTestTransparent
	HitTestNowhere
	HitTestClient
	HitTestCaption
	HitTestSysMenu
	HitTestSize
	HitTestMenu
	HitTestHScroll
	HitTestVScroll
	HitTestMinButton
	HitTestMaxButton
	HitTestLeft
	HitTestRight
	HitTestTop
	HitTestTopLeft
	HitTestTopRight
	HitTestBottom
	HitTestBottomLeft
	HitTestBottomRight
	HitTestBorder
	HitTestObject
	HitTestClose
	HitTestHelp
	hitTestN
)

var hitTestNames = [...]string{
	"htdefault", "httransparent", "htnowhere", "htclient", "htcaption",
	"htsysmenu", "htsize", "htmenu", "hthscroll", "htvscroll",
	"htminbutton", "htmaxbutton", "htleft", "htright", "httop",
	"httopleft", "httopright", "htbottom", "htbottomleft",
	"htbottomright", "htborder", "htobject", "htclose", "hthelp",
}

func (h HitTest) String() string {
	if h >= 0 && h < hitTestN {
		return hitTestNames[h]
	}
	return "htdefault"
}

// ParseHitTest returns the hit test of the given name, ignoring case.
func ParseHitTest(s string) (HitTest, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, nm := range hitTestNames {
		if nm == s {
			return HitTest(i), true
		}
	}
	return HitTestDefault, false
}

// ResizableMode is how the host may resize a view.
type ResizableMode int32

const (
	ResizableFalse ResizableMode = iota
	ResizableTrue
	ResizableZoom
)

var resizableNames = [...]string{"false", "true", "zoom"}

func (m ResizableMode) String() string {
	if m >= 0 && int(m) < len(resizableNames) {
		return resizableNames[m]
	}
	return "zoom"
}

// ParseResizable returns the mode of the given name, ignoring case.
func ParseResizable(s string) (ResizableMode, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, nm := range resizableNames {
		if nm == s {
			return ResizableMode(i), true
		}
	}
	return ResizableZoom, false
}
