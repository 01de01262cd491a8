// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/gadget/script"
)

// Dim is one coordinate or size of an element, either in pixels or as
// a fraction of the size of the parent.
type Dim struct {

	// Value is the number of pixels, or the fraction of the parent
	// size if Relative is set.
	Value float64

	// Relative is whether Value is a fraction of the parent size.
	Relative bool

	// Specified is whether the value was set. Unspecified sizes and
	// positions use the defaults of the element.
	Specified bool
}

// Px returns a pixel [Dim].
func Px(v float64) Dim {
	return Dim{Value: v, Specified: true}
}

// Rel returns a relative [Dim], where 1 is the whole parent.
func Rel(v float64) Dim {
	return Dim{Value: v, Relative: true, Specified: true}
}

// Pixels returns the value in pixels given the parent size.
func (d Dim) Pixels(parent float64) float64 {
	if d.Relative {
		return d.Value * parent
	}
	return d.Value
}

// String returns the script form of the value, such as "50%" or "12".
func (d Dim) String() string {
	if !d.Specified {
		return ""
	}
	if d.Relative {
		return strconv.FormatFloat(d.Value*100, 'g', -1, 64) + "%"
	}
	return strconv.FormatFloat(d.Value, 'g', -1, 64)
}

// ScriptValue returns the value given to scripts: a number for pixel
// values and a percentage string for relative ones.
func (d Dim) ScriptValue() any {
	if d.Relative {
		return d.String()
	}
	return d.Value
}

// ParseDim parses a script value into a [Dim]. Numbers are pixels,
// strings ending in "%" are relative, and an empty value resets the
// dimension to unspecified.
func ParseDim(v any) (Dim, error) {
	s, ok := v.(string)
	if !ok {
		if v == nil {
			return Dim{}, nil
		}
		f, err := script.ToFloat(v)
		if err != nil {
			return Dim{}, err
		}
		return Px(f), nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return Dim{}, nil
	}
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil {
			return Dim{}, fmt.Errorf("invalid relative value %q", s)
		}
		return Rel(f / 100), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Dim{}, fmt.Errorf("invalid value %q", s)
	}
	return Px(f), nil
}
