// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToFloat converts a script value to a float64.
func ToFloat(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("script: %q is not a number", x)
		}
		return f, nil
	case nil:
		return 0, nil
	}
	return 0, fmt.Errorf("script: cannot convert %T to a number", v)
}

// ToInt converts a script value to an int, rounding numbers.
func ToInt(v any) (int, error) {
	f, err := ToFloat(v)
	if err != nil {
		return 0, err
	}
	return int(math.Round(f)), nil
}

// ToBool converts a script value to a bool. Strings are true unless
// empty, "false" or "0".
func ToBool(v any) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "", "false", "0":
			return false, nil
		}
		return true, nil
	case nil:
		return false, nil
	}
	f, err := ToFloat(v)
	if err != nil {
		return false, err
	}
	return f != 0, nil
}

// ToString converts a script value to a string.
func ToString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}
