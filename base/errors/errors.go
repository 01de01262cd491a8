// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides helpers for reporting errors through slog
// at the boundaries where the gadget runtime never propagates them,
// plus aliases of the standard errors functions so that callers only
// need to import one errors package.
package errors

import (
	"errors"
	"log/slog"
)

// New is an alias for [errors.New].
func New(text string) error { return errors.New(text) }

// Is is an alias for [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// As is an alias for [errors.As].
func As(err error, target any) bool { return errors.As(err, target) }

// Join is an alias for [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }

// Log logs the given error with [slog.Error] if it is non-nil,
// and returns it. The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Log1 logs the given error if it is non-nil and returns the value,
// which is typically the zero value in that case:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error())
	}
	return v
}

// Warn is like [Log] but reports at the warning level, for recoverable
// problems such as invalid gadget content.
func Warn(err error, args ...any) error {
	if err != nil {
		slog.Warn(err.Error(), args...)
	}
	return err
}

// Ignore1 discards the error and returns the value. It marks places
// where an error is deliberately not handled.
func Ignore1[T any](v T, err error) T {
	return v
}

// Must panics if the given error is non-nil.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns the value if the error is nil, and panics otherwise.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
