// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// NewHandler returns a text handler writing to w that filters by
// [UserLevel] and colors the level name when w is a terminal.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w, termenv.WithProfile(profileFor(w)))
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lv, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				return slog.String(a.Key, LevelString(out, lv))
			}
			return a
		},
	})
}

// SetDefaultLogger installs [NewHandler] on stderr as the default
// slog logger.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// LevelString renders the level name in the color used for it.
func LevelString(out *termenv.Output, lv slog.Level) string {
	s := out.String(lv.String())
	switch {
	case lv >= slog.LevelError:
		s = s.Foreground(termenv.ANSIRed).Bold()
	case lv >= slog.LevelWarn:
		s = s.Foreground(termenv.ANSIYellow)
	case lv >= slog.LevelInfo:
		s = s.Foreground(termenv.ANSICyan)
	default:
		s = s.Foreground(termenv.ANSIBrightBlack)
	}
	return s.String()
}

func profileFor(w io.Writer) termenv.Profile {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return termenv.Ascii
	}
	return termenv.ANSI
}
