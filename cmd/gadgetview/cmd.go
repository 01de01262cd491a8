// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/gadget/base/logx"
	"cogentcore.org/gadget/config"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

// flags are the command line flags of gadgetview.
type flags struct {
	output   string
	xml      string
	config   string
	options  string
	zoom     float64
	advance  uint64
	clicks   []string
	watch    bool
	vv, v, q bool
}

// expandPaths expands a leading ~ in the paths given as flags.
func (f *flags) expandPaths() error {
	for _, p := range []*string{&f.output, &f.config, &f.options} {
		ex, err := homedir.Expand(*p)
		if err != nil {
			return err
		}
		*p = ex
	}
	return nil
}

// settings returns the settings from the config file, with the flags
// applied over them, and sets the log level.
func (f *flags) settings() (*config.Settings, error) {
	if err := f.expandPaths(); err != nil {
		return nil, err
	}
	s := config.Default()
	if f.config != "" {
		if err := s.Open(f.config); err != nil {
			return nil, err
		}
	}
	if f.zoom > 0 {
		s.Zoom = f.zoom
	}
	if f.options != "" {
		s.Options = f.options
	}
	if f.vv || f.v || f.q {
		logx.UserLevel.Set(logx.LevelFromFlags(f.vv, f.v, f.q))
	} else {
		logx.UserLevel.Set(s.Level())
	}
	return s, nil
}

// points parses the --click flags.
func (f *flags) points() ([][2]float64, error) {
	var pts [][2]float64
	for _, c := range f.clicks {
		xs, ys, ok := strings.Cut(c, ",")
		if !ok {
			return nil, fmt.Errorf("invalid click %q: want x,y", c)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid click %q: %w", c, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid click %q: %w", c, err)
		}
		pts = append(pts, [2]float64{x, y})
	}
	return pts, nil
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:          "gadgetview [flags] <gadget directory>",
		Short:        "Render the view of a gadget into a PNG image",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.SetDefaultLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := f.settings()
			if err != nil {
				return err
			}
			dir, err := homedir.Expand(args[0])
			if err != nil {
				return err
			}
			if f.watch {
				return watch(cmd.Context(), dir, s, f)
			}
			return renderOnce(dir, s, f)
		},
	}
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&f.v, "verbose", "v", false, "print info messages")
	pf.BoolVar(&f.vv, "vv", false, "print debug messages")
	pf.BoolVarP(&f.q, "quiet", "q", false, "only print errors")

	fl := cmd.Flags()
	fl.StringVarP(&f.output, "output", "o", "view.png", "the PNG file to write")
	fl.StringVar(&f.xml, "xml", "main.xml", "the view file of the gadget")
	fl.StringVarP(&f.config, "config", "c", "", "a TOML or YAML settings file")
	fl.StringVar(&f.options, "options", "", "the option database of the gadget")
	fl.Float64Var(&f.zoom, "zoom", 0, "the zoom factor of the image")
	fl.Uint64Var(&f.advance, "advance", 0, "milliseconds of timers to run before rendering")
	fl.StringArrayVar(&f.clicks, "click", nil, "click at x,y before rendering; can be repeated")
	fl.BoolVarP(&f.watch, "watch", "w", false, "render again when the gadget files change")

	cmd.AddCommand(newSettingsCmd())
	return cmd
}

func newSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "settings <file>",
		Short: "Write the default settings to a TOML or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Default().Save(args[0])
		},
	}
}
