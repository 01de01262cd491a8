// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package offscreen

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// TestingT is the part of *testing.T used by [Assert].
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages makes [Assert] save the images instead of comparing
// them. It is set by the environment variable GADGET_UPDATE_TESTDATA.
var UpdateTestImages = os.Getenv("GADGET_UPDATE_TESTDATA") == "true"

// tolerance is the largest difference of a color component between
// equivalent pixels.
const tolerance = 2

// Assert asserts that img is equivalent to the image saved at filename
// in the testdata directory, with ".png" added if filename has no
// extension. The image is saved if there is none yet. On failure, the
// image and its difference with the saved one are written next to it
// as name.fail.png and name.diff.png.
func Assert(t TestingT, img image.Image, filename string) {
	filename = filepath.Join("testdata", filename)
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0750); err != nil {
		t.Errorf("offscreen.Assert: making testdata directory: %v", err)
		return
	}
	ext := filepath.Ext(filename)
	failFilename := strings.TrimSuffix(filename, ext) + ".fail" + ext
	diffFilename := strings.TrimSuffix(filename, ext) + ".diff" + ext

	want, err := openPNG(filename)
	if UpdateTestImages || errors.Is(err, fs.ErrNotExist) {
		if err := savePNG(img, filename); err != nil {
			t.Errorf("offscreen.Assert: saving image: %v", err)
		}
		os.Remove(failFilename)
		os.Remove(diffFilename)
		return
	}
	if err != nil {
		t.Errorf("offscreen.Assert: opening saved image: %v", err)
		return
	}

	if x, y, ok := firstDifference(img, want); ok {
		t.Errorf("offscreen.Assert: image for %s is not the same as expected at (%d, %d); see %s", filename, x, y, failFilename)
		if err := savePNG(img, failFilename); err != nil {
			t.Errorf("offscreen.Assert: saving fail image: %v", err)
		}
		if err := savePNG(diffImage(img, want), diffFilename); err != nil {
			t.Errorf("offscreen.Assert: saving diff image: %v", err)
		}
		return
	}
	os.Remove(failFilename)
	os.Remove(diffFilename)
}

// firstDifference returns the first pixel where a and b differ by more
// than the tolerance, with ok set. Images of different bounds differ at
// their origin.
func firstDifference(a, b image.Image) (x, y int, ok bool) {
	ab := a.Bounds()
	if ab != b.Bounds() {
		return ab.Min.X, ab.Min.Y, true
	}
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			ac := color.RGBAModel.Convert(a.At(x, y)).(color.RGBA)
			bc := color.RGBAModel.Convert(b.At(x, y)).(color.RGBA)
			if !near(ac.R, bc.R) || !near(ac.G, bc.G) || !near(ac.B, bc.B) || !near(ac.A, bc.A) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -tolerance && d <= tolerance
}

// diffImage returns the absolute difference of the pixels of two
// images of the same bounds.
func diffImage(a, b image.Image) image.Image {
	ab := a.Bounds()
	di := image.NewRGBA(ab)
	if ab != b.Bounds() {
		return di
	}
	abs := func(a, b uint8) uint8 {
		if a > b {
			return a - b
		}
		return b - a
	}
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			ac := color.RGBAModel.Convert(a.At(x, y)).(color.RGBA)
			bc := color.RGBAModel.Convert(b.At(x, y)).(color.RGBA)
			di.Set(x, y, color.RGBA{abs(ac.R, bc.R), abs(ac.G, bc.G), abs(ac.B, bc.B), 255})
		}
	}
	return di
}

func openPNG(filename string) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

func savePNG(img image.Image, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}
	return f.Close()
}
