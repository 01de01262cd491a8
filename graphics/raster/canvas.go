// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"cogentcore.org/gadget/clip"
	"cogentcore.org/gadget/geom"
	"cogentcore.org/gadget/graphics"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"
)

// state is the part of the canvas saved by PushState.
type state struct {
	// m maps user coordinates to device pixels.
	m       f64.Aff3
	opacity float64

	// clip is the clip mask in device pixels, nil when unclipped.
	clip *image.Alpha
}

// Canvas is a [graphics.Canvas] drawing into an [image.RGBA].
type Canvas struct {
	img   *image.RGBA
	w, h  float64
	zoom  float64
	st    state
	stack []state
}

// NewCanvas returns a transparent canvas of the given logical size,
// backed by ceil(size*zoom) device pixels.
func NewCanvas(width, height, zoom float64) *Canvas {
	if zoom <= 0 {
		zoom = 1
	}
	width = math.Max(width, 0)
	height = math.Max(height, 0)
	pw := int(math.Ceil(width * zoom))
	ph := int(math.Ceil(height * zoom))
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, pw, ph)),
		w:    width,
		h:    height,
		zoom: zoom,
		st:   state{m: f64.Aff3{zoom, 0, 0, 0, zoom, 0}, opacity: 1},
	}
}

// Image returns the pixels of the canvas.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

func (c *Canvas) Destroy() {
	c.img = image.NewRGBA(image.Rectangle{})
	c.stack = nil
}

func (c *Canvas) Width() float64  { return c.w }
func (c *Canvas) Height() float64 { return c.h }

func (c *Canvas) PushState() {
	c.stack = append(c.stack, c.st)
}

func (c *Canvas) PopState() bool {
	n := len(c.stack)
	if n == 0 {
		return false
	}
	c.st = c.stack[n-1]
	c.stack = c.stack[:n-1]
	return true
}

func (c *Canvas) MultiplyOpacity(opacity float64) {
	c.st.opacity *= math.Max(0, math.Min(1, opacity))
}

func (c *Canvas) RotateCoordinates(radians float64) {
	sn, cs := math.Sincos(radians)
	c.st.m = mul(c.st.m, f64.Aff3{cs, -sn, 0, sn, cs, 0})
}

func (c *Canvas) TranslateCoordinates(dx, dy float64) {
	c.st.m = mul(c.st.m, f64.Aff3{1, 0, dx, 0, 1, dy})
}

func (c *Canvas) ScaleCoordinates(cx, cy float64) {
	c.st.m = mul(c.st.m, f64.Aff3{cx, 0, 0, 0, cy, 0})
}

func (c *Canvas) ClearCanvas() {
	clear(c.img.Pix)
}

func (c *Canvas) ClearRect(x, y, width, height float64) {
	mask, b := c.coverage(rectPath(x, y, width, height))
	if mask == nil {
		return
	}
	draw.DrawMask(c.img, b, image.Transparent, image.Point{}, mask, b.Min, draw.Src)
}

func (c *Canvas) DrawLine(x0, y0, x1, y1, width float64, col graphics.Color) {
	dx, dy := x1-x0, y1-y0
	l := math.Hypot(dx, dy)
	if l == 0 || width <= 0 {
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2
	c.fill([]f64.Vec2{
		{x0 + nx, y0 + ny}, {x1 + nx, y1 + ny}, {x1 - nx, y1 - ny}, {x0 - nx, y0 - ny},
	}, col)
}

func (c *Canvas) DrawFilledRect(x, y, width, height float64, col graphics.Color) {
	c.fill(rectPath(x, y, width, height), col)
}

func (c *Canvas) DrawFilledRectWithCanvas(x, y, width, height float64, img graphics.Canvas) {
	src := asCanvas(img)
	if src == nil || width <= 0 || height <= 0 {
		return
	}
	sb := src.img.Bounds()
	if sb.Empty() {
		return
	}
	tile := NewCanvas(width, height, c.zoom)
	tb := tile.img.Bounds()
	for ty := 0; ty < tb.Dy(); ty += sb.Dy() {
		for tx := 0; tx < tb.Dx(); tx += sb.Dx() {
			r := sb.Add(image.Pt(tx, ty))
			draw.Draw(tile.img, r, src.img, sb.Min, draw.Src)
		}
	}
	c.DrawCanvas(x, y, tile)
}

func (c *Canvas) DrawCanvas(x, y float64, img graphics.Canvas) {
	src := asCanvas(img)
	if src == nil {
		return
	}
	c.drawImage(x, y, src.img, src.zoom)
}

func (c *Canvas) DrawCanvasWithMask(x, y float64, img graphics.Canvas, mx, my float64, mask graphics.Canvas) {
	src, msk := asCanvas(img), asCanvas(mask)
	if src == nil {
		return
	}
	if msk == nil {
		c.drawImage(x, y, src.img, src.zoom)
		return
	}
	sb := src.img.Bounds()
	masked := image.NewRGBA(sb)
	ox := int(math.Round((x - mx) * src.zoom))
	oy := int(math.Round((y - my) * src.zoom))
	mb := msk.img.Bounds()
	for py := sb.Min.Y; py < sb.Max.Y; py++ {
		for px := sb.Min.X; px < sb.Max.X; px++ {
			mp := image.Pt(px+ox, py+oy)
			if !mp.In(mb) {
				continue
			}
			a := uint32(msk.img.RGBAAt(mp.X, mp.Y).A)
			if a == 0 {
				continue
			}
			s := src.img.RGBAAt(px, py)
			masked.SetRGBA(px, py, color.RGBA{
				uint8(uint32(s.R) * a / 255), uint8(uint32(s.G) * a / 255),
				uint8(uint32(s.B) * a / 255), uint8(uint32(s.A) * a / 255),
			})
		}
	}
	c.drawImage(x, y, masked, src.zoom)
}

func (c *Canvas) IntersectRectClipRegion(x, y, width, height float64) {
	c.intersectClip(rectPath(x, y, width, height))
}

func (c *Canvas) IntersectGeneralClipRegion(region *clip.Region) {
	if region == nil || region.IsEmpty() {
		return
	}
	var paths [][]f64.Vec2
	region.EnumerateRectangles(func(r geom.Rect) bool {
		paths = append(paths, rectPath(r.X, r.Y, r.W, r.H))
		return true
	})
	c.intersectClip(paths...)
}

func (c *Canvas) PointValue(x, y float64) (graphics.Color, float64, bool) {
	dx, dy := apply(c.st.m, x, y)
	p := image.Pt(int(math.Floor(dx)), int(math.Floor(dy)))
	if !p.In(c.img.Bounds()) {
		return graphics.Color{}, 0, false
	}
	col, op := graphics.FromGo(c.img.RGBAAt(p.X, p.Y))
	return col, op, true
}

// drawImage composites src, whose pixels are zoom times its logical
// size, with its top left corner at user coordinates (x, y).
func (c *Canvas) drawImage(x, y float64, src image.Image, zoom float64) {
	if src.Bounds().Empty() || c.st.opacity <= 0 {
		return
	}
	s2d := mul(mul(c.st.m, f64.Aff3{1, 0, x, 0, 1, y}), f64.Aff3{1 / zoom, 0, 0, 0, 1 / zoom, 0})
	opts := &xdraw.Options{}
	if c.st.opacity < 1 {
		opts.SrcMask = image.NewUniform(color.Alpha{uint8(math.Round(c.st.opacity * 255))})
	}
	if c.st.clip != nil {
		opts.DstMask = c.st.clip
	}
	// snap near integer translations so that unrotated copies are exact
	for _, i := range []int{2, 5} {
		if r := math.Round(s2d[i]); math.Abs(r-s2d[i]) < 1e-6 {
			s2d[i] = r
		}
	}
	xdraw.NearestNeighbor.Transform(c.img, s2d, src, src.Bounds(), xdraw.Over, opts)
}

func (c *Canvas) fill(path []f64.Vec2, col graphics.Color) {
	if c.st.opacity <= 0 {
		return
	}
	mask, b := c.coverage(path)
	if mask == nil {
		return
	}
	src := image.NewUniform(col.RGBA(c.st.opacity))
	draw.DrawMask(c.img, b, src, image.Point{}, mask, b.Min, draw.Over)
}

// coverage rasterizes the paths in user coordinates into an alpha mask
// already intersected with the clip. It returns the mask and the
// device bounds worth drawing, or nil if nothing is covered.
func (c *Canvas) coverage(paths ...[]f64.Vec2) (*image.Alpha, image.Rectangle) {
	bounds := c.img.Bounds()
	if bounds.Empty() {
		return nil, image.Rectangle{}
	}
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, path := range paths {
		for i, p := range path {
			dx, dy := apply(c.st.m, p[0], p[1])
			minX, minY = math.Min(minX, dx), math.Min(minY, dy)
			maxX, maxY = math.Max(maxX, dx), math.Max(maxY, dy)
			if i == 0 {
				z.MoveTo(float32(dx), float32(dy))
			} else {
				z.LineTo(float32(dx), float32(dy))
			}
		}
		z.ClosePath()
	}
	if math.IsInf(minX, 0) {
		return nil, image.Rectangle{}
	}
	b := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY))).Intersect(bounds)
	if b.Empty() {
		return nil, image.Rectangle{}
	}
	mask := image.NewAlpha(bounds)
	z.Draw(mask, bounds, image.Opaque, image.Point{})
	if c.st.clip != nil {
		for i, a := range mask.Pix {
			mask.Pix[i] = uint8(uint32(a) * uint32(c.st.clip.Pix[i]) / 255)
		}
	}
	return mask, b
}

func (c *Canvas) intersectClip(paths ...[]f64.Vec2) {
	mask, _ := c.coverage(paths...)
	if mask == nil {
		mask = image.NewAlpha(c.img.Bounds())
	}
	c.st.clip = mask
}

func asCanvas(gc graphics.Canvas) *Canvas {
	if gc == nil {
		return nil
	}
	rc, _ := gc.(*Canvas)
	return rc
}

func rectPath(x, y, w, h float64) []f64.Vec2 {
	return []f64.Vec2{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
}

// mul returns the transform applying n first and then m.
func mul(m, n f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		m[0]*n[0] + m[1]*n[3], m[0]*n[1] + m[1]*n[4], m[0]*n[2] + m[1]*n[5] + m[2],
		m[3]*n[0] + m[4]*n[3], m[3]*n[1] + m[4]*n[4], m[3]*n[2] + m[4]*n[5] + m[5],
	}
}

func apply(m f64.Aff3, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}
