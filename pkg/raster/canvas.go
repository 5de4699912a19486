// Package raster provides a software Canvas that renders into an
// image.RGBA, for headless rendering and for writing frames to disk.
package raster

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/go-cockpit/cockpit/pkg/graphics"
)

// circleKappa is the control point distance for approximating a quarter
// circle with a cubic bezier.
const circleKappa = 0.5523

// arcSegmentDeg is the maximum sweep covered by one polyline segment
// when flattening arcs.
const arcSegmentDeg = 6.0

// Canvas rasterizes drawing commands into an RGBA image. It implements
// graphics.Canvas. Not safe for concurrent use.
type Canvas struct {
	dst   *image.RGBA
	size  graphics.Size
	stack []graphics.Offset
	off   graphics.Offset
}

var _ graphics.Canvas = (*Canvas)(nil)

// New creates a canvas backed by a fresh image of the given pixel size.
func New(width, height int) *Canvas {
	return NewForImage(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewForImage creates a canvas that draws into an existing image.
func NewForImage(dst *image.RGBA) *Canvas {
	b := dst.Bounds()
	return &Canvas{
		dst:  dst,
		size: graphics.Size{Width: float64(b.Dx()), Height: float64(b.Dy())},
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.dst }

func (c *Canvas) Size() graphics.Size { return c.size }

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.off)
}

func (c *Canvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.off = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

func (c *Canvas) Translate(dx, dy float64) {
	c.off.X += dx
	c.off.Y += dy
}

func (c *Canvas) Clear(col graphics.Color) {
	xdraw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(rgba(col)), image.Point{}, xdraw.Src)
}

func (c *Canvas) DrawLine(p1, p2 graphics.Offset, paint graphics.Paint) {
	a := p1.Add(c.off)
	b := p2.Add(c.off)
	c.strokeSegment(a, b, paint.EffectiveStrokeWidth(), paint.Color)
}

func (c *Canvas) DrawRect(rect graphics.Rect, cornerRadius float64, paint graphics.Paint) {
	r := rect.Translate(c.off.X, c.off.Y)
	if r.IsEmpty() {
		return
	}
	if paint.Style == graphics.PaintStyleStroke {
		c.fillRing(func(v *vector.Rasterizer) {
			addRoundRect(v, r, cornerRadius, false)
			inner := r.Inset(paint.EffectiveStrokeWidth())
			if !inner.IsEmpty() {
				addRoundRect(v, inner, math.Max(cornerRadius-paint.EffectiveStrokeWidth(), 0), true)
			}
		}, paint.Color)
		return
	}
	c.fillRing(func(v *vector.Rasterizer) {
		addRoundRect(v, r, cornerRadius, false)
	}, paint.Color)
}

func (c *Canvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	if radius <= 0 {
		return
	}
	p := center.Add(c.off)
	if paint.Style == graphics.PaintStyleStroke {
		w := paint.EffectiveStrokeWidth()
		c.fillRing(func(v *vector.Rasterizer) {
			addCircle(v, p, radius+w/2, false)
			if inner := radius - w/2; inner > 0 {
				addCircle(v, p, inner, true)
			}
		}, paint.Color)
		return
	}
	c.fillRing(func(v *vector.Rasterizer) {
		addCircle(v, p, radius, false)
	}, paint.Color)
}

func (c *Canvas) DrawArc(center graphics.Offset, radius float64, startDeg, sweepDeg float64, paint graphics.Paint) {
	if radius <= 0 || sweepDeg == 0 {
		return
	}
	p := center.Add(c.off)
	w := paint.EffectiveStrokeWidth()

	segments := int(math.Ceil(math.Abs(sweepDeg) / arcSegmentDeg))
	if segments < 1 {
		segments = 1
	}
	prev := arcPoint(p, radius, startDeg)
	for i := 1; i <= segments; i++ {
		next := arcPoint(p, radius, startDeg+sweepDeg*float64(i)/float64(segments))
		c.strokeSegment(prev, next, w, paint.Color)
		prev = next
	}
}

func (c *Canvas) DrawText(text string, pos graphics.Offset, anchor graphics.TextAnchor, fontRef graphics.FontRef, col graphics.Color) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  c.dst,
		Src:  image.NewUniform(rgba(col)),
		Face: face,
	}
	width := d.MeasureString(text)
	p := pos.Add(c.off)
	x := fixed.Int26_6(p.X * 64)
	switch anchor {
	case graphics.AnchorMiddle:
		x -= width / 2
	case graphics.AnchorEnd:
		x -= width
	}
	d.Dot = fixed.Point26_6{X: x, Y: fixed.Int26_6(p.Y * 64)}
	d.DrawString(text)
}

func (c *Canvas) DrawImage(img image.Image, dst graphics.Rect) {
	r := dst.Translate(c.off.X, c.off.Y)
	if r.IsEmpty() {
		return
	}
	target := image.Rect(int(r.X), int(r.Y), int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())))
	xdraw.ApproxBiLinear.Scale(c.dst, target, img, img.Bounds(), xdraw.Over, nil)
}

// strokeSegment fills the segment from a to b as a rectangle of the
// given width aligned to the segment direction.
func (c *Canvas) strokeSegment(a, b graphics.Offset, width float64, col graphics.Color) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Unit normal scaled to half the stroke width.
	nx := -dy / length * width / 2
	ny := dx / length * width / 2
	c.fillRing(func(v *vector.Rasterizer) {
		v.MoveTo(float32(a.X+nx), float32(a.Y+ny))
		v.LineTo(float32(b.X+nx), float32(b.Y+ny))
		v.LineTo(float32(b.X-nx), float32(b.Y-ny))
		v.LineTo(float32(a.X-nx), float32(a.Y-ny))
		v.ClosePath()
	}, col)
}

// fillRing rasterizes the path built by build and composites it over
// the backing image with the given color.
func (c *Canvas) fillRing(build func(*vector.Rasterizer), col graphics.Color) {
	b := c.dst.Bounds()
	v := vector.NewRasterizer(b.Dx(), b.Dy())
	v.DrawOp = xdraw.Over
	build(v)
	v.Draw(c.dst, b, image.NewUniform(rgba(col)), image.Point{})
}

// addRoundRect appends a rectangle path, with quadratic corner arcs
// when radius is positive. reverse winds the path the other way, which
// subtracts it from an enclosing path.
func addRoundRect(v *vector.Rasterizer, r graphics.Rect, radius float64, reverse bool) {
	max := math.Min(r.Width, r.Height) / 2
	radius = graphics.Clamp(radius, 0, max)
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.Right()), float32(r.Bottom())
	rad := float32(radius)

	if radius <= 0 {
		if reverse {
			v.MoveTo(x0, y0)
			v.LineTo(x0, y1)
			v.LineTo(x1, y1)
			v.LineTo(x1, y0)
		} else {
			v.MoveTo(x0, y0)
			v.LineTo(x1, y0)
			v.LineTo(x1, y1)
			v.LineTo(x0, y1)
		}
		v.ClosePath()
		return
	}

	if reverse {
		v.MoveTo(x0+rad, y0)
		v.QuadTo(x0, y0, x0, y0+rad)
		v.LineTo(x0, y1-rad)
		v.QuadTo(x0, y1, x0+rad, y1)
		v.LineTo(x1-rad, y1)
		v.QuadTo(x1, y1, x1, y1-rad)
		v.LineTo(x1, y0+rad)
		v.QuadTo(x1, y0, x1-rad, y0)
	} else {
		v.MoveTo(x0+rad, y0)
		v.LineTo(x1-rad, y0)
		v.QuadTo(x1, y0, x1, y0+rad)
		v.LineTo(x1, y1-rad)
		v.QuadTo(x1, y1, x1-rad, y1)
		v.LineTo(x0+rad, y1)
		v.QuadTo(x0, y1, x0, y1-rad)
		v.LineTo(x0, y0+rad)
		v.QuadTo(x0, y0, x0+rad, y0)
	}
	v.ClosePath()
}

// addCircle appends a circle path built from four cubic beziers.
func addCircle(v *vector.Rasterizer, center graphics.Offset, radius float64, reverse bool) {
	cx, cy := float32(center.X), float32(center.Y)
	r := float32(radius)
	k := float32(radius * circleKappa)

	v.MoveTo(cx+r, cy)
	if reverse {
		v.CubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		v.CubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		v.CubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		v.CubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	} else {
		v.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		v.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		v.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		v.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	}
	v.ClosePath()
}

// arcPoint is the point on the circle at the given angle, measured in
// degrees clockwise from the positive x axis.
func arcPoint(center graphics.Offset, radius, deg float64) graphics.Offset {
	rad := deg * math.Pi / 180
	return graphics.Offset{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

func rgba(c graphics.Color) color.RGBA {
	r, g, b, a := c.Components()
	return color.RGBA{
		R: uint8(uint32(r) * uint32(a) / 255),
		G: uint8(uint32(g) * uint32(a) / 255),
		B: uint8(uint32(b) * uint32(a) / 255),
		A: a,
	}
}
